package entity

import (
	"time"

	errs "github.com/predictarena/backend/internal/domain/error"
	coreport "github.com/predictarena/backend/internal/domain/port/core"
)

// Status represents a tournament's lifecycle state.
// Transitions are monotonic: pending -> active -> closed -> resolved
type Status string

const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusClosed   Status = "closed"
	StatusResolved Status = "resolved"
)

// IsValidStatus checks if the status is one of the lifecycle states
func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusActive, StatusClosed, StatusResolved:
		return true
	}
	return false
}

// Type represents the prediction format of a tournament
type Type string

const (
	TypeYesNo    Type = "yesno"
	TypeMultiple Type = "multiple"
)

// IsValidType checks if the type is one of the supported prediction formats
func IsValidType(t string) bool {
	return Type(t) == TypeYesNo || Type(t) == TypeMultiple
}

// YesNoOptions are the fixed option labels for yes/no tournaments
var YesNoOptions = []string{"Yes", "No"}

// Tournament represents a prediction tournament and its prize pool
type Tournament struct {
	ID                  string    // UUID
	Category            string    // Free-form grouping label, e.g. "sports"
	Type                Type      // Prediction format
	Options             []string  // Ordered option labels users predict against
	EntryFee            int64     // Points staked per entry, positive
	MaxParticipants     uint32    // Participant cap
	CurrentParticipants uint32    // Entries accepted so far, never exceeds the cap
	PrizePool           int64     // Accumulated entry fees
	StartTime           time.Time // When the tournament opens for entries
	EndTime             time.Time // When entries close
	Status              Status
	CorrectAnswer       *string // Winning option label, set at resolution
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewTournament creates a pending tournament after validating its shape
func NewTournament(id, category string, typ Type, options []string, entryFee int64, maxParticipants uint32, startTime, endTime time.Time, timeProvider coreport.TimeProvider) (*Tournament, error) {
	if !IsValidType(string(typ)) {
		return nil, errs.NewValidationError("type", "must be yesno or multiple")
	}
	if typ == TypeYesNo {
		options = YesNoOptions
	}
	if len(options) < 2 {
		return nil, errs.NewValidationError("options", "at least two options required")
	}
	if entryFee <= 0 {
		return nil, errs.NewValidationError("entryFee", "must be positive")
	}
	if maxParticipants == 0 {
		return nil, errs.NewValidationError("maxParticipants", "must be positive")
	}
	if !startTime.Before(endTime) {
		return nil, errs.NewValidationError("startTime", "must be before endTime")
	}

	now := timeProvider.Now()
	return &Tournament{
		ID:              id,
		Category:        category,
		Type:            typ,
		Options:         options,
		EntryFee:        entryFee,
		MaxParticipants: maxParticipants,
		StartTime:       startTime,
		EndTime:         endTime,
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// IsActive reports whether the tournament currently accepts entries
func (t *Tournament) IsActive() bool {
	return t.Status == StatusActive
}

// IsFull reports whether the participant cap has been reached
func (t *Tournament) IsFull() bool {
	return t.CurrentParticipants >= t.MaxParticipants
}

// HasOption checks a prediction label against the option list
func (t *Tournament) HasOption(label string) bool {
	for _, opt := range t.Options {
		if opt == label {
			return true
		}
	}
	return false
}

// AcceptEntry records one paid entry on the tournament side.
// The caller holds the row lock and has already checked the preconditions
func (t *Tournament) AcceptEntry(timeProvider coreport.TimeProvider) error {
	if t.Status != StatusActive {
		return errs.ErrTournamentNotActive
	}
	if t.IsFull() {
		return errs.ErrTournamentFull
	}
	t.CurrentParticipants++
	t.PrizePool += t.EntryFee
	t.UpdatedAt = timeProvider.Now()
	return nil
}

// Resolve marks the tournament resolved with the winning option label.
// Only a closed tournament can be resolved; the transition is terminal
func (t *Tournament) Resolve(correctAnswer string, timeProvider coreport.TimeProvider) error {
	if t.Status != StatusClosed {
		return errs.ErrTournamentNotClosed
	}
	if !t.HasOption(correctAnswer) {
		return errs.NewValidationError("correctAnswer", "not one of the tournament options")
	}
	t.Status = StatusResolved
	t.CorrectAnswer = &correctAnswer
	t.UpdatedAt = timeProvider.Now()
	return nil
}

// PrizePerWinner computes the per-winner payout using floor division.
// The remainder is intentionally not distributed
func (t *Tournament) PrizePerWinner(winnerCount int) int64 {
	if winnerCount <= 0 {
		return 0
	}
	return t.PrizePool / int64(winnerCount)
}
