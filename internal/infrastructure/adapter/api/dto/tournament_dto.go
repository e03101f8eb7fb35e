package dto

import (
	"time"

	"github.com/predictarena/backend/internal/domain/entity"
)

// TournamentResponse represents the public tournament read model.
// Options always cross the boundary as a decoded ordered list
type TournamentResponse struct {
	ID                  string    `json:"id"`
	Category            string    `json:"category"`
	Type                string    `json:"type"`
	Options             []string  `json:"options"`
	EntryFee            int64     `json:"entryFee"`
	MaxParticipants     uint32    `json:"maxParticipants"`
	CurrentParticipants uint32    `json:"currentParticipants"`
	PrizePool           int64     `json:"prizePool"`
	StartTime           time.Time `json:"startTime"`
	EndTime             time.Time `json:"endTime"`
	Status              string    `json:"status"`
	CorrectAnswer       *string   `json:"correctAnswer,omitempty"`
}

// FromTournament maps a tournament entity to its response form
func FromTournament(t *entity.Tournament) TournamentResponse {
	return TournamentResponse{
		ID:                  t.ID,
		Category:            t.Category,
		Type:                string(t.Type),
		Options:             t.Options,
		EntryFee:            t.EntryFee,
		MaxParticipants:     t.MaxParticipants,
		CurrentParticipants: t.CurrentParticipants,
		PrizePool:           t.PrizePool,
		StartTime:           t.StartTime,
		EndTime:             t.EndTime,
		Status:              string(t.Status),
		CorrectAnswer:       t.CorrectAnswer,
	}
}

// CreateTournamentRequest represents the admin request to open a tournament
type CreateTournamentRequest struct {
	Category        string    `json:"category" binding:"required"`
	Type            string    `json:"type" binding:"required,oneof=yesno multiple"`
	Options         []string  `json:"options"`
	EntryFee        int64     `json:"entryFee" binding:"required,gt=0"`
	MaxParticipants uint32    `json:"maxParticipants" binding:"required,gt=0"`
	StartTime       time.Time `json:"startTime" binding:"required"`
	EndTime         time.Time `json:"endTime" binding:"required"`
}

// EnterRequest represents the request body for entering a tournament
type EnterRequest struct {
	Prediction string `json:"prediction" binding:"required"`
}

// EnterResponse represents the state after a successful entry
type EnterResponse struct {
	TournamentID        string `json:"tournamentId"`
	Prediction          string `json:"prediction"`
	PointsPaid          int64  `json:"pointsPaid"`
	RemainingPoints     int64  `json:"remainingPoints"`
	PrizePool           int64  `json:"prizePool"`
	CurrentParticipants uint32 `json:"currentParticipants"`
}

// ResolveRequest represents the admin request to settle a tournament
type ResolveRequest struct {
	CorrectAnswer string `json:"correct_answer" binding:"required"`
}

// ResolveResponse summarizes a settled tournament
type ResolveResponse struct {
	TournamentID   string `json:"tournamentId"`
	CorrectAnswer  string `json:"correctAnswer"`
	WinnerCount    int    `json:"winnerCount"`
	PrizePerWinner int64  `json:"prizePerWinner"`
	PrizePool      int64  `json:"prizePool"`
}

// ParticipantResponse represents one entry in the admin participant listing
type ParticipantResponse struct {
	UserID     uint64    `json:"userId"`
	Prediction string    `json:"prediction"`
	PointsPaid int64     `json:"pointsPaid"`
	EnteredAt  time.Time `json:"enteredAt"`
}
