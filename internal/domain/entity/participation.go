package entity

import (
	"time"
)

// Participation records a single user's paid entry in a tournament.
// At most one exists per (tournament, user) pair and it is immutable
// once written
type Participation struct {
	ID           uint64
	TournamentID string
	UserID       uint64
	Prediction   string // Chosen option label
	PointsPaid   int64  // Entry fee at the time of entry
	CreatedAt    time.Time
}
