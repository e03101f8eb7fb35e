package persistence

import (
	"context"

	"github.com/predictarena/backend/internal/domain/entity"
)

// ParticipationRepository defines the methods to interact with entry records
type ParticipationRepository interface {
	// Create persists a new participation record
	//
	// Possible errors:
	// - ErrAlreadyEntered: if the (tournament, user) pair already exists
	// - ErrStorage: if the database fails
	Create(ctx context.Context, participation *entity.Participation) error

	// Exists checks whether the user already entered the tournament
	//
	// Possible errors:
	// - ErrStorage: if the database fails
	Exists(ctx context.Context, tournamentID string, userID uint64) (bool, error)

	// ListByTournament returns all entries for a tournament
	//
	// Possible errors:
	// - ErrStorage: if the database fails
	ListByTournament(ctx context.Context, tournamentID string) ([]*entity.Participation, error)

	// ListWinners returns the entries whose prediction equals the answer
	//
	// Possible errors:
	// - ErrStorage: if the database fails
	ListWinners(ctx context.Context, tournamentID, correctAnswer string) ([]*entity.Participation, error)
}
