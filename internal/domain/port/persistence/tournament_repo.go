package persistence

import (
	"context"
	"time"

	"github.com/predictarena/backend/internal/domain/entity"
)

// TournamentRepository defines the methods to interact with tournament data
type TournamentRepository interface {
	// GetByID retrieves a tournament by ID
	//
	// Possible errors:
	// - ErrTournamentNotFound: if no tournament with the ID exists
	// - ErrStorage: if the database fails
	GetByID(ctx context.Context, id string) (*entity.Tournament, error)

	// GetForUpdate retrieves a tournament by ID holding an exclusive row
	// lock. Must run inside a unit-of-work transaction so the capacity and
	// prize-pool checks serialize across concurrent entries
	//
	// Possible errors:
	// - ErrTournamentNotFound: if no tournament with the ID exists
	// - ErrStorage: if the database fails
	GetForUpdate(ctx context.Context, id string) (*entity.Tournament, error)

	// Create persists a new tournament
	//
	// Possible errors:
	// - ErrStorage: if the database fails
	Create(ctx context.Context, tournament *entity.Tournament) error

	// Update persists tournament mutations (status, counters, prize pool)
	//
	// Possible errors:
	// - ErrTournamentNotFound: if the tournament doesn't exist
	// - ErrStorage: if the database fails
	Update(ctx context.Context, tournament *entity.Tournament) error

	// ListByStatus returns tournaments in any of the given states, ordered
	// by start time
	//
	// Possible errors:
	// - ErrStorage: if the database fails
	ListByStatus(ctx context.Context, statuses ...entity.Status) ([]*entity.Tournament, error)

	// ActivateDue flips pending tournaments whose start time has passed to
	// active. The guarded update is idempotent; re-running it cannot
	// re-fire the transition. Returns the number of rows transitioned
	//
	// Possible errors:
	// - ErrStorage: if the database fails
	ActivateDue(ctx context.Context, now time.Time) (int64, error)

	// CloseDue flips active tournaments whose end time has passed to
	// closed. Same idempotency contract as ActivateDue
	//
	// Possible errors:
	// - ErrStorage: if the database fails
	CloseDue(ctx context.Context, now time.Time) (int64, error)
}
