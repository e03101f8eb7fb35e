package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating operations across
// multiple repositories inside one atomic transaction. Entry, settlement
// and free-claim all run through it so a failure partway leaves no
// partial state
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetTournamentRepository returns a tournament repository bound to the current transaction
	GetTournamentRepository(ctx context.Context) TournamentRepository

	// GetParticipationRepository returns a participation repository bound to the current transaction
	GetParticipationRepository(ctx context.Context) ParticipationRepository
}
