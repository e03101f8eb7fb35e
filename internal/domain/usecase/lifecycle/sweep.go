package lifecycle

import (
	"context"

	coreport "github.com/predictarena/backend/internal/domain/port/core"
	"github.com/predictarena/backend/internal/domain/port/persistence"
)

// Sweeper drives the scheduled tournament status transitions:
// pending -> active once the start time passes and active -> closed once
// the end time passes. Both transitions are guarded updates, so
// overlapping sweep invocations are idempotent
type Sweeper struct {
	tournamentRepo persistence.TournamentRepository
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
}

// NewSweeper creates a new lifecycle sweeper
func NewSweeper(
	tournamentRepo persistence.TournamentRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Sweeper {
	return &Sweeper{
		tournamentRepo: tournamentRepo,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// SweepResult reports how many tournaments each transition touched
type SweepResult struct {
	Activated int64
	Closed    int64
}

// Sweep applies both due transitions once. Safe to re-run at any time;
// already-transitioned tournaments are never touched again
func (s *Sweeper) Sweep(ctx context.Context) (*SweepResult, error) {
	now := s.timeProvider.Now()

	activated, err := s.tournamentRepo.ActivateDue(ctx, now)
	if err != nil {
		s.logger.Error("Lifecycle sweep failed to activate tournaments", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	closed, err := s.tournamentRepo.CloseDue(ctx, now)
	if err != nil {
		s.logger.Error("Lifecycle sweep failed to close tournaments", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	if activated > 0 || closed > 0 {
		s.logger.Info("Lifecycle sweep applied transitions", map[string]any{
			"activated": activated,
			"closed":    closed,
		})
	}

	return &SweepResult{Activated: activated, Closed: closed}, nil
}
