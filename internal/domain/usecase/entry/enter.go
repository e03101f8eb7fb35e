package entry

import (
	"context"

	"github.com/predictarena/backend/internal/domain/entity"
	errs "github.com/predictarena/backend/internal/domain/error"
	coreport "github.com/predictarena/backend/internal/domain/port/core"
	"github.com/predictarena/backend/internal/domain/port/persistence"
)

// Coordinator enforces atomicity of tournament entry. All precondition
// checks and effects run inside one unit of work holding exclusive row
// locks on the tournament and the user, so concurrent entries serialize
// on the capacity and balance checks
type Coordinator struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewCoordinator creates a new entry coordinator
func NewCoordinator(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Coordinator {
	return &Coordinator{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Result describes the state after a successful entry
type Result struct {
	TournamentID        string
	UserID              uint64
	Prediction          string
	PointsPaid          int64
	RemainingPoints     int64
	PrizePool           int64
	CurrentParticipants uint32
}

// Enter submits a prediction against a tournament's prize pool.
//
// Preconditions are checked in order inside one atomic unit of work:
// tournament exists and is active, the user can cover the entry fee, a
// slot remains, and the user holds no prior entry. Effects are
// all-or-nothing: fee debited, participation inserted, participant count
// and prize pool bumped
func (c *Coordinator) Enter(ctx context.Context, tournamentID string, userID uint64, prediction string) (*Result, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if prediction == "" {
		return nil, errs.NewValidationError("prediction", "must not be empty")
	}

	txCtx, err := c.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	result, err := c.enterInTx(txCtx, tournamentID, userID, prediction)
	if err != nil {
		if rbErr := c.uow.Rollback(txCtx); rbErr != nil {
			c.logger.Error("Failed to rollback entry transaction", map[string]any{
				"tournament_id": tournamentID,
				"user_id":       userID,
				"error":         rbErr.Error(),
			})
		}
		if entryErr, ok := err.(interface{ LogFields() map[string]any }); ok {
			c.logger.Warn("Tournament entry rejected", entryErr.LogFields())
		} else {
			c.logger.Warn("Tournament entry rejected", map[string]any{
				"tournament_id": tournamentID,
				"user_id":       userID,
				"error":         err.Error(),
			})
		}
		return nil, err
	}

	if err := c.uow.Commit(txCtx); err != nil {
		c.logger.Error("Failed to commit entry transaction", map[string]any{
			"tournament_id": tournamentID,
			"user_id":       userID,
			"error":         err.Error(),
		})
		return nil, err
	}

	c.logger.Info("Tournament entry accepted", map[string]any{
		"tournament_id":    tournamentID,
		"user_id":          userID,
		"prediction":       prediction,
		"points_paid":      result.PointsPaid,
		"remaining_points": result.RemainingPoints,
		"prize_pool":       result.PrizePool,
		"participants":     result.CurrentParticipants,
	})

	return result, nil
}

// enterInTx runs the precondition checks and effects against the
// transaction-bound repositories. The tournament row lock is taken first
// so two entries racing for the last slot line up behind it
func (c *Coordinator) enterInTx(ctx context.Context, tournamentID string, userID uint64, prediction string) (*Result, error) {
	tournaments := c.uow.GetTournamentRepository(ctx)
	users := c.uow.GetUserRepository(ctx)
	participations := c.uow.GetParticipationRepository(ctx)

	// Precondition 1: tournament exists and is active
	tournament, err := tournaments.GetForUpdate(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if !tournament.IsActive() {
		return nil, errs.NewEntryError(tournamentID, userID, prediction, errs.ErrTournamentNotActive)
	}
	if !tournament.HasOption(prediction) {
		return nil, errs.NewEntryError(tournamentID, userID, prediction,
			errs.NewValidationError("prediction", "not one of the tournament options"))
	}

	// Precondition 2: user can cover the entry fee
	user, err := users.GetForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.CanAfford(tournament.EntryFee) {
		return nil, errs.NewEntryError(tournamentID, userID, prediction,
			errs.NewInsufficientFundsError(userID, tournament.EntryFee, user.Points()))
	}

	// Precondition 3: a slot remains
	if tournament.IsFull() {
		return nil, errs.NewEntryError(tournamentID, userID, prediction, errs.ErrTournamentFull)
	}

	// Precondition 4: no prior entry for this (tournament, user) pair
	exists, err := participations.Exists(ctx, tournamentID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewEntryError(tournamentID, userID, prediction, errs.ErrAlreadyEntered)
	}

	// Effects, all-or-nothing under the held locks
	if err := user.RecordEntry(tournament.EntryFee, c.timeProvider); err != nil {
		return nil, errs.NewEntryError(tournamentID, userID, prediction, err)
	}
	if err := tournament.AcceptEntry(c.timeProvider); err != nil {
		return nil, errs.NewEntryError(tournamentID, userID, prediction, err)
	}

	participation := &entity.Participation{
		TournamentID: tournamentID,
		UserID:       userID,
		Prediction:   prediction,
		PointsPaid:   tournament.EntryFee,
		CreatedAt:    c.timeProvider.Now(),
	}

	if err := participations.Create(ctx, participation); err != nil {
		return nil, err
	}
	if err := users.Update(ctx, user); err != nil {
		return nil, err
	}
	if err := tournaments.Update(ctx, tournament); err != nil {
		return nil, err
	}

	return &Result{
		TournamentID:        tournamentID,
		UserID:              userID,
		Prediction:          prediction,
		PointsPaid:          tournament.EntryFee,
		RemainingPoints:     user.Points(),
		PrizePool:           tournament.PrizePool,
		CurrentParticipants: tournament.CurrentParticipants,
	}, nil
}
