package settlement

import (
	"context"

	errs "github.com/predictarena/backend/internal/domain/error"
	coreport "github.com/predictarena/backend/internal/domain/port/core"
	"github.com/predictarena/backend/internal/domain/port/persistence"
)

// Engine resolves closed tournaments and distributes their prize pools.
// The whole resolve operation is one atomic unit; a failure partway
// leaves no partial credits
type Engine struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewEngine creates a new settlement engine
func NewEngine(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Engine {
	return &Engine{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Result summarizes a settled tournament
type Result struct {
	TournamentID   string
	CorrectAnswer  string
	WinnerCount    int
	PrizePerWinner int64
	PrizePool      int64
}

// Resolve settles a closed tournament against the correct answer.
//
// Winners split the prize pool with floor division; the remainder is not
// distributed. When no prediction matches, the pool is forfeited and no
// balance changes.
func (e *Engine) Resolve(ctx context.Context, tournamentID, correctAnswer string) (*Result, error) {
	if correctAnswer == "" {
		return nil, errs.NewValidationError("correctAnswer", "must not be empty")
	}

	txCtx, err := e.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	result, err := e.resolveInTx(txCtx, tournamentID, correctAnswer)
	if err != nil {
		if rbErr := e.uow.Rollback(txCtx); rbErr != nil {
			e.logger.Error("Failed to rollback settlement transaction", map[string]any{
				"tournament_id": tournamentID,
				"error":         rbErr.Error(),
			})
		}
		e.logger.Warn("Tournament settlement failed", map[string]any{
			"tournament_id":  tournamentID,
			"correct_answer": correctAnswer,
			"error":          err.Error(),
		})
		return nil, err
	}

	if err := e.uow.Commit(txCtx); err != nil {
		e.logger.Error("Failed to commit settlement transaction", map[string]any{
			"tournament_id": tournamentID,
			"error":         err.Error(),
		})
		return nil, err
	}

	e.logger.Info("Tournament settled", map[string]any{
		"tournament_id":    tournamentID,
		"correct_answer":   correctAnswer,
		"winner_count":     result.WinnerCount,
		"prize_per_winner": result.PrizePerWinner,
		"prize_pool":       result.PrizePool,
	})

	return result, nil
}

func (e *Engine) resolveInTx(ctx context.Context, tournamentID, correctAnswer string) (*Result, error) {
	tournaments := e.uow.GetTournamentRepository(ctx)
	users := e.uow.GetUserRepository(ctx)
	participations := e.uow.GetParticipationRepository(ctx)

	tournament, err := tournaments.GetForUpdate(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	if err := tournament.Resolve(correctAnswer, e.timeProvider); err != nil {
		return nil, err
	}
	if err := tournaments.Update(ctx, tournament); err != nil {
		return nil, err
	}

	winners, err := participations.ListWinners(ctx, tournamentID, correctAnswer)
	if err != nil {
		return nil, err
	}

	result := &Result{
		TournamentID:  tournamentID,
		CorrectAnswer: correctAnswer,
		WinnerCount:   len(winners),
		PrizePool:     tournament.PrizePool,
	}

	// No winners: the pool is forfeited, nothing else changes
	if len(winners) == 0 {
		return result, nil
	}

	result.PrizePerWinner = tournament.PrizePerWinner(len(winners))
	for _, winner := range winners {
		if err := users.CreditWin(ctx, winner.UserID, result.PrizePerWinner); err != nil {
			return nil, err
		}
	}

	return result, nil
}
