package settlement

import (
	"context"
	"testing"
	"time"

	"github.com/predictarena/backend/internal/domain/entity"
	errs "github.com/predictarena/backend/internal/domain/error"
	coremocks "github.com/predictarena/backend/mocks/port/core"
	persistencemocks "github.com/predictarena/backend/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type resolveTestEnv struct {
	uow            *persistencemocks.MockUnitOfWork
	tournaments    *persistencemocks.MockTournamentRepository
	users          *persistencemocks.MockUserRepository
	participations *persistencemocks.MockParticipationRepository
	timeProvider   *coremocks.MockTimeProvider
	logger         *coremocks.MockLogger
	engine         *Engine
}

func newResolveTestEnv(t *testing.T) *resolveTestEnv {
	t.Helper()

	env := &resolveTestEnv{
		uow:            persistencemocks.NewMockUnitOfWork(t),
		tournaments:    persistencemocks.NewMockTournamentRepository(t),
		users:          persistencemocks.NewMockUserRepository(t),
		participations: persistencemocks.NewMockParticipationRepository(t),
		timeProvider:   coremocks.NewMockTimeProvider(t),
		logger:         coremocks.NewMockLogger(t),
	}

	fixedTime := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)
	env.timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

	env.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	env.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	env.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	env.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	env.uow.EXPECT().GetTournamentRepository(mock.Anything).Return(env.tournaments).Maybe()
	env.uow.EXPECT().GetUserRepository(mock.Anything).Return(env.users).Maybe()
	env.uow.EXPECT().GetParticipationRepository(mock.Anything).Return(env.participations).Maybe()

	env.engine = NewEngine(env.uow, env.timeProvider, env.logger)
	return env
}

func closedTournament(t *testing.T, tp *coremocks.MockTimeProvider, pool int64) *entity.Tournament {
	t.Helper()

	fixedTime := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)
	tournament, err := entity.NewTournament(
		"t-200", "crypto", entity.TypeYesNo, nil, 100, 10,
		fixedTime.Add(-2*time.Hour), fixedTime.Add(-time.Hour), tp,
	)
	require.NoError(t, err)
	tournament.Status = entity.StatusClosed
	tournament.PrizePool = pool
	tournament.CurrentParticipants = uint32(pool / tournament.EntryFee)
	return tournament
}

func winner(userID uint64, prediction string) *entity.Participation {
	return &entity.Participation{
		TournamentID: "t-200",
		UserID:       userID,
		Prediction:   prediction,
		PointsPaid:   100,
	}
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Winners split the pool with floor division", func(t *testing.T) {
		env := newResolveTestEnv(t)
		tournament := closedTournament(t, env.timeProvider, 100)
		winners := []*entity.Participation{winner(1, "Yes"), winner(2, "Yes"), winner(3, "Yes")}

		env.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		env.tournaments.EXPECT().GetForUpdate(mock.Anything, "t-200").Return(tournament, nil).Once()
		env.tournaments.EXPECT().Update(mock.Anything, tournament).Return(nil).Once()
		env.participations.EXPECT().ListWinners(mock.Anything, "t-200", "Yes").Return(winners, nil).Once()
		env.users.EXPECT().CreditWin(mock.Anything, uint64(1), int64(33)).Return(nil).Once()
		env.users.EXPECT().CreditWin(mock.Anything, uint64(2), int64(33)).Return(nil).Once()
		env.users.EXPECT().CreditWin(mock.Anything, uint64(3), int64(33)).Return(nil).Once()
		env.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		result, err := env.engine.Resolve(ctx, "t-200", "Yes")

		require.NoError(t, err)
		assert.Equal(t, 3, result.WinnerCount)
		assert.Equal(t, int64(33), result.PrizePerWinner)
		assert.Equal(t, int64(100), result.PrizePool)
		assert.Equal(t, entity.StatusResolved, tournament.Status)
	})

	t.Run("Single winner takes the whole pool", func(t *testing.T) {
		env := newResolveTestEnv(t)
		tournament := closedTournament(t, env.timeProvider, 500)

		env.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		env.tournaments.EXPECT().GetForUpdate(mock.Anything, "t-200").Return(tournament, nil).Once()
		env.tournaments.EXPECT().Update(mock.Anything, tournament).Return(nil).Once()
		env.participations.EXPECT().ListWinners(mock.Anything, "t-200", "No").Return([]*entity.Participation{winner(7, "No")}, nil).Once()
		env.users.EXPECT().CreditWin(mock.Anything, uint64(7), int64(500)).Return(nil).Once()
		env.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		result, err := env.engine.Resolve(ctx, "t-200", "No")

		require.NoError(t, err)
		assert.Equal(t, 1, result.WinnerCount)
		assert.Equal(t, int64(500), result.PrizePerWinner)
	})

	t.Run("No winners forfeits the pool", func(t *testing.T) {
		env := newResolveTestEnv(t)
		tournament := closedTournament(t, env.timeProvider, 300)

		env.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		env.tournaments.EXPECT().GetForUpdate(mock.Anything, "t-200").Return(tournament, nil).Once()
		env.tournaments.EXPECT().Update(mock.Anything, tournament).Return(nil).Once()
		env.participations.EXPECT().ListWinners(mock.Anything, "t-200", "Yes").Return(nil, nil).Once()
		env.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		result, err := env.engine.Resolve(ctx, "t-200", "Yes")

		require.NoError(t, err)
		assert.Equal(t, 0, result.WinnerCount)
		assert.Equal(t, int64(0), result.PrizePerWinner)
		assert.Equal(t, entity.StatusResolved, tournament.Status)
	})

	t.Run("Empty answer is rejected before any transaction", func(t *testing.T) {
		env := newResolveTestEnv(t)

		result, err := env.engine.Resolve(ctx, "t-200", "")

		assert.True(t, errs.IsValidationError(err))
		assert.Nil(t, result)
	})

	t.Run("Tournament not closed rolls back", func(t *testing.T) {
		env := newResolveTestEnv(t)
		tournament := closedTournament(t, env.timeProvider, 100)
		tournament.Status = entity.StatusActive

		env.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		env.tournaments.EXPECT().GetForUpdate(mock.Anything, "t-200").Return(tournament, nil).Once()
		env.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result, err := env.engine.Resolve(ctx, "t-200", "Yes")

		assert.ErrorIs(t, err, errs.ErrTournamentNotClosed)
		assert.Nil(t, result)
	})

	t.Run("Answer outside option list rolls back", func(t *testing.T) {
		env := newResolveTestEnv(t)
		tournament := closedTournament(t, env.timeProvider, 100)

		env.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		env.tournaments.EXPECT().GetForUpdate(mock.Anything, "t-200").Return(tournament, nil).Once()
		env.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result, err := env.engine.Resolve(ctx, "t-200", "Maybe")

		assert.True(t, errs.IsValidationError(err))
		assert.Nil(t, result)
		assert.Equal(t, entity.StatusClosed, tournament.Status)
	})

	t.Run("Credit failure rolls the whole settlement back", func(t *testing.T) {
		env := newResolveTestEnv(t)
		tournament := closedTournament(t, env.timeProvider, 200)
		winners := []*entity.Participation{winner(1, "Yes"), winner(2, "Yes")}

		env.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		env.tournaments.EXPECT().GetForUpdate(mock.Anything, "t-200").Return(tournament, nil).Once()
		env.tournaments.EXPECT().Update(mock.Anything, tournament).Return(nil).Once()
		env.participations.EXPECT().ListWinners(mock.Anything, "t-200", "Yes").Return(winners, nil).Once()
		env.users.EXPECT().CreditWin(mock.Anything, uint64(1), int64(100)).Return(nil).Once()
		env.users.EXPECT().CreditWin(mock.Anything, uint64(2), int64(100)).Return(errs.ErrStorage).Once()
		env.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result, err := env.engine.Resolve(ctx, "t-200", "Yes")

		assert.True(t, errs.IsStorageError(err))
		assert.Nil(t, result)
	})
}
