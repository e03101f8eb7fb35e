package entry

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

type enterTestEnv struct {
	uow            *persistencemocks.MockUnitOfWork
	tournaments    *persistencemocks.MockTournamentRepository
	users          *persistencemocks.MockUserRepository
	participations *persistencemocks.MockParticipationRepository
	timeProvider   *coremocks.MockTimeProvider
	logger         *coremocks.MockLogger
	coordinator    *Coordinator
}

func newEnterTestEnv(t *testing.T) *enterTestEnv {
	t.Helper()

	env := &enterTestEnv{
		uow:            persistencemocks.NewMockUnitOfWork(t),
		tournaments:    persistencemocks.NewMockTournamentRepository(t),
		users:          persistencemocks.NewMockUserRepository(t),
		participations: persistencemocks.NewMockParticipationRepository(t),
		timeProvider:   coremocks.NewMockTimeProvider(t),
		logger:         coremocks.NewMockLogger(t),
	}

	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	env.timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

	env.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	env.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	env.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	env.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	env.uow.EXPECT().GetTournamentRepository(mock.Anything).Return(env.tournaments).Maybe()
	env.uow.EXPECT().GetUserRepository(mock.Anything).Return(env.users).Maybe()
	env.uow.EXPECT().GetParticipationRepository(mock.Anything).Return(env.participations).Maybe()

	env.coordinator = NewCoordinator(env.uow, env.timeProvider, env.logger)
	return env
}

func activeTournament(t *testing.T, tp *coremocks.MockTimeProvider) *entity.Tournament {
	t.Helper()

	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tournament, err := entity.NewTournament(
		"t-100", "crypto", entity.TypeYesNo, nil, 100, 3,
		fixedTime.Add(-time.Hour), fixedTime.Add(time.Hour), tp,
	)
	require.NoError(t, err)
	tournament.Status = entity.StatusActive
	return tournament
}

func fundedUser(t *testing.T, tp *coremocks.MockTimeProvider, points int64) *entity.User {
	t.Helper()

	user, err := entity.NewUser("alice@example.com", "alice", "hash", points, tp)
	require.NoError(t, err)
	user.ID = 42
	return user
}

func TestEnter(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful entry moves the fee into the pool", func(t *testing.T) {
		env := newEnterTestEnv(t)
		tournament := activeTournament(t, env.timeProvider)
		user := fundedUser(t, env.timeProvider, 1000)

		env.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		env.tournaments.EXPECT().GetForUpdate(mock.Anything, "t-100").Return(tournament, nil).Once()
		env.users.EXPECT().GetForUpdate(mock.Anything, uint64(42)).Return(user, nil).Once()
		env.participations.EXPECT().Exists(mock.Anything, "t-100", uint64(42)).Return(false, nil).Once()
		env.participations.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *entity.Participation) bool {
			return p.TournamentID == "t-100" && p.UserID == 42 && p.Prediction == "Yes" && p.PointsPaid == 100
		})).Return(nil).Once()
		env.users.EXPECT().Update(mock.Anything, user).Return(nil).Once()
		env.tournaments.EXPECT().Update(mock.Anything, tournament).Return(nil).Once()
		env.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		result, err := env.coordinator.Enter(ctx, "t-100", 42, "Yes")

		require.NoError(t, err)
		assert.Equal(t, int64(100), result.PointsPaid)
		assert.Equal(t, int64(900), result.RemainingPoints)
		assert.Equal(t, int64(100), result.PrizePool)
		assert.Equal(t, uint32(1), result.CurrentParticipants)
		assert.Equal(t, int64(900), user.Points())
		assert.Equal(t, uint64(1), user.TotalTournaments)
	})

	t.Run("Invalid user ID is rejected before any transaction", func(t *testing.T) {
		env := newEnterTestEnv(t)

		result, err := env.coordinator.Enter(ctx, "t-100", 0, "Yes")

		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, result)
	})

	t.Run("Empty prediction is rejected before any transaction", func(t *testing.T) {
		env := newEnterTestEnv(t)

		result, err := env.coordinator.Enter(ctx, "t-100", 42, "")

		assert.True(t, errs.IsValidationError(err))
		assert.Nil(t, result)
	})

	t.Run("Unknown tournament rolls back with not found", func(t *testing.T) {
		env := newEnterTestEnv(t)

		env.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		env.tournaments.EXPECT().GetForUpdate(mock.Anything, "missing").Return(nil, errs.ErrTournamentNotFound).Once()
		env.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result, err := env.coordinator.Enter(ctx, "missing", 42, "Yes")

		assert.True(t, errs.IsNotFoundError(err))
		assert.Nil(t, result)
	})

	t.Run("Inactive tournament rejects the entry", func(t *testing.T) {
		env := newEnterTestEnv(t)
		tournament := activeTournament(t, env.timeProvider)
		tournament.Status = entity.StatusClosed

		env.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		env.tournaments.EXPECT().GetForUpdate(mock.Anything, "t-100").Return(tournament, nil).Once()
		env.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result, err := env.coordinator.Enter(ctx, "t-100", 42, "Yes")

		assert.ErrorIs(t, err, errs.ErrTournamentNotActive)
		assert.Nil(t, result)
	})

	t.Run("Prediction outside the option list is rejected", func(t *testing.T) {
		env := newEnterTestEnv(t)
		tournament := activeTournament(t, env.timeProvider)

		env.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		env.tournaments.EXPECT().GetForUpdate(mock.Anything, "t-100").Return(tournament, nil).Once()
		env.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result, err := env.coordinator.Enter(ctx, "t-100", 42, "Maybe")

		assert.True(t, errs.IsValidationError(err))
		assert.Nil(t, result)
	})

	t.Run("Uncovered entry fee rejects with the balance details", func(t *testing.T) {
		env := newEnterTestEnv(t)
		tournament := activeTournament(t, env.timeProvider)
		user := fundedUser(t, env.timeProvider, 40)

		env.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		env.tournaments.EXPECT().GetForUpdate(mock.Anything, "t-100").Return(tournament, nil).Once()
		env.users.EXPECT().GetForUpdate(mock.Anything, uint64(42)).Return(user, nil).Once()
		env.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result, err := env.coordinator.Enter(ctx, "t-100", 42, "Yes")

		assert.True(t, errs.IsInsufficientFundsError(err))
		assert.Nil(t, result)
		assert.Equal(t, int64(40), user.Points())
	})

	t.Run("Full tournament rejects the entry", func(t *testing.T) {
		env := newEnterTestEnv(t)
		tournament := activeTournament(t, env.timeProvider)
		tournament.CurrentParticipants = tournament.MaxParticipants
		user := fundedUser(t, env.timeProvider, 1000)

		env.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		env.tournaments.EXPECT().GetForUpdate(mock.Anything, "t-100").Return(tournament, nil).Once()
		env.users.EXPECT().GetForUpdate(mock.Anything, uint64(42)).Return(user, nil).Once()
		env.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result, err := env.coordinator.Enter(ctx, "t-100", 42, "Yes")

		assert.ErrorIs(t, err, errs.ErrTournamentFull)
		assert.Nil(t, result)
		assert.Equal(t, int64(1000), user.Points())
	})

	t.Run("Prior entry rejects a duplicate", func(t *testing.T) {
		env := newEnterTestEnv(t)
		tournament := activeTournament(t, env.timeProvider)
		user := fundedUser(t, env.timeProvider, 1000)

		env.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		env.tournaments.EXPECT().GetForUpdate(mock.Anything, "t-100").Return(tournament, nil).Once()
		env.users.EXPECT().GetForUpdate(mock.Anything, uint64(42)).Return(user, nil).Once()
		env.participations.EXPECT().Exists(mock.Anything, "t-100", uint64(42)).Return(true, nil).Once()
		env.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result, err := env.coordinator.Enter(ctx, "t-100", 42, "Yes")

		assert.True(t, errs.IsAlreadyEnteredError(err))
		assert.Nil(t, result)
		assert.Equal(t, int64(1000), user.Points())
		assert.Equal(t, int64(0), tournament.PrizePool)
	})

	t.Run("Storage failure on insert rolls everything back", func(t *testing.T) {
		env := newEnterTestEnv(t)
		tournament := activeTournament(t, env.timeProvider)
		user := fundedUser(t, env.timeProvider, 1000)

		env.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		env.tournaments.EXPECT().GetForUpdate(mock.Anything, "t-100").Return(tournament, nil).Once()
		env.users.EXPECT().GetForUpdate(mock.Anything, uint64(42)).Return(user, nil).Once()
		env.participations.EXPECT().Exists(mock.Anything, "t-100", uint64(42)).Return(false, nil).Once()
		env.participations.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrStorage).Once()
		env.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result, err := env.coordinator.Enter(ctx, "t-100", 42, "Yes")

		assert.True(t, errs.IsStorageError(err))
		assert.Nil(t, result)
	})

	t.Run("Commit failure surfaces the error", func(t *testing.T) {
		env := newEnterTestEnv(t)
		tournament := activeTournament(t, env.timeProvider)
		user := fundedUser(t, env.timeProvider, 1000)

		env.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		env.tournaments.EXPECT().GetForUpdate(mock.Anything, "t-100").Return(tournament, nil).Once()
		env.users.EXPECT().GetForUpdate(mock.Anything, uint64(42)).Return(user, nil).Once()
		env.participations.EXPECT().Exists(mock.Anything, "t-100", uint64(42)).Return(false, nil).Once()
		env.participations.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		env.users.EXPECT().Update(mock.Anything, user).Return(nil).Once()
		env.tournaments.EXPECT().Update(mock.Anything, tournament).Return(nil).Once()
		env.uow.EXPECT().Commit(mock.Anything).Return(errs.ErrStorage).Once()

		result, err := env.coordinator.Enter(ctx, "t-100", 42, "Yes")

		assert.True(t, errs.IsStorageError(err))
		assert.Nil(t, result)
	})
}
