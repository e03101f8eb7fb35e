package user

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

const (
	testClaimAward    = int64(500)
	testClaimCooldown = 24 * time.Hour
)

type claimTestEnv struct {
	userRepo     *persistencemocks.MockUserRepository
	txUserRepo   *persistencemocks.MockUserRepository
	uow          *persistencemocks.MockUnitOfWork
	timeProvider *coremocks.MockTimeProvider
	logger       *coremocks.MockLogger
	useCase      *UseCase
}

func newClaimTestEnv(t *testing.T) *claimTestEnv {
	t.Helper()

	env := &claimTestEnv{
		userRepo:     persistencemocks.NewMockUserRepository(t),
		txUserRepo:   persistencemocks.NewMockUserRepository(t),
		uow:          persistencemocks.NewMockUnitOfWork(t),
		timeProvider: coremocks.NewMockTimeProvider(t),
		logger:       coremocks.NewMockLogger(t),
	}

	fixedTime := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	env.timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

	env.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	env.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	env.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	env.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	env.uow.EXPECT().GetUserRepository(mock.Anything).Return(env.txUserRepo).Maybe()

	env.useCase = NewUseCase(env.userRepo, env.uow, env.timeProvider, env.logger, testClaimAward, testClaimCooldown)
	return env
}

func claimUser(t *testing.T, tp *coremocks.MockTimeProvider, points int64) *entity.User {
	t.Helper()

	user, err := entity.NewUser("bob@example.com", "bob", "hash", points, tp)
	require.NoError(t, err)
	user.ID = 9
	return user
}

func TestClaimFree(t *testing.T) {
	ctx := context.Background()

	t.Run("First claim is granted immediately", func(t *testing.T) {
		env := newClaimTestEnv(t)
		user := claimUser(t, env.timeProvider, 200)

		env.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		env.txUserRepo.EXPECT().GetForUpdate(mock.Anything, uint64(9)).Return(user, nil).Once()
		env.txUserRepo.EXPECT().Update(mock.Anything, user).Return(nil).Once()
		env.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		result, err := env.useCase.ClaimFree(ctx, 9)

		require.NoError(t, err)
		assert.Equal(t, testClaimAward, result.PointsAwarded)
		assert.Equal(t, int64(700), result.NewBalance)
		assert.NotNil(t, user.LastClaimDate)
	})

	t.Run("Claim within the cooldown is rejected with remaining time", func(t *testing.T) {
		env := newClaimTestEnv(t)
		user := claimUser(t, env.timeProvider, 700)
		lastClaim := time.Date(2025, 3, 3, 1, 0, 0, 0, time.UTC)
		user.LastClaimDate = &lastClaim

		env.timeProvider.EXPECT().Since(lastClaim).Return(8 * time.Hour).Once()
		env.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		env.txUserRepo.EXPECT().GetForUpdate(mock.Anything, uint64(9)).Return(user, nil).Once()
		env.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result, err := env.useCase.ClaimFree(ctx, 9)

		assert.True(t, errs.IsCooldownActiveError(err))
		assert.Nil(t, result)

		var cooldownErr *errs.CooldownError
		require.ErrorAs(t, err, &cooldownErr)
		assert.Equal(t, 16*time.Hour, cooldownErr.Remaining)
		assert.Equal(t, int64(700), user.Points())
	})

	t.Run("Claim after the cooldown elapses is granted again", func(t *testing.T) {
		env := newClaimTestEnv(t)
		user := claimUser(t, env.timeProvider, 700)
		lastClaim := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
		user.LastClaimDate = &lastClaim

		env.timeProvider.EXPECT().Since(lastClaim).Return(48 * time.Hour).Once()
		env.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		env.txUserRepo.EXPECT().GetForUpdate(mock.Anything, uint64(9)).Return(user, nil).Once()
		env.txUserRepo.EXPECT().Update(mock.Anything, user).Return(nil).Once()
		env.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		result, err := env.useCase.ClaimFree(ctx, 9)

		require.NoError(t, err)
		assert.Equal(t, int64(1200), result.NewBalance)
	})

	t.Run("Invalid user ID is rejected before any transaction", func(t *testing.T) {
		env := newClaimTestEnv(t)

		result, err := env.useCase.ClaimFree(ctx, 0)

		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, result)
	})

	t.Run("Unknown user rolls back with not found", func(t *testing.T) {
		env := newClaimTestEnv(t)

		env.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		env.txUserRepo.EXPECT().GetForUpdate(mock.Anything, uint64(9)).Return(nil, errs.ErrUserNotFound).Once()
		env.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result, err := env.useCase.ClaimFree(ctx, 9)

		assert.True(t, errs.IsNotFoundError(err))
		assert.Nil(t, result)
	})

	t.Run("Update failure rolls the claim back", func(t *testing.T) {
		env := newClaimTestEnv(t)
		user := claimUser(t, env.timeProvider, 200)

		env.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		env.txUserRepo.EXPECT().GetForUpdate(mock.Anything, uint64(9)).Return(user, nil).Once()
		env.txUserRepo.EXPECT().Update(mock.Anything, user).Return(errs.ErrStorage).Once()
		env.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		result, err := env.useCase.ClaimFree(ctx, 9)

		assert.True(t, errs.IsStorageError(err))
		assert.Nil(t, result)
	})
}
