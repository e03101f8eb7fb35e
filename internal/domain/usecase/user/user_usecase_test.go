package user

import (
	"context"
	"testing"
	"time"

	errs "github.com/predictarena/backend/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Profile reflects ledger state and claim availability", func(t *testing.T) {
		env := newClaimTestEnv(t)
		user := claimUser(t, env.timeProvider, 850)
		user.TotalTournaments = 4
		user.WonTournaments = 1
		lastClaim := time.Date(2025, 3, 3, 1, 0, 0, 0, time.UTC)
		user.LastClaimDate = &lastClaim

		env.userRepo.EXPECT().GetByID(mock.Anything, uint64(9)).Return(user, nil).Once()
		env.timeProvider.EXPECT().Since(lastClaim).Return(8 * time.Hour).Once()

		profile, err := env.useCase.GetProfile(ctx, 9)

		require.NoError(t, err)
		assert.Equal(t, uint64(9), profile.ID)
		assert.Equal(t, "bob", profile.Username)
		assert.Equal(t, int64(850), profile.Points)
		assert.Equal(t, uint64(4), profile.TotalTournaments)
		assert.Equal(t, uint64(1), profile.WonTournaments)
		assert.Equal(t, 16*time.Hour, profile.ClaimAvailableIn)
	})

	t.Run("Never-claimed profile reports zero wait", func(t *testing.T) {
		env := newClaimTestEnv(t)
		user := claimUser(t, env.timeProvider, 1000)

		env.userRepo.EXPECT().GetByID(mock.Anything, uint64(9)).Return(user, nil).Once()

		profile, err := env.useCase.GetProfile(ctx, 9)

		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), profile.ClaimAvailableIn)
		assert.Nil(t, profile.LastClaimDate)
	})

	t.Run("Unknown user returns not found", func(t *testing.T) {
		env := newClaimTestEnv(t)

		env.userRepo.EXPECT().GetByID(mock.Anything, uint64(9)).Return(nil, errs.ErrUserNotFound).Once()

		profile, err := env.useCase.GetProfile(ctx, 9)

		assert.True(t, errs.IsNotFoundError(err))
		assert.Nil(t, profile)
	})
}

func TestGetPoints(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the current balance", func(t *testing.T) {
		env := newClaimTestEnv(t)
		user := claimUser(t, env.timeProvider, 1234)

		env.userRepo.EXPECT().GetByID(mock.Anything, uint64(9)).Return(user, nil).Once()

		points, err := env.useCase.GetPoints(ctx, 9)

		require.NoError(t, err)
		assert.Equal(t, int64(1234), points)
	})

	t.Run("Unknown user returns not found", func(t *testing.T) {
		env := newClaimTestEnv(t)

		env.userRepo.EXPECT().GetByID(mock.Anything, uint64(9)).Return(nil, errs.ErrUserNotFound).Once()

		points, err := env.useCase.GetPoints(ctx, 9)

		assert.True(t, errs.IsNotFoundError(err))
		assert.Zero(t, points)
	})
}
