package entity

import (
	"testing"
	"time"

	errs "github.com/predictarena/backend/internal/domain/error"
	coremocks "github.com/predictarena/backend/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("alice@example.com", "alice", "hashed-pw", 1000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, int64(1000), user.Points())
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
		assert.Equal(t, uint64(0), user.TotalTournaments)
		assert.Equal(t, uint64(0), user.WonTournaments)
		assert.Nil(t, user.LastClaimDate)
	})

	t.Run("Empty email should return error", func(t *testing.T) {
		user, err := NewUser("", "alice", "hashed-pw", 1000, mockTime)

		assert.Error(t, err)
		assert.True(t, errs.IsValidationError(err))
		assert.Nil(t, user)
	})

	t.Run("Empty username should return error", func(t *testing.T) {
		user, err := NewUser("alice@example.com", "", "hashed-pw", 1000, mockTime)

		assert.Error(t, err)
		assert.True(t, errs.IsValidationError(err))
		assert.Nil(t, user)
	})

	t.Run("Negative initial points should return error", func(t *testing.T) {
		user, err := NewUser("alice@example.com", "alice", "hashed-pw", -1, mockTime)

		assert.Error(t, err)
		assert.True(t, errs.IsValidationError(err))
		assert.Nil(t, user)
	})
}

func TestUserDebitCredit(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Debit within balance", func(t *testing.T) {
		user, _ := NewUser("alice@example.com", "alice", "hashed-pw", 1000, mockTime)

		err := user.Debit(300, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(700), user.Points())
	})

	t.Run("Debit exact balance leaves zero", func(t *testing.T) {
		user, _ := NewUser("alice@example.com", "alice", "hashed-pw", 1000, mockTime)

		err := user.Debit(1000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(0), user.Points())
	})

	t.Run("Debit beyond balance is rejected", func(t *testing.T) {
		user, _ := NewUser("alice@example.com", "alice", "hashed-pw", 100, mockTime)

		err := user.Debit(101, mockTime)

		assert.Error(t, err)
		assert.True(t, errs.IsInsufficientFundsError(err))
		assert.Equal(t, int64(100), user.Points())
	})

	t.Run("Credit adds to balance", func(t *testing.T) {
		user, _ := NewUser("alice@example.com", "alice", "hashed-pw", 100, mockTime)

		user.Credit(50, mockTime)

		assert.Equal(t, int64(150), user.Points())
	})

	t.Run("CanAfford boundary", func(t *testing.T) {
		user, _ := NewUser("alice@example.com", "alice", "hashed-pw", 100, mockTime)

		assert.True(t, user.CanAfford(100))
		assert.False(t, user.CanAfford(101))
	})
}

func TestUserRecordEntry(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Entry debits fee and bumps counter", func(t *testing.T) {
		user, _ := NewUser("alice@example.com", "alice", "hashed-pw", 1000, mockTime)

		err := user.RecordEntry(100, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(900), user.Points())
		assert.Equal(t, uint64(1), user.TotalTournaments)
	})

	t.Run("Entry without funds leaves counter untouched", func(t *testing.T) {
		user, _ := NewUser("alice@example.com", "alice", "hashed-pw", 50, mockTime)

		err := user.RecordEntry(100, mockTime)

		assert.Error(t, err)
		assert.Equal(t, int64(50), user.Points())
		assert.Equal(t, uint64(0), user.TotalTournaments)
	})
}

func TestUserRecordWin(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	user, _ := NewUser("alice@example.com", "alice", "hashed-pw", 900, mockTime)

	user.RecordWin(450, mockTime)

	assert.Equal(t, int64(1350), user.Points())
	assert.Equal(t, uint64(1), user.WonTournaments)
}

func TestClaimCooldownRemaining(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	cooldown := 24 * time.Hour

	t.Run("Never claimed means available now", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		user, _ := NewUser("alice@example.com", "alice", "hashed-pw", 1000, mockTime)

		assert.Equal(t, time.Duration(0), user.ClaimCooldownRemaining(cooldown, mockTime))
	})

	t.Run("Within cooldown reports remaining time", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		user, _ := NewUser("alice@example.com", "alice", "hashed-pw", 1000, mockTime)
		lastClaim := fixedTime.Add(-10 * time.Hour)
		user.LastClaimDate = &lastClaim

		mockTime.EXPECT().Since(lastClaim).Return(10 * time.Hour).Once()

		assert.Equal(t, 14*time.Hour, user.ClaimCooldownRemaining(cooldown, mockTime))
	})

	t.Run("After cooldown the claim is available again", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		user, _ := NewUser("alice@example.com", "alice", "hashed-pw", 1000, mockTime)
		lastClaim := fixedTime.Add(-25 * time.Hour)
		user.LastClaimDate = &lastClaim

		mockTime.EXPECT().Since(lastClaim).Return(25 * time.Hour).Once()

		assert.Equal(t, time.Duration(0), user.ClaimCooldownRemaining(cooldown, mockTime))
	})
}

func TestApplyFreeClaim(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	user, _ := NewUser("alice@example.com", "alice", "hashed-pw", 200, mockTime)

	user.ApplyFreeClaim(500, mockTime)

	assert.Equal(t, int64(700), user.Points())
	require.NotNil(t, user.LastClaimDate)
	assert.Equal(t, fixedTime, *user.LastClaimDate)
}
