package error

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", ErrValidation, CodeValidation},
		{"Invalid user ID", ErrInvalidUserID, CodeValidation},
		{"Insufficient funds", ErrInsufficientFunds, CodeInsufficientFunds},
		{"Tournament not active", ErrTournamentNotActive, CodeTournamentInactive},
		{"Tournament not closed", ErrTournamentNotClosed, CodeTournamentInactive},
		{"Tournament full", ErrTournamentFull, CodeTournamentFull},
		{"Already entered", ErrAlreadyEntered, CodeAlreadyEntered},
		{"Invalid credentials", ErrInvalidCredentials, CodeInvalidCredentials},
		{"Duplicate user", ErrDuplicateUser, CodeDuplicateUser},
		{"User not found", ErrUserNotFound, CodeNotFound},
		{"Tournament not found", ErrTournamentNotFound, CodeNotFound},
		{"Cooldown active", ErrCooldownActive, CodeCooldownActive},
		{"Unknown error falls back to storage", errors.New("boom"), CodeStorageFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}
}

func TestEntryError(t *testing.T) {
	t.Run("Unwraps to the underlying cause", func(t *testing.T) {
		err := NewEntryError("t-1", 42, "Yes", ErrTournamentFull)

		assert.True(t, errors.Is(err, ErrTournamentFull))
		assert.Equal(t, CodeTournamentFull, ErrorCode(err))
	})

	t.Run("Carries structured log fields", func(t *testing.T) {
		err := NewEntryError("t-1", 42, "Yes", ErrAlreadyEntered)

		var entryErr *EntryError
		assert.True(t, errors.As(err, &entryErr))
		fields := entryErr.LogFields()
		assert.Equal(t, "t-1", fields["tournament_id"])
		assert.Equal(t, uint64(42), fields["user_id"])
	})

	t.Run("Wrapped insufficient funds stays detectable", func(t *testing.T) {
		err := NewEntryError("t-1", 42, "Yes", NewInsufficientFundsError(42, 100, 30))

		assert.True(t, IsInsufficientFundsError(err))
		assert.Equal(t, CodeInsufficientFunds, ErrorCode(err))
	})
}

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError(7, 100, 30)

	assert.True(t, errors.Is(err, ErrInsufficientFunds))
	assert.True(t, IsInsufficientFundsError(err))

	var fundsErr *InsufficientFundsError
	assert.True(t, errors.As(err, &fundsErr))
	assert.Equal(t, uint64(7), fundsErr.UserID)
	assert.Equal(t, int64(100), fundsErr.Required)
	assert.Equal(t, int64(30), fundsErr.Balance)
}

func TestCooldownError(t *testing.T) {
	err := NewCooldownError(7, 90*time.Minute)

	assert.True(t, errors.Is(err, ErrCooldownActive))
	assert.True(t, IsCooldownActiveError(err))

	var cooldownErr *CooldownError
	assert.True(t, errors.As(err, &cooldownErr))
	assert.Equal(t, uint64(7), cooldownErr.UserID)
	assert.Equal(t, 90*time.Minute, cooldownErr.Remaining)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("email", "must not be empty")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "email")
}

func TestIsHelpers(t *testing.T) {
	t.Run("Not found covers all variants", func(t *testing.T) {
		assert.True(t, IsNotFoundError(ErrNotFound))
		assert.True(t, IsNotFoundError(ErrUserNotFound))
		assert.True(t, IsNotFoundError(ErrTournamentNotFound))
		assert.False(t, IsNotFoundError(ErrTournamentFull))
	})

	t.Run("Storage detection sees wrapped errors", func(t *testing.T) {
		wrapped := fmt.Errorf("saving user: %w", ErrStorage)
		assert.True(t, IsStorageError(wrapped))
		assert.False(t, IsStorageError(ErrValidation))
	})

	t.Run("Already entered through an entry error", func(t *testing.T) {
		err := NewEntryError("t-1", 1, "Yes", ErrAlreadyEntered)
		assert.True(t, IsAlreadyEnteredError(err))
	})
}
