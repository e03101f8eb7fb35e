package entity

import (
	"testing"
	"time"

	errs "github.com/predictarena/backend/internal/domain/error"
	coremocks "github.com/predictarena/backend/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTournament(t *testing.T, typ Type, options []string) *Tournament {
	t.Helper()

	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	tournament, err := NewTournament(
		"7f4df01e-3a0c-4f2a-9be9-0f1f39f0a001",
		"crypto",
		typ,
		options,
		100,
		3,
		fixedTime.Add(time.Hour),
		fixedTime.Add(2*time.Hour),
		mockTime,
	)
	require.NoError(t, err)
	return tournament
}

func TestNewTournament(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	start := fixedTime.Add(time.Hour)
	end := fixedTime.Add(2 * time.Hour)

	t.Run("Valid yes/no tournament forces fixed options", func(t *testing.T) {
		tournament, err := NewTournament("id-1", "crypto", TypeYesNo, []string{"ignored"}, 100, 10, start, end, mockTime)

		require.NoError(t, err)
		assert.Equal(t, StatusPending, tournament.Status)
		assert.Equal(t, []string{"Yes", "No"}, tournament.Options)
		assert.Equal(t, int64(0), tournament.PrizePool)
		assert.Equal(t, uint32(0), tournament.CurrentParticipants)
	})

	t.Run("Valid multiple-choice tournament keeps its options", func(t *testing.T) {
		options := []string{"Team A", "Team B", "Draw"}
		tournament, err := NewTournament("id-2", "sports", TypeMultiple, options, 250, 50, start, end, mockTime)

		require.NoError(t, err)
		assert.Equal(t, options, tournament.Options)
	})

	t.Run("Unknown type is rejected", func(t *testing.T) {
		tournament, err := NewTournament("id-3", "crypto", Type("ranked"), []string{"a", "b"}, 100, 10, start, end, mockTime)

		assert.Error(t, err)
		assert.True(t, errs.IsValidationError(err))
		assert.Nil(t, tournament)
	})

	t.Run("Fewer than two options is rejected", func(t *testing.T) {
		tournament, err := NewTournament("id-4", "crypto", TypeMultiple, []string{"only"}, 100, 10, start, end, mockTime)

		assert.Error(t, err)
		assert.Nil(t, tournament)
	})

	t.Run("Non-positive entry fee is rejected", func(t *testing.T) {
		for _, fee := range []int64{0, -100} {
			tournament, err := NewTournament("id-5", "crypto", TypeYesNo, nil, fee, 10, start, end, mockTime)
			assert.Error(t, err)
			assert.Nil(t, tournament)
		}
	})

	t.Run("Zero participant cap is rejected", func(t *testing.T) {
		tournament, err := NewTournament("id-6", "crypto", TypeYesNo, nil, 100, 0, start, end, mockTime)

		assert.Error(t, err)
		assert.Nil(t, tournament)
	})

	t.Run("Start not before end is rejected", func(t *testing.T) {
		tournament, err := NewTournament("id-7", "crypto", TypeYesNo, nil, 100, 10, end, start, mockTime)

		assert.Error(t, err)
		assert.Nil(t, tournament)
	})
}

func TestTournamentAcceptEntry(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Each entry grows the pool by the fee", func(t *testing.T) {
		tournament := newTestTournament(t, TypeYesNo, nil)
		tournament.Status = StatusActive

		require.NoError(t, tournament.AcceptEntry(mockTime))
		require.NoError(t, tournament.AcceptEntry(mockTime))

		assert.Equal(t, uint32(2), tournament.CurrentParticipants)
		assert.Equal(t, int64(200), tournament.PrizePool)
	})

	t.Run("Pending tournament rejects entries", func(t *testing.T) {
		tournament := newTestTournament(t, TypeYesNo, nil)

		err := tournament.AcceptEntry(mockTime)

		assert.Equal(t, errs.ErrTournamentNotActive, err)
	})

	t.Run("Full tournament rejects the next entry", func(t *testing.T) {
		tournament := newTestTournament(t, TypeYesNo, nil)
		tournament.Status = StatusActive
		tournament.CurrentParticipants = tournament.MaxParticipants

		err := tournament.AcceptEntry(mockTime)

		assert.Equal(t, errs.ErrTournamentFull, err)
		assert.Equal(t, tournament.MaxParticipants, tournament.CurrentParticipants)
	})
}

func TestTournamentResolve(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Closed tournament resolves with a valid answer", func(t *testing.T) {
		tournament := newTestTournament(t, TypeYesNo, nil)
		tournament.Status = StatusClosed

		err := tournament.Resolve("Yes", mockTime)

		require.NoError(t, err)
		assert.Equal(t, StatusResolved, tournament.Status)
		require.NotNil(t, tournament.CorrectAnswer)
		assert.Equal(t, "Yes", *tournament.CorrectAnswer)
	})

	t.Run("Active tournament cannot be resolved", func(t *testing.T) {
		tournament := newTestTournament(t, TypeYesNo, nil)
		tournament.Status = StatusActive

		err := tournament.Resolve("Yes", mockTime)

		assert.Equal(t, errs.ErrTournamentNotClosed, err)
	})

	t.Run("Resolved tournament cannot be resolved again", func(t *testing.T) {
		tournament := newTestTournament(t, TypeYesNo, nil)
		tournament.Status = StatusClosed
		require.NoError(t, tournament.Resolve("Yes", mockTime))

		err := tournament.Resolve("No", mockTime)

		assert.Equal(t, errs.ErrTournamentNotClosed, err)
		assert.Equal(t, "Yes", *tournament.CorrectAnswer)
	})

	t.Run("Answer outside the option list is rejected", func(t *testing.T) {
		tournament := newTestTournament(t, TypeMultiple, []string{"Team A", "Team B", "Draw"})
		tournament.Status = StatusClosed

		err := tournament.Resolve("Team C", mockTime)

		assert.Error(t, err)
		assert.True(t, errs.IsValidationError(err))
		assert.Equal(t, StatusClosed, tournament.Status)
	})
}

func TestPrizePerWinner(t *testing.T) {
	tournament := newTestTournament(t, TypeYesNo, nil)
	tournament.PrizePool = 100

	t.Run("Floor division drops the remainder", func(t *testing.T) {
		assert.Equal(t, int64(33), tournament.PrizePerWinner(3))
	})

	t.Run("Single winner takes the whole pool", func(t *testing.T) {
		assert.Equal(t, int64(100), tournament.PrizePerWinner(1))
	})

	t.Run("Zero winners pays nothing", func(t *testing.T) {
		assert.Equal(t, int64(0), tournament.PrizePerWinner(0))
	})
}

func TestHasOption(t *testing.T) {
	tournament := newTestTournament(t, TypeMultiple, []string{"Team A", "Team B"})

	assert.True(t, tournament.HasOption("Team A"))
	assert.False(t, tournament.HasOption("team a"))
	assert.False(t, tournament.HasOption("Draw"))
}

func TestStatusAndTypeValidation(t *testing.T) {
	assert.True(t, IsValidStatus("pending"))
	assert.True(t, IsValidStatus("resolved"))
	assert.False(t, IsValidStatus("cancelled"))

	assert.True(t, IsValidType("yesno"))
	assert.True(t, IsValidType("multiple"))
	assert.False(t, IsValidType("ranked"))
}
