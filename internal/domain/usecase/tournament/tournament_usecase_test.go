package tournament

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

type tournamentTestEnv struct {
	tournamentRepo    *persistencemocks.MockTournamentRepository
	participationRepo *persistencemocks.MockParticipationRepository
	timeProvider      *coremocks.MockTimeProvider
	logger            *coremocks.MockLogger
	useCase           *UseCase
}

func newTournamentTestEnv(t *testing.T) *tournamentTestEnv {
	t.Helper()

	env := &tournamentTestEnv{
		tournamentRepo:    persistencemocks.NewMockTournamentRepository(t),
		participationRepo: persistencemocks.NewMockParticipationRepository(t),
		timeProvider:      coremocks.NewMockTimeProvider(t),
		logger:            coremocks.NewMockLogger(t),
	}

	fixedTime := time.Date(2025, 3, 6, 12, 0, 0, 0, time.UTC)
	env.timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

	env.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	env.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	env.useCase = NewUseCase(env.tournamentRepo, env.participationRepo, env.timeProvider, env.logger)
	return env
}

func validCreateRequest() CreateRequest {
	start := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	return CreateRequest{
		Category:        "sports",
		Type:            "multiple",
		Options:         []string{"Team A", "Team B", "Draw"},
		EntryFee:        250,
		MaxParticipants: 50,
		StartTime:       start,
		EndTime:         start.Add(24 * time.Hour),
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid request persists a pending tournament", func(t *testing.T) {
		env := newTournamentTestEnv(t)

		env.tournamentRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(tr *entity.Tournament) bool {
			return tr.ID != "" && tr.Status == entity.StatusPending &&
				tr.Category == "sports" && len(tr.Options) == 3
		})).Return(nil).Once()

		tournament, err := env.useCase.Create(ctx, validCreateRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, tournament.ID)
		assert.Equal(t, entity.StatusPending, tournament.Status)
		assert.Equal(t, int64(0), tournament.PrizePool)
	})

	t.Run("Yes/no request ignores custom options", func(t *testing.T) {
		env := newTournamentTestEnv(t)

		req := validCreateRequest()
		req.Type = "yesno"
		req.Options = []string{"custom"}

		env.tournamentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		tournament, err := env.useCase.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, []string{"Yes", "No"}, tournament.Options)
	})

	t.Run("Invalid shape never reaches the repository", func(t *testing.T) {
		env := newTournamentTestEnv(t)

		req := validCreateRequest()
		req.EntryFee = 0

		tournament, err := env.useCase.Create(ctx, req)

		assert.True(t, errs.IsValidationError(err))
		assert.Nil(t, tournament)
	})

	t.Run("Storage failure passes through", func(t *testing.T) {
		env := newTournamentTestEnv(t)

		env.tournamentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrStorage).Once()

		tournament, err := env.useCase.Create(ctx, validCreateRequest())

		assert.True(t, errs.IsStorageError(err))
		assert.Nil(t, tournament)
	})
}

func TestListOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("Asks for active and pending tournaments", func(t *testing.T) {
		env := newTournamentTestEnv(t)

		listed := []*entity.Tournament{{ID: "t-1"}, {ID: "t-2"}}
		env.tournamentRepo.EXPECT().ListByStatus(mock.Anything, entity.StatusActive, entity.StatusPending).Return(listed, nil).Once()

		tournaments, err := env.useCase.ListOpen(ctx)

		require.NoError(t, err)
		assert.Len(t, tournaments, 2)
	})
}

func TestParticipants(t *testing.T) {
	ctx := context.Background()

	t.Run("Lists entries for an existing tournament", func(t *testing.T) {
		env := newTournamentTestEnv(t)

		env.tournamentRepo.EXPECT().GetByID(mock.Anything, "t-1").Return(&entity.Tournament{ID: "t-1"}, nil).Once()
		env.participationRepo.EXPECT().ListByTournament(mock.Anything, "t-1").Return([]*entity.Participation{
			{TournamentID: "t-1", UserID: 1, Prediction: "Yes", PointsPaid: 100},
		}, nil).Once()

		participations, err := env.useCase.Participants(ctx, "t-1")

		require.NoError(t, err)
		assert.Len(t, participations, 1)
	})

	t.Run("Unknown tournament returns not found without listing", func(t *testing.T) {
		env := newTournamentTestEnv(t)

		env.tournamentRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, errs.ErrTournamentNotFound).Once()

		participations, err := env.useCase.Participants(ctx, "missing")

		assert.True(t, errs.IsNotFoundError(err))
		assert.Nil(t, participations)
	})
}
