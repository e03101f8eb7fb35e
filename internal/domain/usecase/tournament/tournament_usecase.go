package tournament

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/predictarena/backend/internal/domain/entity"
	coreport "github.com/predictarena/backend/internal/domain/port/core"
	"github.com/predictarena/backend/internal/domain/port/persistence"
)

// UseCase handles tournament creation and the public read model.
// Options cross this boundary only as decoded ordered lists
type UseCase struct {
	tournamentRepo    persistence.TournamentRepository
	participationRepo persistence.ParticipationRepository
	timeProvider      coreport.TimeProvider
	logger            coreport.Logger
}

// NewUseCase creates a new tournament use case
func NewUseCase(
	tournamentRepo persistence.TournamentRepository,
	participationRepo persistence.ParticipationRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		tournamentRepo:    tournamentRepo,
		participationRepo: participationRepo,
		timeProvider:      timeProvider,
		logger:            logger,
	}
}

// CreateRequest carries the fields needed to open a new tournament
type CreateRequest struct {
	Category        string
	Type            string
	Options         []string
	EntryFee        int64
	MaxParticipants uint32
	StartTime       time.Time
	EndTime         time.Time
}

// Create validates and persists a new pending tournament
func (u *UseCase) Create(ctx context.Context, req CreateRequest) (*entity.Tournament, error) {
	tournament, err := entity.NewTournament(
		uuid.NewString(),
		req.Category,
		entity.Type(req.Type),
		req.Options,
		req.EntryFee,
		req.MaxParticipants,
		req.StartTime,
		req.EndTime,
		u.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if err := u.tournamentRepo.Create(ctx, tournament); err != nil {
		return nil, err
	}

	u.logger.Info("Tournament created", map[string]any{
		"tournament_id": tournament.ID,
		"category":      tournament.Category,
		"type":          string(tournament.Type),
		"entry_fee":     tournament.EntryFee,
		"max_players":   tournament.MaxParticipants,
	})

	return tournament, nil
}

// ListOpen returns active and pending tournaments ordered by start time
func (u *UseCase) ListOpen(ctx context.Context) ([]*entity.Tournament, error) {
	return u.tournamentRepo.ListByStatus(ctx, entity.StatusActive, entity.StatusPending)
}

// Get returns a single tournament by ID
func (u *UseCase) Get(ctx context.Context, id string) (*entity.Tournament, error) {
	return u.tournamentRepo.GetByID(ctx, id)
}

// Participants returns the entry records for a tournament
func (u *UseCase) Participants(ctx context.Context, tournamentID string) ([]*entity.Participation, error) {
	if _, err := u.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		return nil, err
	}
	return u.participationRepo.ListByTournament(ctx, tournamentID)
}
