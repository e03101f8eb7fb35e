package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/predictarena/backend/internal/domain/entity"
	errs "github.com/predictarena/backend/internal/domain/error"
	coreport "github.com/predictarena/backend/internal/domain/port/core"
	"github.com/predictarena/backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TournamentRepository implements TournamentRepository interface using GORM
type TournamentRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewTournamentRepository creates a new TournamentRepository instance
func NewTournamentRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TournamentRepository {
	return &TournamentRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// modelToEntity converts a tournament model to an entity, decoding the
// stored option list
func (r *TournamentRepository) modelToEntity(m *model.Tournament) (*entity.Tournament, error) {
	options, err := model.DecodeOptions(m.Options)
	if err != nil {
		r.logger.Error("Stored tournament options are corrupt", map[string]any{
			"tournament_id": m.ID,
			"error":         err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrStorage, err.Error())
	}

	return &entity.Tournament{
		ID:                  m.ID,
		Category:            m.Category,
		Type:                entity.Type(m.Type),
		Options:             options,
		EntryFee:            m.EntryFee,
		MaxParticipants:     m.MaxParticipants,
		CurrentParticipants: m.CurrentParticipants,
		PrizePool:           m.PrizePool,
		StartTime:           m.StartTime,
		EndTime:             m.EndTime,
		Status:              entity.Status(m.Status),
		CorrectAnswer:       m.CorrectAnswer,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}, nil
}

// handleDatabaseError standardizes database error handling
func (r *TournamentRepository) handleDatabaseError(operation string, err error, tournamentID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Tournament not found", map[string]any{
			"tournament_id": tournamentID,
		})
		return errs.ErrTournamentNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"tournament_id": tournamentID,
		"error":         err.Error(),
	})

	return fmt.Errorf("%w: %s", errs.ErrStorage, err.Error())
}

// GetByID retrieves a tournament by ID
func (r *TournamentRepository) GetByID(ctx context.Context, id string) (*entity.Tournament, error) {
	var m model.Tournament
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&m)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting tournament", result.Error, id)
	}

	return r.modelToEntity(&m)
}

// GetForUpdate retrieves a tournament by ID holding an exclusive row lock
func (r *TournamentRepository) GetForUpdate(ctx context.Context, id string) (*entity.Tournament, error) {
	var m model.Tournament
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&m)

	if result.Error != nil {
		return nil, r.handleDatabaseError("locking tournament", result.Error, id)
	}

	return r.modelToEntity(&m)
}

// Create persists a new tournament
func (r *TournamentRepository) Create(ctx context.Context, tournament *entity.Tournament) error {
	encoded, err := model.EncodeOptions(tournament.Options)
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrStorage, err.Error())
	}

	m := model.Tournament{
		ID:                  tournament.ID,
		Category:            tournament.Category,
		Type:                string(tournament.Type),
		Options:             encoded,
		EntryFee:            tournament.EntryFee,
		MaxParticipants:     tournament.MaxParticipants,
		CurrentParticipants: tournament.CurrentParticipants,
		PrizePool:           tournament.PrizePool,
		StartTime:           tournament.StartTime,
		EndTime:             tournament.EndTime,
		Status:              string(tournament.Status),
		CorrectAnswer:       tournament.CorrectAnswer,
		CreatedAt:           tournament.CreatedAt,
		UpdatedAt:           tournament.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&m)

	if result.Error != nil {
		return r.handleDatabaseError("creating tournament", result.Error, tournament.ID)
	}

	return nil
}

// Update persists tournament mutations
func (r *TournamentRepository) Update(ctx context.Context, tournament *entity.Tournament) error {
	result := r.db.WithContext(ctx).Model(&model.Tournament{}).
		Where("id = ?", tournament.ID).
		Updates(map[string]interface{}{
			"status":               string(tournament.Status),
			"current_participants": tournament.CurrentParticipants,
			"prize_pool":           tournament.PrizePool,
			"correct_answer":       tournament.CorrectAnswer,
			"updated_at":           tournament.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating tournament", result.Error, tournament.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Tournament not found during update", map[string]any{
			"tournament_id": tournament.ID,
		})
		return errs.ErrTournamentNotFound
	}

	return nil
}

// ListByStatus returns tournaments in any of the given states
func (r *TournamentRepository) ListByStatus(ctx context.Context, statuses ...entity.Status) ([]*entity.Tournament, error) {
	statusStrings := make([]string, 0, len(statuses))
	for _, s := range statuses {
		statusStrings = append(statusStrings, string(s))
	}

	var models []model.Tournament
	result := r.db.WithContext(ctx).
		Where("status IN ?", statusStrings).
		Order("start_time ASC").
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Database error when listing tournaments", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrStorage, result.Error.Error())
	}

	tournaments := make([]*entity.Tournament, 0, len(models))
	for i := range models {
		t, err := r.modelToEntity(&models[i])
		if err != nil {
			return nil, err
		}
		tournaments = append(tournaments, t)
	}

	return tournaments, nil
}

// ActivateDue flips due pending tournaments to active.
// The status guard in the WHERE clause makes re-runs no-ops
func (r *TournamentRepository) ActivateDue(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Tournament{}).
		Where("status = ? AND start_time <= ?", string(entity.StatusPending), now).
		Updates(map[string]interface{}{
			"status":     string(entity.StatusActive),
			"updated_at": now,
		})

	if result.Error != nil {
		r.logger.Error("Database error when activating due tournaments", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrStorage, result.Error.Error())
	}

	return result.RowsAffected, nil
}

// CloseDue flips due active tournaments to closed
func (r *TournamentRepository) CloseDue(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Tournament{}).
		Where("status = ? AND end_time <= ?", string(entity.StatusActive), now).
		Updates(map[string]interface{}{
			"status":     string(entity.StatusClosed),
			"updated_at": now,
		})

	if result.Error != nil {
		r.logger.Error("Database error when closing due tournaments", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrStorage, result.Error.Error())
	}

	return result.RowsAffected, nil
}
