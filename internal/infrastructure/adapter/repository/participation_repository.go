package repository

import (
	"context"
	"fmt"

	"github.com/predictarena/backend/internal/domain/entity"
	errs "github.com/predictarena/backend/internal/domain/error"
	coreport "github.com/predictarena/backend/internal/domain/port/core"
	"github.com/predictarena/backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ParticipationRepository implements ParticipationRepository interface using GORM
type ParticipationRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewParticipationRepository creates a new ParticipationRepository instance
func NewParticipationRepository(db *gorm.DB, logger coreport.Logger) *ParticipationRepository {
	return &ParticipationRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *ParticipationRepository) modelToEntity(m *model.Participation) *entity.Participation {
	return &entity.Participation{
		ID:           m.ID,
		TournamentID: m.TournamentID,
		UserID:       m.UserID,
		Prediction:   m.Prediction,
		PointsPaid:   m.PointsPaid,
		CreatedAt:    m.CreatedAt,
	}
}

// Create persists a new participation record. The unique index on
// (tournament_id, user_id) backstops the duplicate-entry precondition
func (r *ParticipationRepository) Create(ctx context.Context, participation *entity.Participation) error {
	m := model.Participation{
		TournamentID: participation.TournamentID,
		UserID:       participation.UserID,
		Prediction:   participation.Prediction,
		PointsPaid:   participation.PointsPaid,
		CreatedAt:    participation.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&m)

	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate participation rejected by unique index", map[string]any{
				"tournament_id": participation.TournamentID,
				"user_id":       participation.UserID,
			})
			return errs.ErrAlreadyEntered
		}
		r.logger.Error("Database error when creating participation", map[string]any{
			"tournament_id": participation.TournamentID,
			"user_id":       participation.UserID,
			"error":         result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrStorage, result.Error.Error())
	}

	participation.ID = m.ID
	return nil
}

// Exists checks whether the user already entered the tournament
func (r *ParticipationRepository) Exists(ctx context.Context, tournamentID string, userID uint64) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Participation{}).
		Where("tournament_id = ? AND user_id = ?", tournamentID, userID).
		Count(&count)

	if result.Error != nil {
		r.logger.Error("Database error when checking participation", map[string]any{
			"tournament_id": tournamentID,
			"user_id":       userID,
			"error":         result.Error.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrStorage, result.Error.Error())
	}

	return count > 0, nil
}

// ListByTournament returns all entries for a tournament
func (r *ParticipationRepository) ListByTournament(ctx context.Context, tournamentID string) ([]*entity.Participation, error) {
	var models []model.Participation
	result := r.db.WithContext(ctx).
		Where("tournament_id = ?", tournamentID).
		Order("created_at ASC").
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Database error when listing participations", map[string]any{
			"tournament_id": tournamentID,
			"error":         result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrStorage, result.Error.Error())
	}

	return r.modelsToEntities(models), nil
}

// ListWinners returns the entries whose prediction equals the answer
func (r *ParticipationRepository) ListWinners(ctx context.Context, tournamentID, correctAnswer string) ([]*entity.Participation, error) {
	var models []model.Participation
	result := r.db.WithContext(ctx).
		Where("tournament_id = ? AND prediction = ?", tournamentID, correctAnswer).
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Database error when listing winners", map[string]any{
			"tournament_id": tournamentID,
			"error":         result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrStorage, result.Error.Error())
	}

	return r.modelsToEntities(models), nil
}

func (r *ParticipationRepository) modelsToEntities(models []model.Participation) []*entity.Participation {
	entities := make([]*entity.Participation, 0, len(models))
	for i := range models {
		entities = append(entities, r.modelToEntity(&models[i]))
	}
	return entities
}
