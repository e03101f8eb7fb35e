package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/predictarena/backend/internal/domain/entity"
	errs "github.com/predictarena/backend/internal/domain/error"
	coreport "github.com/predictarena/backend/internal/domain/port/core"
	"github.com/predictarena/backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	user := &entity.User{
		ID:               userModel.ID,
		Email:            userModel.Email,
		Username:         userModel.Username,
		WalletAddress:    userModel.WalletAddress,
		PasswordHash:     userModel.PasswordHash,
		TotalTournaments: userModel.TotalTournaments,
		WonTournaments:   userModel.WonTournaments,
		LastClaimDate:    userModel.LastClaimDate,
		CreatedAt:        userModel.CreatedAt,
		UpdatedAt:        userModel.UpdatedAt,
	}
	user.SetPoints(userModel.Points, r.timeProvider)
	user.UpdatedAt = userModel.UpdatedAt
	return user
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateUser
	}

	return fmt.Errorf("%w: %s", errs.ErrStorage, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return r.modelToEntity(&userModel), nil
}

// GetByEmail retrieves a user by login email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		r.logger.Error("Database error when getting user by email", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrStorage, result.Error.Error())
	}

	return r.modelToEntity(&userModel), nil
}

// GetForUpdate retrieves a user by ID holding an exclusive row lock
func (r *UserRepository) GetForUpdate(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&userModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("locking user", result.Error, id)
	}

	return r.modelToEntity(&userModel), nil
}

// Create persists a new user and fills in the generated ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Email:         user.Email,
		Username:      user.Username,
		WalletAddress: user.WalletAddress,
		PasswordHash:  user.PasswordHash,
		Points:        user.Points(),
		LastClaimDate: user.LastClaimDate,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)

	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, 0)
	}

	user.ID = userModel.ID

	r.logger.Info("User created", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
		"points":   user.Points(),
	})
	return nil
}

// Update persists user mutations
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"points":            user.Points(),
			"total_tournaments": user.TotalTournaments,
			"won_tournaments":   user.WonTournaments,
			"last_claim_date":   user.LastClaimDate,
			"updated_at":        user.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, user.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", map[string]any{
			"user_id": user.ID,
		})
		return errs.ErrUserNotFound
	}

	return nil
}

// CreditWin atomically adds the prize and bumps the won counter in one
// statement so settlement never reads stale balances
func (r *UserRepository) CreditWin(ctx context.Context, userID uint64, prize int64) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"points":          gorm.Expr("points + ?", prize),
			"won_tournaments": gorm.Expr("won_tournaments + 1"),
			"updated_at":      r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("crediting winner", result.Error, userID)
	}

	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	r.logger.Debug("Winner credited", map[string]any{
		"user_id": userID,
		"prize":   prize,
	})
	return nil
}
