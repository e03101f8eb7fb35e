package user

import (
	"context"

	errs "github.com/predictarena/backend/internal/domain/error"
)

// ClaimResult describes a successful free claim
type ClaimResult struct {
	UserID        uint64
	PointsAwarded int64
	NewBalance    int64
}

// ClaimFree grants the fixed free-point award if the cooldown window has
// elapsed. The check-then-act runs under the user's row lock inside one
// transaction so rapid duplicate requests cannot double-claim
func (u *UseCase) ClaimFree(ctx context.Context, userID uint64) (*ClaimResult, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	result, err := u.claimInTx(txCtx, userID)
	if err != nil {
		if rbErr := u.uow.Rollback(txCtx); rbErr != nil {
			u.logger.Error("Failed to rollback claim transaction", map[string]any{
				"user_id": userID,
				"error":   rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		u.logger.Error("Failed to commit claim transaction", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Free points claimed", map[string]any{
		"user_id":     userID,
		"awarded":     result.PointsAwarded,
		"new_balance": result.NewBalance,
	})

	return result, nil
}

func (u *UseCase) claimInTx(ctx context.Context, userID uint64) (*ClaimResult, error) {
	users := u.uow.GetUserRepository(ctx)

	user, err := users.GetForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if remaining := user.ClaimCooldownRemaining(u.claimCooldown, u.timeProvider); remaining > 0 {
		u.logger.Debug("Free claim rejected by cooldown", map[string]any{
			"user_id":        userID,
			"remaining_secs": int64(remaining.Seconds()),
		})
		return nil, errs.NewCooldownError(userID, remaining)
	}

	user.ApplyFreeClaim(u.claimAward, u.timeProvider)

	if err := users.Update(ctx, user); err != nil {
		return nil, err
	}

	return &ClaimResult{
		UserID:        userID,
		PointsAwarded: u.claimAward,
		NewBalance:    user.Points(),
	}, nil
}
