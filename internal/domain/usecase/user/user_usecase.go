package user

import (
	"context"
	"time"

	"github.com/predictarena/backend/internal/domain/entity"
	coreport "github.com/predictarena/backend/internal/domain/port/core"
	"github.com/predictarena/backend/internal/domain/port/persistence"
)

// UseCase handles user-facing ledger reads and the free-claim grant
type UseCase struct {
	userRepo      persistence.UserRepository
	uow           persistence.UnitOfWork
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
	claimAward    int64
	claimCooldown time.Duration
}

// NewUseCase creates a new user use case
func NewUseCase(
	userRepo persistence.UserRepository,
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	claimAward int64,
	claimCooldown time.Duration,
) *UseCase {
	return &UseCase{
		userRepo:      userRepo,
		uow:           uow,
		timeProvider:  timeProvider,
		logger:        logger,
		claimAward:    claimAward,
		claimCooldown: claimCooldown,
	}
}

// Profile is the user read model exposed at the API boundary
type Profile struct {
	ID               uint64
	Email            string
	Username         string
	WalletAddress    string
	Points           int64
	TotalTournaments uint64
	WonTournaments   uint64
	LastClaimDate    *time.Time
	ClaimAvailableIn time.Duration
}

// GetProfile returns the user's profile including claim availability
func (u *UseCase) GetProfile(ctx context.Context, userID uint64) (*Profile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.toProfile(user), nil
}

// GetPoints returns the user's current point balance
func (u *UseCase) GetPoints(ctx context.Context, userID uint64) (int64, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.Points(), nil
}

func (u *UseCase) toProfile(user *entity.User) *Profile {
	return &Profile{
		ID:               user.ID,
		Email:            user.Email,
		Username:         user.Username,
		WalletAddress:    user.WalletAddress,
		Points:           user.Points(),
		TotalTournaments: user.TotalTournaments,
		WonTournaments:   user.WonTournaments,
		LastClaimDate:    user.LastClaimDate,
		ClaimAvailableIn: user.ClaimCooldownRemaining(u.claimCooldown, u.timeProvider),
	}
}
