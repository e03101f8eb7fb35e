package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/predictarena/backend/internal/domain/entity"
	errs "github.com/predictarena/backend/internal/domain/error"
	coreport "github.com/predictarena/backend/internal/domain/port/core"
	"github.com/predictarena/backend/internal/domain/port/persistence"
	"github.com/predictarena/backend/internal/domain/port/security"
)

// UseCase handles registration and login. It hashes passwords and issues
// signed tokens; downstream use cases only ever see an authenticated userID
type UseCase struct {
	userRepo      persistence.UserRepository
	hasher        security.PasswordHasher
	tokens        security.TokenService
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
	initialPoints int64
}

// NewUseCase creates a new auth use case
func NewUseCase(
	userRepo persistence.UserRepository,
	hasher security.PasswordHasher,
	tokens security.TokenService,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	initialPoints int64,
) *UseCase {
	return &UseCase{
		userRepo:      userRepo,
		hasher:        hasher,
		tokens:        tokens,
		timeProvider:  timeProvider,
		logger:        logger,
		initialPoints: initialPoints,
	}
}

// Session is the result of a successful register or login
type Session struct {
	UserID   uint64
	Username string
	Points   int64
	Token    string
}

// Register creates a user with the starting balance and returns a session
func (u *UseCase) Register(ctx context.Context, email, username, password, walletAddress string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)

	if !strings.Contains(email, "@") {
		return nil, errs.NewValidationError("email", "must be a valid email address")
	}
	if len(password) < 8 {
		return nil, errs.NewValidationError("password", "must be at least 8 characters")
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := entity.NewUser(email, username, hash, u.initialPoints, u.timeProvider)
	if err != nil {
		return nil, err
	}
	user.WalletAddress = walletAddress

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, errs.ErrDuplicateUser) {
			u.logger.Warn("Registration with taken identity", map[string]any{
				"email":    email,
				"username": username,
			})
		}
		return nil, err
	}

	token, err := u.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	u.logger.Info("User registered", map[string]any{
		"user_id":  user.ID,
		"username": username,
		"points":   user.Points(),
	})

	return &Session{
		UserID:   user.ID,
		Username: user.Username,
		Points:   user.Points(),
		Token:    token,
	}, nil
}

// Login checks credentials and returns a fresh session
func (u *UseCase) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			// Same error as a wrong password so login can't probe for accounts
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		u.logger.Warn("Login with wrong password", map[string]any{
			"user_id": user.ID,
		})
		return nil, errs.ErrInvalidCredentials
	}

	token, err := u.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	u.logger.Info("User logged in", map[string]any{
		"user_id": user.ID,
	})

	return &Session{
		UserID:   user.ID,
		Username: user.Username,
		Points:   user.Points(),
		Token:    token,
	}, nil
}
