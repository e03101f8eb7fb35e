package persistence

import (
	"context"

	"github.com/predictarena/backend/internal/domain/entity"
)

// UserRepository defines the methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the ID exists
	// - ErrStorage: if the database fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by login email
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the email exists
	// - ErrStorage: if the database fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetForUpdate retrieves a user by ID holding an exclusive row lock.
	// Must run inside a unit-of-work transaction; the lock is released
	// on commit or rollback
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the ID exists
	// - ErrStorage: if the database fails
	GetForUpdate(ctx context.Context, id uint64) (*entity.User, error)

	// Create persists a new user and fills in the generated ID
	//
	// Possible errors:
	// - ErrDuplicateUser: if the email or username is already taken
	// - ErrStorage: if the database fails
	Create(ctx context.Context, user *entity.User) error

	// Update persists user mutations (points, counters, claim stamp)
	//
	// Possible errors:
	// - ErrUserNotFound: if the user doesn't exist
	// - ErrStorage: if the database fails
	Update(ctx context.Context, user *entity.User) error

	// CreditWin atomically adds the prize to the user's points and
	// increments the won-tournaments counter in a single statement
	//
	// Possible errors:
	// - ErrUserNotFound: if the user doesn't exist
	// - ErrStorage: if the database fails
	CreditWin(ctx context.Context, userID uint64, prize int64) error
}
