package entity

import (
	"time"

	errs "github.com/predictarena/backend/internal/domain/error"
	coreport "github.com/predictarena/backend/internal/domain/port/core"
)

// User represents a registered player with a point balance
type User struct {
	ID               uint64     // Unique identifier for the user
	Email            string     // Login email, unique
	Username         string     // Display name, unique
	WalletAddress    string     // Optional external wallet identifier
	PasswordHash     string     // Bcrypt hash, never the plaintext
	points           int64      // Point balance, kept private so it can never go negative
	TotalTournaments uint64     // Count of tournaments entered
	WonTournaments   uint64     // Count of tournaments won
	LastClaimDate    *time.Time // When the user last claimed free points, nil if never
	CreatedAt        time.Time  // When the user was created
	UpdatedAt        time.Time  // When the user was last updated
}

// NewUser creates a new user with the given identity and starting balance
func NewUser(email, username, passwordHash string, initialPoints int64, timeProvider coreport.TimeProvider) (*User, error) {
	if email == "" {
		return nil, errs.NewValidationError("email", "must not be empty")
	}
	if username == "" {
		return nil, errs.NewValidationError("username", "must not be empty")
	}
	if initialPoints < 0 {
		return nil, errs.NewValidationError("initialPoints", "must not be negative")
	}

	now := timeProvider.Now()
	return &User{
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		points:       initialPoints,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Points returns the current point balance
func (u *User) Points() int64 {
	return u.points
}

// SetPoints updates the balance directly (for internal use, like repositories)
func (u *User) SetPoints(points int64, timeProvider coreport.TimeProvider) {
	u.points = points
	u.UpdatedAt = timeProvider.Now()
}

// CanAfford checks if the user can cover the given entry fee
func (u *User) CanAfford(fee int64) bool {
	return u.points >= fee
}

// Debit subtracts the amount from the balance.
// Returns an error if the balance would go negative
func (u *User) Debit(amount int64, timeProvider coreport.TimeProvider) error {
	if u.points < amount {
		return errs.NewInsufficientFundsError(u.ID, amount, u.points)
	}
	u.points -= amount
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// Credit adds the amount to the balance
func (u *User) Credit(amount int64, timeProvider coreport.TimeProvider) {
	u.points += amount
	u.UpdatedAt = timeProvider.Now()
}

// ClaimCooldownRemaining reports how long until the user may claim free
// points again. Zero means the claim is available now
func (u *User) ClaimCooldownRemaining(cooldown time.Duration, timeProvider coreport.TimeProvider) time.Duration {
	if u.LastClaimDate == nil {
		return 0
	}
	elapsed := timeProvider.Since(*u.LastClaimDate)
	if elapsed >= cooldown {
		return 0
	}
	return cooldown - elapsed
}

// ApplyFreeClaim credits the award and stamps the claim time
func (u *User) ApplyFreeClaim(award int64, timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	u.points += award
	u.LastClaimDate = &now
	u.UpdatedAt = now
}

// RecordEntry debits the entry fee and bumps the entered-tournaments counter
func (u *User) RecordEntry(fee int64, timeProvider coreport.TimeProvider) error {
	if err := u.Debit(fee, timeProvider); err != nil {
		return err
	}
	u.TotalTournaments++
	return nil
}

// RecordWin credits the prize and bumps the won-tournaments counter
func (u *User) RecordWin(prize int64, timeProvider coreport.TimeProvider) {
	u.Credit(prize, timeProvider)
	u.WonTournaments++
}
