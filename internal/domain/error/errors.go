package error

import (
	"errors"
	"fmt"
	"time"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation         = 4001
	CodeInsufficientFunds  = 4002
	CodeTournamentInactive = 4003
	CodeTournamentFull     = 4004
	CodeAlreadyEntered     = 4005
	CodeInvalidCredentials = 4010
	CodeNotFound           = 4040
	CodeDuplicateUser      = 4090
	CodeCooldownActive     = 4290

	// 5xxx - Server errors
	CodeStorageFailure = 5000
)

// Base error types
var (
	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTournamentNotFound is returned when the requested tournament doesn't exist
	ErrTournamentNotFound = errors.New("tournament not found")

	// ErrTournamentNotActive is returned when entering a tournament that is not accepting entries
	ErrTournamentNotActive = errors.New("tournament is not active")

	// ErrTournamentNotClosed is returned when resolving a tournament that has not closed yet
	ErrTournamentNotClosed = errors.New("tournament is not closed")

	// ErrInsufficientFunds is returned when a user cannot cover a tournament's entry fee
	ErrInsufficientFunds = errors.New("insufficient points")

	// ErrTournamentFull is returned when a tournament has reached its participant cap
	ErrTournamentFull = errors.New("tournament is full")

	// ErrAlreadyEntered is returned when a user already holds an entry in the tournament
	ErrAlreadyEntered = errors.New("user already entered this tournament")

	// ErrCooldownActive is returned when the free-claim cooldown has not elapsed
	ErrCooldownActive = errors.New("free claim cooldown is active")

	// ErrValidation is returned when request input fails validation
	ErrValidation = errors.New("validation failed")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidCredentials is returned when login credentials don't match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateUser is returned when registering with an email or username already in use
	ErrDuplicateUser = errors.New("user already exists")

	// ErrStorage is returned when the durable store fails; the enclosing
	// transaction has been rolled back by the time callers see this
	ErrStorage = errors.New("storage failure")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidUserID):
		return CodeValidation
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrTournamentNotActive), errors.Is(err, ErrTournamentNotClosed):
		return CodeTournamentInactive
	case errors.Is(err, ErrTournamentFull):
		return CodeTournamentFull
	case errors.Is(err, ErrAlreadyEntered):
		return CodeAlreadyEntered
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUserNotFound), errors.Is(err, ErrTournamentNotFound):
		return CodeNotFound
	case errors.Is(err, ErrCooldownActive):
		return CodeCooldownActive
	default:
		return CodeStorageFailure
	}
}

// EntryError represents a failed tournament entry attempt
type EntryError struct {
	TournamentID string
	UserID       uint64
	Prediction   string
	Err          error
}

// Error implements the error interface for EntryError
func (e *EntryError) Error() string {
	return fmt.Sprintf("entry failed for user %d in tournament %s: %v",
		e.UserID, e.TournamentID, e.Err)
}

// Unwrap returns the underlying error
func (e *EntryError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *EntryError) LogFields() map[string]any {
	return map[string]any{
		"error_type":    "entry_error",
		"tournament_id": e.TournamentID,
		"user_id":       e.UserID,
		"prediction":    e.Prediction,
		"error":         e.Err.Error(),
		"error_code":    ErrorCode(e.Err),
	}
}

// NewEntryError creates a detailed entry error
func NewEntryError(tournamentID string, userID uint64, prediction string, err error) error {
	return &EntryError{
		TournamentID: tournamentID,
		UserID:       userID,
		Prediction:   prediction,
		Err:          err,
	}
}

// InsufficientFundsError provides detailed error information for an uncovered entry fee
type InsufficientFundsError struct {
	UserID   uint64
	Required int64
	Balance  int64
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient points for user %d: required %d, available %d",
		e.UserID, e.Required, e.Balance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"user_id":    e.UserID,
		"required":   e.Required,
		"balance":    e.Balance,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID uint64, required, balance int64) error {
	return &InsufficientFundsError{
		UserID:   userID,
		Required: required,
		Balance:  balance,
	}
}

// CooldownError reports how long a user must wait before the next free claim
type CooldownError struct {
	UserID    uint64
	Remaining time.Duration
}

// Error implements the error interface
func (e *CooldownError) Error() string {
	return fmt.Sprintf("free claim cooldown active for user %d: %s remaining",
		e.UserID, e.Remaining.Round(time.Second))
}

// Is checks if the target error is an ErrCooldownActive
func (e *CooldownError) Is(target error) bool {
	return target == ErrCooldownActive
}

// LogFields returns a map of fields for structured logging
func (e *CooldownError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "cooldown_active",
		"user_id":        e.UserID,
		"remaining_secs": int64(e.Remaining.Seconds()),
		"error_code":     CodeCooldownActive,
	}
}

// NewCooldownError creates a new cooldown error with the remaining wait time
func NewCooldownError(userID uint64, remaining time.Duration) error {
	return &CooldownError{
		UserID:    userID,
		Remaining: remaining,
	}
}

// ValidationError carries the field that failed validation
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a new field-level validation error
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsInsufficientFundsError checks if the error is related to an uncovered entry fee
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsAlreadyEnteredError checks if the error is a duplicate entry error
func IsAlreadyEnteredError(err error) bool {
	return errors.Is(err, ErrAlreadyEntered)
}

// IsCooldownActiveError checks if the error is a free-claim cooldown error
func IsCooldownActiveError(err error) bool {
	return errors.Is(err, ErrCooldownActive)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTournamentNotFound)
}

// IsValidationError checks if the error is an input validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrInvalidUserID)
}

// IsStorageError checks if the error is a storage failure, the only kind
// considered potentially transient
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}
