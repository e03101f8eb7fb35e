package handler

import (
	"net/http"

	domainerr "github.com/predictarena/backend/internal/domain/error"
)

// statusFromError maps domain errors to HTTP status codes so every
// precondition failure surfaces distinctly at the boundary
func statusFromError(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case domainerr.IsInsufficientFundsError(err):
		return http.StatusPaymentRequired
	case domainerr.IsAlreadyEnteredError(err):
		return http.StatusConflict
	case domainerr.IsCooldownActiveError(err):
		return http.StatusTooManyRequests
	default:
		switch domainerr.ErrorCode(err) {
		case domainerr.CodeTournamentInactive, domainerr.CodeTournamentFull, domainerr.CodeDuplicateUser:
			return http.StatusConflict
		case domainerr.CodeInvalidCredentials:
			return http.StatusUnauthorized
		default:
			return http.StatusInternalServerError
		}
	}
}

// messageFromError picks the user-facing message, hiding internals for
// server-side failures
func messageFromError(err error) string {
	if statusFromError(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}
