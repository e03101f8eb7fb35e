package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/predictarena/backend/internal/domain/error"
	coreport "github.com/predictarena/backend/internal/domain/port/core"
	userUseCase "github.com/predictarena/backend/internal/domain/usecase/user"
	"github.com/predictarena/backend/internal/infrastructure/adapter/api/dto"
	"github.com/predictarena/backend/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase *userUseCase.UseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userUseCase *userUseCase.UseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// GetProfile handles the GET /user/me endpoint
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidCredentials,
			Message: "Not authenticated",
		})
		return
	}

	profile, err := h.userUseCase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Error getting user profile", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: messageFromError(err),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{
		ID:                   profile.ID,
		Email:                profile.Email,
		Username:             profile.Username,
		WalletAddress:        profile.WalletAddress,
		Points:               profile.Points,
		TotalTournaments:     profile.TotalTournaments,
		WonTournaments:       profile.WonTournaments,
		LastClaimDate:        profile.LastClaimDate,
		ClaimAvailableInSecs: int64(profile.ClaimAvailableIn.Seconds()),
	})
}

// GetBalance handles the GET /user/balance endpoint
func (h *UserHandler) GetBalance(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidCredentials,
			Message: "Not authenticated",
		})
		return
	}

	points, err := h.userUseCase.GetPoints(c.Request.Context(), userID)
	if err != nil {
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: messageFromError(err),
		})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		UserID: userID,
		Points: points,
	})
}

// ClaimFreePoints handles the POST /user/claim-free-points endpoint
func (h *UserHandler) ClaimFreePoints(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidCredentials,
			Message: "Not authenticated",
		})
		return
	}

	result, err := h.userUseCase.ClaimFree(c.Request.Context(), userID)
	if err != nil {
		var cooldownErr *domainerr.CooldownError
		if errors.As(err, &cooldownErr) {
			c.JSON(http.StatusTooManyRequests, dto.CooldownResponse{
				Code:          domainerr.CodeCooldownActive,
				Message:       cooldownErr.Error(),
				RemainingSecs: int64(cooldownErr.Remaining.Seconds()),
			})
			return
		}
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: messageFromError(err),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ClaimResponse{
		PointsAwarded: result.PointsAwarded,
		NewBalance:    result.NewBalance,
	})
}
