package handler

import (
	"net/http"

	domainerr "github.com/predictarena/backend/internal/domain/error"
	coreport "github.com/predictarena/backend/internal/domain/port/core"
	authUseCase "github.com/predictarena/backend/internal/domain/usecase/auth"
	"github.com/predictarena/backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login HTTP requests
type AuthHandler struct {
	authUseCase *authUseCase.UseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authUseCase *authUseCase.UseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// Register handles the POST /auth/register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Invalid registration payload: " + err.Error(),
		})
		return
	}

	session, err := h.authUseCase.Register(c.Request.Context(), req.Email, req.Username, req.Password, req.WalletAddress)
	if err != nil {
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: messageFromError(err),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.SessionResponse{
		UserID:   session.UserID,
		Username: session.Username,
		Points:   session.Points,
		Token:    session.Token,
	})
}

// Login handles the POST /auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Invalid login payload: " + err.Error(),
		})
		return
	}

	session, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: messageFromError(err),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{
		UserID:   session.UserID,
		Username: session.Username,
		Points:   session.Points,
		Token:    session.Token,
	})
}
