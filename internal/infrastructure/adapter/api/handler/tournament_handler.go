package handler

import (
	"net/http"

	domainerr "github.com/predictarena/backend/internal/domain/error"
	coreport "github.com/predictarena/backend/internal/domain/port/core"
	entryUseCase "github.com/predictarena/backend/internal/domain/usecase/entry"
	tournamentUseCase "github.com/predictarena/backend/internal/domain/usecase/tournament"
	"github.com/predictarena/backend/internal/infrastructure/adapter/api/dto"
	"github.com/predictarena/backend/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// TournamentHandler handles public tournament HTTP requests
type TournamentHandler struct {
	tournamentUseCase *tournamentUseCase.UseCase
	entryCoordinator  *entryUseCase.Coordinator
	logger            coreport.Logger
}

// NewTournamentHandler creates a new tournament handler instance
func NewTournamentHandler(
	tournamentUseCase *tournamentUseCase.UseCase,
	entryCoordinator *entryUseCase.Coordinator,
	logger coreport.Logger,
) *TournamentHandler {
	return &TournamentHandler{
		tournamentUseCase: tournamentUseCase,
		entryCoordinator:  entryCoordinator,
		logger:            logger,
	}
}

// List handles the GET /tournaments endpoint
func (h *TournamentHandler) List(c *gin.Context) {
	tournaments, err := h.tournamentUseCase.ListOpen(c.Request.Context())
	if err != nil {
		h.logger.Error("Error listing tournaments", map[string]any{
			"error": err.Error(),
		})
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: messageFromError(err),
		})
		return
	}

	responses := make([]dto.TournamentResponse, 0, len(tournaments))
	for _, t := range tournaments {
		responses = append(responses, dto.FromTournament(t))
	}

	c.JSON(http.StatusOK, responses)
}

// Get handles the GET /tournaments/:id endpoint
func (h *TournamentHandler) Get(c *gin.Context) {
	tournament, err := h.tournamentUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: messageFromError(err),
		})
		return
	}

	c.JSON(http.StatusOK, dto.FromTournament(tournament))
}

// Enter handles the POST /tournaments/:id/enter endpoint
func (h *TournamentHandler) Enter(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidCredentials,
			Message: "Not authenticated",
		})
		return
	}

	var req dto.EnterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Invalid entry payload: " + err.Error(),
		})
		return
	}

	result, err := h.entryCoordinator.Enter(c.Request.Context(), c.Param("id"), userID, req.Prediction)
	if err != nil {
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: messageFromError(err),
		})
		return
	}

	c.JSON(http.StatusOK, dto.EnterResponse{
		TournamentID:        result.TournamentID,
		Prediction:          result.Prediction,
		PointsPaid:          result.PointsPaid,
		RemainingPoints:     result.RemainingPoints,
		PrizePool:           result.PrizePool,
		CurrentParticipants: result.CurrentParticipants,
	})
}
