package handler

import (
	"net/http"

	domainerr "github.com/predictarena/backend/internal/domain/error"
	coreport "github.com/predictarena/backend/internal/domain/port/core"
	settlementUseCase "github.com/predictarena/backend/internal/domain/usecase/settlement"
	tournamentUseCase "github.com/predictarena/backend/internal/domain/usecase/tournament"
	"github.com/predictarena/backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles privileged tournament management requests
type AdminHandler struct {
	tournamentUseCase *tournamentUseCase.UseCase
	settlementEngine  *settlementUseCase.Engine
	logger            coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(
	tournamentUseCase *tournamentUseCase.UseCase,
	settlementEngine *settlementUseCase.Engine,
	logger coreport.Logger,
) *AdminHandler {
	return &AdminHandler{
		tournamentUseCase: tournamentUseCase,
		settlementEngine:  settlementEngine,
		logger:            logger,
	}
}

// CreateTournament handles the POST /admin/tournaments endpoint
func (h *AdminHandler) CreateTournament(c *gin.Context) {
	var req dto.CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Invalid tournament payload: " + err.Error(),
		})
		return
	}

	tournament, err := h.tournamentUseCase.Create(c.Request.Context(), tournamentUseCase.CreateRequest{
		Category:        req.Category,
		Type:            req.Type,
		Options:         req.Options,
		EntryFee:        req.EntryFee,
		MaxParticipants: req.MaxParticipants,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
	})
	if err != nil {
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: messageFromError(err),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.FromTournament(tournament))
}

// ResolveTournament handles the POST /admin/tournaments/:id/resolve endpoint
func (h *AdminHandler) ResolveTournament(c *gin.Context) {
	var req dto.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Invalid resolve payload: " + err.Error(),
		})
		return
	}

	result, err := h.settlementEngine.Resolve(c.Request.Context(), c.Param("id"), req.CorrectAnswer)
	if err != nil {
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: messageFromError(err),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ResolveResponse{
		TournamentID:   result.TournamentID,
		CorrectAnswer:  result.CorrectAnswer,
		WinnerCount:    result.WinnerCount,
		PrizePerWinner: result.PrizePerWinner,
		PrizePool:      result.PrizePool,
	})
}

// ListParticipants handles the GET /admin/tournaments/:id/participants endpoint
func (h *AdminHandler) ListParticipants(c *gin.Context) {
	participations, err := h.tournamentUseCase.Participants(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: messageFromError(err),
		})
		return
	}

	responses := make([]dto.ParticipantResponse, 0, len(participations))
	for _, p := range participations {
		responses = append(responses, dto.ParticipantResponse{
			UserID:     p.UserID,
			Prediction: p.Prediction,
			PointsPaid: p.PointsPaid,
			EnteredAt:  p.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, responses)
}
