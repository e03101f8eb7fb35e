package routes

import (
	coreport "github.com/predictarena/backend/internal/domain/port/core"
	"github.com/predictarena/backend/internal/domain/port/security"
	"github.com/predictarena/backend/internal/infrastructure/adapter/api/handler"
	"github.com/predictarena/backend/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	tournamentHandler *handler.TournamentHandler,
	adminHandler *handler.AdminHandler,
	healthHandler *handler.HealthHandler,
	tokens security.TokenService,
	adminKey string,
	logger coreport.Logger,
) {
	router.GET("/health", healthHandler.Check)

	// Auth routes
	authRoutes := router.Group("/auth")
	{
		// POST /auth/register
		authRoutes.POST("/register", authHandler.Register)

		// POST /auth/login
		authRoutes.POST("/login", authHandler.Login)
	}

	// Tournament routes; listing and reading are public, entering requires a session
	tournamentRoutes := router.Group("/tournaments")
	{
		// GET /tournaments
		tournamentRoutes.GET("", tournamentHandler.List)

		// GET /tournaments/:id
		tournamentRoutes.GET("/:id", tournamentHandler.Get)

		// POST /tournaments/:id/enter
		tournamentRoutes.POST("/:id/enter", middleware.Auth(tokens, logger), tournamentHandler.Enter)
	}

	// User routes
	userRoutes := router.Group("/user", middleware.Auth(tokens, logger))
	{
		// GET /user/me
		userRoutes.GET("/me", userHandler.GetProfile)

		// GET /user/balance
		userRoutes.GET("/balance", userHandler.GetBalance)

		// POST /user/claim-free-points
		userRoutes.POST("/claim-free-points", userHandler.ClaimFreePoints)
	}

	// Admin routes
	adminRoutes := router.Group("/admin", middleware.AdminKey(adminKey, logger))
	{
		// POST /admin/tournaments
		adminRoutes.POST("/tournaments", adminHandler.CreateTournament)

		// POST /admin/tournaments/:id/resolve
		adminRoutes.POST("/tournaments/:id/resolve", adminHandler.ResolveTournament)

		// GET /admin/tournaments/:id/participants
		adminRoutes.GET("/tournaments/:id/participants", adminHandler.ListParticipants)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, requestsPerSecond float64, burst int) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimit(requestsPerSecond, burst))
}
