package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	authUseCase "github.com/predictarena/backend/internal/domain/usecase/auth"
	entryUseCase "github.com/predictarena/backend/internal/domain/usecase/entry"
	"github.com/predictarena/backend/internal/domain/usecase/lifecycle"
	settlementUseCase "github.com/predictarena/backend/internal/domain/usecase/settlement"
	tournamentUseCase "github.com/predictarena/backend/internal/domain/usecase/tournament"
	userUseCase "github.com/predictarena/backend/internal/domain/usecase/user"

	"github.com/predictarena/backend/internal/infrastructure/adapter/api/handler"
	"github.com/predictarena/backend/internal/infrastructure/adapter/api/routes"
	"github.com/predictarena/backend/internal/infrastructure/adapter/database"
	"github.com/predictarena/backend/internal/infrastructure/adapter/database/migration"
	"github.com/predictarena/backend/internal/infrastructure/adapter/logger"
	"github.com/predictarena/backend/internal/infrastructure/adapter/repository"
	"github.com/predictarena/backend/internal/infrastructure/adapter/security"
	timeProvider "github.com/predictarena/backend/internal/infrastructure/adapter/time"
	"github.com/predictarena/backend/internal/infrastructure/config"
	"github.com/predictarena/backend/internal/infrastructure/scheduler"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logger.LevelFromString(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	// Setup database configuration
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	conn, err := database.NewConnection(dbConfig)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = conn.Close() }()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(conn.DB, appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(conn.DB, tp, appLogger)
	tournamentRepo := repository.NewTournamentRepository(conn.DB, tp, appLogger)
	participationRepo := repository.NewParticipationRepository(conn.DB, appLogger)

	// Unit of work (transaction boundary)
	uow := database.NewUnitOfWork(conn.DB, appLogger, tp)

	// Security adapters
	hasher := security.NewBcryptHasher()
	tokens := security.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)

	// Initialize use cases
	authService := authUseCase.NewUseCase(userRepo, hasher, tokens, tp, appLogger, cfg.Economy.InitialPoints)
	userService := userUseCase.NewUseCase(userRepo, uow, tp, appLogger, cfg.Economy.FreeClaimPoints, cfg.Economy.ClaimCooldown)
	tournamentService := tournamentUseCase.NewUseCase(tournamentRepo, participationRepo, tp, appLogger)
	entryCoordinator := entryUseCase.NewCoordinator(uow, tp, appLogger)
	settlementEngine := settlementUseCase.NewEngine(uow, tp, appLogger)
	sweeper := lifecycle.NewSweeper(tournamentRepo, tp, appLogger)

	// Seed development fixtures
	if cfg.Environment == config.Development {
		if err := migration.SeedTournaments(context.Background(), tournamentService, tp.Now()); err != nil {
			appLogger.Warn("Failed to seed tournaments", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// Initialize API handlers
	authHandler := handler.NewAuthHandler(authService, appLogger)
	userHandler := handler.NewUserHandler(userService, appLogger)
	tournamentHandler := handler.NewTournamentHandler(tournamentService, entryCoordinator, appLogger)
	adminHandler := handler.NewAdminHandler(tournamentService, settlementEngine, appLogger)
	healthHandler := handler.NewHealthHandler(conn, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	// Setup routes
	routes.SetupRoutes(router, authHandler, userHandler, tournamentHandler, adminHandler, healthHandler, tokens, cfg.Auth.AdminKey, appLogger)

	// Start the lifecycle scheduler
	lifecycleScheduler, err := scheduler.NewScheduler(sweeper, cfg.Scheduler.SweepInterval, appLogger)
	if err != nil {
		appLogger.Error("Failed to create scheduler", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	if err := lifecycleScheduler.Start(); err != nil {
		appLogger.Error("Failed to start scheduler", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop the scheduler so no sweep starts mid-shutdown
	if err := lifecycleScheduler.Stop(); err != nil {
		appLogger.Error("Failed to stop scheduler", map[string]any{
			"error": err.Error(),
		})
	}

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("PT_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or PT_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}

	if cfg.Database.Username == "" {
		if cfg.Environment == config.Production && os.Getenv("PT_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or PT_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}

	if cfg.Database.Database == "" {
		if cfg.Environment == config.Production && os.Getenv("PT_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or PT_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}

	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or PT_JWT_SECRET environment variable)")
	}

	if cfg.Auth.TokenTTL == 0 {
		missingConfigs = append(missingConfigs, "auth.tokenTTL")
	}

	if cfg.Scheduler.SweepInterval == 0 {
		missingConfigs = append(missingConfigs, "scheduler.sweepInterval")
	}

	if cfg.Economy.InitialPoints <= 0 {
		missingConfigs = append(missingConfigs, "economy.initialPoints")
	}

	if cfg.Economy.FreeClaimPoints <= 0 {
		missingConfigs = append(missingConfigs, "economy.freeClaimPoints")
	}

	if cfg.Economy.ClaimCooldown == 0 {
		missingConfigs = append(missingConfigs, "economy.claimCooldown")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		if cfg.Database.SSLMode == "disable" {
			warnings = append(warnings, "database.sslMode should not be 'disable' in production")
		}

		if cfg.Auth.AdminKey == "" {
			warnings = append(warnings, "auth.adminKey is empty, admin endpoints will reject all requests")
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
