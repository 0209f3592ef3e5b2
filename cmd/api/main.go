package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	maintenanceUseCase "github.com/amirhossein-jamali/people-registry/internal/domain/usecase/maintenance"
	personUseCase "github.com/amirhossein-jamali/people-registry/internal/domain/usecase/person"

	"github.com/amirhossein-jamali/people-registry/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/people-registry/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/people-registry/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/people-registry/internal/infrastructure/adapter/lockstore"
	"github.com/amirhossein-jamali/people-registry/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/people-registry/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/people-registry/internal/infrastructure/adapter/scheduler"
	timeProvider "github.com/amirhossein-jamali/people-registry/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/people-registry/internal/infrastructure/config"
	"github.com/amirhossein-jamali/people-registry/internal/infrastructure/metrics"

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
	defer func() {
		_ = appLogger.Flush()
	}()

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
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
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run schema migration
	if err := dbManager.Migrate(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Connect to the lock store
	redisClient := lockstore.NewClient(&cfg.Redis)
	lockRegistry := lockstore.NewRedisRegistry(redisClient, cfg.Maintenance.LockTTL, appLogger)
	if err := lockRegistry.Ping(context.Background()); err != nil {
		appLogger.Error("Failed to connect to lock store", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer redisClient.Close()

	// Initialize repositories
	personRepo := repository.NewPersonRepository(dbManager.DB(), tp, appLogger)

	// Initialize use cases
	personUseCaseImpl := personUseCase.NewPersonUseCase(personRepo, lockRegistry, tp, appLogger)
	pointsJob := maintenanceUseCase.NewPointsJob(
		personRepo,
		lockRegistry,
		tp,
		appLogger,
		cfg.Maintenance.MinIncrement,
		cfg.Maintenance.MaxIncrement,
	)

	// Start the periodic points sweep
	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	sweepScheduler := scheduler.New(pointsJob, cfg.Maintenance.Interval, appLogger)
	sweepScheduler.Start(sweepCtx)

	// Initialize API handlers
	personHandler := handler.NewPersonHandler(personUseCaseImpl, appLogger)
	healthHandler := handler.NewHealthHandler(dbManager, lockRegistry, appLogger)

	// Metrics registry
	metricsRegistry := metrics.NewRegistry()

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, personHandler, healthHandler, metricsRegistry)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
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

	// Stop granting points before the HTTP surface goes away
	cancelSweep()
	sweepScheduler.Stop()

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

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
		missingConfigs = append(missingConfigs, "database.host (or PR_DB_HOST environment variable)")
	}
	if cfg.Database.Port == "" {
		missingConfigs = append(missingConfigs, "database.port (or PR_DB_PORT environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or PR_DB_USERNAME environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or PR_DB_NAME environment variable)")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Redis.Host == "" {
		missingConfigs = append(missingConfigs, "redis.host (or PR_REDIS_HOST environment variable)")
	}
	if cfg.Redis.Port == "" {
		missingConfigs = append(missingConfigs, "redis.port (or PR_REDIS_PORT environment variable)")
	}

	if cfg.Maintenance.Interval == 0 {
		missingConfigs = append(missingConfigs, "maintenance.interval")
	}
	if cfg.Maintenance.LockTTL == 0 {
		missingConfigs = append(missingConfigs, "maintenance.lockTTL")
	}
	if cfg.Maintenance.MinIncrement > cfg.Maintenance.MaxIncrement {
		return fmt.Errorf("maintenance.minIncrement (%d) must not exceed maintenance.maxIncrement (%d)",
			cfg.Maintenance.MinIncrement, cfg.Maintenance.MaxIncrement)
	}

	// Environment should be set with a valid value
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

	return nil
}
