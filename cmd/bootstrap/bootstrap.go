package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctor-discovery/config"
	deliveryHttp "doctor-discovery/internal/delivery/http"
	"doctor-discovery/internal/delivery/http/handler"
	"doctor-discovery/internal/delivery/http/middleware"
	"doctor-discovery/internal/infrastructure/cache"
	"doctor-discovery/internal/infrastructure/database"
	"doctor-discovery/internal/repository"
	"doctor-discovery/internal/service"
	"doctor-discovery/internal/usecase"
	"doctor-discovery/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized. A
// database or Redis that cannot be reached is not fatal: the catalog keeps
// serving from the bundled reference collection.
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database; degrade instead of aborting when unreachable
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Warnf("Database unavailable, serving bundled catalog: %+v", err)
		db = nil
	} else if err := repository.RunMigrations(db); err != nil {
		logrus.Warnf("Failed to run migrations: %+v", err)
	}
	app.DB = db

	// Initialize Redis; the by-ID cache is optional
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logrus.Warnf("Redis unavailable, doctor lookups will not be cached: %+v", err)
		redisClient = nil
	}
	app.RedisClient = redisClient

	// Initialize all layers
	app.Server = initializeServer(cfg, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	log := logrus.StandardLogger()

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize stores: primary (postgres, optionally cached) and the
	// in-memory fallback over the bundled reference collection
	primary := repository.NewDoctorRepository(db)
	if redisClient != nil {
		primary = repository.NewCachedDoctorStore(primary, cache.NewRedisCache(redisClient), cfg.Redis.CacheTTL)
	}
	fallback := repository.NewMemoryDoctorStore(repository.SampleDoctors())
	health := service.NewStoreHealthChecker(db, cfg.App.StoreTimeout)

	// Initialize usecases
	catalogUsecase := usecase.NewDoctorCatalogUsecase(log, primary, fallback, health, cfg.App.StoreTimeout)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(catalogUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggerMiddleware := middleware.NewRequestLoggerMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, corsMiddleware, loggerMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
