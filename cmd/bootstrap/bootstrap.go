package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-registration-portal/config"
	deliveryHttp "go-registration-portal/internal/delivery/http"
	"go-registration-portal/internal/delivery/http/handler"
	"go-registration-portal/internal/delivery/http/middleware"
	"go-registration-portal/internal/infrastructure/cache"
	"go-registration-portal/internal/infrastructure/database"
	"go-registration-portal/internal/infrastructure/storage"
	"go-registration-portal/internal/repository"
	"go-registration-portal/internal/usecase"
	"go-registration-portal/pkg/validator"

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

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	server, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	customValidator := validator.NewValidator()

	// Infrastructure
	diskStorage, err := storage.NewDiskStorage(cfg.Upload)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize upload storage: %w", err)
	}
	photoCache := cache.NewPhotoCache(redisClient)

	// Repositories
	registrationRepo := repository.NewRegistrationRepository(db)
	lookupRepo := repository.NewLookupRepository(cfg.Lookup)

	log := logrus.StandardLogger()

	// Usecases
	registrationUsecase := usecase.NewRegistrationUsecase(log, registrationRepo, diskStorage, photoCache)
	lookupUsecase := usecase.NewLookupUsecase(lookupRepo)

	// Handlers
	registrationHandler := handler.NewRegistrationHandler(registrationUsecase, customValidator)
	lookupHandler := handler.NewLookupHandler(lookupUsecase)

	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewRouter(registrationHandler, lookupHandler, corsMiddleware, diskStorage.Dir())
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
