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

	"spectraSense/app/echo-server/router"
	"spectraSense/business/autoentertain"
	"spectraSense/business/autosense"
	"spectraSense/internal/middleware"
	psqlRepo "spectraSense/internal/repository/postgres"
	redisRepo "spectraSense/internal/repository/redis"
	"spectraSense/internal/rest"
	"spectraSense/pkg/config"
	"spectraSense/pkg/database"
	redisDB "spectraSense/pkg/database/redis"
	"spectraSense/pkg/logger"
	"spectraSense/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting SpectraSense", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get database handle", "error", err)
	}
	defer sqlDB.Close()

	logger.Info("Database connected successfully")

	metrics.Init()

	// Init repo
	var predictiveRepo autosense.PredictiveDataRepository = psqlRepo.NewPredictiveDataRepository(db)
	var mediaRepo autoentertain.MediaRepository = psqlRepo.NewMediaRepository(db)

	if cfg.Redis.Enabled() {
		rdb, err := redisDB.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to redis", "error", err)
		}
		defer redisDB.CloseRedisClient(rdb)

		predictiveRepo = redisRepo.NewPredictiveDataCache(rdb, predictiveRepo, cfg.Redis.CacheTTL)
		mediaRepo = redisRepo.NewMediaCache(rdb, mediaRepo, cfg.Redis.CacheTTL)
		logger.Info("Redis row cache enabled", "address", cfg.Redis.Addr(), "ttl", cfg.Redis.CacheTTL)
	}

	// Init service
	autoSenseService := autosense.NewAutoSenseService(predictiveRepo)
	autoEntertainService := autoentertain.NewAutoEntertainService(mediaRepo)

	// Init handler
	dimensionHandler := rest.NewDimensionHandler(autoSenseService, autoEntertainService, cfg.Server.RequestTimeout)
	autoSenseHandler := rest.NewAutoSenseHandler(autoSenseService, cfg.Server.RequestTimeout)
	autoEntertainHandler := rest.NewAutoEntertainHandler(autoEntertainService, cfg.Server.RequestTimeout)
	healthHandler := rest.NewHealthHandler(sqlDB, cfg.App.Version)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(middleware.RequestMetrics())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Setup routes
	router.SetupDimensionRoutes(e, dimensionHandler)
	router.SetupOpsRoutes(e, healthHandler)

	api := e.Group("/api/v1")
	router.SetupPredictionRoutes(api, autoSenseHandler)
	router.SetupRecommendationRoutes(api, autoEntertainHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
