package main

// @title Senda Infinita API
// @version 1.0.0
// @description Backend for the Senda Infinita hiking route catalog. Routes are
// @description imported from OpenRouteService, enriched with waypoints and
// @description elevation data, and served with community reviews, favorites
// @description and photos.

// @contact.name API Support
// @contact.email support@senda-infinita.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT obtained from /api/auth/login, sent as "Bearer {token}".

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/senda-infinita/docs/swagger"
	"github.com/senda-infinita/internal/config"
	httpDelivery "github.com/senda-infinita/internal/delivery/http"
	"github.com/senda-infinita/internal/delivery/http/handler"
	"github.com/senda-infinita/internal/infrastructure/ors"
	"github.com/senda-infinita/internal/infrastructure/storage"
	"github.com/senda-infinita/internal/pkg/logger"
	"github.com/senda-infinita/internal/repository/cache"
	"github.com/senda-infinita/internal/repository/postgres"
	redisRepo "github.com/senda-infinita/internal/repository/redis"
	"github.com/senda-infinita/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Senda Infinita API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	routeRepo := postgres.NewRouteRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	favoriteRepo := postgres.NewFavoriteRepository(db)
	photoRepo := postgres.NewPhotoRepository(db)
	statsRepo := postgres.NewStatsRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 6. Initialize infrastructure
	directionsRepo := ors.NewClient(&cfg.ORS, log)
	photoStorage, err := storage.NewLocalStorage(&cfg.Upload, log)
	if err != nil {
		log.Fatal("Failed to initialize photo storage", zap.Error(err))
	}

	// 7. Initialize use cases
	authUC := usecase.NewAuthUseCase(userRepo, &cfg.Auth, log)
	routeUC := usecase.NewRouteUseCase(routeRepo, reviewRepo, log)
	importUC := usecase.NewImportUseCase(routeRepo, directionsRepo, streamRepo, log)
	reviewUC := usecase.NewReviewUseCase(reviewRepo, routeRepo, streamRepo, log)
	favoriteUC := usecase.NewFavoriteUseCase(favoriteRepo, routeRepo, log)
	photoUC := usecase.NewPhotoUseCase(photoRepo, routeRepo, photoStorage, log)
	profileUC := usecase.NewProfileUseCase(reviewRepo, favoriteRepo, log)
	adminUC := usecase.NewAdminUseCase(userRepo, routeRepo, reviewRepo, photoRepo, photoStorage, streamRepo, log)
	statsUC := usecase.NewStatsUseCase(statsRepo, cacheRepo, cfg.Cache.StatsCacheTTL, log)

	// 8. Initialize handlers
	authHandler := handler.NewAuthHandler(authUC, log)
	routeHandler := handler.NewRouteHandler(routeUC, importUC, log)
	reviewHandler := handler.NewReviewHandler(reviewUC, log)
	favoriteHandler := handler.NewFavoriteHandler(favoriteUC, log)
	photoHandler := handler.NewPhotoHandler(photoUC, log)
	profileHandler := handler.NewProfileHandler(profileUC, log)
	adminHandler := handler.NewAdminHandler(adminUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		authHandler,
		routeHandler,
		reviewHandler,
		favoriteHandler,
		photoHandler,
		profileHandler,
		adminHandler,
		statsHandler,
	)

	// 10. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()
	log.Info("Server started", zap.String("addr", cfg.GetServerAddr()))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}

	log.Info("Server stopped")
}
