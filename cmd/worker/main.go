package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/senda-infinita/internal/config"
	"github.com/senda-infinita/internal/pkg/logger"
	"github.com/senda-infinita/internal/repository/cache"
	"github.com/senda-infinita/internal/repository/postgres"
	redisRepo "github.com/senda-infinita/internal/repository/redis"
	"github.com/senda-infinita/internal/usecase"
	"github.com/senda-infinita/internal/worker"
	"github.com/senda-infinita/internal/worker/stats"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Senda Infinita stats worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup))

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

	// 5. Initialize repositories
	statsRepo := postgres.NewStatsRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 6. Initialize use case and worker
	statsUC := usecase.NewStatsUseCase(statsRepo, cacheRepo, cfg.Cache.StatsCacheTTL, log)
	refreshWorker := stats.NewRefreshWorker(streamRepo, statsUC, cfg.Worker.ConsumerGroup, log)

	manager := worker.NewManager(log)
	manager.Register(refreshWorker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down workers")
	cancel()

	if err := manager.Stop(); err != nil {
		log.Error("Worker shutdown failed", zap.Error(err))
	}

	log.Info("Workers stopped")
}
