package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/infectieradar-dashboard/internal/config"
	"github.com/infectieradar-dashboard/internal/pkg/logger"
	"github.com/infectieradar-dashboard/internal/repository/cache"
	redisRepo "github.com/infectieradar-dashboard/internal/repository/redis"
	"github.com/infectieradar-dashboard/internal/usecase"
	"github.com/infectieradar-dashboard/internal/worker"
	"github.com/infectieradar-dashboard/internal/worker/refresh"
	"github.com/infectieradar-dashboard/internal/worker/watch"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
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

	log.Info("Starting Dashboard Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.String("data_dir", cfg.Data.Dir),
		zap.Bool("watch", cfg.Worker.WatchEnabled),
		zap.Bool("refresh", cfg.Worker.RefreshEnabled),
		zap.Duration("debounce", cfg.Worker.WatchDebounce))

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Initialize repositories
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	cacheRepo := cache.NewCacheRepository(redisClient)

	// 5. Initialize use cases
	cacheRefreshUC := usecase.NewCacheRefreshUseCase(cacheRepo, log)

	// 6. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	if cfg.Worker.WatchEnabled {
		workerManager.Register(watch.NewDataWatcher(cfg.Data.Dir, cfg.Worker.WatchDebounce, streamRepo, log))
	}
	if cfg.Worker.RefreshEnabled {
		workerManager.Register(refresh.NewCacheRefreshWorker(
			streamRepo,
			cacheRefreshUC,
			cfg.Worker.ConsumerGroup,
			cfg.Worker.MaxBatchSize,
			log,
		))
	}

	// 7. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Процесс завершается и при падении всех воркеров
	failed := make(chan error, 1)
	go func() { failed <- workerManager.Wait() }()

	select {
	case <-sigChan:
		log.Info("Received shutdown signal")
	case err := <-failed:
		log.Error("Workers exited", zap.Error(err))
	}

	cancel()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), worker.DefaultShutdownTimeout)
	defer stopCancel()

	if err := workerManager.Stop(stopCtx); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
