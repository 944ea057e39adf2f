// Package app wires the dashboard use case from configuration. It is shared by
// the HTTP server and the static renderer.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/infectieradar-dashboard/internal/config"
	"github.com/infectieradar-dashboard/internal/domain/repository"
	"github.com/infectieradar-dashboard/internal/i18n"
	"github.com/infectieradar-dashboard/internal/repository/cache"
	"github.com/infectieradar-dashboard/internal/repository/csvfs"
	"github.com/infectieradar-dashboard/internal/repository/postgres"
	"github.com/infectieradar-dashboard/internal/usecase"
)

// Dashboard - собранный use case и открытые им соединения
type Dashboard struct {
	UseCase *usecase.DashboardUseCase
	DB      *postgres.DB // nil при DATA_SOURCE=csv
	Redis   *cache.Redis // nil при выключенном кеше

	logger *zap.Logger
}

// Options переопределяют поля конфигурации для одного процесса
type Options struct {
	// DisableCache - не подключать Redis даже при CACHE_ENABLED=true (cmd/render)
	DisableCache bool
	// SymptomWeek - неделя симптомов; пусто - SYMPTOM_WEEK из конфигурации
	SymptomWeek string
}

// NewDashboard открывает источник данных и, если включено, кеш страниц
func NewDashboard(ctx context.Context, cfg *config.Config, opts Options, logger *zap.Logger) (*Dashboard, error) {
	d := &Dashboard{logger: logger}

	texts, err := i18n.Load()
	if err != nil {
		return nil, fmt.Errorf("load locale texts: %w", err)
	}

	// 1. Источник таблиц
	var tableRepo repository.TableRepository
	switch cfg.Data.Source {
	case config.DataSourcePostgres:
		db, err := postgres.New(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		d.DB = db
		tableRepo = postgres.NewTableRepository(db)
	default:
		tableRepo = csvfs.NewTableRepository(cfg.Data.Dir, logger)
	}

	// Границы провинций всегда берутся из общего GeoJSON
	boundaryRepo := csvfs.NewBoundaryRepository(cfg.Data.Dir, logger)

	// 2. Кеш страниц
	var cacheRepo repository.CacheRepository
	if cfg.Cache.Enabled && !opts.DisableCache {
		redisClient, err := cache.NewRedis(&cfg.Redis, logger)
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		d.Redis = redisClient
		cacheRepo = cache.NewCacheRepository(redisClient)
	}

	week := opts.SymptomWeek
	if week == "" {
		week = cfg.Data.SymptomWeek
	}

	d.UseCase = usecase.NewDashboardUseCase(
		tableRepo,
		boundaryRepo,
		cacheRepo,
		texts,
		usecase.DashboardOptions{
			SymptomWeek: week,
			CacheTTL:    cfg.Cache.PageCacheTTL,
		},
		logger,
	)

	logger.Info("Dashboard initialized",
		zap.String("data_source", cfg.Data.Source),
		zap.String("data_dir", cfg.Data.Dir),
		zap.Bool("cache", cacheRepo != nil),
		zap.String("symptom_week", week))

	return d, nil
}

// Close закрывает открытые соединения
func (d *Dashboard) Close() {
	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			d.logger.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.logger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}
}
