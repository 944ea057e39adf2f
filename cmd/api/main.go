package main

// @title Infectieradar Dashboard API
// @version 1.0.0
// @description Мультиязычный дашборд Infectieradar: HTML-страницы для встраивания в iframe и JSON-спецификации графиков Plotly.
// @description
// @description Основные возможности:
// @description - Страницы /en, /nl-be, /fr-be, /de-be
// @description - Графики страницы локали в формате Plotly {data, layout, config}

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8050
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/infectieradar-dashboard/docs"
	"github.com/infectieradar-dashboard/internal/app"
	"github.com/infectieradar-dashboard/internal/config"
	httpDelivery "github.com/infectieradar-dashboard/internal/delivery/http"
	"github.com/infectieradar-dashboard/internal/delivery/http/handler"
	"github.com/infectieradar-dashboard/internal/pkg/logger"
	"github.com/infectieradar-dashboard/internal/view"
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

	log.Info("Starting Infectieradar Dashboard")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("data_source", cfg.Data.Source),
		zap.String("csp", cfg.FrameAncestorsPolicy()),
	)

	// 3. Data source, cache and use case
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	dashboard, err := app.NewDashboard(ctx, cfg, app.Options{}, log)
	cancel()
	if err != nil {
		log.Fatal("Failed to initialize dashboard", zap.Error(err))
	}
	defer dashboard.Close()

	// 4. Health checks
	checks := make(map[string]handler.HealthChecker)
	if dashboard.DB != nil {
		checks["postgres"] = dashboard.DB
	}
	if dashboard.Redis != nil {
		checks["redis"] = dashboard.Redis
	}

	// 5. Templates
	renderer, err := view.New()
	if err != nil {
		log.Fatal("Failed to parse templates", zap.Error(err))
	}

	// 6. Initialize HTTP Handlers
	dashboardHandler := handler.NewDashboardHandler(dashboard.UseCase, renderer, log)
	figureHandler := handler.NewFigureHandler(dashboard.UseCase, log)
	healthHandler := handler.NewHealthHandler(cfg.Data.Source, checks, log)

	log.Info("HTTP handlers initialized")

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		renderer,
		dashboardHandler,
		figureHandler,
		healthHandler,
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
