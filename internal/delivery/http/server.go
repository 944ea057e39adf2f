package http

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/infectieradar-dashboard/internal/config"
	"github.com/infectieradar-dashboard/internal/delivery/http/handler"
	"github.com/infectieradar-dashboard/internal/delivery/http/middleware"
	"github.com/infectieradar-dashboard/internal/pkg/errors"
	"github.com/infectieradar-dashboard/internal/pkg/utils"
	"github.com/infectieradar-dashboard/internal/view"
)

const apiPrefix = "/api/"

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	renderer *view.Renderer

	// Handlers
	dashboardHandler *handler.DashboardHandler
	figureHandler    *handler.FigureHandler
	healthHandler    *handler.HealthHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	renderer *view.Renderer,
	dashboardHandler *handler.DashboardHandler,
	figureHandler *handler.FigureHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	s := &Server{
		config:           cfg,
		logger:           logger,
		renderer:         renderer,
		dashboardHandler: dashboardHandler,
		figureHandler:    figureHandler,
		healthHandler:    healthHandler,
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "Infectieradar Dashboard",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		JSONEncoder:  sonic.ConfigStd.Marshal,
		JSONDecoder:  sonic.ConfigStd.Unmarshal,
		ErrorHandler: s.customErrorHandler,
	})

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.SecurityHeaders(s.config.FrameAncestorsPolicy()))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1", middleware.CORS())

	// Health check
	api.Get("/health", s.healthHandler.Health)

	// Figure routes
	api.Get("/locales", s.figureHandler.GetLocales)
	api.Get("/figures/:locale", s.figureHandler.GetFigures)
	api.Get("/figures/:locale/:figure", s.figureHandler.GetFigure)

	// Dashboard pages: /en, /nl-be, /fr-be, /de-be
	s.app.Get("/", s.dashboardHandler.Root)
	s.app.Get("/:locale", s.dashboardHandler.Page)
}

// App - доступ к fiber.App для тестов
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок: JSON для /api, HTML-страница для остального
func (s *Server) customErrorHandler(c *fiber.Ctx, err error) error {
	appErr := toAppError(err)

	if appErr.StatusCode >= fiber.StatusInternalServerError {
		s.logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", appErr.StatusCode),
			zap.Error(err),
		)
	} else {
		s.logger.Debug("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", appErr.StatusCode),
			zap.Error(err),
		)
	}

	if strings.HasPrefix(c.Path(), apiPrefix) {
		return utils.SendError(c, appErr)
	}

	var buf bytes.Buffer
	if rerr := s.renderer.Error(&buf, appErr); rerr != nil {
		s.logger.Error("Failed to render error page", zap.Error(rerr))
		return c.Status(appErr.StatusCode).SendString(appErr.Message)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(appErr.StatusCode).Send(buf.Bytes())
}

// toAppError maps fiber's own errors (unknown route, wrong method) onto AppError.
func toAppError(err error) *errors.AppError {
	var fe *fiber.Error
	if stderrors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusNotFound:
			return errors.New("NOT_FOUND", fe.Message, fe.Code)
		case fiber.StatusInternalServerError:
			return errors.ErrInternalServer.Wrap(err)
		default:
			return errors.New("HTTP_ERROR", fe.Message, fe.Code)
		}
	}
	return utils.AsAppError(err)
}
