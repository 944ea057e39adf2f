package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/infectieradar-dashboard/internal/pkg/utils"
	"github.com/infectieradar-dashboard/internal/usecase/dto"
)

// HealthChecker - зависимость, умеющая проверить своё соединение (Postgres, Redis)
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler отвечает на проверки живости
type HealthHandler struct {
	dataSource string
	checks     map[string]HealthChecker
	logger     *zap.Logger
}

// NewHealthHandler создает новый экземпляр HealthHandler. checks может быть пустым.
func NewHealthHandler(dataSource string, checks map[string]HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		dataSource: dataSource,
		checks:     checks,
		logger:     logger,
	}
}

// Health godoc
// @Summary Health check
// @Description Состояние сервиса и подключённых зависимостей
// @Tags Health
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.HealthResponse}
// @Failure 503 {object} utils.SuccessResponse{data=dto.HealthResponse}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{
		Status:     "healthy",
		DataSource: h.dataSource,
	}
	if len(h.checks) > 0 {
		resp.Dependencies = make(map[string]string, len(h.checks))
	}
	for name, check := range h.checks {
		if err := check.Health(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			resp.Dependencies[name] = "unhealthy"
			resp.Status = "degraded"
			continue
		}
		resp.Dependencies[name] = "healthy"
	}

	if resp.Status != "healthy" {
		c.Status(fiber.StatusServiceUnavailable)
	}
	return utils.SendSuccess(c, resp, nil)
}
