package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/infectieradar-dashboard/internal/pkg/errors"
	"github.com/infectieradar-dashboard/internal/pkg/utils"
	"github.com/infectieradar-dashboard/internal/pkg/validator"
	"github.com/infectieradar-dashboard/internal/usecase"
	"github.com/infectieradar-dashboard/internal/usecase/dto"
)

// FigureHandler - JSON API со спецификациями графиков
type FigureHandler struct {
	dashboardUC *usecase.DashboardUseCase
	logger      *zap.Logger
}

// NewFigureHandler создает новый экземпляр FigureHandler
func NewFigureHandler(dashboardUC *usecase.DashboardUseCase, logger *zap.Logger) *FigureHandler {
	return &FigureHandler{
		dashboardUC: dashboardUC,
		logger:      logger,
	}
}

// GetLocales godoc
// @Summary List locales
// @Description Обслуживаемые локали в порядке меню
// @Tags Figures
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.LocalesResponse}
// @Router /api/v1/locales [get]
func (h *FigureHandler) GetLocales(c *fiber.Ctx) error {
	result := h.dashboardUC.Locales()
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.Locales)})
}

// GetFigures godoc
// @Summary Figures of a locale
// @Description Все графики страницы локали в формате Plotly {data, layout, config}
// @Tags Figures
// @Produce json
// @Param locale path string true "Locale code" Enums(en, nl-be, fr-be, de-be)
// @Success 200 {object} utils.SuccessResponse{data=dto.FiguresResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/figures/{locale} [get]
func (h *FigureHandler) GetFigures(c *fiber.Ctx) error {
	locale := strings.ToLower(c.Params("locale"))

	result, err := h.dashboardUC.Figures(c.UserContext(), locale)
	if err != nil {
		h.logger.Debug("Failed to build figures", zap.String("locale", locale), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Locale: result.Locale,
		Total:  len(result.Order),
	})
}

// GetFigure godoc
// @Summary Single figure
// @Description Один график локали
// @Tags Figures
// @Produce json
// @Param locale path string true "Locale code" Enums(en, nl-be, fr-be, de-be)
// @Param figure path string true "Figure id" Enums(symptoms, trendline_flu, trendline_covid, province-map, sexage)
// @Success 200 {object} utils.SuccessResponse{data=dto.FigureResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/figures/{locale}/{figure} [get]
func (h *FigureHandler) GetFigure(c *fiber.Ctx) error {
	req := dto.FigureRequest{
		Locale: strings.ToLower(c.Params("locale")),
		Figure: c.Params("figure"),
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"error": err.Error(),
		}))
	}

	result, err := h.dashboardUC.Figure(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Locale: result.Locale})
}
