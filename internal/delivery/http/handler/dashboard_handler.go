package handler

import (
	"bytes"
	stderrors "errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/infectieradar-dashboard/internal/domain"
	"github.com/infectieradar-dashboard/internal/pkg/errors"
	pkgvalidator "github.com/infectieradar-dashboard/internal/pkg/validator"
	"github.com/infectieradar-dashboard/internal/usecase"
	"github.com/infectieradar-dashboard/internal/usecase/dto"
	"github.com/infectieradar-dashboard/internal/view"
)

// DashboardHandler отдаёт HTML-страницы дашборда
type DashboardHandler struct {
	dashboardUC *usecase.DashboardUseCase
	renderer    *view.Renderer
	logger      *zap.Logger
}

// NewDashboardHandler создает новый экземпляр DashboardHandler
func NewDashboardHandler(dashboardUC *usecase.DashboardUseCase, renderer *view.Renderer, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		renderer:    renderer,
		logger:      logger,
	}
}

// Root - корневой маршрут ведёт на английскую версию
func (h *DashboardHandler) Root(c *fiber.Ctx) error {
	return c.Redirect(domain.DefaultLocale().Route, fiber.StatusFound)
}

// Page godoc
// @Summary Dashboard page
// @Description Полная HTML-страница дашборда для локали: тексты и пять графиков Plotly
// @Tags Dashboard
// @Produce html
// @Param locale path string true "Locale code" Enums(en, nl-be, fr-be, de-be)
// @Param week query string false "Symptom week filter, e.g. 2024/06/19"
// @Success 200 {string} string "HTML page"
// @Failure 404 {string} string "HTML error page"
// @Failure 500 {string} string "HTML error page"
// @Router /{locale} [get]
func (h *DashboardHandler) Page(c *fiber.Ctx) error {
	req := dto.PageRequest{
		Locale:      strings.ToLower(c.Params("locale")),
		SymptomWeek: c.Query("week"),
	}
	if err := pkgvalidator.Validate(&req); err != nil {
		return pageRequestError(req, err)
	}

	var (
		page *domain.Page
		err  error
	)
	if req.SymptomWeek != "" {
		page, err = h.dashboardUC.BuildPageForWeek(c.UserContext(), req.Locale, req.SymptomWeek)
	} else {
		page, err = h.dashboardUC.BuildPage(c.UserContext(), req.Locale)
	}
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, page); err != nil {
		h.logger.Error("Failed to render page", zap.String("locale", req.Locale), zap.Error(err))
		return errors.ErrInternalServer.Wrap(err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// pageRequestError maps a failed locale check to 404, anything else to 400.
func pageRequestError(req dto.PageRequest, err error) error {
	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Field() == "Locale" {
				return errors.ErrLocaleNotFound.WithDetails(map[string]interface{}{"locale": req.Locale})
			}
		}
	}
	return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"error": err.Error()}).Wrap(err)
}
