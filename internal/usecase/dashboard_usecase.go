package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/infectieradar-dashboard/internal/chart"
	"github.com/infectieradar-dashboard/internal/domain"
	"github.com/infectieradar-dashboard/internal/domain/repository"
	"github.com/infectieradar-dashboard/internal/i18n"
	"github.com/infectieradar-dashboard/internal/pkg/errors"
	"github.com/infectieradar-dashboard/internal/pkg/logger"
	"github.com/infectieradar-dashboard/internal/usecase/dto"
)

// DashboardOptions - параметры сборки страниц
type DashboardOptions struct {
	// SymptomWeek - неделя, по которой фильтруется таблица симптомов (пусто - без фильтра)
	SymptomWeek string
	// CacheTTL - время жизни собранной страницы в кеше
	CacheTTL time.Duration
}

// DashboardUseCase собирает страницы дашборда: тексты локали и пять графиков в фиксированном порядке
type DashboardUseCase struct {
	tableRepo    repository.TableRepository
	boundaryRepo repository.BoundaryRepository
	cacheRepo    repository.CacheRepository
	texts        *i18n.Bundle
	opts         DashboardOptions
	logger       *zap.Logger
}

// NewDashboardUseCase создает новый экземпляр DashboardUseCase.
// cacheRepo может быть nil: тогда каждая сборка заново читает исходные файлы.
func NewDashboardUseCase(
	tableRepo repository.TableRepository,
	boundaryRepo repository.BoundaryRepository,
	cacheRepo repository.CacheRepository,
	texts *i18n.Bundle,
	opts DashboardOptions,
	logger *zap.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		tableRepo:    tableRepo,
		boundaryRepo: boundaryRepo,
		cacheRepo:    cacheRepo,
		texts:        texts,
		opts:         opts,
		logger:       logger,
	}
}

// Locales возвращает обслуживаемые локали в порядке меню
func (uc *DashboardUseCase) Locales() *dto.LocalesResponse {
	locales := domain.Locales()
	resp := &dto.LocalesResponse{Locales: make([]dto.LocaleResponse, len(locales))}
	for i, l := range locales {
		resp.Locales[i] = dto.LocaleResponse{Code: l.Code, Route: l.Route, Lang: l.Lang}
	}
	return resp
}

// BuildPage собирает страницу локали с неделей симптомов по умолчанию
func (uc *DashboardUseCase) BuildPage(ctx context.Context, code string) (*domain.Page, error) {
	return uc.BuildPageForWeek(ctx, code, uc.opts.SymptomWeek)
}

// BuildPageForWeek собирает страницу локали. Любая ошибка загрузки или
// сопоставления провинций прерывает сборку целиком.
func (uc *DashboardUseCase) BuildPageForWeek(ctx context.Context, code, week string) (*domain.Page, error) {
	loc, ok := domain.LocaleByCode(code)
	if !ok {
		return nil, errors.ErrLocaleNotFound.WithDetails(map[string]interface{}{"locale": code})
	}
	log := logger.ForLocale(uc.logger, loc.Code)

	// Кешируется только страница с неделей по умолчанию
	cacheable := uc.cacheRepo != nil && week == uc.opts.SymptomWeek

	// 1. Проверяем кеш
	if cacheable {
		cached, err := uc.cacheRepo.GetPage(ctx, loc.Code)
		if err != nil {
			log.Warn("Failed to get page from cache", zap.Error(err))
		}
		if cached != nil {
			log.Debug("Page fetched from cache")
			return cached, nil
		}
	}

	// 2. Собираем из исходных данных
	start := time.Now()
	page, err := uc.build(ctx, loc, week)
	if err != nil {
		log.Error("Failed to build page", zap.Error(err))
		return nil, err
	}
	log.Info("Page built",
		zap.Int("figures", len(page.FigureIDs())),
		zap.Duration("duration", time.Since(start)))

	// 3. Кешируем
	if cacheable {
		if err := uc.cacheRepo.SetPage(ctx, page, uc.opts.CacheTTL); err != nil {
			// Не возвращаем ошибку, т.к. страница уже собрана
			log.Warn("Failed to cache page", zap.Error(err))
		}
	}

	return page, nil
}

// Figures возвращает все графики страницы локали
func (uc *DashboardUseCase) Figures(ctx context.Context, code string) (*dto.FiguresResponse, error) {
	page, err := uc.BuildPage(ctx, code)
	if err != nil {
		return nil, err
	}
	return &dto.FiguresResponse{
		Locale:  page.Locale,
		Order:   page.FigureIDs(),
		Figures: page.Figures(),
	}, nil
}

// Figure возвращает один график страницы локали
func (uc *DashboardUseCase) Figure(ctx context.Context, req dto.FigureRequest) (*dto.FigureResponse, error) {
	page, err := uc.BuildPage(ctx, req.Locale)
	if err != nil {
		return nil, err
	}
	fig, ok := page.Figure(req.Figure)
	if !ok {
		return nil, errors.ErrFigureNotFound.WithDetails(map[string]interface{}{
			"locale": req.Locale,
			"figure": req.Figure,
		})
	}
	return &dto.FigureResponse{
		Locale: page.Locale,
		ID:     req.Figure,
		Figure: *fig,
	}, nil
}

func (uc *DashboardUseCase) build(ctx context.Context, loc domain.Locale, week string) (*domain.Page, error) {
	text, ok := uc.texts.For(loc.Code)
	if !ok {
		return nil, errors.ErrLocaleNotFound.WithDetails(map[string]interface{}{"locale": loc.Code})
	}

	symptoms, err := uc.tableRepo.Symptoms(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("load symptoms: %w", err)
	}
	symptoms = domain.FilterSymptomsByWeek(symptoms, week)

	flu, err := uc.tableRepo.Trend(ctx, loc, domain.DiseaseFluLike)
	if err != nil {
		return nil, fmt.Errorf("load flu-like trend: %w", err)
	}

	covid, err := uc.tableRepo.Trend(ctx, loc, domain.DiseaseCovidLike)
	if err != nil {
		return nil, fmt.Errorf("load covid-like trend: %w", err)
	}

	boundaries, err := uc.boundaryRepo.Boundaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load boundaries: %w", err)
	}

	provinces, err := uc.tableRepo.Provinces(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("load provinces: %w", err)
	}

	sexage, err := uc.tableRepo.SexAge(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("load sex/age: %w", err)
	}

	provinceMap, err := chart.ProvinceChoropleth(provinces, boundaries, loc.FeatureIDKey, text.Labels)
	if err != nil {
		return nil, fmt.Errorf("build province map: %w", err)
	}

	section := func(id string, figures ...domain.NamedFigure) domain.Section {
		s := text.Section(id)
		return domain.Section{ID: id, Heading: s.Heading, Paragraph: s.Paragraph, Figures: figures}
	}

	return &domain.Page{
		Locale:      loc.Code,
		Lang:        loc.Lang,
		Route:       loc.Route,
		Title:       text.Title,
		LastUpdated: text.LastUpdated,
		Intro:       text.Intro,
		Sections: []domain.Section{
			section(domain.SectionSymptoms,
				domain.NamedFigure{ID: domain.FigureSymptoms, Figure: chart.SymptomBars(symptoms, text.Labels)}),
			section(domain.SectionTrendlineFlu,
				domain.NamedFigure{ID: domain.FigureTrendlineFlu, Figure: chart.TrendLines(flu, text.Labels, chart.TrendOptions{BreakGaps: loc.FluGapsBroken})}),
			section(domain.SectionTrendlineCovid,
				domain.NamedFigure{ID: domain.FigureTrendlineCovid, Figure: chart.TrendLines(covid, text.Labels, chart.TrendOptions{})}),
			section(domain.SectionParticipants,
				domain.NamedFigure{ID: domain.FigureProvinceMap, Figure: provinceMap},
				domain.NamedFigure{ID: domain.FigureSexAge, Figure: chart.SexAgeBars(sexage, text.Labels)}),
		},
	}, nil
}
