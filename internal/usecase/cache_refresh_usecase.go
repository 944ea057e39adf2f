package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/infectieradar-dashboard/internal/domain"
	"github.com/infectieradar-dashboard/internal/domain/repository"
)

// CacheRefreshUseCase сбрасывает кеш страниц после изменения исходных данных
type CacheRefreshUseCase struct {
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
}

// NewCacheRefreshUseCase создает новый экземпляр CacheRefreshUseCase
func NewCacheRefreshUseCase(cacheRepo repository.CacheRepository, logger *zap.Logger) *CacheRefreshUseCase {
	return &CacheRefreshUseCase{
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

// InvalidatePages удаляет закешированные страницы, затронутые событиями.
// Событие без локали сбрасывает все страницы.
func (uc *CacheRefreshUseCase) InvalidatePages(ctx context.Context, events []*domain.DataUpdatedEvent) ([]string, error) {
	locales := affectedLocales(events)
	if len(locales) == 0 {
		return nil, nil
	}

	if err := uc.cacheRepo.DeletePages(ctx, locales...); err != nil {
		return nil, fmt.Errorf("invalidate pages: %w", err)
	}

	uc.logger.Info("Page cache invalidated",
		zap.Strings("locales", locales),
		zap.Int("events", len(events)))
	return locales, nil
}

// affectedLocales returns the locale codes touched by events in menu order.
func affectedLocales(events []*domain.DataUpdatedEvent) []string {
	touched := make(map[string]bool)
	for _, e := range events {
		if e == nil {
			continue
		}
		if e.AllLocales() {
			for _, l := range domain.Locales() {
				touched[l.Code] = true
			}
			break
		}
		if l, ok := domain.LocaleByCode(e.Locale); ok {
			touched[l.Code] = true
		}
	}

	var out []string
	for _, l := range domain.Locales() {
		if touched[l.Code] {
			out = append(out, l.Code)
		}
	}
	return out
}
