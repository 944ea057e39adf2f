package repository

import (
	"context"

	"github.com/infectieradar-dashboard/internal/domain"
)

// TableRepository определяет источник таблиц дашборда одной локали.
// Каждый вызов читает данные заново.
type TableRepository interface {
	// Symptoms возвращает частоты симптомов
	Symptoms(ctx context.Context, locale domain.Locale) ([]domain.SymptomRow, error)

	// Trend возвращает недельную заболеваемость для болезни
	Trend(ctx context.Context, locale domain.Locale, disease domain.Disease) ([]domain.TrendRow, error)

	// Provinces возвращает участие по провинциям
	Provinces(ctx context.Context, locale domain.Locale) ([]domain.ProvinceRow, error)

	// SexAge возвращает распределение участников по полу и возрасту
	SexAge(ctx context.Context, locale domain.Locale) ([]domain.SexAgeRow, error)
}
