package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/infectieradar-dashboard/internal/domain"
	"github.com/infectieradar-dashboard/internal/domain/repository"
	"github.com/infectieradar-dashboard/internal/pkg/errors"
)

const (
	tableSymptoms  = "dashboard_symptoms"
	tableTrends    = "dashboard_trends"
	tableProvinces = "dashboard_provinces"
	tableSexAge    = "dashboard_sexage"
)

type tableRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewTableRepository создает репозиторий таблиц дашборда поверх PostgreSQL
func NewTableRepository(db *DB) repository.TableRepository {
	return &tableRepository{
		db:     db,
		logger: db.logger,
	}
}

// builder возвращает squirrel SQL Builder с плейсхолдерами $n
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *tableRepository) selectRows(ctx context.Context, dest interface{}, table string, query squirrel.SelectBuilder) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return errors.ErrDatabaseError.
			WithDetails(map[string]interface{}{"table": table}).
			Wrap(err)
	}

	if err := r.db.SelectContext(ctx, dest, sql, args...); err != nil {
		r.logger.Error("Failed to select dashboard table",
			zap.String("table", table),
			zap.Error(err))
		return errors.ErrDatabaseError.
			WithDetails(map[string]interface{}{"table": table}).
			Wrap(err)
	}
	return nil
}

func (r *tableRepository) Symptoms(ctx context.Context, locale domain.Locale) ([]domain.SymptomRow, error) {
	query := builder().
		Select(domain.ColSymptom, domain.ColFrequentie, domain.ColWeek).
		From(tableSymptoms).
		Where(squirrel.Eq{"locale": locale.Code}).
		OrderBy("position")

	rows := make([]domain.SymptomRow, 0)
	if err := r.selectRows(ctx, &rows, tableSymptoms, query); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *tableRepository) Trend(ctx context.Context, locale domain.Locale, disease domain.Disease) ([]domain.TrendRow, error) {
	query := builder().
		Select(domain.ColWeek, domain.ColYear, domain.ColIncidentie).
		From(tableTrends).
		Where(squirrel.Eq{"locale": locale.Code, "disease": string(disease)}).
		OrderBy("position")

	rows := make([]domain.TrendRow, 0)
	if err := r.selectRows(ctx, &rows, tableTrends, query); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *tableRepository) Provinces(ctx context.Context, locale domain.Locale) ([]domain.ProvinceRow, error) {
	query := builder().
		Select(domain.ColProvince, domain.ColDeelnemersPer1000).
		From(tableProvinces).
		Where(squirrel.Eq{"locale": locale.Code}).
		OrderBy("position")

	rows := make([]domain.ProvinceRow, 0)
	if err := r.selectRows(ctx, &rows, tableProvinces, query); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *tableRepository) SexAge(ctx context.Context, locale domain.Locale) ([]domain.SexAgeRow, error) {
	query := builder().
		Select(domain.ColAge, domain.ColSex, `"count"`).
		From(tableSexAge).
		Where(squirrel.Eq{"locale": locale.Code}).
		OrderBy("position")

	rows := make([]domain.SexAgeRow, 0)
	if err := r.selectRows(ctx, &rows, tableSexAge, query); err != nil {
		return nil, err
	}
	return rows, nil
}
