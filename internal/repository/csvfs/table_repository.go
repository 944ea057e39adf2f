// Package csvfs reads dashboard tables from per-locale CSV files and the
// shared province boundaries from a GeoJSON file under the data directory.
package csvfs

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/infectieradar-dashboard/internal/domain"
	"github.com/infectieradar-dashboard/internal/domain/repository"
	"github.com/infectieradar-dashboard/internal/pkg/validator"
)

const (
	symptomsFile  = "symptoms.csv"
	provincesFile = "provinces.csv"
	sexAgeFile    = "sexage.csv"
)

type tableRepository struct {
	dir    string
	logger *zap.Logger
}

// NewTableRepository создает репозиторий таблиц поверх DATA_DIR/<locale>/*.csv
func NewTableRepository(dataDir string, logger *zap.Logger) repository.TableRepository {
	return &tableRepository{
		dir:    dataDir,
		logger: logger,
	}
}

func (r *tableRepository) path(locale domain.Locale, file string) string {
	return filepath.Join(r.dir, locale.DataDir, file)
}

func (r *tableRepository) Symptoms(ctx context.Context, locale domain.Locale) ([]domain.SymptomRow, error) {
	t, err := readTable(r.path(locale, symptomsFile), domain.ColSymptom, domain.ColFrequentie)
	if err != nil {
		return nil, err
	}

	withWeek := t.has(domain.ColWeek)
	rows := make([]domain.SymptomRow, len(t.records))
	for i := range t.records {
		freq, err := t.number(i, domain.ColFrequentie)
		if err != nil {
			return nil, err
		}
		rows[i] = domain.SymptomRow{
			Symptom:    t.str(i, domain.ColSymptom),
			Frequentie: freq,
		}
		if withWeek {
			rows[i].Week = t.str(i, domain.ColWeek)
		}
	}

	if i, err := validator.ValidateSlice(rows); err != nil {
		return nil, t.invalid(i, err)
	}

	r.logger.Debug("Symptoms loaded",
		zap.String("locale", locale.Code),
		zap.Int("rows", len(rows)))
	return rows, nil
}

func (r *tableRepository) Trend(ctx context.Context, locale domain.Locale, disease domain.Disease) ([]domain.TrendRow, error) {
	t, err := readTable(r.path(locale, disease.FileName()), domain.ColWeek, domain.ColIncidentie, domain.ColYear)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.TrendRow, len(t.records))
	for i := range t.records {
		inc, err := t.number(i, domain.ColIncidentie)
		if err != nil {
			return nil, err
		}
		rows[i] = domain.TrendRow{
			Week:       t.weekLabel(i, domain.ColWeek),
			Year:       t.str(i, domain.ColYear),
			Incidentie: inc,
		}
	}

	if i, err := validator.ValidateSlice(rows); err != nil {
		return nil, t.invalid(i, err)
	}

	r.logger.Debug("Trend loaded",
		zap.String("locale", locale.Code),
		zap.String("disease", string(disease)),
		zap.Int("rows", len(rows)))
	return rows, nil
}

func (r *tableRepository) Provinces(ctx context.Context, locale domain.Locale) ([]domain.ProvinceRow, error) {
	t, err := readTable(r.path(locale, provincesFile), domain.ColProvince, domain.ColDeelnemersPer1000)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ProvinceRow, len(t.records))
	for i := range t.records {
		rate, err := t.number(i, domain.ColDeelnemersPer1000)
		if err != nil {
			return nil, err
		}
		rows[i] = domain.ProvinceRow{
			Province:          t.str(i, domain.ColProvince),
			DeelnemersPer1000: rate,
		}
	}

	if i, err := validator.ValidateSlice(rows); err != nil {
		return nil, t.invalid(i, err)
	}
	return rows, nil
}

func (r *tableRepository) SexAge(ctx context.Context, locale domain.Locale) ([]domain.SexAgeRow, error) {
	t, err := readTable(r.path(locale, sexAgeFile), domain.ColAge, domain.ColSex, domain.ColCount)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.SexAgeRow, len(t.records))
	for i := range t.records {
		n, err := t.integer(i, domain.ColCount)
		if err != nil {
			return nil, err
		}
		rows[i] = domain.SexAgeRow{
			Age:   t.str(i, domain.ColAge),
			Sex:   t.str(i, domain.ColSex),
			Count: n,
		}
	}

	if i, err := validator.ValidateSlice(rows); err != nil {
		return nil, t.invalid(i, err)
	}
	return rows, nil
}
