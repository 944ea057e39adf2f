package testhelpers

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/infectieradar-dashboard/internal/domain"
)

// InsertSymptoms stores rows for a locale in file order
func InsertSymptoms(ctx context.Context, db *sql.DB, locale string, rows []domain.SymptomRow) error {
	for i, r := range rows {
		if _, err := db.ExecContext(ctx,
			"INSERT INTO dashboard_symptoms (locale, position, symptom, frequentie, week) VALUES ($1, $2, $3, $4, $5)",
			locale, i, r.Symptom, r.Frequentie, r.Week); err != nil {
			return fmt.Errorf("insert symptom %q: %w", r.Symptom, err)
		}
	}
	return nil
}

// InsertTrend stores the weekly incidence rows of one disease
func InsertTrend(ctx context.Context, db *sql.DB, locale string, disease domain.Disease, rows []domain.TrendRow) error {
	for i, r := range rows {
		if _, err := db.ExecContext(ctx,
			"INSERT INTO dashboard_trends (locale, disease, position, week, year, incidentie) VALUES ($1, $2, $3, $4, $5, $6)",
			locale, string(disease), i, r.Week, r.Year, r.Incidentie); err != nil {
			return fmt.Errorf("insert trend week %s: %w", r.Week, err)
		}
	}
	return nil
}

// InsertProvinces stores participation per province
func InsertProvinces(ctx context.Context, db *sql.DB, locale string, rows []domain.ProvinceRow) error {
	for i, r := range rows {
		if _, err := db.ExecContext(ctx,
			"INSERT INTO dashboard_provinces (locale, position, province, deelnemersper1000) VALUES ($1, $2, $3, $4)",
			locale, i, r.Province, r.DeelnemersPer1000); err != nil {
			return fmt.Errorf("insert province %q: %w", r.Province, err)
		}
	}
	return nil
}

// InsertSexAge stores the participant demographics
func InsertSexAge(ctx context.Context, db *sql.DB, locale string, rows []domain.SexAgeRow) error {
	for i, r := range rows {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO dashboard_sexage (locale, position, age, sex, "count") VALUES ($1, $2, $3, $4, $5)`,
			locale, i, r.Age, r.Sex, r.Count); err != nil {
			return fmt.Errorf("insert sexage %s/%s: %w", r.Age, r.Sex, err)
		}
	}
	return nil
}
