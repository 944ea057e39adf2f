package csvfs_test

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/infectieradar-dashboard/internal/domain"
	"github.com/infectieradar-dashboard/internal/pkg/errors"
	"github.com/infectieradar-dashboard/internal/repository/csvfs"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestSymptoms_ColumnOrderAndCase(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en/symptoms.csv", "\ufeffFrequentie, Symptom ,week\n10.5,Cough,2024/06/19\n3,Fever,2024/06/12\n")

	repo := csvfs.NewTableRepository(dir, zap.NewNop())
	rows, err := repo.Symptoms(context.Background(), domain.LocaleEN)
	require.NoError(t, err)

	assert.Equal(t, []domain.SymptomRow{
		{Symptom: "Cough", Frequentie: 10.5, Week: "2024/06/19"},
		{Symptom: "Fever", Frequentie: 3, Week: "2024/06/12"},
	}, rows)
}

func TestSymptoms_MissingFile(t *testing.T) {
	repo := csvfs.NewTableRepository(t.TempDir(), zap.NewNop())

	_, err := repo.Symptoms(context.Background(), domain.LocaleNL)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrDataFileUnreadable))
	assert.True(t, stderrors.Is(err, os.ErrNotExist))
}

func TestSymptoms_MissingColumn(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "fr/symptoms.csv", "symptom,frequency\nToux,10\n")

	repo := csvfs.NewTableRepository(dir, zap.NewNop())
	_, err := repo.Symptoms(context.Background(), domain.LocaleFR)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrDataColumnMissing))

	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, "frequentie", appErr.Details["column"])
}

func TestSymptoms_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not a number", "symptom,frequentie\nCough,many\n"},
		{"out of range", "symptom,frequentie\nCough,140\n"},
		{"blank symptom", "symptom,frequentie\n,12\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "en/symptoms.csv", tt.content)

			_, err := csvfs.NewTableRepository(dir, zap.NewNop()).Symptoms(context.Background(), domain.LocaleEN)
			assert.True(t, stderrors.Is(err, errors.ErrDataMalformed), "got %v", err)
		})
	}
}

func TestTrend_ReadsDiseaseFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "de/flulike.csv", "week,incidentie,year\n25,1.2,2023-2024\n26.0,0,2023-2024\n\n")
	writeFile(t, dir, "de/covidlike.csv", "year,week,incidentie\n2022-2023,40,3.5\n")

	repo := csvfs.NewTableRepository(dir, zap.NewNop())

	flu, err := repo.Trend(context.Background(), domain.LocaleDE, domain.DiseaseFluLike)
	require.NoError(t, err)
	assert.Equal(t, []domain.TrendRow{
		{Week: "25", Year: "2023-2024", Incidentie: 1.2},
		{Week: "26", Year: "2023-2024", Incidentie: 0},
	}, flu)

	covid, err := repo.Trend(context.Background(), domain.LocaleDE, domain.DiseaseCovidLike)
	require.NoError(t, err)
	assert.Equal(t, []domain.TrendRow{{Week: "40", Year: "2022-2023", Incidentie: 3.5}}, covid)
}

func TestProvincesAndSexAge(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en/provinces.csv", "province,deelnemersper1000\nAntwerp,12.3\n")
	writeFile(t, dir, "en/sexage.csv", "age,sex,count\n0-19,Male,40\n0-19,Female,55.0\n")

	repo := csvfs.NewTableRepository(dir, zap.NewNop())

	provinces, err := repo.Provinces(context.Background(), domain.LocaleEN)
	require.NoError(t, err)
	assert.Equal(t, []domain.ProvinceRow{{Province: "Antwerp", DeelnemersPer1000: 12.3}}, provinces)

	sexage, err := repo.SexAge(context.Background(), domain.LocaleEN)
	require.NoError(t, err)
	assert.Equal(t, []domain.SexAgeRow{
		{Age: "0-19", Sex: "Male", Count: 40},
		{Age: "0-19", Sex: "Female", Count: 55},
	}, sexage)
}

func TestSexAge_FractionalCountIsMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en/sexage.csv", "age,sex,count\n0-19,Male,4.5\n")

	_, err := csvfs.NewTableRepository(dir, zap.NewNop()).SexAge(context.Background(), domain.LocaleEN)
	assert.True(t, stderrors.Is(err, errors.ErrDataMalformed))
}

func TestNonFiniteNumbersAreMalformed(t *testing.T) {
	ctx := context.Background()

	for _, cell := range []string{"Inf", "+Inf", "-inf", "Infinity", "NaN"} {
		t.Run(cell, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "en/flulike.csv", "week,incidentie,year\n25,"+cell+",2023-2024\n")
			writeFile(t, dir, "en/provinces.csv", "province,deelnemersper1000\nAntwerp,"+cell+"\n")
			writeFile(t, dir, "en/symptoms.csv", "symptom,frequentie,week\nCough,"+cell+",2024/06/19\n")
			writeFile(t, dir, "en/sexage.csv", "age,sex,count\n0-19,Male,"+cell+"\n")
			repo := csvfs.NewTableRepository(dir, zap.NewNop())

			_, err := repo.Trend(ctx, domain.LocaleEN, domain.DiseaseFluLike)
			assert.True(t, stderrors.Is(err, errors.ErrDataMalformed), "trend: %v", err)

			_, err = repo.Provinces(ctx, domain.LocaleEN)
			assert.True(t, stderrors.Is(err, errors.ErrDataMalformed), "provinces: %v", err)

			_, err = repo.Symptoms(ctx, domain.LocaleEN)
			assert.True(t, stderrors.Is(err, errors.ErrDataMalformed), "symptoms: %v", err)

			_, err = repo.SexAge(ctx, domain.LocaleEN)
			assert.True(t, stderrors.Is(err, errors.ErrDataMalformed), "sexage: %v", err)
		})
	}
}

const boundariesJSON = `{
  "type": "FeatureCollection",
  "features": [{
    "type": "Feature",
    "properties": {"name-english": "Antwerp", "name-dutch": "Antwerpen", "name-french": "Anvers", "name-german": "Antwerpen"},
    "geometry": {"type": "Polygon", "coordinates": [[[4.2, 51.0], [5.2, 51.0], [5.2, 51.5], [4.2, 51.0]]]}
  }]
}`

func TestBoundaries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, csvfs.BoundariesFile, boundariesJSON)

	b, err := csvfs.NewBoundaryRepository(dir, zap.NewNop()).Boundaries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, b.Len())

	_, ok := b.FindByProperty(domain.PropertyNameFrench, "Anvers")
	assert.True(t, ok)
}

func TestBoundaries_Errors(t *testing.T) {
	dir := t.TempDir()
	repo := csvfs.NewBoundaryRepository(dir, zap.NewNop())

	_, err := repo.Boundaries(context.Background())
	assert.True(t, stderrors.Is(err, errors.ErrDataFileUnreadable))

	writeFile(t, dir, csvfs.BoundariesFile, "{not json")
	_, err = repo.Boundaries(context.Background())
	assert.True(t, stderrors.Is(err, errors.ErrDataMalformed))
}
