package postgres_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/infectieradar-dashboard/internal/domain"
	"github.com/infectieradar-dashboard/internal/domain/repository"
	"github.com/infectieradar-dashboard/internal/repository/postgres/testhelpers"
)

// TableRepositoryTestSuite тестирует чтение таблиц дашборда из PostgreSQL
type TableRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.TableRepository
	ctx    context.Context
}

func (s *TableRepositoryTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.Require().NoError(err, "Failed to apply migrations")

	s.repo = testhelpers.NewTableRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *TableRepositoryTestSuite) SetupTest() {
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
}

func (s *TableRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *TableRepositoryTestSuite) TestSymptoms_KeepsInsertOrder() {
	want := []domain.SymptomRow{
		{Symptom: "Hoest", Frequentie: 12.5, Week: "2024/06/19"},
		{Symptom: "Koorts", Frequentie: 3.1, Week: "2024/06/19"},
	}
	s.Require().NoError(testhelpers.InsertSymptoms(s.ctx, s.testDB.DB.DB, domain.LocaleNL.Code, want))
	s.Require().NoError(testhelpers.InsertSymptoms(s.ctx, s.testDB.DB.DB, domain.LocaleFR.Code, []domain.SymptomRow{{Symptom: "Toux", Frequentie: 1}}))

	got, err := s.repo.Symptoms(s.ctx, domain.LocaleNL)
	s.Require().NoError(err)
	s.Equal(want, got)
}

func (s *TableRepositoryTestSuite) TestTrend_FiltersByDisease() {
	flu := []domain.TrendRow{
		{Week: "25", Year: "2023-2024", Incidentie: 1.5},
		{Week: "26", Year: "2023-2024", Incidentie: 2.5},
	}
	covid := []domain.TrendRow{{Week: "25", Year: "2023-2024", Incidentie: 0.4}}
	s.Require().NoError(testhelpers.InsertTrend(s.ctx, s.testDB.DB.DB, domain.LocaleEN.Code, domain.DiseaseFluLike, flu))
	s.Require().NoError(testhelpers.InsertTrend(s.ctx, s.testDB.DB.DB, domain.LocaleEN.Code, domain.DiseaseCovidLike, covid))

	got, err := s.repo.Trend(s.ctx, domain.LocaleEN, domain.DiseaseFluLike)
	s.Require().NoError(err)
	s.Equal(flu, got)

	got, err = s.repo.Trend(s.ctx, domain.LocaleEN, domain.DiseaseCovidLike)
	s.Require().NoError(err)
	s.Equal(covid, got)
}

func (s *TableRepositoryTestSuite) TestProvincesAndSexAge() {
	provinces := []domain.ProvinceRow{{Province: "Antwerpen", DeelnemersPer1000: 0.8}}
	sexage := []domain.SexAgeRow{
		{Age: "20-39", Sex: "Man", Count: 120},
		{Age: "20-39", Sex: "Vrouw", Count: 210},
	}
	s.Require().NoError(testhelpers.InsertProvinces(s.ctx, s.testDB.DB.DB, domain.LocaleNL.Code, provinces))
	s.Require().NoError(testhelpers.InsertSexAge(s.ctx, s.testDB.DB.DB, domain.LocaleNL.Code, sexage))

	gotProvinces, err := s.repo.Provinces(s.ctx, domain.LocaleNL)
	s.Require().NoError(err)
	s.Equal(provinces, gotProvinces)

	gotSexAge, err := s.repo.SexAge(s.ctx, domain.LocaleNL)
	s.Require().NoError(err)
	s.Equal(sexage, gotSexAge)
}

func (s *TableRepositoryTestSuite) TestNonFiniteRatesRejected() {
	for _, v := range []float64{math.Inf(1), math.NaN()} {
		err := testhelpers.InsertTrend(s.ctx, s.testDB.DB.DB, domain.LocaleEN.Code, domain.DiseaseFluLike,
			[]domain.TrendRow{{Week: "25", Year: "2023-2024", Incidentie: v}})
		s.Error(err, "incidentie %v", v)

		err = testhelpers.InsertProvinces(s.ctx, s.testDB.DB.DB, domain.LocaleEN.Code,
			[]domain.ProvinceRow{{Province: "Antwerp", DeelnemersPer1000: v}})
		s.Error(err, "deelnemersper1000 %v", v)
	}
}

func (s *TableRepositoryTestSuite) TestEmptyLocale() {
	got, err := s.repo.Provinces(s.ctx, domain.LocaleDE)
	s.Require().NoError(err)
	s.Empty(got)
}

func TestTableRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(TableRepositoryTestSuite))
}
