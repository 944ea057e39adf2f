package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/infectieradar-dashboard/internal/domain/repository"
	"github.com/infectieradar-dashboard/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewTableRepositoryForTest creates a table repository with test database and logger
func NewTableRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.TableRepository {
	return postgres.NewTableRepository(NewDBForTest(db, logger))
}
