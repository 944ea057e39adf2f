package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/infectieradar-dashboard/internal/config"
)

const connectRetryInterval = 500 * time.Millisecond

type DB struct {
	*sqlx.DB
	logger *zap.Logger
}

func New(ctx context.Context, cfg *config.DatabaseConfig, logger *zap.Logger) (*DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	// База может подниматься дольше сервиса (docker compose), поэтому подключаемся с ретраями
	var db *sqlx.DB
	attempt := 0
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = connectRetryInterval
	err := backoff.Retry(
		func() error {
			attempt++
			var connErr error
			db, connErr = sqlx.ConnectContext(ctx, "pgx", dsn)
			if connErr != nil {
				logger.Warn("PostgreSQL not ready",
					zap.Int("attempt", attempt),
					zap.Error(connErr))
				return fmt.Errorf("sqlx.Connect: %w", connErr)
			}
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(policy, uint64(cfg.ConnectRetries)),
			ctx,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("PostgreSQL connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.DBName),
		zap.Int("attempts", attempt),
	)

	return &DB{DB: db, logger: logger}, nil
}

func (db *DB) Close() error {
	db.logger.Info("Closing PostgreSQL connection")
	return db.DB.Close()
}

func (db *DB) Health(ctx context.Context) error {
	return db.PingContext(ctx)
}

// NewDBForTest creates a DB instance for testing with provided database and logger
func NewDBForTest(sqlxDB *sqlx.DB, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{
		DB:     sqlxDB,
		logger: logger,
	}
}
