// Package database provides database connection management for PostgreSQL.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/deopraglabs/prysme/internal/database/config"
	"github.com/deopraglabs/prysme/internal/database/pool"
	"github.com/deopraglabs/prysme/pkg/retry"
)

// GormConfig returns the gorm configuration shared by the server and tests.
// TranslateError makes drivers report unique violations as gorm.ErrDuplicatedKey.
func GormConfig(logger gormlogger.Interface) *gorm.Config {
	cfg := &gorm.Config{TranslateError: true}
	if logger != nil {
		cfg.Logger = logger
	}
	return cfg
}

// New creates a new database connection using environment variables.
func New(ctx context.Context, logger gormlogger.Interface) (*gorm.DB, error) {
	return NewWithConfig(ctx, config.LoadConfigFromEnv(), pool.LoadPoolConfigFromEnv(), config.LoadRetryConfigFromEnv(), logger)
}

// NewWithConfig opens a PostgreSQL connection, retrying transient failures.
func NewWithConfig(
	ctx context.Context,
	cfg config.Config,
	poolCfg pool.Config,
	retryCfg retry.Config,
	logger gormlogger.Interface,
) (*gorm.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dsn := config.BuildDSN(cfg)
	db, err := retry.DoWithResult(ctx, retryCfg, func() (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), GormConfig(logger))
	})
	if err != nil {
		return nil, config.SanitizeError(err, cfg)
	}

	if err := pool.SetupConnectionPool(db, poolCfg); err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("failed to setup connection pool: %w", err)
	}

	return db, nil
}

// IsDuplicateKey reports whether err is a unique constraint violation.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

// ErrNilDB is returned when a helper receives no connection.
var ErrNilDB = errors.New("database connection is nil")

func sqlDB(db *gorm.DB) (*sql.DB, error) {
	if db == nil {
		return nil, ErrNilDB
	}
	conn, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	return conn, nil
}

// HealthCheck pings the database.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	conn, err := sqlDB(db)
	if err != nil {
		return err
	}
	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close closes the pool behind db. A nil db is a no-op.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	conn, err := sqlDB(db)
	if err != nil {
		return err
	}
	return conn.Close()
}

// GetStats returns connection pool statistics.
func GetStats(db *gorm.DB) (*sql.DBStats, error) {
	conn, err := sqlDB(db)
	if err != nil {
		return nil, err
	}
	stats := conn.Stats()
	return &stats, nil
}
