package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens a PostgreSQL connection via GORM and verifies connectivity.
func Connect(ctx context.Context, dsn string) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// ConnectWithRetry retries Connect with exponential backoff, giving up after
// attempts tries or when ctx is done.
func ConnectWithRetry(ctx context.Context, dsn string, attempts uint64, logger *slog.Logger) (*gorm.DB, error) {
	if attempts == 0 {
		attempts = 1
	}
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxInterval = 5 * time.Second

	var db *gorm.DB
	try := 0
	op := func() error {
		try++
		conn, err := Connect(ctx, dsn)
		if err != nil {
			if strings.TrimSpace(dsn) == "" {
				return backoff.Permanent(err)
			}
			if logger != nil {
				logger.Warn("postgres connection attempt failed", slog.Int("attempt", try), slog.String("error", err.Error()))
			}
			return err
		}
		db = conn
		return nil
	}
	if err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(policy, attempts-1), ctx)); err != nil {
		return nil, err
	}
	return db, nil
}

// Open dials PostgreSQL and returns the DB plus a cleanup function. When dsn is
// empty or every attempt fails, it logs and returns nil with a no-op cleanup so
// the caller can fall back to another store.
func Open(ctx context.Context, dsn string, attempts uint64, logger *slog.Logger) (*gorm.DB, func()) {
	if strings.TrimSpace(dsn) == "" {
		return nil, func() {}
	}
	db, err := ConnectWithRetry(ctx, dsn, attempts, logger)
	if err != nil {
		if logger != nil {
			logger.Warn("failed to connect to postgres, falling back", slog.String("error", err.Error()))
		}
		return nil, func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		if logger != nil {
			logger.Warn("failed to unwrap postgres connection, falling back", slog.String("error", err.Error()))
		}
		return nil, func() {}
	}
	if logger != nil {
		logger.Info("postgres connection established")
	}
	return db, func() { _ = sqlDB.Close() }
}
