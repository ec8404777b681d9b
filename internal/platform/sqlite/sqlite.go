package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the SQLite database file at path via GORM.
func Connect(ctx context.Context, path string) (*gorm.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer at a time.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Open mirrors the postgres helper: nil DB and a no-op cleanup when path is
// empty or the file cannot be opened.
func Open(ctx context.Context, path string, logger *slog.Logger) (*gorm.DB, func()) {
	if strings.TrimSpace(path) == "" {
		return nil, func() {}
	}
	db, err := Connect(ctx, path)
	if err != nil {
		if logger != nil {
			logger.Warn("failed to open sqlite database, falling back", slog.String("path", path), slog.String("error", err.Error()))
		}
		return nil, func() {}
	}
	sqlDB, _ := db.DB()
	if logger != nil {
		logger.Info("sqlite database opened", slog.String("path", path))
	}
	return db, func() { _ = sqlDB.Close() }
}
