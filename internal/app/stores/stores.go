// Package stores selects the record store backend for a process.
package stores

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/app/config"
	trackermemory "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/adapters/memory"
	trackerpostgres "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/adapters/persistence/postgres"
	trackerports "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/ports"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/platform/migrations"
	platformpostgres "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/platform/postgres"
	platformsqlite "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/platform/sqlite"
)

const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
)

// Stores is the pair of record stores plus the backend that serves them.
type Stores struct {
	Donations trackerports.DonationStore
	Wishes    trackerports.WishStore
	Backend   string
}

// Build picks PostgreSQL when a DSN resolves, else SQLite when a path is set,
// else the in-memory stores. Connection failures fall through to the next
// backend. The returned cleanup closes any opened database.
func Build(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (Stores, func()) {
	dsn, err := cfg.ResolveDSN()
	if err != nil {
		logger.Warn("ignoring invalid database URL", slog.String("error", err.Error()))
	}
	if db, cleanup := platformpostgres.Open(ctx, dsn, uint64(cfg.ConnectAttempts), logger); db != nil {
		if s, ok := gormStores(db, BackendPostgres, logger); ok {
			return s, cleanup
		}
		cleanup()
	}
	if db, cleanup := platformsqlite.Open(ctx, cfg.SQLitePath, logger); db != nil {
		if s, ok := gormStores(db, BackendSQLite, logger); ok {
			return s, cleanup
		}
		cleanup()
	}
	logger.Warn("no database configured, falling back to in-memory record stores")
	return Stores{
		Donations: trackermemory.NewDonationStore(),
		Wishes:    trackermemory.NewWishStore(),
		Backend:   BackendMemory,
	}, func() {}
}

func gormStores(db *gorm.DB, backend string, logger *slog.Logger) (Stores, bool) {
	if err := migrations.Run(db); err != nil {
		logger.Warn("failed to apply migrations", slog.String("backend", backend), slog.String("error", err.Error()))
		return Stores{}, false
	}
	logger.Info("record stores configured", slog.String("backend", backend))
	return Stores{
		Donations: trackerpostgres.NewDonationStore(db),
		Wishes:    trackerpostgres.NewWishStore(db),
		Backend:   backend,
	}, true
}
