package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/postgres"
	"github.com/phrazzld/tasks-api/internal/platform/sqlite"
	"github.com/phrazzld/tasks-api/internal/redact"
	"github.com/phrazzld/tasks-api/internal/store"
	"gorm.io/gorm"
)

// dbPingTimeout bounds the connectivity check made at startup.
const dbPingTimeout = 5 * time.Second

// appDatabase bundles the task store with the connection pool behind it.
// The pool is kept for health checks, migrations, and shutdown.
type appDatabase struct {
	driver    string
	sqlDB     *sql.DB
	gormDB    *gorm.DB
	taskStore store.TaskStore
}

// setupAppDatabase establishes a connection to the configured database and configures
// connection pools. Returns the database bundle if successful, or an error if the
// connection fails.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*appDatabase, error) {
	var (
		db  *appDatabase
		err error
	)

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err = openPostgres(cfg.Database, logger)
	case config.DriverSQLite:
		db, err = openSQLite(cfg.Database, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()

	if err := db.sqlDB.PingContext(pingCtx); err != nil {
		closeDatabase(db, logger)
		return nil, fmt.Errorf("failed to ping database: %s", redact.Error(err))
	}

	logger.Info("Database connection established", slog.String("driver", db.driver))
	return db, nil
}

func openPostgres(cfg config.DatabaseConfig, logger *slog.Logger) (*appDatabase, error) {
	sqlDB, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %s", redact.Error(err))
	}
	configurePool(sqlDB, cfg)

	return &appDatabase{
		driver:    config.DriverPostgres,
		sqlDB:     sqlDB,
		taskStore: postgres.NewPostgresTaskStore(sqlDB, logger),
	}, nil
}

func openSQLite(cfg config.DatabaseConfig, logger *slog.Logger) (*appDatabase, error) {
	gormDB, err := sqlite.Open(cfg.URL, logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sqlite connection pool: %w", err)
	}
	// sqlite.Open pins in-memory databases to a single connection.
	if !sqlite.IsMemory(cfg.URL) {
		configurePool(sqlDB, cfg)
	}

	return &appDatabase{
		driver:    config.DriverSQLite,
		sqlDB:     sqlDB,
		gormDB:    gormDB,
		taskStore: sqlite.NewSQLiteTaskStore(gormDB, logger),
	}, nil
}

func configurePool(db *sql.DB, cfg config.DatabaseConfig) {
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)
}

// closeDatabase closes the connection pool, logging any failure.
func closeDatabase(db *appDatabase, logger *slog.Logger) {
	if db == nil || db.sqlDB == nil {
		return
	}
	if err := db.sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", slog.String("error", redact.Error(err)))
	}
}
