package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/platform/postgres"
	"github.com/phrazzld/tasks-api/internal/platform/sqlite"
)

// handleMigrations runs a migration command against the application database.
// PostgreSQL supports every goose command; SQLite schemas are managed by GORM
// and only support "up".
func handleMigrations(ctx context.Context, db *appDatabase, command string, logger *slog.Logger) error {
	switch db.driver {
	case config.DriverPostgres:
		return postgres.RunMigrations(ctx, db.sqlDB, command, logger)
	case config.DriverSQLite:
		if command != postgres.MigrateUp {
			return fmt.Errorf("migration command %q is not supported for sqlite (only %q)",
				command, postgres.MigrateUp)
		}
		logger.Info("Applying sqlite schema", slog.String("component", "migrations"))
		return sqlite.Migrate(ctx, db.gormDB)
	default:
		return fmt.Errorf("unsupported database driver: %s", db.driver)
	}
}
