// Package main implements the entry point for the tasks API server, which
// exposes CRUD and search operations over task records backed by PostgreSQL
// or an embedded SQLite database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
)

// main is the entry point for the tasks-api server.
// It loads configuration, sets up logging, connects to the database, and
// either runs a migration command or serves HTTP until SIGINT/SIGTERM.
func main() {
	migrateCmd := flag.String("migrate", "", "Run a database migration command (up, down, reset, status, version) and exit")
	flag.Parse()

	if err := run(context.Background(), *migrateCmd); err != nil {
		log.Fatalf("tasks-api: %v", err)
	}
}

func run(ctx context.Context, migrateCmd string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if migrateCmd != "" {
		defer closeDatabase(db, logger)
		return handleMigrations(ctx, db, migrateCmd, logger)
	}

	if cfg.Database.AutoMigrate {
		if err := handleMigrations(ctx, db, "up", logger); err != nil {
			closeDatabase(db, logger)
			return err
		}
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		closeDatabase(db, logger)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return err
	}

	slog.Info("tasks-api exited cleanly")
	return nil
}
