package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
// Returns the loaded config and any loading error.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver)

	slog.Debug("Database configuration",
		"url_present", cfg.Database.URL != "",
		"auto_migrate", cfg.Database.AutoMigrate)
	if cfg.Tasks.LenientStatusFilter {
		slog.Warn("Legacy lenient status filter enabled: unknown status labels match Done")
	}

	return cfg, nil
}
