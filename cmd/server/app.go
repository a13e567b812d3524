package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/service"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *appDatabase

	taskService service.TaskService
}

// newApplication creates a new application instance with all dependencies initialized.
// The database must already be connected and migrated.
func newApplication(cfg *config.Config, logger *slog.Logger, db *appDatabase) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.taskService, err = service.NewTaskService(
		db.taskStore,
		logger.With("component", "task_service"),
		service.WithLenientStatusFilter(cfg.Tasks.LenientStatusFilter),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	closeDatabase(app.db, app.logger)
	app.logger.Info("Application shutdown completed")
}
