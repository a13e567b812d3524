package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

const taskColumns = `id, title, description, due_date, status`

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task   domain.Task
		due    sql.NullTime
		status int16
	)
	if err := row.Scan(&task.ID, &task.Title, &task.Description, &due, &status); err != nil {
		return nil, err
	}
	if due.Valid {
		task.DueDate = domain.DateFromNullable(&due.Time)
	}
	task.Status = domain.Status(status)
	return &task, nil
}

// Create implements store.TaskStore.Create
// The ID is assigned by the tasks_id_seq sequence; any ID on task is ignored.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO tasks (title, description, due_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	created := task.Clone()
	err := s.db.QueryRowContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.DueTime(),
		int16(task.Status),
	).Scan(&created.ID)
	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("title", task.Title))
		return nil, MapError(err)
	}

	log.Info("task created successfully",
		slog.Int64("task_id", created.ID),
		slog.String("status", created.Status.String()))
	return created, nil
}

// GetByID implements store.TaskStore.GetByID
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving task by ID", slog.Int64("task_id", id))

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if IsNotFoundError(err) {
			log.Debug("task not found", slog.Int64("task_id", id))
			return nil, store.ErrTaskNotFound
		}

		log.Error("failed to retrieve task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, MapError(err)
	}

	return task, nil
}

// Update implements store.TaskStore.Update
// The existence check and the write happen in one statement, so a missing
// task is reported without any row being touched.
func (s *PostgresTaskStore) Update(ctx context.Context, id int64, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE tasks
		SET title = $1, description = $2, due_date = $3, status = $4
		WHERE id = $5
		RETURNING ` + taskColumns

	updated, err := scanTask(s.db.QueryRowContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.DueTime(),
		int16(task.Status),
		id,
	))
	if err != nil {
		if IsNotFoundError(err) {
			log.Debug("task not found for update", slog.Int64("task_id", id))
			return nil, store.ErrTaskNotFound
		}

		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, MapError(err)
	}

	log.Info("task updated successfully",
		slog.Int64("task_id", id),
		slog.String("status", updated.Status.String()))
	return updated, nil
}

// Delete implements store.TaskStore.Delete
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result); err != nil {
		if IsNotFoundError(err) {
			log.Debug("task not found for deletion", slog.Int64("task_id", id))
		} else {
			log.Error("failed to check rows affected",
				slog.String("error", err.Error()),
				slog.Int64("task_id", id))
		}
		return err
	}

	log.Info("task deleted successfully", slog.Int64("task_id", id))
	return nil
}

// List implements store.TaskStore.List
func (s *PostgresTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	return s.query(ctx, "list",
		`SELECT `+taskColumns+` FROM tasks ORDER BY id ASC`)
}

// FindByTitle implements store.TaskStore.FindByTitle
// strpos is used instead of LIKE so that % and _ in the substring are literal.
func (s *PostgresTaskStore) FindByTitle(ctx context.Context, substring string) ([]*domain.Task, error) {
	return s.query(ctx, "find_by_title",
		`SELECT `+taskColumns+` FROM tasks WHERE strpos(title, $1) > 0 ORDER BY id ASC`,
		substring)
}

// FindByDueDate implements store.TaskStore.FindByDueDate
func (s *PostgresTaskStore) FindByDueDate(ctx context.Context, date domain.Date) ([]*domain.Task, error) {
	return s.query(ctx, "find_by_due_date",
		`SELECT `+taskColumns+` FROM tasks WHERE due_date = $1 ORDER BY id ASC`,
		date.Time())
}

// FindByStatus implements store.TaskStore.FindByStatus
func (s *PostgresTaskStore) FindByStatus(ctx context.Context, status domain.Status) ([]*domain.Task, error) {
	return s.query(ctx, "find_by_status",
		`SELECT `+taskColumns+` FROM tasks WHERE status = $1 ORDER BY id ASC`,
		int16(status))
}

// query runs a multi-row SELECT and always returns a non-nil slice on success.
func (s *PostgresTaskStore) query(
	ctx context.Context,
	operation string,
	query string,
	args ...any,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query tasks",
			slog.String("operation", operation),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows",
				slog.String("operation", operation),
				slog.String("error", cerr.Error()))
		}
	}()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row",
				slog.String("operation", operation),
				slog.String("error", err.Error()))
			return nil, store.NewStoreError("task", operation, "failed to scan task row", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating task rows",
			slog.String("operation", operation),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("tasks retrieved",
		slog.String("operation", operation),
		slog.Int("count", len(tasks)))
	return tasks, nil
}
