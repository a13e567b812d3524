package sqlite

import (
	"context"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
	"gorm.io/gorm"
)

// SQLiteTaskStore implements the store.TaskStore interface on top of GORM.
type SQLiteTaskStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewSQLiteTaskStore creates a new SQLite implementation of the TaskStore interface.
// If logger is nil, a default logger will be used.
func NewSQLiteTaskStore(db *gorm.DB, logger *slog.Logger) *SQLiteTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &SQLiteTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure SQLiteTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*SQLiteTaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *SQLiteTaskStore) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rec := newTaskRecord(task)
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("title", task.Title))
		return nil, MapError(err)
	}

	log.Info("task created successfully",
		slog.Int64("task_id", rec.ID),
		slog.String("status", domain.Status(rec.Status).String()))
	return rec.toDomain(), nil
}

// GetByID implements store.TaskStore.GetByID
func (s *SQLiteTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving task by ID", slog.Int64("task_id", id))

	var rec taskRecord
	if err := s.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		mapped := MapError(err)
		if store.IsNotFoundError(mapped) {
			log.Debug("task not found", slog.Int64("task_id", id))
		} else {
			log.Error("failed to retrieve task",
				slog.String("error", err.Error()),
				slog.Int64("task_id", id))
		}
		return nil, mapped
	}

	return rec.toDomain(), nil
}

// Update implements store.TaskStore.Update
// The lookup and the write share one transaction.
func (s *SQLiteTaskStore) Update(ctx context.Context, id int64, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var rec taskRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rec, id).Error; err != nil {
			return err
		}

		next := newTaskRecord(task)
		next.ID = rec.ID
		rec = next

		return tx.Save(&rec).Error
	})
	if err != nil {
		mapped := MapError(err)
		if store.IsNotFoundError(mapped) {
			log.Debug("task not found for update", slog.Int64("task_id", id))
		} else {
			log.Error("failed to update task",
				slog.String("error", err.Error()),
				slog.Int64("task_id", id))
		}
		return nil, mapped
	}

	log.Info("task updated successfully",
		slog.Int64("task_id", id),
		slog.String("status", domain.Status(rec.Status).String()))
	return rec.toDomain(), nil
}

// Delete implements store.TaskStore.Delete
func (s *SQLiteTaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result := s.db.WithContext(ctx).Delete(&taskRecord{}, id)
	if result.Error != nil {
		log.Error("failed to delete task",
			slog.String("error", result.Error.Error()),
			slog.Int64("task_id", id))
		return MapError(result.Error)
	}

	if result.RowsAffected == 0 {
		log.Debug("task not found for deletion", slog.Int64("task_id", id))
		return store.ErrTaskNotFound
	}

	log.Info("task deleted successfully", slog.Int64("task_id", id))
	return nil
}

// List implements store.TaskStore.List
func (s *SQLiteTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	return s.find(ctx, "list", s.db.WithContext(ctx))
}

// FindByTitle implements store.TaskStore.FindByTitle
// instr is case-sensitive and treats every character literally.
func (s *SQLiteTaskStore) FindByTitle(ctx context.Context, substring string) ([]*domain.Task, error) {
	return s.find(ctx, "find_by_title",
		s.db.WithContext(ctx).Where("instr(title, ?) > 0", substring))
}

// FindByDueDate implements store.TaskStore.FindByDueDate
func (s *SQLiteTaskStore) FindByDueDate(ctx context.Context, date domain.Date) ([]*domain.Task, error) {
	return s.find(ctx, "find_by_due_date",
		s.db.WithContext(ctx).Where("due_date = ?", date.Time()))
}

// FindByStatus implements store.TaskStore.FindByStatus
func (s *SQLiteTaskStore) FindByStatus(ctx context.Context, status domain.Status) ([]*domain.Task, error) {
	return s.find(ctx, "find_by_status",
		s.db.WithContext(ctx).Where("status = ?", int16(status)))
}

func (s *SQLiteTaskStore) find(ctx context.Context, operation string, q *gorm.DB) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var records []taskRecord
	if err := q.Order("id ASC").Find(&records).Error; err != nil {
		log.Error("failed to query tasks",
			slog.String("operation", operation),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("task", operation, "query failed", MapError(err))
	}

	log.Debug("tasks retrieved",
		slog.String("operation", operation),
		slog.Int("count", len(records)))
	return toDomainList(records), nil
}
