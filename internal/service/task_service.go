package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskService provides task-related operations.
type TaskService interface {
	// GetTask returns the task with the given ID, or ErrTaskNotFound.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// CreateTask stores a new task and returns it with its assigned ID.
	CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// UpdateTask replaces every mutable field of the task with the given ID.
	// Returns ErrTaskNotFound, without creating anything, if it does not exist.
	UpdateTask(ctx context.Context, id int64, task *domain.Task) (*domain.Task, error)

	// DeleteTask removes the task with the given ID, or returns ErrTaskNotFound.
	DeleteTask(ctx context.Context, id int64) error

	// ListTasks returns all tasks.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// SearchByTitle returns the tasks whose title contains substring.
	SearchByTitle(ctx context.Context, substring string) ([]*domain.Task, error)

	// SearchByDate returns the tasks due on date.
	SearchByDate(ctx context.Context, date domain.Date) ([]*domain.Task, error)

	// SearchByStatus returns the tasks whose status matches label.
	// Unrecognized labels yield ErrInvalidStatus unless the service was
	// built with WithLenientStatusFilter.
	SearchByStatus(ctx context.Context, label string) ([]*domain.Task, error)
}

// Option configures a task service.
type Option func(*taskServiceImpl)

// WithLenientStatusFilter makes SearchByStatus treat every label other than
// Pending as Done instead of rejecting it.
func WithLenientStatusFilter(enabled bool) Option {
	return func(s *taskServiceImpl) {
		s.lenientStatus = enabled
	}
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks         store.TaskStore
	logger        *slog.Logger
	lenientStatus bool
}

// Ensure taskServiceImpl implements TaskService interface
var _ TaskService = (*taskServiceImpl)(nil)

// NewTaskService creates a new TaskService.
// It returns an error if the task store is nil.
func NewTaskService(tasks store.TaskStore, logger *slog.Logger, opts ...Option) (TaskService, error) {
	if tasks == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "task store cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &taskServiceImpl{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_service")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, NewTaskServiceError("get_task", fmt.Sprintf("failed to get task %d", id), err)
	}
	return task, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := validateTask(task); err != nil {
		log.Warn("rejected task payload on create", slog.String("error", err.Error()))
		return nil, err
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, NewTaskServiceError("create_task", "failed to create task", err)
	}

	log.Debug("task created", slog.Int64("task_id", created.ID))
	return created, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id int64,
	task *domain.Task,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := validateTask(task); err != nil {
		log.Warn("rejected task payload on update",
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}

	updated, err := s.tasks.Update(ctx, id, task)
	if err != nil {
		return nil, NewTaskServiceError("update_task", fmt.Sprintf("failed to update task %d", id), err)
	}

	log.Debug("task updated", slog.Int64("task_id", id))
	return updated, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		return NewTaskServiceError("delete_task", fmt.Sprintf("failed to delete task %d", id), err)
	}
	return nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

// SearchByTitle implements TaskService.SearchByTitle
func (s *taskServiceImpl) SearchByTitle(ctx context.Context, substring string) ([]*domain.Task, error) {
	tasks, err := s.tasks.FindByTitle(ctx, substring)
	if err != nil {
		return nil, NewTaskServiceError("search_by_title", "failed to search tasks by title", err)
	}
	return tasks, nil
}

// SearchByDate implements TaskService.SearchByDate
func (s *taskServiceImpl) SearchByDate(ctx context.Context, date domain.Date) ([]*domain.Task, error) {
	tasks, err := s.tasks.FindByDueDate(ctx, date)
	if err != nil {
		return nil, NewTaskServiceError("search_by_date", "failed to search tasks by due date", err)
	}
	return tasks, nil
}

// SearchByStatus implements TaskService.SearchByStatus
func (s *taskServiceImpl) SearchByStatus(ctx context.Context, label string) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	status, err := s.parseStatus(label)
	if err != nil {
		log.Debug("unrecognized status filter", slog.String("status", label))
		return nil, NewTaskServiceError("search_by_status", fmt.Sprintf("status %q", label), err)
	}

	tasks, err := s.tasks.FindByStatus(ctx, status)
	if err != nil {
		return nil, NewTaskServiceError("search_by_status", "failed to search tasks by status", err)
	}
	return tasks, nil
}

func (s *taskServiceImpl) parseStatus(label string) (domain.Status, error) {
	if s.lenientStatus {
		return domain.ParseStatusLenient(label), nil
	}
	return domain.ParseStatus(label)
}

func validateTask(task *domain.Task) error {
	if task == nil {
		return fmt.Errorf("%w: task is required", ErrInvalidTask)
	}
	if !task.Status.IsValid() {
		return fmt.Errorf("%w: unknown status code %d", ErrInvalidTask, int16(task.Status))
	}
	return nil
}
