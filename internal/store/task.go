package store

import (
	"context"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
//
// Every method is a single self-contained unit of work. Returned tasks are
// fresh copies; mutating them never affects stored state.
type TaskStore interface {
	// Create saves a new task and returns it with its store-assigned ID.
	// Any ID already set on task is ignored.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Update replaces the title, description, due date and status of the task
	// with the given ID and returns the stored result. The ID is never changed.
	// Returns ErrTaskNotFound, without writing, if the task does not exist.
	Update(ctx context.Context, id int64, task *domain.Task) (*domain.Task, error)

	// Delete permanently removes the task with the given ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// List returns every task in storage order.
	// Returns an empty slice if the store is empty.
	List(ctx context.Context) ([]*domain.Task, error)

	// FindByTitle returns the tasks whose title contains substring
	// (case-sensitive, no wildcards). Returns an empty slice if nothing matches.
	FindByTitle(ctx context.Context, substring string) ([]*domain.Task, error)

	// FindByDueDate returns the tasks due on exactly the given day.
	// Tasks without a due date never match.
	FindByDueDate(ctx context.Context, date domain.Date) ([]*domain.Task, error)

	// FindByStatus returns the tasks in the given status.
	FindByStatus(ctx context.Context, status domain.Status) ([]*domain.Task, error)
}
