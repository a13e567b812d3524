package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// Callers use errors.Is to check for them; the API layer maps each one to an
// HTTP status code.
var (
	// ErrTaskNotFound indicates that no task exists with the requested ID.
	// API layer should map this to HTTP 404 Not Found.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidStatus indicates a status filter label that is not recognized.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidStatus = errors.New("unrecognized task status")

	// ErrInvalidTask indicates a task payload the store cannot accept.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidTask = errors.New("invalid task")
)

// TaskServiceError wraps errors from the task service with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "create_task", "search_by_title")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
// Known store and domain sentinels are translated into service sentinels
// and returned without wrapping.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrTaskNotFound),
		errors.Is(err, store.ErrTaskNotFound),
		errors.Is(err, domain.ErrTaskNotFound):
		return ErrTaskNotFound
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidTask):
		return err
	case errors.Is(err, domain.ErrUnrecognizedStatus):
		return fmt.Errorf("%w: %s", ErrInvalidStatus, message)
	case errors.Is(err, store.ErrInvalidEntity):
		return fmt.Errorf("%w: %s", ErrInvalidTask, message)
	}

	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
