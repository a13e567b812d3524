// Package service implements the task use cases on top of store.TaskStore.
//
// Services translate store outcomes into service-level sentinel errors
// (ErrTaskNotFound, ErrInvalidStatus, ErrInvalidTask) that the API layer maps
// to HTTP status codes. Unexpected failures are wrapped in TaskServiceError
// with the operation that failed.
package service
