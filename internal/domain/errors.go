package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrTaskNotFound is returned when a task identifier is absent or cannot
	// refer to any task (for example a non-numeric path segment).
	ErrTaskNotFound = errors.New("task not found")

	// ErrUnrecognizedStatus is returned when a status label is neither of the
	// two known labels in any accepted locale.
	ErrUnrecognizedStatus = errors.New("unrecognized task status")

	// ErrInvalidDate is returned when a due date cannot be parsed as a calendar day.
	ErrInvalidDate = errors.New("invalid date")
)
