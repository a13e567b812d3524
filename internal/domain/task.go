package domain

import (
	"strconv"
	"time"
)

// Task is the persisted unit of work tracked by the service.
//
// ID is assigned by the store on creation and never changes afterwards. The
// remaining fields are replaced wholesale by an update. No field-level
// validation is applied: an empty title is a valid task.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     *Date  `json:"due_date"`
	Status      Status `json:"status"`
}

// NewTask builds an unsaved task. The ID stays zero until a store assigns one.
func NewTask(title, description string, dueDate *Date, status Status) *Task {
	t := &Task{
		Title:       title,
		Description: description,
		Status:      status,
	}
	if dueDate != nil {
		d := *dueDate
		t.DueDate = &d
	}
	return t
}

// Clone returns a deep copy of t, so callers never share the due date pointer.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	return &c
}

// ApplyUpdate overwrites every mutable field of t with the values in src.
// The ID of t is kept, whatever src carries.
func (t *Task) ApplyUpdate(src *Task) {
	t.Title = src.Title
	t.Description = src.Description
	t.Status = src.Status
	t.DueDate = nil
	if src.DueDate != nil {
		d := *src.DueDate
		t.DueDate = &d
	}
}

// DueTime returns the due date as a nullable time for database parameters.
func (t *Task) DueTime() *time.Time {
	if t.DueDate == nil {
		return nil
	}
	v := t.DueDate.Time()
	return &v
}

// ParseTaskID converts a raw identifier into a task ID. An empty, malformed,
// or non-positive identifier cannot match any task and yields ErrTaskNotFound.
func ParseTaskID(raw string) (int64, error) {
	if raw == "" {
		return 0, ErrTaskNotFound
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrTaskNotFound
	}
	return id, nil
}
