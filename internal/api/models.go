package api

import (
	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskRequest is the body of create and update requests.
// A client-supplied id is accepted for compatibility but never used.
type TaskRequest struct {
	ID          *int64        `json:"id,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	DueDate     *domain.Date  `json:"due_date"`
	Status      domain.Status `json:"status"`
}

// ToDomain converts the request into an unsaved task.
func (r *TaskRequest) ToDomain() *domain.Task {
	return domain.NewTask(r.Title, r.Description, r.DueDate, r.Status)
}

// TaskResponse represents the response data for a task
type TaskResponse struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	DueDate     *domain.Date  `json:"due_date"`
	Status      domain.Status `json:"status"`
}

// DateSearchRequest holds the query parameters of a due-date search.
type DateSearchRequest struct {
	Date string `validate:"required"`
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Status:      task.Status,
	}
}

// tasksToResponse converts a slice of tasks, never returning nil.
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}
