package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/service"
)

// TasksBasePath is the mount point of the task routes.
const TasksBasePath = "/api/tasks"

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// RegisterRoutes mounts the task routes on r under TasksBasePath.
func (h *TaskHandler) RegisterRoutes(r chi.Router) {
	r.Route(TasksBasePath, func(r chi.Router) {
		r.Get("/", h.ListTasks)
		r.Post("/", h.CreateTask)

		r.Get("/search/title", h.SearchByTitle)
		r.Get("/search/date", h.SearchByDate)
		r.Get("/search/status", h.SearchByStatus)

		r.Get("/{id}", h.GetTask)
		r.Put("/{id}", h.UpdateTask)
		r.Delete("/{id}", h.DeleteTask)
	})
}

// ListTasks handles GET /api/tasks requests
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetTask handles GET /api/tasks/{id} requests
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathTaskID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// CreateTask handles POST /api/tasks requests.
// It responds 201 with the stored task and a Location header for it.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.respondDecodeError(w, r, err)
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), req.ToDomain())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	log.Info("task created via API", slog.Int64("task_id", task.ID))

	w.Header().Set("Location", fmt.Sprintf("%s/%d", TasksBasePath, task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// UpdateTask handles PUT /api/tasks/{id} requests.
// The path ID wins over any ID in the body.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathTaskID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.respondDecodeError(w, r, err)
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, req.ToDomain())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /api/tasks/{id} requests
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathTaskID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SearchByTitle handles GET /api/tasks/search/title?title= requests.
// An absent title matches every task.
func (h *TaskHandler) SearchByTitle(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.SearchByTitle(r.Context(), r.URL.Query().Get("title"))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to search tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// SearchByDate handles GET /api/tasks/search/date?date=YYYY-MM-DD requests
func (h *TaskHandler) SearchByDate(w http.ResponseWriter, r *http.Request) {
	req := DateSearchRequest{Date: r.URL.Query().Get("date")}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	tasks, err := h.taskService.SearchByDate(r.Context(), date)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to search tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// SearchByStatus handles GET /api/tasks/search/status?status= requests
func (h *TaskHandler) SearchByStatus(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.SearchByStatus(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to search tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// respondDecodeError reports a body that could not be decoded. Field-level
// parse failures for status and due_date keep their specific message.
func (h *TaskHandler) respondDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	if MapErrorToStatusCode(err) == http.StatusBadRequest {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
}
