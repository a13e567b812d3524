package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// getPathTaskID extracts a task ID from the URL path parameters.
// A missing, malformed, or non-positive ID cannot match any task, so it is
// reported as domain.ErrTaskNotFound.
func getPathTaskID(r *http.Request, paramName string) (int64, error) {
	return domain.ParseTaskID(chi.URLParam(r, paramName))
}
