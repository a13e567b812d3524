package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/redact"
)

// healthCheckTimeout bounds the database ping made by the health endpoint.
const healthCheckTimeout = 2 * time.Second

// Pinger is implemented by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler returns a handler for GET /health. It answers 200 "OK" when
// the database responds to a ping and 503 otherwise.
func HealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		status, body := http.StatusOK, "OK"
		if err := db.PingContext(ctx); err != nil {
			log.Warn("health check failed", slog.String("error", redact.Error(err)))
			status, body = http.StatusServiceUnavailable, "database unavailable"
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		if _, err := w.Write([]byte(body)); err != nil {
			log.Error("Failed to write health check response", slog.String("error", err.Error()))
		}
	}
}
