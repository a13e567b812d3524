package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	var logs bytes.Buffer
	base := logger.New(&logs, slog.LevelDebug)

	var seenTraceID string
	handler := NewTraceMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
	}))

	t.Run("generates trace id", func(t *testing.T) {
		logs.Reset()
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))

		require.NotEmpty(t, seenTraceID)
		assert.Equal(t, seenTraceID, w.Header().Get(shared.TraceIDHeader))
		assert.Contains(t, logs.String(), `"trace_id":"`+seenTraceID+`"`)
		assert.Contains(t, logs.String(), "inside handler")
	})

	t.Run("reuses inbound trace id", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		r.Header.Set(shared.TraceIDHeader, "from-client")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, "from-client", seenTraceID)
		assert.Equal(t, "from-client", w.Header().Get(shared.TraceIDHeader))
	})
}
