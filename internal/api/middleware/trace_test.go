package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/til-api/internal/api/shared"
	"github.com/phrazzld/til-api/internal/platform/logger"
)

func TestNewTraceMiddleware(t *testing.T) {
	buf, testLogger, cleanup := logger.SetupTestLogger(t)
	defer cleanup()

	var seenTraceID string
	handler := chimiddleware.RequestID(NewTraceMiddleware(testLogger)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenTraceID = shared.GetTraceID(r.Context())
			logger.FromContext(r.Context()).Info("inside handler")
			w.WriteHeader(http.StatusTeapot)
		}),
	))

	req := httptest.NewRequest(http.MethodGet, "/api/acronyms", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	require.NotEmpty(t, seenTraceID)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)

	var inside, completed map[string]interface{}
	for _, e := range entries {
		switch e["msg"] {
		case "inside handler":
			inside = e
		case "request completed":
			completed = e
		}
	}

	require.NotNil(t, inside, "handler log should use the trace-scoped logger")
	assert.Equal(t, seenTraceID, inside["trace_id"])
	assert.NotEmpty(t, inside["request_id"])

	require.NotNil(t, completed)
	assert.Equal(t, float64(http.StatusTeapot), completed["status"])
	assert.Equal(t, "/api/acronyms", completed["path"])
}

func TestNewTraceMiddlewareNilLoggerUsesDefault(t *testing.T) {
	buf, _, cleanup := logger.SetupTestLogger(t)
	defer cleanup()

	handler := NewTraceMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/x", nil))

	assert.Contains(t, buf.String(), "request completed")
}
