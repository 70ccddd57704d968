package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return buf
}

func TestLoggingMiddleware_Success(t *testing.T) {
	logs := captureLogs(t)

	h := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/activities", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	out := logs.String()
	assert.Contains(t, out, `"level":"INFO"`)
	assert.Contains(t, out, "GET /activities - 200 16B")
	assert.NotContains(t, out, "response_body")
}

func TestLoggingMiddleware_ErrorBody(t *testing.T) {
	logs := captureLogs(t)

	h := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Nonexistent Activity not found"}`))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/activities/Nonexistent%20Activity/signup", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	out := logs.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, "Nonexistent Activity not found")
}

func TestResponseWriter_CapsLoggedBody(t *testing.T) {
	rw := newResponseWriter(httptest.NewRecorder())
	rw.WriteHeader(http.StatusInternalServerError)

	_, err := rw.Write([]byte(strings.Repeat("x", maxLoggedBody+100)))
	require.NoError(t, err)

	assert.Equal(t, maxLoggedBody, rw.body.Len())
	assert.Equal(t, maxLoggedBody+100, rw.size)
}

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(MetricsMiddleware)
	r.Post("/activities/{activityName}/signup", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	counter := httpRequestsTotal.WithLabelValues(http.MethodPost, "/activities/{activityName}/signup", "400")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
