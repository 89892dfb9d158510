package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unrot/utils/logger"
)

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(RequestIDMiddleware())
	e.GET("/", func(c echo.Context) error {
		id, _ := c.Request().Context().Value(logger.RequestIDKey).(string)
		return c.String(http.StatusOK, id)
	})

	t.Run("generates id when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("propagates incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", rec.Body.String())
	})
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(logger.NewRequestContextHandler(slog.NewJSONHandler(&buf, nil)))

	e := echo.New()
	e.Use(RequestIDMiddleware())
	e.Use(LoggingMiddleware(base))
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/missing", func(c echo.Context) error { return echo.NewHTTPError(http.StatusNotFound) })
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	t.Run("logs start and completion with request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(RequestIDHeader, "req-1")
		e.ServeHTTP(httptest.NewRecorder(), req)

		lines := decodeLines(t, &buf)
		require.Len(t, lines, 2)
		assert.Equal(t, "request started", lines[0]["msg"])
		assert.Equal(t, "request completed", lines[1]["msg"])
		assert.Equal(t, "INFO", lines[1]["level"])
		assert.Equal(t, "req-1", lines[1]["request_id"])
		assert.Equal(t, float64(200), lines[1]["status"])
	})

	t.Run("client errors log at warn", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		lines := decodeLines(t, &buf)
		require.Len(t, lines, 2)
		assert.Equal(t, "WARN", lines[1]["level"])
		assert.Equal(t, float64(404), lines[1]["status"])
	})

	t.Run("skips health checks", func(t *testing.T) {
		buf.Reset()
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Empty(t, strings.TrimSpace(buf.String()))
	})
}
