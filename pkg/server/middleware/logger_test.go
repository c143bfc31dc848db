package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	newHandler := func(buf *bytes.Buffer) http.Handler {
		logger := zerolog.New(buf)
		return Logger(&logger)(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			zerolog.Ctx(req.Context()).Info().Msg("handling")
			w.WriteHeader(http.StatusTeapot)
		}))
	}

	t.Run("assigns an id and echoes it", func(t *testing.T) {
		var buf bytes.Buffer
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		rec := httptest.NewRecorder()
		newHandler(&buf).ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	})

	t.Run("caller id is preserved", func(t *testing.T) {
		var buf bytes.Buffer
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		rec := httptest.NewRecorder()
		newHandler(&buf).ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
	})

	t.Run("request fields reach inner handlers and the completion line", func(t *testing.T) {
		var buf bytes.Buffer
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		rec := httptest.NewRecorder()
		newHandler(&buf).ServeHTTP(rec, req)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)

		var inner map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &inner))
		assert.Equal(t, "handling", inner["message"])
		assert.Equal(t, "req-123", inner["request_id"])
		assert.Equal(t, "/api/v1/dashboard", inner["path"])

		var completed map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[1]), &completed))
		assert.Equal(t, "request completed", completed["message"])
		assert.Equal(t, "req-123", completed["request_id"])
		assert.Equal(t, float64(http.StatusTeapot), completed["status"])
		assert.Contains(t, completed, "elapsed")
	})
}
