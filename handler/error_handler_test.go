package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/listingkit/handler"
	"github.com/dmitrymomot/listingkit/pkg/validator"
)

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		level  string
	}{
		{name: "client error logs warn", err: handler.ErrNotFound, status: http.StatusNotFound, level: "WARN"},
		{
			name:   "validation logs warn",
			err:    validator.ValidationErrors{{Field: "phone", Message: "Phone is required"}},
			status: http.StatusUnprocessableEntity,
			level:  "WARN",
		},
		{name: "server error logs error", err: errors.New("db down"), status: http.StatusInternalServerError, level: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			eh := handler.NewErrorHandler(log)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPut, "/api/session", nil)
			eh(handler.NewContext(w, r), tt.err)

			assert.Equal(t, tt.status, w.Code)

			var record map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
			assert.Equal(t, tt.level, record["level"])
			assert.Equal(t, "request error", record["msg"])
			assert.EqualValues(t, tt.status, record["status_code"])
			assert.Equal(t, http.MethodPut, record["method"])
			assert.Equal(t, "/api/session", record["path"])
		})
	}
}

func TestNewErrorHandler_NilLogger(t *testing.T) {
	t.Parallel()

	eh := handler.NewErrorHandler(nil)
	w := httptest.NewRecorder()
	eh(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/", nil)), handler.ErrBadGateway)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
