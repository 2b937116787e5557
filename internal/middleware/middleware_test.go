package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type checkerFunc func(ctx context.Context) error

func (f checkerFunc) Check(ctx context.Context) error { return f(ctx) }

func TestHealthHandlerOK(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	h := HealthHandler(nil, func() time.Time { return now })

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotContains(t, body, "checks")
}

func TestHealthHandlerDegraded(t *testing.T) {
	h := HealthHandler(map[string]HealthChecker{
		"scratch": checkerFunc(func(context.Context) error { return errors.New("read-only fs") }),
		"other":   checkerFunc(func(context.Context) error { return nil }),
	}, nil)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, CheckStatus{Status: "failed", Message: "read-only fs"}, body.Checks["scratch"])
	assert.Equal(t, CheckStatus{Status: "ok"}, body.Checks["other"])
}

func TestLoggingRecordsRequest(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := chimw.RequestID(Logging(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/analyze", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/analyze", fields["path"])
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
	assert.EqualValues(t, len("short and stout"), fields["bytes"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestValidateStruct(t *testing.T) {
	type body struct {
		Code   string `validate:"required"`
		Domain string `validate:"max=5"`
	}
	assert.NoError(t, ValidateStruct(body{Code: "x"}))

	err := ValidateStruct(body{Domain: "toolong"})
	require.Error(t, err)
	assert.Equal(t, "code is required; domain must be at most 5 characters", err.Error())
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "game", SanitizeString("  ga\x00me\x07 "))
	assert.Equal(t, "a\tb\nc", SanitizeString("a\tb\nc"))
}
