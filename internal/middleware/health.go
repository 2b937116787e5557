package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// HealthChecker defines interface for health checking
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthStatus represents the health status
type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks,omitempty"`
}

// CheckStatus represents individual check status
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthHandler answers {"status":"ok"} while every checker passes. The
// provider is never contacted.
func HealthHandler(checkers map[string]HealthChecker, now func() time.Time) http.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		health := HealthStatus{
			Status:    "ok",
			Timestamp: now(),
		}
		if len(checkers) > 0 {
			health.Checks = make(map[string]CheckStatus, len(checkers))
		}

		for name, checker := range checkers {
			if err := checker.Check(ctx); err != nil {
				health.Status = "degraded"
				health.Checks[name] = CheckStatus{Status: "failed", Message: err.Error()}
			} else {
				health.Checks[name] = CheckStatus{Status: "ok"}
			}
		}

		statusCode := http.StatusOK
		if health.Status != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		json.NewEncoder(w).Encode(health)
	}
}
