package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/heartmarshall/word-teacher/internal/domain"
)

// ServiceName identifies this service in health responses.
const ServiceName = "daily-word-teacher"

// HealthHandler serves the health check endpoint.
type HealthHandler struct {
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version, now: time.Now}
}

// HealthResponse is the JSON response for /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Health reports that the process is up. It has no dependencies to check:
// the dictionary and model providers are probed per request.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   ServiceName,
		Version:   h.version,
		Timestamp: domain.FormatTimestamp(h.now()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
