package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/port"
)

// ServiceName is reported by every health endpoint.
const ServiceName = "heart-disease-prediction"

// ClassifierStatus reports which classifier variant is loaded.
type ClassifierStatus interface {
	Kind() (port.ClassifierKind, bool)
}

// HealthHandler provides HTTP health check endpoints for the risk service.
type HealthHandler struct {
	startTime  time.Time
	classifier ClassifierStatus
	logger     *slog.Logger
	events     string
}

// NewHealthHandler creates a new health check handler. events names the
// configured event sink and is reported by the readiness probe.
func NewHealthHandler(classifier ClassifierStatus, events string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		classifier: classifier,
		events:     events,
		logger:     logger,
		startTime:  time.Now(),
	}
}

// HealthResponse is the JSON response for health checks.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Uptime  string `json:"uptime,omitempty"`
}

// ReadinessResponse is the JSON response for readiness checks.
type ReadinessResponse struct {
	Checks  map[string]string `json:"checks"`
	Status  string            `json:"status"`
	Service string            `json:"service"`
}

// RegisterRoutes registers health endpoints on the provided ServeMux.
// apiPrefix hosts the API-level health route, e.g. "/api/v1".
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux, apiPrefix string) {
	mux.HandleFunc("GET "+apiPrefix+"/health", h.Health)
	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.HandleFunc("GET /readyz", h.Readyz)
}

// Health answers the public API health check.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: ServiceName,
	})
}

// Healthz handles liveness probe requests.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: ServiceName,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Readyz handles readiness probe requests. The service is ready once the
// classifier has been loaded, whichever variant was selected.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	resp := ReadinessResponse{
		Status:  "ready",
		Service: ServiceName,
		Checks: map[string]string{
			"events": h.events,
		},
	}

	status := http.StatusOK
	if kind, ok := h.classifier.Kind(); ok {
		resp.Checks["classifier"] = string(kind)
	} else {
		resp.Checks["classifier"] = "loading"
		resp.Status = "not_ready"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, resp)
}
