package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

// Version is set at build time through -ldflags
var Version = "dev"

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	service ReportProvider
	logger  *slog.Logger
	started time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service ReportProvider, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		service: service,
		logger:  logger,
		started: time.Now(),
	}
}

// HealthCheck reports overall service health
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": Version,
		"uptime":  time.Since(h.started).String(),
	}

	if loadedAt := h.service.LoadedAt(); !loadedAt.IsZero() {
		status["report_loaded_at"] = loadedAt.UTC()
	}

	render.JSON(w, r, status)
}

// LivenessCheck reports whether the process is alive
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "alive"})
}

// ReadinessCheck reports whether a report has been generated and the
// service can answer analysis queries without a cold start
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	if h.service.LoadedAt().IsZero() {
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, map[string]string{"status": "not_ready", "reason": "no report generated"})
		return
	}

	render.JSON(w, r, map[string]string{"status": "ready"})
}

// VersionInfo returns build version information
func (h *HealthHandler) VersionInfo(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"version": Version})
}
