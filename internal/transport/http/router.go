package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jobpulse/internal/config"
	apierrors "jobpulse/internal/errors"
	"jobpulse/internal/infrastructure"
	customMiddleware "jobpulse/internal/middleware"
)

// NewRouter assembles the full HTTP router: middleware chain, API routes
// and the Prometheus endpoint.
// Middleware ordering: RequestID, RealIP, Logger, Recoverer, headers.
func NewRouter(cfg *config.Config, service ReportProvider, metrics *infrastructure.Metrics, registry *prometheus.Registry, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.RealIP)
	r.Use(customMiddleware.StructuredLogger(logger))
	r.Use(customMiddleware.Recoverer(logger))
	r.Use(customMiddleware.SecurityHeaders)
	r.Use(customMiddleware.Compress(5))

	if metrics != nil {
		r.Use(customMiddleware.HTTPMetrics(metrics))
	}

	if cfg.Server.RateLimit.Enabled {
		r.Use(customMiddleware.NewRateLimiter(
			cfg.Server.RateLimit.RPS,
			cfg.Server.RateLimit.Burst,
			logger,
		).Handler)
	}

	errorHandler := apierrors.NewErrorHandler(logger, false)
	r.NotFound(errorHandler.NotFound)
	r.MethodNotAllowed(errorHandler.MethodNotAllowed)

	healthHandler := NewHealthHandler(service, logger)
	r.Get("/healthz", healthHandler.LivenessCheck)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Use(customMiddleware.Timeout(cfg.Server.WriteTimeout, logger))

		r.Get("/health", healthHandler.HealthCheck)
		r.Get("/health/live", healthHandler.LivenessCheck)
		r.Get("/health/ready", healthHandler.ReadinessCheck)
		r.Get("/version", healthHandler.VersionInfo)

		intelligenceHandler := NewIntelligenceHandler(service, logger)
		intelligenceHandler.RegisterRoutes(r)
	})

	// Prometheus endpoint outside the API middleware group
	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	return r
}
