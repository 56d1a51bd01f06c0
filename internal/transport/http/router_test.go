package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobpulse/internal/config"
	"jobpulse/internal/infrastructure"
)

func routerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Port = 8080
	cfg.Server.WriteTimeout = 5 * time.Second
	cfg.Server.RateLimit.Enabled = false
	return cfg
}

func TestRouterEndToEnd(t *testing.T) {
	provider := &mockReportProvider{report: mockReport(), loadedAt: time.Now()}
	registry := prometheus.NewRegistry()
	metrics := infrastructure.NewMetrics(registry)

	router := NewRouter(routerConfig(), provider, metrics, registry, testLogger())

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "report", method: http.MethodGet, path: "/api/report", wantStatus: http.StatusOK},
		{name: "refresh", method: http.MethodPost, path: "/api/report/refresh", wantStatus: http.StatusOK},
		{name: "premiums", method: http.MethodGet, path: "/api/skills/premiums", wantStatus: http.StatusOK},
		{name: "demand", method: http.MethodGet, path: "/api/skills/demand", wantStatus: http.StatusOK},
		{name: "cooccurrence", method: http.MethodGet, path: "/api/skills/cooccurrence", wantStatus: http.StatusOK},
		{name: "high value", method: http.MethodGet, path: "/api/skills/high-value", wantStatus: http.StatusOK},
		{name: "talent gaps", method: http.MethodGet, path: "/api/skills/talent-gaps", wantStatus: http.StatusOK},
		{name: "recommendations", method: http.MethodGet, path: "/api/skills/recommendations", wantStatus: http.StatusOK},
		{name: "combinations", method: http.MethodGet, path: "/api/combinations", wantStatus: http.StatusOK},
		{name: "health", method: http.MethodGet, path: "/api/health", wantStatus: http.StatusOK},
		{name: "readiness", method: http.MethodGet, path: "/api/health/ready", wantStatus: http.StatusOK},
		{name: "healthz", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/api/nope", wantStatus: http.StatusNotFound},
		{name: "wrong method", method: http.MethodDelete, path: "/api/report", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, tt.method, tt.path)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRouterRequestID(t *testing.T) {
	provider := &mockReportProvider{report: mockReport()}
	router := NewRouter(routerConfig(), provider, nil, nil, testLogger())

	rec := doRequest(t, router, http.MethodGet, "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouterSecurityHeaders(t *testing.T) {
	provider := &mockReportProvider{report: mockReport()}
	router := NewRouter(routerConfig(), provider, nil, nil, testLogger())

	rec := doRequest(t, router, http.MethodGet, "/api/health")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestRouterRateLimit(t *testing.T) {
	provider := &mockReportProvider{report: mockReport()}

	cfg := routerConfig()
	cfg.Server.RateLimit.Enabled = true
	cfg.Server.RateLimit.RPS = 1
	cfg.Server.RateLimit.Burst = 1

	router := NewRouter(cfg, provider, nil, nil, testLogger())

	first := doRequest(t, router, http.MethodGet, "/api/health")
	require.Equal(t, http.StatusOK, first.Code)

	second := doRequest(t, router, http.MethodGet, "/api/health")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "60", second.Header().Get("Retry-After"))
}

func TestRouterMetricsCounting(t *testing.T) {
	provider := &mockReportProvider{report: mockReport()}
	registry := prometheus.NewRegistry()
	metrics := infrastructure.NewMetrics(registry)

	router := NewRouter(routerConfig(), provider, metrics, registry, testLogger())

	doRequest(t, router, http.MethodGet, "/api/report")
	doRequest(t, router, http.MethodGet, "/api/report")

	rec := doRequest(t, router, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jobpulse_http_requests_total")
}
