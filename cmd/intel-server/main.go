package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"jobpulse/internal/config"
	"jobpulse/internal/infrastructure"
	"jobpulse/internal/services"
	transport "jobpulse/internal/transport/http"
)

func main() {
	// Optional .env for local development; missing file is not an error
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogger()

	if err := run(cfg, logger); err != nil {
		logger.Error("Server terminated with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	metrics := infrastructure.NewMetrics(registry)

	service := services.NewReportService(cfg, logger, metrics)

	// Warm the cache so the first request does not pay the analysis cost.
	// Startup proceeds on failure; readiness stays false until a refresh
	// succeeds.
	if _, err := service.Refresh(ctx); err != nil {
		logger.WarnContext(ctx, "initial report generation failed, serving cold",
			"error", err,
		)
	}

	router := transport.NewRouter(cfg, service, metrics, registry, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "HTTP server starting",
			"addr", server.Addr,
			"version", transport.Version,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutdown signal received, draining connections",
		"timeout", cfg.Server.ShutdownTimeout.String(),
	)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("Server stopped cleanly")
	return nil
}
