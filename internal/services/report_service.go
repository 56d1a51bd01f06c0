package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"jobpulse/internal/config"
	"jobpulse/internal/dataset"
	"jobpulse/internal/infrastructure"
	"jobpulse/internal/intelligence"
)

// ReportService owns the analysis lifecycle for the HTTP layer: loading the
// dataset, building the engine, and caching the latest generated report.
// Refresh replaces the cached state atomically, so readers never observe a
// half-built report.
type ReportService struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *infrastructure.Metrics

	mu       sync.RWMutex
	engine   *intelligence.Engine
	report   *intelligence.Report
	loadedAt time.Time
}

// NewReportService creates a report service. No dataset is loaded until the
// first Refresh or Latest call. Metrics may be nil for CLI use.
func NewReportService(cfg *config.Config, logger *slog.Logger, metrics *infrastructure.Metrics) *ReportService {
	return &ReportService{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
	}
}

// AnalysisConfig maps the application configuration onto engine thresholds
func (s *ReportService) AnalysisConfig() intelligence.AnalysisConfig {
	cfg := intelligence.DefaultAnalysisConfig()
	cfg.SignificanceLevel = s.cfg.Analysis.SignificanceLevel
	cfg.MinCorrelation = s.cfg.Analysis.MinCorrelation
	cfg.MinComboCount = s.cfg.Analysis.MinComboCount
	cfg.TopCombinations = s.cfg.Analysis.TopCombinations
	cfg.MaxConcurrency = s.cfg.Analysis.MaxConcurrency
	return cfg
}

// Refresh reloads the dataset from disk, rebuilds the engine and generates
// a fresh report, replacing any cached one.
func (s *ReportService) Refresh(ctx context.Context) (*intelligence.Report, error) {
	start := time.Now()
	s.logger.InfoContext(ctx, "refreshing market report",
		"data_file", s.cfg.Paths.DataFile,
		"registry_file", s.cfg.Paths.RegistryFile,
	)

	registry, err := dataset.LoadRegistry(s.cfg.Paths.RegistryFile)
	if err != nil {
		return nil, fmt.Errorf("load skill registry: %w", err)
	}

	loader := dataset.NewLoader(s.logger)
	snapshot, err := loader.LoadCSV(ctx, s.cfg.Paths.DataFile, registry)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	engine, err := intelligence.NewEngine(snapshot, s.AnalysisConfig(), s.logger)
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}

	report, err := engine.GenerateReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate report: %w", err)
	}

	s.mu.Lock()
	s.engine = engine
	s.report = report
	s.loadedAt = time.Now()
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.ReportsGenerated.Inc()
		s.metrics.ReportDuration.Observe(time.Since(start).Seconds())
		s.metrics.RowsAnalyzed.Add(float64(report.TotalRows))
		s.metrics.SkillsSkipped.Add(float64(report.TotalSkills - len(report.SkillPremiums)))
	}

	s.logger.InfoContext(ctx, "market report refreshed",
		"report_id", report.ID,
		"rows", report.TotalRows,
		"duration", time.Since(start),
	)

	return report, nil
}

// Latest returns the cached report, generating one on first use
func (s *ReportService) Latest(ctx context.Context) (*intelligence.Report, error) {
	s.mu.RLock()
	report := s.report
	s.mu.RUnlock()

	if report != nil {
		return report, nil
	}
	return s.Refresh(ctx)
}

// LoadedAt returns when the cached report was generated, zero if none
func (s *ReportService) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Recommendations recomputes the recommendation list against the cached
// report with the caller's exclusion list applied.
func (s *ReportService) Recommendations(ctx context.Context, exclude []string) ([]intelligence.Recommendation, error) {
	report, err := s.Latest(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	engine := s.engine
	s.mu.RUnlock()

	return engine.RecommendSkills(ctx, report.HighValueSkills, exclude), nil
}

// Combinations recomputes skill combinations with a caller-supplied minimum
// group size. minCount below 1 falls back to the configured default.
func (s *ReportService) Combinations(ctx context.Context, minCount int) ([]intelligence.SkillCombination, error) {
	if _, err := s.Latest(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	engine := s.engine
	s.mu.RUnlock()

	return engine.AnalyzeSkillCombinations(ctx, minCount), nil
}
