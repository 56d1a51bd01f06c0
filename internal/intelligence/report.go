package intelligence

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"jobpulse/internal/dataset"
)

// Engine orchestrates the market intelligence analyses over one immutable
// dataset snapshot. It holds no mutable state between calls, so the same
// engine can be invoked repeatedly and a new snapshot only requires a new
// engine.
type Engine struct {
	snapshot *dataset.Snapshot
	cfg      AnalysisConfig
	tester   SignificanceTester
	logger   *slog.Logger
}

// NewEngine creates an engine for the given snapshot and configuration.
// The default significance strategy is the Welch t-test; use
// SetSignificanceTester to swap it.
func NewEngine(snapshot *dataset.Snapshot, cfg AnalysisConfig, logger *slog.Logger) (*Engine, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("intelligence: snapshot is required")
	}
	if !cfg.IsValid() {
		return nil, fmt.Errorf("intelligence: invalid analysis config")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		snapshot: snapshot,
		cfg:      cfg,
		tester:   WelchTest{},
		logger:   logger,
	}, nil
}

// SetSignificanceTester replaces the significance strategy. A nil tester
// installs the conservative fallback that never reports significance.
func (e *Engine) SetSignificanceTester(t SignificanceTester) {
	if t == nil {
		t = ConservativeTest{}
	}
	e.tester = t
}

// Config returns the engine's analysis configuration
func (e *Engine) Config() AnalysisConfig {
	return e.cfg
}

// Snapshot returns the snapshot the engine analyzes
func (e *Engine) Snapshot() *dataset.Snapshot {
	return e.snapshot
}

// OverallStatistics summarizes the salary column of the whole snapshot
func (e *Engine) OverallStatistics() SalaryStatistics {
	return Describe(e.snapshot.Salaries())
}

// Report is the full intelligence report: every analysis result for one
// snapshot, produced by a single engine pass.
type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	TotalRows   int       `json:"total_rows"`
	TotalSkills int       `json:"total_skills"`

	Overall            SalaryStatistics          `json:"overall_statistics"`
	SkillPremiums      []SkillPremium            `json:"skill_premium"`
	TechStackROI       map[string][]SkillPremium `json:"tech_stack_roi"`
	DemandRanking      []DemandRank              `json:"skill_demand_ranking"`
	Cooccurrence       []CorrelationEdge         `json:"skill_cooccurrence"`
	HighValueSkills    []HighValueSkill          `json:"high_value_skills"`
	TalentGaps         TalentGapCategories       `json:"talent_gap"`
	Recommendations    []Recommendation          `json:"recommendations"`
	SkillCombinations  []SkillCombination        `json:"top_skill_combinations"`
	ExperienceImpact   []ExperienceImpact        `json:"experience_impact"`
	IndustryComparison []IndustryComparison      `json:"industry_comparison"`
	RegionGaps         []RegionGap               `json:"geographic_gaps"`
	CompanySizeImpact  []CompanySizeStat         `json:"company_size_impact"`
}

// GenerateReport runs every analysis and assembles the full report.
// Skippable per-skill issues reduce the row counts of individual tables;
// only configuration-class failures abort the report.
func (e *Engine) GenerateReport(ctx context.Context) (*Report, error) {
	start := time.Now()
	e.logger.InfoContext(ctx, "generating market intelligence report",
		"rows", e.snapshot.Len(),
		"skills", len(e.snapshot.SkillNames()),
	)

	report := &Report{
		ID:          uuid.NewString(),
		GeneratedAt: start.UTC(),
		TotalRows:   e.snapshot.Len(),
		TotalSkills: len(e.snapshot.SkillNames()),
		Overall:     e.OverallStatistics(),
	}

	premiums, err := e.AnalyzeSkillPremiums(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("skill premium analysis: %w", err)
	}
	report.SkillPremiums = premiums

	roi, err := e.AnalyzeTechStackROI(ctx)
	if err != nil {
		return nil, fmt.Errorf("tech stack roi analysis: %w", err)
	}
	report.TechStackROI = roi

	highValue, err := e.AnalyzeHighValueSkills(ctx)
	if err != nil {
		return nil, fmt.Errorf("high value skill analysis: %w", err)
	}
	report.HighValueSkills = highValue

	report.DemandRanking = e.AnalyzeDemandRanking(ctx)
	report.Cooccurrence = e.AnalyzeCooccurrence(ctx)
	report.TalentGaps = e.ClassifyTalentGaps(highValue)
	report.Recommendations = e.RecommendSkills(ctx, highValue, nil)

	combos := e.AnalyzeSkillCombinations(ctx, e.cfg.MinComboCount)
	if e.cfg.TopCombinations > 0 && len(combos) > e.cfg.TopCombinations {
		combos = combos[:e.cfg.TopCombinations]
	}
	report.SkillCombinations = combos

	report.ExperienceImpact = e.AnalyzeExperienceImpact(ctx)
	report.IndustryComparison = e.AnalyzeIndustryComparison(ctx)
	report.RegionGaps = e.AnalyzeRegionGaps(ctx)
	report.CompanySizeImpact = e.AnalyzeCompanySizeImpact(ctx)

	e.logger.InfoContext(ctx, "market intelligence report completed",
		"report_id", report.ID,
		"duration", time.Since(start),
		"skill_results", len(report.SkillPremiums),
		"cooccurrence_pairs", len(report.Cooccurrence),
		"recommendations", len(report.Recommendations),
	)

	return report, nil
}
