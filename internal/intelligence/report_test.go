package intelligence

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobpulse/internal/dataset"
)

// reportFixture builds a snapshot with enough texture to exercise every
// analysis: two skills with distinct premiums, categories, experience
// levels, industries, regions and company sizes.
func reportFixture(t *testing.T, cfg AnalysisConfig) *Engine {
	t.Helper()

	mk := func(id string, salary float64, level string, ordinal int, industry, region, size string, skills ...string) dataset.JobRecord {
		r := rec(id, salary, skills...)
		r.ExperienceLevel = level
		r.ExperienceOrdinal = ordinal
		r.Industry = industry
		r.LocationRegion = region
		r.CompanySize = size
		return r
	}

	records := []dataset.JobRecord{
		mk("j1", 150000, "senior", 2, "tech", "bay_area", "large", "go", "kubernetes"),
		mk("j2", 155000, "senior", 2, "tech", "bay_area", "large", "go", "kubernetes"),
		mk("j3", 148000, "senior", 2, "finance", "northeast", "large", "go", "kubernetes"),
		mk("j4", 120000, "mid", 1, "tech", "midwest", "medium", "go"),
		mk("j5", 125000, "mid", 1, "finance", "midwest", "medium", "go"),
		mk("j6", 100000, "junior", 0, "retail", "midwest", "small"),
		mk("j7", 95000, "junior", 0, "retail", "midwest", "small"),
		mk("j8", 105000, "junior", 0, "tech", "northeast", "small"),
		mk("j9", 98000, "mid", 1, "retail", "midwest", "medium"),
		mk("j10", 102000, "mid", 1, "tech", "northeast", "small"),
	}

	registry := &dataset.Registry{
		Skills: []string{"go", "kubernetes"},
		Categories: map[string][]string{
			"languages": {"go"},
			"platforms": {"kubernetes"},
		},
	}
	snap, err := dataset.NewSnapshot(records, registry, nil)
	require.NoError(t, err)

	engine, err := NewEngine(snap, cfg, nil)
	require.NoError(t, err)
	return engine
}

func TestGenerateReport(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultAnalysisConfig()
	cfg.MinComboCount = 2

	engine := reportFixture(t, cfg)
	report, err := engine.GenerateReport(ctx)
	require.NoError(t, err)

	t.Run("identity and totals", func(t *testing.T) {
		assert.NotEmpty(t, report.ID)
		assert.False(t, report.GeneratedAt.IsZero())
		assert.Equal(t, 10, report.TotalRows)
		assert.Equal(t, 2, report.TotalSkills)
		assert.Equal(t, 10, report.Overall.Count)
	})

	t.Run("all skill analyses populated", func(t *testing.T) {
		assert.Len(t, report.SkillPremiums, 2)
		assert.Len(t, report.DemandRanking, 2)
		assert.Len(t, report.HighValueSkills, 2)
		assert.NotEmpty(t, report.SkillCombinations)
		assert.Contains(t, report.TechStackROI, "languages")
		assert.Contains(t, report.TechStackROI, "platforms")
	})

	t.Run("group analyses populated", func(t *testing.T) {
		assert.Len(t, report.ExperienceImpact, 3)
		assert.Len(t, report.IndustryComparison, 3)
		assert.Len(t, report.RegionGaps, 3)
		assert.Len(t, report.CompanySizeImpact, 3)
	})

	t.Run("premiums are significant and ordered", func(t *testing.T) {
		for i := 1; i < len(report.SkillPremiums); i++ {
			assert.GreaterOrEqual(t, report.SkillPremiums[i-1].Premium, report.SkillPremiums[i].Premium)
		}
	})

	t.Run("serializes to json", func(t *testing.T) {
		data, err := json.Marshal(report)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"skill_premium"`)
		assert.Contains(t, string(data), `"talent_gap"`)
		assert.Contains(t, string(data), `"geographic_gaps"`)
	})
}

func TestGenerateReportTruncatesCombinations(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultAnalysisConfig()
	cfg.MinComboCount = 1
	cfg.TopCombinations = 1

	engine := reportFixture(t, cfg)
	report, err := engine.GenerateReport(ctx)
	require.NoError(t, err)

	assert.Len(t, report.SkillCombinations, 1)
	// Truncation keeps the highest paying combination
	assert.Equal(t, "go,kubernetes", report.SkillCombinations[0].Signature)
}

func TestReportTables(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultAnalysisConfig()
	cfg.MinComboCount = 2

	engine := reportFixture(t, cfg)
	report, err := engine.GenerateReport(ctx)
	require.NoError(t, err)

	tables := report.Tables()

	expected := []string{
		"overall_statistics",
		"skill_premium",
		"skills_demand_ranking",
		"skills_cooccurrence",
		"skills_high_value",
		"skills_recommendations",
		"top_skill_combinations",
		"experience_impact",
		"industry_comparison",
		"geographic_gaps",
		"company_size_impact",
		"tech_stack_roi_languages",
		"tech_stack_roi_platforms",
		"talent_gap_critical_skills",
		"talent_gap_emerging_opportunities",
		"talent_gap_oversupplied_skills",
		"talent_gap_undervalued_gems",
	}
	for _, name := range expected {
		table, ok := tables[name]
		require.True(t, ok, "missing table %s", name)
		assert.Equal(t, name, table.Name)
		assert.NotEmpty(t, table.Headers)
		for _, row := range table.Rows {
			assert.Len(t, row, len(table.Headers), "ragged row in %s", name)
		}
	}

	t.Run("row counts match report", func(t *testing.T) {
		assert.Len(t, tables["skill_premium"].Rows, len(report.SkillPremiums))
		assert.Len(t, tables["skills_demand_ranking"].Rows, len(report.DemandRanking))
		assert.Len(t, tables["overall_statistics"].Rows, 1)
	})

	t.Run("table names sorted and complete", func(t *testing.T) {
		names := report.TableNames()
		assert.Len(t, names, len(tables))
		for i := 1; i < len(names); i++ {
			assert.Less(t, names[i-1], names[i])
		}
	})
}
