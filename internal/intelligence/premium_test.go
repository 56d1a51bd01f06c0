package intelligence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobpulse/internal/dataset"
)

func TestAnalyzeSkillPremiums(t *testing.T) {
	ctx := context.Background()

	t.Run("canonical premium scenario", func(t *testing.T) {
		engine := premiumScenario(t, DefaultAnalysisConfig())

		results, err := engine.AnalyzeSkillPremiums(ctx, nil)
		require.NoError(t, err)
		require.Len(t, results, 1)

		p := results[0]
		assert.Equal(t, "x", p.SkillName)
		assert.Equal(t, 130000.0, p.AvgWithSkill)
		assert.Equal(t, 110000.0, p.AvgWithoutSkill)
		assert.Equal(t, 20000.0, p.Premium)
		assert.InDelta(t, 18.1818, p.PremiumPct, 1e-3)
		assert.Equal(t, 40, p.CountWith)
		assert.Equal(t, 60, p.CountWithout)
		assert.True(t, p.IsSignificant, "a 20k gap with 1k spread must be significant at 0.05")
	})

	t.Run("skill in every row is skipped", func(t *testing.T) {
		records := []dataset.JobRecord{
			rec("j1", 100000, "x"),
			rec("j2", 120000, "x"),
			rec("j3", 110000, "x"),
		}
		engine := newTestEngine(t, DefaultAnalysisConfig(), []string{"x"}, records)

		results, err := engine.AnalyzeSkillPremiums(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, results, "empty without-partition cannot be compared")
	})

	t.Run("skill in no row is skipped", func(t *testing.T) {
		records := []dataset.JobRecord{
			rec("j1", 100000, "x"),
			rec("j2", 120000),
		}
		engine := newTestEngine(t, DefaultAnalysisConfig(), []string{"x", "ghost"}, records)

		results, err := engine.AnalyzeSkillPremiums(ctx, nil)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "x", results[0].SkillName)
	})

	t.Run("sorted by premium descending", func(t *testing.T) {
		records := []dataset.JobRecord{
			rec("j1", 200000, "big"),
			rec("j2", 205000, "big"),
			rec("j3", 130000, "small"),
			rec("j4", 135000, "small"),
			rec("j5", 100000),
			rec("j6", 105000),
		}
		engine := newTestEngine(t, DefaultAnalysisConfig(), []string{"small", "big"}, records)

		results, err := engine.AnalyzeSkillPremiums(ctx, nil)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "big", results[0].SkillName)
		assert.Equal(t, "small", results[1].SkillName)
		assert.Greater(t, results[0].Premium, results[1].Premium)
	})

	t.Run("alpha of one flips weak premiums to significant", func(t *testing.T) {
		records := []dataset.JobRecord{
			rec("j1", 100000, "y"),
			rec("j2", 110000, "y"),
			rec("j3", 120000, "y"),
			rec("j4", 98000),
			rec("j5", 112000),
			rec("j6", 118000),
		}

		strict := newTestEngine(t, DefaultAnalysisConfig(), []string{"y"}, records)
		results, err := strict.AnalyzeSkillPremiums(ctx, nil)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.False(t, results[0].IsSignificant)
		assert.Greater(t, results[0].PValue, 0.05)
		assert.Less(t, results[0].PValue, 1.0)

		loose := DefaultAnalysisConfig()
		loose.SignificanceLevel = 1.0
		relaxed := newTestEngine(t, loose, []string{"y"}, records)
		results, err = relaxed.AnalyzeSkillPremiums(ctx, nil)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.True(t, results[0].IsSignificant)
	})

	t.Run("conservative tester marks nothing significant", func(t *testing.T) {
		engine := premiumScenario(t, DefaultAnalysisConfig())
		engine.SetSignificanceTester(ConservativeTest{})

		results, err := engine.AnalyzeSkillPremiums(ctx, nil)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 1.0, results[0].PValue)
		assert.False(t, results[0].IsSignificant)
		assert.Equal(t, 20000.0, results[0].Premium, "premium itself is test-independent")
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		engine := premiumScenario(t, DefaultAnalysisConfig())

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := engine.AnalyzeSkillPremiums(cancelled, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestAnalyzeTechStackROI(t *testing.T) {
	ctx := context.Background()

	records := []dataset.JobRecord{
		rec("j1", 150000, "go", "postgres"),
		rec("j2", 145000, "go"),
		rec("j3", 110000, "postgres"),
		rec("j4", 100000),
		rec("j5", 105000),
	}
	registry := &dataset.Registry{
		Skills: []string{"go", "postgres", "spark"},
		Categories: map[string][]string{
			"languages": {"go"},
			"databases": {"postgres"},
			"big_data":  {"spark"},
		},
	}
	snap, err := dataset.NewSnapshot(records, registry, []string{"go", "postgres"})
	require.NoError(t, err)

	engine, err := NewEngine(snap, DefaultAnalysisConfig(), nil)
	require.NoError(t, err)

	roi, err := engine.AnalyzeTechStackROI(ctx)
	require.NoError(t, err)

	require.Contains(t, roi, "languages")
	require.Contains(t, roi, "databases")
	assert.NotContains(t, roi, "big_data", "category with no skills in the data is dropped")

	require.Len(t, roi["languages"], 1)
	assert.Equal(t, "go", roi["languages"][0].SkillName)
	assert.Positive(t, roi["languages"][0].Premium)
}
