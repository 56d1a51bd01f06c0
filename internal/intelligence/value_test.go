package intelligence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobpulse/internal/dataset"
)

func TestValueScore(t *testing.T) {
	tests := []struct {
		name                        string
		premiumPct, demandPct       float64
		maxPremiumPct, maxDemandPct float64
		want                        float64
	}{
		{"max on both axes", 20, 40, 20, 40, 100},
		{"max premium alone contributes fifty", 20, 0, 20, 40, 50},
		{"max demand alone contributes fifty", 0, 40, 20, 40, 50},
		{"half of both", 10, 20, 20, 40, 50},
		{"zero premium max drops the term", 15, 40, 0, 40, 50},
		{"zero demand max drops the term", 20, 15, 20, 0, 50},
		{"both maxima zero", 10, 10, 0, 0, 0},
		{"negative premium clamped at zero", -30, 0, 10, 40, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := valueScore(tt.premiumPct, tt.demandPct, tt.maxPremiumPct, tt.maxDemandPct)
			assert.InDelta(t, tt.want, got, 1e-12)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestValueTier(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, TierStandard},
		{32.99, TierStandard},
		{33, TierHighValue},
		{65.99, TierHighValue},
		{66, TierPremium},
		{100, TierPremium},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, valueTier(tt.score), "score %v", tt.score)
	}
}

func TestAnalyzeHighValueSkills(t *testing.T) {
	ctx := context.Background()
	engine := premiumScenario(t, DefaultAnalysisConfig())

	results, err := engine.AnalyzeHighValueSkills(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)

	s := results[0]
	assert.Equal(t, "x", s.SkillName)
	assert.Equal(t, 40, s.DemandCount)
	assert.Equal(t, 40.0, s.DemandPct)
	// The only skill holds both maxima, so both terms are full
	assert.InDelta(t, 100.0, s.ValueScore, 1e-12)
	assert.Equal(t, TierPremium, s.ValueTier)
}

func TestAnalyzeHighValueSkillsOrdering(t *testing.T) {
	ctx := context.Background()

	records := []dataset.JobRecord{
		rec("j1", 200000, "rare"),
		rec("j2", 210000, "rare"),
		rec("j3", 120000, "common"),
		rec("j4", 125000, "common"),
		rec("j5", 122000, "common"),
		rec("j6", 100000),
		rec("j7", 105000),
		rec("j8", 102000),
	}
	engine := newTestEngine(t, DefaultAnalysisConfig(), []string{"rare", "common"}, records)

	results, err := engine.AnalyzeHighValueSkills(ctx)
	require.NoError(t, err)
	require.Len(t, results, 2)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].ValueScore, results[i].ValueScore)
	}
	assert.Equal(t, "rare", results[0].SkillName, "premium dominance outweighs demand here")
}

func hvs(name string, demandPct, premiumPct float64, significant bool) HighValueSkill {
	return HighValueSkill{
		SkillPremium: SkillPremium{
			SkillName:     name,
			PremiumPct:    premiumPct,
			IsSignificant: significant,
		},
		DemandPct: demandPct,
	}
}

func TestClassifyTalentGaps(t *testing.T) {
	engine := premiumScenario(t, DefaultAnalysisConfig())

	t.Run("high demand and premium is critical not oversupplied", func(t *testing.T) {
		gaps := engine.ClassifyTalentGaps([]HighValueSkill{
			hvs("kubernetes", 25, 12, true),
		})
		require.Len(t, gaps.CriticalSkills, 1)
		assert.Equal(t, "kubernetes", gaps.CriticalSkills[0].SkillName)
		assert.Empty(t, gaps.OversuppliedSkills)
		assert.Empty(t, gaps.EmergingOpportunities)
		assert.Empty(t, gaps.UndervaluedGems)
	})

	t.Run("emerging band is inclusive at both ends", func(t *testing.T) {
		gaps := engine.ClassifyTalentGaps([]HighValueSkill{
			hvs("low_edge", 10, 25, true),
			hvs("high_edge", 20, 25, true),
			hvs("below_band", 9.9, 25, true),
			hvs("above_band", 20.1, 25, true),
		})
		require.Len(t, gaps.EmergingOpportunities, 2)
		assert.Equal(t, "low_edge", gaps.EmergingOpportunities[0].SkillName)
		assert.Equal(t, "high_edge", gaps.EmergingOpportunities[1].SkillName)
	})

	t.Run("oversupplied ignores significance", func(t *testing.T) {
		gaps := engine.ClassifyTalentGaps([]HighValueSkill{
			hvs("commodity", 50, 2, false),
		})
		require.Len(t, gaps.OversuppliedSkills, 1)
		assert.Equal(t, "commodity", gaps.OversuppliedSkills[0].SkillName)
	})

	t.Run("undervalued requires significance", func(t *testing.T) {
		gaps := engine.ClassifyTalentGaps([]HighValueSkill{
			hvs("gem", 10, 20, true),
			hvs("noise", 10, 20, false),
		})
		require.Len(t, gaps.UndervaluedGems, 1)
		assert.Equal(t, "gem", gaps.UndervaluedGems[0].SkillName)
	})

	t.Run("insignificant critical candidate excluded", func(t *testing.T) {
		gaps := engine.ClassifyTalentGaps([]HighValueSkill{
			hvs("maybe", 25, 12, false),
		})
		assert.Empty(t, gaps.CriticalSkills)
	})

	t.Run("categories may overlap", func(t *testing.T) {
		// demand 10 < 15, premium 25 > both emerging and undervalued bars
		gaps := engine.ClassifyTalentGaps([]HighValueSkill{
			hvs("rising_star", 10, 25, true),
		})
		assert.Len(t, gaps.EmergingOpportunities, 1)
		assert.Len(t, gaps.UndervaluedGems, 1)
	})

	t.Run("empty input yields empty categories", func(t *testing.T) {
		gaps := engine.ClassifyTalentGaps(nil)
		assert.Empty(t, gaps.CriticalSkills)
		assert.Empty(t, gaps.EmergingOpportunities)
		assert.Empty(t, gaps.OversuppliedSkills)
		assert.Empty(t, gaps.UndervaluedGems)
	})
}
