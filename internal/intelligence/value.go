package intelligence

import (
	"context"
	"sort"
)

// AnalyzeHighValueSkills extends the premium analysis with demand metrics
// and the normalized value score. The score is relative to the maxima of
// the current result set, so it is recomputed in full on every run.
func (e *Engine) AnalyzeHighValueSkills(ctx context.Context) ([]HighValueSkill, error) {
	premiums, err := e.AnalyzeSkillPremiums(ctx, nil)
	if err != nil {
		return nil, err
	}

	totalRows := e.snapshot.Len()

	results := make([]HighValueSkill, 0, len(premiums))
	maxPremiumPct := 0.0
	maxDemandPct := 0.0

	for _, p := range premiums {
		demandCount := p.CountWith
		demandPct := float64(demandCount) / float64(totalRows) * 100

		results = append(results, HighValueSkill{
			SkillPremium: p,
			DemandCount:  demandCount,
			DemandPct:    demandPct,
		})

		if p.PremiumPct > maxPremiumPct {
			maxPremiumPct = p.PremiumPct
		}
		if demandPct > maxDemandPct {
			maxDemandPct = demandPct
		}
	}

	for i := range results {
		results[i].ValueScore = valueScore(results[i].PremiumPct, results[i].DemandPct, maxPremiumPct, maxDemandPct)
		results[i].ValueTier = valueTier(results[i].ValueScore)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ValueScore > results[j].ValueScore
	})

	e.logger.InfoContext(ctx, "high value skill analysis completed",
		"skills", len(results),
		"max_premium_pct", maxPremiumPct,
		"max_demand_pct", maxDemandPct,
	)

	return results, nil
}

// valueScore blends relative premium and relative demand into a 0-100
// score. Non-positive maxima contribute 0 rather than dividing by zero;
// the final score is clamped to [0, 100] so negative premiums cannot push
// it out of range.
func valueScore(premiumPct, demandPct, maxPremiumPct, maxDemandPct float64) float64 {
	premiumTerm := 0.0
	if maxPremiumPct > 0 {
		premiumTerm = premiumPct / maxPremiumPct
	}
	demandTerm := 0.0
	if maxDemandPct > 0 {
		demandTerm = demandPct / maxDemandPct
	}

	score := 100 * (0.5*premiumTerm + 0.5*demandTerm)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// valueTier maps a value score onto its fixed tier
func valueTier(score float64) string {
	switch {
	case score >= tierPremiumFloor:
		return TierPremium
	case score >= tierHighValueFloor:
		return TierHighValue
	default:
		return TierStandard
	}
}

// ClassifyTalentGaps applies the four quadrant filters to a high-value
// skill result set. The filters are evaluated independently: overlapping
// membership is a deliberate property, not a bug, so no deduplication or
// priority ordering is applied.
func (e *Engine) ClassifyTalentGaps(results []HighValueSkill) TalentGapCategories {
	var gaps TalentGapCategories

	for _, s := range results {
		if s.DemandPct > e.cfg.CriticalDemandPct &&
			s.PremiumPct > e.cfg.CriticalPremiumPct &&
			s.IsSignificant {
			gaps.CriticalSkills = append(gaps.CriticalSkills, s)
		}

		if s.DemandPct >= e.cfg.EmergingDemandLowPct &&
			s.DemandPct <= e.cfg.EmergingDemandHighPct &&
			s.PremiumPct > e.cfg.EmergingPremiumPct &&
			s.IsSignificant {
			gaps.EmergingOpportunities = append(gaps.EmergingOpportunities, s)
		}

		if s.DemandPct > e.cfg.OversuppliedDemandPct &&
			s.PremiumPct < e.cfg.OversuppliedPremiumPct {
			gaps.OversuppliedSkills = append(gaps.OversuppliedSkills, s)
		}

		if s.DemandPct < e.cfg.UndervaluedDemandPct &&
			s.PremiumPct > e.cfg.UndervaluedPremiumPct &&
			s.IsSignificant {
			gaps.UndervaluedGems = append(gaps.UndervaluedGems, s)
		}
	}

	return gaps
}
