package intelligence

import (
	"context"
	"sort"

	"jobpulse/internal/dataset"
)

// AnalyzeDemandRanking ranks skills by the share of postings requiring
// them, with coarse demand level bins for reporting.
func (e *Engine) AnalyzeDemandRanking(ctx context.Context) []DemandRank {
	totalRows := e.snapshot.Len()

	ranking := make([]DemandRank, 0, len(e.snapshot.SkillNames()))
	for _, skill := range e.snapshot.SkillNames() {
		count := 0
		for _, row := range e.snapshot.Rows() {
			if row.HasSkill(skill) {
				count++
			}
		}
		ranking = append(ranking, DemandRank{
			SkillName:   skill,
			DemandCount: count,
			DemandPct:   float64(count) / float64(totalRows) * 100,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].DemandCount > ranking[j].DemandCount
	})

	for i := range ranking {
		ranking[i].Rank = i + 1
		ranking[i].DemandLevel = demandLevel(ranking[i].DemandPct)
	}

	e.logger.InfoContext(ctx, "demand ranking completed", "skills", len(ranking))
	return ranking
}

// demandLevel bins a demand percentage into its coarse level
func demandLevel(pct float64) string {
	switch {
	case pct > 30:
		return DemandVeryHigh
	case pct > 20:
		return DemandHigh
	case pct > 10:
		return DemandMedium
	default:
		return DemandLow
	}
}

// AnalyzeExperienceImpact summarizes salaries per experience level in
// ordinal order, with the percent increase over the previous level.
func (e *Engine) AnalyzeExperienceImpact(ctx context.Context) []ExperienceImpact {
	type levelGroup struct {
		ordinal  int
		salaries []float64
	}
	groups := make(map[string]*levelGroup)

	for _, row := range e.snapshot.Rows() {
		if row.ExperienceLevel == "" {
			continue
		}
		g, ok := groups[row.ExperienceLevel]
		if !ok {
			g = &levelGroup{ordinal: row.ExperienceOrdinal}
			groups[row.ExperienceLevel] = g
		}
		g.salaries = append(g.salaries, row.SalaryAvg)
	}

	results := make([]ExperienceImpact, 0, len(groups))
	for level, g := range groups {
		results = append(results, ExperienceImpact{
			Level:   level,
			Ordinal: g.ordinal,
			Stats:   Describe(g.salaries),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Ordinal != results[j].Ordinal {
			return results[i].Ordinal < results[j].Ordinal
		}
		return results[i].Level < results[j].Level
	})

	for i := 1; i < len(results); i++ {
		prev := results[i-1].Stats.Mean
		if prev > 0 {
			results[i].PctIncrease = (results[i].Stats.Mean - prev) / prev * 100
			results[i].HasIncrease = true
		}
	}

	e.logger.InfoContext(ctx, "experience impact analysis completed", "levels", len(results))
	return results
}

// AnalyzeIndustryComparison summarizes salaries per industry with each
// industry's premium against the overall dataset mean, sorted by mean
// descending.
func (e *Engine) AnalyzeIndustryComparison(ctx context.Context) []IndustryComparison {
	overallMean := Mean(e.snapshot.Salaries())

	grouped := GroupSalaryStatistics(e.snapshot.Rows(), func(r dataset.JobRecord) string {
		return r.Industry
	})

	results := make([]IndustryComparison, 0, len(grouped))
	for _, g := range grouped {
		premium := g.Stats.Mean - overallMean
		comparison := IndustryComparison{
			Industry: g.Key,
			Stats:    g.Stats,
			Premium:  premium,
		}
		if overallMean > 0 {
			comparison.PremiumPct = premium / overallMean * 100
		}
		results = append(results, comparison)
	}

	e.logger.InfoContext(ctx, "industry comparison completed", "industries", len(results))
	return results
}

// AnalyzeRegionGaps summarizes salaries per location region with the gap
// from the highest paying region, sorted by mean descending.
func (e *Engine) AnalyzeRegionGaps(ctx context.Context) []RegionGap {
	grouped := GroupSalaryStatistics(e.snapshot.Rows(), func(r dataset.JobRecord) string {
		return r.LocationRegion
	})
	if len(grouped) == 0 {
		return nil
	}

	// Grouped results are already sorted by mean descending
	maxMean := grouped[0].Stats.Mean

	results := make([]RegionGap, 0, len(grouped))
	for _, g := range grouped {
		gap := RegionGap{
			Region:     g.Key,
			Stats:      g.Stats,
			GapFromMax: maxMean - g.Stats.Mean,
		}
		if maxMean > 0 {
			gap.GapPct = gap.GapFromMax / maxMean * 100
		}
		results = append(results, gap)
	}

	e.logger.InfoContext(ctx, "region gap analysis completed", "regions", len(results))
	return results
}

// AnalyzeCompanySizeImpact summarizes salaries per company size bucket,
// sorted by mean descending.
func (e *Engine) AnalyzeCompanySizeImpact(ctx context.Context) []CompanySizeStat {
	grouped := GroupSalaryStatistics(e.snapshot.Rows(), func(r dataset.JobRecord) string {
		return r.CompanySize
	})

	results := make([]CompanySizeStat, 0, len(grouped))
	for _, g := range grouped {
		results = append(results, CompanySizeStat{Size: g.Key, Stats: g.Stats})
	}

	e.logger.InfoContext(ctx, "company size analysis completed", "buckets", len(results))
	return results
}
