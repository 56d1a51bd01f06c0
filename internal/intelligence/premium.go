package intelligence

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// AnalyzeSkillPremiums computes the salary premium for each of the given
// skills. Skills with an empty with/without partition or a zero
// without-skill mean are excluded from the results, never failing the run.
// Results are sorted by premium descending; ties keep input order.
//
// Per-skill computations are independent and fan out over a bounded worker
// group; each worker reads the immutable snapshot and writes to its own
// output slot, so no locking is needed.
func (e *Engine) AnalyzeSkillPremiums(ctx context.Context, skills []string) ([]SkillPremium, error) {
	if len(skills) == 0 {
		skills = e.snapshot.SkillNames()
	}

	e.logger.InfoContext(ctx, "analyzing skill premiums",
		"skills", len(skills),
		"rows", e.snapshot.Len(),
		"alpha", e.cfg.SignificanceLevel,
	)

	slots := make([]*SkillPremium, len(skills))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.MaxConcurrency)

	for i, skill := range skills {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			slots[i] = e.skillPremium(gctx, skill)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]SkillPremium, 0, len(skills))
	for _, slot := range slots {
		if slot != nil {
			results = append(results, *slot)
		}
	}

	// Stable sort preserves input order for equal premiums
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Premium > results[j].Premium
	})

	e.logger.InfoContext(ctx, "skill premium analysis completed",
		"results", len(results),
		"skipped", len(skills)-len(results),
	)

	return results, nil
}

// skillPremium computes the premium result for one skill, or nil if the
// skill must be skipped
func (e *Engine) skillPremium(ctx context.Context, skill string) *SkillPremium {
	with, without := e.snapshot.SplitBySkill(skill)

	if len(with) == 0 || len(without) == 0 {
		e.logger.WarnContext(ctx, "skipping skill with empty partition",
			"skill", skill,
			"count_with", len(with),
			"count_without", len(without),
		)
		return nil
	}

	avgWith := Mean(with)
	avgWithout := Mean(without)
	if avgWithout == 0 {
		// Percentage premium is undefined
		e.logger.WarnContext(ctx, "skipping skill with zero baseline mean", "skill", skill)
		return nil
	}

	premium := avgWith - avgWithout
	pValue := e.tester.Compare(with, without)

	return &SkillPremium{
		SkillName:       skill,
		AvgWithSkill:    avgWith,
		AvgWithoutSkill: avgWithout,
		Premium:         premium,
		PremiumPct:      premium / avgWithout * 100,
		CountWith:       len(with),
		CountWithout:    len(without),
		PValue:          pValue,
		IsSignificant:   pValue < e.cfg.SignificanceLevel,
	}
}

// AnalyzeTechStackROI runs the premium analysis per registry subcategory.
// Categories whose skills are absent from the snapshot simply produce
// fewer (or zero) rows.
func (e *Engine) AnalyzeTechStackROI(ctx context.Context) (map[string][]SkillPremium, error) {
	categories := e.snapshot.Registry().Categories
	if len(categories) == 0 {
		return nil, nil
	}

	present := make(map[string]struct{}, len(e.snapshot.SkillNames()))
	for _, s := range e.snapshot.SkillNames() {
		present[s] = struct{}{}
	}

	results := make(map[string][]SkillPremium, len(categories))
	for category, skills := range categories {
		available := make([]string, 0, len(skills))
		for _, s := range skills {
			if _, ok := present[s]; ok {
				available = append(available, s)
			}
		}
		if len(available) == 0 {
			e.logger.WarnContext(ctx, "tech stack category has no skills in snapshot", "category", category)
			continue
		}

		premiums, err := e.AnalyzeSkillPremiums(ctx, available)
		if err != nil {
			return nil, err
		}
		results[category] = premiums
	}

	return results, nil
}
