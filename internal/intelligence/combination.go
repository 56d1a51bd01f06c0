package intelligence

import (
	"context"
	"sort"
	"strings"
)

// AnalyzeSkillCombinations groups rows by the exact set of skills present
// and summarizes salary per combination. Combinations seen fewer than
// minCount times are dropped; the empty combination (no skills) is always
// excluded because salary-per-skill is undefined for it. A minCount below 1
// falls back to the configured default. Results are sorted by mean salary
// descending with the signature as a stable tiebreaker.
func (e *Engine) AnalyzeSkillCombinations(ctx context.Context, minCount int) []SkillCombination {
	if minCount < 1 {
		minCount = e.cfg.MinComboCount
	}

	groups := make(map[string][]float64)
	sizes := make(map[string]int)

	for _, row := range e.snapshot.Rows() {
		sig, numSkills := combinationSignature(row.Skills)
		if numSkills == 0 {
			continue
		}
		groups[sig] = append(groups[sig], row.SalaryAvg)
		sizes[sig] = numSkills
	}

	results := make([]SkillCombination, 0, len(groups))
	for sig, salaries := range groups {
		if len(salaries) < minCount {
			continue
		}

		stats := Describe(salaries)
		numSkills := sizes[sig]

		results = append(results, SkillCombination{
			Signature:      sig,
			MeanSalary:     stats.Mean,
			MedianSalary:   stats.Median,
			Count:          stats.Count,
			NumSkills:      numSkills,
			SalaryPerSkill: stats.Mean / float64(numSkills),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].MeanSalary != results[j].MeanSalary {
			return results[i].MeanSalary > results[j].MeanSalary
		}
		return results[i].Signature < results[j].Signature
	})

	e.logger.InfoContext(ctx, "skill combination analysis completed",
		"combinations", len(results),
		"min_count", minCount,
	)

	return results
}

// combinationSignature builds the canonical signature for a set of active
// skills: names sorted ascending, comma-joined. Identical skill sets always
// produce the same signature regardless of source column order.
func combinationSignature(skills map[string]bool) (string, int) {
	if len(skills) == 0 {
		return "", 0
	}

	names := make([]string, 0, len(skills))
	for name, active := range skills {
		if active {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", 0
	}

	sort.Strings(names)
	return strings.Join(names, ","), len(names)
}
