package intelligence

import (
	"context"
	"sort"
	"strings"
)

// RecommendSkills turns a high-value result set into a prioritized
// skill-acquisition list. Skills in the exclusion list (matched
// case-insensitively) and skills without a significant premium are
// filtered out. The sort key is (value score desc, learning ROI desc).
func (e *Engine) RecommendSkills(ctx context.Context, results []HighValueSkill, exclude []string) []Recommendation {
	excluded := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excluded[strings.ToLower(name)] = struct{}{}
	}

	recommendations := make([]Recommendation, 0, len(results))
	for _, s := range results {
		if !s.IsSignificant {
			continue
		}
		if _, ok := excluded[strings.ToLower(s.SkillName)]; ok {
			continue
		}

		recommendations = append(recommendations, Recommendation{
			HighValueSkill: s,
			LearningROI:    s.PremiumPct * s.DemandPct / 100,
			Priority:       recommendationPriority(s.ValueScore),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].ValueScore != recommendations[j].ValueScore {
			return recommendations[i].ValueScore > recommendations[j].ValueScore
		}
		return recommendations[i].LearningROI > recommendations[j].LearningROI
	})

	e.logger.InfoContext(ctx, "skill recommendations generated",
		"recommendations", len(recommendations),
		"excluded", len(exclude),
	)

	return recommendations
}

// recommendationPriority maps a value score onto its fixed priority bin
func recommendationPriority(score float64) string {
	switch {
	case score >= priorityCriticalFloor:
		return PriorityCritical
	case score >= priorityHighFloor:
		return PriorityHigh
	default:
		return PriorityMedium
	}
}
