package intelligence

import (
	"context"
	"math"
	"sort"
)

// CorrelationMatrix is the symmetric Pearson correlation matrix over skill
// indicator vectors. Cells involving a zero-variance skill are NaN.
type CorrelationMatrix struct {
	Skills []string    `json:"skills"`
	Values [][]float64 `json:"values"`
}

// At returns the correlation between two skills by index
func (m CorrelationMatrix) At(i, j int) float64 {
	return m.Values[i][j]
}

// ComputeCorrelationMatrix builds the Pearson correlation matrix over all
// skill indicator columns of the snapshot. The matrix is symmetric with a
// unit diagonal for skills with nonzero variance; a skill that is constant
// across all rows (always 0 or always 1) produces NaN in every cell
// including its own diagonal.
func (e *Engine) ComputeCorrelationMatrix(ctx context.Context) CorrelationMatrix {
	skills := e.snapshot.SkillNames()
	n := e.snapshot.Len()

	e.logger.InfoContext(ctx, "computing skill correlation matrix",
		"skills", len(skills),
		"rows", n,
	)

	vectors := make([][]float64, len(skills))
	sums := make([]float64, len(skills))
	for i, skill := range skills {
		vectors[i] = e.snapshot.SkillVector(skill)
		for _, v := range vectors[i] {
			sums[i] += v
		}
	}

	matrix := CorrelationMatrix{
		Skills: skills,
		Values: make([][]float64, len(skills)),
	}
	for i := range matrix.Values {
		matrix.Values[i] = make([]float64, len(skills))
	}

	for i := range skills {
		for j := i; j < len(skills); j++ {
			r := pearsonBinary(vectors[i], vectors[j], sums[i], sums[j], n)
			matrix.Values[i][j] = r
			matrix.Values[j][i] = r
		}
	}

	return matrix
}

// pearsonBinary computes the Pearson correlation of two 0/1 vectors.
// For indicator vectors sum(x^2) == sum(x), which simplifies the moment
// terms. Zero variance on either side yields NaN.
func pearsonBinary(x, y []float64, sumX, sumY float64, n int) float64 {
	if n == 0 {
		return math.NaN()
	}

	fn := float64(n)
	varX := fn*sumX - sumX*sumX
	varY := fn*sumY - sumY*sumY
	if varX <= 0 || varY <= 0 {
		return math.NaN()
	}

	sumXY := 0.0
	for k := range x {
		sumXY += x[k] * y[k]
	}

	return (fn*sumXY - sumX*sumY) / math.Sqrt(varX*varY)
}

// AnalyzeCooccurrence extracts skill pairs from the strict upper triangle
// of the correlation matrix whose absolute correlation meets the configured
// threshold. Pairs involving zero-variance skills are excluded. Results are
// sorted by correlation descending.
func (e *Engine) AnalyzeCooccurrence(ctx context.Context) []CorrelationEdge {
	matrix := e.ComputeCorrelationMatrix(ctx)

	var edges []CorrelationEdge
	for i := 0; i < len(matrix.Skills); i++ {
		for j := i + 1; j < len(matrix.Skills); j++ {
			r := matrix.Values[i][j]
			if math.IsNaN(r) {
				continue
			}
			if math.Abs(r) < e.cfg.MinCorrelation {
				continue
			}

			strength := StrengthModerate
			if r >= e.cfg.StrongCorrelation {
				strength = StrengthStrong
			}

			edges = append(edges, CorrelationEdge{
				Skill1:      matrix.Skills[i],
				Skill2:      matrix.Skills[j],
				Correlation: r,
				Strength:    strength,
			})
		}
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Correlation > edges[j].Correlation
	})

	e.logger.InfoContext(ctx, "co-occurrence analysis completed",
		"pairs", len(edges),
		"min_correlation", e.cfg.MinCorrelation,
	)

	return edges
}
