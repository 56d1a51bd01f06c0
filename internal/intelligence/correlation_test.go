package intelligence

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobpulse/internal/dataset"
)

func TestComputeCorrelationMatrix(t *testing.T) {
	ctx := context.Background()

	t.Run("symmetric with unit diagonal", func(t *testing.T) {
		records := []dataset.JobRecord{
			rec("j1", 100000, "a", "b"),
			rec("j2", 110000, "a"),
			rec("j3", 120000, "b", "c"),
			rec("j4", 130000, "c"),
		}
		engine := newTestEngine(t, DefaultAnalysisConfig(), []string{"a", "b", "c"}, records)

		m := engine.ComputeCorrelationMatrix(ctx)
		require.Equal(t, []string{"a", "b", "c"}, m.Skills)

		for i := range m.Skills {
			assert.InDelta(t, 1.0, m.At(i, i), 1e-12, "diagonal")
			for j := range m.Skills {
				assert.InDelta(t, m.At(i, j), m.At(j, i), 1e-12, "symmetry")
				assert.LessOrEqual(t, math.Abs(m.At(i, j)), 1.0+1e-12)
			}
		}
	})

	t.Run("identical columns correlate at one", func(t *testing.T) {
		records := []dataset.JobRecord{
			rec("j1", 100000, "a", "b"),
			rec("j2", 110000, "a", "b"),
			rec("j3", 120000),
			rec("j4", 130000),
		}
		engine := newTestEngine(t, DefaultAnalysisConfig(), []string{"a", "b"}, records)

		m := engine.ComputeCorrelationMatrix(ctx)
		assert.InDelta(t, 1.0, m.At(0, 1), 1e-12)
	})

	t.Run("disjoint columns correlate negatively", func(t *testing.T) {
		records := []dataset.JobRecord{
			rec("j1", 100000, "a"),
			rec("j2", 110000, "a"),
			rec("j3", 120000, "b"),
			rec("j4", 130000, "b"),
		}
		engine := newTestEngine(t, DefaultAnalysisConfig(), []string{"a", "b"}, records)

		m := engine.ComputeCorrelationMatrix(ctx)
		assert.InDelta(t, -1.0, m.At(0, 1), 1e-12)
	})

	t.Run("constant column yields NaN", func(t *testing.T) {
		records := []dataset.JobRecord{
			rec("j1", 100000, "everywhere", "a"),
			rec("j2", 110000, "everywhere"),
		}
		engine := newTestEngine(t, DefaultAnalysisConfig(), []string{"everywhere", "a"}, records)

		m := engine.ComputeCorrelationMatrix(ctx)
		assert.True(t, math.IsNaN(m.At(0, 0)), "zero variance poisons the diagonal too")
		assert.True(t, math.IsNaN(m.At(0, 1)))
		assert.InDelta(t, 1.0, m.At(1, 1), 1e-12)
	})
}

func TestAnalyzeCooccurrence(t *testing.T) {
	ctx := context.Background()

	t.Run("perfect pair is strong", func(t *testing.T) {
		records := []dataset.JobRecord{
			rec("j1", 100000, "a", "b"),
			rec("j2", 110000, "a", "b"),
			rec("j3", 120000),
			rec("j4", 130000),
		}
		engine := newTestEngine(t, DefaultAnalysisConfig(), []string{"a", "b"}, records)

		edges := engine.AnalyzeCooccurrence(ctx)
		require.Len(t, edges, 1)
		assert.Equal(t, "a", edges[0].Skill1)
		assert.Equal(t, "b", edges[0].Skill2)
		assert.InDelta(t, 1.0, edges[0].Correlation, 1e-12)
		assert.Equal(t, StrengthStrong, edges[0].Strength)
	})

	t.Run("strong negative correlation labeled moderate", func(t *testing.T) {
		// The magnitude passes the filter but the strength label requires
		// the signed value to reach the strong threshold.
		records := []dataset.JobRecord{
			rec("j1", 100000, "a"),
			rec("j2", 110000, "a"),
			rec("j3", 120000, "b"),
			rec("j4", 130000, "b"),
		}
		engine := newTestEngine(t, DefaultAnalysisConfig(), []string{"a", "b"}, records)

		edges := engine.AnalyzeCooccurrence(ctx)
		require.Len(t, edges, 1)
		assert.InDelta(t, -1.0, edges[0].Correlation, 1e-12)
		assert.Equal(t, StrengthModerate, edges[0].Strength)
	})

	t.Run("weak pairs filtered out", func(t *testing.T) {
		// a and b are independent across the four rows: r = 0, below 0.3
		records := []dataset.JobRecord{
			rec("j1", 100000, "a", "b"),
			rec("j2", 110000, "a"),
			rec("j3", 120000, "b"),
			rec("j4", 130000),
		}
		engine := newTestEngine(t, DefaultAnalysisConfig(), []string{"a", "b"}, records)

		edges := engine.AnalyzeCooccurrence(ctx)
		assert.Empty(t, edges)
	})

	t.Run("constant skill pairs excluded", func(t *testing.T) {
		records := []dataset.JobRecord{
			rec("j1", 100000, "everywhere", "a"),
			rec("j2", 110000, "everywhere"),
		}
		engine := newTestEngine(t, DefaultAnalysisConfig(), []string{"everywhere", "a"}, records)

		edges := engine.AnalyzeCooccurrence(ctx)
		assert.Empty(t, edges, "NaN cells never become edges")
	})

	t.Run("sorted by correlation descending", func(t *testing.T) {
		records := []dataset.JobRecord{
			rec("j1", 100000, "a", "b", "c"),
			rec("j2", 110000, "a", "b"),
			rec("j3", 120000, "c", "d"),
			rec("j4", 130000, "d"),
			rec("j5", 140000),
			rec("j6", 150000),
		}
		engine := newTestEngine(t, DefaultAnalysisConfig(), []string{"a", "b", "c", "d"}, records)

		edges := engine.AnalyzeCooccurrence(ctx)
		require.NotEmpty(t, edges)
		for i := 1; i < len(edges); i++ {
			assert.GreaterOrEqual(t, edges[i-1].Correlation, edges[i].Correlation)
		}
	})
}
