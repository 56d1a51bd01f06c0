package intelligence

import (
	"math"
	"sort"

	"jobpulse/internal/dataset"
)

// Describe computes the standard salary summary for a sample.
// Std is the sample standard deviation (n-1 denominator); quantiles use
// linear interpolation between order statistics. An empty sample returns
// the zero value.
func Describe(values []float64) SalaryStatistics {
	n := len(values)
	if n == 0 {
		return SalaryStatistics{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	std := 0.0
	if n > 1 {
		sumSquared := 0.0
		for _, v := range sorted {
			sumSquared += (v - mean) * (v - mean)
		}
		std = math.Sqrt(sumSquared / float64(n-1))
	}

	return SalaryStatistics{
		Mean:   mean,
		Median: Quantile(sorted, 0.5),
		Std:    std,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Count:  n,
		Q25:    Quantile(sorted, 0.25),
		Q75:    Quantile(sorted, 0.75),
	}
}

// Quantile returns the q-th quantile of a sorted sample using linear
// interpolation between closest ranks. q must be in [0, 1] and the input
// must already be sorted ascending.
func Quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[n-1]
	}

	pos := q * float64(n-1)
	lower := int(math.Floor(pos))
	frac := pos - float64(lower)
	if lower+1 >= n {
		return sorted[n-1]
	}
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}

// Mean returns the arithmetic mean of a sample, 0 for an empty sample
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Variance returns the sample variance (n-1 denominator)
func Variance(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	mean := Mean(values)
	sumSquared := 0.0
	for _, v := range values {
		sumSquared += (v - mean) * (v - mean)
	}
	return sumSquared / float64(n-1)
}

// GroupStat pairs a partition key with its salary summary
type GroupStat struct {
	Key   string           `json:"key"`
	Stats SalaryStatistics `json:"stats"`
}

// GroupSalaryStatistics partitions rows by the given key function and
// summarizes salaries per partition. Rows with an empty key are excluded;
// empty partitions are never synthesized. Results are sorted by mean
// descending with the key as a stable tiebreaker.
func GroupSalaryStatistics(rows []dataset.JobRecord, keyFn func(dataset.JobRecord) string) []GroupStat {
	groups := make(map[string][]float64)
	for _, r := range rows {
		key := keyFn(r)
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], r.SalaryAvg)
	}

	out := make([]GroupStat, 0, len(groups))
	for key, salaries := range groups {
		out = append(out, GroupStat{Key: key, Stats: Describe(salaries)})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Stats.Mean != out[j].Stats.Mean {
			return out[i].Stats.Mean > out[j].Stats.Mean
		}
		return out[i].Key < out[j].Key
	})

	return out
}
