package intelligence

import (
	"math"
)

// SignificanceTester compares two independent numeric samples and returns
// the two-sided p-value under the null hypothesis of equal means. The
// strategy is pluggable so callers can swap the test without touching the
// engine.
type SignificanceTester interface {
	Compare(sample1, sample2 []float64) float64
}

// WelchTest is an independent two-sample t-test that does not assume equal
// variances (Welch 1947). Degrees of freedom use the Welch-Satterthwaite
// approximation.
type WelchTest struct{}

// Compare returns the two-sided p-value for the difference in means.
// Degenerate inputs (fewer than two observations on a side, or zero
// variance on both sides) return 1.0: never claim significance on data
// that cannot support a test.
func (WelchTest) Compare(sample1, sample2 []float64) float64 {
	n1, n2 := len(sample1), len(sample2)
	if n1 < 2 || n2 < 2 {
		return 1.0
	}

	m1, m2 := Mean(sample1), Mean(sample2)
	v1, v2 := Variance(sample1), Variance(sample2)

	se := v1/float64(n1) + v2/float64(n2)
	if se <= 0 {
		// Both samples constant
		if m1 == m2 {
			return 1.0
		}
		return 0.0
	}

	t := (m1 - m2) / math.Sqrt(se)

	// Welch-Satterthwaite degrees of freedom
	num := se * se
	den := (v1/float64(n1))*(v1/float64(n1))/float64(n1-1) +
		(v2/float64(n2))*(v2/float64(n2))/float64(n2-1)
	if den <= 0 {
		return 1.0
	}
	df := num / den

	p := 2 * studentTTail(math.Abs(t), df)
	if math.IsNaN(p) {
		return 1.0
	}
	if p > 1 {
		p = 1
	}
	if p < 0 {
		p = 0
	}
	return p
}

// ConservativeTest is the fallback strategy used when no statistical
// backend is configured. It reports p=1.0 for every comparison, so no
// premium is ever marked significant by default.
type ConservativeTest struct{}

// Compare always returns 1.0
func (ConservativeTest) Compare(_, _ []float64) float64 {
	return 1.0
}

// studentTTail returns P(T > t) for a Student's t distribution with df
// degrees of freedom, t >= 0. Computed through the regularized incomplete
// beta function: P(T > t) = I_{df/(df+t^2)}(df/2, 1/2) / 2.
func studentTTail(t, df float64) float64 {
	if df <= 0 || math.IsNaN(t) {
		return math.NaN()
	}
	if math.IsInf(t, 1) {
		return 0
	}
	x := df / (df + t*t)
	return 0.5 * regIncompleteBeta(df/2, 0.5, x)
}

// regIncompleteBeta computes the regularized incomplete beta function
// I_x(a, b) using the continued fraction expansion (Lentz's method).
func regIncompleteBeta(a, b, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	// ln of the prefactor x^a (1-x)^b / (a B(a,b))
	lgab, _ := math.Lgamma(a + b)
	lga, _ := math.Lgamma(a)
	lgb, _ := math.Lgamma(b)
	lnFront := lgab - lga - lgb + a*math.Log(x) + b*math.Log(1-x)

	// Use the symmetry relation for faster convergence
	if x > (a+1)/(a+b+2) {
		return 1 - regIncompleteBeta(b, a, 1-x)
	}

	const (
		maxIterations = 200
		epsilon       = 3e-14
		tiny          = 1e-30
	)

	c := 1.0
	d := 1 - (a+b)*x/(a+1)
	if math.Abs(d) < tiny {
		d = tiny
	}
	d = 1 / d
	result := d

	for m := 1; m <= maxIterations; m++ {
		fm := float64(m)

		// Even step
		numerator := fm * (b - fm) * x / ((a + 2*fm - 1) * (a + 2*fm))
		d = 1 + numerator*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		d = 1 / d
		c = 1 + numerator/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		result *= d * c

		// Odd step
		numerator = -(a + fm) * (a + b + fm) * x / ((a + 2*fm) * (a + 2*fm + 1))
		d = 1 + numerator*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		d = 1 / d
		c = 1 + numerator/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		delta := d * c
		result *= delta

		if math.Abs(delta-1) < epsilon {
			break
		}
	}

	return math.Exp(lnFront) * result / a
}
