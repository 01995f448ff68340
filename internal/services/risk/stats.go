package risk

import (
	"math"
	"sort"
)

// Statistical estimators over return samples. Degenerate inputs (empty or
// zero-variance samples, too few observations for the higher moments) are
// allowed to produce NaN here; the calculator sanitizes every result before
// it reaches a record.

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// populationStd is the uncorrected (ddof=0) standard deviation, the
// conventional estimator for daily-return volatility.
func populationStd(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	m := mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)))
}

// percentile computes the linear-interpolated empirical percentile of xs at
// p (0-100). The sample is not modified.
func percentile(xs []float64, p float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// sampleSkewness is the bias-adjusted Fisher-Pearson skewness:
// g1 × √(n(n−1)) / (n−2), with g1 = m3/m2^1.5.
// Needs n >= 3 and non-zero variance; NaN otherwise.
func sampleSkewness(xs []float64) float64 {
	n := float64(len(xs))
	if n < 3 {
		return math.NaN()
	}
	m := mean(xs)
	var m2, m3 float64
	for _, x := range xs {
		d := x - m
		m2 += d * d
		m3 += d * d * d
	}
	m2 /= n
	m3 /= n

	g1 := m3 / math.Pow(m2, 1.5)
	return g1 * math.Sqrt(n*(n-1)) / (n - 2)
}

// excessKurtosis is the bias-corrected excess kurtosis:
// ((n+1)g2 + 6) × (n−1)/((n−2)(n−3)), with g2 = m4/m2² − 3.
// A normal distribution scores 0. Needs n >= 4 and non-zero variance; NaN
// otherwise.
func excessKurtosis(xs []float64) float64 {
	n := float64(len(xs))
	if n < 4 {
		return math.NaN()
	}
	m := mean(xs)
	var m2, m4 float64
	for _, x := range xs {
		d := x - m
		d2 := d * d
		m2 += d2
		m4 += d2 * d2
	}
	m2 /= n
	m4 /= n

	g2 := m4/(m2*m2) - 3
	return ((n+1)*g2 + 6) * (n - 1) / ((n - 2) * (n - 3))
}
