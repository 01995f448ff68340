// Package risk implements the portfolio risk-metrics engine
package risk

import (
	"math"

	"github.com/aegislabs/aegis/internal/models"
)

// BuildReturns derives the simple period-over-period return series from a
// valuation series: r_i = v_i/v_{i-1} - 1 for each consecutive pair, traversed
// in series order. The first point has no predecessor and contributes no
// return.
//
// Raw returns that are NaN or infinite (division by a zero valuation,
// non-finite inputs) are removed outright rather than zeroed, so downstream
// statistics run only over valid observations. The second result is the count
// of removed returns, letting callers tell short history apart from corrupted
// history.
//
// Zero or one input points yield an empty series. That is a valid state, not
// an error; the calculator handles it as "insufficient history".
func BuildReturns(series []models.ValuationPoint) ([]float64, int) {
	if len(series) < 2 {
		return nil, 0
	}

	returns := make([]float64, 0, len(series)-1)
	discarded := 0
	for i := 1; i < len(series); i++ {
		r := series[i].Value/series[i-1].Value - 1
		if math.IsNaN(r) || math.IsInf(r, 0) {
			discarded++
			continue
		}
		returns = append(returns, r)
	}
	return returns, discarded
}
