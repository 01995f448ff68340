package risk

import (
	"math"

	"github.com/samber/lo"

	"github.com/aegislabs/aegis/internal/common"
	"github.com/aegislabs/aegis/internal/models"
)

// Options holds the assumptions behind a metrics computation.
type Options struct {
	RiskFreeRate   float64 // annualized fractional rate for Sharpe/Sortino numerators
	PeriodsPerYear int     // annualization constant (252 trading days)
	VaRPercentile  float64 // tail percentile, 5.0 = 95% confidence VaR
}

// DefaultOptions returns the standard assumptions: 2% risk-free rate,
// 252 trading periods per year, 95% VaR confidence.
func DefaultOptions() Options {
	return Options{
		RiskFreeRate:   common.DefaultRiskFreeRate,
		PeriodsPerYear: common.DefaultTradingPeriods,
		VaRPercentile:  common.DefaultVaRPercentile,
	}
}

// Calculate computes the full risk-metrics record from a cleaned return
// series and the portfolio's current total value.
//
// It is a pure function: identical inputs produce identical records, and it
// never fails. Fewer than two returns yield a record with every statistic
// exactly 0, meaning "insufficient history", which callers must not read as zero
// risk. On the normal path every scalar is sanitized before assignment, so
// every float field in the result is finite.
//
// ID and ComputedAt are left unset; they belong to the persist step.
func Calculate(portfolioID string, totalValue float64, returns []float64, discarded int, opts Options) *models.RiskMetrics {
	m := &models.RiskMetrics{
		PortfolioID:    portfolioID,
		SampleCount:    len(returns),
		DiscardedCount: discarded,
	}

	if len(returns) < 2 {
		return m
	}

	periods := float64(opts.PeriodsPerYear)
	annFactor := math.Sqrt(periods)

	volatility := common.SanitizeFloat(populationStd(returns)*annFactor, 0)
	meanReturn := common.SanitizeFloat(mean(returns)*periods, 0)

	// Value at Risk: linear-interpolated tail percentile of the return
	// distribution, scaled to the portfolio's current value. Reported as a
	// loss magnitude, so the sign is discarded.
	threshold := percentile(returns, opts.VaRPercentile)
	valueAtRisk := common.SanitizeFloat(threshold*totalValue, 0)

	// Conditional VaR: expected shortfall over the tail at or below the VaR
	// threshold. Interpolation can leave the tail empty on tiny samples.
	var conditionalVaR float64
	tail := lo.Filter(returns, func(r float64, _ int) bool { return r <= threshold })
	if len(tail) > 0 {
		conditionalVaR = common.SanitizeFloat(mean(tail)*totalValue, 0)
	}

	// Maximum drawdown: worst decline of the synthetic wealth index
	// Π(1+r_i) from its running peak.
	wealth := 1.0
	peak := math.Inf(-1)
	minDrawdown := 0.0
	for _, r := range returns {
		wealth *= 1 + r
		if wealth > peak {
			peak = wealth
		}
		if dd := (wealth - peak) / peak; dd < minDrawdown {
			minDrawdown = dd
		}
	}

	// Zero-guard policy: ratios are 0 when their denominator is 0. That
	// collapses "undefined" into 0, a documented approximation.
	var sharpe float64
	if volatility > 0 {
		sharpe = common.SanitizeFloat((meanReturn-opts.RiskFreeRate)/volatility, 0)
	}

	var sortino float64
	downside := lo.Filter(returns, func(r float64, _ int) bool { return r < 0 })
	if len(downside) > 0 {
		downsideVol := common.SanitizeFloat(populationStd(downside)*annFactor, 0)
		if downsideVol > 0 {
			sortino = common.SanitizeFloat((meanReturn-opts.RiskFreeRate)/downsideVol, 0)
		}
	}

	m.ValueAtRisk = math.Abs(valueAtRisk)
	m.ConditionalVaR = math.Abs(conditionalVaR)
	m.MaxDrawdown = math.Abs(common.SanitizeFloat(minDrawdown, 0))
	m.SharpeRatio = sharpe
	m.SortinoRatio = sortino
	m.Volatility = volatility
	m.Skewness = common.SanitizeFloat(sampleSkewness(returns), 0)
	m.Kurtosis = common.SanitizeFloat(excessKurtosis(returns), 0)

	return m
}
