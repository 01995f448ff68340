// Package models defines data structures for Aegis
package models

import "time"

// ValuationPoint is a single observation of a portfolio's total marked value.
// Series are ordered consistently by date (oldest-to-newest by convention);
// the return builder only assumes consistent traversal direction.
type ValuationPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"` // total portfolio value in the portfolio's base currency
}

// RiskMetrics is the output record of the risk engine. Every float field is
// finite (no NaN, no ±Inf) by the time the record leaves the calculator;
// downstream serialization and storage depend on that contract.
type RiskMetrics struct {
	ID          string `json:"id,omitempty"` // assigned at persist time, not by the calculator
	PortfolioID string `json:"portfolio_id"`

	ValueAtRisk    float64 `json:"value_at_risk"`   // absolute loss at 95% confidence, >= 0
	ConditionalVaR float64 `json:"conditional_var"` // expected shortfall beyond VaR, >= 0
	MaxDrawdown    float64 `json:"max_drawdown"`    // absolute peak-to-trough fraction, >= 0
	SharpeRatio    float64 `json:"sharpe_ratio"`    // annualized, 0 when volatility is 0
	SortinoRatio   float64 `json:"sortino_ratio"`   // annualized, 0 when no negative returns
	Volatility     float64 `json:"volatility"`      // annualized std of returns, >= 0
	Skewness       float64 `json:"skewness"`        // adjusted Fisher-Pearson sample skewness
	Kurtosis       float64 `json:"kurtosis"`        // bias-corrected excess kurtosis

	// Sample accounting. An all-zero record with SampleCount < 2 means
	// "insufficient history", not "zero risk". DiscardedCount separates
	// short history from history corrupted by non-finite returns.
	SampleCount    int `json:"sample_count"`
	DiscardedCount int `json:"discarded_count"`

	ComputedAt time.Time `json:"computed_at,omitzero"` // assigned at persist time
}
