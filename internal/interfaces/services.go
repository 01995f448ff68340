// Package interfaces defines service contracts for Aegis
package interfaces

import (
	"context"

	"github.com/aegislabs/aegis/internal/models"
)

// RiskService computes quantitative risk metrics for portfolios.
//
// The computation itself is non-fallible: for any well-formed valuation series
// it produces a complete record with every float field finite, degrading to an
// all-zero record when fewer than two usable returns exist. Errors surface only
// from collaborators (history lookup, persistence).
type RiskService interface {
	// ComputeRiskMetrics derives period returns from the valuation series and
	// computes the full metrics record for the portfolio. The series must be
	// chronologically ordered in a consistent direction; resampling and
	// gap-filling are the caller's responsibility.
	ComputeRiskMetrics(ctx context.Context, portfolioID string, totalValue float64, series []models.ValuationPoint) (*models.RiskMetrics, error)

	// AssessPortfolio pulls the portfolio's valuation history from the
	// configured provider, computes metrics, and persists the record when a
	// store is configured.
	AssessPortfolio(ctx context.Context, portfolioID string) (*models.RiskMetrics, error)
}

// ValuationHistoryProvider supplies the valuation time series the risk engine
// consumes. Implementations own resampling, gap-filling, and ordering.
type ValuationHistoryProvider interface {
	// GetValuationHistory returns up to `days` daily valuation points for the
	// portfolio, ordered oldest-to-newest, along with the current total value.
	GetValuationHistory(ctx context.Context, portfolioID string, days int) ([]models.ValuationPoint, float64, error)
}

// SentimentService aggregates social/news sentiment per symbol.
type SentimentService interface {
	AnalyzeSentiment(ctx context.Context, symbols []string, sources []string) ([]*models.SentimentData, error)
}

// YieldService discovers yield-farming opportunities.
type YieldService interface {
	ListOpportunities(ctx context.Context) ([]*models.YieldOpportunity, error)
}
