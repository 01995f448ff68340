// Package dashboard aggregates per-user headline metrics for the dashboard view.
package dashboard

import (
	"github.com/aegislabs/aegis/internal/common"
	"github.com/aegislabs/aegis/internal/models"
)

// Summarize rolls portfolios and alert count up into the dashboard headline
// block. Upstream valuations can carry non-finite values, so every sum runs
// through the sanitizer; the summary must always serialize cleanly.
func Summarize(portfolios []*models.Portfolio, alertCount int) models.DashboardSummary {
	var totalValue, totalRisk float64
	for _, p := range portfolios {
		totalValue += common.SanitizeFloat(p.TotalValueUSD, 0)
		totalRisk += common.SanitizeFloat(p.RiskScore, 0)
	}

	var avgRisk float64
	if len(portfolios) > 0 {
		avgRisk = totalRisk / float64(len(portfolios))
	}

	return models.DashboardSummary{
		TotalPortfolioValue: common.SanitizeFloat(totalValue, 0),
		PortfolioCount:      len(portfolios),
		AvgRiskScore:        common.SanitizeFloat(avgRisk, 0),
		TotalAlerts:         alertCount,
	}
}
