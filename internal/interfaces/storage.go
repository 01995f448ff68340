package interfaces

import (
	"context"
	"time"

	"github.com/aegislabs/aegis/internal/models"
)

// RiskMetricsStore persists computed risk-metrics records.
type RiskMetricsStore interface {
	// SaveRiskMetrics persists a record. The record is immutable once saved.
	SaveRiskMetrics(ctx context.Context, metrics *models.RiskMetrics) error

	// GetLatestRiskMetrics returns the most recent record for a portfolio.
	GetLatestRiskMetrics(ctx context.Context, portfolioID string) (*models.RiskMetrics, error)

	// ListRiskMetrics returns records for a portfolio, newest first.
	ListRiskMetrics(ctx context.Context, portfolioID string, limit int) ([]*models.RiskMetrics, error)
}

// PortfolioStore persists portfolios and their token holdings.
type PortfolioStore interface {
	GetPortfolio(ctx context.Context, portfolioID string) (*models.Portfolio, error)
	SavePortfolio(ctx context.Context, portfolio *models.Portfolio) error
	ListPortfolios(ctx context.Context, userID string) ([]*models.Portfolio, error)
}

// AlertStore persists monitoring alerts.
type AlertStore interface {
	SaveAlert(ctx context.Context, alert *models.Alert) error
	ListAlerts(ctx context.Context, userID string, since time.Time, limit int) ([]*models.Alert, error)
}
