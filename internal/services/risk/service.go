package risk

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aegislabs/aegis/internal/common"
	"github.com/aegislabs/aegis/internal/interfaces"
	"github.com/aegislabs/aegis/internal/models"
)

// Service implements RiskService. Provider and store are optional: without a
// provider only ComputeRiskMetrics is available, without a store AssessPortfolio
// computes but does not persist.
type Service struct {
	provider    interfaces.ValuationHistoryProvider
	store       interfaces.RiskMetricsStore
	opts        Options
	historyDays int
	logger      *common.Logger
}

// NewService creates a new risk service with assumptions taken from config.
func NewService(
	provider interfaces.ValuationHistoryProvider,
	store interfaces.RiskMetricsStore,
	cfg common.RiskConfig,
	logger *common.Logger,
) *Service {
	return &Service{
		provider: provider,
		store:    store,
		opts: Options{
			RiskFreeRate:   cfg.RiskFreeRate,
			PeriodsPerYear: cfg.TradingPeriods,
			VaRPercentile:  cfg.VaRPercentile,
		},
		historyDays: cfg.HistoryDays,
		logger:      logger,
	}
}

// ComputeRiskMetrics derives returns from the valuation series and computes
// the metrics record. It never returns an error for well-formed input; the
// error return satisfies the service contract shape.
func (s *Service) ComputeRiskMetrics(ctx context.Context, portfolioID string, totalValue float64, series []models.ValuationPoint) (*models.RiskMetrics, error) {
	returns, discarded := BuildReturns(series)
	if discarded > 0 {
		s.logger.Warn().
			Str("portfolio", portfolioID).
			Int("discarded", discarded).
			Msg("Discarded non-finite returns from valuation series")
	}

	m := Calculate(portfolioID, totalValue, returns, discarded, s.opts)

	s.logger.Debug().
		Str("portfolio", portfolioID).
		Int("samples", m.SampleCount).
		Float64("volatility", m.Volatility).
		Float64("value_at_risk", m.ValueAtRisk).
		Msg("Computed risk metrics")

	return m, nil
}

// AssessPortfolio loads the portfolio's valuation history, computes metrics,
// stamps record identity, and persists when a store is configured.
func (s *Service) AssessPortfolio(ctx context.Context, portfolioID string) (*models.RiskMetrics, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("no valuation history provider configured")
	}

	series, totalValue, err := s.provider.GetValuationHistory(ctx, portfolioID, s.historyDays)
	if err != nil {
		return nil, fmt.Errorf("failed to load valuation history for '%s': %w", portfolioID, err)
	}

	m, err := s.ComputeRiskMetrics(ctx, portfolioID, totalValue, series)
	if err != nil {
		return nil, err
	}

	m.ID = uuid.NewString()
	m.ComputedAt = time.Now().UTC()

	if s.store != nil {
		if err := s.store.SaveRiskMetrics(ctx, m); err != nil {
			return nil, fmt.Errorf("failed to save risk metrics for '%s': %w", portfolioID, err)
		}
	}

	return m, nil
}
