package risk

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aegislabs/aegis/internal/common"
	"github.com/aegislabs/aegis/internal/interfaces"
	"github.com/aegislabs/aegis/internal/models"
)

// stubProvider returns a fixed valuation history.
type stubProvider struct {
	series     []models.ValuationPoint
	totalValue float64
	err        error
}

func (p *stubProvider) GetValuationHistory(_ context.Context, _ string, _ int) ([]models.ValuationPoint, float64, error) {
	return p.series, p.totalValue, p.err
}

// stubStore records saved metrics.
type stubStore struct {
	saved []*models.RiskMetrics
	err   error
}

func (s *stubStore) SaveRiskMetrics(_ context.Context, m *models.RiskMetrics) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, m)
	return nil
}

func (s *stubStore) GetLatestRiskMetrics(_ context.Context, _ string) (*models.RiskMetrics, error) {
	if len(s.saved) == 0 {
		return nil, errors.New("not found")
	}
	return s.saved[len(s.saved)-1], nil
}

func (s *stubStore) ListRiskMetrics(_ context.Context, _ string, _ int) ([]*models.RiskMetrics, error) {
	return s.saved, nil
}

func newTestService(provider *stubProvider, store *stubStore) *Service {
	cfg := common.NewDefaultConfig().Risk
	var p interfaces.ValuationHistoryProvider
	if provider != nil {
		p = provider
	}
	var st interfaces.RiskMetricsStore
	if store != nil {
		st = store
	}
	return NewService(p, st, cfg, common.NewSilentLogger())
}

func TestService_ComputeRiskMetrics_NeverFails(t *testing.T) {
	svc := newTestService(nil, nil)
	ctx := context.Background()

	for _, series := range [][]models.ValuationPoint{
		nil,
		seriesFromValues(1000),
		seriesFromValues(100, 0, 50),
		seriesFromValues(1000, 1020, 998, 1050, 1010),
	} {
		m, err := svc.ComputeRiskMetrics(ctx, "p1", 1000, series)
		require.NoError(t, err)
		require.NotNil(t, m)
		assert.Equal(t, "p1", m.PortfolioID)
	}
}

func TestService_AssessPortfolio_PersistsStampedRecord(t *testing.T) {
	provider := &stubProvider{
		series:     seriesFromValues(1000, 1020, 998, 1050, 1010),
		totalValue: 1010,
	}
	store := &stubStore{}
	svc := newTestService(provider, store)

	m, err := svc.AssessPortfolio(context.Background(), "p1")
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID)
	assert.False(t, m.ComputedAt.IsZero())
	assert.Equal(t, 4, m.SampleCount)

	require.Len(t, store.saved, 1)
	assert.Same(t, m, store.saved[0])
}

func TestService_AssessPortfolio_NoProvider(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.AssessPortfolio(context.Background(), "p1")
	assert.Error(t, err)
}

func TestService_AssessPortfolio_ProviderError(t *testing.T) {
	provider := &stubProvider{err: errors.New("history backend down")}
	svc := newTestService(provider, &stubStore{})

	_, err := svc.AssessPortfolio(context.Background(), "p1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history backend down")
}

func TestService_AssessPortfolio_StoreError(t *testing.T) {
	provider := &stubProvider{
		series:     seriesFromValues(1000, 1020, 998),
		totalValue: 998,
	}
	store := &stubStore{err: errors.New("write refused")}
	svc := newTestService(provider, store)

	_, err := svc.AssessPortfolio(context.Background(), "p1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write refused")
}

func TestService_AssessPortfolio_InsufficientHistorySaves(t *testing.T) {
	// A one-point history still produces (and persists) the all-zero record;
	// "no data" is a result, not an error.
	provider := &stubProvider{series: seriesFromValues(1000), totalValue: 1000}
	store := &stubStore{}
	svc := newTestService(provider, store)

	m, err := svc.AssessPortfolio(context.Background(), "p1")
	require.NoError(t, err)
	assert.Zero(t, m.Volatility)
	assert.Zero(t, m.SampleCount)
	require.Len(t, store.saved, 1)
}
