package rate

import (
	"context"
	"fintrack/internal/domain"
	"fintrack/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
)

// --- Testify mocks ---

type MockRateClient struct{ mock.Mock }

func (m *MockRateClient) FetchRates(ctx context.Context) (domain.RateTable, error) {
	args := m.Called(ctx)
	rates, _ := args.Get(0).(domain.RateTable)
	return rates, args.Error(1)
}

type MockRateSource struct{ mock.Mock }

func (m *MockRateSource) GetRates(ctx context.Context) domain.RateSnapshot {
	args := m.Called(ctx)
	snap, _ := args.Get(0).(domain.RateSnapshot)
	return snap
}

func newTestMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}
