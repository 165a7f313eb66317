package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeFallback = "fallback"
	OutcomeIdentity = "identity"

	LookupHit  = "hit"
	LookupMiss = "miss"
)

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	RateFetchTotal     *prometheus.CounterVec
	RateCacheLookups   *prometheus.CounterVec
	ConversionsTotal   *prometheus.CounterVec
	RateCacheFetchedAt prometheus.Gauge
}

// New registers the service collectors on reg. Pass prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),

		RateFetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_fetch_total",
				Help: "Upstream exchange rate fetches by outcome",
			},
			[]string{"outcome"},
		),

		RateCacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_cache_lookups_total",
				Help: "Rate cache lookups by result",
			},
			[]string{"result"},
		),

		ConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conversions_total",
				Help: "Currency conversions by outcome",
			},
			[]string{"outcome"},
		),

		RateCacheFetchedAt: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "rate_cache_fetched_at_seconds",
				Help: "Unix time of the cached rate table capture",
			},
		),
	}
}
