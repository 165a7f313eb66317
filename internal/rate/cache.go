package rate

import (
	"context"
	"fintrack/internal/adapters"
	"fintrack/internal/domain"
	"fintrack/internal/metrics"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const DefaultTTL = time.Hour

const flightKey = "rates"

// Cache holds a single rate table snapshot. A snapshot younger than ttl is served
// without network access; otherwise the client is asked for a fresh table.
// Failed fetches are answered with the fallback table, which is never stored.
type Cache struct {
	client  adapters.RateClient
	ttl     time.Duration
	clock   clockwork.Clock
	metrics *metrics.Metrics

	mu     sync.RWMutex
	entry  *domain.RateSnapshot
	flight singleflight.Group
}

// GetRates never fails. The returned table must be treated as read-only.
// The shared fetch outlives the caller that started it; the HTTP client
// timeout bounds it.
func (c *Cache) GetRates(ctx context.Context) domain.RateSnapshot {
	if snap, ok := c.fresh(); ok {
		c.metrics.RateCacheLookups.WithLabelValues(metrics.LookupHit).Inc()
		return snap
	}
	c.metrics.RateCacheLookups.WithLabelValues(metrics.LookupMiss).Inc()

	v, err, _ := c.flight.Do(flightKey, func() (any, error) {
		// another flight may have filled the slot while we were waiting
		if snap, ok := c.fresh(); ok {
			return snap, nil
		}
		return c.fetch(context.WithoutCancel(ctx))
	})
	if err != nil {
		c.metrics.RateFetchTotal.WithLabelValues(metrics.OutcomeFallback).Inc()
		logrus.WithError(err).Warn("Failed to fetch live exchange rates, using fallback")
		return c.fallback()
	}
	return v.(domain.RateSnapshot)
}

// Refresh fetches a new table regardless of the cached entry's age.
// On failure the current entry is kept and the error returned.
func (c *Cache) Refresh(ctx context.Context) (domain.RateSnapshot, error) {
	v, err, _ := c.flight.Do(flightKey, func() (any, error) {
		return c.fetch(context.WithoutCancel(ctx))
	})
	if err != nil {
		return domain.RateSnapshot{}, err
	}
	return v.(domain.RateSnapshot), nil
}

// Invalidate drops the cached entry so the next GetRates goes to the network.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entry = nil
	c.mu.Unlock()
}

func (c *Cache) fresh() (domain.RateSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.entry == nil || c.clock.Since(c.entry.FetchedAt) >= c.ttl {
		return domain.RateSnapshot{}, false
	}
	return *c.entry, true
}

func (c *Cache) fetch(ctx context.Context) (domain.RateSnapshot, error) {
	rates, err := c.client.FetchRates(ctx)
	if err != nil {
		c.metrics.RateFetchTotal.WithLabelValues(metrics.OutcomeFailure).Inc()
		return domain.RateSnapshot{}, err
	}
	c.metrics.RateFetchTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()

	snap := domain.RateSnapshot{Rates: rates, FetchedAt: c.clock.Now()}
	c.mu.Lock()
	c.entry = &snap
	c.mu.Unlock()

	c.metrics.RateCacheFetchedAt.Set(float64(snap.FetchedAt.Unix()))
	logrus.Debugf("Exchange rates refreshed, %d currencies", len(rates))
	return snap, nil
}

func (c *Cache) fallback() domain.RateSnapshot {
	return domain.RateSnapshot{
		Rates:     domain.FallbackRates(),
		FetchedAt: c.clock.Now(),
		Fallback:  true,
	}
}

// NewCache builds an empty cache. A non-positive ttl means DefaultTTL; a nil clock means the real clock.
func NewCache(client adapters.RateClient, ttl time.Duration, clock clockwork.Clock, m *metrics.Metrics) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Cache{client: client, ttl: ttl, clock: clock, metrics: m}
}
