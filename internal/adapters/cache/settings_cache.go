package cache

import (
	"fintrack/internal/domain"
	"fmt"

	"github.com/dgraph-io/ristretto"
)

type RistrettoSettingsCache struct {
	cache *ristretto.Cache
}

func NewSettingsCache(maxItems int64) (*RistrettoSettingsCache, error) {
	if maxItems <= 0 {
		maxItems = 1024
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create settings cache failed: %w", err)
	}
	return &RistrettoSettingsCache{cache: c}, nil
}

func (c *RistrettoSettingsCache) Get(userID string) (domain.UserSettings, bool) {
	if v, ok := c.cache.Get(toKey(userID)); ok {
		s, ok := v.(domain.UserSettings)
		return s, ok
	}
	return domain.UserSettings{}, false
}

// Set is asynchronous; a Get right after may still miss.
func (c *RistrettoSettingsCache) Set(userID string, settings domain.UserSettings) {
	c.cache.Set(toKey(userID), settings, 1)
}

func (c *RistrettoSettingsCache) Del(userID string) {
	c.cache.Del(toKey(userID))
}

func (c *RistrettoSettingsCache) Close() { c.cache.Close() }

func toKey(userID string) string { return "settings:" + userID }
