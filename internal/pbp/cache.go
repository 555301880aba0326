package pbp

import (
	"time"
)

// Cache holds extracted margin series for a bounded time window, keyed by
// (URL, team-label-pair). It is a performance convenience only: within an
// entry's validity period the cached series is identical to a fresh fetch.
type Cache struct {
	series   map[string][]MarginPoint
	cachedAt map[string]time.Time
	ttl      time.Duration
}

// NewCache creates an empty cache with the given TTL
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		series:   make(map[string][]MarginPoint),
		cachedAt: make(map[string]time.Time),
		ttl:      ttl,
	}
}

// Get retrieves a cached series if present and not expired. An expired entry
// is removed and reported as a miss.
func (c *Cache) Get(key string) ([]MarginPoint, bool) {
	points, exists := c.series[key]
	if !exists {
		return nil, false
	}

	cachedTime, hasTime := c.cachedAt[key]
	if !hasTime || time.Since(cachedTime) > c.ttl {
		delete(c.series, key)
		delete(c.cachedAt, key)
		return nil, false
	}

	return points, true
}

// Set stores a series under the given key
func (c *Cache) Set(key string, points []MarginPoint) {
	c.series[key] = points
	c.cachedAt[key] = time.Now()
}

// CleanExpired removes expired entries and returns how many were removed
func (c *Cache) CleanExpired() int {
	removed := 0
	now := time.Now()

	for key, cachedTime := range c.cachedAt {
		if now.Sub(cachedTime) > c.ttl {
			delete(c.series, key)
			delete(c.cachedAt, key)
			removed++
		}
	}

	return removed
}

// Size returns the number of cached entries
func (c *Cache) Size() int {
	return len(c.series)
}

// cacheKey builds the cache key from the inputs that determine the output
func cacheKey(url, team1, team2 string) string {
	return url + "|" + team1 + "|" + team2
}
