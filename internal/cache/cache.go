// Package cache provides the short-TTL observation cache used by the
// weather fetcher.
package cache

import (
	"sync"
	"time"

	"github.com/weathersay/weathersay/weather"
)

type entry struct {
	at  time.Time
	obs weather.Observation
}

// TTLCache is a concurrency-safe expiring map of observations. Unlike a
// plain write-and-forget map, it is bounded: when the entry count exceeds
// maxEntries, the oldest entries are evicted, and Sweep can be run
// periodically to drop expired entries from long-lived processes.
type TTLCache struct {
	mu sync.RWMutex

	ttl        time.Duration
	maxEntries int
	entries    map[string]entry
}

// DefaultMaxEntries bounds the cache when the caller does not.
const DefaultMaxEntries = 1024

// New creates a TTLCache. A ttl <= 0 disables caching entirely: Get always
// misses and Put is a no-op. maxEntries <= 0 falls back to DefaultMaxEntries.
func New(ttl time.Duration, maxEntries int) *TTLCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &TTLCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]entry),
	}
}

// Enabled reports whether caching is active.
func (c *TTLCache) Enabled() bool {
	return c.ttl > 0
}

// Get returns the cached observation for key if it is still fresh at now.
func (c *TTLCache) Get(key string, now time.Time) (weather.Observation, bool) {
	if !c.Enabled() {
		return weather.Observation{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || now.Sub(e.at) >= c.ttl {
		return weather.Observation{}, false
	}
	return e.obs, true
}

// Put stores or overwrites the observation for key, evicting the oldest
// entries when the size bound is exceeded.
func (c *TTLCache) Put(key string, obs weather.Observation, now time.Time) {
	if !c.Enabled() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{at: now, obs: obs}

	for len(c.entries) > c.maxEntries {
		var oldestKey string
		var oldestAt time.Time
		first := true
		for k, e := range c.entries {
			if first || e.at.Before(oldestAt) {
				oldestKey, oldestAt = k, e.at
				first = false
			}
		}
		delete(c.entries, oldestKey)
	}
}

// Sweep removes entries that have expired as of now and returns how many
// were dropped.
func (c *TTLCache) Sweep(now time.Time) int {
	if !c.Enabled() {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for k, e := range c.entries {
		if now.Sub(e.at) >= c.ttl {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Len returns the current number of entries.
func (c *TTLCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
