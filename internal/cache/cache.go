// Package cache provides a small key/TTL store that shields upstream sources
// from redundant calls. Eviction is lazy: an expired entry is removed the
// first time a lookup finds it.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value  any
	expiry time.Time
}

// Cache is a TTL-bounded in-memory store. All access is serialized internally
// so the adapters' concurrent fetches can share one instance.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// New constructs an empty Cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// NewWithClock constructs a Cache with an injected clock for tests.
func NewWithClock(now func() time.Time) *Cache {
	c := New()
	if now != nil {
		c.now = now
	}
	return c
}

// Get returns the cached value for key, evicting and reporting a miss when the
// entry has reached its expiry.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !c.now().Before(e.expiry) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key until ttl elapses.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expiry: c.now().Add(ttl)}
}

// Clear removes every entry, forcing the next lookups through to the source.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len reports the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
