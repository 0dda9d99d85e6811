// Package keygate holds the upstream API credential and decides whether
// premium-only sources may be queried.
package keygate

import "sync"

// FreeTierKey is the sentinel credential that grants free-tier access only.
const FreeTierKey = "123"

// Gate stores the API credential. The value is externally mutable via a
// settings surface, so callers must read it fresh on every request rather
// than caching it; tier can change between calls.
type Gate struct {
	mu  sync.RWMutex
	key string
}

// New constructs a Gate. An empty key falls back to the free-tier sentinel.
func New(key string) *Gate {
	if key == "" {
		key = FreeTierKey
	}
	return &Gate{key: key}
}

// Key returns the current credential.
func (g *Gate) Key() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.key
}

// SetKey replaces the credential. It deliberately triggers no refresh; the
// settings surface requests one explicitly after changing tiers.
func (g *Gate) SetKey(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.key = key
}

// ResetToFree restores the free-tier sentinel.
func (g *Gate) ResetToFree() {
	g.SetKey(FreeTierKey)
}

// IsPremium reports whether the credential unlocks premium-only sources.
func (g *Gate) IsPremium() bool {
	key := g.Key()
	return key != "" && key != FreeTierKey
}
