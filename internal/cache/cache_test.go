package cache

import (
	"testing"
	"time"
)

func TestGetReturnsValueWithinTTL(t *testing.T) {
	now := time.Date(2026, 1, 17, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(func() time.Time { return now })

	c.Set("season", []string{"g1", "g2"}, 5*time.Minute)

	got, ok := c.Get("season")
	if !ok {
		t.Fatal("expected hit within TTL")
	}
	if games := got.([]string); len(games) != 2 {
		t.Fatalf("unexpected payload %v", games)
	}

	// Second read within TTL returns the same value.
	again, ok := c.Get("season")
	if !ok || again.([]string)[0] != "g1" {
		t.Fatal("expected identical hit on repeat read")
	}
}

func TestGetEvictsAtExpiry(t *testing.T) {
	now := time.Date(2026, 1, 17, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(func() time.Time { return now })

	c.Set("live", "payload", 30*time.Second)

	now = now.Add(30 * time.Second) // expiry instant itself counts as expired
	if _, ok := c.Get("live"); ok {
		t.Fatal("expected miss at expiry instant")
	}
	if c.Len() != 0 {
		t.Fatalf("expected lazy eviction to remove the entry, len=%d", c.Len())
	}
}

func TestMissOnUnknownKey(t *testing.T) {
	c := New()
	if _, ok := c.Get("nope"); ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestClearRemovesEverything(t *testing.T) {
	c := New()
	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)

	c.Clear()

	if c.Len() != 0 {
		t.Fatalf("expected empty cache, len=%d", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected miss after clear")
	}
}

func TestSetOverwritesEntry(t *testing.T) {
	now := time.Date(2026, 1, 17, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(func() time.Time { return now })

	c.Set("k", "old", time.Minute)
	c.Set("k", "new", time.Minute)

	got, ok := c.Get("k")
	if !ok || got.(string) != "new" {
		t.Fatalf("expected overwrite, got %v ok=%v", got, ok)
	}
}
