package keygate

import "testing"

func TestDefaultKeyIsFreeTier(t *testing.T) {
	g := New("")
	if g.Key() != FreeTierKey {
		t.Fatalf("expected sentinel key, got %q", g.Key())
	}
	if g.IsPremium() {
		t.Fatal("free tier must not report premium")
	}
}

func TestPremiumDetection(t *testing.T) {
	cases := []struct {
		key     string
		premium bool
	}{
		{FreeTierKey, false},
		{"", false},
		{"abc123premium", true},
		{"1234", true},
	}

	for _, tc := range cases {
		g := New("seed")
		g.SetKey(tc.key)
		// New("") normalizes to the sentinel; SetKey stores verbatim so an
		// explicitly emptied credential also reads as free tier.
		if got := g.IsPremium(); got != tc.premium {
			t.Fatalf("key %q: expected premium=%v, got %v", tc.key, tc.premium, got)
		}
	}
}

func TestResetToFree(t *testing.T) {
	g := New("premium-key")
	if !g.IsPremium() {
		t.Fatal("expected premium before reset")
	}
	g.ResetToFree()
	if g.IsPremium() {
		t.Fatal("expected free tier after reset")
	}
	if g.Key() != FreeTierKey {
		t.Fatalf("expected sentinel, got %q", g.Key())
	}
}
