package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"unrivaled-games-service/internal/config"
	"unrivaled-games-service/internal/metrics"
)

func testConfig(t *testing.T, baseURL string) config.Config {
	t.Helper()
	return config.Config{
		LiveInterval:  time.Second,
		SnapshotDir:   t.TempDir(),
		ScrapeBaseURL: baseURL,
		SportsDB: config.SportsDBConfig{
			BaseURL:   baseURL,
			V2BaseURL: baseURL,
			LeagueID:  "5622",
			Season:    "2026",
		},
		Metrics: config.MetricsConfig{Port: "9090"},
	}
}

func emptyUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"events":null}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewSkipsMetricsServerWhenDisabled(t *testing.T) {
	srv := emptyUpstream(t)

	a, err := New(context.Background(), testConfig(t, srv.URL), nil)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if a.metricsServer != nil {
		t.Fatal("disabled metrics must not build a server")
	}
}

func TestNewMountsMetricsHandlerWhenEnabled(t *testing.T) {
	orig := metricsSetup
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return metrics.NewRecorder(), http.NotFoundHandler(), func(context.Context) error { return nil }, nil
	}
	defer func() { metricsSetup = orig }()

	srv := emptyUpstream(t)
	cfg := testConfig(t, srv.URL)
	cfg.Metrics.Enabled = true

	a, err := New(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if a.metricsServer == nil {
		t.Fatal("enabled metrics must build a server")
	}
	if a.metricsServer.Addr != ":9090" {
		t.Fatalf("unexpected metrics addr %q", a.metricsServer.Addr)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	srv := emptyUpstream(t)

	a, err := New(context.Background(), testConfig(t, srv.URL), nil)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop on cancel")
	}
}
