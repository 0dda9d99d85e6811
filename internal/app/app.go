// Package app wires configuration, telemetry, the API client, the scrape
// fallback and the aggregator into a runnable process.
package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"unrivaled-games-service/internal/aggregator"
	"unrivaled-games-service/internal/cache"
	"unrivaled-games-service/internal/config"
	"unrivaled-games-service/internal/keygate"
	"unrivaled-games-service/internal/logging"
	"unrivaled-games-service/internal/metrics"
	"unrivaled-games-service/internal/scraper"
	"unrivaled-games-service/internal/snapshots"
	"unrivaled-games-service/internal/sportsdb"
	"unrivaled-games-service/internal/store"
)

const (
	httpRequestTimeout = 15 * time.Second
	shutdownTimeout    = 10 * time.Second
)

var metricsSetup = metrics.Setup

// App holds the assembled process.
type App struct {
	cfg        config.Config
	logger     *slog.Logger
	aggregator *aggregator.Aggregator
	client     *sportsdb.Client
	gate       *keygate.Gate

	metricsServer *http.Server
	metricsStop   func(context.Context) error
}

// New assembles the process from configuration.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	recorder, metricsHandler, metricsStop, err := metricsSetup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return nil, err
	}

	httpClient := newHTTPClient(logger)
	gate := keygate.New(cfg.SportsDB.APIKey)
	sharedCache := cache.New()

	client := sportsdb.NewClient(sportsdb.Config{
		BaseURL:    cfg.SportsDB.BaseURL,
		V2BaseURL:  cfg.SportsDB.V2BaseURL,
		LeagueID:   cfg.SportsDB.LeagueID,
		Season:     cfg.SportsDB.Season,
		HTTPClient: httpClient,
		Cache:      sharedCache,
		Gate:       gate,
		Logger:     logger,
		Metrics:    recorder,
	})

	scrape := scraper.New(scraper.Config{
		BaseURL:    cfg.ScrapeBaseURL,
		HTTPClient: httpClient,
		Logger:     logger,
	})

	agg := aggregator.New(aggregator.Config{
		Source:       client,
		Fallback:     scrape,
		Gate:         gate,
		Cache:        sharedCache,
		Store:        store.NewMemoryStore(),
		Snapshots:    snapshots.NewStore(cfg.SnapshotDir),
		Logger:       logger,
		Metrics:      recorder,
		LiveInterval: cfg.LiveInterval,
	})

	a := &App{
		cfg:         cfg,
		logger:      logger,
		aggregator:  agg,
		client:      client,
		gate:        gate,
		metricsStop: metricsStop,
	}
	if metricsHandler != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metricsHandler)
		a.metricsServer = &http.Server{
			Addr:    ":" + cfg.Metrics.Port,
			Handler: mux,
		}
	}
	return a, nil
}

// newHTTPClient builds the retrying HTTP client shared by the API client and
// the scraper.
func newHTTPClient(logger *slog.Logger) *http.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.Logger = nil
	rc.HTTPClient.Timeout = httpRequestTimeout
	if logger != nil {
		rc.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
			if attempt > 0 {
				logger.Debug("retrying request", slog.String("url", req.URL.String()), slog.Int("attempt", attempt))
			}
		}
	}
	return rc.StandardClient()
}

// Run loads the collection, starts live polling when applicable and blocks
// until the context is cancelled, then shuts everything down.
func (a *App) Run(ctx context.Context) error {
	a.startMetrics()

	if err := a.aggregator.Load(ctx); err != nil {
		// A failed initial load is survivable; the live loop and the next
		// refresh can still recover.
		logging.Error(a.logger, "initial load failed", err)
	} else {
		a.logSummary(ctx)
	}

	<-ctx.Done()
	logging.Info(a.logger, "shutdown signal received")
	a.shutdown()
	return nil
}

// Aggregator exposes the assembled aggregator, mainly for embedding callers.
func (a *App) Aggregator() *aggregator.Aggregator {
	return a.aggregator
}

func (a *App) startMetrics() {
	if a.metricsServer == nil {
		return
	}
	logging.Info(a.logger, "metrics server starting", slog.String("addr", a.metricsServer.Addr))
	go func() {
		if err := a.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error(a.logger, "metrics server failed", err)
		}
	}()
}

func (a *App) logSummary(ctx context.Context) {
	if next := a.aggregator.NextGame(); next != nil {
		logging.Info(a.logger, "next game",
			slog.String(logging.FieldGameID, next.ID),
			slog.String("matchup", next.HomeTeam.ShortName()+" vs "+next.AwayTeam.ShortName()),
			slog.String("date", next.DateDisplay()),
			slog.String("time", next.TimeDisplay()),
		)
	}
	if last := a.aggregator.LastResult(); last != nil {
		logging.Info(a.logger, "last result",
			slog.String(logging.FieldGameID, last.ID),
			slog.String("matchup", last.HomeTeam.ShortName()+" vs "+last.AwayTeam.ShortName()),
			slog.String("score", last.ScoreDisplay()),
		)
	}

	standings, err := a.client.Standings(ctx)
	if err != nil {
		logging.Warn(a.logger, "standings unavailable", logging.FieldError, err)
		return
	}
	for i, s := range standings {
		logging.Info(a.logger, "standing",
			slog.Int("rank", i+1),
			slog.String("team", s.TeamName),
			slog.Int("wins", s.Wins),
			slog.Int("losses", s.Losses),
			slog.Int("points", s.Points),
		)
	}
}

func (a *App) shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.aggregator.StopLiveUpdates()

	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(a.logger, "metrics server shutdown failed", logging.FieldError, err)
		}
	}
	if a.metricsStop != nil {
		if err := a.metricsStop(shutdownCtx); err != nil {
			logging.Warn(a.logger, "telemetry shutdown failed", logging.FieldError, err)
		}
	}

	logging.Info(a.logger, "shutdown complete")
}
