// Package aggregator orchestrates concurrent fetches across the source
// adapters, reconciles them into one published game collection, and keeps the
// live subset fresh with a rolling polling loop.
package aggregator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"unrivaled-games-service/internal/cache"
	"unrivaled-games-service/internal/domain"
	"unrivaled-games-service/internal/keygate"
	"unrivaled-games-service/internal/logging"
	"unrivaled-games-service/internal/metrics"
	"unrivaled-games-service/internal/store"
)

const defaultLiveInterval = 30 * time.Second

// GameSource is the API adapter surface the aggregator consumes.
type GameSource interface {
	SeasonGames(ctx context.Context) ([]domain.Game, error)
	UpcomingGames(ctx context.Context) ([]domain.Game, error)
	RecentResults(ctx context.Context) ([]domain.Game, error)
	LiveGames(ctx context.Context) ([]domain.Game, error)
}

// LiveFallback is the scrape path used when the live feed has no data.
type LiveFallback interface {
	LiveGames(ctx context.Context) ([]domain.Game, error)
}

// SnapshotStore receives the widget's data slice after each successful load.
type SnapshotStore interface {
	SaveUpcoming(games []domain.Game) error
	SaveRecent(games []domain.Game) error
	SetFavoriteTeamID(id string) error
}

// recentSnapshotLimit bounds the results subset shared with the widget.
const recentSnapshotLimit = 5

// Config wires the aggregator's collaborators.
type Config struct {
	Source       GameSource
	Fallback     LiveFallback
	Gate         *keygate.Gate
	Cache        *cache.Cache
	Store        *store.MemoryStore
	Snapshots    SnapshotStore
	Logger       *slog.Logger
	Metrics      *metrics.Recorder
	LiveInterval time.Duration
}

// Aggregator owns the authoritative in-memory game collection. Fetches run
// concurrently but every write to the published collection goes through the
// aggregator's single writing path.
type Aggregator struct {
	source    GameSource
	fallback  LiveFallback
	gate      *keygate.Gate
	cache     *cache.Cache
	store     *store.MemoryStore
	snapshots SnapshotStore
	logger    *slog.Logger
	metrics   *metrics.Recorder
	interval  time.Duration
	now       func() time.Time

	publishMu sync.Mutex

	errMu     sync.RWMutex
	lastError string

	loopMu     sync.Mutex
	loopCancel context.CancelFunc
	loopDone   chan struct{}

	favMu      sync.RWMutex
	favoriteID string
}

// New constructs an Aggregator with sane defaults.
func New(cfg Config) *Aggregator {
	st := cfg.Store
	if st == nil {
		st = store.NewMemoryStore()
	}
	gate := cfg.Gate
	if gate == nil {
		gate = keygate.New("")
	}
	interval := cfg.LiveInterval
	if interval <= 0 {
		interval = defaultLiveInterval
	}
	return &Aggregator{
		source:    cfg.Source,
		fallback:  cfg.Fallback,
		gate:      gate,
		cache:     cfg.Cache,
		store:     st,
		snapshots: cfg.Snapshots,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
		interval:  interval,
		now:       time.Now,
	}
}

// Load fetches all slices concurrently, merges them by game id and publishes
// the result. A failure in any required fetch fails the whole call; the
// previously published collection stays visible.
func (a *Aggregator) Load(ctx context.Context) error {
	a.setLastError("")

	var season, upcoming, recent, live []domain.Game

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		season, err = a.source.SeasonGames(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		upcoming, err = a.source.UpcomingGames(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = a.source.RecentResults(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		live, err = a.liveWithFallback(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		msg := fmt.Sprintf("Failed to load games: %v", err)
		a.setLastError(msg)
		logging.Error(a.logger, "load failed", err)
		return fmt.Errorf("load games: %w", err)
	}

	merged := mergeByID(season, upcoming, recent, live)

	a.publishMu.Lock()
	a.store.SetGames(merged)
	a.store.SetLive(live)
	a.publishMu.Unlock()

	a.publishSnapshots()

	logging.Info(a.logger, "games loaded",
		slog.Int(logging.FieldCount, len(merged)),
		slog.Int("live_count", len(live)),
	)

	if len(live) > 0 {
		a.StartLiveUpdates()
	}
	return nil
}

// Refresh clears every cache TTL and re-runs Load.
func (a *Aggregator) Refresh(ctx context.Context) error {
	if a.cache != nil {
		a.cache.Clear()
	}
	return a.Load(ctx)
}

// liveWithFallback fetches the live feed, routing through the scrape path
// when the feed is empty while premium. Scrape failures downgrade to "no live
// data"; live coverage is best-effort and must never fail a load.
func (a *Aggregator) liveWithFallback(ctx context.Context) ([]domain.Game, error) {
	live, err := a.source.LiveGames(ctx)
	if err != nil {
		return nil, err
	}
	if len(live) > 0 || !a.gate.IsPremium() || a.fallback == nil {
		return live, nil
	}

	a.metrics.RecordScrapeFallback()
	scraped, err := a.fallback.LiveGames(ctx)
	if err != nil {
		logging.Warn(a.logger, "scrape fallback failed", logging.FieldError, err)
		return nil, nil
	}
	return scraped, nil
}

// mergeByID folds the slices into one mapping with fixed precedence: later
// slices overwrite earlier ones on id collision, so live data wins and season
// data provides the broad base.
func mergeByID(slices ...[]domain.Game) []domain.Game {
	byID := make(map[string]domain.Game)
	order := make([]string, 0)
	for _, slice := range slices {
		for _, g := range slice {
			if _, seen := byID[g.ID]; !seen {
				order = append(order, g.ID)
			}
			byID[g.ID] = g
		}
	}
	merged := make([]domain.Game, 0, len(byID))
	for _, id := range order {
		merged = append(merged, byID[id])
	}
	return merged
}

func (a *Aggregator) publishSnapshots() {
	if a.snapshots == nil {
		return
	}
	if err := a.snapshots.SaveUpcoming(a.Upcoming()); err != nil {
		logging.Error(a.logger, "upcoming snapshot write failed", err)
	}
	completed := a.Completed()
	if len(completed) > recentSnapshotLimit {
		completed = completed[:recentSnapshotLimit]
	}
	if err := a.snapshots.SaveRecent(completed); err != nil {
		logging.Error(a.logger, "recent snapshot write failed", err)
	}
}

// Games returns the published collection.
func (a *Aggregator) Games() []domain.Game {
	return a.store.Games()
}

// LiveGames returns the published live subset.
func (a *Aggregator) LiveGames() []domain.Game {
	return a.store.Live()
}

// LastError returns the latest user-facing load error, empty when the last
// attempt succeeded or is still running.
func (a *Aggregator) LastError() string {
	a.errMu.RLock()
	defer a.errMu.RUnlock()
	return a.lastError
}

func (a *Aggregator) setLastError(msg string) {
	a.errMu.Lock()
	a.lastError = msg
	a.errMu.Unlock()
}

// SetFavoriteTeam records the favorite team id (empty for none) and mirrors
// it to the widget snapshot store. It triggers no refresh.
func (a *Aggregator) SetFavoriteTeam(id string) {
	a.favMu.Lock()
	a.favoriteID = id
	a.favMu.Unlock()

	if a.snapshots != nil {
		if err := a.snapshots.SetFavoriteTeamID(id); err != nil {
			logging.Error(a.logger, "favorite team snapshot write failed", err)
		}
	}
}

// FavoriteTeamID returns the current favorite team id, empty when unset.
func (a *Aggregator) FavoriteTeamID() string {
	a.favMu.RLock()
	defer a.favMu.RUnlock()
	return a.favoriteID
}

// FavoriteTeam resolves the favorite team against the fixed table.
func (a *Aggregator) FavoriteTeam() (domain.Team, bool) {
	id := a.FavoriteTeamID()
	if id == "" {
		return domain.Team{}, false
	}
	return domain.TeamByID(id)
}
