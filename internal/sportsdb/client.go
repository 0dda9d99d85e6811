// Package sportsdb adapts the stats API's v1 query endpoints and v2 livescore
// feed into the canonical game/team/standing models. Each slice consults the
// shared cache before issuing network I/O.
package sportsdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"unrivaled-games-service/internal/cache"
	"unrivaled-games-service/internal/domain"
	"unrivaled-games-service/internal/keygate"
	"unrivaled-games-service/internal/logging"
	"unrivaled-games-service/internal/metrics"
)

const (
	ttlSchedule = 5 * time.Minute
	ttlRoster   = time.Hour
	ttlLive     = 30 * time.Second

	leagueSlug = "Unrivaled_Basketball"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	V2BaseURL  string
	LeagueID   string
	Season     string
	HTTPClient *http.Client
	Cache      *cache.Cache
	Gate       *keygate.Gate
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Client fetches league data and maps it to domain models. The credential is
// read from the gate on every request; tier can change between calls.
type Client struct {
	baseURL    string
	v2BaseURL  string
	leagueID   string
	season     string
	httpClient httpDoer
	cache      *cache.Cache
	gate       *keygate.Gate
	logger     *slog.Logger
	metrics    *metrics.Recorder
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	httpClient := httpDoer(http.DefaultClient)
	if cfg.HTTPClient != nil {
		httpClient = cfg.HTTPClient
	}
	c := cfg.Cache
	if c == nil {
		c = cache.New()
	}
	gate := cfg.Gate
	if gate == nil {
		gate = keygate.New("")
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		v2BaseURL:  strings.TrimRight(cfg.V2BaseURL, "/"),
		leagueID:   cfg.LeagueID,
		season:     cfg.Season,
		httpClient: httpClient,
		cache:      c,
		gate:       gate,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		now:        time.Now,
	}
}

// SeasonGames fetches the full-season schedule slice.
func (c *Client) SeasonGames(ctx context.Context) ([]domain.Game, error) {
	key := fmt.Sprintf("season_%s", c.season)
	return c.cachedGames(ctx, SourceSeason, key, ttlSchedule, func(ctx context.Context) ([]domain.Game, error) {
		endpoint := c.v1URL("eventsseason.php", url.Values{"id": {c.leagueID}, "s": {c.season}})
		return c.fetchEvents(ctx, SourceSeason, endpoint)
	})
}

// UpcomingGames fetches the next scheduled games.
func (c *Client) UpcomingGames(ctx context.Context) ([]domain.Game, error) {
	return c.cachedGames(ctx, SourceUpcoming, SourceUpcoming, ttlSchedule, func(ctx context.Context) ([]domain.Game, error) {
		endpoint := c.v1URL("eventsnextleague.php", url.Values{"id": {c.leagueID}})
		return c.fetchEvents(ctx, SourceUpcoming, endpoint)
	})
}

// RecentResults fetches the most recent finished games.
func (c *Client) RecentResults(ctx context.Context) ([]domain.Game, error) {
	return c.cachedGames(ctx, SourceResults, SourceResults, ttlSchedule, func(ctx context.Context) ([]domain.Game, error) {
		endpoint := c.v1URL("eventspastleague.php", url.Values{"id": {c.leagueID}})
		return c.fetchEvents(ctx, SourceResults, endpoint)
	})
}

// Teams fetches the league roster, falling back to the fixed team table when
// the roster envelope is empty.
func (c *Client) Teams(ctx context.Context) ([]domain.Team, error) {
	if cached, ok := c.cache.Get(SourceTeams); ok {
		c.metrics.RecordCacheHit(SourceTeams)
		return cached.([]domain.Team), nil
	}
	c.metrics.RecordCacheMiss(SourceTeams)

	endpoint := c.v1URL("search_all_teams.php", url.Values{"l": {leagueSlug}})

	var payload teamsResponse
	if err := c.getJSON(ctx, SourceTeams, endpoint, nil, &payload); err != nil {
		return nil, err
	}

	teams := make([]domain.Team, 0, len(payload.Teams))
	for _, raw := range payload.Teams {
		if t, ok := mapTeam(raw); ok {
			teams = append(teams, t)
		}
	}
	if len(teams) == 0 {
		teams = append(teams, domain.AllTeams...)
	}

	c.cache.Set(SourceTeams, teams, ttlRoster)
	return teams, nil
}

// Standings fetches the league table. Deliberately uncached: standings change
// infrequently but must reflect current state on demand.
func (c *Client) Standings(ctx context.Context) ([]domain.Standing, error) {
	endpoint := c.v1URL("lookuptable.php", url.Values{"l": {c.leagueID}, "s": {c.season}})

	var payload tableResponse
	if err := c.getJSON(ctx, SourceStandings, endpoint, nil, &payload); err != nil {
		return nil, err
	}

	standings := make([]domain.Standing, 0, len(payload.Table))
	for _, raw := range payload.Table {
		if s, ok := mapStanding(raw); ok {
			standings = append(standings, s)
		}
	}
	return standings, nil
}

// LiveGames fetches the premium live feed. While not premium it returns empty
// without any network I/O.
func (c *Client) LiveGames(ctx context.Context) ([]domain.Game, error) {
	if !c.gate.IsPremium() {
		return nil, nil
	}

	return c.cachedGames(ctx, SourceLive, SourceLive, ttlLive, func(ctx context.Context) ([]domain.Game, error) {
		endpoint := fmt.Sprintf("%s/livescore/%s", c.v2BaseURL, c.leagueID)
		headers := map[string]string{"X-API-KEY": c.gate.Key()}

		var payload livescoreResponse
		if err := c.getJSON(ctx, SourceLive, endpoint, headers, &payload); err != nil {
			return nil, err
		}

		games := make([]domain.Game, 0, len(payload.Livescores))
		for _, raw := range payload.Livescores {
			if g, ok := mapLiveEvent(raw, c.now); ok {
				games = append(games, g)
			}
		}
		return games, nil
	})
}

func (c *Client) cachedGames(ctx context.Context, source, key string, ttl time.Duration, fetch func(context.Context) ([]domain.Game, error)) ([]domain.Game, error) {
	if cached, ok := c.cache.Get(key); ok {
		c.metrics.RecordCacheHit(source)
		return cached.([]domain.Game), nil
	}
	c.metrics.RecordCacheMiss(source)

	games, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, games, ttl)
	return games, nil
}

func (c *Client) fetchEvents(ctx context.Context, source, endpoint string) ([]domain.Game, error) {
	var payload eventsResponse
	if err := c.getJSON(ctx, source, endpoint, nil, &payload); err != nil {
		return nil, err
	}

	games := make([]domain.Game, 0, len(payload.Events))
	for _, raw := range payload.Events {
		g, ok := mapEvent(raw, c.now)
		if !ok {
			logging.Warn(c.logger, "skipping malformed event",
				slog.String(logging.FieldSource, source),
				slog.String(logging.FieldGameID, raw.IDEvent),
			)
			continue
		}
		games = append(games, g)
	}
	return games, nil
}

// v1 endpoints embed the credential in the path; it is resolved per request.
func (c *Client) v1URL(endpoint string, query url.Values) string {
	u := fmt.Sprintf("%s/%s/%s", c.baseURL, c.gate.Key(), endpoint)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) getJSON(ctx context.Context, source, endpoint string, headers map[string]string, out any) error {
	start := time.Now()
	err := c.doGetJSON(ctx, endpoint, headers, out)
	c.metrics.RecordSourceFetch(source, time.Since(start), err)
	if err != nil {
		logging.Error(c.logger, "source fetch failed", err, slog.String(logging.FieldSource, source))
		return err
	}
	logging.Info(c.logger, "source fetched",
		slog.String(logging.FieldSource, source),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return nil
}

func (c *Client) doGetJSON(ctx context.Context, endpoint string, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sportsdb: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
