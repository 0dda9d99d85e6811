// Package scraper extracts live game fragments from the league's marketing
// site, the fallback source when the stats API has no live data.
package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"unrivaled-games-service/internal/domain"
	"unrivaled-games-service/internal/logging"
	"unrivaled-games-service/internal/timeutil"
)

// gameLinkSelector matches anchors whose target is a game detail page.
const gameLinkSelector = `a[href^="/game/"]`

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the scraper reaches the site.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Scraper fetches and parses the site's game fragments.
type Scraper struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
	now        func() time.Time
}

// ScrapedGame is one candidate fragment successfully parsed from the page.
// Team sides follow order of appearance in the fragment text.
type ScrapedGame struct {
	HomeTeam  string
	AwayTeam  string
	HomeScore int
	AwayScore int
	IsLive    bool
	IsFinal   bool
	GameURL   string
}

// New constructs a Scraper.
func New(cfg Config) *Scraper {
	httpClient := httpDoer(http.DefaultClient)
	if cfg.HTTPClient != nil {
		httpClient = cfg.HTTPClient
	}
	return &Scraper{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		logger:     cfg.Logger,
		now:        time.Now,
	}
}

// FetchGames downloads the site's landing page and parses its game fragments.
func (s *Scraper) FetchGames(ctx context.Context) ([]ScrapedGame, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scraper: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}
	return s.parseDocument(doc), nil
}

func (s *Scraper) parseDocument(doc *goquery.Document) []ScrapedGame {
	var games []ScrapedGame
	seen := make(map[string]struct{})

	doc.Find(gameLinkSelector).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		gameURL := s.baseURL + href
		if _, dup := seen[gameURL]; dup {
			return
		}

		text := strings.TrimSpace(sel.Text())
		game, ok := ParseGameText(text)
		if !ok {
			return
		}
		game.GameURL = gameURL
		seen[gameURL] = struct{}{}
		games = append(games, game)
	})

	return games
}

// ParseGameText parses a fragment such as "Live TNT/truTV Lunar Owls 17 Laces 28".
// A fragment is a candidate only when exactly two known team names appear in
// its text; zero, one, or three-plus matches mean the fragment is ambiguous
// or malformed and is discarded, not an error.
func ParseGameText(text string) (ScrapedGame, bool) {
	lower := strings.ToLower(text)

	type match struct {
		name  string
		score int
		pos   int
	}
	var found []match

	for _, name := range domain.ShortTeamNames() {
		idx := strings.Index(lower, strings.ToLower(name))
		if idx < 0 {
			continue
		}
		score, _ := extractFirstNumber(text[idx+len(name):])
		found = append(found, match{name: name, score: score, pos: idx})
	}

	if len(found) != 2 {
		return ScrapedGame{}, false
	}
	sort.Slice(found, func(i, j int) bool { return found[i].pos < found[j].pos })

	return ScrapedGame{
		HomeTeam:  found[0].name,
		AwayTeam:  found[1].name,
		HomeScore: found[0].score,
		AwayScore: found[1].score,
		IsLive:    strings.Contains(lower, "live"),
		IsFinal:   strings.Contains(lower, "final"),
	}, true
}

// extractFirstNumber returns the run of digits at the start of text, skipping
// leading whitespace. A missing number reports 0.
func extractFirstNumber(text string) (int, bool) {
	i := 0
	for i < len(text) && (text[i] == ' ' || text[i] == '\t' || text[i] == '\n') {
		i++
	}
	start := i
	value := 0
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		value = value*10 + int(text[i]-'0')
		i++
	}
	if i == start {
		return 0, false
	}
	return value, true
}

// LiveGames fetches and converts the currently-live scraped games into
// canonical records. Games whose team names do not resolve against the fixed
// table are dropped.
func (s *Scraper) LiveGames(ctx context.Context) ([]domain.Game, error) {
	scraped, err := s.FetchGames(ctx)
	if err != nil {
		return nil, err
	}

	live := scraped[:0]
	for _, g := range scraped {
		if g.IsLive {
			live = append(live, g)
		}
	}
	return s.Convert(live), nil
}

// Convert resolves scraped team names and builds canonical games. Scrape ids
// derive from the team pair plus the capture date so the same matchup keeps
// one identity across polling cycles within a day.
func (s *Scraper) Convert(scraped []ScrapedGame) []domain.Game {
	games := make([]domain.Game, 0, len(scraped))
	captured := s.now().UTC()

	for _, sg := range scraped {
		home, okHome := domain.TeamByName(sg.HomeTeam)
		away, okAway := domain.TeamByName(sg.AwayTeam)
		if !okHome || !okAway {
			logging.Warn(s.logger, "dropping scraped game with unknown team",
				slog.String(logging.FieldTeamID, sg.HomeTeam+"/"+sg.AwayTeam),
			)
			continue
		}

		status := domain.StatusScheduled
		progress := ""
		switch {
		case sg.IsLive:
			status = domain.StatusLive
			progress = "Live"
		case sg.IsFinal:
			status = domain.StatusCompleted
		}

		homeScore := sg.HomeScore
		awayScore := sg.AwayScore
		games = append(games, domain.Game{
			ID:           fmt.Sprintf("scraped-%s-%s-%s", home.ID, away.ID, timeutil.FormatDate(captured)),
			HomeTeam:     home,
			AwayTeam:     away,
			HomeScore:    &homeScore,
			AwayScore:    &awayScore,
			Date:         captured,
			HasValidTime: true,
			Status:       status,
			Progress:     progress,
		})
	}
	return games
}
