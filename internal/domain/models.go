package domain

import (
	"fmt"
	"strings"
	"time"
)

// GameStatus mirrors the shared contract for game lifecycle states.
type GameStatus string

const (
	StatusScheduled GameStatus = "scheduled"
	StatusLive      GameStatus = "live"
	StatusCompleted GameStatus = "completed"
)

// TeamSuffix is the fixed token stripped to build a team's short display name.
const TeamSuffix = " BC"

// Team represents the normalized team shape. Identity is the source-assigned id;
// two teams are the same team iff their ids match.
type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BadgeURL    string `json:"badgeUrl,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

// ShortName returns the display name without the league suffix.
func (t Team) ShortName() string {
	return strings.ReplaceAll(t.Name, TeamSuffix, "")
}

// Equal reports whether two teams share an identity.
func (t Team) Equal(other Team) bool {
	return t.ID == other.ID
}

// Game is the canonical game shape exposed by the service. Team values are
// embedded, not referenced. Scores are nil until a source reports them.
type Game struct {
	ID           string     `json:"id"`
	HomeTeam     Team       `json:"homeTeam"`
	AwayTeam     Team       `json:"awayTeam"`
	HomeScore    *int       `json:"homeScore,omitempty"`
	AwayScore    *int       `json:"awayScore,omitempty"`
	Date         time.Time  `json:"date"`
	HasValidTime bool       `json:"hasValidTime"`
	Status       GameStatus `json:"status"`
	ThumbURL     string     `json:"thumbUrl,omitempty"`
	Progress     string     `json:"progress,omitempty"`
}

// IsCompleted reports whether the game has finished.
func (g Game) IsCompleted() bool {
	return g.Status == StatusCompleted
}

// IsLive reports whether the game is in progress.
func (g Game) IsLive() bool {
	return g.Status == StatusLive
}

// ScoreDisplay renders "H - A", or "vs" while either score is unknown.
func (g Game) ScoreDisplay() string {
	if g.HomeScore == nil || g.AwayScore == nil {
		return "vs"
	}
	return fmt.Sprintf("%d - %d", *g.HomeScore, *g.AwayScore)
}

// Winner returns the winning team for a completed game. Ties and games still
// in flight have no winner.
func (g Game) Winner() *Team {
	if !g.IsCompleted() || g.HomeScore == nil || g.AwayScore == nil {
		return nil
	}
	switch {
	case *g.HomeScore > *g.AwayScore:
		home := g.HomeTeam
		return &home
	case *g.AwayScore > *g.HomeScore:
		away := g.AwayTeam
		return &away
	default:
		return nil
	}
}

// TimeDisplay renders the tip-off time, or "TBD" when no source supplied a
// usable time of day.
func (g Game) TimeDisplay() string {
	if !g.HasValidTime {
		return "TBD"
	}
	return g.Date.UTC().Format(time.Kitchen)
}

// DateDisplay renders the game date.
func (g Game) DateDisplay() string {
	return g.Date.UTC().Format("Mon, Jan 2")
}

// Involves reports whether the team id plays on either side.
func (g Game) Involves(teamID string) bool {
	return g.HomeTeam.ID == teamID || g.AwayTeam.ID == teamID
}

// Standing is a per-team league-table aggregate. Upstream encodes the numeric
// fields as strings; adapters parse them with an explicit zero fallback.
type Standing struct {
	TeamName string `json:"teamName"`
	Played   int    `json:"played"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Points   int    `json:"points"`
	BadgeURL string `json:"badgeUrl,omitempty"`
}
