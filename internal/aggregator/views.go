package aggregator

import (
	"sort"

	"unrivaled-games-service/internal/domain"
	"unrivaled-games-service/internal/timeutil"
)

// Upcoming returns games that are neither completed nor live, from today
// onward, in ascending date order.
func (a *Aggregator) Upcoming() []domain.Game {
	startOfToday := timeutil.StartOfDay(a.now())

	var upcoming []domain.Game
	for _, g := range a.store.Games() {
		if g.IsCompleted() || g.IsLive() {
			continue
		}
		if g.Date.Before(startOfToday) {
			continue
		}
		upcoming = append(upcoming, g)
	}
	sortByDate(upcoming, true)
	return upcoming
}

// Completed returns finished games in descending date order.
func (a *Aggregator) Completed() []domain.Game {
	var completed []domain.Game
	for _, g := range a.store.Games() {
		if g.IsCompleted() {
			completed = append(completed, g)
		}
	}
	sortByDate(completed, false)
	return completed
}

// FavoriteUpcoming filters Upcoming to the favorite team; without a favorite
// it returns the full upcoming view.
func (a *Aggregator) FavoriteUpcoming() []domain.Game {
	return filterByTeam(a.Upcoming(), a.FavoriteTeamID())
}

// FavoriteResults filters Completed to the favorite team; without a favorite
// it returns the full completed view.
func (a *Aggregator) FavoriteResults() []domain.Game {
	return filterByTeam(a.Completed(), a.FavoriteTeamID())
}

// NextGame returns the earliest upcoming game, nil when none.
func (a *Aggregator) NextGame() *domain.Game {
	return first(a.Upcoming())
}

// NextFavoriteGame returns the earliest upcoming game for the favorite team,
// falling back to the overall next game when no favorite is set.
func (a *Aggregator) NextFavoriteGame() *domain.Game {
	return first(a.FavoriteUpcoming())
}

// LastResult returns the most recent completed game, nil when none.
func (a *Aggregator) LastResult() *domain.Game {
	return first(a.Completed())
}

func filterByTeam(games []domain.Game, teamID string) []domain.Game {
	if teamID == "" {
		return games
	}
	var filtered []domain.Game
	for _, g := range games {
		if g.Involves(teamID) {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

func first(games []domain.Game) *domain.Game {
	if len(games) == 0 {
		return nil
	}
	g := games[0]
	return &g
}

// sortByDate orders games by kickoff, with the id as a deterministic
// tiebreaker for games on the same instant.
func sortByDate(games []domain.Game, ascending bool) {
	sort.Slice(games, func(i, j int) bool {
		if games[i].Date.Equal(games[j].Date) {
			return games[i].ID < games[j].ID
		}
		if ascending {
			return games[i].Date.Before(games[j].Date)
		}
		return games[i].Date.After(games[j].Date)
	})
}
