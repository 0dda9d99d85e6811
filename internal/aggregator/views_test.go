package aggregator

import (
	"testing"
	"time"

	"unrivaled-games-service/internal/domain"
	"unrivaled-games-service/internal/teststubs"
)

func newViewAggregator(now time.Time, games []domain.Game) *Aggregator {
	a := New(Config{Source: &teststubs.StubSource{}})
	a.now = func() time.Time { return now }
	a.store.SetGames(games)
	return a
}

func TestUpcomingFiltersAndSorts(t *testing.T) {
	now := time.Date(2026, 1, 17, 15, 0, 0, 0, time.UTC)

	earlierToday := gameOn("today", now.Add(-3*time.Hour), domain.StatusScheduled)
	tomorrow := gameOn("tomorrow", now.Add(24*time.Hour), domain.StatusScheduled)
	nextWeek := gameOn("next-week", now.Add(7*24*time.Hour), domain.StatusScheduled)
	yesterday := gameOn("yesterday", now.Add(-24*time.Hour), domain.StatusScheduled)
	finished := scoredGame("finished", 80, 74, domain.StatusCompleted)
	finished.Date = now.Add(48 * time.Hour)
	inPlay := gameOn("in-play", now, domain.StatusLive)

	a := newViewAggregator(now, []domain.Game{nextWeek, finished, tomorrow, yesterday, inPlay, earlierToday})

	got := a.Upcoming()
	want := []string{"today", "tomorrow", "next-week"}
	if len(got) != len(want) {
		t.Fatalf("expected %d upcoming games, got %+v", len(want), got)
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: want %q, got %q", i, id, got[i].ID)
		}
	}
}

func TestCompletedSortsNewestFirst(t *testing.T) {
	now := time.Date(2026, 1, 17, 15, 0, 0, 0, time.UTC)

	old := scoredGame("old", 70, 65, domain.StatusCompleted)
	old.Date = now.Add(-5 * 24 * time.Hour)
	fresh := scoredGame("fresh", 90, 88, domain.StatusCompleted)
	fresh.Date = now.Add(-24 * time.Hour)
	pending := gameOn("pending", now.Add(24*time.Hour), domain.StatusScheduled)

	a := newViewAggregator(now, []domain.Game{old, pending, fresh})

	got := a.Completed()
	if len(got) != 2 || got[0].ID != "fresh" || got[1].ID != "old" {
		t.Fatalf("unexpected completed order %+v", got)
	}
}

func TestSortTiesBreakOnID(t *testing.T) {
	now := time.Date(2026, 1, 17, 15, 0, 0, 0, time.UTC)
	date := now.Add(24 * time.Hour)

	b := gameOn("b", date, domain.StatusScheduled)
	a1 := gameOn("a", date, domain.StatusScheduled)

	a := newViewAggregator(now, []domain.Game{b, a1})
	got := a.Upcoming()
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("same-instant games must order by id, got %+v", got)
	}
}

func TestFavoriteViews(t *testing.T) {
	now := time.Date(2026, 1, 17, 15, 0, 0, 0, time.UTC)
	rose, _ := domain.TeamByID("151481")
	mist, _ := domain.TeamByID("151962")
	laces, _ := domain.TeamByID("151477")

	roseGame := gameOn("rose-next", now.Add(24*time.Hour), domain.StatusScheduled)
	roseGame.HomeTeam = rose
	roseGame.AwayTeam = mist
	otherGame := gameOn("other-next", now.Add(2*time.Hour), domain.StatusScheduled)
	otherGame.HomeTeam = mist
	otherGame.AwayTeam = laces
	roseResult := scoredGame("rose-done", 77, 70, domain.StatusCompleted)
	roseResult.HomeTeam = laces
	roseResult.AwayTeam = rose
	roseResult.Date = now.Add(-24 * time.Hour)

	a := newViewAggregator(now, []domain.Game{roseGame, otherGame, roseResult})
	a.SetFavoriteTeam("151481")

	if got := a.FavoriteUpcoming(); len(got) != 1 || got[0].ID != "rose-next" {
		t.Fatalf("unexpected favorite upcoming %+v", got)
	}
	if got := a.FavoriteResults(); len(got) != 1 || got[0].ID != "rose-done" {
		t.Fatalf("unexpected favorite results %+v", got)
	}
	if next := a.NextFavoriteGame(); next == nil || next.ID != "rose-next" {
		t.Fatalf("unexpected next favorite game %+v", next)
	}

	// Without a favorite the filtered views match the full views.
	a.SetFavoriteTeam("")
	if got := a.FavoriteUpcoming(); len(got) != 2 || got[0].ID != "other-next" {
		t.Fatalf("unset favorite must return all upcoming, got %+v", got)
	}
	if next := a.NextFavoriteGame(); next == nil || next.ID != "other-next" {
		t.Fatalf("unset favorite must fall back to overall next game, got %+v", next)
	}
}

func TestNextGameAndLastResult(t *testing.T) {
	now := time.Date(2026, 1, 17, 15, 0, 0, 0, time.UTC)

	a := newViewAggregator(now, nil)
	if a.NextGame() != nil || a.LastResult() != nil {
		t.Fatal("empty collection must yield nil next game and last result")
	}

	soon := gameOn("soon", now.Add(time.Hour), domain.StatusScheduled)
	later := gameOn("later", now.Add(48*time.Hour), domain.StatusScheduled)
	done := scoredGame("done", 85, 80, domain.StatusCompleted)
	done.Date = now.Add(-time.Hour)

	a = newViewAggregator(now, []domain.Game{later, done, soon})
	if next := a.NextGame(); next == nil || next.ID != "soon" {
		t.Fatalf("unexpected next game %+v", next)
	}
	if last := a.LastResult(); last == nil || last.ID != "done" {
		t.Fatalf("unexpected last result %+v", last)
	}
}
