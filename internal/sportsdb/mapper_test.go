package sportsdb

import (
	"testing"
	"time"

	"unrivaled-games-service/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2026, 1, 17, 23, 0, 0, 0, time.UTC)
}

func TestMapEventTransformsFields(t *testing.T) {
	e := apiEvent{
		IDEvent:          "2070576",
		StrEvent:         "Rose BC vs Mist BC",
		StrHomeTeam:      "Rose BC",
		StrAwayTeam:      "Mist BC",
		IntHomeScore:     "84",
		IntAwayScore:     "79",
		DateEvent:        "2026-01-17",
		StrTime:          "19:30:00",
		IDHomeTeam:       "151481",
		IDAwayTeam:       "151962",
		StrHomeTeamBadge: "https://example.com/rose.png",
		StrAwayTeamBadge: "https://example.com/mist.png",
		StrThumb:         "https://example.com/thumb.jpg",
	}

	g, ok := mapEvent(e, fixedNow)
	if !ok {
		t.Fatal("expected a usable record")
	}
	if g.ID != "2070576" {
		t.Fatalf("unexpected id %q", g.ID)
	}
	if g.HomeTeam.ID != "151481" || g.AwayTeam.ID != "151962" {
		t.Fatalf("unexpected team ids %q/%q", g.HomeTeam.ID, g.AwayTeam.ID)
	}
	if g.HomeScore == nil || *g.HomeScore != 84 || g.AwayScore == nil || *g.AwayScore != 79 {
		t.Fatalf("unexpected scores %v/%v", g.HomeScore, g.AwayScore)
	}
	want := time.Date(2026, 1, 17, 19, 30, 0, 0, time.UTC)
	if !g.Date.Equal(want) || !g.HasValidTime {
		t.Fatalf("unexpected kickoff %v valid=%v", g.Date, g.HasValidTime)
	}
	// Both scores present and no status token: completion is inferred.
	if g.Status != domain.StatusCompleted {
		t.Fatalf("expected completed, got %s", g.Status)
	}
	if g.ThumbURL != "https://example.com/thumb.jpg" {
		t.Fatalf("unexpected thumb %q", g.ThumbURL)
	}
}

func TestMapEventSkipsMalformedRecords(t *testing.T) {
	cases := []struct {
		name string
		e    apiEvent
	}{
		{"missing id", apiEvent{StrHomeTeam: "Rose BC", StrAwayTeam: "Mist BC"}},
		{"missing home team", apiEvent{IDEvent: "1", StrAwayTeam: "Mist BC"}},
		{"missing away team", apiEvent{IDEvent: "1", StrHomeTeam: "Rose BC"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := mapEvent(tc.e, fixedNow); ok {
				t.Fatal("expected record to be dropped")
			}
		})
	}
}

func TestMapEventUnparseableScoresStayNil(t *testing.T) {
	e := apiEvent{
		IDEvent:      "1",
		StrHomeTeam:  "Rose BC",
		StrAwayTeam:  "Mist BC",
		IntHomeScore: "n/a",
		IntAwayScore: "",
		DateEvent:    "2026-01-17",
	}
	g, ok := mapEvent(e, fixedNow)
	if !ok {
		t.Fatal("record with bad scores is still usable")
	}
	if g.HomeScore != nil || g.AwayScore != nil {
		t.Fatalf("expected nil scores, got %v/%v", g.HomeScore, g.AwayScore)
	}
	if g.Status != domain.StatusScheduled {
		t.Fatalf("expected scheduled, got %s", g.Status)
	}
	if g.HasValidTime {
		t.Fatal("date-only record must not claim a valid time")
	}
}

func TestMapLiveEventImpliesNowAndLiveStatus(t *testing.T) {
	e := apiEvent{
		IDEvent:      "77",
		StrHomeTeam:  "Lunar Owls BC",
		StrAwayTeam:  "Laces BC",
		IntHomeScore: "17",
		IntAwayScore: "28",
		StrProgress:  "Q2 4:18",
	}

	g, ok := mapLiveEvent(e, fixedNow)
	if !ok {
		t.Fatal("expected a usable live record")
	}
	if !g.Date.Equal(fixedNow()) || !g.HasValidTime {
		t.Fatalf("live record should carry the capture instant, got %v valid=%v", g.Date, g.HasValidTime)
	}
	// Score-presence inference would say completed; the live feed knows better.
	if g.Status != domain.StatusLive {
		t.Fatalf("expected live, got %s", g.Status)
	}
	if g.Progress != "Q2 4:18" {
		t.Fatalf("unexpected progress %q", g.Progress)
	}
}

func TestMapLiveEventHonorsExplicitStatus(t *testing.T) {
	e := apiEvent{
		IDEvent:     "78",
		StrHomeTeam: "Hive BC",
		StrAwayTeam: "Breeze BC",
		StrStatus:   "Q3",
	}
	g, ok := mapLiveEvent(e, fixedNow)
	if !ok {
		t.Fatal("expected a usable live record")
	}
	if g.Status != domain.StatusLive {
		t.Fatalf("expected live, got %s", g.Status)
	}
}

func TestMapTeam(t *testing.T) {
	team, ok := mapTeam(apiTeam{
		IDTeam:           "151481",
		StrTeam:          "Rose BC",
		StrTeamBadge:     "badge.png",
		StrTeamLogo:      "logo.png",
		StrDescriptionEN: "Founded 2025.",
	})
	if !ok {
		t.Fatal("expected a usable team")
	}
	if team.ID != "151481" || team.Name != "Rose BC" || team.LogoURL != "logo.png" {
		t.Fatalf("unexpected team %+v", team)
	}

	if _, ok := mapTeam(apiTeam{StrTeam: "No ID"}); ok {
		t.Fatal("team without id must be dropped")
	}
}

func TestMapStandingDefaultsBadNumbersToZero(t *testing.T) {
	s, ok := mapStanding(apiStanding{
		StrTeam:   "Rose BC",
		IntPlayed: "14",
		IntWin:    "ten",
		IntLoss:   "",
		IntPoints: "28",
	})
	if !ok {
		t.Fatal("expected a usable standing")
	}
	if s.Played != 14 || s.Wins != 0 || s.Losses != 0 || s.Points != 28 {
		t.Fatalf("unexpected standing %+v", s)
	}

	if _, ok := mapStanding(apiStanding{}); ok {
		t.Fatal("standing without a team name must be dropped")
	}
}
