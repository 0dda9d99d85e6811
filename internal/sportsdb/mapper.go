package sportsdb

import (
	"strconv"
	"strings"
	"time"

	"unrivaled-games-service/internal/domain"
	"unrivaled-games-service/internal/normalize"
)

// mapEvent turns one upstream event record into a canonical game. A record
// missing its id or either team name is unusable and reported as not ok; one
// bad record must never fail the batch.
func mapEvent(e apiEvent, now func() time.Time) (domain.Game, bool) {
	if e.IDEvent == "" || e.StrHomeTeam == "" || e.StrAwayTeam == "" {
		return domain.Game{}, false
	}

	homeScore := parseScore(e.IntHomeScore)
	awayScore := parseScore(e.IntAwayScore)
	kickoff := normalize.NormalizeKickoff(e.DateEvent, e.StrTime, e.StrTimestamp, now)

	return domain.Game{
		ID: e.IDEvent,
		HomeTeam: domain.Team{
			ID:       e.IDHomeTeam,
			Name:     e.StrHomeTeam,
			BadgeURL: e.StrHomeTeamBadge,
		},
		AwayTeam: domain.Team{
			ID:       e.IDAwayTeam,
			Name:     e.StrAwayTeam,
			BadgeURL: e.StrAwayTeamBadge,
		},
		HomeScore:    homeScore,
		AwayScore:    awayScore,
		Date:         kickoff.Time,
		HasValidTime: kickoff.HasValidTime,
		Status:       normalize.InferStatus(e.StrStatus, homeScore, awayScore),
		ThumbURL:     e.StrThumb,
	}, true
}

// mapLiveEvent maps a live-feed record. The feed carries no date since "now"
// is implied, and a record on the feed is underway unless its status token
// says the game has ended; score-presence inference does not apply here
// because live games always carry a running score.
func mapLiveEvent(e apiEvent, now func() time.Time) (domain.Game, bool) {
	game, ok := mapEvent(e, now)
	if !ok {
		return domain.Game{}, false
	}

	if e.DateEvent == "" && e.StrTimestamp == "" {
		game.Date = now().UTC()
		game.HasValidTime = true
	}
	if normalize.InferStatus(e.StrStatus, nil, nil) == domain.StatusCompleted {
		game.Status = domain.StatusCompleted
	} else {
		game.Status = domain.StatusLive
	}
	game.Progress = strings.TrimSpace(e.StrProgress)
	return game, true
}

func mapTeam(t apiTeam) (domain.Team, bool) {
	if t.IDTeam == "" || t.StrTeam == "" {
		return domain.Team{}, false
	}
	return domain.Team{
		ID:          t.IDTeam,
		Name:        t.StrTeam,
		BadgeURL:    t.StrTeamBadge,
		LogoURL:     t.StrTeamLogo,
		Description: t.StrDescriptionEN,
	}, true
}

func mapStanding(s apiStanding) (domain.Standing, bool) {
	if s.StrTeam == "" {
		return domain.Standing{}, false
	}
	return domain.Standing{
		TeamName: s.StrTeam,
		Played:   parseCount(s.IntPlayed),
		Wins:     parseCount(s.IntWin),
		Losses:   parseCount(s.IntLoss),
		Points:   parseCount(s.IntPoints),
		BadgeURL: s.StrTeamBadge,
	}, true
}

// parseScore returns nil for an absent or unparseable score rather than a
// phantom zero; "0 - 0" and "no score yet" are different states.
func parseScore(raw string) *int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil
	}
	return &v
}

// parseCount defaults string-typed table numbers to zero on parse failure.
func parseCount(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return v
}
