package snapshots

import (
	"encoding/json"
	"time"

	"unrivaled-games-service/internal/domain"
)

// snapshotGame is the on-disk game shape. It matches the canonical model but
// tolerates the historical format where team fields were bare name strings
// instead of structured objects; old widget data must stay readable.
type snapshotGame struct {
	ID           string            `json:"id"`
	HomeTeam     snapshotTeam      `json:"homeTeam"`
	AwayTeam     snapshotTeam      `json:"awayTeam"`
	HomeScore    *int              `json:"homeScore,omitempty"`
	AwayScore    *int              `json:"awayScore,omitempty"`
	Date         time.Time         `json:"date"`
	HasValidTime bool              `json:"hasValidTime"`
	Status       domain.GameStatus `json:"status"`
	Progress     string            `json:"progress,omitempty"`
}

type snapshotTeam struct {
	domain.Team
}

// UnmarshalJSON accepts either a structured team object or a bare name string.
// Bare names resolve through the fixed team table when possible.
func (t *snapshotTeam) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		if resolved, ok := domain.TeamByName(name); ok {
			t.Team = resolved
			return nil
		}
		t.Team = domain.Team{Name: name}
		return nil
	}

	var team domain.Team
	if err := json.Unmarshal(data, &team); err != nil {
		return err
	}
	t.Team = team
	return nil
}

func (t snapshotTeam) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Team)
}

func toSnapshotGame(g domain.Game) snapshotGame {
	return snapshotGame{
		ID:           g.ID,
		HomeTeam:     snapshotTeam{Team: g.HomeTeam},
		AwayTeam:     snapshotTeam{Team: g.AwayTeam},
		HomeScore:    g.HomeScore,
		AwayScore:    g.AwayScore,
		Date:         g.Date,
		HasValidTime: g.HasValidTime,
		Status:       g.Status,
		Progress:     g.Progress,
	}
}

func (g snapshotGame) toDomain() domain.Game {
	return domain.Game{
		ID:           g.ID,
		HomeTeam:     g.HomeTeam.Team,
		AwayTeam:     g.AwayTeam.Team,
		HomeScore:    g.HomeScore,
		AwayScore:    g.AwayScore,
		Date:         g.Date,
		HasValidTime: g.HasValidTime,
		Status:       g.Status,
		Progress:     g.Progress,
	}
}
