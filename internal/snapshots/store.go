// Package snapshots persists the widget's data slice: the upcoming games, a
// bounded set of recent results, and the favorite team id. The widget surface
// has no network access of its own and reads only these files.
package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"unrivaled-games-service/internal/domain"
)

const (
	upcomingFile = "upcoming.json"
	recentFile   = "recent.json"
	favoriteFile = "favorite_team.json"
)

// Store writes and reads widget snapshots rooted at a base path.
type Store struct {
	basePath string
	now      func() time.Time
}

// NewStore constructs a filesystem-backed snapshot store.
func NewStore(basePath string) *Store {
	return &Store{basePath: basePath, now: time.Now}
}

// BasePath exposes the store root (primarily for testing).
func (s *Store) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

type gamesSnapshot struct {
	SavedAt time.Time      `json:"savedAt"`
	Games   []snapshotGame `json:"games"`
}

type favoritePayload struct {
	TeamID string `json:"teamId"`
}

// SaveUpcoming persists the upcoming-games subset.
func (s *Store) SaveUpcoming(games []domain.Game) error {
	return s.writeGames(upcomingFile, games)
}

// LoadUpcoming reads the upcoming-games subset.
func (s *Store) LoadUpcoming() ([]domain.Game, error) {
	return s.readGames(upcomingFile)
}

// SaveRecent persists the recent-results subset.
func (s *Store) SaveRecent(games []domain.Game) error {
	return s.writeGames(recentFile, games)
}

// LoadRecent reads the recent-results subset.
func (s *Store) LoadRecent() ([]domain.Game, error) {
	return s.readGames(recentFile)
}

// SetFavoriteTeamID persists the favorite team id; empty clears it.
func (s *Store) SetFavoriteTeamID(id string) error {
	return s.writeFile(favoriteFile, favoritePayload{TeamID: id})
}

// FavoriteTeamID reads the stored favorite team id; a missing file means none.
func (s *Store) FavoriteTeamID() (string, error) {
	var payload favoritePayload
	if err := s.readFile(favoriteFile, &payload); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return payload.TeamID, nil
}

// LastUpdate reports when the upcoming snapshot was last written.
func (s *Store) LastUpdate() (time.Time, error) {
	var snap gamesSnapshot
	if err := s.readFile(upcomingFile, &snap); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}
	return snap.SavedAt, nil
}

func (s *Store) writeGames(name string, games []domain.Game) error {
	snap := gamesSnapshot{
		SavedAt: s.now().UTC(),
		Games:   make([]snapshotGame, 0, len(games)),
	}
	for _, g := range games {
		snap.Games = append(snap.Games, toSnapshotGame(g))
	}
	return s.writeFile(name, snap)
}

func (s *Store) readGames(name string) ([]domain.Game, error) {
	var snap gamesSnapshot
	if err := s.readFile(name, &snap); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	games := make([]domain.Game, 0, len(snap.Games))
	for _, g := range snap.Games {
		games = append(games, g.toDomain())
	}
	return games, nil
}

// writeFile writes atomically via a tmp file and skips the write when the
// content is unchanged, so widget readers never observe a partial file.
func (s *Store) writeFile(name string, payload any) error {
	if s == nil {
		return errors.New("snapshot store not configured")
	}
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return err
	}

	target := filepath.Join(s.basePath, name)
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

func (s *Store) readFile(name string, payload any) error {
	if s == nil {
		return errors.New("snapshot store not configured")
	}
	f, err := os.Open(filepath.Join(s.basePath, name))
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
