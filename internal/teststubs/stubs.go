// Package teststubs provides stub collaborators for aggregator and loop tests.
package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"unrivaled-games-service/internal/domain"
)

// StubSource implements the aggregator's GameSource with canned data. The
// live slice can be scripted per call to drive polling-loop scenarios.
type StubSource struct {
	mu sync.Mutex

	Season   []domain.Game
	Upcoming []domain.Game
	Recent   []domain.Game
	Live     []domain.Game

	SeasonErr   error
	UpcomingErr error
	RecentErr   error
	LiveErr     error

	// LiveScript, when non-empty, is consumed one entry per LiveGames call
	// before falling back to Live.
	LiveScript [][]domain.Game

	SeasonCalls atomic.Int32
	LiveCalls   atomic.Int32

	// LiveNotify, when set, receives a signal after every LiveGames call.
	LiveNotify chan struct{}
}

func (s *StubSource) SeasonGames(ctx context.Context) ([]domain.Game, error) {
	s.SeasonCalls.Add(1)
	if s.SeasonErr != nil {
		return nil, s.SeasonErr
	}
	return s.Season, nil
}

func (s *StubSource) UpcomingGames(ctx context.Context) ([]domain.Game, error) {
	if s.UpcomingErr != nil {
		return nil, s.UpcomingErr
	}
	return s.Upcoming, nil
}

func (s *StubSource) RecentResults(ctx context.Context) ([]domain.Game, error) {
	if s.RecentErr != nil {
		return nil, s.RecentErr
	}
	return s.Recent, nil
}

func (s *StubSource) LiveGames(ctx context.Context) ([]domain.Game, error) {
	s.LiveCalls.Add(1)
	defer func() {
		if s.LiveNotify != nil {
			select {
			case s.LiveNotify <- struct{}{}:
			default:
			}
		}
	}()

	if s.LiveErr != nil {
		return nil, s.LiveErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.LiveScript) > 0 {
		next := s.LiveScript[0]
		s.LiveScript = s.LiveScript[1:]
		return next, nil
	}
	return s.Live, nil
}

// StubFallback implements the aggregator's LiveFallback.
type StubFallback struct {
	Games []domain.Game
	Err   error
	Calls atomic.Int32
}

func (f *StubFallback) LiveGames(ctx context.Context) ([]domain.Game, error) {
	f.Calls.Add(1)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Games, nil
}

// StubSnapshots records snapshot publications.
type StubSnapshots struct {
	mu sync.Mutex

	UpcomingSaves [][]domain.Game
	RecentSaves   [][]domain.Game
	FavoriteIDs   []string
}

func (s *StubSnapshots) SaveUpcoming(games []domain.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UpcomingSaves = append(s.UpcomingSaves, games)
	return nil
}

func (s *StubSnapshots) SaveRecent(games []domain.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.RecentSaves = append(s.RecentSaves, games)
	return nil
}

func (s *StubSnapshots) SetFavoriteTeamID(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FavoriteIDs = append(s.FavoriteIDs, id)
	return nil
}

// LastUpcoming returns the most recent upcoming publication.
func (s *StubSnapshots) LastUpcoming() []domain.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.UpcomingSaves) == 0 {
		return nil
	}
	return s.UpcomingSaves[len(s.UpcomingSaves)-1]
}

// LastRecent returns the most recent results publication.
func (s *StubSnapshots) LastRecent() []domain.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.RecentSaves) == 0 {
		return nil
	}
	return s.RecentSaves[len(s.RecentSaves)-1]
}
