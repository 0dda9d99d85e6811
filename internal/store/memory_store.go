// Package store keeps the aggregator's published game collection. The
// aggregator is the sole writer; readers get copies.
package store

import (
	"sync"

	"unrivaled-games-service/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of the published games and the
// live-only subset in memory. Publication order is preserved: Games returns
// the collection in the order SetGames received it.
type MemoryStore struct {
	mu    sync.RWMutex
	games map[string]domain.Game
	order []string
	live  []domain.Game
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: make(map[string]domain.Game),
	}
}

// Games returns a copy of the current games in publication order.
func (s *MemoryStore) Games() []domain.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Game, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.games[id])
	}
	return result
}

// Game retrieves a game by id.
func (s *MemoryStore) Game(id string) (domain.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	return g, ok
}

// SetGames replaces the published collection wholesale.
func (s *MemoryStore) SetGames(games []domain.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]domain.Game, len(games))
	s.order = make([]string, 0, len(games))
	for _, g := range games {
		if _, seen := s.games[g.ID]; !seen {
			s.order = append(s.order, g.ID)
		}
		s.games[g.ID] = g
	}
}

// PatchGames replaces games whose ids are already published. Unknown ids are
// ignored: the live poll loop only updates what an earlier load merged in.
func (s *MemoryStore) PatchGames(games []domain.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range games {
		if _, ok := s.games[g.ID]; ok {
			s.games[g.ID] = g
		}
	}
}

// Live returns a copy of the live subset.
func (s *MemoryStore) Live() []domain.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Game, len(s.live))
	copy(result, s.live)
	return result
}

// SetLive replaces the live subset wholesale.
func (s *MemoryStore) SetLive(games []domain.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.live = make([]domain.Game, len(games))
	copy(s.live, games)
}
