package store

import (
	"testing"

	"unrivaled-games-service/internal/domain"
)

func game(id string, status domain.GameStatus) domain.Game {
	return domain.Game{ID: id, Status: status}
}

func TestSetGamesReplacesCollection(t *testing.T) {
	s := NewMemoryStore()
	s.SetGames([]domain.Game{game("a", domain.StatusScheduled), game("b", domain.StatusScheduled)})

	if len(s.Games()) != 2 {
		t.Fatalf("expected 2 games, got %d", len(s.Games()))
	}

	s.SetGames([]domain.Game{game("c", domain.StatusScheduled)})
	games := s.Games()
	if len(games) != 1 || games[0].ID != "c" {
		t.Fatalf("expected wholesale replacement, got %+v", games)
	}
}

func TestGamesPreservePublicationOrder(t *testing.T) {
	s := NewMemoryStore()
	published := []domain.Game{
		game("c", domain.StatusScheduled),
		game("a", domain.StatusScheduled),
		game("b", domain.StatusScheduled),
		game("a", domain.StatusLive), // duplicate id keeps its first slot
	}
	s.SetGames(published)
	s.PatchGames([]domain.Game{game("b", domain.StatusLive)})

	want := []string{"c", "a", "b"}
	for i := 0; i < 3; i++ {
		games := s.Games()
		if len(games) != len(want) {
			t.Fatalf("expected %d games, got %+v", len(want), games)
		}
		for j, id := range want {
			if games[j].ID != id {
				t.Fatalf("read %d position %d: want %q, got %q", i, j, id, games[j].ID)
			}
		}
	}
	if g, _ := s.Game("a"); g.Status != domain.StatusLive {
		t.Fatalf("duplicate id must keep the later value, got %s", g.Status)
	}
}

func TestGameLookup(t *testing.T) {
	s := NewMemoryStore()
	s.SetGames([]domain.Game{game("a", domain.StatusLive)})

	g, ok := s.Game("a")
	if !ok || g.Status != domain.StatusLive {
		t.Fatalf("unexpected lookup result %+v ok=%v", g, ok)
	}
	if _, ok := s.Game("missing"); ok {
		t.Fatal("unexpected hit for missing id")
	}
}

func TestPatchGamesOnlyTouchesKnownIDs(t *testing.T) {
	s := NewMemoryStore()
	s.SetGames([]domain.Game{game("a", domain.StatusScheduled), game("b", domain.StatusScheduled)})

	s.PatchGames([]domain.Game{
		game("a", domain.StatusLive),
		game("ghost", domain.StatusLive),
	})

	if g, _ := s.Game("a"); g.Status != domain.StatusLive {
		t.Fatalf("expected patched status, got %s", g.Status)
	}
	if _, ok := s.Game("ghost"); ok {
		t.Fatal("patch must not insert unknown games")
	}
	if len(s.Games()) != 2 {
		t.Fatalf("expected stable collection size, got %d", len(s.Games()))
	}
}

func TestLiveSubsetReplacedWholesale(t *testing.T) {
	s := NewMemoryStore()
	s.SetLive([]domain.Game{game("a", domain.StatusLive), game("b", domain.StatusLive)})
	if len(s.Live()) != 2 {
		t.Fatalf("expected 2 live games, got %d", len(s.Live()))
	}

	s.SetLive(nil)
	if len(s.Live()) != 0 {
		t.Fatalf("expected empty live subset, got %d", len(s.Live()))
	}
}

func TestReadsReturnCopies(t *testing.T) {
	s := NewMemoryStore()
	s.SetLive([]domain.Game{game("a", domain.StatusLive)})

	live := s.Live()
	live[0].ID = "mutated"

	if fresh := s.Live(); fresh[0].ID != "a" {
		t.Fatal("reader mutation leaked into the store")
	}
}
