package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/fifa-roster/internal/domain/player"
)

// PlayerRepository keeps the roster in insertion order, mirroring SQLite rowid order.
type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	return &PlayerRepository{
		players: append([]player.Player(nil), players...),
	}
}

func (r *PlayerRepository) InsertMany(_ context.Context, players []player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.players = append(r.players, players...)
	return nil
}

func (r *PlayerRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.players = nil
	return nil
}

func (r *PlayerRepository) UpdateByFirstName(_ context.Context, firstName string, patch player.Patch) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var affected int64
	for i, p := range r.players {
		if p.FirstName != firstName {
			continue
		}
		r.players[i] = patch.Apply(p)
		affected++
	}

	return affected, nil
}

func (r *PlayerRepository) DeleteMatching(_ context.Context, filter player.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.players[:0]
	var affected int64
	for _, p := range r.players {
		if filter.MatchesExactly(p) {
			affected++
			continue
		}
		kept = append(kept, p)
	}
	r.players = kept

	return affected, nil
}

func (r *PlayerRepository) Search(_ context.Context, filter player.Filter) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	for _, p := range r.players {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b player.Player) int {
		return b.Overall - a.Overall
	})

	return out, nil
}

func (r *PlayerRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.players), nil
}
