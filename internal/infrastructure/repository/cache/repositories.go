package cache

import (
	"context"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/riskibarqy/fifa-roster/internal/domain/player"
	basecache "github.com/riskibarqy/fifa-roster/internal/platform/cache"
)

const playerKeyPrefix = "roster:"

// PlayerRepository caches Search and Count in front of another repository.
// Every mutation bumps a generation that is part of each key, so a load that
// raced with a write can only populate a key nobody reads again.
type PlayerRepository struct {
	next       player.Repository
	cache      *basecache.Store
	generation atomic.Uint64
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) InsertMany(ctx context.Context, players []player.Player) error {
	defer r.invalidate(ctx)
	return r.next.InsertMany(ctx, players)
}

func (r *PlayerRepository) DeleteAll(ctx context.Context) error {
	defer r.invalidate(ctx)
	return r.next.DeleteAll(ctx)
}

func (r *PlayerRepository) UpdateByFirstName(ctx context.Context, firstName string, patch player.Patch) (int64, error) {
	defer r.invalidate(ctx)
	return r.next.UpdateByFirstName(ctx, firstName, patch)
}

func (r *PlayerRepository) DeleteMatching(ctx context.Context, filter player.Filter) (int64, error) {
	defer r.invalidate(ctx)
	return r.next.DeleteMatching(ctx, filter)
}

func (r *PlayerRepository) Search(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, r.key("search", searchKey(filter)), func(ctx context.Context) (any, error) {
		items, err := r.next.Search(ctx, filter)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) Count(ctx context.Context) (int, error) {
	v, err := r.cache.GetOrLoad(ctx, r.key("count"), func(ctx context.Context) (any, error) {
		return r.next.Count(ctx)
	})
	if err != nil {
		return 0, err
	}

	total, _ := v.(int)
	return total, nil
}

func (r *PlayerRepository) key(parts ...string) string {
	return playerKeyPrefix + strconv.FormatUint(r.generation.Load(), 10) + ":" + strings.Join(parts, ":")
}

func (r *PlayerRepository) invalidate(ctx context.Context) {
	r.generation.Add(1)
	r.cache.DeletePrefix(ctx, playerKeyPrefix)
}

func searchKey(filter player.Filter) string {
	return strings.Join([]string{
		strconv.Quote(filter.Name),
		strconv.Itoa(filter.MinOverall),
		strconv.Quote(filter.Position),
		strconv.Quote(filter.Nation),
	}, "|")
}
