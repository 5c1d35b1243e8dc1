package player

import (
	"context"
	"errors"
)

// ErrStorage marks every failure a Repository reports from its backing store.
var ErrStorage = errors.New("storage operation failed")

// Repository describes roster persistence needs from use cases.
type Repository interface {
	InsertMany(ctx context.Context, players []Player) error
	DeleteAll(ctx context.Context) error
	// UpdateByFirstName patches every row whose first name equals firstName
	// and returns the number of rows touched.
	UpdateByFirstName(ctx context.Context, firstName string, patch Patch) (int64, error)
	// DeleteMatching removes rows for which filter.MatchesExactly holds.
	DeleteMatching(ctx context.Context, filter Filter) (int64, error)
	// Search returns rows for which filter.Matches holds, highest overall first.
	Search(ctx context.Context, filter Filter) ([]Player, error)
	Count(ctx context.Context) (int, error)
}
