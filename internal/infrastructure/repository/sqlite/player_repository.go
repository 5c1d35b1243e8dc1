package sqlite

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fifa-roster/internal/domain/player"
	qb "github.com/riskibarqy/fifa-roster/internal/platform/querybuilder"
)

// Executor is the subset of the storage gateway the repository needs.
type Executor interface {
	Exec(ctx context.Context, stmt string, args ...any) (int64, error)
	ExecMany(ctx context.Context, stmt string, records [][]any) error
	Query(ctx context.Context, dest any, stmt string, args ...any) error
}

type PlayerRepository struct {
	db Executor
}

var playerSelectColumns = []string{
	"id",
	"firstName",
	"lastName",
	"nation",
	"club",
	"position",
	"overall",
}

func NewPlayerRepository(db Executor) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) InsertMany(ctx context.Context, players []player.Player) error {
	if len(players) == 0 {
		return nil
	}

	columns, err := qb.Columns(playerTableModel{})
	if err != nil {
		return fmt.Errorf("resolve player columns: %w", err)
	}
	stmt, err := qb.InsertInto(playerTable).
		Columns(columns...).
		Template()
	if err != nil {
		return fmt.Errorf("build insert players query: %w", err)
	}

	records := make([][]any, 0, len(players))
	for _, p := range players {
		_, values, err := qb.ColumnsAndValues(playerToTableModel(p))
		if err != nil {
			return fmt.Errorf("encode player id=%d: %w", p.ID, err)
		}
		records = append(records, values)
	}

	if err := r.db.ExecMany(ctx, stmt, records); err != nil {
		return fmt.Errorf("insert players: %w", err)
	}

	return nil
}

func (r *PlayerRepository) DeleteAll(ctx context.Context) error {
	query, args, err := qb.DeleteFrom(playerTable).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete all players query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("delete all players: %w", err)
	}

	return nil
}

func (r *PlayerRepository) UpdateByFirstName(ctx context.Context, firstName string, patch player.Patch) (int64, error) {
	query, args, err := qb.Update(playerTable).
		Set("overall", patch.Overall).
		Set("nation", patch.Nation).
		Set("position", patch.Position).
		Where(qb.Eq("firstName", firstName)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build update player query: %w", err)
	}

	affected, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update player first_name=%s: %w", firstName, err)
	}

	return affected, nil
}

func (r *PlayerRepository) DeleteMatching(ctx context.Context, filter player.Filter) (int64, error) {
	query, args, err := qb.DeleteFrom(playerTable).
		Where(
			qb.Gte("overall", filter.MinOverall),
			qb.Eq("nation", filter.Nation),
			qb.Eq("position", filter.Position),
			qb.Eq("firstName", filter.Name),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete players query: %w", err)
	}

	affected, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete players: %w", err)
	}

	return affected, nil
}

func (r *PlayerRepository) Search(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From(playerTable).
		Where(searchConditions(filter)...).
		OrderBy("overall DESC", "rowid ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build search players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.Query(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) Count(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(1)").From(playerTable).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count players query: %w", err)
	}

	var totals []int
	if err := r.db.Query(ctx, &totals, query, args...); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	if len(totals) == 0 {
		return 0, nil
	}

	return totals[0], nil
}

// searchConditions always bounds overall and adds one equality per
// constrained field, in name, position, nation order.
func searchConditions(filter player.Filter) []qb.Condition {
	conditions := []qb.Condition{qb.Gte("overall", filter.MinOverall)}
	if filter.HasName() {
		conditions = append(conditions, qb.Eq("firstName", filter.Name))
	}
	if filter.HasPosition() {
		conditions = append(conditions, qb.Eq("position", filter.Position))
	}
	if filter.HasNation() {
		conditions = append(conditions, qb.Eq("nation", filter.Nation))
	}
	return conditions
}
