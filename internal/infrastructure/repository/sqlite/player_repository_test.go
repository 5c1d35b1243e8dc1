package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fifa-roster/internal/domain/player"
	"github.com/riskibarqy/fifa-roster/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fifa-roster/internal/infrastructure/storage"
	"github.com/riskibarqy/fifa-roster/internal/platform/logging"
)

type recordedCall struct {
	stmt    string
	args    []any
	records [][]any
}

type recordingExecutor struct {
	calls    []recordedCall
	affected int64
	err      error
}

func (e *recordingExecutor) Exec(_ context.Context, stmt string, args ...any) (int64, error) {
	e.calls = append(e.calls, recordedCall{stmt: stmt, args: args})
	return e.affected, e.err
}

func (e *recordingExecutor) ExecMany(_ context.Context, stmt string, records [][]any) error {
	e.calls = append(e.calls, recordedCall{stmt: stmt, records: records})
	return e.err
}

func (e *recordingExecutor) Query(_ context.Context, _ any, stmt string, args ...any) error {
	e.calls = append(e.calls, recordedCall{stmt: stmt, args: args})
	return e.err
}

const selectPlayers = "SELECT id, firstName, lastName, nation, club, position, overall FROM tblPlayers"

func TestPlayerRepository_SearchStatements(t *testing.T) {
	tests := []struct {
		name     string
		filter   player.Filter
		wantStmt string
		wantArgs []any
	}{
		{
			name:     "threshold only",
			filter:   player.NewFilter("", 30, "", player.AnyNation),
			wantStmt: selectPlayers + " WHERE overall >= ? ORDER BY overall DESC, rowid ASC",
			wantArgs: []any{30},
		},
		{
			name:     "name",
			filter:   player.NewFilter("Lionel", 30, "", player.AnyNation),
			wantStmt: selectPlayers + " WHERE overall >= ? AND firstName = ? ORDER BY overall DESC, rowid ASC",
			wantArgs: []any{30, "Lionel"},
		},
		{
			name:     "position",
			filter:   player.NewFilter("", 80, "ST", player.AnyNation),
			wantStmt: selectPlayers + " WHERE overall >= ? AND position = ? ORDER BY overall DESC, rowid ASC",
			wantArgs: []any{80, "ST"},
		},
		{
			name:     "nation",
			filter:   player.NewFilter("", 80, "", "Iran"),
			wantStmt: selectPlayers + " WHERE overall >= ? AND nation = ? ORDER BY overall DESC, rowid ASC",
			wantArgs: []any{80, "Iran"},
		},
		{
			name:     "name and position",
			filter:   player.NewFilter("Lionel", 30, "RW", player.AnyNation),
			wantStmt: selectPlayers + " WHERE overall >= ? AND firstName = ? AND position = ? ORDER BY overall DESC, rowid ASC",
			wantArgs: []any{30, "Lionel", "RW"},
		},
		{
			name:     "name and nation",
			filter:   player.NewFilter("Lionel", 30, "", "Argentine"),
			wantStmt: selectPlayers + " WHERE overall >= ? AND firstName = ? AND nation = ? ORDER BY overall DESC, rowid ASC",
			wantArgs: []any{30, "Lionel", "Argentine"},
		},
		{
			name:     "position and nation",
			filter:   player.NewFilter("", 85, "GK", "Iran"),
			wantStmt: selectPlayers + " WHERE overall >= ? AND position = ? AND nation = ? ORDER BY overall DESC, rowid ASC",
			wantArgs: []any{85, "GK", "Iran"},
		},
		{
			name:     "all fields",
			filter:   player.NewFilter("Farhad", 90, "ST", "Iran"),
			wantStmt: selectPlayers + " WHERE overall >= ? AND firstName = ? AND position = ? AND nation = ? ORDER BY overall DESC, rowid ASC",
			wantArgs: []any{90, "Farhad", "ST", "Iran"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			exec := &recordingExecutor{}
			_, err := NewPlayerRepository(exec).Search(context.Background(), tc.filter)
			require.NoError(t, err)
			require.Len(t, exec.calls, 1)
			assert.Equal(t, tc.wantStmt, exec.calls[0].stmt)
			assert.Equal(t, tc.wantArgs, exec.calls[0].args)
		})
	}
}

func TestPlayerRepository_MutationStatements(t *testing.T) {
	ctx := context.Background()
	exec := &recordingExecutor{affected: 2}
	repo := NewPlayerRepository(exec)

	affected, err := repo.UpdateByFirstName(ctx, "Lionel", player.NewPatch(95, "ST", "Argentine"))
	require.NoError(t, err)
	assert.EqualValues(t, 2, affected)

	_, err = repo.DeleteMatching(ctx, player.NewFilter("Leon", 80, "CM", "Germany"))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteAll(ctx))

	require.NoError(t, repo.InsertMany(ctx, memory.SeedPlayers()[:2]))

	_, err = repo.Count(ctx)
	require.NoError(t, err)

	require.Len(t, exec.calls, 5)
	assert.Equal(t, "UPDATE tblPlayers SET overall = ?, nation = ?, position = ? WHERE firstName = ?", exec.calls[0].stmt)
	assert.Equal(t, []any{95, "Argentine", "ST", "Lionel"}, exec.calls[0].args)

	assert.Equal(t, "DELETE FROM tblPlayers WHERE overall >= ? AND nation = ? AND position = ? AND firstName = ?", exec.calls[1].stmt)
	assert.Equal(t, []any{80, "Germany", "CM", "Leon"}, exec.calls[1].args)

	assert.Equal(t, "DELETE FROM tblPlayers", exec.calls[2].stmt)
	assert.Empty(t, exec.calls[2].args)

	assert.Equal(t, "INSERT INTO tblPlayers (id, firstName, lastName, nation, club, position, overall) VALUES (?, ?, ?, ?, ?, ?, ?)", exec.calls[3].stmt)
	assert.Equal(t, [][]any{
		{int64(1), "Leon", "Goretzka", "Germany", "Bayern Munich", "CM", 87},
		{int64(2), "HamidReza", "Horr", "Iran", "Esteghlal", "LW", 99},
	}, exec.calls[3].records)

	assert.Equal(t, "SELECT COUNT(1) FROM tblPlayers", exec.calls[4].stmt)
}

func TestPlayerRepository_InsertManyEmptyIsNoop(t *testing.T) {
	exec := &recordingExecutor{}
	require.NoError(t, NewPlayerRepository(exec).InsertMany(context.Background(), nil))
	assert.Empty(t, exec.calls)
}

func TestPlayerRepository_PropagatesStorageErrors(t *testing.T) {
	exec := &recordingExecutor{err: errors.Mark(errors.New("disk I/O error"), player.ErrStorage)}
	_, err := NewPlayerRepository(exec).Search(context.Background(), player.NewFilter("", 30, "", player.AnyNation))
	require.Error(t, err)
	assert.True(t, errors.Is(err, player.ErrStorage))
}

func newSQLiteRepository(t *testing.T) *PlayerRepository {
	t.Helper()

	gw, err := storage.NewGateway(storage.Config{Path: filepath.Join(t.TempDir(), "FIFA24.db")}, logging.NewNop())
	require.NoError(t, err)
	require.NoError(t, gw.Migrate(context.Background()))
	return NewPlayerRepository(gw)
}

func TestPlayerRepository_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepository(t)

	require.NoError(t, repo.InsertMany(ctx, memory.SeedPlayers()))
	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30, total)

	top, err := repo.Search(ctx, player.NewFilter("", 95, "", player.AnyNation))
	require.NoError(t, err)
	names := make([]string, 0, len(top))
	for _, p := range top {
		names = append(names, p.FirstName)
	}
	assert.Equal(t, []string{"HamidReza", "Farhad", "Naser", "Mansour", "Zinedine", "Paolo"}, names)

	affected, err := repo.UpdateByFirstName(ctx, "Messi", player.NewPatch(95, "ST", "Argentine"))
	require.NoError(t, err)
	assert.Zero(t, affected)

	affected, err = repo.UpdateByFirstName(ctx, "Lionel", player.NewPatch(95, "ST", "Argentine"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	messi, err := repo.Search(ctx, player.NewFilter("Lionel", 30, "", player.AnyNation))
	require.NoError(t, err)
	require.Len(t, messi, 1)
	assert.Equal(t, player.Player{ID: 4, FirstName: "Lionel", LastName: "Messi", Nation: "Argentine", Club: "PSG", Position: "ST", Overall: 95}, messi[0])

	affected, err = repo.DeleteMatching(ctx, player.NewFilter("Leon", 80, "CM", "Germany"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = repo.DeleteMatching(ctx, player.NewFilter("", 0, "", player.AnyNation))
	require.NoError(t, err)
	assert.Zero(t, affected)

	require.NoError(t, repo.DeleteAll(ctx))
	total, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}
