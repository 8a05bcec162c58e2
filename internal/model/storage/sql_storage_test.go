package storage

import (
	"context"
	"path/filepath"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteForTest(t *testing.T) *SQLStorage {
	t.Helper()
	s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "db", "expenses.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func Test_SQLiteStorage_ShouldSatisfyContract(t *testing.T) {
	runStorageContract(t, func(t *testing.T) Storage {
		return newSQLiteForTest(t)
	})
}

func Test_OnReopen_SQLiteStorage_ShouldKeepData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.db")
	ctx := context.Background()

	s, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	alice := mustUser(t, s, "alice")
	id := mustInsert(t, s, alice, draft("12.30", "food", "2024-06-10"))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStorage(path)
	require.NoError(t, err)
	defer s.Close()

	exps, err := s.ListExpenses(ctx, alice, DateRange{})
	require.NoError(t, err)
	require.Len(t, exps, 1)
	assert.Equal(t, id, exps[0].ID)
	assert.Equal(t, "12.30", exps[0].Amount.StringFixed(2))
}

func Test_SQLStorage_ShouldBuildDialectQueries(t *testing.T) {
	pg := &SQLStorage{dialect: Postgres, builder: sq.StatementBuilder.PlaceholderFormat(Postgres.placeholders())}
	lite := &SQLStorage{dialect: SQLite, builder: sq.StatementBuilder.PlaceholderFormat(SQLite.placeholders())}

	pgSQL, _, err := pg.builder.Select("id").From("expenses").Where("user_id = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM expenses WHERE user_id = $1", pgSQL)

	liteSQL, _, err := lite.builder.Select("id").From("expenses").Where("user_id = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM expenses WHERE user_id = ?", liteSQL)

	assert.IsType(t, "", lite.timeValue(date(2024, 6, 10)))
	assert.Equal(t, "2024-06-10T00:00:00.000000000Z", lite.timeValue(date(2024, 6, 10)))
}
