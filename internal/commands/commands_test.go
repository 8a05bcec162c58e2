package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"max.ks1230/expense-tracker/internal/model/customerr"
	"max.ks1230/expense-tracker/internal/model/expenses"
	"max.ks1230/expense-tracker/internal/model/stats"
	"max.ks1230/expense-tracker/internal/model/storage"
)

type env struct {
	storage *storage.FileStorage
	service *expenses.Service
	now     time.Time
}

func newEnv(t *testing.T) *env {
	t.Helper()
	st, err := storage.NewFileStorage(filepath.Join(t.TempDir(), "expenses.json"))
	require.NoError(t, err)
	agg := stats.NewAggregator(st)
	return &env{
		storage: st,
		service: expenses.NewService(st, agg, agg, nil, nil),
		now:     time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (e *env) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	r := NewRunner(e.storage, e.service, strings.NewReader(stdin), &out, time.UTC)
	r.now = func() time.Time { return e.now }
	err := r.Run(context.Background(), args)
	return out.String(), err
}

func (e *env) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, "", args...)
	require.NoError(t, err)
	return out
}

func Test_OnAddUser_ShouldStoreBcryptHash(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "s3cret\n", "adduser", "-username", "alice", "-email", "alice@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "created user alice")

	rec, err := e.storage.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte("s3cret")))

	_, err = e.run(t, "", "adduser", "-username", "bob", "-email", "bob@example.com")
	assert.ErrorIs(t, err, ErrUsage)
}

func Test_OnUnknownCommand_ShouldFailWithUsage(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "", "rename")
	assert.ErrorIs(t, err, ErrUsage)
	_, err = e.run(t, "")
	assert.ErrorIs(t, err, ErrUsage)
	_, err = e.run(t, "", "list", "-nope")
	assert.ErrorIs(t, err, ErrUsage)
}

func Test_OnAddAndList_ShouldShowNewestFirst(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "pw\n", "adduser", "-username", "alice", "-email", "alice@example.com")
	require.NoError(t, err)

	e.mustRun(t, "add", "-user", "alice", "-amount", "10", "-category", "food", "-date", "2024-06-09", "-desc", "groceries")
	e.mustRun(t, "add", "-user", "alice", "-amount", "20.5", "-category", "transport", "-time", "08:30")

	out := e.mustRun(t, "list", "-user", "alice", "-period", "weekly")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "transport")
	assert.Contains(t, lines[1], "2024-06-10")
	assert.Contains(t, lines[1], "08:30")
	assert.Contains(t, lines[2], "groceries")
	assert.Contains(t, lines[2], "N/A")

	out = e.mustRun(t, "list", "-user", "alice", "-period", "daily")
	assert.NotContains(t, out, "groceries")
}

func Test_OnAdd_ShouldReportErrors(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "pw\n", "adduser", "-username", "alice", "-email", "alice@example.com")
	require.NoError(t, err)

	_, err = e.run(t, "", "add", "-user", "alice", "-amount", "ten", "-category", "food")
	assert.ErrorIs(t, err, ErrUsage)

	_, err = e.run(t, "", "add", "-user", "alice", "-amount", "-3", "-category", "food")
	assert.True(t, customerr.IsValidation(err))

	_, err = e.run(t, "", "add", "-user", "nobody", "-amount", "3", "-category", "food")
	assert.True(t, customerr.IsNotFound(err))
}

func Test_OnStats_ShouldPrintTotalsAndBreakdown(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "pw\n", "adduser", "-username", "alice", "-email", "alice@example.com")
	require.NoError(t, err)
	e.mustRun(t, "add", "-user", "alice", "-amount", "10", "-category", "food", "-date", "2024-06-09")
	e.mustRun(t, "add", "-user", "alice", "-amount", "5", "-category", "food", "-date", "2024-06-10")
	e.mustRun(t, "add", "-user", "alice", "-amount", "20", "-category", "transport", "-date", "2024-06-10")

	out := e.mustRun(t, "stats", "-user", "alice", "-period", "weekly")
	assert.Contains(t, out, "Period: weekly (2024-06-04 .. 2024-06-10)")
	assert.Contains(t, out, "Total Amount: $35.00")
	assert.Less(t, strings.Index(out, "transport:"), strings.Index(out, "food:"))

	out = e.mustRun(t, "stats", "-user", "alice", "-period", "weekly", "-json")
	assert.Contains(t, out, `"total": "35"`)

	out = e.mustRun(t, "overview", "-user", "alice")
	assert.Contains(t, out, "$25.00")
	assert.Contains(t, out, "$35.00")

	_, err = e.run(t, "", "stats", "-user", "alice", "-period", "yearly")
	assert.True(t, customerr.IsInvalidPeriod(err))
}

func Test_OnDelete_ShouldOnlyRemoveOwnExpenses(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "pw\n", "adduser", "-username", "alice", "-email", "alice@example.com")
	require.NoError(t, err)
	_, err = e.run(t, "pw\n", "adduser", "-username", "bob", "-email", "bob@example.com")
	require.NoError(t, err)
	e.mustRun(t, "add", "-user", "alice", "-amount", "10", "-category", "food")

	_, err = e.run(t, "", "delete", "-user", "bob", "-id", "1")
	assert.True(t, customerr.IsAuthorization(err))

	assert.Contains(t, e.mustRun(t, "delete", "-user", "alice", "-id", "1"), "deleted expense 1")
	assert.Contains(t, e.mustRun(t, "delete", "-user", "alice", "-id", "1"), "expense 1 not found")

	_, err = e.run(t, "", "delete", "-user", "alice")
	assert.ErrorIs(t, err, ErrUsage)
}

func Test_OnReport_ShouldListEveryUserWithSummary(t *testing.T) {
	e := newEnv(t)
	out := e.mustRun(t, "report")
	assert.Contains(t, out, noUsersMessage)

	_, err := e.run(t, "pw\n", "adduser", "-username", "bob", "-email", "bob@example.com")
	require.NoError(t, err)
	_, err = e.run(t, "pw\n", "adduser", "-username", "alice", "-email", "alice@example.com")
	require.NoError(t, err)
	e.mustRun(t, "add", "-user", "alice", "-amount", "1.25", "-category", "food")
	e.mustRun(t, "add", "-user", "alice", "-amount", "2.50", "-category", "food")

	out = e.mustRun(t, "report")
	assert.Less(t, strings.Index(out, "USER: alice"), strings.Index(out, "USER: bob"))
	assert.Contains(t, out, "  food: $3.75")
	assert.Contains(t, out, noExpensesMessage)
	assert.Contains(t, out, "Total Users: 2")
	assert.Contains(t, out, "Total Expenses: 2\n")
	assert.Contains(t, out, "Total Amount: $3.75")

	out = e.mustRun(t, "report", "-user", "bob")
	assert.Contains(t, out, "USER: bob")
	assert.NotContains(t, out, "SUMMARY")
}

func Test_OnReport_ShouldOrderCategoriesLikeStats(t *testing.T) {
	e := newEnv(t)
	_, err := e.run(t, "pw\n", "adduser", "-username", "alice", "-email", "alice@example.com")
	require.NoError(t, err)
	e.mustRun(t, "add", "-user", "alice", "-amount", "1", "-category", "zoo")
	e.mustRun(t, "add", "-user", "alice", "-amount", "9", "-category", "rent")
	e.mustRun(t, "add", "-user", "alice", "-amount", "1", "-category", "books")

	out := e.mustRun(t, "report", "-user", "alice")
	rent := strings.Index(out, "  rent: $9.00")
	books := strings.Index(out, "  books: $1.00")
	zoo := strings.Index(out, "  zoo: $1.00")
	require.True(t, rent >= 0 && books >= 0 && zoo >= 0, out)
	assert.Less(t, rent, books)
	assert.Less(t, books, zoo)
}
