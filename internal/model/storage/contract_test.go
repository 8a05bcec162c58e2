package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/model/customerr"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func draft(amount, category, day string) user.ExpenseDraft {
	return user.ExpenseDraft{
		Description: category + " on " + day,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Date:        day,
	}
}

func mustUser(t *testing.T, s Storage, name string) int64 {
	t.Helper()
	id, err := s.CreateUser(context.Background(), name, name+"@example.com", "hash")
	require.NoError(t, err)
	return id
}

func mustInsert(t *testing.T, s Storage, userID int64, d user.ExpenseDraft) int64 {
	t.Helper()
	id, err := s.InsertExpense(context.Background(), userID, d)
	require.NoError(t, err)
	return id
}

// runStorageContract checks the behaviour every backend must share.
func runStorageContract(t *testing.T, newStorage func(t *testing.T) Storage) {
	ctx := context.Background()

	t.Run("insert then list keeps amount and date", func(t *testing.T) {
		s := newStorage(t)
		alice := mustUser(t, s, "alice")

		id, err := s.InsertExpense(ctx, alice, user.ExpenseDraft{
			Description: "coffee",
			Amount:      decimal.RequireFromString("3.45"),
			Category:    "food",
			Date:        "2024-06-10",
			Time:        "08:15",
		})
		require.NoError(t, err)

		exps, err := s.ListExpenses(ctx, alice, DateRange{Start: date(2024, time.June, 1), End: date(2024, time.July, 1)})
		require.NoError(t, err)
		require.Len(t, exps, 1)

		got := exps[0]
		assert.Equal(t, id, got.ID)
		assert.Equal(t, alice, got.UserID)
		assert.True(t, decimal.RequireFromString("3.45").Equal(got.Amount), "amount %s", got.Amount)
		assert.Equal(t, date(2024, time.June, 10), got.Date)
		assert.Equal(t, "08:15", got.Time)
		assert.Equal(t, "coffee", got.Description)
		assert.Equal(t, "food", got.Category)
		assert.False(t, got.Created.IsZero())
	})

	t.Run("insert rejects invalid drafts and unknown users", func(t *testing.T) {
		s := newStorage(t)
		alice := mustUser(t, s, "alice")

		_, err := s.InsertExpense(ctx, alice, draft("0", "food", "2024-06-10"))
		assert.True(t, customerr.IsValidation(err), "got %v", err)

		_, err = s.InsertExpense(ctx, alice, draft("1", "food", "2024-13-01"))
		assert.True(t, customerr.IsValidation(err), "got %v", err)

		_, err = s.InsertExpense(ctx, alice, draft("10.125", "food", "2024-06-10"))
		assert.True(t, customerr.IsValidation(err), "got %v", err)

		_, err = s.InsertExpense(ctx, alice, draft("12345678901234.56", "food", "2024-06-10"))
		assert.True(t, customerr.IsValidation(err), "got %v", err)

		_, err = s.InsertExpense(ctx, alice+1000, draft("1", "food", "2024-06-10"))
		assert.True(t, customerr.IsNotFound(err), "got %v", err)

		exps, err := s.ListExpenses(ctx, alice, DateRange{})
		require.NoError(t, err)
		assert.Empty(t, exps)
	})

	t.Run("amounts come back unchanged", func(t *testing.T) {
		s := newStorage(t)
		alice := mustUser(t, s, "alice")

		amounts := []string{"0.01", "10.12", "999999999999.99"}
		for i, amount := range amounts {
			mustInsert(t, s, alice, draft(amount, "misc", fmt.Sprintf("2024-06-%02d", i+1)))
		}

		exps, err := s.ListExpenses(ctx, alice, DateRange{})
		require.NoError(t, err)
		require.Len(t, exps, len(amounts))
		for i, exp := range exps {
			want := decimal.RequireFromString(amounts[len(amounts)-1-i])
			assert.True(t, want.Equal(exp.Amount), "want %s, got %s", want, exp.Amount)
		}
	})

	t.Run("list of a user without expenses is empty", func(t *testing.T) {
		s := newStorage(t)
		alice := mustUser(t, s, "alice")

		exps, err := s.ListExpenses(ctx, alice, DateRange{})
		require.NoError(t, err)
		assert.NotNil(t, exps)
		assert.Len(t, exps, 0)
	})

	t.Run("list honours half-open range and owner", func(t *testing.T) {
		s := newStorage(t)
		alice := mustUser(t, s, "alice")
		bob := mustUser(t, s, "bob")

		mustInsert(t, s, alice, draft("1", "a", "2024-06-03"))
		mustInsert(t, s, alice, draft("2", "a", "2024-06-04"))
		mustInsert(t, s, alice, draft("3", "a", "2024-06-10"))
		mustInsert(t, s, alice, draft("4", "a", "2024-06-11"))
		mustInsert(t, s, bob, draft("5", "a", "2024-06-05"))

		exps, err := s.ListExpenses(ctx, alice, DateRange{Start: date(2024, time.June, 4), End: date(2024, time.June, 11)})
		require.NoError(t, err)
		require.Len(t, exps, 2)
		assert.Equal(t, date(2024, time.June, 10), exps[0].Date)
		assert.Equal(t, date(2024, time.June, 4), exps[1].Date)

		all, err := s.ListExpenses(ctx, alice, DateRange{})
		require.NoError(t, err)
		assert.Len(t, all, 4)
		for _, e := range all {
			assert.Equal(t, alice, e.UserID)
		}
	})

	t.Run("list orders by date then creation, newest first, and is stable", func(t *testing.T) {
		s := newStorage(t)
		alice := mustUser(t, s, "alice")

		first := mustInsert(t, s, alice, draft("1", "a", "2024-06-10"))
		older := mustInsert(t, s, alice, draft("2", "a", "2024-06-09"))
		second := mustInsert(t, s, alice, draft("3", "a", "2024-06-10"))

		exps, err := s.ListExpenses(ctx, alice, DateRange{})
		require.NoError(t, err)
		require.Len(t, exps, 3)
		assert.Equal(t, []int64{second, first, older}, []int64{exps[0].ID, exps[1].ID, exps[2].ID})

		again, err := s.ListExpenses(ctx, alice, DateRange{})
		require.NoError(t, err)
		assert.Equal(t, exps, again)
	})

	t.Run("delete of a missing id returns false", func(t *testing.T) {
		s := newStorage(t)
		alice := mustUser(t, s, "alice")

		ok, err := s.DeleteExpense(ctx, alice, 4242)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete of another user's expense is refused", func(t *testing.T) {
		s := newStorage(t)
		alice := mustUser(t, s, "alice")
		bob := mustUser(t, s, "bob")
		id := mustInsert(t, s, alice, draft("10", "food", "2024-06-10"))

		ok, err := s.DeleteExpense(ctx, bob, id)
		assert.False(t, ok)
		assert.True(t, customerr.IsAuthorization(err), "got %v", err)

		exps, err := s.ListExpenses(ctx, alice, DateRange{})
		require.NoError(t, err)
		require.Len(t, exps, 1)
		assert.Equal(t, id, exps[0].ID)
	})

	t.Run("delete removes own expense once", func(t *testing.T) {
		s := newStorage(t)
		alice := mustUser(t, s, "alice")
		id := mustInsert(t, s, alice, draft("10", "food", "2024-06-10"))
		keep := mustInsert(t, s, alice, draft("11", "food", "2024-06-11"))

		ok, err := s.DeleteExpense(ctx, alice, id)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.DeleteExpense(ctx, alice, id)
		require.NoError(t, err)
		assert.False(t, ok)

		exps, err := s.ListExpenses(ctx, alice, DateRange{})
		require.NoError(t, err)
		require.Len(t, exps, 1)
		assert.Equal(t, keep, exps[0].ID)
	})

	t.Run("users are unique and listed by name", func(t *testing.T) {
		s := newStorage(t)
		mustUser(t, s, "carol")
		alice := mustUser(t, s, "alice")

		_, err := s.CreateUser(ctx, "alice", "other@example.com", "hash")
		assert.True(t, customerr.IsValidation(err), "got %v", err)
		_, err = s.CreateUser(ctx, "alice2", "alice@example.com", "hash")
		assert.True(t, customerr.IsValidation(err), "got %v", err)
		_, err = s.CreateUser(ctx, "", "x@example.com", "hash")
		assert.True(t, customerr.IsValidation(err), "got %v", err)

		got, err := s.GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, alice, got.ID)
		assert.Equal(t, "alice@example.com", got.Email)
		assert.Equal(t, "hash", got.PasswordHash)

		_, err = s.GetUserByUsername(ctx, "nobody")
		assert.True(t, customerr.IsNotFound(err), "got %v", err)

		users, err := s.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "alice", users[0].Username)
		assert.Equal(t, "carol", users[1].Username)
	})
}
