package storage

import (
	"context"
	"sort"
	"time"

	"max.ks1230/expense-tracker/internal/entity/user"
)

// ExpenseStorage is the contract every backend satisfies identically.
type ExpenseStorage interface {
	// InsertExpense validates the draft and stores it for the user.
	InsertExpense(ctx context.Context, userID int64, draft user.ExpenseDraft) (int64, error)
	// ListExpenses returns the user's expenses within r, newest first.
	ListExpenses(ctx context.Context, userID int64, r DateRange) ([]user.ExpenseRecord, error)
	// DeleteExpense removes the user's expense. Absent ids yield false and no
	// error; ids owned by another user yield false and an AuthorizationError.
	DeleteExpense(ctx context.Context, userID, expenseID int64) (bool, error)
}

type UserStorage interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error)
	GetUserByUsername(ctx context.Context, username string) (user.Record, error)
	ListUsers(ctx context.Context) ([]user.Record, error)
}

type Storage interface {
	ExpenseStorage
	UserStorage
	Close() error
}

// DateRange is the half-open interval [Start, End) of calendar dates.
// A zero bound is open on that side.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (r DateRange) Bounded() bool {
	return !r.Start.IsZero() || !r.End.IsZero()
}

func (r DateRange) Contains(date time.Time) bool {
	if !r.Start.IsZero() && date.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && !date.Before(r.End) {
		return false
	}
	return true
}

// Days returns every date of a bounded range in ascending order.
func (r DateRange) Days() []time.Time {
	if r.Start.IsZero() || r.End.IsZero() {
		return nil
	}
	days := make([]time.Time, 0)
	for d := r.Start; d.Before(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// sortExpenses applies the listing order: date, then creation time, then id,
// all descending.
func sortExpenses(exps []user.ExpenseRecord) {
	sort.SliceStable(exps, func(i, j int) bool {
		a, b := exps[i], exps[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if !a.Created.Equal(b.Created) {
			return a.Created.After(b.Created)
		}
		return a.ID > b.ID
	})
}
