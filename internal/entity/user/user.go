package user

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"max.ks1230/expense-tracker/internal/model/customerr"
	"max.ks1230/expense-tracker/internal/utils"
)

const (
	maxDescriptionLen = 200
	amountPlaces      = 2
)

// maxAmount is the largest value every backend can hold (NUMERIC(14,2)).
var maxAmount = decimal.RequireFromString("999999999999.99")

type Record struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Created      time.Time
}

type ExpenseRecord struct {
	ID          int64
	UserID      int64
	Description string
	Amount      decimal.Decimal
	Category    string
	// Date is the calendar date at UTC midnight.
	Date time.Time
	// Time is an optional "HH:MM" clock time.
	Time    string
	Created time.Time
}

// ExpenseDraft is the unvalidated input of a new expense.
type ExpenseDraft struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        string
	Time        string
}

// Validate checks the draft and returns the record it describes, without
// ID, owner or creation time.
func (d ExpenseDraft) Validate() (ExpenseRecord, error) {
	amount := d.Amount
	if !amount.IsPositive() {
		return ExpenseRecord{}, customerr.NewValidation("amount", "must be positive")
	}
	if !amount.Equal(amount.Truncate(amountPlaces)) {
		return ExpenseRecord{}, customerr.NewValidation("amount", "at most 2 decimal places")
	}
	if amount.GreaterThan(maxAmount) {
		return ExpenseRecord{}, customerr.NewValidation("amount", "too large")
	}
	category := strings.TrimSpace(d.Category)
	if category == "" {
		return ExpenseRecord{}, customerr.NewValidation("category", "must not be empty")
	}
	description := strings.TrimSpace(d.Description)
	if len(description) > maxDescriptionLen {
		return ExpenseRecord{}, customerr.NewValidation("description", "too long")
	}
	date, err := time.Parse(utils.DateLayout, strings.TrimSpace(d.Date))
	if err != nil {
		return ExpenseRecord{}, customerr.NewValidation("date", "expected YYYY-MM-DD")
	}
	clock := strings.TrimSpace(d.Time)
	if clock != "" {
		if _, err := time.Parse(utils.TimeLayout, clock); err != nil {
			return ExpenseRecord{}, customerr.NewValidation("time", "expected HH:MM")
		}
	}

	return ExpenseRecord{
		Description: description,
		Amount:      amount,
		Category:    category,
		Date:        date,
		Time:        clock,
	}, nil
}

// Hour returns the hour of the expense time, 0 when no time is set.
func (e ExpenseRecord) Hour() int {
	if e.Time == "" {
		return 0
	}
	t, err := time.Parse(utils.TimeLayout, e.Time)
	if err != nil {
		return 0
	}
	return t.Hour()
}
