package user

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/model/customerr"
)

func Test_Validate_ShouldNormalizeDraft(t *testing.T) {
	rec, err := ExpenseDraft{
		Description: "  lunch ",
		Amount:      decimal.RequireFromString("12.5"),
		Category:    " food",
		Date:        "2024-02-29",
		Time:        "13:05",
	}.Validate()

	require.NoError(t, err)
	assert.Equal(t, "lunch", rec.Description)
	assert.Equal(t, "food", rec.Category)
	assert.Equal(t, "12.50", rec.Amount.StringFixed(2))
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), rec.Date)
	assert.Equal(t, 13, rec.Hour())
}

func Test_Validate_ShouldRejectBadInput(t *testing.T) {
	valid := ExpenseDraft{Amount: decimal.NewFromInt(1), Category: "food", Date: "2024-06-10"}

	cases := map[string]func(d *ExpenseDraft){
		"zero amount":     func(d *ExpenseDraft) { d.Amount = decimal.Zero },
		"negative amount": func(d *ExpenseDraft) { d.Amount = decimal.NewFromInt(-3) },
		"below a cent":    func(d *ExpenseDraft) { d.Amount = decimal.RequireFromString("0.004") },
		"sub-cent digits": func(d *ExpenseDraft) { d.Amount = decimal.RequireFromString("10.125") },
		"above column":    func(d *ExpenseDraft) { d.Amount = decimal.RequireFromString("12345678901234.56") },
		"empty category":  func(d *ExpenseDraft) { d.Category = " " },
		"bad date":        func(d *ExpenseDraft) { d.Date = "2023-02-29" },
		"wrong layout":    func(d *ExpenseDraft) { d.Date = "10.06.2024" },
		"bad time":        func(d *ExpenseDraft) { d.Time = "25:00" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			d := valid
			mutate(&d)
			_, err := d.Validate()
			assert.True(t, customerr.IsValidation(err), "got %v", err)
		})
	}
}

func Test_Validate_ShouldKeepAmountExact(t *testing.T) {
	for _, amount := range []string{"0.01", "10.12", "7", "999999999999.99"} {
		rec, err := ExpenseDraft{
			Amount:   decimal.RequireFromString(amount),
			Category: "food",
			Date:     "2024-06-10",
		}.Validate()
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString(amount).Equal(rec.Amount), "amount %s became %s", amount, rec.Amount)
	}
}

func Test_Validate_ShouldExplainAmountErrors(t *testing.T) {
	base := ExpenseDraft{Category: "food", Date: "2024-06-10"}

	base.Amount = decimal.RequireFromString("0.004")
	_, err := base.Validate()
	assert.EqualError(t, err, "amount: at most 2 decimal places")

	base.Amount = decimal.RequireFromString("-1")
	_, err = base.Validate()
	assert.EqualError(t, err, "amount: must be positive")

	base.Amount = decimal.RequireFromString("1000000000000")
	_, err = base.Validate()
	assert.EqualError(t, err, "amount: too large")
}

func Test_Hour_ShouldDefaultToMidnight(t *testing.T) {
	assert.Equal(t, 0, ExpenseRecord{}.Hour())
	assert.Equal(t, 0, ExpenseRecord{Time: "garbage"}.Hour())
	assert.Equal(t, 23, ExpenseRecord{Time: "23:59"}.Hour())
}
