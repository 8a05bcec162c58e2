package stats

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/model/customerr"
	"max.ks1230/expense-tracker/internal/model/stats/mock"
	"max.ks1230/expense-tracker/internal/model/storage"
)

// storageWith serves exps filtered by user and range, the way every backend does.
func storageWith(m minimock.Tester, exps ...user.ExpenseRecord) *mock.ExpensesStorageMock {
	return mock.NewExpensesStorageMock(m).
		ListExpensesMock.
		Set(func(_ context.Context, userID int64, r storage.DateRange) ([]user.ExpenseRecord, error) {
			res := make([]user.ExpenseRecord, 0)
			for _, e := range exps {
				if e.UserID == userID && r.Contains(e.Date) {
					res = append(res, e)
				}
			}
			return res, nil
		})
}

func expense(amount, category string, day time.Time) user.ExpenseRecord {
	return user.ExpenseRecord{
		UserID:   1,
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     day,
	}
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func Test_OnCompute_ShouldSumTotalAndBreakdown(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()

	st := storageWith(m,
		expense("10.00", "food", date(2024, time.June, 9)),
		expense("5.00", "food", date(2024, time.June, 10)),
		expense("20.00", "transport", date(2024, time.June, 10)),
		expense("99.00", "rent", date(2024, time.May, 31)),
	)
	st.ListExpensesMock.Inspect(func(_ context.Context, userID int64, r storage.DateRange) {
		assert.Equal(m, int64(1), userID)
		assert.Equal(m, date(2024, time.June, 4), r.Start)
		assert.Equal(m, date(2024, time.June, 11), r.End)
	})

	ref := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)
	res, err := NewAggregator(st).Compute(ctx, 1, Weekly, ref)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Count)
	assertAmount(t, "35.00", res.Total)
	assert.Equal(t, "35.00", FormatAmount(res.Total))

	require.Len(t, res.Categories, 2)
	assert.Equal(t, "transport", res.Categories[0].Category)
	assertAmount(t, "20", res.Categories[0].Total)
	assert.Equal(t, 1, res.Categories[0].Count)
	assert.Equal(t, "food", res.Categories[1].Category)
	assertAmount(t, "15", res.Categories[1].Total)
	assert.Equal(t, 2, res.Categories[1].Count)

	assert.Equal(t, ByDay, res.Granularity)
	require.Len(t, res.Trend, 7)
	assert.Equal(t, date(2024, time.June, 4), res.Trend[0].Bucket)
	assertAmount(t, "10", res.Trend[5].Total)
	assertAmount(t, "25", res.Trend[6].Total)
	assert.Nil(t, res.Hourly)
	assert.Equal(t, uint64(1), st.ListExpensesBeforeCounter())
}

func Test_OnCompute_ShouldKeepExactDecimals(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	exps := make([]user.ExpenseRecord, 0, 10)
	for i := 0; i < 10; i++ {
		exps = append(exps, expense("0.10", "misc", date(2024, time.June, 1)))
	}
	st := storageWith(m, exps...)

	res, err := NewAggregator(st).Compute(context.Background(), 1, All, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "1.00", FormatAmount(res.Total))
}

func Test_OnCompute_ShouldBreakTiesByCategoryName(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	day := date(2024, time.June, 10)
	st := storageWith(m,
		expense("5", "zoo", day),
		expense("5", "books", day),
		expense("7", "games", day),
	)

	res, err := NewAggregator(st).Compute(context.Background(), 1, Daily, day)
	require.NoError(t, err)

	names := make([]string, 0, len(res.Categories))
	sum := decimal.Zero
	for _, c := range res.Categories {
		names = append(names, c.Category)
		sum = sum.Add(c.Total)
	}
	assert.Equal(t, []string{"games", "books", "zoo"}, names)
	assertAmount(t, res.Total.String(), sum)
}

func Test_OnCompute_MonthlyShouldFillEveryDay(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	st := storageWith(m,
		expense("12.50", "food", date(2024, time.June, 3)),
		expense("7.50", "food", date(2024, time.June, 28)),
	)

	res, err := NewAggregator(st).Compute(context.Background(), 1, Monthly, date(2024, time.June, 15))
	require.NoError(t, err)

	require.Len(t, res.Trend, 30)
	zeros := 0
	for i, p := range res.Trend {
		assert.Equal(t, date(2024, time.June, i+1), p.Bucket)
		if p.Total.IsZero() {
			zeros++
		}
	}
	assert.Equal(t, 28, zeros)
	assertAmount(t, "12.50", res.Trend[2].Total)
	assertAmount(t, "7.50", res.Trend[27].Total)
}

func Test_OnCompute_AllShouldSpanObservedMonths(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	st := storageWith(m,
		expense("3", "food", date(2023, time.November, 20)),
		expense("4", "food", date(2024, time.February, 2)),
		expense("1", "food", date(2023, time.November, 1)),
	)

	res, err := NewAggregator(st).Compute(context.Background(), 1, All, date(2024, time.June, 1))
	require.NoError(t, err)

	assert.Equal(t, ByMonth, res.Granularity)
	require.Len(t, res.Trend, 4)
	assert.Equal(t, date(2023, time.November, 1), res.Trend[0].Bucket)
	assertAmount(t, "4", res.Trend[0].Total)
	assert.True(t, res.Trend[1].Total.IsZero())
	assert.True(t, res.Trend[2].Total.IsZero())
	assert.Equal(t, date(2024, time.February, 1), res.Trend[3].Bucket)
	assertAmount(t, "4", res.Trend[3].Total)
}

func Test_OnCompute_ShouldReturnEmptyStatsWithoutExpenses(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	agg := NewAggregator(storageWith(m))

	res, err := agg.Compute(context.Background(), 1, All, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)
	assert.True(t, res.Total.IsZero())
	assert.NotNil(t, res.Categories)
	assert.Empty(t, res.Categories)
	assert.NotNil(t, res.Trend)
	assert.Empty(t, res.Trend)

	res, err = agg.Compute(context.Background(), 1, Weekly, time.Now())
	require.NoError(t, err)
	require.Len(t, res.Trend, 7)
	for _, p := range res.Trend {
		assert.True(t, p.Total.IsZero())
	}
}

func Test_OnCompute_DailyShouldBucketByHour(t *testing.T) {
	day := date(2024, time.June, 10)
	morning := expense("2", "coffee", day)
	morning.Time = "08:15"
	evening := expense("30", "dinner", day)
	evening.Time = "19:59"
	untimed := expense("1", "misc", day)

	m := minimock.NewController(t)
	defer m.Finish()

	st := storageWith(m, morning, evening, untimed)
	res, err := NewAggregator(st).Compute(context.Background(), 1, Daily, day)
	require.NoError(t, err)

	require.Len(t, res.Trend, 1)
	assertAmount(t, "33", res.Trend[0].Total)
	require.Len(t, res.Hourly, 24)
	assertAmount(t, "1", res.Hourly[0].Total)
	assertAmount(t, "2", res.Hourly[8].Total)
	assertAmount(t, "30", res.Hourly[19].Total)
	assert.Equal(t, day.Add(19*time.Hour), res.Hourly[19].Bucket)
}

func Test_OnCompute_ShouldFailOnInvalidPeriodWithoutStorageCall(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	st := mock.NewExpensesStorageMock(m)
	_, err := NewAggregator(st).Compute(context.Background(), 1, "fortnight", time.Now())
	assert.True(t, customerr.IsInvalidPeriod(err))
	assert.Zero(t, st.ListExpensesBeforeCounter())
}

func Test_OnCompute_ShouldPassStorageErrors(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	boom := errors.New("connection reset")
	st := mock.NewExpensesStorageMock(m).ListExpensesMock.Return(nil, boom)

	_, err := NewAggregator(st).Compute(context.Background(), 1, Monthly, time.Now())
	assert.ErrorIs(t, err, boom)
}

func Test_OnOverview_ShouldTotalEveryPeriodFromOneRead(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	st := storageWith(m,
		expense("1", "a", date(2024, time.June, 10)),
		expense("2", "a", date(2024, time.June, 5)),
		expense("4", "a", date(2024, time.June, 1)),
		expense("8", "a", date(2024, time.May, 30)),
		expense("16", "a", date(2023, time.January, 1)),
	)

	res, err := NewAggregator(st).Overview(context.Background(), 1, time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assertAmount(t, "31", res.All)
	assertAmount(t, "7", res.Monthly)
	assertAmount(t, "3", res.Weekly)
	assertAmount(t, "1", res.Daily)
	assert.Equal(t, uint64(1), st.ListExpensesBeforeCounter())
}
