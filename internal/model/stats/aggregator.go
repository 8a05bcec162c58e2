package stats

import (
	"context"
	"sort"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/utils"
)

const hoursPerDay = 24

type Granularity string

const (
	ByDay   Granularity = "day"
	ByMonth Granularity = "month"
)

type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// TrendPoint is the spend of one bucket. Bucket is the first instant of the
// day, month or hour it covers, in UTC.
type TrendPoint struct {
	Bucket time.Time       `json:"bucket"`
	Total  decimal.Decimal `json:"total"`
}

type Stats struct {
	UserID      int64             `json:"user_id"`
	Period      Period            `json:"period"`
	Range       storage.DateRange `json:"range"`
	Count       int               `json:"count"`
	Total       decimal.Decimal   `json:"total"`
	Categories  []CategoryTotal   `json:"categories"`
	Granularity Granularity       `json:"granularity"`
	Trend       []TrendPoint      `json:"trend"`
	// Hourly is only filled for the daily period.
	Hourly []TrendPoint `json:"hourly,omitempty"`
}

// Overview holds the totals of every period at once.
type Overview struct {
	All     decimal.Decimal `json:"all"`
	Monthly decimal.Decimal `json:"monthly"`
	Weekly  decimal.Decimal `json:"weekly"`
	Daily   decimal.Decimal `json:"daily"`
}

type expensesStorage interface {
	ListExpenses(ctx context.Context, userID int64, r storage.DateRange) ([]user.ExpenseRecord, error)
}

// Aggregator derives statistics from one snapshot of a user's expenses.
// It holds no state between calls.
type Aggregator struct {
	storage expensesStorage
}

func NewAggregator(storage expensesStorage) *Aggregator {
	return &Aggregator{storage: storage}
}

func (a *Aggregator) Compute(ctx context.Context, userID int64, period Period, ref time.Time) (stats *Stats, err error) {
	logger.Info("Compute - start", zap.Int64("userID", userID), zap.String("period", string(period)))
	defer logger.Info("Compute - end")

	span, ctx := opentracing.StartSpanFromContext(ctx, "computeStats")
	defer span.Finish()
	span.SetTag("period", string(period))

	start := time.Now()
	defer func() {
		observeCompute(period, time.Since(start), err != nil)
		if err != nil {
			ext.Error.Set(span, true)
		}
	}()

	r, err := Resolve(period, ref)
	if err != nil {
		return nil, errors.Wrap(err, "compute stats")
	}

	expenses, err := a.storage.ListExpenses(ctx, userID, r)
	if err != nil {
		return nil, errors.Wrap(err, "compute stats")
	}

	return summarize(userID, period, r, expenses), nil
}

func (a *Aggregator) Overview(ctx context.Context, userID int64, ref time.Time) (*Overview, error) {
	logger.Info("Overview - start", zap.Int64("userID", userID))
	defer logger.Info("Overview - end")

	span, ctx := opentracing.StartSpanFromContext(ctx, "overviewStats")
	defer span.Finish()

	expenses, err := a.storage.ListExpenses(ctx, userID, storage.DateRange{})
	if err != nil {
		ext.Error.Set(span, true)
		return nil, errors.Wrap(err, "overview stats")
	}

	// Resolve cannot fail for the known periods.
	monthly, _ := Resolve(Monthly, ref)
	weekly, _ := Resolve(Weekly, ref)
	daily, _ := Resolve(Daily, ref)

	res := &Overview{All: decimal.Zero, Monthly: decimal.Zero, Weekly: decimal.Zero, Daily: decimal.Zero}
	for _, exp := range expenses {
		res.All = res.All.Add(exp.Amount)
		if monthly.Contains(exp.Date) {
			res.Monthly = res.Monthly.Add(exp.Amount)
		}
		if weekly.Contains(exp.Date) {
			res.Weekly = res.Weekly.Add(exp.Amount)
		}
		if daily.Contains(exp.Date) {
			res.Daily = res.Daily.Add(exp.Amount)
		}
	}
	return res, nil
}

func summarize(userID int64, period Period, r storage.DateRange, exps []user.ExpenseRecord) *Stats {
	inRange := make([]user.ExpenseRecord, 0, len(exps))
	for _, exp := range exps {
		if r.Contains(exp.Date) {
			inRange = append(inRange, exp)
		}
	}

	stats := &Stats{
		UserID:     userID,
		Period:     period,
		Range:      r,
		Count:      len(inRange),
		Total:      decimal.Zero,
		Categories: GroupByCategory(inRange),
	}
	for _, exp := range inRange {
		stats.Total = stats.Total.Add(exp.Amount)
	}

	if period == All {
		stats.Granularity = ByMonth
		stats.Trend = monthlyTrend(inRange)
	} else {
		stats.Granularity = ByDay
		stats.Trend = dailyTrend(r, inRange)
	}
	if period == Daily {
		stats.Hourly = hourlyTrend(r.Start, inRange)
	}
	return stats
}

// GroupByCategory sums expenses per category, sorted by total descending
// and ties by name.
func GroupByCategory(exps []user.ExpenseRecord) []CategoryTotal {
	m := make(map[string]*CategoryTotal)
	for _, exp := range exps {
		ct, ok := m[exp.Category]
		if !ok {
			ct = &CategoryTotal{Category: exp.Category, Total: decimal.Zero}
			m[exp.Category] = ct
		}
		ct.Total = ct.Total.Add(exp.Amount)
		ct.Count++
	}

	records := make([]CategoryTotal, 0, len(m))
	for _, ct := range m {
		records = append(records, *ct)
	}
	sort.Slice(records, func(i, j int) bool {
		if cmp := records[i].Total.Cmp(records[j].Total); cmp != 0 {
			return cmp > 0
		}
		return records[i].Category < records[j].Category
	})
	return records
}

func dailyTrend(r storage.DateRange, exps []user.ExpenseRecord) []TrendPoint {
	days := r.Days()
	points := make([]TrendPoint, len(days))
	index := make(map[int64]int, len(days))
	for i, day := range days {
		points[i] = TrendPoint{Bucket: day, Total: decimal.Zero}
		index[day.Unix()] = i
	}
	for _, exp := range exps {
		if i, ok := index[exp.Date.Unix()]; ok {
			points[i].Total = points[i].Total.Add(exp.Amount)
		}
	}
	return points
}

// monthlyTrend spans the earliest to the latest observed month.
func monthlyTrend(exps []user.ExpenseRecord) []TrendPoint {
	points := make([]TrendPoint, 0)
	if len(exps) == 0 {
		return points
	}

	first, last := utils.Month(exps[0].Date), utils.Month(exps[0].Date)
	for _, exp := range exps[1:] {
		m := utils.Month(exp.Date)
		if m.Before(first) {
			first = m
		}
		if m.After(last) {
			last = m
		}
	}

	index := make(map[int64]int)
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		index[m.Unix()] = len(points)
		points = append(points, TrendPoint{Bucket: m, Total: decimal.Zero})
	}
	for _, exp := range exps {
		i := index[utils.Month(exp.Date).Unix()]
		points[i].Total = points[i].Total.Add(exp.Amount)
	}
	return points
}

// hourlyTrend buckets by the expense time; expenses without one count at 00:00.
func hourlyTrend(day time.Time, exps []user.ExpenseRecord) []TrendPoint {
	points := make([]TrendPoint, hoursPerDay)
	for h := range points {
		points[h] = TrendPoint{Bucket: day.Add(time.Duration(h) * time.Hour), Total: decimal.Zero}
	}
	for _, exp := range exps {
		h := exp.Hour()
		points[h].Total = points[h].Total.Add(exp.Amount)
	}
	return points
}

// FormatAmount renders an amount at display precision.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
