package stats

import (
	"time"

	"github.com/jinzhu/now"
	"max.ks1230/expense-tracker/internal/model/customerr"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/utils"
)

type Period string

const (
	All     Period = "all"
	Monthly Period = "monthly"
	Weekly  Period = "weekly"
	Daily   Period = "daily"
)

var periods = []Period{All, Monthly, Weekly, Daily}

func Periods() []Period {
	return append([]Period(nil), periods...)
}

func (p Period) Valid() bool {
	return utils.Contains(periods, p)
}

// Resolve turns a period into concrete dates around the calendar day of ref,
// taken in ref's location:
//
//	all      unbounded
//	daily    [day, day+1)
//	weekly   [day-6, day+1), the last seven days including today
//	monthly  [first of month, first of next month)
func Resolve(p Period, ref time.Time) (storage.DateRange, error) {
	at := now.With(ref)
	switch p {
	case All:
		return storage.DateRange{}, nil
	case Daily:
		day := utils.Day(at.BeginningOfDay())
		return storage.DateRange{Start: day, End: day.AddDate(0, 0, 1)}, nil
	case Weekly:
		day := utils.Day(at.BeginningOfDay())
		return storage.DateRange{Start: day.AddDate(0, 0, -6), End: day.AddDate(0, 0, 1)}, nil
	case Monthly:
		first := utils.Day(at.BeginningOfMonth())
		return storage.DateRange{Start: first, End: first.AddDate(0, 1, 0)}, nil
	default:
		return storage.DateRange{}, &customerr.InvalidPeriodError{Period: string(p)}
	}
}
