// Package planner implements the derived financial calculations: period
// filtering, the holiday schedule, recurring debt expansion, the
// aggregation report and the holiday readiness projection.
//
// Everything in this package is a pure function of its inputs. The
// current time is always passed in explicitly so that callers and tests
// control the clock.
package planner

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/types"
)

// The two fixed per-period costs. They are not user configurable.
var (
	GasCost       = decimal.NewFromInt(70000)
	InternetCost  = decimal.NewFromInt(30000)
	FixedExpenses = GasCost.Add(InternetCost)
)

// PeriodType defines the granularity of a reporting period.
type PeriodType string

const (
	PeriodAll   PeriodType = "all"
	PeriodYear  PeriodType = "year"
	PeriodMonth PeriodType = "month"
	PeriodWeek  PeriodType = "week"
)

// Filter is the active reporting period selection.
type Filter struct {
	Type  PeriodType `json:"type" example:"week"`
	Year  int        `json:"year,omitempty" example:"2025"`
	Month time.Month `json:"month,omitempty" example:"8"`
	Week  int        `json:"week,omitempty" example:"33"`
}

// ThisWeek returns the default filter: the ISO week of now.
func ThisWeek(now time.Time) Filter {
	week := types.WeekOf(now)
	return Filter{Type: PeriodWeek, Year: week.Year, Week: week.Week}
}

// Contains reports whether the time instant falls inside the period.
// Week periods are inclusive of both the Monday 00:00:00.000 start and
// the Sunday 23:59:59.999 end.
func (f Filter) Contains(t time.Time) bool {
	switch f.Type {
	case PeriodAll:
		return true
	case PeriodYear:
		return t.Year() == f.Year
	case PeriodMonth:
		return types.NewMonth(f.Year, f.Month).Contains(t)
	case PeriodWeek:
		if f.Week == 0 {
			return false
		}
		return types.NewWeek(f.Year, f.Week).Contains(t)
	}

	return false
}

// DaysBetween returns the absolute whole-day difference between two
// instants, rounded to the nearest day. Two timestamps less than twelve
// hours apart round to zero. Duration displays (for example the refuel
// cadence) rely on this rounding.
func DaysBetween(a, b time.Time) int {
	diff := b.Sub(a)
	if diff < 0 {
		diff = -diff
	}

	return int((diff + 12*time.Hour) / (24 * time.Hour))
}

// startOfDay returns the instant the calendar day of t begins.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// sameDay reports whether two instants fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
