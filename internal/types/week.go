package types

import (
	"fmt"
	"time"
)

// Week is an ISO 8601 week in a specific ISO week-numbering year.
// Weeks start on Monday; week 1 is the week containing the year's
// first Thursday.
type Week struct {
	Year int `json:"year" example:"2025"` // ISO week-numbering year
	Week int `json:"week" example:"33"`   // ISO week, 1 to 53
}

// NewWeek returns a new Week.
func NewWeek(year, week int) Week {
	return Week{Year: year, Week: week}
}

// WeekOf returns the ISO week in which a time occurs.
func WeekOf(t time.Time) Week {
	year, week := t.ISOWeek()
	return Week{Year: year, Week: week}
}

// String returns the week formatted as YYYY-WNN.
func (w Week) String() string {
	return fmt.Sprintf("%04d-W%02d", w.Year, w.Week)
}

// Start returns the Monday 00:00:00 UTC instant the week begins with.
//
// January 4 is always part of ISO week 1, so the Monday of week 1 is
// found relative to it and all other weeks are offset in 7 day steps.
func (w Week) Start() time.Time {
	jan4 := time.Date(w.Year, time.January, 4, 0, 0, 0, 0, time.UTC)

	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is day 7 in ISO 8601
	}

	monday := jan4.AddDate(0, 0, 1-weekday)
	return monday.AddDate(0, 0, (w.Week-1)*7)
}

// End returns the last instant of the week, Sunday 23:59:59.999.
func (w Week) End() time.Time {
	return w.Start().AddDate(0, 0, 7).Add(-time.Millisecond)
}

// Contains reports whether the time instant is in the week,
// inclusive of both Start and End.
func (w Week) Contains(t time.Time) bool {
	return !t.Before(w.Start()) && !t.After(w.End())
}

// Next returns the following week.
func (w Week) Next() Week {
	return WeekOf(w.Start().AddDate(0, 0, 7))
}

// Equal reports whether w and v represent the same week.
func (w Week) Equal(v Week) bool {
	return w.Year == v.Year && w.Week == v.Week
}
