package planner

import (
	"fmt"
	"time"

	"github.com/spendwise/backend/internal/models"
	"golang.org/x/exp/slices"
)

// Solar dates of the major Vietnamese lunar holidays, precalculated
// for the years we know them for. A year missing from this table
// simply has no lunar holidays in its schedule.
var lunarHolidays = map[int]struct{ tet, hungKings string }{
	2025: {tet: "2025-01-29", hungKings: "2025-04-07"},
	2026: {tet: "2026-02-17", hungKings: "2026-04-26"},
	2027: {tet: "2027-02-06", hungKings: "2027-04-16"},
}

// HolidayID derives the deterministic identifier for a holiday from
// its canonical date. Regenerating the schedule yields the same ID for
// the same logical holiday, which is what the merge keys on.
func HolidayID(date time.Time) string {
	return "holiday-" + date.Format("2006-01-02")
}

// UpcomingHolidays generates the forward-looking holiday schedule:
// the fixed solar holidays plus the mapped lunar holidays for the
// current and the next year, today or later, sorted ascending. When
// that leaves fewer than three holidays (around the end of a year),
// the year after next is generated as well.
func UpcomingHolidays(now time.Time) []models.Holiday {
	today := startOfDay(now)

	type event struct {
		name string
		date string
	}

	var holidays []models.Holiday
	generate := func(year int) {
		events := []event{
			{fmt.Sprintf("Tết Dương Lịch %d", year), fmt.Sprintf("%d-01-01", year)},
			{fmt.Sprintf("Giải phóng miền Nam %d", year), fmt.Sprintf("%d-04-30", year)},
			{fmt.Sprintf("Quốc tế Lao động %d", year), fmt.Sprintf("%d-05-01", year)},
			{fmt.Sprintf("Quốc khánh %d", year), fmt.Sprintf("%d-09-02", year)},
		}

		if lunar, ok := lunarHolidays[year]; ok {
			events = append(events,
				event{fmt.Sprintf("Tết Nguyên Đán %d", year), lunar.tet},
				event{fmt.Sprintf("Giỗ tổ Hùng Vương %d", year), lunar.hungKings},
			)
		}

		for _, event := range events {
			date, err := time.Parse("2006-01-02", event.date)
			if err != nil {
				continue
			}

			if date.Before(today) {
				continue
			}

			holidays = append(holidays, models.Holiday{
				HolidayID: HolidayID(date),
				Name:      event.name,
				Date:      date,
			})
		}
	}

	generate(today.Year())
	generate(today.Year() + 1)

	// Look ahead one more year if the list is short, e.g. at the
	// end of a year
	if len(holidays) < 3 {
		generate(today.Year() + 2)
	}

	slices.SortFunc(holidays, func(a, b models.Holiday) int {
		return a.Date.Compare(b.Date)
	})

	return holidays
}

// MergeHolidays reconciles a freshly generated schedule with the saved
// one. Name and date always come from the fresh schedule; the
// user-owned fields (taking off, leave dates, note) and the database
// identity come from the saved holiday with the same HolidayID.
// Saved holidays without a fresh counterpart are dropped, so the
// schedule self-heals when the lunar table is corrected.
func MergeHolidays(fresh, saved []models.Holiday) []models.Holiday {
	byID := make(map[string]models.Holiday, len(saved))
	for _, h := range saved {
		byID[h.HolidayID] = h
	}

	merged := make([]models.Holiday, 0, len(fresh))
	for _, h := range fresh {
		if prior, ok := byID[h.HolidayID]; ok {
			h.DefaultModel = prior.DefaultModel
			h.TakingOff = prior.TakingOff
			h.StartDate = prior.StartDate
			h.EndDate = prior.EndDate
			h.Note = prior.Note
		}

		merged = append(merged, h)
	}

	return merged
}
