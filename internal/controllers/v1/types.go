package v1

import (
	"time"

	"github.com/spendwise/backend/internal/planner"
	sw_uuid "github.com/spendwise/backend/internal/uuid"
)

type URIID struct {
	ID sw_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// PeriodQuery is the reporting period part of a query string.
type PeriodQuery struct {
	Type  string `form:"type" example:"week"` // Period type: all, year, month or week
	Year  int    `form:"year" example:"2025"`
	Month int    `form:"month" example:"8"`
	Week  int    `form:"week" example:"33"` // ISO 8601 week number
}

// filter converts the query to a planner filter. The fallback is used
// when no period type is in the query string.
func (q PeriodQuery) filter(fallback planner.Filter) (planner.Filter, error) {
	switch planner.PeriodType(q.Type) {
	case "":
		return fallback, nil
	case planner.PeriodAll:
		return planner.Filter{Type: planner.PeriodAll}, nil
	case planner.PeriodYear:
		return planner.Filter{Type: planner.PeriodYear, Year: q.Year}, nil
	case planner.PeriodMonth:
		return planner.Filter{Type: planner.PeriodMonth, Year: q.Year, Month: time.Month(q.Month)}, nil
	case planner.PeriodWeek:
		return planner.Filter{Type: planner.PeriodWeek, Year: q.Year, Week: q.Week}, nil
	}

	return planner.Filter{}, errPeriodTypeInvalid
}
