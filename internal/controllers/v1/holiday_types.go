package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/planner"
)

// HolidayEditable represents all user configurable parameters. The
// name and date of a holiday come from the generated schedule and
// cannot be changed.
type HolidayEditable struct {
	TakingOff bool       `json:"takingOff" example:"true"` // Whether the user plans to take time off
	StartDate *time.Time `json:"startDate"`                // First day of leave
	EndDate   *time.Time `json:"endDate"`                  // Last day of leave, inclusive
	Note      string     `json:"note" example:"Về quê"`
}

func (editable HolidayEditable) model() models.Holiday {
	return models.Holiday{
		TakingOff: editable.TakingOff,
		StartDate: editable.StartDate,
		EndDate:   editable.EndDate,
		Note:      editable.Note,
	}
}

type HolidayLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/holidays/6f02d9e9-fd62-44ae-8ea3-9eda2e8b5e73"` // The holiday itself
}

type Holiday struct {
	models.Holiday
	Links HolidayLinks `json:"links"`
}

func newHoliday(c *gin.Context, model models.Holiday) Holiday {
	return Holiday{
		Holiday: model,
		Links: HolidayLinks{
			Self: fmt.Sprintf("%s/holidays/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type HolidayListResponse struct {
	Data  []Holiday `json:"data"`                                               // Upcoming holidays, soonest first
	Error *string   `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

type HolidayResponse struct {
	Data  *Holiday `json:"data"`                                               // Data for the holiday
	Error *string  `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

type ReadinessResponse struct {
	Data  *planner.Readiness `json:"data"` // The projection, null when no leave is planned
	Error *string            `json:"error" example:"the request body must not be empty"`
}
