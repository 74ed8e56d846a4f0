package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/planner"
	"github.com/spendwise/backend/internal/types"
)

// RegisterReportRoutes registers the routes for the report with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsReport)
	r.GET("", GetReport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Report
// @Success		204
// @Router			/v1/report [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get report
// @Description	Returns the financial summary for a period, defaulting to the current week, plus the per-debt view for the period's month
// @Tags			Report
// @Produce		json
// @Success		200	{object}	ReportResponse
// @Failure		400	{object}	ReportResponse
// @Failure		500	{object}	ReportResponse
// @Router			/v1/report [get]
// @Param			type	query	string	false	"Period type: all, year, month or week"
// @Param			year	query	int		false	"Year of the period"
// @Param			month	query	int		false	"Month of the period"
// @Param			week	query	int		false	"ISO week of the period"
func GetReport(c *gin.Context) {
	now := time.Now().In(time.UTC)

	var query PeriodQuery

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&query)

	filter, err := query.filter(planner.ThisWeek(now))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	data, err := plannerData()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	report := planner.BuildReport(data, filter, now)

	// The debt view always covers one reporting bucket. A month period
	// names it directly, every other period uses the current month.
	bucket := types.MonthOf(now)
	if filter.Type == planner.PeriodMonth {
		bucket = types.NewMonth(filter.Year, filter.Month)
	}

	display := planner.DisplayDebts(data.Debts, bucket)
	statuses := planner.DebtStatuses(display, report.DisposableIncome, now)

	r := ReportData{
		Report: report,
		Debts:  statuses,
	}
	c.JSON(http.StatusOK, ReportResponse{Data: &r})
}
