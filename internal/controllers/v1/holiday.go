package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/planner"
	"golang.org/x/exp/slices"
)

// RegisterHolidayRoutes registers the routes for holidays with
// the RouterGroup that is passed.
func RegisterHolidayRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsHolidayList)
		r.GET("", GetHolidays)
	}

	// Leave readiness projection
	{
		r.OPTIONS("/readiness", OptionsHolidayReadiness)
		r.GET("/readiness", GetHolidayReadiness)
	}

	// Holiday with ID
	{
		r.OPTIONS("/:id", OptionsHolidayDetail)
		r.GET("/:id", GetHoliday)
		r.PATCH("/:id", UpdateHoliday)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Holidays
// @Success		204
// @Router			/v1/holidays [options]
func OptionsHolidayList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Holidays
// @Success		204
// @Router			/v1/holidays/readiness [options]
func OptionsHolidayReadiness(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Holidays
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the holiday"
// @Router			/v1/holidays/{id} [options]
func OptionsHolidayDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Holiday{}, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatch(c)
}

// refreshHolidays regenerates the holiday schedule, reattaches the
// saved leave planning and persists the result. Saved holidays that
// fell out of the schedule are removed for good.
func refreshHolidays(now time.Time) ([]models.Holiday, error) {
	var saved []models.Holiday
	err := models.DB.Order("date ASC").Find(&saved).Error
	if err != nil {
		return nil, err
	}

	fresh := planner.UpcomingHolidays(now)
	merged := planner.MergeHolidays(fresh, saved)

	kept := make([]string, 0, len(merged))
	for i := range merged {
		err = models.DB.Save(&merged[i]).Error
		if err != nil {
			return nil, err
		}

		kept = append(kept, merged[i].HolidayID)
	}

	for _, h := range saved {
		if !slices.Contains(kept, h.HolidayID) {
			err = models.DB.Unscoped().Delete(&h).Error
			if err != nil {
				return nil, err
			}
		}
	}

	return merged, nil
}

// @Summary		Get holidays
// @Description	Regenerates the upcoming holiday schedule, keeping the saved leave planning, and returns it soonest first
// @Tags			Holidays
// @Produce		json
// @Success		200	{object}	HolidayListResponse
// @Failure		500	{object}	HolidayListResponse
// @Router			/v1/holidays [get]
func GetHolidays(c *gin.Context) {
	holidays, err := refreshHolidays(time.Now().In(time.UTC))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HolidayListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Holiday, 0, len(holidays))
	for _, holiday := range holidays {
		data = append(data, newHoliday(c, holiday))
	}

	c.JSON(http.StatusOK, HolidayListResponse{Data: data})
}

// @Summary		Leave readiness
// @Description	Projects the funds needed for the first holiday with planned leave. Data is null when no leave is planned.
// @Tags			Holidays
// @Produce		json
// @Success		200	{object}	ReadinessResponse
// @Failure		500	{object}	ReadinessResponse
// @Router			/v1/holidays/readiness [get]
func GetHolidayReadiness(c *gin.Context) {
	now := time.Now().In(time.UTC)

	holidays, err := refreshHolidays(now)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReadinessResponse{
			Error: &s,
		})
		return
	}

	data, err := plannerData()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReadinessResponse{
			Error: &s,
		})
		return
	}

	readiness, ok := planner.HolidayReadiness(holidays, data.Debts, data.Settings, now)
	if !ok {
		c.JSON(http.StatusOK, ReadinessResponse{})
		return
	}

	c.JSON(http.StatusOK, ReadinessResponse{Data: &readiness})
}

// @Summary		Get holiday
// @Description	Returns a specific holiday
// @Tags			Holidays
// @Produce		json
// @Success		200	{object}	HolidayResponse
// @Failure		400	{object}	HolidayResponse
// @Failure		404	{object}	HolidayResponse
// @Failure		500	{object}	HolidayResponse
// @Param			id	path		URIID	true	"ID of the holiday"
// @Router			/v1/holidays/{id} [get]
func GetHoliday(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HolidayResponse{
			Error: &s,
		})
		return
	}

	var holiday models.Holiday
	err = models.DB.First(&holiday, "id = ?", uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HolidayResponse{
			Error: &s,
		})
		return
	}

	data := newHoliday(c, holiday)
	c.JSON(http.StatusOK, HolidayResponse{Data: &data})
}

// @Summary		Update holiday
// @Description	Updates the leave planning of a holiday. Only one holiday can be marked for taking time off at a time.
// @Tags			Holidays
// @Accept			json
// @Produce		json
// @Success		200		{object}	HolidayResponse
// @Failure		400		{object}	HolidayResponse
// @Failure		404		{object}	HolidayResponse
// @Failure		500		{object}	HolidayResponse
// @Param			id		path		URIID			true	"ID of the holiday"
// @Param			holiday	body		HolidayEditable	true	"Holiday"
// @Router			/v1/holidays/{id} [patch]
func UpdateHoliday(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HolidayResponse{
			Error: &s,
		})
		return
	}

	var holiday models.Holiday
	err = models.DB.First(&holiday, "id = ?", uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HolidayResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, HolidayEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HolidayResponse{
			Error: &s,
		})
		return
	}

	var data HolidayEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HolidayResponse{
			Error: &s,
		})
		return
	}

	if data.TakingOff {
		var planning int64
		err = models.DB.Model(&models.Holiday{}).Where("taking_off = ? AND id != ?", true, holiday.ID).Count(&planning).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), HolidayResponse{
				Error: &s,
			})
			return
		}

		if planning > 0 {
			s := models.ErrHolidayAlreadyPlanning.Error()
			c.JSON(http.StatusBadRequest, HolidayResponse{
				Error: &s,
			})
			return
		}
	}

	err = models.DB.Model(&holiday).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HolidayResponse{
			Error: &s,
		})
		return
	}

	r := newHoliday(c, holiday)
	c.JSON(http.StatusOK, HolidayResponse{Data: &r})
}
