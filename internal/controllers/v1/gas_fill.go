package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

// RegisterGasFillRoutes registers the routes for gas fills with
// the RouterGroup that is passed.
func RegisterGasFillRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsGasFillList)
		r.GET("", GetGasFills)
		r.POST("", CreateGasFill)
	}

	// Today's refuel status and toggle
	{
		r.OPTIONS("/today", OptionsGasFillToday)
		r.GET("/today", GetGasFillToday)
		r.POST("/today", ToggleGasFillToday)
	}

	// Gas fill with ID
	{
		r.OPTIONS("/:id", OptionsGasFillDetail)
		r.DELETE("/:id", DeleteGasFill)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			GasFills
// @Success		204
// @Router			/v1/gas-fills [options]
func OptionsGasFillList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			GasFills
// @Success		204
// @Router			/v1/gas-fills/today [options]
func OptionsGasFillToday(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			GasFills
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the gas fill"
// @Router			/v1/gas-fills/{id} [options]
func OptionsGasFillDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.GasFill{}, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsDelete(c)
}

// @Summary		Create gas fill
// @Description	Records a refuel, defaulting to now
// @Tags			GasFills
// @Produce		json
// @Success		201		{object}	GasFillResponse
// @Failure		400		{object}	GasFillResponse
// @Failure		500		{object}	GasFillResponse
// @Param			gasFill	body		GasFillEditable	true	"Gas fill"
// @Router			/v1/gas-fills [post]
func CreateGasFill(c *gin.Context) {
	var editable GasFillEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GasFillResponse{
			Error: &s,
		})
		return
	}

	fill := editable.model()
	err = models.DB.Create(&fill).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GasFillResponse{
			Error: &s,
		})
		return
	}

	data := newGasFill(c, fill)
	c.JSON(http.StatusCreated, GasFillResponse{Data: &data})
}

// @Summary		Get gas fills
// @Description	Returns the refuel history, oldest first
// @Tags			GasFills
// @Produce		json
// @Success		200	{object}	GasFillListResponse
// @Failure		500	{object}	GasFillListResponse
// @Router			/v1/gas-fills [get]
func GetGasFills(c *gin.Context) {
	var fills []models.GasFill
	err := models.DB.Order("date ASC").Find(&fills).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GasFillListResponse{
			Error: &s,
		})
		return
	}

	data := make([]GasFill, 0, len(fills))
	for _, fill := range fills {
		data = append(data, newGasFill(c, fill))
	}

	c.JSON(http.StatusOK, GasFillListResponse{Data: data})
}

// @Summary		Refuel status
// @Description	Returns whether there is a refuel today and the current refuel cadence
// @Tags			GasFills
// @Produce		json
// @Success		200	{object}	GasTodayResponse
// @Failure		500	{object}	GasTodayResponse
// @Router			/v1/gas-fills/today [get]
func GetGasFillToday(c *gin.Context) {
	gasStatus, err := todayStatus(time.Now().In(time.UTC))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GasTodayResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, GasTodayResponse{Data: &gasStatus})
}

// @Summary		Toggle today's refuel
// @Description	Records a refuel for today, or removes it if one exists
// @Tags			GasFills
// @Produce		json
// @Success		200	{object}	GasTodayResponse
// @Failure		500	{object}	GasTodayResponse
// @Router			/v1/gas-fills/today [post]
func ToggleGasFillToday(c *gin.Context) {
	now := time.Now().In(time.UTC)
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var todays []models.GasFill
	err := models.DB.Where("date >= ? AND date < ?", startOfDay, startOfDay.AddDate(0, 0, 1)).Find(&todays).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GasTodayResponse{
			Error: &s,
		})
		return
	}

	if len(todays) > 0 {
		err = models.DB.Delete(&todays).Error
	} else {
		err = models.DB.Create(&models.GasFill{Date: now}).Error
	}
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GasTodayResponse{
			Error: &s,
		})
		return
	}

	gasStatus, err := todayStatus(now)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GasTodayResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, GasTodayResponse{Data: &gasStatus})
}

// @Summary		Delete gas fill
// @Description	Deletes a refuel from the history
// @Tags			GasFills
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the gas fill"
// @Router			/v1/gas-fills/{id} [delete]
func DeleteGasFill(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var fill models.GasFill
	err = models.DB.First(&fill, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&fill).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
