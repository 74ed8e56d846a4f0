package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/planner"
)

// RegisterEntryRoutes registers the routes for entries with
// the RouterGroup that is passed.
func RegisterEntryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsEntryList)
		r.GET("", GetEntries)
		r.POST("", CreateEntries)
	}

	// Entry with ID
	{
		r.OPTIONS("/:id", OptionsEntryDetail)
		r.GET("/:id", GetEntry)
		r.PATCH("/:id", UpdateEntry)
		r.DELETE("/:id", DeleteEntry)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Entries
// @Success		204
// @Router			/v1/entries [options]
func OptionsEntryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Entries
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the entry"
// @Router			/v1/entries/{id} [options]
func OptionsEntryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Entry{}, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create entries
// @Description	Creates new income, food or misc entries
// @Tags			Entries
// @Produce		json
// @Success		201		{object}	EntryCreateResponse
// @Failure		400		{object}	EntryCreateResponse
// @Failure		500		{object}	EntryCreateResponse
// @Param			entries	body		[]EntryEditable	true	"Entries"
// @Router			/v1/entries [post]
func CreateEntries(c *gin.Context) {
	var editables []EntryEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EntryCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := EntryCreateResponse{}

	for _, editable := range editables {
		entry := editable.model()

		err = models.DB.Create(&entry).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newEntry(c, entry)
		r.Data = append(r.Data, EntryResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get entries
// @Description	Returns a list of entries
// @Tags			Entries
// @Produce		json
// @Success		200	{object}	EntryListResponse
// @Failure		400	{object}	EntryListResponse
// @Failure		500	{object}	EntryListResponse
// @Router			/v1/entries [get]
// @Param			category			query	string	false	"Filter by category"
// @Param			savingsWithdrawal	query	bool	false	"Only savings withdrawals"
// @Param			type				query	string	false	"Period type: all, year, month or week"
// @Param			year				query	int		false	"Year of the period"
// @Param			month				query	int		false	"Month of the period"
// @Param			week				query	int		false	"ISO week of the period"
func GetEntries(c *gin.Context) {
	var filter EntryQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	periodFilter, err := filter.PeriodQuery.filter(planner.Filter{Type: planner.PeriodAll})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.Order("date ASC, created_at ASC")

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	if c.Request.URL.Query().Has("savingsWithdrawal") {
		q = q.Where("savings_withdrawal = ?", filter.SavingsWithdrawal)
	}

	var entries []models.Entry
	err = q.Find(&entries).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryListResponse{
			Error: &s,
		})
		return
	}

	// ISO week periods cannot be expressed as a SQL condition, the
	// period is filtered here
	data := make([]Entry, 0)
	for _, entry := range entries {
		if periodFilter.Contains(entry.Date) {
			data = append(data, newEntry(c, entry))
		}
	}

	c.JSON(http.StatusOK, EntryListResponse{Data: data})
}

// @Summary		Get entry
// @Description	Returns a specific entry
// @Tags			Entries
// @Produce		json
// @Success		200	{object}	EntryResponse
// @Failure		400	{object}	EntryResponse
// @Failure		404	{object}	EntryResponse
// @Failure		500	{object}	EntryResponse
// @Param			id	path		URIID	true	"ID of the entry"
// @Router			/v1/entries/{id} [get]
func GetEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &s,
		})
		return
	}

	var entry models.Entry
	err = models.DB.First(&entry, "id = ?", uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &s,
		})
		return
	}

	data := newEntry(c, entry)
	c.JSON(http.StatusOK, EntryResponse{Data: &data})
}

// @Summary		Update entry
// @Description	Updates an income entry. Food and misc entries are immutable.
// @Tags			Entries
// @Accept			json
// @Produce		json
// @Success		200		{object}	EntryResponse
// @Failure		400		{object}	EntryResponse
// @Failure		404		{object}	EntryResponse
// @Failure		500		{object}	EntryResponse
// @Param			id		path		URIID			true	"ID of the entry"
// @Param			entry	body		EntryEditable	true	"Entry"
// @Router			/v1/entries/{id} [patch]
func UpdateEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &s,
		})
		return
	}

	var entry models.Entry
	err = models.DB.First(&entry, "id = ?", uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &s,
		})
		return
	}

	if entry.Category != models.CategoryIncome {
		s := errEntryNotEditable.Error()
		c.JSON(http.StatusBadRequest, EntryResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, EntryEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &s,
		})
		return
	}

	var data EntryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &s,
		})
		return
	}

	// The category is fixed for the lifetime of an entry
	data.Category = entry.Category

	err = models.DB.Model(&entry).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EntryResponse{
			Error: &s,
		})
		return
	}

	r := newEntry(c, entry)
	c.JSON(http.StatusOK, EntryResponse{Data: &r})
}

// @Summary		Delete entry
// @Description	Deletes a misc entry. Income and food entries are kept for the report history.
// @Tags			Entries
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the entry"
// @Router			/v1/entries/{id} [delete]
func DeleteEntry(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var entry models.Entry
	err = models.DB.First(&entry, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if entry.Category != models.CategoryMisc {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errEntryNotDeletable.Error(),
		})
		return
	}

	err = models.DB.Delete(&entry).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
