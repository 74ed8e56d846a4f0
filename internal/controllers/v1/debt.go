package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/planner"
	"github.com/spendwise/backend/internal/types"
)

// RegisterDebtRoutes registers the routes for debts with
// the RouterGroup that is passed.
func RegisterDebtRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDebtList)
		r.GET("", GetDebts)
		r.POST("", CreateDebts)
	}

	// Debt with ID
	{
		r.OPTIONS("/:id", OptionsDebtDetail)
		r.GET("/:id", GetDebt)
		r.PATCH("/:id", UpdateDebt)
		r.DELETE("/:id", DeleteDebt)
	}

	// Transaction ledger of a debt
	{
		r.OPTIONS("/:id/transactions", OptionsDebtTransactions)
		r.GET("/:id/transactions", GetDebtTransactions)
		r.POST("/:id/transactions", CreateDebtTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Router			/v1/debts [options]
func OptionsDebtList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the debt"
// @Router			/v1/debts/{id} [options]
func OptionsDebtDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Debt{}, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the debt"
// @Router			/v1/debts/{id}/transactions [options]
func OptionsDebtTransactions(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Debt{}, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPost(c)
}

// @Summary		Create debts
// @Description	Creates debts. A recurring request expands into one debt per period, a deferred request into the pay-later bill for the billing month.
// @Tags			Debts
// @Produce		json
// @Success		201		{object}	DebtCreateResponse
// @Failure		400		{object}	DebtCreateResponse
// @Failure		500		{object}	DebtCreateResponse
// @Param			debts	body		[]DebtCreate	true	"Debts"
// @Router			/v1/debts [post]
func CreateDebts(c *gin.Context) {
	var creates []DebtCreate

	// Bind data and return error if not possible
	err := httputil.BindData(c, &creates)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	httpStatus := http.StatusCreated
	r := DebtCreateResponse{}

	for _, create := range creates {
		debts, err := create.models()
		if err != nil {
			httpStatus = r.appendError(err, httpStatus)
			continue
		}

		for _, debt := range debts {
			err = models.DB.Create(&debt).Error
			if err != nil {
				httpStatus = r.appendError(err, httpStatus)
				continue
			}

			data := newDebt(c, debt)
			r.Data = append(r.Data, DebtResponse{Data: &data})
		}
	}

	c.JSON(httpStatus, r)
}

// @Summary		Get debts
// @Description	Returns a list of debts, due date ascending
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	DebtListResponse
// @Failure		500	{object}	DebtListResponse
// @Router			/v1/debts [get]
// @Param			name	query	string	false	"Glob pattern for the debt name"
// @Param			source	query	string	false	"Filter by source"
// @Param			active	query	bool	false	"Only active (or only settled) debts"
// @Param			month	query	string	false	"Only debts bucketed to this month, YYYY-MM"
func GetDebts(c *gin.Context) {
	var filter DebtQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	var bucket types.Month
	if filter.Month != "" {
		var err error
		bucket, err = types.ParseMonth(filter.Month)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, DebtListResponse{
				Error: &s,
			})
			return
		}
	}

	q := models.DB.Order("due_date ASC, created_at ASC")

	if filter.Source != "" {
		q = q.Where("source = ?", filter.Source)
	}

	var debts []models.Debt
	err := q.Find(&debts).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtListResponse{
			Error: &s,
		})
		return
	}

	// The name glob, the activity state and the reporting bucket are
	// evaluated here since none of them maps to a SQL condition
	data := make([]Debt, 0)
	for _, debt := range debts {
		if filter.Name != "" && !glob.Glob(filter.Name, debt.Name) {
			continue
		}

		if c.Request.URL.Query().Has("active") && debt.Active() != filter.Active {
			continue
		}

		if !bucket.IsZero() && !debt.BucketMonth().Equal(bucket) {
			continue
		}

		data = append(data, newDebt(c, debt))
	}

	c.JSON(http.StatusOK, DebtListResponse{Data: data})
}

// @Summary		Get debt
// @Description	Returns a specific debt
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	DebtResponse
// @Failure		400	{object}	DebtResponse
// @Failure		404	{object}	DebtResponse
// @Failure		500	{object}	DebtResponse
// @Param			id	path		URIID	true	"ID of the debt"
// @Router			/v1/debts/{id} [get]
func GetDebt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	var debt models.Debt
	err = models.DB.First(&debt, "id = ?", uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	data := newDebt(c, debt)
	c.JSON(http.StatusOK, DebtResponse{Data: &data})
}

// @Summary		Update debt
// @Description	Updates a debt. The recurrence marker in the name is regenerated, edit the base name only.
// @Tags			Debts
// @Accept			json
// @Produce		json
// @Success		200		{object}	DebtResponse
// @Failure		400		{object}	DebtResponse
// @Failure		404		{object}	DebtResponse
// @Failure		500		{object}	DebtResponse
// @Param			id		path		URIID			true	"ID of the debt"
// @Param			debt	body		DebtEditable	true	"Debt"
// @Router			/v1/debts/{id} [patch]
func UpdateDebt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	var debt models.Debt
	err = models.DB.First(&debt, "id = ?", uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, DebtEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	var data DebtEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	// Generated recurrence markers stay authoritative, only the base
	// name is editable
	data.Name = planner.StripRecurrenceSuffix(data.Name)

	err = models.DB.Model(&debt).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	r := newDebt(c, debt)
	c.JSON(http.StatusOK, DebtResponse{Data: &r})
}

// @Summary		Delete debt
// @Description	Deletes a debt and its ledger
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the debt"
// @Router			/v1/debts/{id} [delete]
func DeleteDebt(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var debt models.Debt
	err = models.DB.First(&debt, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&debt).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get transactions
// @Description	Returns the debt's ledger, newest first
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		404	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Param			id	path		URIID	true	"ID of the debt"
// @Router			/v1/debts/{id}/transactions [get]
func GetDebtTransactions(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&models.Debt{}, "id = ?", uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &s,
		})
		return
	}

	transactions := make([]models.DebtTransaction, 0)
	err = models.DB.Where("debt_id = ?", uri.ID).Order("date DESC, created_at DESC").Find(&transactions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: transactions})
}

// @Summary		Create transaction
// @Description	Records a payment or withdrawal on the debt and returns the debt with the recomputed paid amount
// @Tags			Debts
// @Produce		json
// @Success		201			{object}	DebtResponse
// @Failure		400			{object}	DebtResponse
// @Failure		404			{object}	DebtResponse
// @Failure		500			{object}	DebtResponse
// @Param			id			path		URIID				true	"ID of the debt"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/debts/{id}/transactions [post]
func CreateDebtTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	var editable TransactionEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	debt, err := models.RecordTransaction(uri.ID.UUID, editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	data := newDebt(c, debt)
	c.JSON(http.StatusCreated, DebtResponse{Data: &data})
}
