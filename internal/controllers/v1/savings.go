package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/planner"
)

// RegisterSavingsRoutes registers the routes for the savings buffer
// with the RouterGroup that is passed.
func RegisterSavingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSavings)
	r.GET("", GetSavings)

	r.OPTIONS("/deposit", OptionsSavingsDeposit)
	r.POST("/deposit", DepositSavings)

	r.OPTIONS("/withdraw", OptionsSavingsWithdraw)
	r.POST("/withdraw", WithdrawSavings)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings
// @Success		204
// @Router			/v1/savings [options]
func OptionsSavings(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings
// @Success		204
// @Router			/v1/savings/deposit [options]
func OptionsSavingsDeposit(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings
// @Success		204
// @Router			/v1/savings/withdraw [options]
func OptionsSavingsWithdraw(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get savings
// @Description	Returns the savings buffer balance
// @Tags			Savings
// @Produce		json
// @Success		200	{object}	SavingsResponse
// @Failure		500	{object}	SavingsResponse
// @Router			/v1/savings [get]
func GetSavings(c *gin.Context) {
	settings, err := models.LoadSettings()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsResponse{
			Error: &s,
		})
		return
	}

	data := newSavings(settings)
	c.JSON(http.StatusOK, SavingsResponse{Data: &data})
}

// @Summary		Deposit savings
// @Description	Adds the amount to the savings buffer. Without an amount, the current week's surplus is moved into savings.
// @Tags			Savings
// @Produce		json
// @Success		201		{object}	SavingsResponse
// @Failure		400		{object}	SavingsResponse
// @Failure		500		{object}	SavingsResponse
// @Param			deposit	body		SavingsAmount	false	"Deposit"
// @Router			/v1/savings/deposit [post]
func DepositSavings(c *gin.Context) {
	var body SavingsAmount
	err := httputil.BindData(c, &body)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		s := err.Error()
		c.JSON(status(err), SavingsResponse{
			Error: &s,
		})
		return
	}

	amount := body.Amount
	if amount.IsZero() {
		// Without an explicit amount, the current week's surplus is
		// what gets moved into savings
		now := time.Now().In(time.UTC)

		data, err := plannerData()
		if err != nil {
			s := err.Error()
			c.JSON(status(err), SavingsResponse{
				Error: &s,
			})
			return
		}

		report := planner.BuildReport(data, planner.ThisWeek(now), now)
		if !report.Status.IsPositive() {
			s := errNoSurplus.Error()
			c.JSON(http.StatusBadRequest, SavingsResponse{
				Error: &s,
			})
			return
		}

		amount = report.Status
	}

	settings, err := models.DepositSavings(amount)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsResponse{
			Error: &s,
		})
		return
	}

	data := newSavings(settings)
	c.JSON(http.StatusCreated, SavingsResponse{Data: &data})
}

// @Summary		Withdraw savings
// @Description	Subtracts the amount from the savings buffer and records it as a flagged income entry
// @Tags			Savings
// @Produce		json
// @Success		201			{object}	SavingsResponse
// @Failure		400			{object}	SavingsResponse
// @Failure		500			{object}	SavingsResponse
// @Param			withdrawal	body		SavingsAmount	true	"Withdrawal"
// @Router			/v1/savings/withdraw [post]
func WithdrawSavings(c *gin.Context) {
	var body SavingsAmount
	err := httputil.BindData(c, &body)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsResponse{
			Error: &s,
		})
		return
	}

	settings, err := models.WithdrawSavings(body.Amount, time.Now().In(time.UTC))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsResponse{
			Error: &s,
		})
		return
	}

	data := newSavings(settings)
	c.JSON(http.StatusCreated, SavingsResponse{Data: &data})
}
