package planner

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
)

var one = decimal.NewFromInt(1)

// Readiness is the financial projection for an upcoming leave: how
// much money the time off requires and what to save per week to close
// the gap before it starts.
type Readiness struct {
	Holiday models.Holiday `json:"holiday"`

	DaysOff   int `json:"daysOff" example:"5"`    // Length of the leave, inclusive of both endpoints
	DaysUntil int `json:"daysUntil" example:"34"` // Days until the leave starts

	DebtDueInHoliday decimal.Decimal `json:"debtDueInHoliday" example:"0"` // Remaining balance of debts due during the leave
	TotalNeeded      decimal.Decimal `json:"totalNeeded" example:"71428.57"`
	Gap              decimal.Decimal `json:"gap" example:"71428.57"` // Zero means ready
	WeeklySavingGoal decimal.Decimal `json:"weeklySavingGoal" example:"14705.88"`
}

// HolidayReadiness projects the funds needed for the first holiday
// that is marked for taking time off and has both leave dates set.
// The second return value is false when no such holiday exists.
//
// The daily burn rate assumes the nominal food budget, not the actual
// recent average, on top of the proportional fixed costs.
func HolidayReadiness(holidays []models.Holiday, debts []models.Debt, settings models.Settings, now time.Time) (Readiness, bool) {
	var holiday models.Holiday
	found := false
	for _, h := range holidays {
		if h.PlansLeave() {
			holiday = h
			found = true
			break
		}
	}

	if !found {
		return Readiness{}, false
	}

	start := *holiday.StartDate
	end := *holiday.EndDate

	daysOff := DaysBetween(start, end) + 1
	if daysOff < 0 {
		daysOff = 0
	}

	daysUntil := DaysBetween(now, start)
	if daysUntil < 0 {
		daysUntil = 0
	}

	// Fractional weeks, floored at one: rounding up here would
	// understate the weekly goal when the leave is close.
	weeksUntil := decimal.NewFromInt(int64(daysUntil)).Div(seven)
	if weeksUntil.LessThan(one) {
		weeksUntil = one
	}

	burnRatePerDay := FixedExpenses.Add(settings.FoodBudget).Div(seven)

	debtDue := decimal.Zero
	for _, debt := range ActiveDebts(debts) {
		if !debt.DueDate.Before(start) && !debt.DueDate.After(end) {
			debtDue = debtDue.Add(debt.Remaining())
		}
	}

	totalNeeded := burnRatePerDay.Mul(decimal.NewFromInt(int64(daysOff))).Add(debtDue)

	gap := totalNeeded.Sub(settings.SavingsBalance)
	if gap.IsNegative() {
		gap = decimal.Zero
	}

	return Readiness{
		Holiday:          holiday,
		DaysOff:          daysOff,
		DaysUntil:        daysUntil,
		DebtDueInHoliday: debtDue,
		TotalNeeded:      totalNeeded,
		Gap:              gap,
		WeeklySavingGoal: gap.Div(weeksUntil),
	}, true
}
