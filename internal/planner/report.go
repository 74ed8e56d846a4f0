package planner

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
	"golang.org/x/exp/slices"
)

var seven = decimal.NewFromInt(7)

// Data is everything the aggregation needs, already loaded.
type Data struct {
	Entries  []models.Entry
	Debts    []models.Debt
	GasFills []models.GasFill
	Settings models.Settings
}

// DaysOff is the "can I afford time off" projection. Unlimited is set
// when there is no active debt or no spending to burn through.
type DaysOff struct {
	Unlimited bool  `json:"unlimited" example:"false"`
	Days      int64 `json:"days" example:"3"`
}

// GasStatus describes the refuel cadence.
type GasStatus struct {
	FilledToday   bool `json:"filledToday" example:"true"`
	LastInterval  *int `json:"lastInterval,omitempty" example:"6"` // Days between the last two fills
	ShortInterval bool `json:"shortInterval" example:"false"`      // Last interval was under five days
}

// InternetStatus describes the internet renewal cadence.
type InternetStatus struct {
	PaidRecently   bool `json:"paidRecently" example:"true"` // Paid less than seven days ago
	RenewalWarning bool `json:"renewalWarning" example:"false"`
}

// Report is the derived financial summary for one reporting period.
type Report struct {
	Filter Filter `json:"filter"`

	Income       decimal.Decimal `json:"income" example:"2000000"`
	FoodSpending decimal.Decimal `json:"foodSpending" example:"315000"`
	MiscSpending decimal.Decimal `json:"miscSpending" example:"80000"`

	WeeklyDebtContribution decimal.Decimal `json:"weeklyDebtContribution" example:"250000"`
	DebtPaid               decimal.Decimal `json:"debtPaid" example:"600000"`

	PlannedSpending  decimal.Decimal `json:"plannedSpending" example:"765000"`
	ActualSpending   decimal.Decimal `json:"actualSpending" example:"1095000"`
	Status           decimal.Decimal `json:"status" example:"905000"`           // Income minus actual spending
	DisposableIncome decimal.Decimal `json:"disposableIncome" example:"1505000"` // Excludes debt payments, feeds the suggestions

	DaysOffCanTake DaysOff        `json:"daysOffCanTake"`
	Gas            GasStatus      `json:"gas"`
	Internet       InternetStatus `json:"internet"`
}

// FilteredTotal sums the amounts of all entries inside the period.
func FilteredTotal(entries []models.Entry, filter Filter) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range entries {
		if filter.Contains(entry.Date) {
			total = total.Add(entry.Amount)
		}
	}

	return total
}

// ActiveDebts returns the debts that still have an open balance.
func ActiveDebts(debts []models.Debt) []models.Debt {
	var active []models.Debt
	for _, debt := range debts {
		if debt.Active() {
			active = append(active, debt)
		}
	}

	return active
}

// WeeklyDebtContribution is the amount to set aside per week so that
// every active debt is paid off by its due date. A debt already past
// due contributes its full remaining balance undiluted.
func WeeklyDebtContribution(debts []models.Debt, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, debt := range ActiveDebts(debts) {
		remaining := debt.Remaining()
		if !remaining.IsPositive() {
			continue
		}

		if debt.DueDate.Before(now) {
			total = total.Add(remaining)
			continue
		}

		weeks := (DaysBetween(now, debt.DueDate) + 6) / 7
		if weeks < 1 {
			weeks = 1
		}

		total = total.Add(remaining.Div(decimal.NewFromInt(int64(weeks))))
	}

	return total
}

// DebtPaid sums all payment transactions inside the period, across
// active and completed debts. Withdrawals reduce a debt's paid amount
// but are not a spending event, so they are excluded here.
func DebtPaid(debts []models.Debt, filter Filter) decimal.Decimal {
	total := decimal.Zero
	for _, debt := range debts {
		for _, transaction := range debt.Transactions {
			if transaction.Type == models.TransactionPayment && filter.Contains(transaction.Date) {
				total = total.Add(transaction.Amount)
			}
		}
	}

	return total
}

// DisplayDebts returns the active debts assigned to the given
// reporting bucket, sorted ascending by due date.
func DisplayDebts(debts []models.Debt, bucket types.Month) []models.Debt {
	var display []models.Debt
	for _, debt := range ActiveDebts(debts) {
		if debt.BucketMonth().Equal(bucket) {
			display = append(display, debt)
		}
	}

	slices.SortFunc(display, func(a, b models.Debt) int {
		return a.DueDate.Compare(b.DueDate)
	})

	return display
}

// BuildReport computes the full aggregation for the period.
func BuildReport(data Data, filter Filter, now time.Time) Report {
	var income, food, misc []models.Entry
	for _, entry := range data.Entries {
		switch entry.Category {
		case models.CategoryIncome:
			income = append(income, entry)
		case models.CategoryFood:
			food = append(food, entry)
		case models.CategoryMisc:
			misc = append(misc, entry)
		}
	}

	report := Report{
		Filter:       filter,
		Income:       FilteredTotal(income, filter),
		FoodSpending: FilteredTotal(food, filter),
		MiscSpending: FilteredTotal(misc, filter),
	}

	report.WeeklyDebtContribution = WeeklyDebtContribution(data.Debts, now)
	report.DebtPaid = DebtPaid(data.Debts, filter)

	report.PlannedSpending = FixedExpenses.
		Add(data.Settings.FoodBudget).
		Add(data.Settings.MiscBudget).
		Add(report.WeeklyDebtContribution)
	report.ActualSpending = FixedExpenses.
		Add(report.FoodSpending).
		Add(report.MiscSpending).
		Add(report.DebtPaid)

	report.Status = report.Income.Sub(report.ActualSpending)
	report.DisposableIncome = report.Income.
		Sub(FixedExpenses).
		Sub(report.FoodSpending).
		Sub(report.MiscSpending)

	report.DaysOffCanTake = daysOffCanTake(data.Debts, report.Income, report.ActualSpending)
	report.Gas = gasStatus(data.GasFills, now)
	report.Internet = internetStatus(data.Settings.LastInternetPayment, now)

	return report
}

// daysOffCanTake projects how many days the period surplus covers at
// the current spending rate. With no active debt or no spending there
// is nothing to run out of.
func daysOffCanTake(debts []models.Debt, income, actualSpending decimal.Decimal) DaysOff {
	remaining := decimal.Zero
	for _, debt := range ActiveDebts(debts) {
		remaining = remaining.Add(debt.Remaining())
	}

	if !remaining.IsPositive() {
		return DaysOff{Unlimited: true}
	}

	daily := actualSpending.Div(seven)
	if !daily.IsPositive() {
		return DaysOff{Unlimited: true}
	}

	surplus := income.Sub(actualSpending)
	if !surplus.IsPositive() {
		return DaysOff{}
	}

	return DaysOff{Days: surplus.Div(daily).Floor().IntPart()}
}

func gasStatus(fills []models.GasFill, now time.Time) GasStatus {
	var status GasStatus
	if len(fills) == 0 {
		return status
	}

	last := fills[len(fills)-1]
	status.FilledToday = sameDay(last.Date, now)

	if len(fills) >= 2 {
		interval := DaysBetween(fills[len(fills)-2].Date, last.Date)
		status.LastInterval = &interval
		status.ShortInterval = interval < 5
	}

	return status
}

func internetStatus(lastPayment *time.Time, now time.Time) InternetStatus {
	var status InternetStatus
	if lastPayment == nil {
		return status
	}

	daysSince := DaysBetween(*lastPayment, now)
	status.PaidRecently = daysSince < 7
	status.RenewalWarning = daysSince >= 6

	return status
}

// Suggestion is the advisory verdict for one debt.
type Suggestion string

const (
	SuggestionPause      Suggestion = "pause"      // Disposable income is gone, consider pausing
	SuggestionAccelerate Suggestion = "accelerate" // Plenty of room, pay this off faster
	SuggestionContinue   Suggestion = "continue"   // Stay on plan
)

// DebtStatus is the per-debt view for the debt list: remaining
// balance, the weekly amount needed to finish on time, and the
// advisory suggestion.
type DebtStatus struct {
	Debt       models.Debt     `json:"debt"`
	Remaining  decimal.Decimal `json:"remaining" example:"400000"`
	WeeklyNeed decimal.Decimal `json:"weeklyNeed" example:"100000"`
	DaysLeft   int             `json:"daysLeft" example:"27"` // Negative when overdue
	Overdue    bool            `json:"overdue" example:"false"`
	Suggestion Suggestion      `json:"suggestion" example:"continue"`
}

// DebtStatuses computes the per-debt view for a list of debts. The
// suggestion compares disposable income against twice the weekly need:
// no disposable income suggests pausing, more than twice the need
// suggests accelerating, anything in between stays on plan.
func DebtStatuses(debts []models.Debt, disposableIncome decimal.Decimal, now time.Time) []DebtStatus {
	statuses := make([]DebtStatus, 0, len(debts))
	for _, debt := range debts {
		remaining := debt.Remaining()
		daysLeft := int(math.Ceil(debt.DueDate.Sub(now).Hours() / 24))

		weeksRemaining := (daysLeft + 6) / 7
		if weeksRemaining < 1 {
			weeksRemaining = 1
		}

		status := DebtStatus{
			Debt:      debt,
			Remaining: remaining,
			DaysLeft:  daysLeft,
			Overdue:   now.After(debt.DueDate) && remaining.IsPositive(),
		}

		if remaining.IsPositive() {
			status.WeeklyNeed = remaining.Div(decimal.NewFromInt(int64(weeksRemaining)))

			switch {
			case !disposableIncome.IsPositive():
				status.Suggestion = SuggestionPause
			case disposableIncome.GreaterThan(status.WeeklyNeed.Mul(decimal.NewFromInt(2))):
				status.Suggestion = SuggestionAccelerate
			default:
				status.Suggestion = SuggestionContinue
			}
		}

		statuses = append(statuses, status)
	}

	return statuses
}
