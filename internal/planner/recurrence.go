package planner

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
)

// Frequency defines how a recurring debt advances.
type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

var (
	ErrRecurrenceEndBeforeStart = errors.New("the recurrence end date must not be before the start date")
	ErrFrequencyInvalid         = errors.New("the frequency must be weekly or monthly")
)

// RecurringTemplate describes a debt that repeats until its end date.
type RecurringTemplate struct {
	Name      string
	Source    string
	Amount    decimal.Decimal
	Start     time.Time
	End       time.Time
	Frequency Frequency
}

// ExpandRecurring produces one debt instance per period, due on
// start + k*period, while the due date is on or before the end date.
// Monthly advancement increments the calendar month with Go's native
// normalization; weekly advancement adds exactly seven days.
//
// A start date after the end date is a validation error. An empty
// result would silently drop the entire debt, so this fails loudly
// instead.
func ExpandRecurring(template RecurringTemplate) ([]models.Debt, error) {
	if template.End.Before(template.Start) {
		return nil, ErrRecurrenceEndBeforeStart
	}

	if template.Frequency != FrequencyWeekly && template.Frequency != FrequencyMonthly {
		return nil, ErrFrequencyInvalid
	}

	var debts []models.Debt
	due := template.Start
	for period := 1; !due.After(template.End); period++ {
		var suffix string
		if template.Frequency == FrequencyMonthly {
			suffix = fmt.Sprintf("(Tháng %d/%d)", due.Month(), due.Year())
		} else {
			suffix = fmt.Sprintf("(Kỳ %d)", period)
		}

		debts = append(debts, models.Debt{
			Name:        fmt.Sprintf("%s %s", template.Name, suffix),
			Source:      template.Source,
			TotalAmount: template.Amount,
			DueDate:     due,
			TargetMonth: types.MonthOf(due),
		})

		if template.Frequency == FrequencyWeekly {
			due = due.AddDate(0, 0, 7)
		} else {
			due = due.AddDate(0, 1, 0)
		}
	}

	return debts, nil
}

var recurrenceSuffix = regexp.MustCompile(`\((Tháng \d+/\d+|Kỳ \d+)\)`)

// StripRecurrenceSuffix removes the "(Tháng M/Y)" or "(Kỳ N)" marker
// from a generated debt name, for editing.
func StripRecurrenceSuffix(name string) string {
	return strings.TrimSpace(recurrenceSuffix.ReplaceAllString(name, ""))
}

// DeferredBillingDebt is the single-entry shortcut for pay-later
// bills: the bill for a month is due on the 10th of the following
// month and is budgeted against the billing month. It does not go
// through the recurrence loop.
func DeferredBillingDebt(amount decimal.Decimal, billMonth types.Month) models.Debt {
	dueMonth := billMonth.AddDate(0, 1)
	due := time.Date(dueMonth.Year(), dueMonth.Month(), 10, 0, 0, 0, 0, time.UTC)

	return models.Debt{
		Name:        fmt.Sprintf("SPayLater - Hóa đơn T%d", billMonth.Month()),
		Source:      "Shopee SPayLater",
		TotalAmount: amount,
		DueDate:     due,
		TargetMonth: billMonth,
	}
}
