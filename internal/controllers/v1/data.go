package v1

import (
	"time"

	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/planner"
)

// plannerData loads everything the planner needs from the database.
func plannerData() (planner.Data, error) {
	var data planner.Data

	err := models.DB.Order("date ASC, created_at ASC").Find(&data.Entries).Error
	if err != nil {
		return planner.Data{}, err
	}

	// The ledger is needed to sum the period's debt payments
	err = models.DB.Preload("Transactions").Order("due_date ASC").Find(&data.Debts).Error
	if err != nil {
		return planner.Data{}, err
	}

	err = models.DB.Order("date ASC").Find(&data.GasFills).Error
	if err != nil {
		return planner.Data{}, err
	}

	data.Settings, err = models.LoadSettings()
	if err != nil {
		return planner.Data{}, err
	}

	return data, nil
}

// todayStatus computes the refuel status for the current day.
func todayStatus(now time.Time) (planner.GasStatus, error) {
	data, err := plannerData()
	if err != nil {
		return planner.GasStatus{}, err
	}

	report := planner.BuildReport(data, planner.ThisWeek(now), now)
	return report.Gas, nil
}
