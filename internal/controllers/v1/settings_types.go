package v1

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
)

// SettingsEditable represents all user configurable parameters. The
// savings balance is excluded, it only changes through deposits and
// withdrawals.
type SettingsEditable struct {
	FoodBudget          decimal.Decimal `json:"foodBudget" example:"315000"` // Weekly food budget
	MiscBudget          decimal.Decimal `json:"miscBudget" example:"100000"` // Weekly budget for everything else
	LastInternetPayment *time.Time      `json:"lastInternetPayment"`
}

func (editable SettingsEditable) model() models.Settings {
	return models.Settings{
		FoodBudget:          editable.FoodBudget,
		MiscBudget:          editable.MiscBudget,
		LastInternetPayment: editable.LastInternetPayment,
	}
}

type SettingsResponse struct {
	Data  *models.Settings `json:"data"`                                               // The settings
	Error *string          `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}
