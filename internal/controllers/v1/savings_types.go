package v1

import (
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
)

// SavingsAmount is the request body for deposits and withdrawals.
type SavingsAmount struct {
	Amount decimal.Decimal `json:"amount" example:"150000"`
}

// Savings is the state of the savings buffer.
type Savings struct {
	Balance decimal.Decimal `json:"balance" example:"250000"`
}

func newSavings(settings models.Settings) Savings {
	return Savings{
		Balance: settings.SavingsBalance,
	}
}

type SavingsResponse struct {
	Data  *Savings `json:"data"`                                               // The savings buffer
	Error *string  `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}
