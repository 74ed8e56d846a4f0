package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType defines the direction of a debt transaction.
type TransactionType string

const (
	TransactionPayment    TransactionType = "payment"
	TransactionWithdrawal TransactionType = "withdrawal"
)

// DebtTransaction is one append-only entry in a debt's ledger.
type DebtTransaction struct {
	DefaultModel
	DebtID uuid.UUID       `json:"debtId" gorm:"index"`
	Date   time.Time       `json:"date" example:"2025-08-12T00:00:00Z"`
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"600000"`
	Type   TransactionType `json:"type" example:"payment"`
	Reason string          `json:"reason,omitempty" example:"Cần tiền mua thuốc"` // Required for withdrawals

	// ImportID is the id the transaction had in an imported backup.
	// Exports reuse it so that import and export round-trip.
	ImportID string `json:"-"`
}

// BeforeSave sets the timezone for the Date to UTC.
func (t *DebtTransaction) BeforeSave(_ *gorm.DB) (err error) {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (t *DebtTransaction) AfterFind(_ *gorm.DB) (err error) {
	t.Date = t.Date.In(time.UTC)
	return nil
}
