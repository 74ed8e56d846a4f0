package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/types"
	"gorm.io/gorm"
)

// Debt is a single liability that is paid off through transactions.
//
// AmountPaid is derived from the transaction ledger and must never be
// set directly; use RecordTransaction.
type Debt struct {
	DefaultModel
	Name         string            `json:"name" example:"Trả góp điện thoại (Kỳ 2)"`
	Source       string            `json:"source" example:"Shopee SPayLater"`
	TotalAmount  decimal.Decimal   `json:"totalAmount" gorm:"type:DECIMAL(20,8)" example:"1000000"`
	AmountPaid   decimal.Decimal   `json:"amountPaid" gorm:"type:DECIMAL(20,8)" example:"500000"`
	DueDate      time.Time         `json:"dueDate" example:"2025-09-10T00:00:00Z"`
	TargetMonth  types.Month       `json:"targetMonth"` // Reporting bucket, zero value means "use the due date"
	Transactions []DebtTransaction `json:"transactions" gorm:"constraint:OnDelete:CASCADE"`

	// ImportID is the id the debt had in an imported backup. Exports
	// reuse it so that import and export round-trip.
	ImportID string `json:"-"`
}

func (d *Debt) BeforeSave(_ *gorm.DB) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Source = strings.TrimSpace(d.Source)

	if d.DueDate.IsZero() {
		d.DueDate = time.Now().In(time.UTC)
	} else {
		d.DueDate = d.DueDate.In(time.UTC)
	}

	return nil
}

func (d *Debt) AfterSave(_ *gorm.DB) error {
	if !d.TotalAmount.IsPositive() {
		return ErrDebtTotalNotPositive
	}

	return nil
}

// AfterFind updates the due date to use UTC as timezone, not +0000.
func (d *Debt) AfterFind(_ *gorm.DB) (err error) {
	d.DueDate = d.DueDate.In(time.UTC)
	return nil
}

// Remaining returns the balance still to be paid off.
func (d Debt) Remaining() decimal.Decimal {
	return d.TotalAmount.Sub(d.AmountPaid)
}

// Active reports whether the debt still has an open balance.
func (d Debt) Active() bool {
	return d.AmountPaid.LessThan(d.TotalAmount)
}

// BucketMonth returns the reporting bucket for the debt. When no
// target month is assigned, the due date's month is the fallback.
func (d Debt) BucketMonth() types.Month {
	if d.TargetMonth.IsZero() {
		return types.MonthOf(d.DueDate)
	}

	return d.TargetMonth
}

// RecordTransaction appends a transaction to the debt's ledger and
// recomputes AmountPaid from it. This is the only way AmountPaid
// changes.
//
// Withdrawals require a reason and must not exceed the amount already
// paid; nothing is recorded when validation fails.
func RecordTransaction(debtID uuid.UUID, transaction DebtTransaction) (Debt, error) {
	var debt Debt

	err := DB.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&debt, "id = ?", debtID).Error
		if err != nil {
			return err
		}

		if !transaction.Amount.IsPositive() {
			return ErrTransactionAmountNotPositive
		}

		switch transaction.Type {
		case TransactionPayment:
		case TransactionWithdrawal:
			if strings.TrimSpace(transaction.Reason) == "" {
				return ErrWithdrawalReasonRequired
			}
			if transaction.Amount.GreaterThan(debt.AmountPaid) {
				return ErrWithdrawalExceedsPaid
			}
		default:
			return ErrTransactionTypeInvalid
		}

		transaction.DebtID = debt.ID
		err = tx.Create(&transaction).Error
		if err != nil {
			return err
		}

		var ledger []DebtTransaction
		err = tx.Where(&DebtTransaction{DebtID: debt.ID}).Order("created_at, id").Find(&ledger).Error
		if err != nil {
			return err
		}

		debt.AmountPaid = sumLedger(ledger)
		return tx.Model(&debt).Select("AmountPaid").Updates(map[string]any{"amount_paid": debt.AmountPaid}).Error
	})
	if err != nil {
		return Debt{}, err
	}

	return debt, nil
}

// sumLedger folds the transaction ledger into the paid amount.
// Withdrawals clamp at zero at every step, matching how the balance
// was accumulated when the transactions were recorded.
func sumLedger(ledger []DebtTransaction) decimal.Decimal {
	paid := decimal.Zero
	for _, t := range ledger {
		switch t.Type {
		case TransactionPayment:
			paid = paid.Add(t.Amount)
		case TransactionWithdrawal:
			paid = paid.Sub(t.Amount)
			if paid.IsNegative() {
				paid = decimal.Zero
			}
		}
	}

	return paid
}
