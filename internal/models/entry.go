package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EntryCategory defines which log an entry belongs to.
type EntryCategory string

const (
	CategoryIncome EntryCategory = "income"
	CategoryFood   EntryCategory = "food"
	CategoryMisc   EntryCategory = "misc"
)

// Entry is a single dated amount: an income entry, a food spending
// entry or a miscellaneous spending entry.
type Entry struct {
	DefaultModel
	Category          EntryCategory   `json:"category" gorm:"index" example:"food"`
	Name              string          `json:"name" example:"Chi tiêu nhanh"` // Only used for misc entries
	Date              time.Time       `json:"date" example:"2025-08-12T00:00:00Z"`
	Amount            decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"50000"`
	SavingsWithdrawal bool            `json:"savingsWithdrawal" example:"false"` // Income pulled from the savings buffer

	// ImportID is the id the entry had in an imported backup. Exports
	// reuse it so that import and export round-trip.
	ImportID string `json:"-"`
}

func (e *Entry) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)

	if e.Category != CategoryIncome && e.Category != CategoryFood && e.Category != CategoryMisc {
		return ErrEntryCategoryInvalid
	}

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

func (e *Entry) AfterSave(_ *gorm.DB) error {
	if !e.Amount.IsPositive() {
		return ErrEntryAmountNotPositive
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (e *Entry) AfterFind(_ *gorm.DB) (err error) {
	e.Date = e.Date.In(time.UTC)
	return nil
}
