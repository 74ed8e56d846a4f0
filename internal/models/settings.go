package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Default budgets for fresh databases and for backups that do not
// carry the fields.
var (
	DefaultFoodBudget = decimal.NewFromInt(315000)
	DefaultMiscBudget = decimal.NewFromInt(100000)
)

// Settings is the single row of scalar state: the savings buffer,
// the two period budgets and the last internet renewal.
type Settings struct {
	ID                  uint            `json:"-" gorm:"primarykey"`
	SavingsBalance      decimal.Decimal `json:"savingsBalance" gorm:"type:DECIMAL(20,8)" example:"250000"`
	FoodBudget          decimal.Decimal `json:"foodBudget" gorm:"type:DECIMAL(20,8)" example:"315000"`
	MiscBudget          decimal.Decimal `json:"miscBudget" gorm:"type:DECIMAL(20,8)" example:"100000"`
	LastInternetPayment *time.Time      `json:"lastInternetPayment"`
}

func loadSettings(tx *gorm.DB) (Settings, error) {
	settings := Settings{
		ID:         1,
		FoodBudget: DefaultFoodBudget,
		MiscBudget: DefaultMiscBudget,
	}

	err := tx.Where(Settings{ID: 1}).FirstOrCreate(&settings).Error
	if err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// LoadSettings returns the settings row, creating it with defaults on
// first use.
func LoadSettings() (Settings, error) {
	return loadSettings(DB)
}

// DepositSavings adds the amount to the savings buffer.
func DepositSavings(amount decimal.Decimal) (Settings, error) {
	if !amount.IsPositive() {
		return Settings{}, ErrDepositNotPositive
	}

	var settings Settings
	err := DB.Transaction(func(tx *gorm.DB) error {
		var err error
		settings, err = loadSettings(tx)
		if err != nil {
			return err
		}

		settings.SavingsBalance = settings.SavingsBalance.Add(amount)
		return tx.Model(&settings).Update("savings_balance", settings.SavingsBalance).Error
	})
	if err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// WithdrawSavings subtracts the amount from the savings buffer and
// records it as a flagged income entry so that it shows up in the
// income log without being double counted as a budget category.
func WithdrawSavings(amount decimal.Decimal, now time.Time) (Settings, error) {
	if !amount.IsPositive() {
		return Settings{}, ErrWithdrawalNotPositive
	}

	var settings Settings
	err := DB.Transaction(func(tx *gorm.DB) error {
		var err error
		settings, err = loadSettings(tx)
		if err != nil {
			return err
		}

		if amount.GreaterThan(settings.SavingsBalance) {
			return ErrSavingsInsufficient
		}

		entry := Entry{
			Category:          CategoryIncome,
			Date:              now,
			Amount:            amount,
			SavingsWithdrawal: true,
		}
		err = tx.Create(&entry).Error
		if err != nil {
			return err
		}

		settings.SavingsBalance = settings.SavingsBalance.Sub(amount)
		return tx.Model(&settings).Update("savings_balance", settings.SavingsBalance).Error
	})
	if err != nil {
		return Settings{}, err
	}

	return settings, nil
}
