package models_test

import (
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestLoadSettingsDefaults() {
	settings, err := models.LoadSettings()
	require.Nil(suite.T(), err)

	assert.True(suite.T(), settings.SavingsBalance.IsZero())
	assert.True(suite.T(), settings.FoodBudget.Equal(models.DefaultFoodBudget))
	assert.True(suite.T(), settings.MiscBudget.Equal(models.DefaultMiscBudget))
	assert.Nil(suite.T(), settings.LastInternetPayment)
}

func (suite *TestSuiteStandard) TestLoadSettingsIsSingleton() {
	_, err := models.LoadSettings()
	require.Nil(suite.T(), err)
	_, err = models.LoadSettings()
	require.Nil(suite.T(), err)

	var count int64
	models.DB.Model(&models.Settings{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestDepositSavings() {
	settings, err := models.DepositSavings(testAmount(250000))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), settings.SavingsBalance.Equal(testAmount(250000)))

	settings, err = models.DepositSavings(testAmount(50000))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), settings.SavingsBalance.Equal(testAmount(300000)))
}

func (suite *TestSuiteStandard) TestDepositSavingsNotPositive() {
	_, err := models.DepositSavings(decimal.Zero)
	assert.ErrorIs(suite.T(), err, models.ErrDepositNotPositive)

	_, err = models.DepositSavings(testAmount(-1000))
	assert.ErrorIs(suite.T(), err, models.ErrDepositNotPositive)
}

func (suite *TestSuiteStandard) TestWithdrawSavings() {
	_, err := models.DepositSavings(testAmount(300000))
	require.Nil(suite.T(), err)

	settings, err := models.WithdrawSavings(testAmount(100000), testDate(2025, 8, 12))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), settings.SavingsBalance.Equal(testAmount(200000)))

	// The withdrawal shows up as flagged income
	var entry models.Entry
	err = models.DB.First(&entry, "savings_withdrawal = ?", true).Error
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), models.CategoryIncome, entry.Category)
	assert.True(suite.T(), entry.Amount.Equal(testAmount(100000)))
	assert.Equal(suite.T(), testDate(2025, 8, 12), entry.Date)
}

func (suite *TestSuiteStandard) TestWithdrawSavingsInsufficient() {
	_, err := models.DepositSavings(testAmount(50000))
	require.Nil(suite.T(), err)

	_, err = models.WithdrawSavings(testAmount(100000), testDate(2025, 8, 12))
	assert.ErrorIs(suite.T(), err, models.ErrSavingsInsufficient)

	// The failed withdrawal must not create an income entry
	var count int64
	models.DB.Model(&models.Entry{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestWithdrawSavingsNotPositive() {
	_, err := models.WithdrawSavings(decimal.Zero, testDate(2025, 8, 12))
	assert.ErrorIs(suite.T(), err, models.ErrWithdrawalNotPositive)
}
