package models_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestDebtCreate() {
	debt := suite.createTestDebt(models.Debt{
		Name:        "Trả góp điện thoại",
		Source:      "FE Credit",
		TotalAmount: testAmount(1000000),
		DueDate:     testDate(2025, 9, 10),
	})

	assert.NotZero(suite.T(), debt.ID)
	assert.True(suite.T(), debt.Active())
	assert.True(suite.T(), debt.Remaining().Equal(testAmount(1000000)))
}

func (suite *TestSuiteStandard) TestDebtTotalNotPositive() {
	err := models.DB.Create(&models.Debt{
		Name:        "Nợ lỗi",
		TotalAmount: decimal.Zero,
		DueDate:     testDate(2025, 9, 10),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrDebtTotalNotPositive)
}

func (suite *TestSuiteStandard) TestDebtBucketMonthFallsBackToDueDate() {
	debt := models.Debt{DueDate: testDate(2025, 9, 10)}
	assert.Equal(suite.T(), types.NewMonth(2025, 9), debt.BucketMonth())

	debt.TargetMonth = types.NewMonth(2025, 8)
	assert.Equal(suite.T(), types.NewMonth(2025, 8), debt.BucketMonth())
}

func (suite *TestSuiteStandard) TestRecordTransactionPayment() {
	debt := suite.createTestDebt(models.Debt{
		Name:        "Trả góp điện thoại",
		TotalAmount: testAmount(1000000),
		DueDate:     testDate(2025, 9, 10),
	})

	updated, err := models.RecordTransaction(debt.ID, models.DebtTransaction{
		Date:   testDate(2025, 8, 12),
		Amount: testAmount(500000),
		Type:   models.TransactionPayment,
	})

	require.Nil(suite.T(), err)
	assert.True(suite.T(), updated.AmountPaid.Equal(testAmount(500000)), "got %s", updated.AmountPaid)
	assert.True(suite.T(), updated.Active())
}

func (suite *TestSuiteStandard) TestRecordTransactionWithdrawal() {
	debt := suite.createTestDebt(models.Debt{
		Name:        "Trả góp điện thoại",
		TotalAmount: testAmount(1000000),
		DueDate:     testDate(2025, 9, 10),
	})

	_, err := models.RecordTransaction(debt.ID, models.DebtTransaction{
		Amount: testAmount(600000),
		Type:   models.TransactionPayment,
	})
	require.Nil(suite.T(), err)

	updated, err := models.RecordTransaction(debt.ID, models.DebtTransaction{
		Amount: testAmount(100000),
		Type:   models.TransactionWithdrawal,
		Reason: "Cần tiền mua thuốc",
	})

	require.Nil(suite.T(), err)
	assert.True(suite.T(), updated.AmountPaid.Equal(testAmount(500000)), "got %s", updated.AmountPaid)
}

func (suite *TestSuiteStandard) TestRecordTransactionWithdrawalNeedsReason() {
	debt := suite.createTestDebt(models.Debt{
		Name:        "Nợ",
		TotalAmount: testAmount(1000000),
		DueDate:     testDate(2025, 9, 10),
	})

	_, err := models.RecordTransaction(debt.ID, models.DebtTransaction{
		Amount: testAmount(600000),
		Type:   models.TransactionPayment,
	})
	require.Nil(suite.T(), err)

	_, err = models.RecordTransaction(debt.ID, models.DebtTransaction{
		Amount: testAmount(100000),
		Type:   models.TransactionWithdrawal,
		Reason: "   ",
	})

	assert.ErrorIs(suite.T(), err, models.ErrWithdrawalReasonRequired)
}

func (suite *TestSuiteStandard) TestRecordTransactionWithdrawalExceedsPaid() {
	debt := suite.createTestDebt(models.Debt{
		Name:        "Nợ",
		TotalAmount: testAmount(1000000),
		DueDate:     testDate(2025, 9, 10),
	})

	_, err := models.RecordTransaction(debt.ID, models.DebtTransaction{
		Amount: testAmount(300000),
		Type:   models.TransactionPayment,
	})
	require.Nil(suite.T(), err)

	_, err = models.RecordTransaction(debt.ID, models.DebtTransaction{
		Amount: testAmount(400000),
		Type:   models.TransactionWithdrawal,
		Reason: "Cần tiền",
	})
	assert.ErrorIs(suite.T(), err, models.ErrWithdrawalExceedsPaid)

	// The failed withdrawal must not leave anything in the ledger
	var count int64
	models.DB.Model(&models.DebtTransaction{}).Where("debt_id = ?", debt.ID).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestRecordTransactionInvalidType() {
	debt := suite.createTestDebt(models.Debt{
		Name:        "Nợ",
		TotalAmount: testAmount(1000000),
		DueDate:     testDate(2025, 9, 10),
	})

	_, err := models.RecordTransaction(debt.ID, models.DebtTransaction{
		Amount: testAmount(100000),
		Type:   "refund",
	})

	assert.ErrorIs(suite.T(), err, models.ErrTransactionTypeInvalid)
}

func (suite *TestSuiteStandard) TestRecordTransactionAmountNotPositive() {
	debt := suite.createTestDebt(models.Debt{
		Name:        "Nợ",
		TotalAmount: testAmount(1000000),
		DueDate:     testDate(2025, 9, 10),
	})

	_, err := models.RecordTransaction(debt.ID, models.DebtTransaction{
		Amount: decimal.Zero,
		Type:   models.TransactionPayment,
	})

	assert.ErrorIs(suite.T(), err, models.ErrTransactionAmountNotPositive)
}

func (suite *TestSuiteStandard) TestRecordTransactionDebtNotFound() {
	_, err := models.RecordTransaction(uuid.New(), models.DebtTransaction{
		Amount: testAmount(100000),
		Type:   models.TransactionPayment,
	})

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDebtDelete() {
	debt := suite.createTestDebt(models.Debt{
		Name:        "Nợ",
		TotalAmount: testAmount(1000000),
		DueDate:     testDate(2025, 9, 10),
	})

	require.Nil(suite.T(), models.DB.Delete(&debt).Error)

	// Deletion is soft, the debt disappears from queries
	err := models.DB.First(&models.Debt{}, "id = ?", debt.ID).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	_, err = models.RecordTransaction(debt.ID, models.DebtTransaction{
		Amount: testAmount(100000),
		Type:   models.TransactionPayment,
	})
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
