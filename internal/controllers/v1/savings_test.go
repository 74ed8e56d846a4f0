package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/spendwise/backend/internal/controllers/v1"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/test"
)

func (suite *TestSuiteStandard) TestSavingsOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/savings", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/savings/deposit", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestSavingsGetEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/savings", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SavingsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Balance.IsZero())
}

func (suite *TestSuiteStandard) TestSavingsDeposit() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/savings/deposit", v1.SavingsAmount{
		Amount: testAmount(150000),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.SavingsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Balance.Equal(testAmount(150000)))
}

func (suite *TestSuiteStandard) TestSavingsDepositSurplus() {
	// Give the current week a surplus of 1,900,000: income minus food
	// spending and the fixed weekly costs
	now := time.Now().In(time.UTC)
	_ = suite.createTestEntry(v1.EntryEditable{Category: models.CategoryIncome, Date: now, Amount: testAmount(2100000)})
	_ = suite.createTestEntry(v1.EntryEditable{Category: models.CategoryFood, Date: now, Amount: testAmount(100000)})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/savings/deposit", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.SavingsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Balance.Equal(testAmount(1900000)), "Balance is %s", response.Data.Balance)
}

func (suite *TestSuiteStandard) TestSavingsDepositNoSurplus() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/savings/deposit", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.SavingsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("there is no surplus to deposit for the current week", *response.Error)
}

func (suite *TestSuiteStandard) TestSavingsDepositNegative() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/savings/deposit", v1.SavingsAmount{
		Amount: testAmount(-150000),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSavingsWithdraw() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/savings/deposit", v1.SavingsAmount{
		Amount: testAmount(500000),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/savings/withdraw", v1.SavingsAmount{
		Amount: testAmount(200000),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.SavingsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Balance.Equal(testAmount(300000)))

	// The withdrawal shows up as a flagged income entry
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/entries?savingsWithdrawal=true", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var entries v1.EntryListResponse
	test.DecodeResponse(suite.T(), &recorder, &entries)
	suite.Require().Len(entries.Data, 1)
	suite.Assert().Equal(models.CategoryIncome, entries.Data[0].Category)
	suite.Assert().True(entries.Data[0].Amount.Equal(testAmount(200000)))
}

func (suite *TestSuiteStandard) TestSavingsWithdrawInsufficient() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/savings/withdraw", v1.SavingsAmount{
		Amount: testAmount(200000),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.SavingsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal(models.ErrSavingsInsufficient.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestSavingsWithdrawEmptyBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/savings/withdraw", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
