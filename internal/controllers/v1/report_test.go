package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/spendwise/backend/internal/controllers/v1"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/planner"
	"github.com/spendwise/backend/internal/types"
	"github.com/spendwise/backend/test"
)

func (suite *TestSuiteStandard) TestReportOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/report", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestReportEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/report", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Income.IsZero())
	suite.Assert().Empty(response.Data.Debts)

	// Without debts and spending there is no limit on days off
	suite.Assert().True(response.Data.DaysOffCanTake.Unlimited)
}

func (suite *TestSuiteStandard) TestReportCurrentWeek() {
	now := time.Now().In(time.UTC)
	_ = suite.createTestEntry(v1.EntryEditable{Category: models.CategoryIncome, Date: now, Amount: testAmount(2000000)})
	_ = suite.createTestEntry(v1.EntryEditable{Category: models.CategoryFood, Date: now, Amount: testAmount(150000)})
	_ = suite.createTestEntry(v1.EntryEditable{Category: models.CategoryMisc, Date: now, Amount: testAmount(50000)})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/report", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Income.Equal(testAmount(2000000)))
	suite.Assert().True(response.Data.FoodSpending.Equal(testAmount(150000)))
	suite.Assert().True(response.Data.MiscSpending.Equal(testAmount(50000)))

	// Actual spending includes the fixed weekly costs
	suite.Assert().True(response.Data.ActualSpending.Equal(testAmount(300000)))
	suite.Assert().True(response.Data.Status.Equal(testAmount(1700000)))
}

func (suite *TestSuiteStandard) TestReportWithDebt() {
	now := time.Now().In(time.UTC)
	_ = suite.createTestEntry(v1.EntryEditable{Category: models.CategoryIncome, Date: now, Amount: testAmount(2000000)})

	_ = suite.createTestDebt(v1.DebtCreate{
		DebtEditable: v1.DebtEditable{
			Name:        "Trả góp điện thoại",
			TotalAmount: testAmount(700000),
			DueDate:     now.AddDate(0, 0, 14),
		},
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/report", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)

	// 700,000 over two weeks
	suite.Assert().True(response.Data.WeeklyDebtContribution.Equal(testAmount(350000)))
	suite.Assert().False(response.Data.DaysOffCanTake.Unlimited)
}

func (suite *TestSuiteStandard) TestReportDebtPaid() {
	now := time.Now().In(time.UTC)

	response := suite.createTestDebt(v1.DebtCreate{
		DebtEditable: v1.DebtEditable{
			Name:        "Trả góp điện thoại",
			TotalAmount: testAmount(1000000),
			DueDate:     now.AddDate(0, 0, 14),
		},
	})
	suite.Require().Len(response.Data, 1)
	suite.Require().NotNil(response.Data[0].Data)

	recorder := test.Request(suite.T(), http.MethodPost, response.Data[0].Data.Links.Transactions, v1.TransactionEditable{
		Date:   now,
		Amount: testAmount(600000),
		Type:   models.TransactionPayment,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/report", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var report v1.ReportResponse
	test.DecodeResponse(suite.T(), &recorder, &report)

	suite.Require().NotNil(report.Data)
	suite.Assert().True(report.Data.DebtPaid.Equal(testAmount(600000)))

	// Debt payments count toward the week's actual spending
	suite.Assert().True(report.Data.ActualSpending.Equal(testAmount(700000)))
}

func (suite *TestSuiteStandard) TestReportMonthPeriod() {
	_ = suite.createTestEntry(v1.EntryEditable{Category: models.CategoryIncome, Date: testDate(11), Amount: testAmount(2000000)})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/report?type=month&year=2025&month=8", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Income.Equal(testAmount(2000000)))

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/report?type=month&year=2025&month=9", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Income.IsZero())
}

func (suite *TestSuiteStandard) TestReportDebtSuggestions() {
	now := time.Now().In(time.UTC)
	_ = suite.createTestEntry(v1.EntryEditable{Category: models.CategoryIncome, Date: now, Amount: testAmount(5000000)})

	// Bucketed to the current month so that it shows up in the default
	// report's debt view
	_ = suite.createTestDebt(v1.DebtCreate{
		DebtEditable: v1.DebtEditable{
			Name:        "Trả góp điện thoại",
			TotalAmount: testAmount(700000),
			DueDate:     now.AddDate(0, 0, 14),
			TargetMonth: types.MonthOf(now),
		},
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/report", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data.Debts, 1)
	status := response.Data.Debts[0]
	suite.Assert().True(status.Remaining.Equal(testAmount(700000)))
	suite.Assert().False(status.Overdue)
	suite.Assert().Equal(planner.SuggestionAccelerate, status.Suggestion)
}

func (suite *TestSuiteStandard) TestReportInvalidPeriodType() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/report?type=quarter", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("the period type must be all, year, month or week", *response.Error)
}
