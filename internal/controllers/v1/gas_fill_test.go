package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/spendwise/backend/internal/controllers/v1"
	"github.com/spendwise/backend/test"
)

func (suite *TestSuiteStandard) TestGasFillsOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/gas-fills", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGasFillsOptionsDetail() {
	fill := suite.createTestGasFill(v1.GasFillEditable{Date: testDate(9)})

	recorder := test.Request(suite.T(), http.MethodOptions, fill.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, DELETE", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGasFillsCreateAndList() {
	_ = suite.createTestGasFill(v1.GasFillEditable{Date: testDate(13)})
	_ = suite.createTestGasFill(v1.GasFillEditable{Date: testDate(9)})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/gas-fills", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.GasFillListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// Oldest first, independent of the insert order
	suite.Require().Len(response.Data, 2)
	suite.Assert().True(response.Data[0].Date.Before(response.Data[1].Date))
}

func (suite *TestSuiteStandard) TestGasFillsCreateDefaultsToNow() {
	fill := suite.createTestGasFill(v1.GasFillEditable{})
	suite.Assert().False(fill.Data.Date.IsZero())
}

func (suite *TestSuiteStandard) TestGasFillsCreateInvalidBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/gas-fills", "definitely not JSON")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGasFillsToday() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/gas-fills/today", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.GasTodayResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().False(response.Data.FilledToday)
	suite.Assert().Nil(response.Data.LastInterval)
}

func (suite *TestSuiteStandard) TestGasFillsToggle() {
	// Four days between the previous fill and today
	_ = suite.createTestGasFill(v1.GasFillEditable{
		Date: time.Now().In(time.UTC).AddDate(0, 0, -4),
	})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/gas-fills/today", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.GasTodayResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.FilledToday)
	suite.Require().NotNil(response.Data.LastInterval)
	suite.Assert().Equal(4, *response.Data.LastInterval)
	suite.Assert().True(response.Data.ShortInterval)

	// The second toggle removes today's fill again
	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/gas-fills/today", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().False(response.Data.FilledToday)
}

func (suite *TestSuiteStandard) TestGasFillsDelete() {
	fill := suite.createTestGasFill(v1.GasFillEditable{Date: testDate(9)})

	recorder := test.Request(suite.T(), http.MethodDelete, fill.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/gas-fills", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.GasFillListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 0)
}

func (suite *TestSuiteStandard) TestGasFillsDeleteNonexistent() {
	recorder := test.Request(suite.T(), http.MethodDelete, urlWithID("gas-fills", "e6fa8eb1-5565-442f-95d4-230f734853ae"), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
