package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/spendwise/backend/internal/controllers/v1"
	"github.com/spendwise/backend/test"
)

func (suite *TestSuiteStandard) TestSettingsOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestSettingsGetDefaults() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.FoodBudget.Equal(testAmount(315000)))
	suite.Assert().True(response.Data.MiscBudget.Equal(testAmount(100000)))
	suite.Assert().Nil(response.Data.LastInternetPayment)
}

func (suite *TestSuiteStandard) TestSettingsUpdateBudget() {
	recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{
		"foodBudget": "400000",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.FoodBudget.Equal(testAmount(400000)))

	// The misc budget is untouched
	suite.Assert().True(response.Data.MiscBudget.Equal(testAmount(100000)))
}

func (suite *TestSuiteStandard) TestSettingsUpdateInternetPayment() {
	payment := testDate(8)

	recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{
		"lastInternetPayment": payment,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data.LastInternetPayment)
	suite.Assert().True(response.Data.LastInternetPayment.Equal(payment.In(time.UTC)))
}

func (suite *TestSuiteStandard) TestSettingsUpdateInvalidBody() {
	recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", "definitely not JSON")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
