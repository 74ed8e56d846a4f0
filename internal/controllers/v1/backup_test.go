package v1_test

import (
	"net/http"

	"github.com/spendwise/backend/internal/backup"
	v1 "github.com/spendwise/backend/internal/controllers/v1"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/test"
)

const testBackupBlob = `{
	"gasHistory": [{"id": "gas-1", "date": "2025-08-09T08:00:00Z"}],
	"lastWifiPayment": "2025-08-08T00:00:00Z",
	"debts": [
		{
			"id": "debt-1",
			"name": "Trả góp điện thoại (Kỳ 2)",
			"source": "Shopee SPayLater",
			"totalAmount": 1000000,
			"amountPaid": 600000,
			"dueDate": "2025-09-10T00:00:00Z",
			"createdAt": "2025-07-01T00:00:00Z",
			"transactions": [
				{"id": "t-1", "date": "2025-08-12T00:00:00Z", "amount": 600000, "type": "payment"}
			]
		}
	],
	"incomeLogs": [{"id": "i-1", "amount": 2000000, "date": "2025-08-11T00:00:00Z"}],
	"foodLogs": [{"id": "f-1", "amount": 85000, "date": "2025-08-12T00:00:00Z"}],
	"miscLogs": [],
	"savingsBalance": 250000,
	"holidays": []
}`

func (suite *TestSuiteStandard) TestBackupOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/backup", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestBackupExport() {
	_ = suite.createTestEntry(v1.EntryEditable{Category: models.CategoryIncome, Date: testDate(11), Amount: testAmount(2000000)})
	_ = suite.createTestGasFill(v1.GasFillEditable{Date: testDate(9)})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/backup", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var blob backup.Blob
	test.DecodeResponse(suite.T(), &recorder, &blob)

	suite.Assert().Equal("VND", blob.Currency)
	suite.Assert().Len(blob.IncomeLogs, 1)
	suite.Assert().Len(blob.GasHistory, 1)
}

func (suite *TestSuiteStandard) TestBackupImport() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/backup?confirm=yes", testBackupBlob)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// The imported state is visible through the API
	listRecorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/entries", "")
	test.AssertHTTPStatus(suite.T(), &listRecorder, http.StatusOK)

	var entries v1.EntryListResponse
	test.DecodeResponse(suite.T(), &listRecorder, &entries)
	suite.Assert().Len(entries.Data, 2)

	savingsRecorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/savings", "")
	test.AssertHTTPStatus(suite.T(), &savingsRecorder, http.StatusOK)

	var savings v1.SavingsResponse
	test.DecodeResponse(suite.T(), &savingsRecorder, &savings)
	suite.Assert().True(savings.Data.Balance.Equal(testAmount(250000)))
}

func (suite *TestSuiteStandard) TestBackupImportReplaces() {
	_ = suite.createTestEntry(v1.EntryEditable{Category: models.CategoryMisc, Amount: testAmount(30000)})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/backup?confirm=yes", testBackupBlob)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	listRecorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/entries?category=misc", "")
	var entries v1.EntryListResponse
	test.DecodeResponse(suite.T(), &listRecorder, &entries)
	suite.Assert().Len(entries.Data, 0)
}

func (suite *TestSuiteStandard) TestBackupImportUnconfirmed() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/backup", testBackupBlob)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/backup?confirm=no", testBackupBlob)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBackupImportMalformed() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/backup?confirm=yes", "definitely not JSON")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBackupImportWrongCurrency() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/backup?confirm=yes", `{"currency": "EUR"}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response map[string]string
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(backup.ErrWrongCurrency.Error(), response["error"])
}
