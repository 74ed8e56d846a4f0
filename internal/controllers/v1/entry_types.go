package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

// EntryEditable represents all user configurable parameters
type EntryEditable struct {
	Category models.EntryCategory `json:"category" example:"food" default:""`            // Category of the entry: income, food or misc
	Name     string               `json:"name" example:"Đồ ăn vặt" default:""`           // Optional label, used for misc entries
	Date     time.Time            `json:"date" example:"2025-08-12T00:00:00Z"`           // Date of the entry, defaults to now
	Amount   decimal.Decimal      `json:"amount" example:"50000" swaggertype:"number"`   // Amount in VND, must be positive
}

func (editable EntryEditable) model() models.Entry {
	return models.Entry{
		Category: editable.Category,
		Name:     editable.Name,
		Date:     editable.Date,
		Amount:   editable.Amount,
	}
}

type EntryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/entries/d1b7fe7a-d2ab-4c40-a97b-a29dd4a3bcae"` // The entry itself
}

type Entry struct {
	models.DefaultModel
	EntryEditable
	SavingsWithdrawal bool       `json:"savingsWithdrawal" example:"false"` // Income moved out of the savings buffer
	Links             EntryLinks `json:"links"`
}

func newEntry(c *gin.Context, model models.Entry) Entry {
	return Entry{
		DefaultModel: model.DefaultModel,
		EntryEditable: EntryEditable{
			Category: model.Category,
			Name:     model.Name,
			Date:     model.Date,
			Amount:   model.Amount,
		},
		SavingsWithdrawal: model.SavingsWithdrawal,
		Links: EntryLinks{
			Self: fmt.Sprintf("%s/entries/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type EntryListResponse struct {
	Data  []Entry `json:"data"`                                               // List of entries
	Error *string `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

type EntryCreateResponse struct {
	Data  []EntryResponse `json:"data"`                                               // The created entries or their respective error
	Error *string         `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

func (r *EntryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, EntryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type EntryResponse struct {
	Data  *Entry  `json:"data"`                                               // Data for the entry
	Error *string `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

type EntryQueryFilter struct {
	Category          string `form:"category"`          // By category: income, food or misc
	SavingsWithdrawal bool   `form:"savingsWithdrawal"` // Only income entries moved out of savings
	PeriodQuery
}
