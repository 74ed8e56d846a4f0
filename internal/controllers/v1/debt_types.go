package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/planner"
	"github.com/spendwise/backend/internal/types"
)

// DebtKind selects how a debt creation request is expanded into
// debt records.
type DebtKind string

const (
	DebtKindStandard  DebtKind = "standard"
	DebtKindRecurring DebtKind = "recurring"
	DebtKindDeferred  DebtKind = "deferred"
)

// DebtEditable represents all user configurable parameters
type DebtEditable struct {
	Name        string          `json:"name" example:"Trả góp điện thoại"`
	Source      string          `json:"source" example:"Shopee SPayLater"`
	TotalAmount decimal.Decimal `json:"totalAmount" example:"1000000"`
	DueDate     time.Time       `json:"dueDate" example:"2025-09-10T00:00:00Z"`
	TargetMonth types.Month     `json:"targetMonth"` // Reporting bucket, defaults to the due date's month
}

func (editable DebtEditable) model() models.Debt {
	return models.Debt{
		Name:        editable.Name,
		Source:      editable.Source,
		TotalAmount: editable.TotalAmount,
		DueDate:     editable.DueDate,
		TargetMonth: editable.TargetMonth,
	}
}

// DebtCreate is the request body for creating debts. The kind decides
// how many debt records the request expands into: "standard" creates
// exactly one, "recurring" creates one per period between startDate
// and endDate, "deferred" creates the pay-later bill for billMonth.
type DebtCreate struct {
	DebtEditable
	Kind      DebtKind          `json:"kind" example:"recurring"`
	Frequency planner.Frequency `json:"frequency" example:"monthly"` // Only for recurring debts
	StartDate time.Time         `json:"startDate" example:"2025-08-10T00:00:00Z"`
	EndDate   time.Time         `json:"endDate" example:"2025-12-10T00:00:00Z"`
	BillMonth types.Month       `json:"billMonth"` // Only for deferred debts
}

// models expands the request into the debt records to create.
func (create DebtCreate) models() ([]models.Debt, error) {
	switch create.Kind {
	case "", DebtKindStandard:
		return []models.Debt{create.model()}, nil

	case DebtKindRecurring:
		return planner.ExpandRecurring(planner.RecurringTemplate{
			Name:      create.Name,
			Source:    create.Source,
			Amount:    create.TotalAmount,
			Start:     create.StartDate,
			End:       create.EndDate,
			Frequency: create.Frequency,
		})

	case DebtKindDeferred:
		if create.BillMonth.IsZero() {
			return nil, errBillMonthNotSet
		}
		return []models.Debt{planner.DeferredBillingDebt(create.TotalAmount, create.BillMonth)}, nil
	}

	return nil, errDebtKindInvalid
}

type DebtLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/debts/c8a22943-0e42-4b05-8b57-ee4f41aed687"`                      // The debt itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/debts/c8a22943-0e42-4b05-8b57-ee4f41aed687/transactions"` // The debt's ledger
}

type Debt struct {
	models.DefaultModel
	DebtEditable
	AmountPaid decimal.Decimal `json:"amountPaid" example:"500000"`
	Remaining  decimal.Decimal `json:"remaining" example:"500000"`
	Active     bool            `json:"active" example:"true"`
	Links      DebtLinks       `json:"links"`
}

func newDebt(c *gin.Context, model models.Debt) Debt {
	self := fmt.Sprintf("%s/debts/%s", httputil.RequestPathV1(c), model.ID)

	return Debt{
		DefaultModel: model.DefaultModel,
		DebtEditable: DebtEditable{
			Name:        model.Name,
			Source:      model.Source,
			TotalAmount: model.TotalAmount,
			DueDate:     model.DueDate,
			TargetMonth: model.TargetMonth,
		},
		AmountPaid: model.AmountPaid,
		Remaining:  model.Remaining(),
		Active:     model.Active(),
		Links: DebtLinks{
			Self:         self,
			Transactions: self + "/transactions",
		},
	}
}

type DebtListResponse struct {
	Data  []Debt  `json:"data"`                                               // List of debts
	Error *string `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

type DebtCreateResponse struct {
	Error *string        `json:"error" example:"the request body must not be empty"` // The error, if any occurred
	Data  []DebtResponse `json:"data"`                                               // List of created debts
}

func (r *DebtCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, DebtResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		currentStatus = newStatus
	}

	return currentStatus
}

type DebtResponse struct {
	Data  *Debt   `json:"data"`                                               // Data for the debt
	Error *string `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

// DebtQueryFilter narrows down the debt list.
type DebtQueryFilter struct {
	Name   string `form:"name"` // Glob pattern for the debt name
	Source string `form:"source"`
	Active bool   `form:"active"` // Only active (or only settled) debts
	Month  string `form:"month"` // Only debts bucketed to this month, YYYY-MM
}

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Date   time.Time              `json:"date" example:"2025-08-12T00:00:00Z"` // Defaults to now
	Amount decimal.Decimal        `json:"amount" example:"600000"`
	Type   models.TransactionType `json:"type" example:"payment"`
	Reason string                 `json:"reason" example:"Cần tiền mua thuốc"` // Required for withdrawals
}

func (editable TransactionEditable) model() models.DebtTransaction {
	return models.DebtTransaction{
		Date:   editable.Date,
		Amount: editable.Amount,
		Type:   editable.Type,
		Reason: editable.Reason,
	}
}

type TransactionListResponse struct {
	Data  []models.DebtTransaction `json:"data"`                                               // The debt's ledger, newest first
	Error *string                  `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}
