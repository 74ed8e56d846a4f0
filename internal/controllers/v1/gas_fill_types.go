package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/planner"
)

// GasFillEditable represents all user configurable parameters
type GasFillEditable struct {
	Date time.Time `json:"date" example:"2025-08-12T00:00:00Z"` // Date of the refuel, defaults to now
}

func (editable GasFillEditable) model() models.GasFill {
	return models.GasFill{
		Date: editable.Date,
	}
}

type GasFillLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/gas-fills/e6fa8eb1-5565-442f-95d4-230f734853ae"` // The gas fill itself
}

type GasFill struct {
	models.DefaultModel
	GasFillEditable
	Links GasFillLinks `json:"links"`
}

func newGasFill(c *gin.Context, model models.GasFill) GasFill {
	return GasFill{
		DefaultModel: model.DefaultModel,
		GasFillEditable: GasFillEditable{
			Date: model.Date,
		},
		Links: GasFillLinks{
			Self: fmt.Sprintf("%s/gas-fills/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type GasFillListResponse struct {
	Data  []GasFill `json:"data"`                                               // List of gas fills
	Error *string   `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

type GasFillResponse struct {
	Data  *GasFill `json:"data"`                                               // Data for the gas fill
	Error *string  `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

type GasTodayResponse struct {
	Data  *planner.GasStatus `json:"data"`                                               // Refuel status for today
	Error *string            `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}
