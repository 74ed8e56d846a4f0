package v1

import (
	"github.com/spendwise/backend/internal/planner"
)

// ReportData is the full report for a period: the financial summary
// plus the per-debt view for the period's reporting bucket.
type ReportData struct {
	planner.Report
	Debts []planner.DebtStatus `json:"debts"`
}

type ReportResponse struct {
	Data  *ReportData `json:"data"`                                               // The report
	Error *string     `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}
