package v1

import (
	"errors"
	"net/http"

	"github.com/spendwise/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no debt matching your query"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Query errors
var (
	errPeriodTypeInvalid = errors.New("the period type must be all, year, month or week")
)

// Entry errors
var (
	errEntryNotEditable  = errors.New("only income entries can be edited")
	errEntryNotDeletable = errors.New("only miscellaneous entries can be deleted")
)

// Debt errors
var (
	errDebtKindInvalid = errors.New("the debt kind must be standard, recurring or deferred")
	errBillMonthNotSet = errors.New("the billMonth parameter must be set for deferred debts")
)

// Savings errors
var (
	errNoSurplus = errors.New("there is no surplus to deposit for the current week")
)

// Backup errors
var (
	errBackupConfirmation = errors.New("the confirmation for the backup import was incorrect")
)
