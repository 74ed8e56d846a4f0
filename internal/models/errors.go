package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrEntryAmountNotPositive = errors.New("entry amounts must be larger than zero")
	ErrEntryCategoryInvalid   = errors.New("the entry category must be one of income, food or misc")

	ErrDebtTotalNotPositive = errors.New("the total amount of a debt must be larger than zero")

	ErrTransactionAmountNotPositive = errors.New("transaction amounts must be larger than zero")
	ErrTransactionTypeInvalid       = errors.New("the transaction type must be payment or withdrawal")
	ErrWithdrawalReasonRequired     = errors.New("a withdrawal requires a reason")
	ErrWithdrawalExceedsPaid        = errors.New("a withdrawal must not exceed the amount already paid for the debt")

	ErrDepositNotPositive     = errors.New("the deposit amount must be larger than zero")
	ErrSavingsInsufficient    = errors.New("the withdrawal amount exceeds the savings balance")
	ErrWithdrawalNotPositive  = errors.New("the withdrawal amount must be larger than zero")
	ErrHolidayAlreadyPlanning = errors.New("another holiday is already marked for taking time off")
)
