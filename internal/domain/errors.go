package domain

import "errors"

var (
	// Account errors
	ErrInsufficientFunds = errors.New("not enough money in account")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrAccountNotFound   = errors.New("account not found")

	// Loan errors
	ErrLoanNotFound = errors.New("loan not found")

	// Registry errors
	ErrDuplicateID = errors.New("id already exists")
)
