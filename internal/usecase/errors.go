package usecase

import (
	"errors"

	"github.com/mkarlsen/bankledger/internal/domain"
)

// errorLabel maps domain errors to a low-cardinality metrics label.
func errorLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrDuplicateID):
		return "duplicate_id"
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrLoanNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
