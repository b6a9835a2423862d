package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/mkarlsen/bankledger/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrAccountNotFound, http.StatusNotFound},
		{domain.ErrLoanNotFound, http.StatusNotFound},
		{domain.ErrDuplicateID, http.StatusConflict},
		{domain.ErrInsufficientFunds, http.StatusUnprocessableEntity},
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
		// Wrapped errors resolve to the same status.
		{fmt.Errorf("account 7: %w", domain.ErrAccountNotFound), http.StatusNotFound},
		{fmt.Errorf("account 7: %w", domain.ErrDuplicateID), http.StatusConflict},
	}

	for _, tt := range tests {
		if got := mapDomainError(tt.err); got != tt.want {
			t.Errorf("mapDomainError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
