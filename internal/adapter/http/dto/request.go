package dto

import (
	"github.com/shopspring/decimal"

	"github.com/mkarlsen/bankledger/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Phone        string          `json:"phone"`
	Balance      decimal.Decimal `json:"balance"`
	InterestRate decimal.Decimal `json:"interest_rate"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		ID:           r.ID,
		Name:         r.Name,
		Phone:        r.Phone,
		Balance:      r.Balance,
		InterestRate: r.InterestRate,
	}
}

// AmountRequest carries a single amount, used by deposits, withdrawals and
// loan payments.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// PayBillRequest represents a request to pay a bill from an account.
type PayBillRequest struct {
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

// SavingsGoalRequest represents a request to set an account's savings goal.
type SavingsGoalRequest struct {
	Goal decimal.Decimal `json:"goal"`
}

// CreateTransferRequest represents a request to move money between accounts.
type CreateTransferRequest struct {
	FromAccountID int64           `json:"from_account_id"`
	ToAccountID   int64           `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransferRequest) ToUseCaseInput() usecase.TransferInput {
	return usecase.TransferInput{
		FromID: r.FromAccountID,
		ToID:   r.ToAccountID,
		Amount: r.Amount,
	}
}

// CreateLoanRequest represents a request to create a loan.
type CreateLoanRequest struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Principal    decimal.Decimal `json:"principal"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	TermMonths   int             `json:"term_months"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateLoanRequest) ToUseCaseInput() usecase.CreateLoanInput {
	return usecase.CreateLoanInput{
		ID:           r.ID,
		Name:         r.Name,
		Principal:    r.Principal,
		InterestRate: r.InterestRate,
		TermMonths:   r.TermMonths,
	}
}
