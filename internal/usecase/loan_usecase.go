package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mkarlsen/bankledger/internal/domain"
	"github.com/mkarlsen/bankledger/internal/infrastructure/metrics"
)

// LoanUseCase handles loan business logic.
type LoanUseCase struct {
	loanRepo LoanRepository
	metrics  *metrics.Metrics
}

// NewLoanUseCase creates a new LoanUseCase.
func NewLoanUseCase(loanRepo LoanRepository, m *metrics.Metrics) *LoanUseCase {
	return &LoanUseCase{
		loanRepo: loanRepo,
		metrics:  m,
	}
}

// CreateLoanInput represents input for creating a loan.
type CreateLoanInput struct {
	ID           int64
	Name         string
	Principal    decimal.Decimal
	InterestRate decimal.Decimal
	TermMonths   int
}

// CreateLoan creates a new open loan with nothing paid yet.
func (uc *LoanUseCase) CreateLoan(ctx context.Context, input CreateLoanInput) (*domain.Loan, error) {
	loan := domain.NewLoan(input.ID, input.Name, input.Principal, input.InterestRate, input.TermMonths)

	if err := uc.loanRepo.Create(ctx, loan); err != nil {
		uc.metrics.OperationErrors.WithLabelValues("loan.create", errorLabel(err)).Inc()
		return nil, err
	}

	uc.metrics.LoansCreated.Inc()

	return loan, nil
}

// GetLoan retrieves a loan by id.
func (uc *LoanUseCase) GetLoan(ctx context.Context, id int64) (*domain.Loan, error) {
	return uc.loanRepo.GetByID(ctx, id)
}

// ListLoans lists all loans ordered by id.
func (uc *LoanUseCase) ListLoans(ctx context.Context) ([]*domain.Loan, error) {
	return uc.loanRepo.List(ctx)
}

// PaymentResult is the outcome of a loan payment.
type PaymentResult struct {
	Loan      *domain.Loan
	Remaining decimal.Decimal
	PaidOff   bool
}

// MakePayment applies a payment to the loan. Overpayment clamps at the total
// owed; payments against a paid-off loan change nothing.
func (uc *LoanUseCase) MakePayment(ctx context.Context, id int64, amount decimal.Decimal) (*PaymentResult, error) {
	loan, err := uc.loanRepo.GetByID(ctx, id)
	if err != nil {
		uc.metrics.OperationErrors.WithLabelValues("loan.payment", errorLabel(err)).Inc()
		return nil, err
	}

	wasActive := loan.Active()
	remaining := loan.MakePayment(amount)
	uc.metrics.LoanPayments.Inc()

	paidOff := !loan.Active()
	if wasActive && paidOff {
		uc.metrics.LoanPayoffs.Inc()
	}

	return &PaymentResult{
		Loan:      loan,
		Remaining: remaining,
		PaidOff:   paidOff,
	}, nil
}
