package usecase

import (
	"context"

	"github.com/mkarlsen/bankledger/internal/domain"
)

// AccountRepository defines registry access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
}

// LoanRepository defines registry access for loans.
type LoanRepository interface {
	Create(ctx context.Context, loan *domain.Loan) error
	GetByID(ctx context.Context, id int64) (*domain.Loan, error)
	List(ctx context.Context) ([]*domain.Loan, error)
}
