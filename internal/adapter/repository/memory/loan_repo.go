package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mkarlsen/bankledger/internal/domain"
)

// LoanRepository is the in-memory loan registry.
type LoanRepository struct {
	mu    sync.RWMutex
	loans map[int64]*domain.Loan
}

// NewLoanRepository creates an empty loan registry.
func NewLoanRepository() *LoanRepository {
	return &LoanRepository{
		loans: make(map[int64]*domain.Loan),
	}
}

// Create stores a new loan. It fails with ErrDuplicateID when the id is
// already taken in the loan namespace.
func (r *LoanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.loans[loan.ID()]; exists {
		return fmt.Errorf("loan %d: %w", loan.ID(), domain.ErrDuplicateID)
	}

	r.loans[loan.ID()] = loan

	return nil
}

// GetByID returns the loan with the given id or ErrLoanNotFound.
func (r *LoanRepository) GetByID(ctx context.Context, id int64) (*domain.Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loan, ok := r.loans[id]
	if !ok {
		return nil, fmt.Errorf("loan %d: %w", id, domain.ErrLoanNotFound)
	}

	return loan, nil
}

// List returns all loans ordered by id.
func (r *LoanRepository) List(ctx context.Context) ([]*domain.Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loans := make([]*domain.Loan, 0, len(r.loans))
	for _, loan := range r.loans {
		loans = append(loans, loan)
	}

	sort.Slice(loans, func(i, j int) bool {
		return loans[i].ID() < loans[j].ID()
	})

	return loans, nil
}
