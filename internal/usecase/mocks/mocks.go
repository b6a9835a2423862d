// Package mocks provides hand-rolled mock implementations of the usecase
// repository interfaces. Each method delegates to an optional Func field,
// falling back to a real in-memory map so tests only stub what they need.
package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/mkarlsen/bankledger/internal/domain"
)

// MockAccountRepository is a mock implementation of usecase.AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[int64]*domain.Account

	CreateFunc  func(ctx context.Context, account *domain.Account) error
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Account, error)
	ListFunc    func(ctx context.Context) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[int64]*domain.Account),
	}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[account.ID()]; exists {
		return domain.ErrDuplicateID
	}

	m.accounts[account.ID()] = account

	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if account, ok := m.accounts[id]; ok {
		return account, nil
	}

	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	accounts := make([]*domain.Account, 0, len(m.accounts))
	for _, account := range m.accounts {
		accounts = append(accounts, account)
	}

	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID() < accounts[j].ID() })

	return accounts, nil
}

// MockLoanRepository is a mock implementation of usecase.LoanRepository.
type MockLoanRepository struct {
	mu    sync.RWMutex
	loans map[int64]*domain.Loan

	CreateFunc  func(ctx context.Context, loan *domain.Loan) error
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Loan, error)
	ListFunc    func(ctx context.Context) ([]*domain.Loan, error)
}

func NewMockLoanRepository() *MockLoanRepository {
	return &MockLoanRepository{
		loans: make(map[int64]*domain.Loan),
	}
}

func (m *MockLoanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, loan)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.loans[loan.ID()]; exists {
		return domain.ErrDuplicateID
	}

	m.loans[loan.ID()] = loan

	return nil
}

func (m *MockLoanRepository) GetByID(ctx context.Context, id int64) (*domain.Loan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if loan, ok := m.loans[id]; ok {
		return loan, nil
	}

	return nil, domain.ErrLoanNotFound
}

func (m *MockLoanRepository) List(ctx context.Context) ([]*domain.Loan, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	loans := make([]*domain.Loan, 0, len(m.loans))
	for _, loan := range m.loans {
		loans = append(loans, loan)
	}

	sort.Slice(loans, func(i, j int) bool { return loans[i].ID() < loans[j].ID() })

	return loans, nil
}
