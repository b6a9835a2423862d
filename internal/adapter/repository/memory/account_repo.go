package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mkarlsen/bankledger/internal/domain"
)

// AccountRepository is the in-memory account registry. The id namespace is
// independent from the loan namespace; the same number can identify both an
// account and a loan without conflict.
//
// The mutex serializes the check-and-insert in Create so two concurrent
// creations with the same id cannot both succeed.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[int64]*domain.Account
}

// NewAccountRepository creates an empty account registry.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[int64]*domain.Account),
	}
}

// Create stores a new account. It fails with ErrDuplicateID when the id is
// already taken, leaving the existing account untouched.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.ID()]; exists {
		return fmt.Errorf("account %d: %w", account.ID(), domain.ErrDuplicateID)
	}

	r.accounts[account.ID()] = account

	return nil
}

// GetByID returns the account with the given id or ErrAccountNotFound.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %d: %w", id, domain.ErrAccountNotFound)
	}

	return account, nil
}

// List returns all accounts ordered by id.
func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]*domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		accounts = append(accounts, account)
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].ID() < accounts[j].ID()
	})

	return accounts, nil
}
