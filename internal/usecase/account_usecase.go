package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mkarlsen/bankledger/internal/domain"
	"github.com/mkarlsen/bankledger/internal/infrastructure/metrics"
)

// AccountUseCase handles account business logic.
type AccountUseCase struct {
	accountRepo AccountRepository
	metrics     *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, m *metrics.Metrics) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		metrics:     m,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	ID           int64
	Name         string
	Phone        string
	Balance      decimal.Decimal
	InterestRate decimal.Decimal
}

// CreateAccount creates a new account with empty transaction and bill logs.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	account := domain.NewAccount(input.ID, input.Name, input.Phone, input.Balance, input.InterestRate)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		uc.metrics.OperationErrors.WithLabelValues("account.create", errorLabel(err)).Inc()
		return nil, err
	}

	uc.metrics.AccountsCreated.Inc()

	return account, nil
}

// GetAccount retrieves an account by id.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccounts lists all accounts ordered by id.
func (uc *AccountUseCase) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return uc.accountRepo.List(ctx)
}

// Deposit credits amount to the account and returns its updated state.
// Non-positive amounts are ignored by the account, not treated as errors.
func (uc *AccountUseCase) Deposit(ctx context.Context, id int64, amount decimal.Decimal) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		uc.metrics.OperationErrors.WithLabelValues("account.deposit", errorLabel(err)).Inc()
		return nil, err
	}

	account.Deposit(amount)
	uc.metrics.Deposits.Inc()

	return account, nil
}

// Withdraw debits amount from the account and returns its updated state.
func (uc *AccountUseCase) Withdraw(ctx context.Context, id int64, amount decimal.Decimal) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		uc.metrics.OperationErrors.WithLabelValues("account.withdraw", errorLabel(err)).Inc()
		return nil, err
	}

	if err := account.Withdraw(amount); err != nil {
		uc.metrics.OperationErrors.WithLabelValues("account.withdraw", errorLabel(err)).Inc()
		return nil, err
	}

	uc.metrics.Withdrawals.Inc()

	return account, nil
}

// PayBill withdraws the bill amount and records it in the account's bill
// payment log.
func (uc *AccountUseCase) PayBill(ctx context.Context, id int64, billType string, amount decimal.Decimal) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		uc.metrics.OperationErrors.WithLabelValues("account.pay_bill", errorLabel(err)).Inc()
		return nil, err
	}

	if err := account.PayBill(billType, amount); err != nil {
		uc.metrics.OperationErrors.WithLabelValues("account.pay_bill", errorLabel(err)).Inc()
		return nil, err
	}

	uc.metrics.BillPayments.Inc()

	return account, nil
}

// SetSavingsGoal sets the account's savings target. Any value is accepted;
// validation is the caller's responsibility.
func (uc *AccountUseCase) SetSavingsGoal(ctx context.Context, id int64, goal decimal.Decimal) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	account.SetSavingsGoal(goal)

	return account, nil
}

// SavingsProgress reports the account's progress toward its savings goal.
func (uc *AccountUseCase) SavingsProgress(ctx context.Context, id int64) (domain.SavingsProgress, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return domain.SavingsProgress{}, err
	}

	return account.CheckSavingsProgress(), nil
}

// AddInterestResult is the outcome of one interest accrual.
type AddInterestResult struct {
	Account  *domain.Account
	Interest decimal.Decimal
}

// AddInterest accrues one round of interest on the account.
func (uc *AccountUseCase) AddInterest(ctx context.Context, id int64) (*AddInterestResult, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		uc.metrics.OperationErrors.WithLabelValues("account.add_interest", errorLabel(err)).Inc()
		return nil, err
	}

	interest := account.AddInterest()
	uc.metrics.InterestAccruals.Inc()

	return &AddInterestResult{Account: account, Interest: interest}, nil
}

// ConvertCurrency returns the account balance converted at the
// caller-supplied exchange rate. The account itself is untouched.
func (uc *AccountUseCase) ConvertCurrency(ctx context.Context, id int64, rate decimal.Decimal, currency string) (domain.Conversion, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Conversion{}, err
	}

	return account.ConvertCurrency(rate, currency), nil
}
