package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mkarlsen/bankledger/internal/domain"
	"github.com/mkarlsen/bankledger/internal/infrastructure/metrics"
)

// TransferUseCase moves money between two accounts.
type TransferUseCase struct {
	accountRepo AccountRepository
	metrics     *metrics.Metrics
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(accountRepo AccountRepository, m *metrics.Metrics) *TransferUseCase {
	return &TransferUseCase{
		accountRepo: accountRepo,
		metrics:     m,
	}
}

// TransferInput represents input for a transfer.
type TransferInput struct {
	FromID int64
	ToID   int64
	Amount decimal.Decimal
}

// TransferResult carries both accounts after a successful transfer.
type TransferResult struct {
	From *domain.Account
	To   *domain.Account
}

// Transfer resolves both accounts and moves amount from one to the other.
// The debit and credit happen under both account locks, so a failure leaves
// neither balance changed and success conserves their sum.
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInput) (*TransferResult, error) {
	from, err := uc.accountRepo.GetByID(ctx, input.FromID)
	if err != nil {
		uc.metrics.OperationErrors.WithLabelValues("transfer", errorLabel(err)).Inc()
		return nil, err
	}

	to, err := uc.accountRepo.GetByID(ctx, input.ToID)
	if err != nil {
		uc.metrics.OperationErrors.WithLabelValues("transfer", errorLabel(err)).Inc()
		return nil, err
	}

	if err := from.Transfer(to, input.Amount); err != nil {
		uc.metrics.OperationErrors.WithLabelValues("transfer", errorLabel(err)).Inc()
		return nil, err
	}

	uc.metrics.Transfers.Inc()
	uc.metrics.TransferAmount.Observe(input.Amount.InexactFloat64())

	return &TransferResult{From: from, To: to}, nil
}
