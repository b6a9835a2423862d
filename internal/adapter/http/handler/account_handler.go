package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/mkarlsen/bankledger/internal/adapter/http/dto"
	"github.com/mkarlsen/bankledger/internal/domain"
	"github.com/mkarlsen/bankledger/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error)
	GetAccount(ctx context.Context, id int64) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
	Deposit(ctx context.Context, id int64, amount decimal.Decimal) (*domain.Account, error)
	Withdraw(ctx context.Context, id int64, amount decimal.Decimal) (*domain.Account, error)
	PayBill(ctx context.Context, id int64, billType string, amount decimal.Decimal) (*domain.Account, error)
	SetSavingsGoal(ctx context.Context, id int64, goal decimal.Decimal) (*domain.Account, error)
	SavingsProgress(ctx context.Context, id int64) (domain.SavingsProgress, error)
	AddInterest(ctx context.Context, id int64) (*usecase.AddInterestResult, error)
	ConvertCurrency(ctx context.Context, id int64, rate decimal.Decimal, currency string) (domain.Conversion, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accountUC AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// Create creates a new account.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.accountUC.CreateAccount(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create account", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.AccountFromDomain(account))
}

// Get retrieves an account by id.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account id", err.Error())
		return
	}

	account, err := h.accountUC.GetAccount(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// List lists all accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountUC.ListAccounts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountsFromDomain(accounts))
}

// Deposit credits an amount to an account.
func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account id", err.Error())
		return
	}

	var req dto.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.accountUC.Deposit(r.Context(), id, req.Amount)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to deposit", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// Withdraw debits an amount from an account.
func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account id", err.Error())
		return
	}

	var req dto.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.accountUC.Withdraw(r.Context(), id, req.Amount)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to withdraw", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// Transactions returns the account's audit log.
func (h *AccountHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account id", err.Error())
		return
	}

	account, err := h.accountUC.GetAccount(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(account.Transactions()))
}

// PayBill withdraws a bill amount and records the payment.
func (h *AccountHandler) PayBill(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account id", err.Error())
		return
	}

	var req dto.PayBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.accountUC.PayBill(r.Context(), id, req.Type, req.Amount)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to pay bill", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// Bills returns the account's bill payment log.
func (h *AccountHandler) Bills(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account id", err.Error())
		return
	}

	account, err := h.accountUC.GetAccount(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BillPaymentsFromDomain(account.BillPayments()))
}

// SetSavingsGoal sets the account's savings target.
func (h *AccountHandler) SetSavingsGoal(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account id", err.Error())
		return
	}

	var req dto.SavingsGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.accountUC.SetSavingsGoal(r.Context(), id, req.Goal)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to set savings goal", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// SavingsProgress reports progress toward the savings goal.
func (h *AccountHandler) SavingsProgress(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account id", err.Error())
		return
	}

	progress, err := h.accountUC.SavingsProgress(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get savings progress", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SavingsProgressFromDomain(progress))
}

// AddInterest accrues one round of interest on the account.
func (h *AccountHandler) AddInterest(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account id", err.Error())
		return
	}

	result, err := h.accountUC.AddInterest(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add interest", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InterestResponse{
		Interest: result.Interest,
		Account:  dto.AccountFromDomain(result.Account),
	})
}

// Convert returns the balance converted at a caller-supplied exchange rate.
// Rate and currency come from query parameters; nothing is mutated.
func (h *AccountHandler) Convert(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account id", err.Error())
		return
	}

	rate, err := decimal.NewFromString(r.URL.Query().Get("rate"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid exchange rate", err.Error())
		return
	}

	currency := r.URL.Query().Get("currency")
	if currency == "" {
		writeError(w, http.StatusBadRequest, "missing currency code", "")
		return
	}

	conversion, err := h.accountUC.ConvertCurrency(r.Context(), id, rate, currency)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to convert currency", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ConversionFromDomain(conversion))
}
