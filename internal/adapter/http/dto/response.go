package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkarlsen/bankledger/internal/domain"
	"github.com/mkarlsen/bankledger/internal/usecase"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Phone        string          `json:"phone"`
	Balance      decimal.Decimal `json:"balance"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	SavingsGoal  decimal.Decimal `json:"savings_goal"`
	Active       bool            `json:"active"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:           a.ID(),
		Name:         a.Name(),
		Phone:        a.Phone(),
		Balance:      a.Balance(),
		InterestRate: a.InterestRate(),
		SavingsGoal:  a.SavingsGoal(),
		Active:       a.Active(),
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}

	return result
}

// TransactionResponse represents one audit log entry.
type TransactionResponse struct {
	ID   string    `json:"id"`
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}

// TransactionsFromDomain converts audit entries to responses.
func TransactionsFromDomain(entries []domain.AuditEntry) []TransactionResponse {
	result := make([]TransactionResponse, len(entries))
	for i, e := range entries {
		result[i] = TransactionResponse{ID: e.ID, At: e.At, Text: e.Text}
	}

	return result
}

// BillPaymentResponse represents one bill payment record.
type BillPaymentResponse struct {
	ID     string          `json:"id"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	PaidAt time.Time       `json:"paid_at"`
}

// BillPaymentsFromDomain converts bill payments to responses.
func BillPaymentsFromDomain(bills []domain.BillPayment) []BillPaymentResponse {
	result := make([]BillPaymentResponse, len(bills))
	for i, b := range bills {
		result[i] = BillPaymentResponse{ID: b.ID, Type: b.Type, Amount: b.Amount, PaidAt: b.PaidAt}
	}

	return result
}

// TransferResponse carries both accounts after a transfer.
type TransferResponse struct {
	From *AccountResponse `json:"from"`
	To   *AccountResponse `json:"to"`
}

// TransferFromResult converts a transfer result to a response.
func TransferFromResult(result *usecase.TransferResult) *TransferResponse {
	return &TransferResponse{
		From: AccountFromDomain(result.From),
		To:   AccountFromDomain(result.To),
	}
}

// InterestResponse carries the accrued interest and the updated account.
type InterestResponse struct {
	Interest decimal.Decimal  `json:"interest"`
	Account  *AccountResponse `json:"account"`
}

// SavingsProgressResponse reports progress toward the savings goal.
type SavingsProgressResponse struct {
	Balance decimal.Decimal `json:"balance"`
	Goal    decimal.Decimal `json:"goal"`
	Percent decimal.Decimal `json:"percent"`
}

// SavingsProgressFromDomain converts savings progress to a response.
func SavingsProgressFromDomain(p domain.SavingsProgress) SavingsProgressResponse {
	return SavingsProgressResponse{Balance: p.Balance, Goal: p.Goal, Percent: p.Percent}
}

// ConversionResponse reports the balance viewed in another currency.
type ConversionResponse struct {
	Balance   decimal.Decimal `json:"balance"`
	Converted decimal.Decimal `json:"converted"`
	Currency  string          `json:"currency"`
}

// ConversionFromDomain converts a conversion to a response.
func ConversionFromDomain(c domain.Conversion) ConversionResponse {
	return ConversionResponse{Balance: c.Balance, Converted: c.Converted, Currency: c.Currency}
}

// LoanResponse represents a loan in API responses.
type LoanResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Principal    decimal.Decimal `json:"principal"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	TermMonths   int             `json:"term_months"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	TotalOwed    decimal.Decimal `json:"total_owed"`
	Remaining    decimal.Decimal `json:"remaining"`
	Active       bool            `json:"active"`
}

// LoanFromDomain converts a domain loan to a response.
func LoanFromDomain(l *domain.Loan) *LoanResponse {
	return &LoanResponse{
		ID:           l.ID(),
		Name:         l.Name(),
		Principal:    l.Principal(),
		InterestRate: l.InterestRate(),
		TermMonths:   l.TermMonths(),
		AmountPaid:   l.AmountPaid(),
		TotalOwed:    l.TotalOwed(),
		Remaining:    l.RemainingAmount(),
		Active:       l.Active(),
	}
}

// LoansFromDomain converts domain loans to responses.
func LoansFromDomain(loans []*domain.Loan) []*LoanResponse {
	result := make([]*LoanResponse, len(loans))
	for i, l := range loans {
		result[i] = LoanFromDomain(l)
	}

	return result
}

// LoanPaymentResponse is the outcome of a loan payment.
type LoanPaymentResponse struct {
	Loan      *LoanResponse   `json:"loan"`
	Remaining decimal.Decimal `json:"remaining"`
	PaidOff   bool            `json:"paid_off"`
}

// LoanPaymentFromResult converts a payment result to a response.
func LoanPaymentFromResult(result *usecase.PaymentResult) *LoanPaymentResponse {
	return &LoanPaymentResponse{
		Loan:      LoanFromDomain(result.Loan),
		Remaining: result.Remaining,
		PaidOff:   result.PaidOff,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
