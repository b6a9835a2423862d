package domain

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Loan is a fixed-interest loan. Interest is flat: the total owed is frozen
// at creation as principal plus principal*rate/100, and the term is
// descriptive only. Once cumulative payments reach the total owed the loan
// deactivates and stops accepting payments.
type Loan struct {
	Entity

	mu           sync.Mutex
	principal    decimal.Decimal
	interestRate decimal.Decimal
	termMonths   int
	amountPaid   decimal.Decimal
}

// NewLoan creates an open loan with nothing paid yet.
func NewLoan(id int64, name string, principal, interestRate decimal.Decimal, termMonths int) *Loan {
	return &Loan{
		Entity:       NewEntity(id, name),
		principal:    principal,
		interestRate: interestRate,
		termMonths:   termMonths,
		amountPaid:   decimal.Zero,
	}
}

// Principal returns the amount borrowed.
func (l *Loan) Principal() decimal.Decimal {
	return l.principal
}

// InterestRate returns the flat interest rate percentage.
func (l *Loan) InterestRate() decimal.Decimal {
	return l.interestRate
}

// TermMonths returns the loan term. It does not gate or schedule payments.
func (l *Loan) TermMonths() int {
	return l.termMonths
}

// AmountPaid returns the cumulative amount paid so far.
func (l *Loan) AmountPaid() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.amountPaid
}

// TotalOwed returns principal plus flat interest. Fixed at creation; the
// term does not change it.
func (l *Loan) TotalOwed() decimal.Decimal {
	return l.principal.Add(l.principal.Mul(l.interestRate).Div(hundred))
}

// MakePayment applies a payment and returns the remaining amount owed.
// Non-positive payments and payments against a paid-off loan are no-ops.
// Overpayment is clamped to the total owed, not rejected; reaching the total
// deactivates the loan for good.
func (l *Loan) MakePayment(amount decimal.Decimal) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount.LessThanOrEqual(decimal.Zero) || !l.Active() {
		return l.remaining()
	}

	l.amountPaid = l.amountPaid.Add(amount)

	if l.amountPaid.GreaterThanOrEqual(l.TotalOwed()) {
		l.amountPaid = l.TotalOwed()
		l.Deactivate()
	}

	return l.remaining()
}

// RemainingAmount returns what is still owed, zero once paid off.
func (l *Loan) RemainingAmount() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.remaining()
}

func (l *Loan) remaining() decimal.Decimal {
	return l.TotalOwed().Sub(l.amountPaid)
}
