package domain

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Account is a ledger account holding a balance in the bank's single
// implicit currency. Every mutation goes through its methods; each balance
// change appends exactly one audit entry to the transaction log.
//
// Accounts are safe for concurrent use. Transfer locks both accounts in
// ascending id order so two opposing transfers cannot deadlock.
type Account struct {
	Entity

	mu           sync.Mutex
	phone        string
	balance      decimal.Decimal
	interestRate decimal.Decimal
	transactions []AuditEntry
	billPayments []BillPayment
	savingsGoal  decimal.Decimal
}

// NewAccount creates an account with an opening balance and an interest rate
// expressed as a percentage (2.5 means 2.5%).
func NewAccount(id int64, name, phone string, balance, interestRate decimal.Decimal) *Account {
	return &Account{
		Entity:       NewEntity(id, name),
		phone:        phone,
		balance:      balance,
		interestRate: interestRate,
		savingsGoal:  decimal.Zero,
	}
}

// Phone returns the account holder's phone number.
func (a *Account) Phone() string {
	return a.phone
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.balance
}

// InterestRate returns the interest rate percentage.
func (a *Account) InterestRate() decimal.Decimal {
	return a.interestRate
}

// SavingsGoal returns the current savings goal, zero meaning "no goal".
func (a *Account) SavingsGoal() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.savingsGoal
}

// Transactions returns a copy of the audit log, oldest first.
func (a *Account) Transactions() []AuditEntry {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]AuditEntry, len(a.transactions))
	copy(out, a.transactions)

	return out
}

// BillPayments returns a copy of the bill payment log, oldest first.
func (a *Account) BillPayments() []BillPayment {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]BillPayment, len(a.billPayments))
	copy(out, a.billPayments)

	return out
}

// Deposit adds amount to the balance and records a "Deposit" entry.
// Non-positive amounts are silently ignored; depositing can never fail.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.deposit(amount)
}

func (a *Account) deposit(amount decimal.Decimal) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return
	}

	a.balance = a.balance.Add(amount)
	a.transactions = append(a.transactions, newAuditEntry(time.Now(), "Deposit $%s", amount))
}

// Withdraw removes amount from the balance and records a "Withdrawal" entry.
// It fails with ErrInvalidAmount for non-positive amounts and with
// ErrInsufficientFunds when amount exceeds the balance; either way the
// account is left untouched.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.withdraw(amount)
}

func (a *Account) withdraw(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}

	a.balance = a.balance.Sub(amount)
	a.transactions = append(a.transactions, newAuditEntry(time.Now(), "Withdrawal $%s", amount))

	return nil
}

// Transfer moves amount from a to recipient. The withdrawal and the deposit
// happen under both account locks, taken in ascending id order, so the pair
// of balance changes is observed atomically and no partial credit can exist
// without its matching debit. On success the sender's log gains a "Transfer"
// entry on top of the "Withdrawal" one.
//
// Transferring to the same account is allowed; it nets to the original
// balance and still logs all three entries.
func (a *Account) Transfer(recipient *Account, amount decimal.Decimal) error {
	if a == recipient || a.ID() == recipient.ID() {
		a.mu.Lock()
		defer a.mu.Unlock()

		return a.transferLocked(recipient, amount)
	}

	first, second := a, recipient
	if second.ID() < first.ID() {
		first, second = second, first
	}

	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	return a.transferLocked(recipient, amount)
}

// transferLocked performs the transfer with all needed locks already held.
func (a *Account) transferLocked(recipient *Account, amount decimal.Decimal) error {
	if err := a.withdraw(amount); err != nil {
		return err
	}

	recipient.deposit(amount)
	a.transactions = append(a.transactions, newAuditEntry(time.Now(), "Transfer $%s to %d", amount, recipient.ID()))

	return nil
}

// CalculateInterest returns the interest one accrual would add. No side
// effects.
func (a *Account) CalculateInterest() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.calculateInterest()
}

func (a *Account) calculateInterest() decimal.Decimal {
	return a.balance.Mul(a.interestRate).Div(hundred)
}

// AddInterest deposits one accrual of interest and records an explicit
// "Interest added" entry, so an accrual produces two audit lines. It returns
// the accrued amount.
func (a *Account) AddInterest() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()

	interest := a.calculateInterest()
	a.deposit(interest)
	a.transactions = append(a.transactions, newAuditEntry(time.Now(), "Interest added $%s", interest))

	return interest
}

// PayBill withdraws amount and records the bill in the bill payment log.
// Withdrawal failures propagate and leave both logs untouched.
func (a *Account) PayBill(billType string, amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.withdraw(amount); err != nil {
		return err
	}

	a.billPayments = append(a.billPayments, BillPayment{
		ID:     ulid.Make().String(),
		Type:   billType,
		Amount: amount,
		PaidAt: time.Now(),
	})

	return nil
}

// SetSavingsGoal sets the savings target unconditionally. The goal has no
// enforcement effect on any other operation.
func (a *Account) SetSavingsGoal(goal decimal.Decimal) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.savingsGoal = goal
}

// SavingsProgress reports how far the balance is toward the savings goal.
type SavingsProgress struct {
	Balance decimal.Decimal
	Goal    decimal.Decimal
	Percent decimal.Decimal
}

// CheckSavingsProgress returns the current progress toward the savings goal.
// Percent is zero when no positive goal is set.
func (a *Account) CheckSavingsProgress() SavingsProgress {
	a.mu.Lock()
	defer a.mu.Unlock()

	percent := decimal.Zero
	if a.savingsGoal.IsPositive() {
		percent = a.balance.Div(a.savingsGoal).Mul(hundred)
	}

	return SavingsProgress{
		Balance: a.balance,
		Goal:    a.savingsGoal,
		Percent: percent,
	}
}

// Conversion is the result of viewing the balance in another currency.
type Conversion struct {
	Balance   decimal.Decimal
	Converted decimal.Decimal
	Currency  string
}

// ConvertCurrency returns the balance converted at the caller-supplied
// exchange rate. The balance and the account's currency of record are not
// touched.
func (a *Account) ConvertCurrency(rate decimal.Decimal, currency string) Conversion {
	a.mu.Lock()
	defer a.mu.Unlock()

	return Conversion{
		Balance:   a.balance,
		Converted: a.balance.Mul(rate),
		Currency:  currency,
	}
}
