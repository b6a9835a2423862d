package domain

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// AuditEntry is an immutable record of a balance-affecting action. Entries
// are append-only; nothing in the system edits or removes one.
type AuditEntry struct {
	ID   string
	At   time.Time
	Text string
}

func newAuditEntry(at time.Time, format string, args ...any) AuditEntry {
	return AuditEntry{
		ID:   ulid.Make().String(),
		At:   at,
		Text: fmt.Sprintf(format, args...),
	}
}

// String renders the entry in the audit log line format, e.g.
// "2026-09-01: Deposit $5".
func (e AuditEntry) String() string {
	return e.At.Format("2006-01-02") + ": " + e.Text
}

// BillPayment records a settled bill. Kept in its own log, separate from the
// transaction history.
type BillPayment struct {
	ID     string
	Type   string
	Amount decimal.Decimal
	PaidAt time.Time
}

// String renders the bill payment, e.g. "Electricity paid: $120".
func (b BillPayment) String() string {
	return fmt.Sprintf("%s paid: $%s", b.Type, b.Amount)
}
