package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoan_TotalOwed(t *testing.T) {
	loan := NewLoan(10, "car loan", decimal.NewFromInt(1000), decimal.NewFromInt(10), 12)

	if !loan.TotalOwed().Equal(decimal.NewFromInt(1100)) {
		t.Fatalf("expected total owed 1100, got %s", loan.TotalOwed())
	}

	// Flat interest: the term never changes what is owed.
	other := NewLoan(11, "car loan", decimal.NewFromInt(1000), decimal.NewFromInt(10), 60)
	if !other.TotalOwed().Equal(loan.TotalOwed()) {
		t.Fatalf("term changed total owed: %s vs %s", other.TotalOwed(), loan.TotalOwed())
	}
}

func TestLoan_MakePayment_Partial(t *testing.T) {
	loan := NewLoan(10, "car loan", decimal.NewFromInt(1000), decimal.NewFromInt(10), 12)

	remaining := loan.MakePayment(decimal.NewFromInt(400))

	if !remaining.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("expected remaining 700, got %s", remaining)
	}

	if !loan.Active() {
		t.Fatal("loan should still be open")
	}
}

func TestLoan_MakePayment_PayoffIsTerminal(t *testing.T) {
	loan := NewLoan(10, "car loan", decimal.NewFromInt(1000), decimal.NewFromInt(10), 12)

	remaining := loan.MakePayment(decimal.NewFromInt(1100))

	if !remaining.Equal(decimal.Zero) {
		t.Fatalf("expected remaining 0, got %s", remaining)
	}

	if loan.Active() {
		t.Fatal("paid-off loan should be inactive")
	}

	// Payments after payoff change nothing.
	loan.MakePayment(decimal.NewFromInt(50))

	if !loan.AmountPaid().Equal(decimal.NewFromInt(1100)) {
		t.Fatalf("expected amount paid clamped at 1100, got %s", loan.AmountPaid())
	}

	if !loan.RemainingAmount().Equal(decimal.Zero) {
		t.Fatalf("expected remaining 0, got %s", loan.RemainingAmount())
	}
}

func TestLoan_MakePayment_OverpaymentClamps(t *testing.T) {
	loan := NewLoan(10, "car loan", decimal.NewFromInt(1000), decimal.NewFromInt(10), 12)

	loan.MakePayment(decimal.NewFromInt(5000))

	if !loan.AmountPaid().Equal(decimal.NewFromInt(1100)) {
		t.Fatalf("expected amount paid clamped at 1100, got %s", loan.AmountPaid())
	}

	if loan.Active() {
		t.Fatal("overpaid loan should be inactive")
	}
}

func TestLoan_MakePayment_NonPositiveIgnored(t *testing.T) {
	loan := NewLoan(10, "car loan", decimal.NewFromInt(1000), decimal.NewFromInt(10), 12)

	loan.MakePayment(decimal.Zero)
	loan.MakePayment(decimal.NewFromInt(-100))

	if !loan.AmountPaid().Equal(decimal.Zero) {
		t.Fatalf("expected nothing paid, got %s", loan.AmountPaid())
	}
}

func TestLoan_IncrementalPayoff(t *testing.T) {
	loan := NewLoan(10, "car loan", decimal.NewFromInt(1000), decimal.NewFromInt(10), 12)

	payments := 0
	for loan.Active() {
		loan.MakePayment(decimal.NewFromInt(300))
		payments++

		if payments > 10 {
			t.Fatal("loan never paid off")
		}
	}

	if payments != 4 {
		t.Fatalf("expected payoff after 4 payments of 300, got %d", payments)
	}

	if !loan.RemainingAmount().Equal(decimal.Zero) {
		t.Fatalf("expected remaining 0, got %s", loan.RemainingAmount())
	}
}

func TestEntity_DeactivateIsOneWay(t *testing.T) {
	e := NewEntity(1, "thing")

	if !e.Active() {
		t.Fatal("new entity should be active")
	}

	e.Deactivate()

	if e.Active() {
		t.Fatal("deactivated entity should stay inactive")
	}
}
