package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the ledger core.
type Metrics struct {
	// Account metrics
	AccountsCreated  prometheus.Counter
	Deposits         prometheus.Counter
	Withdrawals      prometheus.Counter
	Transfers        prometheus.Counter
	TransferAmount   prometheus.Histogram
	BillPayments     prometheus.Counter
	InterestAccruals prometheus.Counter

	// Loan metrics
	LoansCreated prometheus.Counter
	LoanPayments prometheus.Counter
	LoanPayoffs  prometheus.Counter

	// Error metrics
	OperationErrors *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		Deposits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_deposits_total",
			Help: "Total number of successful deposits",
		}),
		Withdrawals: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_withdrawals_total",
			Help: "Total number of successful withdrawals",
		}),
		Transfers: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_transfers_total",
			Help: "Total number of successful transfers",
		}),
		TransferAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bankledger_transfer_amount",
			Help:    "Transfer amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		BillPayments: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_bill_payments_total",
			Help: "Total number of bills paid",
		}),
		InterestAccruals: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_interest_accruals_total",
			Help: "Total number of interest accruals applied",
		}),
		LoansCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_loans_created_total",
			Help: "Total number of loans created",
		}),
		LoanPayments: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_loan_payments_total",
			Help: "Total number of loan payments applied",
		}),
		LoanPayoffs: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankledger_loan_payoffs_total",
			Help: "Total number of loans fully paid off",
		}),
		OperationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankledger_operation_errors_total",
				Help: "Total number of failed operations by operation and error type",
			},
			[]string{"operation", "error_type"},
		),
	}
}
