package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines read projections over posted lines
type ReportingRepository interface {
	// SumAccountLines returns the debit and credit totals of code for entries dated in [from, to].
	SumAccountLines(ctx context.Context, code string, from, to time.Time) (decimal.Decimal, decimal.Decimal, error)

	// ListAccountLines returns the lines of code for entries dated in [from, to],
	// ordered by entry date then entry id. RunningBalance is left zero.
	ListAccountLines(ctx context.Context, code string, from, to time.Time) ([]domain.LedgerRow, error)
}
