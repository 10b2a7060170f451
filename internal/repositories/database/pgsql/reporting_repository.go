package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/SscSPs/ledger_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	BaseRepository
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// SumAccountLines totals the lines of code for entries dated in [from, to].
func (r *PgxReportingRepository) SumAccountLines(ctx context.Context, code string, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
		FROM entry_lines l
		JOIN entries e ON e.entry_id = l.entry_id
		WHERE l.account_code = $1 AND e.entry_date BETWEEN $2 AND $3;
	`
	var debit, credit decimal.Decimal
	if err := r.db.QueryRow(ctx, query, code, from, to).Scan(&debit, &credit); err != nil {
		return decimal.Zero, decimal.Zero, mapPgError(err, "failed to sum lines of account "+code)
	}
	return debit, credit, nil
}

// ListAccountLines lists the lines of code for entries dated in [from, to] in ledger order.
func (r *PgxReportingRepository) ListAccountLines(ctx context.Context, code string, from, to time.Time) ([]domain.LedgerRow, error) {
	query := `
		SELECT e.entry_id, e.entry_date, e.protocol, e.document, e.description, l.debit, l.credit
		FROM entry_lines l
		JOIN entries e ON e.entry_id = l.entry_id
		WHERE l.account_code = $1 AND e.entry_date BETWEEN $2 AND $3
		ORDER BY e.entry_date, e.entry_id, l.line_no;
	`
	rows, err := r.db.Query(ctx, query, code, from, to)
	if err != nil {
		return nil, mapPgError(err, "failed to list lines of account "+code)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LedgerLine])
	if err != nil {
		return nil, mapPgError(err, "failed to scan lines of account "+code)
	}
	return mapping.ToDomainLedgerRows(ms), nil
}
