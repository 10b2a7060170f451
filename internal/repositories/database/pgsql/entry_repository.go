package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/SscSPs/ledger_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxEntryRepository struct {
	BaseRepository
}

// Ensure PgxEntryRepository implements portsrepo.EntryRepositoryFacade
var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

const entryColumns = `entry_id, entry_date, protocol, document, document_date, party, description,
	created_by, created_at, reversal_of, client_reference_id, taxable_amount, vat_rate, vat_amount`

func (r *PgxEntryRepository) findEntryHeader(ctx context.Context, op string, where string, arg any) (*models.Entry, error) {
	rows, err := r.db.Query(ctx, `SELECT `+entryColumns+` FROM entries WHERE `+where+` LIMIT 1`, arg)
	if err != nil {
		return nil, mapPgError(err, "failed to query "+op)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Entry])
	if err != nil {
		return nil, mapPgError(err, op)
	}
	return &m, nil
}

// FindEntryByID retrieves an entry and its lines in posting order.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.Entry, error) {
	m, err := r.findEntryHeader(ctx, fmt.Sprintf("entry %d", entryID), "entry_id = $1", entryID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT line_id, entry_id, line_no, account_code, debit, credit
		FROM entry_lines
		WHERE entry_id = $1
		ORDER BY line_no`, entryID)
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to query lines of entry %d", entryID))
	}
	lines, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.EntryLine])
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to scan lines of entry %d", entryID))
	}

	entry := mapping.ToDomainEntry(*m, lines)
	return &entry, nil
}

// FindEntryByClientReference retrieves the header of the entry posted with the given idempotency key.
func (r *PgxEntryRepository) FindEntryByClientReference(ctx context.Context, clientReferenceID string) (*domain.Entry, error) {
	m, err := r.findEntryHeader(ctx, fmt.Sprintf("entry with client reference %q", clientReferenceID), "client_reference_id = $1", clientReferenceID)
	if err != nil {
		return nil, err
	}
	entry := mapping.ToDomainEntry(*m, nil)
	return &entry, nil
}

// FindReversalOf retrieves the header of the entry reversing entryID.
func (r *PgxEntryRepository) FindReversalOf(ctx context.Context, entryID int64) (*domain.Entry, error) {
	m, err := r.findEntryHeader(ctx, fmt.Sprintf("reversal of entry %d", entryID), "reversal_of = $1", entryID)
	if err != nil {
		return nil, err
	}
	entry := mapping.ToDomainEntry(*m, nil)
	return &entry, nil
}

// NextProtocolNumber atomically increments the counter of year, creating it at 1.
// Run inside the write transaction, a rollback restores the previous value.
func (r *PgxEntryRepository) NextProtocolNumber(ctx context.Context, year int) (int64, error) {
	query := `
		INSERT INTO protocol_counters (year, counter) VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET counter = protocol_counters.counter + 1
		RETURNING counter;
	`
	var counter int64
	if err := r.db.QueryRow(ctx, query, year).Scan(&counter); err != nil {
		return 0, mapPgError(err, fmt.Sprintf("failed to allocate protocol number for %d", year))
	}
	return counter, nil
}

// InsertEntry persists an entry header and returns its id.
func (r *PgxEntryRepository) InsertEntry(ctx context.Context, entry domain.Entry) (int64, error) {
	m, err := mapping.ToModelEntry(entry)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO entries (entry_date, protocol, document, document_date, party, description,
			created_by, created_at, reversal_of, client_reference_id, taxable_amount, vat_rate, vat_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING entry_id;
	`
	var entryID int64
	err = r.db.QueryRow(ctx, query,
		m.EntryDate, m.Protocol, m.Document, m.DocumentDate, m.Party, m.Description,
		m.CreatedBy, m.CreatedAt, m.ReversalOf, m.ClientReferenceID, m.TaxableAmount, m.VATRate, m.VATAmount,
	).Scan(&entryID)
	if err != nil {
		return 0, mapPgError(err, "failed to insert entry "+m.Protocol)
	}
	return entryID, nil
}

// InsertEntryLines persists the lines of entryID in one batch.
func (r *PgxEntryRepository) InsertEntryLines(ctx context.Context, entryID int64, lines []domain.EntryLine) error {
	query := `
		INSERT INTO entry_lines (entry_id, line_no, account_code, debit, credit)
		VALUES ($1, $2, $3, $4, $5);
	`
	batch := &pgx.Batch{}
	for _, m := range mapping.ToModelEntryLines(entryID, lines) {
		batch.Queue(query, m.EntryID, m.LineNo, m.AccountCode, m.Debit, m.Credit)
	}

	br := r.db.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return mapPgError(err, fmt.Sprintf("failed to insert line %d of entry %d", i+1, entryID))
		}
	}
	if err := br.Close(); err != nil {
		return mapPgError(err, fmt.Sprintf("failed to insert lines of entry %d", entryID))
	}
	return nil
}

// InsertAuditLog appends an audit row; the payload is stored as jsonb.
func (r *PgxEntryRepository) InsertAuditLog(ctx context.Context, log domain.AuditLogEntry) error {
	m := mapping.ToModelAuditLog(log)
	query := `
		INSERT INTO audit_log (entry_id, action, user_id, payload, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	if _, err := r.db.Exec(ctx, query, m.EntryID, m.Action, m.UserID, m.Payload, m.CreatedAt); err != nil {
		return mapPgError(err, fmt.Sprintf("failed to insert audit log for entry %d", m.EntryID))
	}
	return nil
}
