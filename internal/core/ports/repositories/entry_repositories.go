package repositories

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// EntryReader defines read operations for posted entries
type EntryReader interface {
	// FindEntryByID retrieves an entry header together with its lines in posting order.
	FindEntryByID(ctx context.Context, entryID int64) (*domain.Entry, error)

	// FindEntryByClientReference retrieves the entry header carrying the given idempotency key.
	FindEntryByClientReference(ctx context.Context, clientReferenceID string) (*domain.Entry, error)

	// FindReversalOf retrieves the entry header that reverses entryID, if any.
	FindReversalOf(ctx context.Context, entryID int64) (*domain.Entry, error)
}

// EntryWriter defines write operations for posted entries. Only the posting engine uses it.
type EntryWriter interface {
	// NextProtocolNumber increments and returns the protocol counter of year.
	NextProtocolNumber(ctx context.Context, year int) (int64, error)

	// InsertEntry persists an entry header and returns its generated id.
	InsertEntry(ctx context.Context, entry domain.Entry) (int64, error)

	// InsertEntryLines persists the lines of an entry, keeping their order.
	InsertEntryLines(ctx context.Context, entryID int64, lines []domain.EntryLine) error

	// InsertAuditLog appends an audit row.
	InsertAuditLog(ctx context.Context, log domain.AuditLogEntry) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
