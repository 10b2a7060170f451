package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/utils/accounting"
)

// PostingEngine is the only writer of entries, lines, protocol counters and the audit log.
type PostingEngine struct {
	BaseService
	txManager portsrepo.TransactionManager
}

// NewPostingEngine creates a posting engine writing through txManager.
func NewPostingEngine(txManager portsrepo.TransactionManager) *PostingEngine {
	return &PostingEngine{txManager: txManager}
}

// Post persists entry atomically and returns its id and protocol.
// It does not validate; callers are expected to run the Validator first.
// Storage failures roll back every write, counter included, and are reported as DB_ERROR.
func (e *PostingEngine) Post(ctx context.Context, entry domain.Entry, userID string) domain.PostResult {
	var result domain.PostResult
	err := e.txManager.WithinWriteTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		var err error
		result, err = e.postWithin(ctx, repos, entry, userID)
		return err
	})
	if err != nil {
		return e.failed(ctx, err, entry)
	}
	return result
}

// findPosted returns the result of an earlier post carrying the same client reference, or nil.
func (e *PostingEngine) findPosted(ctx context.Context, repos portsrepo.EntryReader, entry domain.Entry) (*domain.PostResult, error) {
	if !entry.HasClientReference() {
		return nil, nil
	}

	existing, err := repos.FindEntryByClientReference(ctx, *entry.ClientReferenceID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up client reference %q: %w", *entry.ClientReferenceID, err)
	}

	e.LogInfo(ctx, "Entry already posted for client reference",
		slog.String("client_reference_id", *entry.ClientReferenceID),
		slog.Int64("entry_id", existing.EntryID))
	result := domain.PostedResult(existing.EntryID, existing.Protocol)
	return &result, nil
}

// postWithin performs the post using repos bound to an already open write transaction.
func (e *PostingEngine) postWithin(ctx context.Context, repos portsrepo.EntryRepositoryFacade, entry domain.Entry, userID string) (domain.PostResult, error) {
	posted, err := e.findPosted(ctx, repos, entry)
	if err != nil {
		return domain.PostResult{}, err
	}
	if posted != nil {
		return *posted, nil
	}
	return e.insertWithin(ctx, repos, entry, userID)
}

// insertWithin writes entry unconditionally. Callers must have ruled out an
// earlier post with the same client reference in the same transaction.
func (e *PostingEngine) insertWithin(ctx context.Context, repos portsrepo.EntryWriter, entry domain.Entry, userID string) (domain.PostResult, error) {
	year, err := accounting.ProtocolYear(entry.Date)
	if err != nil {
		return domain.PostResult{}, fmt.Errorf("failed to derive protocol year: %w", err)
	}
	counter, err := repos.NextProtocolNumber(ctx, year)
	if err != nil {
		return domain.PostResult{}, fmt.Errorf("failed to allocate protocol number: %w", err)
	}

	now := e.Now()
	entry.Protocol = accounting.FormatProtocol(year, counter)
	entry.Lines = accounting.QuantizeLines(entry.Lines)
	entry.CreatedBy = userID
	entry.CreatedAt = now

	entryID, err := repos.InsertEntry(ctx, entry)
	if err != nil {
		return domain.PostResult{}, fmt.Errorf("failed to insert entry: %w", err)
	}
	entry.EntryID = entryID

	if err := repos.InsertEntryLines(ctx, entryID, entry.Lines); err != nil {
		return domain.PostResult{}, fmt.Errorf("failed to insert entry lines: %w", err)
	}

	header := entry
	header.Lines = nil
	payload, err := json.Marshal(domain.AuditSnapshot{
		Entry:     header,
		Lines:     entry.Lines,
		User:      userID,
		Timestamp: now.Format(time.RFC3339),
	})
	if err != nil {
		return domain.PostResult{}, fmt.Errorf("failed to encode audit payload: %w", err)
	}
	if err := repos.InsertAuditLog(ctx, domain.AuditLogEntry{
		EntryID:   entryID,
		Action:    domain.AuditActionPost,
		UserID:    userID,
		Payload:   payload,
		CreatedAt: now,
	}); err != nil {
		return domain.PostResult{}, fmt.Errorf("failed to insert audit log: %w", err)
	}

	e.LogInfo(ctx, "Entry posted",
		slog.Int64("entry_id", entryID),
		slog.String("protocol", entry.Protocol),
		slog.String("user_id", userID))
	return domain.PostedResult(entryID, entry.Protocol), nil
}

func (e *PostingEngine) failed(ctx context.Context, err error, entry domain.Entry) domain.PostResult {
	e.LogError(ctx, err, "Posting rolled back", slog.String("date", entry.Date))
	return domain.FailedResult(domain.NewLedgerError(domain.ErrCodeDBError, "%v", err))
}
