package services

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// EntryValidatorSvc checks a proposed entry against the ledger rules
type EntryValidatorSvc interface {
	// ValidateEntry returns every violated rule; an empty result means the entry may be posted.
	ValidateEntry(ctx context.Context, entry domain.Entry) []domain.LedgerError
}

// LedgerWriterSvc defines the operations that add facts to the ledger
type LedgerWriterSvc interface {
	// PostEntry validates and posts an entry in one write scope.
	PostEntry(ctx context.Context, entry domain.Entry, userID string) domain.PostResult

	// Reverse posts the mirror entry of entryID.
	Reverse(ctx context.Context, entryID int64, userID string) domain.PostResult
}

// LedgerReaderSvc defines read projections over posted entries
type LedgerReaderSvc interface {
	// GetEntry retrieves a posted entry with its lines.
	GetEntry(ctx context.Context, entryID int64) (*domain.Entry, error)

	// AccountBalance sums the lines of an account over an inclusive date range.
	AccountBalance(ctx context.Context, code string, from, to time.Time) (*domain.AccountBalance, error)

	// AccountLedger lists the lines of an account with a running balance.
	AccountLedger(ctx context.Context, code string, from, to time.Time) ([]domain.LedgerRow, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	EntryValidatorSvc
	LedgerWriterSvc
	LedgerReaderSvc
}
