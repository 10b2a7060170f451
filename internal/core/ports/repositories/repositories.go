package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// ValidationReader is the read-only view the validator needs.
type ValidationReader interface {
	FindExistingAccountCodes(ctx context.Context, codes []string) (map[string]bool, error)
	FindClosedPeriodCovering(ctx context.Context, date time.Time) (*domain.Period, error)
	FindReversalOf(ctx context.Context, entryID int64) (*domain.Entry, error)
}

// RepositoryFacade groups every repository bound to the same database handle,
// either the pool or an open write transaction.
type RepositoryFacade interface {
	AccountRepositoryFacade
	EntryRepositoryFacade
	PeriodRepositoryFacade
	ReportingRepository
}

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	Repos     RepositoryFacade
	TxManager TransactionManager
}
