package repositories

import (
	"context"
)

// TransactionManager runs units of work inside the ledger's exclusive write scope.
type TransactionManager interface {
	// WithinWriteTx runs fn inside one database transaction while holding the
	// ledger write lock. repos are bound to that transaction. The transaction
	// commits when fn returns nil and rolls back otherwise, including when fn panics.
	WithinWriteTx(ctx context.Context, fn func(ctx context.Context, repos RepositoryFacade) error) error
}
