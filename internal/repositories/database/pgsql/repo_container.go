package pgsql

import (
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires pool-bound repositories for reads and the Store for writes.
func NewRepositoryProvider(dbPool *pgxpool.Pool, opts StoreOptions) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Repos:     newRepositorySet(dbPool),
		TxManager: NewStore(dbPool, opts),
	}
}
