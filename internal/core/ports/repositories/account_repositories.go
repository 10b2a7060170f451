package repositories

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts
type AccountReader interface {
	// FindAccountByCode retrieves a specific account by its code.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts retrieves the whole chart of accounts ordered by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// FindExistingAccountCodes returns the subset of codes that exist in the chart.
	FindExistingAccountCodes(ctx context.Context, codes []string) (map[string]bool, error)

	// CountChildAccounts counts the accounts whose parent is code.
	CountChildAccounts(ctx context.Context, code string) (int, error)
}

// AccountWriter defines write operations for the chart of accounts
type AccountWriter interface {
	// SaveAccount inserts an account or updates its name, class and parent.
	SaveAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account.
	DeleteAccount(ctx context.Context, code string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
