package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	// GetAccount retrieves an account by code.
	GetAccount(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts retrieves the whole chart of accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for the chart of accounts
type AccountWriterSvc interface {
	// LoadChart upserts the given accounts, parents before children.
	LoadChart(ctx context.Context, accounts []domain.Account, userID string) error

	// DeleteAccount removes an account that has no children.
	DeleteAccount(ctx context.Context, code string, userID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
