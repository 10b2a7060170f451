package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/SscSPs/ledger_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxAccountRepository struct {
	BaseRepository
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `code, name, class, parent_code`

// FindAccountByCode retrieves an account by its code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	rows, err := r.db.Query(ctx, `SELECT `+accountColumns+` FROM accounts WHERE code = $1`, code)
	if err != nil {
		return nil, mapPgError(err, "failed to query account "+code)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, mapPgError(err, "account "+code)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// ListAccounts retrieves the chart of accounts ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.db.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY code`)
	if err != nil {
		return nil, mapPgError(err, "failed to list accounts")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, mapPgError(err, "failed to scan accounts")
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

// FindExistingAccountCodes returns which of codes exist.
func (r *PgxAccountRepository) FindExistingAccountCodes(ctx context.Context, codes []string) (map[string]bool, error) {
	existing := make(map[string]bool, len(codes))
	if len(codes) == 0 {
		return existing, nil
	}

	rows, err := r.db.Query(ctx, `SELECT code FROM accounts WHERE code = ANY($1)`, codes)
	if err != nil {
		return nil, mapPgError(err, "failed to look up account codes")
	}
	found, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, mapPgError(err, "failed to scan account codes")
	}
	for _, code := range found {
		existing[code] = true
	}
	return existing, nil
}

// CountChildAccounts counts the direct children of code.
func (r *PgxAccountRepository) CountChildAccounts(ctx context.Context, code string) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM accounts WHERE parent_code = $1`, code).Scan(&count); err != nil {
		return 0, mapPgError(err, "failed to count children of account "+code)
	}
	return count, nil
}

// SaveAccount inserts an account or updates an existing one with the same code.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (code, name, class, parent_code)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (code) DO UPDATE
		SET name = EXCLUDED.name, class = EXCLUDED.class, parent_code = EXCLUDED.parent_code;
	`
	if _, err := r.db.Exec(ctx, query, m.Code, m.Name, m.Class, m.ParentCode); err != nil {
		return mapPgError(err, "failed to save account "+m.Code)
	}
	return nil
}

// DeleteAccount removes an account. Accounts referenced by lines or children yield ErrConflict.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, code string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE code = $1`, code)
	if err != nil {
		return mapPgError(err, "failed to delete account "+code)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", code, apperrors.ErrNotFound)
	}
	return nil
}
