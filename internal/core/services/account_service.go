package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	txManager   portsrepo.TransactionManager
}

// NewAccountService creates the chart of accounts service.
func NewAccountService(provider portsrepo.RepositoryProvider) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: provider.Repos,
		txManager:   provider.TxManager,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) GetAccount(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_code", code))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) LoadChart(ctx context.Context, accounts []domain.Account, userID string) error {
	ordered, err := orderParentsFirst(accounts)
	if err != nil {
		return err
	}

	err = s.txManager.WithinWriteTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		for _, account := range ordered {
			if err := repos.SaveAccount(ctx, account); err != nil {
				return fmt.Errorf("failed to save account %s: %w", account.Code, err)
			}
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to load chart of accounts")
		return err
	}

	s.LogInfo(ctx, "Chart of accounts loaded", slog.Int("account_count", len(ordered)), slog.String("user_id", userID))
	return nil
}

func (s *accountService) DeleteAccount(ctx context.Context, code string, userID string) error {
	err := s.txManager.WithinWriteTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		if _, err := repos.FindAccountByCode(ctx, code); err != nil {
			return err
		}
		children, err := repos.CountChildAccounts(ctx, code)
		if err != nil {
			return err
		}
		if children > 0 {
			return fmt.Errorf("account %s has %d child accounts: %w", code, children, apperrors.ErrConflict)
		}
		return repos.DeleteAccount(ctx, code)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrConflict) {
			s.GetLogger(ctx).Warn("Account not deleted", slog.String("account_code", code), slog.String("reason", err.Error()))
		} else {
			s.LogError(ctx, err, "Failed to delete account", slog.String("account_code", code))
		}
		return err
	}

	s.LogInfo(ctx, "Account deleted", slog.String("account_code", code), slog.String("user_id", userID))
	return nil
}

// orderParentsFirst validates the chart and sorts it so every parent precedes its children.
// Parents outside the batch are assumed to exist already.
func orderParentsFirst(accounts []domain.Account) ([]domain.Account, error) {
	byCode := make(map[string]domain.Account, len(accounts))
	for _, account := range accounts {
		if account.Code == "" {
			return nil, apperrors.NewValidationError("account code is required")
		}
		if !account.Class.IsValid() {
			return nil, apperrors.NewValidationError("account %s has invalid class %q", account.Code, account.Class)
		}
		if _, dup := byCode[account.Code]; dup {
			return nil, apperrors.NewValidationError("account %s defined more than once", account.Code)
		}
		byCode[account.Code] = account
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(accounts))
	ordered := make([]domain.Account, 0, len(accounts))

	var visit func(code string) error
	visit = func(code string) error {
		account, inBatch := byCode[code]
		if !inBatch || state[code] == done {
			return nil
		}
		if state[code] == visiting {
			return apperrors.NewValidationError("account %s is its own ancestor", code)
		}
		state[code] = visiting
		if account.ParentCode != nil {
			if err := visit(*account.ParentCode); err != nil {
				return err
			}
		}
		state[code] = done
		ordered = append(ordered, account)
		return nil
	}

	for _, account := range accounts {
		if err := visit(account.Code); err != nil {
			return nil, err
		}
	}
	return ordered, nil
}
