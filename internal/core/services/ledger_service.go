package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/utils/accounting"
)

type ledgerService struct {
	BaseService
	repos     portsrepo.RepositoryFacade
	txManager portsrepo.TransactionManager
	engine    *PostingEngine
}

// NewLedgerService creates the ledger service on top of the given repositories and posting engine.
func NewLedgerService(provider portsrepo.RepositoryProvider, engine *PostingEngine) portssvc.LedgerSvcFacade {
	return &ledgerService{
		repos:     provider.Repos,
		txManager: provider.TxManager,
		engine:    engine,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) ValidateEntry(ctx context.Context, entry domain.Entry) []domain.LedgerError {
	return NewValidator(s.repos).Validate(ctx, entry)
}

// PostEntry validates and posts inside one write scope.
func (s *ledgerService) PostEntry(ctx context.Context, entry domain.Entry, userID string) domain.PostResult {
	var result domain.PostResult
	err := s.txManager.WithinWriteTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		// A retried post must return the original result even if its period has since closed.
		posted, err := s.engine.findPosted(ctx, repos, entry)
		if err != nil {
			return err
		}
		if posted != nil {
			result = *posted
			return nil
		}

		if errs := NewValidator(repos).Validate(ctx, entry); len(errs) > 0 {
			result = domain.FailedResult(errs...)
			return nil
		}

		result, err = s.engine.insertWithin(ctx, repos, entry, userID)
		return err
	})
	if err != nil {
		return s.engine.failed(ctx, err, entry)
	}
	return result
}

func (s *ledgerService) Reverse(ctx context.Context, entryID int64, userID string) domain.PostResult {
	logger := s.GetLogger(ctx)

	var result domain.PostResult
	err := s.txManager.WithinWriteTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		original, err := repos.FindEntryByID(ctx, entryID)
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Entry to reverse not found", slog.Int64("entry_id", entryID))
			result = domain.FailedResult(domain.NewLedgerError(domain.ErrCodeNotFound, "entry %d not found", entryID))
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load entry %d: %w", entryID, err)
		}

		reversal, err := repos.FindReversalOf(ctx, entryID)
		switch {
		case err == nil:
			logger.Warn("Entry already reversed", slog.Int64("entry_id", entryID), slog.Int64("reversal_id", reversal.EntryID))
			result = domain.FailedResult(domain.NewLedgerError(domain.ErrCodeAlreadyReversed,
				"entry %d has already been reversed by entry %d", entryID, reversal.EntryID))
			return nil
		case !errors.Is(err, apperrors.ErrNotFound):
			return fmt.Errorf("failed to look up reversal of entry %d: %w", entryID, err)
		}

		mirror := buildReversal(*original)
		if errs := NewValidator(repos).Validate(ctx, mirror); len(errs) > 0 {
			result = domain.FailedResult(errs...)
			return nil
		}

		// The mirror never carries a client reference.
		result, err = s.engine.insertWithin(ctx, repos, mirror, userID)
		return err
	})
	if err != nil {
		return s.engine.failed(ctx, err, domain.Entry{})
	}
	return result
}

// buildReversal returns the entry that offsets original line by line.
func buildReversal(original domain.Entry) domain.Entry {
	reversalOf := original.EntryID
	return domain.Entry{
		Date:         original.Date,
		Document:     original.Document,
		DocumentDate: original.DocumentDate,
		Party:        original.Party,
		Description:  fmt.Sprintf("Reversal of entry %d", original.EntryID),
		Lines:        accounting.MirrorLines(original.Lines),
		ReversalOf:   &reversalOf,
	}
}

func (s *ledgerService) GetEntry(ctx context.Context, entryID int64) (*domain.Entry, error) {
	entry, err := s.repos.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entry", slog.Int64("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *ledgerService) AccountBalance(ctx context.Context, code string, from, to time.Time) (*domain.AccountBalance, error) {
	if from.After(to) {
		return nil, apperrors.NewValidationError("from date %s is after to date %s", domain.FormatDate(from), domain.FormatDate(to))
	}

	debit, credit, err := s.repos.SumAccountLines(ctx, code, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum account lines", slog.String("account_code", code))
		return nil, err
	}

	return &domain.AccountBalance{
		AccountCode: code,
		From:        from,
		To:          to,
		TotalDebit:  debit,
		TotalCredit: credit,
		Balance:     accounting.SignedMovement(debit, credit),
	}, nil
}

func (s *ledgerService) AccountLedger(ctx context.Context, code string, from, to time.Time) ([]domain.LedgerRow, error) {
	if from.After(to) {
		return nil, apperrors.NewValidationError("from date %s is after to date %s", domain.FormatDate(from), domain.FormatDate(to))
	}

	rows, err := s.repos.ListAccountLines(ctx, code, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account lines", slog.String("account_code", code))
		return nil, err
	}

	s.LogDebug(ctx, "Account ledger retrieved", slog.String("account_code", code), slog.Int("row_count", len(rows)))
	return accounting.ApplyRunningBalance(rows), nil
}
