package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/utils/accounting"
)

// Validator checks proposed entries against the ledger rules. It never writes.
type Validator struct {
	BaseService
	reader portsrepo.ValidationReader
}

// NewValidator creates a validator reading accounts, periods and reversals from reader.
func NewValidator(reader portsrepo.ValidationReader) *Validator {
	return &Validator{reader: reader}
}

// Validate runs every rule and returns all violations, in rule order.
// An empty result means the entry may be posted.
func (v *Validator) Validate(ctx context.Context, entry domain.Entry) []domain.LedgerError {
	var errs []domain.LedgerError
	errs = append(errs, v.checkBalanced(entry)...)
	errs = append(errs, v.checkLineSigns(entry)...)
	errs = append(errs, v.checkAccountsExist(ctx, entry)...)
	errs = append(errs, v.checkPeriodOpen(ctx, entry)...)
	errs = append(errs, v.checkNotAlreadyReversed(ctx, entry)...)

	if len(errs) > 0 {
		v.LogDebug(ctx, "Entry failed validation", slog.String("date", entry.Date), slog.Int("error_count", len(errs)))
	}
	return errs
}

func (v *Validator) checkBalanced(entry domain.Entry) []domain.LedgerError {
	debit, credit := accounting.Totals(entry.Lines)
	if !debit.Equal(credit) {
		return []domain.LedgerError{domain.NewLedgerError(domain.ErrCodeUnbalanced,
			"entry is not balanced: debit=%s, credit=%s", debit.StringFixed(2), credit.StringFixed(2))}
	}
	return nil
}

func (v *Validator) checkLineSigns(entry domain.Entry) []domain.LedgerError {
	if len(entry.Lines) == 0 {
		return []domain.LedgerError{domain.NewLedgerError(domain.ErrCodeEmptyLines, "entry has no lines")}
	}

	var errs []domain.LedgerError
	for _, line := range entry.Lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			errs = append(errs, domain.NewLedgerError(domain.ErrCodeNegativeAmount,
				"negative amount on account %s", line.AccountCode))
		}
		// Sides are judged as they will be stored.
		debit, credit := accounting.RoundAmount(line.Debit), accounting.RoundAmount(line.Credit)
		if debit.IsPositive() && credit.IsPositive() {
			errs = append(errs, domain.NewLedgerError(domain.ErrCodeAmbiguousLine,
				"ambiguous line on account %s: both debit and credit are positive", line.AccountCode))
		}
		if debit.IsZero() && credit.IsZero() && !line.Debit.IsNegative() && !line.Credit.IsNegative() {
			errs = append(errs, domain.NewLedgerError(domain.ErrCodeEmptyLines,
				"empty line on account %s: debit and credit are both zero", line.AccountCode))
		}
	}
	return errs
}

func (v *Validator) checkAccountsExist(ctx context.Context, entry domain.Entry) []domain.LedgerError {
	if len(entry.Lines) == 0 {
		return nil
	}

	codes := make([]string, 0, len(entry.Lines))
	for _, line := range entry.Lines {
		codes = append(codes, line.AccountCode)
	}
	existing, err := v.reader.FindExistingAccountCodes(ctx, codes)
	if err != nil {
		v.LogError(ctx, err, "Failed to look up accounts during validation")
		return []domain.LedgerError{domain.NewLedgerError(domain.ErrCodeDBError, "failed to look up accounts: %v", err)}
	}

	var errs []domain.LedgerError
	for _, line := range entry.Lines {
		if !existing[line.AccountCode] {
			errs = append(errs, domain.NewLedgerError(domain.ErrCodeInvalidAccount,
				"account %s does not exist", line.AccountCode))
		}
	}
	return errs
}

func (v *Validator) checkPeriodOpen(ctx context.Context, entry domain.Entry) []domain.LedgerError {
	date, err := domain.ParseDate(entry.Date)
	if err != nil {
		return []domain.LedgerError{domain.NewLedgerError(domain.ErrCodePeriodClosed, "invalid date: %s", entry.Date)}
	}

	period, err := v.reader.FindClosedPeriodCovering(ctx, date)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		v.LogError(ctx, err, "Failed to look up periods during validation", slog.String("date", entry.Date))
		return []domain.LedgerError{domain.NewLedgerError(domain.ErrCodeDBError, "failed to look up periods: %v", err)}
	}

	if period.IsAnnual() {
		return []domain.LedgerError{domain.NewLedgerError(domain.ErrCodePeriodClosed, "year %d is closed", period.Year)}
	}
	return []domain.LedgerError{domain.NewLedgerError(domain.ErrCodePeriodClosed,
		"period %d-%02d is closed", period.Year, *period.Month)}
}

func (v *Validator) checkNotAlreadyReversed(ctx context.Context, entry domain.Entry) []domain.LedgerError {
	if entry.ReversalOf == nil {
		return nil
	}

	_, err := v.reader.FindReversalOf(ctx, *entry.ReversalOf)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		v.LogError(ctx, err, "Failed to look up reversals during validation", slog.Int64("reversal_of", *entry.ReversalOf))
		return []domain.LedgerError{domain.NewLedgerError(domain.ErrCodeDBError, "failed to look up reversals: %v", err)}
	}
	return []domain.LedgerError{domain.NewLedgerError(domain.ErrCodeAlreadyReversed,
		"entry %d has already been reversed", *entry.ReversalOf)}
}
