package accounting

import (
	"fmt"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountPlaces is the number of decimal places every monetary amount is kept at.
const AmountPlaces = 2

// RoundAmount rounds to two decimal places, half away from zero.
// For the non-negative amounts of a ledger this is round-half-up.
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(AmountPlaces)
}

// Totals returns the sums of the debit and credit sides of lines, each line
// rounded first so the totals match what QuantizeLines stores.
func Totals(lines []domain.EntryLine) (debit decimal.Decimal, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, line := range lines {
		debit = debit.Add(RoundAmount(line.Debit))
		credit = credit.Add(RoundAmount(line.Credit))
	}
	return debit, credit
}

// IsBalanced reports whether the rounded debit and credit totals are equal.
func IsBalanced(lines []domain.EntryLine) bool {
	debit, credit := Totals(lines)
	return debit.Equal(credit)
}

// SignedMovement is the effect of a line on an account balance (debit - credit).
func SignedMovement(debit, credit decimal.Decimal) decimal.Decimal {
	return debit.Sub(credit)
}

// QuantizeLines returns a copy of lines with both sides rounded to two decimals.
func QuantizeLines(lines []domain.EntryLine) []domain.EntryLine {
	out := make([]domain.EntryLine, len(lines))
	for i, line := range lines {
		out[i] = domain.EntryLine{
			AccountCode: line.AccountCode,
			Debit:       RoundAmount(line.Debit),
			Credit:      RoundAmount(line.Credit),
		}
	}
	return out
}

// MirrorLines swaps debit and credit on every line, preserving order.
// Posting the mirror of an entry nets every touched account back to zero.
func MirrorLines(lines []domain.EntryLine) []domain.EntryLine {
	out := make([]domain.EntryLine, len(lines))
	for i, line := range lines {
		out[i] = domain.EntryLine{
			AccountCode: line.AccountCode,
			Debit:       line.Credit,
			Credit:      line.Debit,
		}
	}
	return out
}

// ProtocolYear extracts the fiscal year from a canonical entry date.
func ProtocolYear(date string) (int, error) {
	t, err := domain.ParseDate(date)
	if err != nil {
		return 0, err
	}
	return t.Year(), nil
}

// FormatProtocol renders a protocol number such as "2025/000042".
func FormatProtocol(year int, counter int64) string {
	return fmt.Sprintf("%04d/%06d", year, counter)
}

// ApplyRunningBalance fills RunningBalance on rows, which must already be in ledger order.
func ApplyRunningBalance(rows []domain.LedgerRow) []domain.LedgerRow {
	running := decimal.Zero
	for i := range rows {
		running = running.Add(SignedMovement(rows[i].Debit, rows[i].Credit))
		rows[i].RunningBalance = running
	}
	return rows
}
