package mapping

import (
	"database/sql"
	"fmt"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelEntry converts a domain Entry header to a model Entry.
// The entry date must be canonical; the lines are converted separately.
func ToModelEntry(d domain.Entry) (models.Entry, error) {
	date, err := domain.ParseDate(d.Date)
	if err != nil {
		return models.Entry{}, fmt.Errorf("entry date: %w", err)
	}
	return models.Entry{
		EntryID:           d.EntryID,
		EntryDate:         date,
		Protocol:          d.Protocol,
		Document:          d.Document,
		DocumentDate:      d.DocumentDate,
		Party:             d.Party,
		Description:       d.Description,
		CreatedBy:         d.CreatedBy,
		CreatedAt:         d.CreatedAt,
		ReversalOf:        toNullInt64(d.ReversalOf),
		ClientReferenceID: toNullString(d.ClientReferenceID),
		TaxableAmount:     toNullDecimal(d.TaxableAmount),
		VATRate:           toNullDecimal(d.VATRate),
		VATAmount:         toNullDecimal(d.VATAmount),
	}, nil
}

// ToDomainEntry converts a model Entry and its lines to a domain Entry
func ToDomainEntry(m models.Entry, lines []models.EntryLine) domain.Entry {
	return domain.Entry{
		EntryID:           m.EntryID,
		Date:              domain.FormatDate(m.EntryDate),
		Protocol:          m.Protocol,
		Document:          m.Document,
		DocumentDate:      m.DocumentDate,
		Party:             m.Party,
		Description:       m.Description,
		Lines:             ToDomainEntryLines(lines),
		ClientReferenceID: fromNullString(m.ClientReferenceID),
		ReversalOf:        fromNullInt64(m.ReversalOf),
		TaxableAmount:     fromNullDecimal(m.TaxableAmount),
		VATRate:           fromNullDecimal(m.VATRate),
		VATAmount:         fromNullDecimal(m.VATAmount),
		CreatedBy:         m.CreatedBy,
		CreatedAt:         m.CreatedAt,
	}
}

// ToModelEntryLines numbers the lines of an entry in their given order.
func ToModelEntryLines(entryID int64, lines []domain.EntryLine) []models.EntryLine {
	ms := make([]models.EntryLine, len(lines))
	for i, l := range lines {
		ms[i] = models.EntryLine{
			EntryID:     entryID,
			LineNo:      i + 1,
			AccountCode: l.AccountCode,
			Debit:       l.Debit,
			Credit:      l.Credit,
		}
	}
	return ms
}

// ToDomainEntryLines converts model lines to domain lines, keeping their order.
func ToDomainEntryLines(ms []models.EntryLine) []domain.EntryLine {
	if len(ms) == 0 {
		return nil
	}
	ds := make([]domain.EntryLine, len(ms))
	for i, m := range ms {
		ds[i] = domain.EntryLine{AccountCode: m.AccountCode, Debit: m.Debit, Credit: m.Credit}
	}
	return ds
}

// ToModelAuditLog converts a domain AuditLogEntry to a model AuditLog
func ToModelAuditLog(d domain.AuditLogEntry) models.AuditLog {
	return models.AuditLog{
		AuditID:   d.AuditID,
		EntryID:   d.EntryID,
		Action:    d.Action,
		UserID:    d.UserID,
		Payload:   d.Payload,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainLedgerRows converts joined ledger lines to domain rows without running balance.
func ToDomainLedgerRows(ms []models.LedgerLine) []domain.LedgerRow {
	ds := make([]domain.LedgerRow, len(ms))
	for i, m := range ms {
		ds[i] = domain.LedgerRow{
			EntryID:     m.EntryID,
			Date:        m.EntryDate,
			Protocol:    m.Protocol,
			Document:    m.Document,
			Description: m.Description,
			Debit:       m.Debit,
			Credit:      m.Credit,
		}
	}
	return ds
}

func toNullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func fromNullInt64(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func fromNullDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}
