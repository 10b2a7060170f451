package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is the database representation of an entry header.
type Entry struct {
	EntryID           int64               `db:"entry_id"`
	EntryDate         time.Time           `db:"entry_date"`
	Protocol          string              `db:"protocol"`
	Document          string              `db:"document"`
	DocumentDate      string              `db:"document_date"`
	Party             string              `db:"party"`
	Description       string              `db:"description"`
	CreatedBy         string              `db:"created_by"`
	CreatedAt         time.Time           `db:"created_at"`
	ReversalOf        sql.NullInt64       `db:"reversal_of"`
	ClientReferenceID sql.NullString      `db:"client_reference_id"`
	TaxableAmount     decimal.NullDecimal `db:"taxable_amount"`
	VATRate           decimal.NullDecimal `db:"vat_rate"`
	VATAmount         decimal.NullDecimal `db:"vat_amount"`
}

// EntryLine is the database representation of one line of an entry.
type EntryLine struct {
	LineID      int64           `db:"line_id"`
	EntryID     int64           `db:"entry_id"`
	LineNo      int             `db:"line_no"`
	AccountCode string          `db:"account_code"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
}

// AuditLog is the database representation of an audit_log row.
type AuditLog struct {
	AuditID   int64     `db:"audit_id"`
	EntryID   int64     `db:"entry_id"`
	Action    string    `db:"action"`
	UserID    string    `db:"user_id"`
	Payload   []byte    `db:"payload"`
	CreatedAt time.Time `db:"created_at"`
}

// LedgerLine is one line of an account joined with its entry header.
type LedgerLine struct {
	EntryID     int64           `db:"entry_id"`
	EntryDate   time.Time       `db:"entry_date"`
	Protocol    string          `db:"protocol"`
	Document    string          `db:"document"`
	Description string          `db:"description"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
}
