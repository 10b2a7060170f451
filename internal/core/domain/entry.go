package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryLine is a single debit or credit movement on one account.
// Exactly one of Debit/Credit is strictly positive on a valid line.
type EntryLine struct {
	AccountCode string          `json:"accountCode"` // FK -> accounts.code (Not Null)
	Debit       decimal.Decimal `json:"debit"`       // Non-negative, 2 decimals
	Credit      decimal.Decimal `json:"credit"`      // Non-negative, 2 decimals
}

// Entry is one double-entry transaction composed of balanced lines.
type Entry struct {
	EntryID           int64            `json:"entryID"`  // Assigned on post
	Date              string           `json:"date"`     // Canonical YYYY-MM-DD
	Protocol          string           `json:"protocol"` // Assigned on post, e.g. "2025/000001"
	Document          string           `json:"document"`
	DocumentDate      string           `json:"documentDate"`
	Party             string           `json:"party"`
	Description       string           `json:"description"`
	Lines             []EntryLine      `json:"lines,omitempty"`
	ClientReferenceID *string          `json:"clientReferenceID,omitempty"` // Idempotency key
	ReversalOf        *int64           `json:"reversalOf,omitempty"`        // FK -> entries.entry_id
	TaxableAmount     *decimal.Decimal `json:"taxableAmount,omitempty"`
	VATRate           *decimal.Decimal `json:"vatRate,omitempty"`
	VATAmount         *decimal.Decimal `json:"vatAmount,omitempty"`
	CreatedBy         string           `json:"createdBy"`
	CreatedAt         time.Time        `json:"createdAt"`
}

// HasClientReference reports whether the entry carries an idempotency key.
func (e Entry) HasClientReference() bool {
	return e.ClientReferenceID != nil && *e.ClientReferenceID != ""
}

// AuditActionPost is the audit log action recorded for every successful post.
const AuditActionPost = "POST"

// AuditLogEntry is an append-only snapshot of a posted entry.
type AuditLogEntry struct {
	AuditID   int64     `json:"auditID"`
	EntryID   int64     `json:"entryID"`
	Action    string    `json:"action"`
	UserID    string    `json:"userID"`
	Payload   []byte    `json:"payload"` // JSON encoded AuditSnapshot
	CreatedAt time.Time `json:"createdAt"`
}

// AuditSnapshot is the payload serialized into the audit log.
type AuditSnapshot struct {
	Entry     Entry       `json:"entry"`
	Lines     []EntryLine `json:"lines"`
	User      string      `json:"user"`
	Timestamp string      `json:"timestamp"` // UTC, RFC 3339
}
