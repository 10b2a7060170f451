package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountBalance is the debit/credit summary of an account over a date range.
type AccountBalance struct {
	AccountCode string          `json:"accountCode"`
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"` // TotalDebit - TotalCredit
}

// LedgerRow is one line of an account ledger with its running balance.
type LedgerRow struct {
	EntryID        int64           `json:"entryID"`
	Date           time.Time       `json:"date"`
	Protocol       string          `json:"protocol"`
	Document       string          `json:"document"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"` // Set by the ledger service
}
