package dto

import (
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	Code       string              `json:"code"`
	Name       string              `json:"name"`
	Class      domain.AccountClass `json:"class"`
	ParentCode *string             `json:"parentCode,omitempty"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		Code:       acc.Code,
		Name:       acc.Name,
		Class:      acc.Class,
		ParentCode: acc.ParentCode,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// DateRangeParams defines the inclusive date range of balance and ledger queries.
type DateRangeParams struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountCode string          `json:"accountCode"`
	From        string          `json:"from"`
	To          string          `json:"to"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"`
}

// ToAccountBalanceResponse converts a domain.AccountBalance to its DTO.
func ToAccountBalanceResponse(b *domain.AccountBalance) AccountBalanceResponse {
	return AccountBalanceResponse{
		AccountCode: b.AccountCode,
		From:        domain.FormatDate(b.From),
		To:          domain.FormatDate(b.To),
		TotalDebit:  b.TotalDebit,
		TotalCredit: b.TotalCredit,
		Balance:     b.Balance,
	}
}

// LedgerRowResponse is one line of an account ledger.
type LedgerRowResponse struct {
	EntryID        int64           `json:"entryID"`
	Date           string          `json:"date"`
	Protocol       string          `json:"protocol"`
	Document       string          `json:"document"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// AccountLedgerResponse defines the data returned for an account ledger query.
type AccountLedgerResponse struct {
	AccountCode string              `json:"accountCode"`
	Rows        []LedgerRowResponse `json:"rows"`
}

// ToAccountLedgerResponse converts ledger rows to their DTO.
func ToAccountLedgerResponse(code string, rows []domain.LedgerRow) AccountLedgerResponse {
	res := AccountLedgerResponse{AccountCode: code, Rows: make([]LedgerRowResponse, len(rows))}
	for i, r := range rows {
		res.Rows[i] = LedgerRowResponse{
			EntryID:        r.EntryID,
			Date:           domain.FormatDate(r.Date),
			Protocol:       r.Protocol,
			Document:       r.Document,
			Description:    r.Description,
			Debit:          r.Debit,
			Credit:         r.Credit,
			RunningBalance: r.RunningBalance,
		}
	}
	return res
}
