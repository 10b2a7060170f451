package dto

import (
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryLineRequest is one debit or credit line of a proposed entry.
// Amounts accept JSON numbers or strings ("12.50").
type EntryLineRequest struct {
	AccountCode string          `json:"accountCode" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// PostEntryRequest defines the data needed to post (or dry-run validate) an entry.
// Business rules (balance, signs, accounts, periods) are left to the ledger validator
// so that every violation is reported at once.
type PostEntryRequest struct {
	Date              string             `json:"date" binding:"required"` // YYYY-MM-DD
	Document          string             `json:"document"`
	DocumentDate      string             `json:"documentDate" binding:"omitempty,datetime=2006-01-02"`
	Party             string             `json:"party"`
	Description       string             `json:"description"`
	Lines             []EntryLineRequest `json:"lines" binding:"dive"`
	ClientReferenceID *string            `json:"clientReferenceID" binding:"omitempty,min=1,max=128"`
	TaxableAmount     *decimal.Decimal   `json:"taxableAmount"`
	VATRate           *decimal.Decimal   `json:"vatRate"`
	VATAmount         *decimal.Decimal   `json:"vatAmount"`
}

// ToDomain converts the request into an unposted domain.Entry.
func (r PostEntryRequest) ToDomain() domain.Entry {
	lines := make([]domain.EntryLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.EntryLine{AccountCode: l.AccountCode, Debit: l.Debit, Credit: l.Credit}
	}
	return domain.Entry{
		Date:              r.Date,
		Document:          r.Document,
		DocumentDate:      r.DocumentDate,
		Party:             r.Party,
		Description:       r.Description,
		Lines:             lines,
		ClientReferenceID: r.ClientReferenceID,
		TaxableAmount:     r.TaxableAmount,
		VATRate:           r.VATRate,
		VATAmount:         r.VATAmount,
	}
}

// LedgerErrorResponse is one violated business rule.
type LedgerErrorResponse struct {
	Code    domain.ErrorCode `json:"code"`
	Message string           `json:"message"`
}

// PostResultResponse is returned by the post and reverse endpoints.
type PostResultResponse struct {
	Success  bool                  `json:"success"`
	EntryID  *int64                `json:"entryID,omitempty"`
	Protocol string                `json:"protocol,omitempty"`
	Errors   []LedgerErrorResponse `json:"errors,omitempty"`
}

// ValidateEntryResponse is returned by the dry-run validation endpoint.
type ValidateEntryResponse struct {
	Valid  bool                  `json:"valid"`
	Errors []LedgerErrorResponse `json:"errors"`
}

func toLedgerErrorResponses(errs []domain.LedgerError) []LedgerErrorResponse {
	res := make([]LedgerErrorResponse, len(errs))
	for i, e := range errs {
		res[i] = LedgerErrorResponse{Code: e.Code, Message: e.Message}
	}
	return res
}

// ToPostResultResponse converts a domain.PostResult to its DTO.
func ToPostResultResponse(r domain.PostResult) PostResultResponse {
	res := PostResultResponse{
		Success:  r.Success,
		EntryID:  r.EntryID,
		Protocol: r.Protocol,
	}
	if len(r.Errors) > 0 {
		res.Errors = toLedgerErrorResponses(r.Errors)
	}
	return res
}

// ToValidateEntryResponse converts validator output to its DTO.
func ToValidateEntryResponse(errs []domain.LedgerError) ValidateEntryResponse {
	return ValidateEntryResponse{Valid: len(errs) == 0, Errors: toLedgerErrorResponses(errs)}
}

// EntryLineResponse is one persisted line.
type EntryLineResponse struct {
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// EntryResponse defines the data returned for a posted entry.
type EntryResponse struct {
	EntryID           int64               `json:"entryID"`
	Date              string              `json:"date"`
	Protocol          string              `json:"protocol"`
	Document          string              `json:"document"`
	DocumentDate      string              `json:"documentDate"`
	Party             string              `json:"party"`
	Description       string              `json:"description"`
	Lines             []EntryLineResponse `json:"lines"`
	ClientReferenceID *string             `json:"clientReferenceID,omitempty"`
	ReversalOf        *int64              `json:"reversalOf,omitempty"`
	TaxableAmount     *decimal.Decimal    `json:"taxableAmount,omitempty"`
	VATRate           *decimal.Decimal    `json:"vatRate,omitempty"`
	VATAmount         *decimal.Decimal    `json:"vatAmount,omitempty"`
	CreatedBy         string              `json:"createdBy"`
	CreatedAt         time.Time           `json:"createdAt"`
}

// ToEntryResponse converts a domain.Entry to EntryResponse DTO
func ToEntryResponse(e *domain.Entry) EntryResponse {
	lines := make([]EntryLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = EntryLineResponse{AccountCode: l.AccountCode, Debit: l.Debit, Credit: l.Credit}
	}
	return EntryResponse{
		EntryID:           e.EntryID,
		Date:              e.Date,
		Protocol:          e.Protocol,
		Document:          e.Document,
		DocumentDate:      e.DocumentDate,
		Party:             e.Party,
		Description:       e.Description,
		Lines:             lines,
		ClientReferenceID: e.ClientReferenceID,
		ReversalOf:        e.ReversalOf,
		TaxableAmount:     e.TaxableAmount,
		VATRate:           e.VATRate,
		VATAmount:         e.VATAmount,
		CreatedBy:         e.CreatedBy,
		CreatedAt:         e.CreatedAt,
	}
}
