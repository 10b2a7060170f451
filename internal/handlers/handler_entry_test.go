package handlers_test

import (
	"errors"
	"net/http"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func saleRequest() map[string]any {
	return map[string]any{
		"date":              "2024-03-15",
		"document":          "INV-7",
		"party":             "ACME",
		"description":       "Sale",
		"clientReferenceID": "order-7",
		"lines": []map[string]any{
			{"accountCode": "1001", "debit": "122.00", "credit": "0"},
			{"accountCode": "4001", "debit": 0, "credit": 122},
		},
	}
}

func (suite *HandlerTestSuite) TestPostEntry_Created() {
	entryID := int64(7)
	suite.ledgerSvc.On("PostEntry", mock.Anything, mock.MatchedBy(func(e domain.Entry) bool {
		return e.Date == "2024-03-15" &&
			len(e.Lines) == 2 &&
			e.Lines[0].Debit.Equal(decimal.NewFromInt(122)) &&
			e.Lines[1].Credit.Equal(decimal.NewFromInt(122)) &&
			e.ClientReferenceID != nil && *e.ClientReferenceID == "order-7"
	}), testUserID).Return(domain.PostedResult(entryID, "2024/000007")).Once()

	w := suite.do(http.MethodPost, "/api/v1/entries", saleRequest())

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.PostResultResponse
	suite.decode(w, &body)
	suite.True(body.Success)
	suite.Equal("2024/000007", body.Protocol)
	suite.Equal(entryID, *body.EntryID)
}

func (suite *HandlerTestSuite) TestPostEntry_RuleViolations() {
	suite.ledgerSvc.On("PostEntry", mock.Anything, mock.Anything, testUserID).Return(domain.FailedResult(
		domain.NewLedgerError(domain.ErrCodeUnbalanced, "entry is not balanced: debit=%s, credit=%s", "122.00", "100.00"),
		domain.NewLedgerError(domain.ErrCodeInvalidAccount, "account %s does not exist", "4001"),
	)).Once()

	w := suite.do(http.MethodPost, "/api/v1/entries", saleRequest())

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	var body dto.PostResultResponse
	suite.decode(w, &body)
	suite.False(body.Success)
	suite.Require().Len(body.Errors, 2)
	suite.Equal(domain.ErrCodeUnbalanced, body.Errors[0].Code)
}

func (suite *HandlerTestSuite) TestPostEntry_StorageFailure() {
	suite.ledgerSvc.On("PostEntry", mock.Anything, mock.Anything, testUserID).Return(domain.FailedResult(
		domain.NewLedgerError(domain.ErrCodeDBError, "connection reset"),
	)).Once()

	w := suite.do(http.MethodPost, "/api/v1/entries", saleRequest())

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *HandlerTestSuite) TestPostEntry_MalformedBody() {
	req := saleRequest()
	req["lines"] = []map[string]any{{"debit": "10"}} // missing accountCode

	w := suite.do(http.MethodPost, "/api/v1/entries", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.ledgerSvc.AssertNotCalled(suite.T(), "PostEntry")
}

func (suite *HandlerTestSuite) TestValidateEntry() {
	suite.ledgerSvc.On("ValidateEntry", mock.Anything, mock.Anything).Return([]domain.LedgerError{
		domain.NewLedgerError(domain.ErrCodePeriodClosed, "period %d-%02d is closed", 2024, 3),
	}).Once()

	w := suite.do(http.MethodPost, "/api/v1/entries/validate", saleRequest())

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ValidateEntryResponse
	suite.decode(w, &body)
	suite.False(body.Valid)
	suite.Equal("period 2024-03 is closed", body.Errors[0].Message)
}

func (suite *HandlerTestSuite) TestGetEntry() {
	reversalOf := int64(3)
	suite.ledgerSvc.On("GetEntry", mock.Anything, int64(4)).Return(&domain.Entry{
		EntryID:    4,
		Date:       "2024-03-15",
		Protocol:   "2024/000004",
		ReversalOf: &reversalOf,
		Lines: []domain.EntryLine{
			{AccountCode: "1001", Debit: decimal.Zero, Credit: decimal.NewFromInt(5)},
			{AccountCode: "4001", Debit: decimal.NewFromInt(5), Credit: decimal.Zero},
		},
	}, nil).Once()
	suite.ledgerSvc.On("GetEntry", mock.Anything, int64(99)).
		Return(nil, apperrors.NewNotFoundError("entry 99")).Once()

	w := suite.do(http.MethodGet, "/api/v1/entries/4", nil)
	suite.Equal(http.StatusOK, w.Code)
	var body dto.EntryResponse
	suite.decode(w, &body)
	suite.Equal(reversalOf, *body.ReversalOf)
	suite.Len(body.Lines, 2)

	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/v1/entries/99", nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/entries/abc", nil).Code)
}

func (suite *HandlerTestSuite) TestReverseEntry_StatusMapping() {
	suite.ledgerSvc.On("Reverse", mock.Anything, int64(1), testUserID).
		Return(domain.PostedResult(2, "2024/000002")).Once()
	suite.ledgerSvc.On("Reverse", mock.Anything, int64(3), testUserID).Return(domain.FailedResult(
		domain.NewLedgerError(domain.ErrCodeAlreadyReversed, "entry %d has already been reversed by entry %d", 3, 4),
	)).Once()
	suite.ledgerSvc.On("Reverse", mock.Anything, int64(5), testUserID).Return(domain.FailedResult(
		domain.NewLedgerError(domain.ErrCodeNotFound, "entry %d not found", 5),
	)).Once()

	suite.Equal(http.StatusCreated, suite.do(http.MethodPost, "/api/v1/entries/1/reverse", nil).Code)
	suite.Equal(http.StatusConflict, suite.do(http.MethodPost, "/api/v1/entries/3/reverse", nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodPost, "/api/v1/entries/5/reverse", nil).Code)
}

func (suite *HandlerTestSuite) TestServiceUnavailableWhenLedgerBusy() {
	busy := apperrors.NewAppError(http.StatusServiceUnavailable, "ledger is locked by another writer", errors.New("lock timeout"))
	suite.periodSvc.On("CloseYear", mock.Anything, 2024, testUserID).Return(nil, busy).Once()

	w := suite.do(http.MethodPost, "/api/v1/periods/2024/close", nil)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}
