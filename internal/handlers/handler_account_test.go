package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestListAccounts() {
	parent := "10"
	suite.accountSvc.On("ListAccounts", mock.Anything).Return([]domain.Account{
		{Code: "10", Name: "Cash", Class: domain.Asset},
		{Code: "1001", Name: "Bank", Class: domain.Asset, ParentCode: &parent},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.AccountResponse
	suite.decode(w, &body)
	suite.Require().Len(body, 2)
	suite.Equal("10", *body[1].ParentCode)
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	suite.accountSvc.On("GetAccount", mock.Anything, "9999").
		Return(nil, fmt.Errorf("account 9999: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/9999", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteAccount() {
	suite.accountSvc.On("DeleteAccount", mock.Anything, "4001", testUserID).Return(nil).Once()
	suite.accountSvc.On("DeleteAccount", mock.Anything, "10", testUserID).
		Return(fmt.Errorf("account 10 has 1 child accounts: %w", apperrors.ErrConflict)).Once()

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/accounts/4001", nil).Code)
	suite.Equal(http.StatusConflict, suite.do(http.MethodDelete, "/api/v1/accounts/10", nil).Code)
}

func (suite *HandlerTestSuite) TestGetAccountBalance() {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	suite.ledgerSvc.On("AccountBalance", mock.Anything, "1001", from, to).Return(&domain.AccountBalance{
		AccountCode: "1001",
		From:        from,
		To:          to,
		TotalDebit:  decimal.RequireFromString("150.00"),
		TotalCredit: decimal.RequireFromString("40.00"),
		Balance:     decimal.RequireFromString("110.00"),
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/1001/balance?from=2024-01-01&to=2024-12-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.AccountBalanceResponse
	suite.decode(w, &body)
	suite.Equal("2024-01-01", body.From)
	suite.True(body.Balance.Equal(decimal.NewFromInt(110)))
}

func (suite *HandlerTestSuite) TestGetAccountBalance_InvalidRange() {
	w := suite.do(http.MethodGet, "/api/v1/accounts/1001/balance?from=2024-1-1&to=2024-12-31", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/accounts/1001/balance?from=2024-01-01", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.ledgerSvc.AssertNotCalled(suite.T(), "AccountBalance")
}

func (suite *HandlerTestSuite) TestGetAccountLedger() {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	suite.ledgerSvc.On("AccountLedger", mock.Anything, "1001", from, to).Return([]domain.LedgerRow{
		{EntryID: 1, Date: from, Protocol: "2024/000001", Debit: decimal.NewFromInt(10), Credit: decimal.Zero, RunningBalance: decimal.NewFromInt(10)},
		{EntryID: 2, Date: to, Protocol: "2024/000002", Debit: decimal.Zero, Credit: decimal.NewFromInt(4), RunningBalance: decimal.NewFromInt(6)},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/1001/ledger?from=2024-03-01&to=2024-03-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.AccountLedgerResponse
	suite.decode(w, &body)
	suite.Require().Len(body.Rows, 2)
	suite.Equal("2024-03-31", body.Rows[1].Date)
	suite.True(body.Rows[1].RunningBalance.Equal(decimal.NewFromInt(6)))
}

func (suite *HandlerTestSuite) TestGetAccountLedger_FromAfterTo() {
	from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	suite.ledgerSvc.On("AccountLedger", mock.Anything, "1001", from, to).
		Return(nil, apperrors.NewValidationError("from date %s is after to date %s", "2024-04-01", "2024-03-01")).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/1001/ledger?from=2024-04-01&to=2024-03-01", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}
