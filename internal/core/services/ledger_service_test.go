package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockRepository
	txManager *fakeTxManager
	service   portssvc.LedgerSvcFacade
	ctx       context.Context
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRepository)
	suite.txManager = &fakeTxManager{repos: suite.mockRepo}
	provider := portsrepo.RepositoryProvider{Repos: suite.mockRepo, TxManager: suite.txManager}
	suite.service = services.NewLedgerService(provider, services.NewPostingEngine(suite.txManager))
	suite.ctx = context.Background()
}

func (suite *LedgerServiceTestSuite) expectValidLookups() {
	suite.mockRepo.On("FindExistingAccountCodes", suite.ctx, mock.Anything).
		Return(map[string]bool{"1000": true, "4000": true}, nil).Once()
	suite.mockRepo.On("FindClosedPeriodCovering", suite.ctx, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()
}

func (suite *LedgerServiceTestSuite) expectPost(protocolCounter int64, entryID int64) {
	suite.mockRepo.On("NextProtocolNumber", suite.ctx, 2025).Return(protocolCounter, nil).Once()
	suite.mockRepo.On("InsertEntry", suite.ctx, mock.Anything).Return(entryID, nil).Once()
	suite.mockRepo.On("InsertEntryLines", suite.ctx, entryID, mock.Anything).Return(nil).Once()
	suite.mockRepo.On("InsertAuditLog", suite.ctx, mock.Anything).Return(nil).Once()
}

func (suite *LedgerServiceTestSuite) TestPostEntry_Success() {
	suite.expectValidLookups()
	suite.expectPost(1, 1)

	result := suite.service.PostEntry(suite.ctx, domain.Entry{
		Date:  "2025-01-10",
		Lines: []domain.EntryLine{debitLine("1000", "50"), creditLine("4000", "50")},
	}, "user-1")

	require.True(suite.T(), result.Success, result.Errors)
	assert.Equal(suite.T(), "2025/000001", result.Protocol)
	assert.Equal(suite.T(), 1, suite.txManager.commits)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostEntry_ValidationFailureDoesNotPost() {
	suite.mockRepo.On("FindExistingAccountCodes", suite.ctx, mock.Anything).
		Return(map[string]bool{"1000": true}, nil).Once()
	suite.mockRepo.On("FindClosedPeriodCovering", suite.ctx, mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	result := suite.service.PostEntry(suite.ctx, domain.Entry{
		Date:  "2025-01-10",
		Lines: []domain.EntryLine{debitLine("1000", "50"), creditLine("9999", "40")},
	}, "user-1")

	assert.False(suite.T(), result.Success)
	assert.True(suite.T(), result.HasCode(domain.ErrCodeUnbalanced))
	assert.True(suite.T(), result.HasCode(domain.ErrCodeInvalidAccount))
	suite.mockRepo.AssertNotCalled(suite.T(), "NextProtocolNumber", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "InsertEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_RetryReturnsOriginalWithoutValidating() {
	suite.mockRepo.On("FindEntryByClientReference", suite.ctx, "ref-1").
		Return(&domain.Entry{EntryID: 3, Protocol: "2025/000003"}, nil).Once()

	result := suite.service.PostEntry(suite.ctx, domain.Entry{
		Date:              "2025-01-10",
		ClientReferenceID: ptr("ref-1"),
		Lines:             []domain.EntryLine{debitLine("1000", "50"), creditLine("4000", "50")},
	}, "user-1")

	require.True(suite.T(), result.Success)
	assert.Equal(suite.T(), int64(3), *result.EntryID)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindExistingAccountCodes", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_ClientReferenceLookedUpOnce() {
	suite.mockRepo.On("FindEntryByClientReference", suite.ctx, "ref-2").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.expectValidLookups()
	suite.expectPost(4, 4)

	result := suite.service.PostEntry(suite.ctx, domain.Entry{
		Date:              "2025-01-10",
		ClientReferenceID: ptr("ref-2"),
		Lines:             []domain.EntryLine{debitLine("1000", "50"), creditLine("4000", "50")},
	}, "user-1")

	require.True(suite.T(), result.Success, result.Errors)
	assert.Equal(suite.T(), "2025/000004", result.Protocol)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "FindEntryByClientReference", 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestValidateEntry_DryRun() {
	suite.expectValidLookups()

	errs := suite.service.ValidateEntry(suite.ctx, domain.Entry{
		Date:  "2025-01-10",
		Lines: []domain.EntryLine{debitLine("1000", "50"), creditLine("4000", "50")},
	})

	assert.Empty(suite.T(), errs)
	assert.Equal(suite.T(), 0, suite.txManager.commits)
}

func (suite *LedgerServiceTestSuite) TestReverse_NotFound() {
	suite.mockRepo.On("FindEntryByID", suite.ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	result := suite.service.Reverse(suite.ctx, 99, "user-1")

	assert.False(suite.T(), result.Success)
	require.Len(suite.T(), result.Errors, 1)
	assert.Equal(suite.T(), domain.ErrCodeNotFound, result.Errors[0].Code)
}

func (suite *LedgerServiceTestSuite) TestReverse_AlreadyReversed() {
	original := &domain.Entry{EntryID: 1, Date: "2025-01-10"}
	suite.mockRepo.On("FindEntryByID", suite.ctx, int64(1)).Return(original, nil).Once()
	suite.mockRepo.On("FindReversalOf", suite.ctx, int64(1)).Return(&domain.Entry{EntryID: 2}, nil).Once()

	result := suite.service.Reverse(suite.ctx, 1, "user-1")

	assert.False(suite.T(), result.Success)
	assert.Equal(suite.T(), []domain.ErrorCode{domain.ErrCodeAlreadyReversed}, codes(result.Errors))
	suite.mockRepo.AssertNotCalled(suite.T(), "InsertEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestReverse_Success() {
	original := &domain.Entry{
		EntryID:      1,
		Date:         "2025-01-10",
		Protocol:     "2025/000001",
		Document:     "INV-1",
		DocumentDate: "2025-01-09",
		Party:        "ACME",
		Description:  "Sale",
		Lines:        []domain.EntryLine{debitLine("1000", "50"), creditLine("4000", "50")},
	}
	suite.mockRepo.On("FindEntryByID", suite.ctx, int64(1)).Return(original, nil).Once()
	// One lookup from Reverse itself, one from the validator.
	suite.mockRepo.On("FindReversalOf", suite.ctx, int64(1)).Return(nil, apperrors.ErrNotFound).Twice()
	suite.expectValidLookups()

	suite.mockRepo.On("NextProtocolNumber", suite.ctx, 2025).Return(int64(2), nil).Once()
	suite.mockRepo.On("InsertEntry", suite.ctx, mock.MatchedBy(func(e domain.Entry) bool {
		return e.ReversalOf != nil && *e.ReversalOf == 1 &&
			e.Description == "Reversal of entry 1" &&
			e.Date == "2025-01-10" && e.Document == "INV-1" && e.DocumentDate == "2025-01-09" && e.Party == "ACME"
	})).Return(int64(2), nil).Once()
	suite.mockRepo.On("InsertEntryLines", suite.ctx, int64(2), mock.MatchedBy(func(lines []domain.EntryLine) bool {
		return lines[0].AccountCode == "1000" && lines[0].Credit.Equal(dec("50")) && lines[0].Debit.IsZero() &&
			lines[1].AccountCode == "4000" && lines[1].Debit.Equal(dec("50")) && lines[1].Credit.IsZero()
	})).Return(nil).Once()
	suite.mockRepo.On("InsertAuditLog", suite.ctx, mock.Anything).Return(nil).Once()

	result := suite.service.Reverse(suite.ctx, 1, "user-2")

	require.True(suite.T(), result.Success, result.Errors)
	assert.Equal(suite.T(), int64(2), *result.EntryID)
	assert.Equal(suite.T(), "2025/000002", result.Protocol)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestReverse_ClosedPeriodReturnsValidationErrors() {
	original := &domain.Entry{
		EntryID: 1,
		Date:    "2025-01-10",
		Lines:   []domain.EntryLine{debitLine("1000", "50"), creditLine("4000", "50")},
	}
	start, end := domain.MonthBounds(2025, 1)
	suite.mockRepo.On("FindEntryByID", suite.ctx, int64(1)).Return(original, nil).Once()
	suite.mockRepo.On("FindReversalOf", suite.ctx, int64(1)).Return(nil, apperrors.ErrNotFound).Twice()
	suite.mockRepo.On("FindExistingAccountCodes", suite.ctx, mock.Anything).
		Return(map[string]bool{"1000": true, "4000": true}, nil).Once()
	suite.mockRepo.On("FindClosedPeriodCovering", suite.ctx, mock.Anything).
		Return(&domain.Period{Year: 2025, Month: ptr(1), StartDate: start, EndDate: end, Status: domain.PeriodClosed}, nil).Once()

	result := suite.service.Reverse(suite.ctx, 1, "user-1")

	assert.False(suite.T(), result.Success)
	assert.Equal(suite.T(), []domain.ErrorCode{domain.ErrCodePeriodClosed}, codes(result.Errors))
	suite.mockRepo.AssertNotCalled(suite.T(), "NextProtocolNumber", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestReverse_LoadFailure() {
	suite.mockRepo.On("FindEntryByID", suite.ctx, int64(1)).Return(nil, errors.New("connection refused")).Once()

	result := suite.service.Reverse(suite.ctx, 1, "user-1")

	assert.Equal(suite.T(), []domain.ErrorCode{domain.ErrCodeDBError}, codes(result.Errors))
	assert.Equal(suite.T(), 1, suite.txManager.rollbacks)
}

func (suite *LedgerServiceTestSuite) TestAccountBalance() {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	suite.mockRepo.On("SumAccountLines", suite.ctx, "1000", from, to).Return(dec("150.00"), dec("40.50"), nil).Once()

	balance, err := suite.service.AccountBalance(suite.ctx, "1000", from, to)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), dec("150").Equal(balance.TotalDebit))
	assert.True(suite.T(), dec("40.5").Equal(balance.TotalCredit))
	assert.True(suite.T(), dec("109.5").Equal(balance.Balance))
}

func (suite *LedgerServiceTestSuite) TestAccountBalance_NoRows() {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.mockRepo.On("SumAccountLines", suite.ctx, "1000", from, from).Return(decimal.Zero, decimal.Zero, nil).Once()

	balance, err := suite.service.AccountBalance(suite.ctx, "1000", from, from)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), balance.Balance.IsZero())
}

func (suite *LedgerServiceTestSuite) TestAccountBalance_InvertedRange() {
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := suite.service.AccountBalance(suite.ctx, "1000", from, to)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SumAccountLines", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAccountLedger_RunningBalance() {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	suite.mockRepo.On("ListAccountLines", suite.ctx, "1000", from, to).Return([]domain.LedgerRow{
		{EntryID: 1, Debit: dec("100"), Credit: decimal.Zero},
		{EntryID: 2, Debit: decimal.Zero, Credit: dec("25")},
		{EntryID: 3, Debit: dec("10"), Credit: decimal.Zero},
	}, nil).Once()

	rows, err := suite.service.AccountLedger(suite.ctx, "1000", from, to)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), rows, 3)
	assert.True(suite.T(), dec("100").Equal(rows[0].RunningBalance))
	assert.True(suite.T(), dec("75").Equal(rows[1].RunningBalance))
	assert.True(suite.T(), dec("85").Equal(rows[2].RunningBalance))
}

func (suite *LedgerServiceTestSuite) TestGetEntry_NotFound() {
	suite.mockRepo.On("FindEntryByID", suite.ctx, int64(4)).Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.GetEntry(suite.ctx, 4)

	assert.Nil(suite.T(), entry)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
