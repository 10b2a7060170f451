package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/stretchr/testify/mock"
)

func monthPeriod(year, month int, status domain.PeriodStatus) *domain.Period {
	start, end := domain.MonthBounds(year, month)
	return &domain.Period{PeriodID: int64(month), Year: year, Month: &month, StartDate: start, EndDate: end, Status: status}
}

func (suite *HandlerTestSuite) TestCloseMonth() {
	suite.periodSvc.On("CloseMonth", mock.Anything, 2024, 2, testUserID).
		Return(monthPeriod(2024, 2, domain.PeriodClosed), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/periods/2024/2/close", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.PeriodResponse
	suite.decode(w, &body)
	suite.Equal(domain.PeriodClosed, body.Status)
	suite.Equal("2024-02-29", body.EndDate)
}

func (suite *HandlerTestSuite) TestCloseMonth_InvalidMonth() {
	suite.periodSvc.On("CloseMonth", mock.Anything, 2024, 13, testUserID).
		Return(nil, apperrors.NewValidationError("month %d out of range 1..12", 13)).Once()

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/api/v1/periods/2024/13/close", nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/api/v1/periods/2024/feb/close", nil).Code)
}

func (suite *HandlerTestSuite) TestReopenMonth() {
	suite.periodSvc.On("ReopenMonth", mock.Anything, 2024, 3, testUserID).
		Return(monthPeriod(2024, 3, domain.PeriodOpen), nil).Once()
	suite.periodSvc.On("ReopenMonth", mock.Anything, 2024, 4, testUserID).Return(nil, nil).Once()

	suite.Equal(http.StatusOK, suite.do(http.MethodPost, "/api/v1/periods/2024/3/reopen", nil).Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodPost, "/api/v1/periods/2024/4/reopen", nil).Code)
}

func (suite *HandlerTestSuite) TestCloseYear_NotReady() {
	suite.periodSvc.On("CloseYear", mock.Anything, 2024, testUserID).
		Return(nil, fmt.Errorf("%w: %d of 12 months of %d are closed", domain.ErrYearNotReady, 11, 2024)).Once()

	w := suite.do(http.MethodPost, "/api/v1/periods/2024/close", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestCreatePeriod() {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	suite.periodSvc.On("CreatePeriod", mock.Anything, 2025, start, end, domain.PeriodOpen, testUserID).
		Return(&domain.Period{PeriodID: 1, Year: 2025, StartDate: start, EndDate: end, Status: domain.PeriodOpen}, nil).Once()
	suite.periodSvc.On("CreatePeriod", mock.Anything, 2025, start, end, domain.PeriodClosed, testUserID).
		Return(nil, fmt.Errorf("period 2025: %w", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/api/v1/periods", dto.CreatePeriodRequest{Year: 2025, StartDate: "2025-01-01", EndDate: "2025-12-31"})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/periods", dto.CreatePeriodRequest{Year: 2025, StartDate: "2025-01-01", EndDate: "2025-12-31", Status: "closed"})
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/periods", dto.CreatePeriodRequest{Year: 2025, StartDate: "01/01/2025", EndDate: "2025-12-31"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListPeriods() {
	month := 1
	suite.periodSvc.On("ListPeriods", mock.Anything, 2024).Return([]domain.Period{*monthPeriod(2024, 1, domain.PeriodClosed)}, nil).Once()
	suite.periodSvc.On("ListLocks", mock.Anything, 2024).Return([]domain.PeriodLock{
		{Year: 2024, Month: &month, LockedAt: time.Now().UTC(), LockedBy: testUserID},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/periods/2024", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListPeriodsResponse
	suite.decode(w, &body)
	suite.Len(body.Periods, 1)
	suite.Require().Len(body.Locks, 1)
	suite.Equal(testUserID, body.Locks[0].LockedBy)
}
