package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccount(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) LoadChart(ctx context.Context, accounts []domain.Account, userID string) error {
	args := m.Called(ctx, accounts, userID)
	return args.Error(0)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, code string, userID string) error {
	args := m.Called(ctx, code, userID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ValidateEntry(ctx context.Context, entry domain.Entry) []domain.LedgerError {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.LedgerError)
}

func (m *MockLedgerService) PostEntry(ctx context.Context, entry domain.Entry, userID string) domain.PostResult {
	args := m.Called(ctx, entry, userID)
	return args.Get(0).(domain.PostResult)
}

func (m *MockLedgerService) Reverse(ctx context.Context, entryID int64, userID string) domain.PostResult {
	args := m.Called(ctx, entryID, userID)
	return args.Get(0).(domain.PostResult)
}

func (m *MockLedgerService) GetEntry(ctx context.Context, entryID int64) (*domain.Entry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockLedgerService) AccountBalance(ctx context.Context, code string, from, to time.Time) (*domain.AccountBalance, error) {
	args := m.Called(ctx, code, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountBalance), args.Error(1)
}

func (m *MockLedgerService) AccountLedger(ctx context.Context, code string, from, to time.Time) ([]domain.LedgerRow, error) {
	args := m.Called(ctx, code, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerRow), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock PeriodService ---
type MockPeriodService struct {
	mock.Mock
}

func (m *MockPeriodService) periodResult(args mock.Arguments) (*domain.Period, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Period), args.Error(1)
}

func (m *MockPeriodService) CloseMonth(ctx context.Context, year int, month int, userID string) (*domain.Period, error) {
	return m.periodResult(m.Called(ctx, year, month, userID))
}

func (m *MockPeriodService) ReopenMonth(ctx context.Context, year int, month int, userID string) (*domain.Period, error) {
	return m.periodResult(m.Called(ctx, year, month, userID))
}

func (m *MockPeriodService) CloseYear(ctx context.Context, year int, userID string) (*domain.Period, error) {
	return m.periodResult(m.Called(ctx, year, userID))
}

func (m *MockPeriodService) CreatePeriod(ctx context.Context, year int, start, end time.Time, status domain.PeriodStatus, userID string) (*domain.Period, error) {
	return m.periodResult(m.Called(ctx, year, start, end, status, userID))
}

func (m *MockPeriodService) ListPeriods(ctx context.Context, year int) ([]domain.Period, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Period), args.Error(1)
}

func (m *MockPeriodService) ListLocks(ctx context.Context, year int) ([]domain.PeriodLock, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PeriodLock), args.Error(1)
}

var _ portssvc.PeriodSvcFacade = (*MockPeriodService)(nil)
