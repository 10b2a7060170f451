package services_test

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock Repository ---
type MockRepository struct {
	mock.Mock
}

// Ensure MockRepository implements portsrepo.RepositoryFacade
var _ portsrepo.RepositoryFacade = (*MockRepository)(nil)

func (m *MockRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockRepository) FindExistingAccountCodes(ctx context.Context, codes []string) (map[string]bool, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockRepository) CountChildAccounts(ctx context.Context, code string) (int, error) {
	args := m.Called(ctx, code)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockRepository) DeleteAccount(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.Entry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockRepository) FindEntryByClientReference(ctx context.Context, clientReferenceID string) (*domain.Entry, error) {
	args := m.Called(ctx, clientReferenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockRepository) FindReversalOf(ctx context.Context, entryID int64) (*domain.Entry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockRepository) NextProtocolNumber(ctx context.Context, year int) (int64, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) InsertEntry(ctx context.Context, entry domain.Entry) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) InsertEntryLines(ctx context.Context, entryID int64, lines []domain.EntryLine) error {
	args := m.Called(ctx, entryID, lines)
	return args.Error(0)
}

func (m *MockRepository) InsertAuditLog(ctx context.Context, log domain.AuditLogEntry) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockRepository) FindClosedPeriodCovering(ctx context.Context, date time.Time) (*domain.Period, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Period), args.Error(1)
}

func (m *MockRepository) FindPeriod(ctx context.Context, year int, month *int) (*domain.Period, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Period), args.Error(1)
}

func (m *MockRepository) CountClosedMonths(ctx context.Context, year int) (int, error) {
	args := m.Called(ctx, year)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) ListPeriodsByYear(ctx context.Context, year int) ([]domain.Period, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Period), args.Error(1)
}

func (m *MockRepository) ListLocksByYear(ctx context.Context, year int) ([]domain.PeriodLock, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PeriodLock), args.Error(1)
}

func (m *MockRepository) UpsertMonthPeriod(ctx context.Context, year int, month int, status domain.PeriodStatus) (*domain.Period, error) {
	args := m.Called(ctx, year, month, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Period), args.Error(1)
}

func (m *MockRepository) InsertPeriod(ctx context.Context, period domain.Period) (*domain.Period, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Period), args.Error(1)
}

func (m *MockRepository) UpdatePeriodStatus(ctx context.Context, periodID int64, status domain.PeriodStatus) error {
	args := m.Called(ctx, periodID, status)
	return args.Error(0)
}

func (m *MockRepository) InsertLockIfAbsent(ctx context.Context, lock domain.PeriodLock) error {
	args := m.Called(ctx, lock)
	return args.Error(0)
}

func (m *MockRepository) DeleteLock(ctx context.Context, year int, month *int) error {
	args := m.Called(ctx, year, month)
	return args.Error(0)
}

func (m *MockRepository) InsertClosingEntry(ctx context.Context, entry domain.ClosingEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRepository) SumAccountLines(ctx context.Context, code string, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, code, from, to)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockRepository) ListAccountLines(ctx context.Context, code string, from, to time.Time) ([]domain.LedgerRow, error) {
	args := m.Called(ctx, code, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerRow), args.Error(1)
}

// --- Fake TransactionManager ---

// fakeTxManager runs the unit of work directly against the mock and counts outcomes.
type fakeTxManager struct {
	repos     portsrepo.RepositoryFacade
	commits   int
	rollbacks int
}

var _ portsrepo.TransactionManager = (*fakeTxManager)(nil)

func (f *fakeTxManager) WithinWriteTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.RepositoryFacade) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			f.rollbacks++
			err = fmt.Errorf("panic in write transaction: %v", r)
		}
	}()
	if err := fn(ctx, f.repos); err != nil {
		f.rollbacks++
		return err
	}
	f.commits++
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func debitLine(code, amount string) domain.EntryLine {
	return domain.EntryLine{AccountCode: code, Debit: dec(amount), Credit: decimal.Zero}
}

func creditLine(code, amount string) domain.EntryLine {
	return domain.EntryLine{AccountCode: code, Debit: decimal.Zero, Credit: dec(amount)}
}

func ptr[T any](v T) *T {
	return &v
}
