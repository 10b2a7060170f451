package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// PeriodReader defines read operations for accounting periods
type PeriodReader interface {
	// FindClosedPeriodCovering returns a closed period whose range contains date.
	// Annual periods are preferred over monthly ones. ErrNotFound if none.
	FindClosedPeriodCovering(ctx context.Context, date time.Time) (*domain.Period, error)

	// FindPeriod retrieves the period keyed by year and month (nil month = annual).
	FindPeriod(ctx context.Context, year int, month *int) (*domain.Period, error)

	// CountClosedMonths counts the closed monthly periods of year.
	CountClosedMonths(ctx context.Context, year int) (int, error)

	// ListPeriodsByYear lists the periods of year, annual first then by month.
	ListPeriodsByYear(ctx context.Context, year int) ([]domain.Period, error)

	// ListLocksByYear lists the period locks of year.
	ListLocksByYear(ctx context.Context, year int) ([]domain.PeriodLock, error)
}

// PeriodWriter defines write operations for accounting periods
type PeriodWriter interface {
	// UpsertMonthPeriod creates or updates the monthly period with calendar bounds and the given status.
	UpsertMonthPeriod(ctx context.Context, year int, month int, status domain.PeriodStatus) (*domain.Period, error)

	// InsertPeriod creates a period. ErrDuplicate if (year, month) already exists.
	InsertPeriod(ctx context.Context, period domain.Period) (*domain.Period, error)

	// UpdatePeriodStatus sets the status of a period.
	UpdatePeriodStatus(ctx context.Context, periodID int64, status domain.PeriodStatus) error

	// InsertLockIfAbsent records a lock unless one already exists for (year, month).
	InsertLockIfAbsent(ctx context.Context, lock domain.PeriodLock) error

	// DeleteLock removes the lock of (year, month) if present.
	DeleteLock(ctx context.Context, year int, month *int) error

	// InsertClosingEntry appends a period lifecycle event.
	InsertClosingEntry(ctx context.Context, entry domain.ClosingEntry) error
}

// PeriodRepositoryFacade combines all period-related repository interfaces
type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodWriter
}
