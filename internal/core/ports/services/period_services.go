package services

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// PeriodWriterSvc defines the period lifecycle transitions
type PeriodWriterSvc interface {
	// CloseMonth closes a month, registering it if needed. Idempotent.
	CloseMonth(ctx context.Context, year int, month int, userID string) (*domain.Period, error)

	// ReopenMonth reopens a month and records a reopen event.
	ReopenMonth(ctx context.Context, year int, month int, userID string) (*domain.Period, error)

	// CloseYear closes the annual period once all twelve months are closed.
	CloseYear(ctx context.Context, year int, userID string) (*domain.Period, error)

	// CreatePeriod registers an explicit annual-style period.
	CreatePeriod(ctx context.Context, year int, start, end time.Time, status domain.PeriodStatus, userID string) (*domain.Period, error)
}

// PeriodReaderSvc defines read operations for periods
type PeriodReaderSvc interface {
	// ListPeriods lists the periods of year.
	ListPeriods(ctx context.Context, year int) ([]domain.Period, error)

	// ListLocks lists the period locks of year.
	ListLocks(ctx context.Context, year int) ([]domain.PeriodLock, error)
}

// PeriodSvcFacade combines all period-related service interfaces
type PeriodSvcFacade interface {
	PeriodWriterSvc
	PeriodReaderSvc
}
