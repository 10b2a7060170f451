package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
)

type periodService struct {
	BaseService
	repos     portsrepo.PeriodReader
	txManager portsrepo.TransactionManager
}

// NewPeriodService creates the service that opens, closes and lists accounting periods.
func NewPeriodService(provider portsrepo.RepositoryProvider) portssvc.PeriodSvcFacade {
	return &periodService{
		repos:     provider.Repos,
		txManager: provider.TxManager,
	}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

func validateYear(year int) error {
	if year < 1 || year > 9999 {
		return apperrors.NewValidationError("year %d out of range", year)
	}
	return nil
}

func validateYearMonth(year, month int) error {
	if err := validateYear(year); err != nil {
		return err
	}
	if month < 1 || month > 12 {
		return apperrors.NewValidationError("month %d out of range", month)
	}
	return nil
}

func (s *periodService) CloseMonth(ctx context.Context, year int, month int, userID string) (*domain.Period, error) {
	if err := validateYearMonth(year, month); err != nil {
		return nil, err
	}

	var period *domain.Period
	err := s.txManager.WithinWriteTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		var err error
		period, err = repos.UpsertMonthPeriod(ctx, year, month, domain.PeriodClosed)
		if err != nil {
			return fmt.Errorf("failed to close period %d-%02d: %w", year, month, err)
		}
		return repos.InsertLockIfAbsent(ctx, domain.PeriodLock{
			Year:     year,
			Month:    &month,
			LockedAt: s.Now(),
			LockedBy: userID,
		})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to close month", slog.Int("year", year), slog.Int("month", month))
		return nil, err
	}

	s.LogInfo(ctx, "Month closed", slog.Int("year", year), slog.Int("month", month), slog.String("user_id", userID))
	return period, nil
}

// ReopenMonth reopens a month. A month that was never registered has nothing
// to reopen; the call still succeeds and returns a nil period.
func (s *periodService) ReopenMonth(ctx context.Context, year int, month int, userID string) (*domain.Period, error) {
	if err := validateYearMonth(year, month); err != nil {
		return nil, err
	}

	var period *domain.Period
	err := s.txManager.WithinWriteTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		found, err := repos.FindPeriod(ctx, year, &month)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if err := repos.DeleteLock(ctx, year, &month); err != nil {
			return fmt.Errorf("failed to remove lock of %d-%02d: %w", year, month, err)
		}
		if found == nil {
			return nil
		}

		if err := repos.UpdatePeriodStatus(ctx, found.PeriodID, domain.PeriodOpen); err != nil {
			return fmt.Errorf("failed to reopen period %d-%02d: %w", year, month, err)
		}
		found.Status = domain.PeriodOpen
		period = found

		return repos.InsertClosingEntry(ctx, domain.ClosingEntry{
			PeriodID:  found.PeriodID,
			Type:      domain.ClosingReopen,
			CreatedAt: s.Now(),
		})
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to reopen month", slog.Int("year", year), slog.Int("month", month))
		return nil, err
	}

	s.LogInfo(ctx, "Month reopened", slog.Int("year", year), slog.Int("month", month), slog.String("user_id", userID))
	return period, nil
}

func (s *periodService) CloseYear(ctx context.Context, year int, userID string) (*domain.Period, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}

	var period *domain.Period
	err := s.txManager.WithinWriteTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		closed, err := repos.CountClosedMonths(ctx, year)
		if err != nil {
			return fmt.Errorf("failed to count closed months of %d: %w", year, err)
		}
		if closed < 12 {
			return fmt.Errorf("%w: %d of 12 months of %d are closed", domain.ErrYearNotReady, closed, year)
		}

		period, err = repos.FindPeriod(ctx, year, nil)
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			start, end := domain.YearBounds(year)
			period, err = repos.InsertPeriod(ctx, domain.Period{
				Year:      year,
				StartDate: start,
				EndDate:   end,
				Status:    domain.PeriodClosed,
			})
			if err != nil {
				return fmt.Errorf("failed to create annual period %d: %w", year, err)
			}
		case err != nil:
			return err
		default:
			if err := repos.UpdatePeriodStatus(ctx, period.PeriodID, domain.PeriodClosed); err != nil {
				return fmt.Errorf("failed to close annual period %d: %w", year, err)
			}
			period.Status = domain.PeriodClosed
		}

		now := s.Now()
		if err := repos.InsertLockIfAbsent(ctx, domain.PeriodLock{Year: year, LockedAt: now, LockedBy: userID}); err != nil {
			return fmt.Errorf("failed to lock year %d: %w", year, err)
		}
		return repos.InsertClosingEntry(ctx, domain.ClosingEntry{
			PeriodID:  period.PeriodID,
			Type:      domain.ClosingYearly,
			CreatedAt: now,
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrYearNotReady) {
			s.GetLogger(ctx).Warn("Year not ready to close", slog.Int("year", year), slog.String("reason", err.Error()))
		} else {
			s.LogError(ctx, err, "Failed to close year", slog.Int("year", year))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Year closed", slog.Int("year", year), slog.String("user_id", userID))
	return period, nil
}

func (s *periodService) CreatePeriod(ctx context.Context, year int, start, end time.Time, status domain.PeriodStatus, userID string) (*domain.Period, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, apperrors.NewValidationError("start date %s is after end date %s", domain.FormatDate(start), domain.FormatDate(end))
	}
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("invalid period status %q", status)
	}

	var period *domain.Period
	err := s.txManager.WithinWriteTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		var err error
		period, err = repos.InsertPeriod(ctx, domain.Period{
			Year:      year,
			StartDate: start,
			EndDate:   end,
			Status:    status,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to create period", slog.Int("year", year))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Period created", slog.Int("year", year), slog.String("status", string(status)), slog.String("user_id", userID))
	return period, nil
}

func (s *periodService) ListPeriods(ctx context.Context, year int) ([]domain.Period, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	return s.repos.ListPeriodsByYear(ctx, year)
}

func (s *periodService) ListLocks(ctx context.Context, year int) ([]domain.PeriodLock, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	return s.repos.ListLocksByYear(ctx, year)
}
