package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/SscSPs/ledger_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxPeriodRepository struct {
	BaseRepository
}

// Ensure PgxPeriodRepository implements portsrepo.PeriodRepositoryFacade
var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

const periodColumns = `period_id, year, month, start_date, end_date, status`

func periodLabel(year int, month *int) string {
	if month == nil {
		return fmt.Sprintf("period %d", year)
	}
	return fmt.Sprintf("period %d-%02d", year, *month)
}

func (r *PgxPeriodRepository) queryPeriod(ctx context.Context, op string, query string, args ...any) (*domain.Period, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, "failed to query "+op)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Period])
	if err != nil {
		return nil, mapPgError(err, op)
	}
	period := mapping.ToDomainPeriod(m)
	return &period, nil
}

// FindClosedPeriodCovering returns a closed period containing date, annual periods first.
func (r *PgxPeriodRepository) FindClosedPeriodCovering(ctx context.Context, date time.Time) (*domain.Period, error) {
	query := `
		SELECT ` + periodColumns + `
		FROM periods
		WHERE status = 'closed' AND $1::date BETWEEN start_date AND end_date
		ORDER BY month NULLS FIRST
		LIMIT 1;
	`
	return r.queryPeriod(ctx, "closed period covering "+domain.FormatDate(date), query, date)
}

// FindPeriod retrieves the period keyed by (year, month).
func (r *PgxPeriodRepository) FindPeriod(ctx context.Context, year int, month *int) (*domain.Period, error) {
	query := `SELECT ` + periodColumns + ` FROM periods WHERE year = $1 AND month IS NOT DISTINCT FROM $2::int`
	return r.queryPeriod(ctx, periodLabel(year, month), query, year, mapping.ToNullMonth(month))
}

// CountClosedMonths counts the closed monthly periods of year.
func (r *PgxPeriodRepository) CountClosedMonths(ctx context.Context, year int) (int, error) {
	query := `SELECT COUNT(*) FROM periods WHERE year = $1 AND month BETWEEN 1 AND 12 AND status = 'closed'`
	var count int
	if err := r.db.QueryRow(ctx, query, year).Scan(&count); err != nil {
		return 0, mapPgError(err, fmt.Sprintf("failed to count closed months of %d", year))
	}
	return count, nil
}

// ListPeriodsByYear lists the periods of year, annual first then by month.
func (r *PgxPeriodRepository) ListPeriodsByYear(ctx context.Context, year int) ([]domain.Period, error) {
	rows, err := r.db.Query(ctx, `SELECT `+periodColumns+` FROM periods WHERE year = $1 ORDER BY month NULLS FIRST, period_id`, year)
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to list periods of %d", year))
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Period])
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to scan periods of %d", year))
	}
	return mapping.ToDomainPeriodSlice(ms), nil
}

// ListLocksByYear lists the locks of year, annual first then by month.
func (r *PgxPeriodRepository) ListLocksByYear(ctx context.Context, year int) ([]domain.PeriodLock, error) {
	rows, err := r.db.Query(ctx, `
		SELECT lock_id, year, month, locked_at, locked_by
		FROM period_locks
		WHERE year = $1
		ORDER BY month NULLS FIRST`, year)
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to list locks of %d", year))
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PeriodLock])
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to scan locks of %d", year))
	}
	return mapping.ToDomainPeriodLockSlice(ms), nil
}

// UpsertMonthPeriod registers the month with its calendar bounds or updates its status.
func (r *PgxPeriodRepository) UpsertMonthPeriod(ctx context.Context, year int, month int, status domain.PeriodStatus) (*domain.Period, error) {
	start, end := domain.MonthBounds(year, month)
	query := `
		INSERT INTO periods (year, month, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (year, month) DO UPDATE
		SET start_date = EXCLUDED.start_date, end_date = EXCLUDED.end_date, status = EXCLUDED.status
		RETURNING ` + periodColumns + `;
	`
	return r.queryPeriod(ctx, periodLabel(year, &month), query, year, month, start, end, string(status))
}

// InsertPeriod creates a period. A second period with the same (year, month) yields ErrDuplicate.
func (r *PgxPeriodRepository) InsertPeriod(ctx context.Context, period domain.Period) (*domain.Period, error) {
	m := mapping.ToModelPeriod(period)
	query := `
		INSERT INTO periods (year, month, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + periodColumns + `;
	`
	return r.queryPeriod(ctx, periodLabel(period.Year, period.Month), query, m.Year, m.Month, m.StartDate, m.EndDate, m.Status)
}

// UpdatePeriodStatus sets the status of a period.
func (r *PgxPeriodRepository) UpdatePeriodStatus(ctx context.Context, periodID int64, status domain.PeriodStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE periods SET status = $2 WHERE period_id = $1`, periodID, string(status))
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to update period %d", periodID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("period %d: %w", periodID, apperrors.ErrNotFound)
	}
	return nil
}

// InsertLockIfAbsent records a lock unless (year, month) is already locked.
func (r *PgxPeriodRepository) InsertLockIfAbsent(ctx context.Context, lock domain.PeriodLock) error {
	m := mapping.ToModelPeriodLock(lock)
	query := `
		INSERT INTO period_locks (year, month, locked_at, locked_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (year, month) DO NOTHING;
	`
	if _, err := r.db.Exec(ctx, query, m.Year, m.Month, m.LockedAt, m.LockedBy); err != nil {
		return mapPgError(err, "failed to lock "+periodLabel(lock.Year, lock.Month))
	}
	return nil
}

// DeleteLock removes the lock of (year, month) if present.
func (r *PgxPeriodRepository) DeleteLock(ctx context.Context, year int, month *int) error {
	query := `DELETE FROM period_locks WHERE year = $1 AND month IS NOT DISTINCT FROM $2::int`
	if _, err := r.db.Exec(ctx, query, year, mapping.ToNullMonth(month)); err != nil {
		return mapPgError(err, "failed to unlock "+periodLabel(year, month))
	}
	return nil
}

// InsertClosingEntry appends a period lifecycle event.
func (r *PgxPeriodRepository) InsertClosingEntry(ctx context.Context, entry domain.ClosingEntry) error {
	m := mapping.ToModelClosingEntry(entry)
	query := `
		INSERT INTO closing_entries (period_id, entry_id, type, created_at)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := r.db.Exec(ctx, query, m.PeriodID, m.EntryID, m.Type, m.CreatedAt); err != nil {
		return mapPgError(err, fmt.Sprintf("failed to record %s event for period %d", m.Type, m.PeriodID))
	}
	return nil
}
