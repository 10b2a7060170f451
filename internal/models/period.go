package models

import (
	"database/sql"
	"time"
)

// Period is the database representation of an accounting period.
type Period struct {
	PeriodID  int64         `db:"period_id"`
	Year      int           `db:"year"`
	Month     sql.NullInt32 `db:"month"` // Null for annual periods
	StartDate time.Time     `db:"start_date"`
	EndDate   time.Time     `db:"end_date"`
	Status    string        `db:"status"`
}

// PeriodLock is the database representation of a period lock.
type PeriodLock struct {
	LockID   int64         `db:"lock_id"`
	Year     int           `db:"year"`
	Month    sql.NullInt32 `db:"month"`
	LockedAt time.Time     `db:"locked_at"`
	LockedBy string        `db:"locked_by"`
}

// ClosingEntry is the database representation of a period lifecycle event.
type ClosingEntry struct {
	ClosingEntryID int64         `db:"closing_entry_id"`
	PeriodID       int64         `db:"period_id"`
	EntryID        sql.NullInt64 `db:"entry_id"`
	Type           string        `db:"type"`
	CreatedAt      time.Time     `db:"created_at"`
}
