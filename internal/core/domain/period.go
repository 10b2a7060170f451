package domain

import (
	"errors"
	"time"
)

// PeriodStatus is the lifecycle state of an accounting period.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "open"
	PeriodClosed PeriodStatus = "closed"
)

// IsValid reports whether the status is open or closed.
func (s PeriodStatus) IsValid() bool {
	return s == PeriodOpen || s == PeriodClosed
}

// Period is a month (Month set) or an annual/custom range (Month nil).
type Period struct {
	PeriodID  int64        `json:"periodID"`
	Year      int          `json:"year"`
	Month     *int         `json:"month,omitempty"`
	StartDate time.Time    `json:"startDate"`
	EndDate   time.Time    `json:"endDate"`
	Status    PeriodStatus `json:"status"`
}

// IsAnnual reports whether the period has no month component.
func (p Period) IsAnnual() bool {
	return p.Month == nil
}

// Contains reports whether date lies between StartDate and EndDate inclusive.
func (p Period) Contains(date time.Time) bool {
	return !date.Before(p.StartDate) && !date.After(p.EndDate)
}

// MonthBounds returns the first and last calendar day of year/month.
func MonthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// YearBounds returns January 1st and December 31st of year.
func YearBounds(year int) (time.Time, time.Time) {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// PeriodLock records when and by whom a period was closed.
type PeriodLock struct {
	Year     int       `json:"year"`
	Month    *int      `json:"month,omitempty"`
	LockedAt time.Time `json:"lockedAt"`
	LockedBy string    `json:"lockedBy"`
}

// ClosingEntryType is the kind of period lifecycle event.
type ClosingEntryType string

const (
	ClosingReopen ClosingEntryType = "reopen"
	ClosingYearly ClosingEntryType = "yearly"
)

// ClosingEntry is an append-only audit row of a period lifecycle event.
type ClosingEntry struct {
	ClosingEntryID int64            `json:"closingEntryID"`
	PeriodID       int64            `json:"periodID"`
	EntryID        *int64           `json:"entryID,omitempty"`
	Type           ClosingEntryType `json:"type"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// ErrYearNotReady is returned when a year is closed while some of its months are still open or missing.
var ErrYearNotReady = errors.New("year cannot be closed: months still open or missing")
