package mapping

import (
	"database/sql"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/models"
)

// ToModelPeriod converts a domain Period to a model Period
func ToModelPeriod(d domain.Period) models.Period {
	return models.Period{
		PeriodID:  d.PeriodID,
		Year:      d.Year,
		Month:     ToNullMonth(d.Month),
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
		Status:    string(d.Status),
	}
}

// ToDomainPeriod converts a model Period to a domain Period
func ToDomainPeriod(m models.Period) domain.Period {
	return domain.Period{
		PeriodID:  m.PeriodID,
		Year:      m.Year,
		Month:     fromNullMonth(m.Month),
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Status:    domain.PeriodStatus(m.Status),
	}
}

// ToDomainPeriodSlice converts a slice of model Periods to domain Periods
func ToDomainPeriodSlice(ms []models.Period) []domain.Period {
	ds := make([]domain.Period, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPeriod(m)
	}
	return ds
}

// ToModelPeriodLock converts a domain PeriodLock to a model PeriodLock
func ToModelPeriodLock(d domain.PeriodLock) models.PeriodLock {
	return models.PeriodLock{
		Year:     d.Year,
		Month:    ToNullMonth(d.Month),
		LockedAt: d.LockedAt,
		LockedBy: d.LockedBy,
	}
}

// ToDomainPeriodLockSlice converts a slice of model locks to domain locks
func ToDomainPeriodLockSlice(ms []models.PeriodLock) []domain.PeriodLock {
	ds := make([]domain.PeriodLock, len(ms))
	for i, m := range ms {
		ds[i] = domain.PeriodLock{
			Year:     m.Year,
			Month:    fromNullMonth(m.Month),
			LockedAt: m.LockedAt,
			LockedBy: m.LockedBy,
		}
	}
	return ds
}

// ToModelClosingEntry converts a domain ClosingEntry to a model ClosingEntry
func ToModelClosingEntry(d domain.ClosingEntry) models.ClosingEntry {
	return models.ClosingEntry{
		ClosingEntryID: d.ClosingEntryID,
		PeriodID:       d.PeriodID,
		EntryID:        toNullInt64(d.EntryID),
		Type:           string(d.Type),
		CreatedAt:      d.CreatedAt,
	}
}

// ToNullMonth converts an optional month to its nullable column form.
func ToNullMonth(month *int) sql.NullInt32 {
	if month == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*month), Valid: true}
}

func fromNullMonth(n sql.NullInt32) *int {
	if !n.Valid {
		return nil
	}
	m := int(n.Int32)
	return &m
}
