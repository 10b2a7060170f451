package dto

import (
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// CreatePeriodRequest defines the data needed to register an explicit period.
type CreatePeriodRequest struct {
	Year      int    `json:"year" binding:"required,min=1,max=9999"`
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02"`
	Status    string `json:"status" binding:"omitempty,oneof=open closed"` // Defaults to open
}

// PeriodResponse defines the data returned for a period.
type PeriodResponse struct {
	PeriodID  int64               `json:"periodID"`
	Year      int                 `json:"year"`
	Month     *int                `json:"month,omitempty"`
	StartDate string              `json:"startDate"`
	EndDate   string              `json:"endDate"`
	Status    domain.PeriodStatus `json:"status"`
}

// PeriodLockResponse defines the data returned for a period lock.
type PeriodLockResponse struct {
	Year     int       `json:"year"`
	Month    *int      `json:"month,omitempty"`
	LockedAt time.Time `json:"lockedAt"`
	LockedBy string    `json:"lockedBy"`
}

// ListPeriodsResponse lists the periods and locks of a year.
type ListPeriodsResponse struct {
	Year    int                  `json:"year"`
	Periods []PeriodResponse     `json:"periods"`
	Locks   []PeriodLockResponse `json:"locks"`
}

// ToPeriodResponse converts a domain.Period to PeriodResponse DTO
func ToPeriodResponse(p *domain.Period) PeriodResponse {
	return PeriodResponse{
		PeriodID:  p.PeriodID,
		Year:      p.Year,
		Month:     p.Month,
		StartDate: domain.FormatDate(p.StartDate),
		EndDate:   domain.FormatDate(p.EndDate),
		Status:    p.Status,
	}
}

// ToListPeriodsResponse converts the periods and locks of year to their DTO.
func ToListPeriodsResponse(year int, periods []domain.Period, locks []domain.PeriodLock) ListPeriodsResponse {
	res := ListPeriodsResponse{
		Year:    year,
		Periods: make([]PeriodResponse, len(periods)),
		Locks:   make([]PeriodLockResponse, len(locks)),
	}
	for i := range periods {
		res.Periods[i] = ToPeriodResponse(&periods[i])
	}
	for i, l := range locks {
		res.Locks[i] = PeriodLockResponse{Year: l.Year, Month: l.Month, LockedAt: l.LockedAt, LockedBy: l.LockedBy}
	}
	return res
}
