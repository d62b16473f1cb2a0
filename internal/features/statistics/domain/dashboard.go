package domain

import (
	"time"

	chargedomain "courier-billing/internal/features/charges/domain"
)

// Counts are charge totals by status.
type Counts struct {
	Total   int `json:"totalCobros"`
	Pending int `json:"cobrosPendientes"`
	Paid    int `json:"cobrosPagados"`
}

// Summary is the headline block of the dashboard.
type Summary struct {
	Counts
	// MonthRevenue sums the totals of paid charges dated in the current month.
	MonthRevenue float64 `json:"ingresosMes"`
}

// ServiceBucket aggregates every charge of one service type.
type ServiceBucket struct {
	ServiceType chargedomain.ServiceType `json:"_id"`
	Count       int                      `json:"cantidad"`
	Total       float64                  `json:"total"`
}

// Dashboard is the statistics payload. Service types without charges are absent.
type Dashboard struct {
	Summary   Summary         `json:"resumen"`
	ByService []ServiceBucket `json:"servicios"`
}

// MonthWindow returns the month containing now in loc as [from, before).
func MonthWindow(now time.Time, loc *time.Location) (from, before time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	from = time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0)
}
