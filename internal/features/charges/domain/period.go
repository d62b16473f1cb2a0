package domain

import "time"

// BillingPeriod returns the (week, year) tag of a charge dated at, evaluated in loc.
// Week 1 is Jan 1 through Jan 7 regardless of weekday; this is not the ISO week.
func BillingPeriod(at time.Time, loc *time.Location) (week, year int) {
	if loc == nil {
		loc = time.UTC
	}
	local := at.In(loc)
	startOfYear := time.Date(local.Year(), time.January, 1, 0, 0, 0, 0, loc)

	days := int(local.Sub(startOfYear) / (24 * time.Hour))
	week = (days + 1 + 6) / 7

	return week, local.Year()
}
