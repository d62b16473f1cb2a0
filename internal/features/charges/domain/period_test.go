package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillingPeriod(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		week int
		year int
	}{
		{"Jan 1 midnight", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 1, 2025},
		{"Jan 1 late", time.Date(2025, 1, 1, 23, 59, 59, 0, time.UTC), 1, 2025},
		{"Jan 7", time.Date(2025, 1, 7, 12, 0, 0, 0, time.UTC), 1, 2025},
		{"Jan 7 last second", time.Date(2025, 1, 7, 23, 59, 59, 0, time.UTC), 1, 2025},
		{"Jan 8", time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC), 2, 2025},
		{"Jan 14", time.Date(2024, 1, 14, 8, 0, 0, 0, time.UTC), 2, 2024},
		{"Jan 15", time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC), 3, 2024},
		{"Dec 31 leap year", time.Date(2024, 12, 31, 10, 0, 0, 0, time.UTC), 53, 2024},
		{"Dec 31 common year", time.Date(2025, 12, 31, 10, 0, 0, 0, time.UTC), 53, 2025},
		{"Dec 30 common year", time.Date(2025, 12, 30, 10, 0, 0, 0, time.UTC), 52, 2025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week, year := BillingPeriod(tt.at, time.UTC)
			assert.Equal(t, tt.week, week)
			assert.Equal(t, tt.year, year)
		})
	}
}

func TestBillingPeriod_Jan1AnyYear(t *testing.T) {
	for year := 2000; year <= 2040; year++ {
		week, y := BillingPeriod(time.Date(year, 1, 1, 9, 0, 0, 0, time.UTC), time.UTC)
		assert.Equal(t, 1, week, "year %d", year)
		assert.Equal(t, year, y)
	}
}

func TestBillingPeriod_UsesLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/Tegucigalpa")
	require.NoError(t, err)

	// 2025-01-01 03:00 UTC is still Dec 31 2024 in Honduras (UTC-6).
	at := time.Date(2025, 1, 1, 3, 0, 0, 0, time.UTC)

	week, year := BillingPeriod(at, loc)
	assert.Equal(t, 53, week)
	assert.Equal(t, 2024, year)

	week, year = BillingPeriod(at, time.UTC)
	assert.Equal(t, 1, week)
	assert.Equal(t, 2025, year)
}

func TestBillingPeriod_NilLocation(t *testing.T) {
	week, year := BillingPeriod(time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC), nil)
	assert.Equal(t, 2, week)
	assert.Equal(t, 2025, year)
}
