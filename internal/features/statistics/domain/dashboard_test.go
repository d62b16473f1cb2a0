package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthWindow(t *testing.T) {
	tegucigalpa := time.FixedZone("CST", -6*60*60)

	tests := []struct {
		name       string
		now        time.Time
		loc        *time.Location
		wantFrom   time.Time
		wantBefore time.Time
	}{
		{
			"Mid month",
			time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC),
			time.UTC,
			time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"December rolls the year",
			time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC),
			nil,
			time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"UTC instant still in previous local month",
			time.Date(2025, time.July, 1, 3, 0, 0, 0, time.UTC),
			tegucigalpa,
			time.Date(2025, time.June, 1, 0, 0, 0, 0, tegucigalpa),
			time.Date(2025, time.July, 1, 0, 0, 0, 0, tegucigalpa),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, before := MonthWindow(tt.now, tt.loc)
			assert.True(t, tt.wantFrom.Equal(from), "from = %s", from)
			assert.True(t, tt.wantBefore.Equal(before), "before = %s", before)
		})
	}
}

func TestDashboard_JSON(t *testing.T) {
	d := Dashboard{
		Summary: Summary{Counts: Counts{Total: 6, Pending: 2, Paid: 3}, MonthRevenue: 600},
		ByService: []ServiceBucket{
			{ServiceType: "maritimo", Count: 4, Total: 1400},
		},
	}

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"resumen": {"totalCobros": 6, "cobrosPendientes": 2, "cobrosPagados": 3, "ingresosMes": 600},
		"servicios": [{"_id": "maritimo", "cantidad": 4, "total": 1400}]
	}`, string(raw))
}
