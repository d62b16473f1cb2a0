package domain

import (
	"testing"
	"time"

	chargedomain "courier-billing/internal/features/charges/domain"
	customerdomain "courier-billing/internal/features/customers/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var company = Company{Name: "VBOX", Tagline: "Servicio de Courier y Casillero Virtual", City: "San Pedro Sula, Honduras"}

func sampleCharge() *chargedomain.Charge {
	return &chargedomain.Charge{
		ID:             "5f0c1e2a-9b7d-4c3e-8f21-0a1b2c3d4e5f",
		CustomerID:     "c-1",
		CustomerName:   "Ana López",
		ServiceType:    chargedomain.ServiceAirStandard,
		Trackings:      []string{"1Z999", "1Z998"},
		Description:    "Laptop",
		Weight:         6,
		BillableWeight: 6,
		AppliedRate:    5.5,
		ShippingCost:   808.5,
		Discount:       0,
		Total:          808.5,
		Status:         chargedomain.StatusPending,
		ChargedAt:      time.Date(2025, time.March, 5, 16, 0, 0, 0, time.UTC),
		ExchangeRate:   24.5,
	}
}

func sampleCustomer() *customerdomain.Customer {
	return &customerdomain.Customer{
		ID:         "c-1",
		LockerCode: "A1",
		Name:       "Ana López",
		Email:      "a@b.com",
		Phone:      "9999-0000",
		Identity:   "0501-1990-00001",
		Address:    "Col. Trejo",
	}
}

func TestNewView(t *testing.T) {
	now := time.Date(2025, time.March, 6, 9, 30, 15, 0, time.UTC)
	view := NewView(sampleCharge(), sampleCustomer(), company, chargedomain.DefaultTariff, time.UTC, now)

	assert.Equal(t, "2C3D4E5F", view.Number)
	assert.Equal(t, "5/3/2025", view.Date)
	assert.Equal(t, "PENDIENTE", view.Status)
	assert.Equal(t, "AEREO STANDARD", view.ServiceLabel)
	assert.Equal(t, "Aéreo Standard 6.00 lb × $5.50", view.RateDescription)
	assert.Equal(t, "6.00 lb", view.BillableWeight)
	assert.Equal(t, "L. 24.50", view.ExchangeRate)
	assert.Equal(t, []string{"1Z999", "1Z998"}, view.Trackings)
	assert.Equal(t, "L. 808.50", view.Total)
	assert.Equal(t, "6/3/2025, 09:30:15", view.GeneratedAt)
	assert.Equal(t, "Factura-VBOX-Ana López-5f0c1e2a-9b7d-4c3e-8f21-0a1b2c3d4e5f.pdf", view.FileName)
	assert.Equal(t, "A1", view.Customer.LockerCode)
	assert.Equal(t, company, view.Company)

	require.Len(t, view.Lines, 2)
	assert.Equal(t, LineShipping, view.Lines[0].Kind)
	assert.Equal(t, "L. 808.50", view.Lines[0].Amount)
	assert.Equal(t, LineTotal, view.Lines[1].Kind)
	assert.False(t, view.HasDiscount())
}

func TestNewView_Discount(t *testing.T) {
	charge := sampleCharge()
	charge.ServiceType = chargedomain.ServiceMaritime
	charge.BillableWeight = 3
	charge.ShippingCost = 350
	charge.Discount = 10
	charge.Total = 315

	view := NewView(charge, sampleCustomer(), company, chargedomain.DefaultTariff, time.UTC, time.Now())

	require.Len(t, view.Lines, 3)
	discount := view.Lines[1]
	assert.Equal(t, LineDiscount, discount.Kind)
	assert.Equal(t, "10% aplicado", discount.Details)
	assert.Equal(t, "- L. 35.00", discount.Amount)
	assert.Equal(t, "Marítimo 0-4 lb: L. 350.00", view.RateDescription)
	assert.Equal(t, "L. 315.00", view.Total)
	assert.True(t, view.HasDiscount())
}

func TestNewView_CustomRateAndTimeZone(t *testing.T) {
	charge := sampleCharge()
	charge.ServiceType = chargedomain.ServiceOther
	charge.ChargedAt = time.Date(2025, time.March, 1, 3, 0, 0, 0, time.UTC)

	loc := time.FixedZone("CST", -6*60*60)
	view := NewView(charge, sampleCustomer(), company, chargedomain.DefaultTariff, loc, time.Now())

	assert.Equal(t, "Tarifa personalizada", view.RateDescription)
	assert.Equal(t, "OTRO", view.ServiceLabel)
	assert.Equal(t, "28/2/2025", view.Date)
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "ABCDEF12", Number("64b7f0c2e1d3abcdef12"))
	assert.Equal(t, "AB12", Number("ab12"))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Factura-VBOX-Ana-Maria-x1.pdf", FileName("VBOX", "Ana/Maria", "x1"))
	assert.Equal(t, "Factura-VBOX-Ana-x1.pdf", FileName("VBOX", `An"a`, "x1"))
}

func TestNewPageOptions(t *testing.T) {
	tests := []struct {
		name   string
		format string
		margin float64
		want   PageOptions
	}{
		{"A4", "A4", 0.5, PageOptions{Format: "A4", Width: 8.27, Height: 11.69, MarginInches: 0.5}},
		{"Letter lowercase", " letter ", 1, PageOptions{Format: "LETTER", Width: 8.5, Height: 11, MarginInches: 1}},
		{"Unknown falls back", "tabloid", 0.5, PageOptions{Format: "A4", Width: 8.27, Height: 11.69, MarginInches: 0.5}},
		{"Negative margin", "legal", -1, PageOptions{Format: "LEGAL", Width: 8.5, Height: 14, MarginInches: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPageOptions(tt.format, tt.margin))
		})
	}
}
