package service

import (
	"time"

	"courier-billing/internal/core/apperr"
	"courier-billing/internal/core/money"
	"courier-billing/internal/core/validation"
	"courier-billing/internal/features/charges/domain"

	"github.com/shopspring/decimal"
)

// Builder prices drafts and derives the computed fields of a charge.
type Builder struct {
	Tariff domain.Tariff
	// Location is the time zone week and year are derived in.
	Location *time.Location
}

// NewBuilder returns a Builder over the published tariff.
func NewBuilder(loc *time.Location) *Builder {
	if loc == nil {
		loc = time.UTC
	}
	return &Builder{Tariff: domain.DefaultTariff, Location: loc}
}

// Apply validates d and writes every caller and derived field onto c.
// Identity, customer and status fields of c are left alone.
// now is used when d carries no charge date.
func (b *Builder) Apply(c *domain.Charge, d domain.Draft, now time.Time) error {
	d.Normalize()
	if err := validation.Struct(d); err != nil {
		return err
	}
	if !d.ServiceType.Valid() {
		return apperr.Validationf("Tipo de servicio no válido: %s", d.ServiceType)
	}

	var custom *decimal.Decimal
	if d.CustomCost != nil {
		v := money.FromFloat(*d.CustomCost)
		custom = &v
	}

	quote, err := b.Tariff.Quote(d.ServiceType, money.FromFloat(d.BillableWeight), custom)
	if err != nil {
		return err
	}

	rate := money.FromFloat(d.ExchangeRate)
	cost := quote.Cost
	if quote.Currency == money.USD {
		cost = cost.Mul(rate)
	}
	total := money.ApplyDiscount(cost, money.FromFloat(d.Discount))

	chargedAt := now
	if d.ChargedAt != nil {
		chargedAt = *d.ChargedAt
	}
	week, year := domain.BillingPeriod(chargedAt, b.Location)

	c.ServiceType = d.ServiceType
	c.Trackings = []string(d.Trackings)
	c.Description = d.Description
	c.Weight = d.Weight
	c.VolumetricWeight = d.VolumetricWeight
	c.BillableWeight = d.BillableWeight
	c.AppliedRate = money.ToFloat(quote.Rate)
	c.ShippingCost = money.ToFloat(cost)
	c.Discount = d.Discount
	c.Total = money.ToFloat(total)
	c.ExchangeRate = d.ExchangeRate
	c.ChargedAt = chargedAt
	c.Notes = d.Notes
	c.Week = week
	c.Year = year

	return nil
}
