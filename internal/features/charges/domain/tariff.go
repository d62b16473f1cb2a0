package domain

import (
	"fmt"

	"courier-billing/internal/core/apperr"
	"courier-billing/internal/core/money"

	"github.com/shopspring/decimal"
)

// Regime tells how a quote was priced.
type Regime string

const (
	RegimeFlat    Regime = "flat"
	RegimePerUnit Regime = "per_unit"
	RegimeCustom  Regime = "custom"
)

// Price is an amount in a specific currency.
type Price struct {
	Amount   decimal.Decimal
	Currency money.Currency
}

// Tier prices a service type: a flat fee up to and including Threshold,
// and a per-pound rate above it. The two regimes may use different currencies.
type Tier struct {
	Name      string
	Threshold decimal.Decimal
	Flat      Price
	PerUnit   Price
}

// Quote is the outcome of pricing a shipment.
type Quote struct {
	Description string
	// Rate is the flat fee or the per-pound rate, in Currency.
	Rate     decimal.Decimal
	Currency money.Currency
	Regime   Regime
	// Cost is in Currency; no conversion is applied.
	Cost decimal.Decimal
}

// Tariff maps service types to their pricing tiers.
type Tariff map[ServiceType]Tier

// CustomRateLabel describes charges priced by hand.
const CustomRateLabel = "Tarifa personalizada"

// DefaultTariff is the published price list.
var DefaultTariff = Tariff{
	ServiceMaritime: {
		Name:      "Marítimo",
		Threshold: decimal.NewFromInt(4),
		Flat:      Price{Amount: decimal.NewFromInt(350), Currency: money.HNL},
		PerUnit:   Price{Amount: decimal.RequireFromString("2.70"), Currency: money.USD},
	},
	ServiceAirStandard: {
		Name:      "Aéreo Standard",
		Threshold: decimal.NewFromInt(2),
		Flat:      Price{Amount: decimal.NewFromInt(350), Currency: money.HNL},
		PerUnit:   Price{Amount: decimal.RequireFromString("5.50"), Currency: money.USD},
	},
	ServiceAirExpress: {
		Name:      "Aéreo Express",
		Threshold: decimal.RequireFromString("1.5"),
		Flat:      Price{Amount: decimal.NewFromInt(12), Currency: money.USD},
		PerUnit:   Price{Amount: decimal.NewFromInt(10), Currency: money.USD},
	},
}

// Quote prices a shipment of weight pounds. customCost is required for ServiceOther
// and is passed through in local currency.
func (t Tariff) Quote(st ServiceType, weight decimal.Decimal, customCost *decimal.Decimal) (Quote, error) {
	if weight.IsNegative() {
		return Quote{}, apperr.Validation("El peso a cobrar no puede ser negativo")
	}

	if st == ServiceOther {
		if customCost == nil {
			return Quote{}, apperr.Validation("El costo de envío es requerido para servicios de tipo otro")
		}
		if customCost.IsNegative() {
			return Quote{}, apperr.Validation("El costo de envío no puede ser negativo")
		}
		return Quote{
			Description: CustomRateLabel,
			Rate:        *customCost,
			Currency:    money.HNL,
			Regime:      RegimeCustom,
			Cost:        *customCost,
		}, nil
	}

	tier, ok := t[st]
	if !ok {
		return Quote{}, apperr.Validationf("Tipo de servicio no válido: %s", st)
	}

	if weight.LessThanOrEqual(tier.Threshold) {
		return Quote{
			Description: tier.flatLabel(),
			Rate:        tier.Flat.Amount,
			Currency:    tier.Flat.Currency,
			Regime:      RegimeFlat,
			Cost:        tier.Flat.Amount,
		}, nil
	}

	return Quote{
		Description: tier.perUnitLabel(weight),
		Rate:        tier.PerUnit.Amount,
		Currency:    tier.PerUnit.Currency,
		Regime:      RegimePerUnit,
		Cost:        weight.Mul(tier.PerUnit.Amount),
	}, nil
}

// Describe returns the rate line shown on invoices for a shipment of weight pounds.
// Unknown service types are described as custom pricing.
func (t Tariff) Describe(st ServiceType, weight decimal.Decimal) string {
	tier, ok := t[st]
	if !ok {
		return CustomRateLabel
	}
	if weight.LessThanOrEqual(tier.Threshold) {
		return tier.flatLabel()
	}
	return tier.perUnitLabel(weight)
}

// "Marítimo 0-4 lb: L. 350.00"
func (tr Tier) flatLabel() string {
	return fmt.Sprintf("%s 0-%s lb: %s", tr.Name, tr.Threshold.String(), money.Display(tr.Flat.Currency, tr.Flat.Amount))
}

// "Marítimo 6.00 lb × $2.70"
func (tr Tier) perUnitLabel(weight decimal.Decimal) string {
	return fmt.Sprintf("%s %s lb × %s", tr.Name, weight.StringFixed(2), money.Display(tr.PerUnit.Currency, tr.PerUnit.Amount))
}
