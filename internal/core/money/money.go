// Package money holds the decimal helpers used for charge arithmetic and display.
package money

import (
	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 code.
type Currency string

const (
	HNL Currency = "HNL"
	USD Currency = "USD"
)

// Symbol returns the display prefix for the currency.
func (c Currency) Symbol() string {
	switch c {
	case HNL:
		return "L. "
	case USD:
		return "$"
	default:
		return string(c) + " "
	}
}

var hundred = decimal.NewFromInt(100)

// FromFloat converts a stored amount into a decimal.
func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// ToFloat converts a decimal back to its storage representation.
func ToFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// Percent returns amount × pct / 100.
func Percent(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred)
}

// ApplyDiscount returns amount − amount × pct / 100.
func ApplyDiscount(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Sub(Percent(amount, pct))
}

// Format renders an amount with two decimals, e.g. "350.00".
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatFloat is Format for stored amounts.
func FormatFloat(f float64) string {
	return Format(FromFloat(f))
}

// Display renders an amount with its currency symbol, e.g. "L. 350.00".
func Display(c Currency, d decimal.Decimal) string {
	return c.Symbol() + Format(d)
}
