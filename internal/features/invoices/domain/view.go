package domain

import (
	"fmt"
	"strings"
	"time"

	"courier-billing/internal/core/money"
	chargedomain "courier-billing/internal/features/charges/domain"
	customerdomain "courier-billing/internal/features/customers/domain"
)

const (
	dateLayout     = "2/1/2006"
	dateTimeLayout = "2/1/2006, 15:04:05"
	numberLength   = 8
)

// LineKind tells how an invoice line is presented.
type LineKind string

const (
	LineShipping LineKind = "envio"
	LineDiscount LineKind = "descuento"
	LineTotal    LineKind = "total"
)

// Company is the invoice header.
type Company struct {
	Name    string `json:"nombre"`
	Tagline string `json:"eslogan"`
	City    string `json:"ciudad"`
}

// CustomerBlock is the billed customer as printed.
type CustomerBlock struct {
	Name       string `json:"nombre"`
	LockerCode string `json:"codigoCasillero"`
	Identity   string `json:"identidad"`
	Phone      string `json:"telefono"`
	Email      string `json:"email"`
	Address    string `json:"direccion"`
}

// Line is one row of the billing table. Amounts are preformatted.
type Line struct {
	Kind    LineKind `json:"tipo"`
	Concept string   `json:"concepto"`
	Details string   `json:"detalles,omitempty"`
	Weight  string   `json:"peso,omitempty"`
	Amount  string   `json:"monto"`
}

// View is the printable projection of a charge. Every field is display-ready.
type View struct {
	Company         Company       `json:"empresa"`
	ChargeID        string        `json:"cobro"`
	Number          string        `json:"numero"`
	Date            string        `json:"fecha"`
	Status          string        `json:"estado"`
	ServiceLabel    string        `json:"tipoServicio"`
	Customer        CustomerBlock `json:"cliente"`
	RateDescription string        `json:"detallesTarifa"`
	BillableWeight  string        `json:"pesoACobrar"`
	Description     string        `json:"descripcion"`
	ExchangeRate    string        `json:"tasaDolar"`
	Trackings       []string      `json:"trackings"`
	Lines           []Line        `json:"conceptos"`
	Total           string        `json:"total"`
	GeneratedAt     string        `json:"generado"`
	FileName        string        `json:"nombreArchivo"`
}

// HasDiscount reports whether the view carries a discount line.
func (v View) HasDiscount() bool {
	for _, l := range v.Lines {
		if l.Kind == LineDiscount {
			return true
		}
	}
	return false
}

// NewView projects a charge and its customer. Dates are printed in loc; now stamps the footer.
func NewView(c *chargedomain.Charge, cust *customerdomain.Customer, company Company, tariff chargedomain.Tariff, loc *time.Location, now time.Time) View {
	if loc == nil {
		loc = time.UTC
	}

	weight := money.FromFloat(c.BillableWeight)
	cost := money.FromFloat(c.ShippingCost)
	discount := money.FromFloat(c.Discount)
	weightLabel := weight.StringFixed(2) + " lb"
	rate := tariff.Describe(c.ServiceType, weight)

	lines := []Line{{
		Kind:    LineShipping,
		Concept: "Servicio de Courier",
		Details: rate,
		Weight:  weightLabel,
		Amount:  money.Display(money.HNL, cost),
	}}
	if discount.IsPositive() {
		lines = append(lines, Line{
			Kind:    LineDiscount,
			Concept: "Descuento",
			Details: discount.String() + "% aplicado",
			Weight:  "-",
			Amount:  "- " + money.Display(money.HNL, money.Percent(cost, discount)),
		})
	}
	total := money.Display(money.HNL, money.FromFloat(c.Total))
	lines = append(lines, Line{Kind: LineTotal, Concept: "TOTAL A PAGAR", Amount: total})

	return View{
		Company:      company,
		ChargeID:     c.ID,
		Number:       Number(c.ID),
		Date:         c.ChargedAt.In(loc).Format(dateLayout),
		Status:       strings.ToUpper(string(c.Status)),
		ServiceLabel: c.ServiceType.Label(),
		Customer: CustomerBlock{
			Name:       cust.Name,
			LockerCode: cust.LockerCode,
			Identity:   cust.Identity,
			Phone:      cust.Phone,
			Email:      cust.Email,
			Address:    cust.Address,
		},
		RateDescription: rate,
		BillableWeight:  weightLabel,
		Description:     c.Description,
		ExchangeRate:    money.Display(money.HNL, money.FromFloat(c.ExchangeRate)),
		Trackings:       append([]string(nil), c.Trackings...),
		Lines:           lines,
		Total:           total,
		GeneratedAt:     now.In(loc).Format(dateTimeLayout),
		FileName:        FileName(company.Name, c.CustomerName, c.ID),
	}
}

// Number is the printed invoice number: the last eight characters of the charge id, uppercased.
func Number(chargeID string) string {
	if len(chargeID) > numberLength {
		chargeID = chargeID[len(chargeID)-numberLength:]
	}
	return strings.ToUpper(chargeID)
}

var fileNameReplacer = strings.NewReplacer("/", "-", `\`, "-", `"`, "")

// FileName suggests the download name of the invoice PDF.
func FileName(company, customerName, chargeID string) string {
	return fileNameReplacer.Replace(fmt.Sprintf("Factura-%s-%s-%s.pdf", company, customerName, chargeID))
}
