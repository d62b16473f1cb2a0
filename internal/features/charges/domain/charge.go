package domain

import (
	"strings"
	"time"
)

// ServiceType is the shipping service a charge is priced under.
type ServiceType string

const (
	ServiceMaritime    ServiceType = "maritimo"
	ServiceAirStandard ServiceType = "aereo_standard"
	ServiceAirExpress  ServiceType = "aereo_express"
	ServiceOther       ServiceType = "otro"
)

// Valid reports whether s is a known service type.
func (s ServiceType) Valid() bool {
	switch s {
	case ServiceMaritime, ServiceAirStandard, ServiceAirExpress, ServiceOther:
		return true
	}
	return false
}

// Label is the uppercase display name, e.g. "AEREO STANDARD".
func (s ServiceType) Label() string {
	return strings.ToUpper(strings.Replace(string(s), "_", " ", 1))
}

// Status is the payment state of a charge.
type Status string

const (
	StatusPending   Status = "pendiente"
	StatusPaid      Status = "pagado"
	StatusCancelled Status = "cancelado"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusPaid || s == StatusCancelled
}

// PaymentMethod is how a charge was settled.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "efectivo"
	PaymentTransfer PaymentMethod = "transferencia"
	PaymentCard     PaymentMethod = "tarjeta"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentTransfer || m == PaymentCard
}

// Charge is a billed shipment. Amounts are in local currency (HNL) unless noted.
type Charge struct {
	ID string `json:"_id"`
	// CustomerID references the billed customer.
	CustomerID string `json:"cliente"`
	// CustomerName is a snapshot taken when the charge was created.
	CustomerName     string      `json:"nombreCliente"`
	ServiceType      ServiceType `json:"tipoServicio"`
	Trackings        []string    `json:"trackings"`
	Description      string      `json:"descripcion"`
	Weight           float64     `json:"peso"`
	VolumetricWeight *float64    `json:"pesoVolumetrico,omitempty"`
	BillableWeight   float64     `json:"pesoACobrar"`
	// AppliedRate is the tier rate in the tier's own currency.
	AppliedRate   float64       `json:"tarifaAplicada"`
	ShippingCost  float64       `json:"costoEnvio"`
	Discount      float64       `json:"descuento"`
	Total         float64       `json:"total"`
	Status        Status        `json:"estado"`
	PaymentMethod PaymentMethod `json:"metodoPago,omitempty"`
	ChargedAt     time.Time     `json:"fechaCobro"`
	PaidAt        *time.Time    `json:"fechaPago,omitempty"`
	Notes         string        `json:"observaciones,omitempty"`
	ExchangeRate  float64       `json:"tasaDolar"`
	Week          int           `json:"semana"`
	Year          int           `json:"año"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// Draft holds the caller-supplied fields a charge is priced from.
type Draft struct {
	CustomerID       string      `json:"cliente" validate:"required"`
	ServiceType      ServiceType `json:"tipoServicio" validate:"required"`
	Trackings        Trackings   `json:"trackings" validate:"min=1,dive,required"`
	Description      string      `json:"descripcion" validate:"required"`
	Weight           float64     `json:"peso" validate:"gte=0"`
	VolumetricWeight *float64    `json:"pesoVolumetrico" validate:"omitnil,gte=0"`
	BillableWeight   float64     `json:"pesoACobrar" validate:"gte=0"`
	// CustomCost is the shipping cost for ServiceOther, ignored otherwise.
	CustomCost   *float64   `json:"costoEnvio" validate:"omitnil,gte=0"`
	Discount     float64    `json:"descuento" validate:"gte=0,lte=100"`
	ExchangeRate float64    `json:"tasaDolar" validate:"gt=0"`
	ChargedAt    *time.Time `json:"fechaCobro"`
	Notes        string     `json:"observaciones"`
}

// Normalize trims free-text fields and drops blank tracking codes.
func (d *Draft) Normalize() {
	d.CustomerID = strings.TrimSpace(d.CustomerID)
	d.Description = strings.TrimSpace(d.Description)
	d.Notes = strings.TrimSpace(d.Notes)
	d.Trackings = d.Trackings.Clean()
}

// Patch holds the fields a charge update may change. Nil fields are left untouched.
type Patch struct {
	ServiceType      *ServiceType   `json:"tipoServicio"`
	Trackings        *Trackings     `json:"trackings"`
	Description      *string        `json:"descripcion"`
	Weight           *float64       `json:"peso"`
	VolumetricWeight *float64       `json:"pesoVolumetrico"`
	BillableWeight   *float64       `json:"pesoACobrar"`
	CustomCost       *float64       `json:"costoEnvio"`
	Discount         *float64       `json:"descuento"`
	ExchangeRate     *float64       `json:"tasaDolar"`
	ChargedAt        *time.Time     `json:"fechaCobro"`
	Notes            *string        `json:"observaciones"`
	Status           *Status        `json:"estado"`
	PaymentMethod    *PaymentMethod `json:"metodoPago"`
	PaidAt           *time.Time     `json:"fechaPago"`
}

// Draft reconstructs the pricing inputs of an existing charge.
func (c *Charge) Draft() Draft {
	d := Draft{
		CustomerID:       c.CustomerID,
		ServiceType:      c.ServiceType,
		Trackings:        append(Trackings(nil), c.Trackings...),
		Description:      c.Description,
		Weight:           c.Weight,
		VolumetricWeight: c.VolumetricWeight,
		BillableWeight:   c.BillableWeight,
		Discount:         c.Discount,
		ExchangeRate:     c.ExchangeRate,
		Notes:            c.Notes,
	}
	if c.ServiceType == ServiceOther {
		cost := c.ShippingCost
		d.CustomCost = &cost
	}
	at := c.ChargedAt
	d.ChargedAt = &at
	return d
}

// ApplyTo copies the pricing fields of p onto d.
func (p Patch) ApplyTo(d *Draft) {
	if p.ServiceType != nil {
		d.ServiceType = *p.ServiceType
	}
	if p.Trackings != nil {
		d.Trackings = *p.Trackings
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.Weight != nil {
		d.Weight = *p.Weight
	}
	if p.VolumetricWeight != nil {
		d.VolumetricWeight = p.VolumetricWeight
	}
	if p.BillableWeight != nil {
		d.BillableWeight = *p.BillableWeight
	}
	if p.CustomCost != nil {
		d.CustomCost = p.CustomCost
	}
	if p.Discount != nil {
		d.Discount = *p.Discount
	}
	if p.ExchangeRate != nil {
		d.ExchangeRate = *p.ExchangeRate
	}
	if p.ChargedAt != nil {
		d.ChargedAt = p.ChargedAt
	}
	if p.Notes != nil {
		d.Notes = *p.Notes
	}
}

// Filter narrows charge queries. Zero fields do not filter.
type Filter struct {
	Status     Status
	CustomerID string
	// ChargedFrom is inclusive.
	ChargedFrom *time.Time
	// ChargedBefore is exclusive.
	ChargedBefore *time.Time
}

// Page selects a window of a listing ordered by charge date, newest first.
type Page struct {
	Number int
	Limit  int
}

// DefaultPageLimit is used when a listing does not ask for a page size.
const DefaultPageLimit = 50

// Offset returns the number of rows skipped before this page.
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Limit
}
