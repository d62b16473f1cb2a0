package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer is a locker holder who can be billed.
type Customer struct {
	ID                 string    `json:"_id"`
	LockerCode         string    `json:"codigoCasillero" validate:"required"`
	Name               string    `json:"nombre" validate:"required"`
	Email              string    `json:"email" validate:"required,mailbox"`
	Phone              string    `json:"telefono" validate:"required"`
	Identity           string    `json:"identidad" validate:"required"`
	Address            string    `json:"direccion" validate:"required"`
	RegisteredAt       time.Time `json:"fechaRegistro"`
	Active             bool      `json:"activo"`
	OutstandingBalance float64   `json:"saldoPendiente" validate:"gte=0"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// Registration holds the fields accepted when a customer signs up.
type Registration struct {
	LockerCode string `json:"codigoCasillero"`
	Name       string `json:"nombre"`
	Email      string `json:"email"`
	Phone      string `json:"telefono"`
	Identity   string `json:"identidad"`
	Address    string `json:"direccion"`
}

// Patch holds the fields a customer update may change. Nil fields are left untouched.
type Patch struct {
	LockerCode         *string  `json:"codigoCasillero"`
	Name               *string  `json:"nombre"`
	Email              *string  `json:"email"`
	Phone              *string  `json:"telefono"`
	Identity           *string  `json:"identidad"`
	Address            *string  `json:"direccion"`
	Active             *bool    `json:"activo"`
	OutstandingBalance *float64 `json:"saldoPendiente"`
}

// NormalizeLockerCode trims and uppercases a locker code.
func NormalizeLockerCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NewCustomer builds an active customer with a fresh id from a normalized registration.
func NewCustomer(r Registration, now time.Time) *Customer {
	return &Customer{
		ID:           uuid.NewString(),
		LockerCode:   NormalizeLockerCode(r.LockerCode),
		Name:         strings.TrimSpace(r.Name),
		Email:        NormalizeEmail(r.Email),
		Phone:        strings.TrimSpace(r.Phone),
		Identity:     strings.TrimSpace(r.Identity),
		Address:      strings.TrimSpace(r.Address),
		RegisteredAt: now,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Apply copies the non-nil patch fields onto c, normalizing them the same way as registration.
func (c *Customer) Apply(p Patch) {
	if p.LockerCode != nil {
		c.LockerCode = NormalizeLockerCode(*p.LockerCode)
	}
	if p.Name != nil {
		c.Name = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		c.Email = NormalizeEmail(*p.Email)
	}
	if p.Phone != nil {
		c.Phone = strings.TrimSpace(*p.Phone)
	}
	if p.Identity != nil {
		c.Identity = strings.TrimSpace(*p.Identity)
	}
	if p.Address != nil {
		c.Address = strings.TrimSpace(*p.Address)
	}
	if p.Active != nil {
		c.Active = *p.Active
	}
	if p.OutstandingBalance != nil {
		c.OutstandingBalance = *p.OutstandingBalance
	}
}
