package domain

import (
	"time"

	"courier-billing/internal/core/apperr"
)

// Payment settles a pending charge.
type Payment struct {
	Method PaymentMethod `json:"metodoPago" validate:"required,oneof=efectivo transferencia tarjeta"`
	// PaidAt defaults to the time the payment is recorded.
	PaidAt *time.Time `json:"fechaPago"`
}

// Pay moves a pending charge to paid.
func (c *Charge) Pay(method PaymentMethod, at time.Time) error {
	if !method.Valid() {
		return apperr.Validationf("Método de pago no válido: %s", method)
	}
	if c.Status != StatusPending {
		return errTransition(c.Status, StatusPaid)
	}
	c.Status = StatusPaid
	c.PaymentMethod = method
	c.PaidAt = &at
	return nil
}

// Cancel moves a pending charge to cancelled.
func (c *Charge) Cancel() error {
	if c.Status != StatusPending {
		return errTransition(c.Status, StatusCancelled)
	}
	c.Status = StatusCancelled
	return nil
}

// Transition applies a requested status change. Requesting the current status is a no-op.
// Only pending charges may move, and only forward.
func (c *Charge) Transition(to Status, method PaymentMethod, at time.Time) error {
	if !to.Valid() {
		return apperr.Validationf("Estado no válido: %s", to)
	}
	if to == c.Status {
		return nil
	}
	switch to {
	case StatusPaid:
		return c.Pay(method, at)
	case StatusCancelled:
		return c.Cancel()
	default:
		return errTransition(c.Status, to)
	}
}

func errTransition(from, to Status) error {
	return apperr.Conflictf("No se puede cambiar el estado del cobro de %s a %s", from, to)
}
