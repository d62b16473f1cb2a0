package domain

import (
	chargedomain "courier-billing/internal/features/charges/domain"
)

// RecentChargesLimit bounds the charge history returned with a customer.
const RecentChargesLimit = 10

// Detail is a customer with its most recent charges.
type Detail struct {
	Customer      *Customer             `json:"cliente"`
	RecentCharges []chargedomain.Charge `json:"cobrosRecientes"`
}
