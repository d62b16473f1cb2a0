package ports

import (
	"context"

	"courier-billing/internal/features/charges/domain"
	customerdomain "courier-billing/internal/features/customers/domain"
)

// Detail is a charge with its customer resolved.
// Customer shadows the embedded customer id on the wire and is null if the customer is gone.
type Detail struct {
	*domain.Charge
	Customer *customerdomain.Customer `json:"cliente"`
}

// ChargeService defines the primary port for charge operations.
type ChargeService interface {
	Create(ctx context.Context, d domain.Draft) (*domain.Charge, error)
	Get(ctx context.Context, id string) (*Detail, error)
	List(ctx context.Context, f domain.Filter, p domain.Page) ([]domain.Charge, int, error)
	Update(ctx context.Context, id string, p domain.Patch) (*domain.Charge, error)
	MarkPaid(ctx context.Context, id string, p domain.Payment) (*domain.Charge, error)
	Cancel(ctx context.Context, id string) (*domain.Charge, error)
	Delete(ctx context.Context, id string) error
}

// ChargeRepository defines the secondary port for charge storage.
type ChargeRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Charge, error)
	// Find returns charges matching f, newest charge date first.
	Find(ctx context.Context, f domain.Filter, p domain.Page) ([]domain.Charge, error)
	Count(ctx context.Context, f domain.Filter) (int, error)
	Create(ctx context.Context, c *domain.Charge) error
	Update(ctx context.Context, c *domain.Charge) error
	Delete(ctx context.Context, id string) error
}

// CustomerLookup resolves the customer a charge is billed to.
type CustomerLookup interface {
	FindByID(ctx context.Context, id string) (*customerdomain.Customer, error)
}

// StatsInvalidator drops cached dashboard figures after a charge changes.
type StatsInvalidator interface {
	Invalidate(ctx context.Context)
}
