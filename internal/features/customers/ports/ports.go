package ports

import (
	"context"

	chargedomain "courier-billing/internal/features/charges/domain"
	"courier-billing/internal/features/customers/domain"
)

// ListFilter narrows a customer listing.
type ListFilter struct {
	// Active filters by the active flag when set.
	Active *bool
	// Search is a case-insensitive substring matched against name, locker code, email and identity.
	Search string
	// Name is a case-insensitive substring matched against the name only.
	Name string
	// Limit caps the number of rows; 0 means no limit.
	Limit int
}

// CustomerService defines the primary port for customer operations.
type CustomerService interface {
	Register(ctx context.Context, r domain.Registration) (*domain.Customer, error)
	Get(ctx context.Context, id string) (*domain.Detail, error)
	List(ctx context.Context, f ListFilter) ([]domain.Customer, error)
	SearchByName(ctx context.Context, term string) ([]domain.Customer, error)
	Update(ctx context.Context, id string, p domain.Patch) (*domain.Customer, error)
	Deactivate(ctx context.Context, id string) error
}

// CustomerRepository defines the secondary port for customer storage.
// Unique attributes are enforced by the store; a violation surfaces as a validation error.
type CustomerRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	// Exists reports whether a customer other than excludeID holds value for field.
	Exists(ctx context.Context, field domain.UniqueField, value, excludeID string) (bool, error)
	Find(ctx context.Context, f ListFilter) ([]domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
	Update(ctx context.Context, c *domain.Customer) error
}

// ChargeLedger is the read access to charges a customer operation needs.
type ChargeLedger interface {
	Find(ctx context.Context, f chargedomain.Filter, p chargedomain.Page) ([]chargedomain.Charge, error)
	Count(ctx context.Context, f chargedomain.Filter) (int, error)
}
