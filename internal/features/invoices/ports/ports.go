package ports

import (
	"context"

	chargedomain "courier-billing/internal/features/charges/domain"
	customerdomain "courier-billing/internal/features/customers/domain"
	"courier-billing/internal/features/invoices/domain"
)

// Document is a rendered invoice ready to download.
type Document struct {
	FileName string
	Content  []byte
}

// InvoiceService defines the primary port for invoices.
type InvoiceService interface {
	Build(ctx context.Context, chargeID string) (*domain.View, error)
	Render(ctx context.Context, chargeID string) (*Document, error)
}

// Renderer turns an invoice view into a printable document.
type Renderer interface {
	Render(ctx context.Context, view domain.View, opts domain.PageOptions) ([]byte, error)
}

// ChargeReader loads the charge being invoiced.
type ChargeReader interface {
	FindByID(ctx context.Context, id string) (*chargedomain.Charge, error)
}

// CustomerLookup loads the billed customer.
type CustomerLookup interface {
	FindByID(ctx context.Context, id string) (*customerdomain.Customer, error)
}
