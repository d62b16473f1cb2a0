package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"courier-billing/internal/core/apperr"
	"courier-billing/internal/core/metrics"
	chargedomain "courier-billing/internal/features/charges/domain"
	customerdomain "courier-billing/internal/features/customers/domain"
	"courier-billing/internal/features/invoices/domain"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockChargeReader is a mock implementation of ports.ChargeReader
type MockChargeReader struct {
	mock.Mock
}

func (m *MockChargeReader) FindByID(ctx context.Context, id string) (*chargedomain.Charge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chargedomain.Charge), args.Error(1)
}

// MockCustomerLookup is a mock implementation of ports.CustomerLookup
type MockCustomerLookup struct {
	mock.Mock
}

func (m *MockCustomerLookup) FindByID(ctx context.Context, id string) (*customerdomain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customerdomain.Customer), args.Error(1)
}

// MockRenderer is a mock implementation of ports.Renderer
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(ctx context.Context, view domain.View, opts domain.PageOptions) ([]byte, error) {
	args := m.Called(ctx, view, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

var company = domain.Company{Name: "VBOX", Tagline: "Courier", City: "San Pedro Sula"}

func newService() (*InvoiceServiceImpl, *MockChargeReader, *MockCustomerLookup, *MockRenderer) {
	charges := new(MockChargeReader)
	customers := new(MockCustomerLookup)
	renderer := new(MockRenderer)
	svc := NewInvoiceService(charges, customers, renderer, company, domain.DefaultPageOptions, time.UTC)
	svc.Now = func() time.Time { return time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC) }
	return svc, charges, customers, renderer
}

func charge() *chargedomain.Charge {
	return &chargedomain.Charge{
		ID:             "aaaaaaaa-bbbb-cccc-dddd-eeee12345678",
		CustomerID:     "c-1",
		CustomerName:   "Ana",
		ServiceType:    chargedomain.ServiceMaritime,
		Trackings:      []string{"1Z999"},
		Description:    "Zapatos",
		BillableWeight: 3,
		ShippingCost:   350,
		Total:          350,
		Status:         chargedomain.StatusPending,
		ChargedAt:      time.Date(2025, time.June, 14, 10, 0, 0, 0, time.UTC),
		ExchangeRate:   24.5,
	}
}

func TestInvoiceService_Build(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, charges, customers, _ := newService()

		charges.On("FindByID", ctx, "ch-1").Return(charge(), nil).Once()
		customers.On("FindByID", ctx, "c-1").Return(&customerdomain.Customer{ID: "c-1", Name: "Ana María"}, nil).Once()

		view, err := svc.Build(ctx, "ch-1")
		require.NoError(t, err)
		assert.Equal(t, "12345678", view.Number)
		assert.Equal(t, "Ana María", view.Customer.Name, "customer block uses the live record")
		assert.Equal(t, "15/6/2025, 10:00:00", view.GeneratedAt)
		assert.Equal(t, "L. 350.00", view.Total)
	})

	t.Run("Charge missing", func(t *testing.T) {
		svc, charges, customers, _ := newService()

		charges.On("FindByID", ctx, "ch-1").Return(nil, apperr.NotFound("Cobro no encontrado")).Once()

		_, err := svc.Build(ctx, "ch-1")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
		customers.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Customer missing", func(t *testing.T) {
		svc, charges, customers, _ := newService()

		charges.On("FindByID", ctx, "ch-1").Return(charge(), nil).Once()
		customers.On("FindByID", ctx, "c-1").Return(nil, apperr.NotFound("Cliente no encontrado")).Once()

		_, err := svc.Build(ctx, "ch-1")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
		assert.Equal(t, "Cliente no encontrado", apperr.Message(err))
	})
}

func TestInvoiceService_Render(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, charges, customers, renderer := newService()
		before := testutil.ToFloat64(metrics.InvoiceRenders.WithLabelValues("success"))

		charges.On("FindByID", ctx, "ch-1").Return(charge(), nil).Once()
		customers.On("FindByID", ctx, "c-1").Return(&customerdomain.Customer{ID: "c-1", Name: "Ana"}, nil).Once()
		renderer.On("Render", ctx, mock.AnythingOfType("domain.View"), domain.DefaultPageOptions).
			Return([]byte("%PDF-1.4"), nil).Once()

		doc, err := svc.Render(ctx, "ch-1")
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.4"), doc.Content)
		assert.Equal(t, "Factura-VBOX-Ana-aaaaaaaa-bbbb-cccc-dddd-eeee12345678.pdf", doc.FileName)
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.InvoiceRenders.WithLabelValues("success")))
	})

	t.Run("Renderer failure", func(t *testing.T) {
		svc, charges, customers, renderer := newService()
		before := testutil.ToFloat64(metrics.InvoiceRenders.WithLabelValues("error"))

		charges.On("FindByID", ctx, "ch-1").Return(charge(), nil).Once()
		customers.On("FindByID", ctx, "c-1").Return(&customerdomain.Customer{ID: "c-1"}, nil).Once()
		renderer.On("Render", ctx, mock.Anything, mock.Anything).Return(nil, errors.New("browser crashed")).Once()

		_, err := svc.Render(ctx, "ch-1")
		assert.ErrorIs(t, err, apperr.ErrRender)
		assert.Equal(t, "Error al generar PDF", apperr.Message(err))
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.InvoiceRenders.WithLabelValues("error")))
	})

	t.Run("Missing charge skips rendering", func(t *testing.T) {
		svc, charges, _, renderer := newService()

		charges.On("FindByID", ctx, "ch-1").Return(nil, apperr.NotFound("Cobro no encontrado")).Once()

		_, err := svc.Render(ctx, "ch-1")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
		renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything, mock.Anything)
	})
}
