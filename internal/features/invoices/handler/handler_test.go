package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"courier-billing/internal/core/apperr"
	"courier-billing/internal/features/invoices/domain"
	"courier-billing/internal/features/invoices/ports"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockInvoiceService is a mock implementation of ports.InvoiceService
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Build(ctx context.Context, chargeID string) (*domain.View, error) {
	args := m.Called(ctx, chargeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.View), args.Error(1)
}

func (m *MockInvoiceService) Render(ctx context.Context, chargeID string) (*ports.Document, error) {
	args := m.Called(ctx, chargeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.Document), args.Error(1)
}

func setupApp(service *MockInvoiceService) *fiber.App {
	app := fiber.New()
	NewInvoiceHandler(service).RegisterRoutes(app.Group("/api/cobros"))
	return app
}

func TestInvoiceHandler_PDF(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockInvoiceService)
		app := setupApp(mockService)

		mockService.On("Render", mock.Anything, "ch-1").
			Return(&ports.Document{FileName: "Factura-VBOX-Ana-ch-1.pdf", Content: []byte("%PDF-1.4 test")}, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/cobros/ch-1/pdf", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
		assert.Contains(t, resp.Header.Get("Content-Disposition"), `attachment; filename="Factura-VBOX-Ana-ch-1.pdf"`)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 test", string(body))
	})

	t.Run("Render failure", func(t *testing.T) {
		mockService := new(MockInvoiceService)
		app := setupApp(mockService)

		mockService.On("Render", mock.Anything, "ch-1").
			Return(nil, apperr.Render("Error al generar PDF", assert.AnError)).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/cobros/ch-1/pdf", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "Error al generar PDF")
	})

	t.Run("Unknown charge", func(t *testing.T) {
		mockService := new(MockInvoiceService)
		app := setupApp(mockService)

		mockService.On("Render", mock.Anything, "ch-1").Return(nil, apperr.NotFound("Cobro no encontrado")).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/cobros/ch-1/pdf", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestInvoiceHandler_View(t *testing.T) {
	mockService := new(MockInvoiceService)
	app := setupApp(mockService)

	mockService.On("Build", mock.Anything, "ch-1").Return(&domain.View{Number: "12345678", Total: "L. 350.00"}, nil).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/cobros/ch-1/factura", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"numero":"12345678"`)
	mockService.AssertExpectations(t)
}

func TestContentDisposition(t *testing.T) {
	assert.Equal(t,
		`attachment; filename="Factura-VBOX-Ana L_pez-x1.pdf"; filename*=UTF-8''Factura-VBOX-Ana%20L%C3%B3pez-x1.pdf`,
		contentDisposition("Factura-VBOX-Ana López-x1.pdf"))
}
