package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"courier-billing/internal/core/apperr"
	"courier-billing/internal/core/server"
	"courier-billing/internal/features/charges/domain"
	"courier-billing/internal/features/charges/ports"
	customerdomain "courier-billing/internal/features/customers/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockChargeService is a mock implementation of ports.ChargeService
type MockChargeService struct {
	mock.Mock
}

func (m *MockChargeService) Create(ctx context.Context, d domain.Draft) (*domain.Charge, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charge), args.Error(1)
}

func (m *MockChargeService) Get(ctx context.Context, id string) (*ports.Detail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.Detail), args.Error(1)
}

func (m *MockChargeService) List(ctx context.Context, f domain.Filter, p domain.Page) ([]domain.Charge, int, error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Charge), args.Int(1), args.Error(2)
}

func (m *MockChargeService) Update(ctx context.Context, id string, p domain.Patch) (*domain.Charge, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charge), args.Error(1)
}

func (m *MockChargeService) MarkPaid(ctx context.Context, id string, p domain.Payment) (*domain.Charge, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charge), args.Error(1)
}

func (m *MockChargeService) Cancel(ctx context.Context, id string) (*domain.Charge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charge), args.Error(1)
}

func (m *MockChargeService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupApp(service *MockChargeService) *fiber.App {
	app := fiber.New()
	NewChargeHandler(service).RegisterRoutes(app.Group("/api/cobros"))
	return app
}

func readBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	return body
}

func jsonRequest(method, target, payload string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(payload)))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestChargeHandler_List(t *testing.T) {
	t.Run("Pagination", func(t *testing.T) {
		mockService := new(MockChargeService)
		app := setupApp(mockService)

		mockService.On("List", mock.Anything,
			domain.Filter{Status: domain.StatusPending, CustomerID: "c-1"},
			domain.Page{Number: 2, Limit: 20},
		).Return([]domain.Charge{{ID: "ch-1"}}, 41, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/cobros?estado=pendiente&cliente=c-1&page=2&limit=20", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var body server.Response
		require.NoError(t, json.Unmarshal(raw, &body))
		require.NotNil(t, body.Pagination)
		assert.Equal(t, server.Pagination{Total: 41, Page: 2, Limit: 20, Pages: 3}, *body.Pagination)
		mockService.AssertExpectations(t)
	})

	t.Run("Defaults", func(t *testing.T) {
		mockService := new(MockChargeService)
		app := setupApp(mockService)

		mockService.On("List", mock.Anything, domain.Filter{}, domain.Page{Number: 1, Limit: 50}).
			Return([]domain.Charge{}, 0, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/cobros", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("Unknown status", func(t *testing.T) {
		mockService := new(MockChargeService)
		app := setupApp(mockService)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/cobros?estado=borrado", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockService.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestChargeHandler_Get(t *testing.T) {
	mockService := new(MockChargeService)
	app := setupApp(mockService)

	detail := &ports.Detail{
		Charge:   &domain.Charge{ID: "ch-1", CustomerID: "c-1", Status: domain.StatusPending},
		Customer: &customerdomain.Customer{ID: "c-1", Name: "Ana"},
	}
	mockService.On("Get", mock.Anything, "ch-1").Return(detail, nil).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/cobros/ch-1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, "ch-1", data["_id"])
	cliente, ok := data["cliente"].(map[string]any)
	require.True(t, ok, "customer is embedded in place of its id")
	assert.Equal(t, "Ana", cliente["nombre"])
}

func TestChargeHandler_Create(t *testing.T) {
	t.Run("Success ignores client total", func(t *testing.T) {
		mockService := new(MockChargeService)
		app := setupApp(mockService)

		mockService.On("Create", mock.Anything, mock.MatchedBy(func(d domain.Draft) bool {
			return d.CustomerID == "c-1" && d.ServiceType == domain.ServiceMaritime &&
				len(d.Trackings) == 1 && d.Trackings[0] == "1Z999" && d.BillableWeight == 3
		})).Return(&domain.Charge{ID: "ch-1", Total: 350}, nil).Once()

		payload := `{"cliente":"c-1","tipoServicio":"maritimo","trackings":"1Z999","descripcion":"Zapatos",
			"peso":3,"pesoACobrar":3,"tasaDolar":24.5,"total":1}`
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/cobros", payload))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		body := readBody(t, resp)
		assert.Equal(t, "Cobro creado exitosamente", body["message"])
		assert.Equal(t, 350.0, body["data"].(map[string]any)["total"])
		mockService.AssertExpectations(t)
	})

	t.Run("Validation error", func(t *testing.T) {
		mockService := new(MockChargeService)
		app := setupApp(mockService)

		mockService.On("Create", mock.Anything, mock.Anything).
			Return(nil, apperr.Validation("El campo tasaDolar debe ser mayor que 0")).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/cobros", `{"cliente":"c-1"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := readBody(t, resp)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "El campo tasaDolar debe ser mayor que 0", body["error"])
	})
}

func TestChargeHandler_Update(t *testing.T) {
	mockService := new(MockChargeService)
	app := setupApp(mockService)

	weight := 6.0
	mockService.On("Update", mock.Anything, "ch-1", domain.Patch{BillableWeight: &weight}).
		Return(&domain.Charge{ID: "ch-1"}, nil).Once()

	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/cobros/ch-1", `{"pesoACobrar":6}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestChargeHandler_MarkPaid(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockChargeService)
		app := setupApp(mockService)

		mockService.On("MarkPaid", mock.Anything, "ch-1", domain.Payment{Method: domain.PaymentCash}).
			Return(&domain.Charge{ID: "ch-1", Status: domain.StatusPaid}, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/cobros/ch-1/pagar", `{"metodoPago":"efectivo"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("Not pending", func(t *testing.T) {
		mockService := new(MockChargeService)
		app := setupApp(mockService)

		mockService.On("MarkPaid", mock.Anything, "ch-1", mock.Anything).
			Return(nil, apperr.Conflict("No se puede cambiar el estado del cobro de cancelado a pagado")).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/cobros/ch-1/pagar", `{"metodoPago":"efectivo"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestChargeHandler_Cancel(t *testing.T) {
	mockService := new(MockChargeService)
	app := setupApp(mockService)

	mockService.On("Cancel", mock.Anything, "ch-1").Return(&domain.Charge{ID: "ch-1", Status: domain.StatusCancelled}, nil).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/cobros/ch-1/cancelar", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestChargeHandler_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockChargeService)
		app := setupApp(mockService)

		mockService.On("Delete", mock.Anything, "ch-1").Return(nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/cobros/ch-1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := readBody(t, resp)
		assert.Equal(t, "Cobro eliminado exitosamente", body["message"])
	})

	t.Run("Missing", func(t *testing.T) {
		mockService := new(MockChargeService)
		app := setupApp(mockService)

		mockService.On("Delete", mock.Anything, "ch-1").Return(apperr.NotFound("Cobro no encontrado")).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/cobros/ch-1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
