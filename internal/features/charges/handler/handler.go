package handler

import (
	"net/http"

	"courier-billing/internal/core/server"
	"courier-billing/internal/features/charges/domain"
	"courier-billing/internal/features/charges/ports"

	"github.com/gofiber/fiber/v2"
)

// ChargeHandler handles HTTP requests for charges.
type ChargeHandler struct {
	service ports.ChargeService
}

// NewChargeHandler creates a new ChargeHandler.
func NewChargeHandler(service ports.ChargeService) *ChargeHandler {
	return &ChargeHandler{
		service: service,
	}
}

// RegisterRoutes mounts the charge routes on r (the /api/cobros group).
func (h *ChargeHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Post("/:id/pagar", h.MarkPaid)
	r.Post("/:id/cancelar", h.Cancel)
	r.Delete("/:id", h.Delete)
}

// List handles GET /api/cobros.
// @Summary List charges
// @Description Lists charges, newest charge date first.
// @Tags Cobros
// @Produce json
// @Param estado query string false "Status filter" Enums(pendiente, pagado, cancelado)
// @Param cliente query string false "Customer ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} server.Response{data=[]domain.Charge}
// @Failure 400 {object} server.Response
// @Failure 500 {object} server.Response
// @Router /api/cobros [get]
func (h *ChargeHandler) List(c *fiber.Ctx) error {
	filter := domain.Filter{
		Status:     domain.Status(c.Query("estado")),
		CustomerID: c.Query("cliente"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return server.BadRequest(c, "Estado no válido")
	}

	page := domain.Page{
		Number: c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", domain.DefaultPageLimit),
	}
	if page.Number < 1 {
		page.Number = 1
	}
	if page.Limit < 1 {
		page.Limit = domain.DefaultPageLimit
	}

	charges, total, err := h.service.List(c.UserContext(), filter, page)
	if err != nil {
		return server.Fail(c, err)
	}

	return server.Paged(c, charges, server.NewPagination(total, page.Number, page.Limit))
}

// Get handles GET /api/cobros/:id.
// @Summary Get a charge
// @Description Returns a charge with its customer.
// @Tags Cobros
// @Produce json
// @Param id path string true "Charge ID"
// @Success 200 {object} server.Response{data=ports.Detail}
// @Failure 404 {object} server.Response
// @Failure 500 {object} server.Response
// @Router /api/cobros/{id} [get]
func (h *ChargeHandler) Get(c *fiber.Ctx) error {
	detail, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return server.Fail(c, err)
	}

	return server.OK(c, http.StatusOK, detail, "")
}

// Create handles POST /api/cobros.
// @Summary Create a charge
// @Description Prices a shipment and records it as pending. Totals sent by the client are ignored.
// @Tags Cobros
// @Accept json
// @Produce json
// @Param cobro body domain.Draft true "Shipment details"
// @Success 201 {object} server.Response{data=domain.Charge}
// @Failure 400 {object} server.Response
// @Failure 404 {object} server.Response
// @Failure 500 {object} server.Response
// @Router /api/cobros [post]
func (h *ChargeHandler) Create(c *fiber.Ctx) error {
	var req domain.Draft
	if err := c.BodyParser(&req); err != nil {
		return server.BadRequest(c, "Cuerpo de la solicitud inválido")
	}

	charge, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return server.Fail(c, err)
	}

	return server.OK(c, http.StatusCreated, charge, "Cobro creado exitosamente")
}

// Update handles PUT /api/cobros/:id.
// @Summary Update a charge
// @Description Applies the given fields, re-prices the charge and re-derives its week and year.
// @Tags Cobros
// @Accept json
// @Produce json
// @Param id path string true "Charge ID"
// @Param cobro body domain.Patch true "Fields to change"
// @Success 200 {object} server.Response{data=domain.Charge}
// @Failure 400 {object} server.Response
// @Failure 404 {object} server.Response
// @Failure 409 {object} server.Response
// @Failure 500 {object} server.Response
// @Router /api/cobros/{id} [put]
func (h *ChargeHandler) Update(c *fiber.Ctx) error {
	var req domain.Patch
	if err := c.BodyParser(&req); err != nil {
		return server.BadRequest(c, "Cuerpo de la solicitud inválido")
	}

	charge, err := h.service.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return server.Fail(c, err)
	}

	return server.OK(c, http.StatusOK, charge, "Cobro actualizado exitosamente")
}

// MarkPaid handles POST /api/cobros/:id/pagar.
// @Summary Mark a charge as paid
// @Tags Cobros
// @Accept json
// @Produce json
// @Param id path string true "Charge ID"
// @Param pago body domain.Payment true "Payment details"
// @Success 200 {object} server.Response{data=domain.Charge}
// @Failure 400 {object} server.Response
// @Failure 404 {object} server.Response
// @Failure 409 {object} server.Response
// @Failure 500 {object} server.Response
// @Router /api/cobros/{id}/pagar [post]
func (h *ChargeHandler) MarkPaid(c *fiber.Ctx) error {
	var req domain.Payment
	if err := c.BodyParser(&req); err != nil {
		return server.BadRequest(c, "Cuerpo de la solicitud inválido")
	}

	charge, err := h.service.MarkPaid(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return server.Fail(c, err)
	}

	return server.OK(c, http.StatusOK, charge, "Cobro marcado como pagado")
}

// Cancel handles POST /api/cobros/:id/cancelar.
// @Summary Cancel a charge
// @Tags Cobros
// @Produce json
// @Param id path string true "Charge ID"
// @Success 200 {object} server.Response{data=domain.Charge}
// @Failure 404 {object} server.Response
// @Failure 409 {object} server.Response
// @Failure 500 {object} server.Response
// @Router /api/cobros/{id}/cancelar [post]
func (h *ChargeHandler) Cancel(c *fiber.Ctx) error {
	charge, err := h.service.Cancel(c.UserContext(), c.Params("id"))
	if err != nil {
		return server.Fail(c, err)
	}

	return server.OK(c, http.StatusOK, charge, "Cobro cancelado exitosamente")
}

// Delete handles DELETE /api/cobros/:id.
// @Summary Delete a charge
// @Tags Cobros
// @Produce json
// @Param id path string true "Charge ID"
// @Success 200 {object} server.Response
// @Failure 404 {object} server.Response
// @Failure 500 {object} server.Response
// @Router /api/cobros/{id} [delete]
func (h *ChargeHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return server.Fail(c, err)
	}

	return server.OK(c, http.StatusOK, nil, "Cobro eliminado exitosamente")
}
