package handler

import (
	"net/http"
	"net/url"

	"courier-billing/internal/core/server"
	"courier-billing/internal/features/customers/domain"
	"courier-billing/internal/features/customers/ports"

	"github.com/gofiber/fiber/v2"
)

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	service ports.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		service: service,
	}
}

// RegisterRoutes mounts the customer routes on r (the /api/clientes group).
// The search route is registered before /:id so it is not captured as an id.
func (h *CustomerHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/buscar/:nombre", h.Search)
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Deactivate)
}

// List handles GET /api/clientes.
// @Summary List customers
// @Description Lists customers, newest registration first. buscar matches name, locker code, email or identity.
// @Tags Clientes
// @Produce json
// @Param activo query bool false "Filter by active flag"
// @Param buscar query string false "Case-insensitive search term"
// @Success 200 {object} server.Response{data=[]domain.Customer}
// @Failure 500 {object} server.Response
// @Router /api/clientes [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	filter := ports.ListFilter{Search: c.Query("buscar")}

	if raw := c.Query("activo"); raw != "" {
		active := raw == "true"
		filter.Active = &active
	}

	customers, err := h.service.List(c.UserContext(), filter)
	if err != nil {
		return server.Fail(c, err)
	}

	return server.List(c, customers, len(customers))
}

// Search handles GET /api/clientes/buscar/:nombre and GET /api/cobros/buscar-cliente/:nombre.
// @Summary Search active customers by name
// @Description Returns up to 10 active customers whose name contains the term.
// @Tags Clientes
// @Produce json
// @Param nombre path string true "Name fragment"
// @Success 200 {object} server.Response{data=[]domain.Customer}
// @Failure 400 {object} server.Response
// @Failure 500 {object} server.Response
// @Router /api/clientes/buscar/{nombre} [get]
func (h *CustomerHandler) Search(c *fiber.Ctx) error {
	term, err := url.PathUnescape(c.Params("nombre"))
	if err != nil {
		return server.BadRequest(c, "Término de búsqueda inválido")
	}

	customers, err := h.service.SearchByName(c.UserContext(), term)
	if err != nil {
		return server.Fail(c, err)
	}

	return server.OK(c, http.StatusOK, customers, "")
}

// Get handles GET /api/clientes/:id.
// @Summary Get a customer
// @Description Returns a customer with its 10 most recent charges.
// @Tags Clientes
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} server.Response{data=domain.Detail}
// @Failure 404 {object} server.Response
// @Failure 500 {object} server.Response
// @Router /api/clientes/{id} [get]
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	detail, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return server.Fail(c, err)
	}

	return server.OK(c, http.StatusOK, detail, "")
}

// Create handles POST /api/clientes.
// @Summary Register a customer
// @Description Registers a customer. Locker code, email and identity must be unique.
// @Tags Clientes
// @Accept json
// @Produce json
// @Param cliente body domain.Registration true "Customer details"
// @Success 201 {object} server.Response{data=domain.Customer}
// @Failure 400 {object} server.Response
// @Failure 500 {object} server.Response
// @Router /api/clientes [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var req domain.Registration
	if err := c.BodyParser(&req); err != nil {
		return server.BadRequest(c, "Cuerpo de la solicitud inválido")
	}

	customer, err := h.service.Register(c.UserContext(), req)
	if err != nil {
		return server.Fail(c, err)
	}

	return server.OK(c, http.StatusCreated, customer, "Cliente creado exitosamente")
}

// Update handles PUT /api/clientes/:id.
// @Summary Update a customer
// @Description Updates the given fields. Uniqueness is re-checked for changed fields only.
// @Tags Clientes
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param cliente body domain.Patch true "Fields to change"
// @Success 200 {object} server.Response{data=domain.Customer}
// @Failure 400 {object} server.Response
// @Failure 404 {object} server.Response
// @Failure 500 {object} server.Response
// @Router /api/clientes/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var req domain.Patch
	if err := c.BodyParser(&req); err != nil {
		return server.BadRequest(c, "Cuerpo de la solicitud inválido")
	}

	customer, err := h.service.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return server.Fail(c, err)
	}

	return server.OK(c, http.StatusOK, customer, "Cliente actualizado exitosamente")
}

// Deactivate handles DELETE /api/clientes/:id.
// @Summary Deactivate a customer
// @Description Marks the customer inactive. Refused while the customer has pending charges.
// @Tags Clientes
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} server.Response
// @Failure 404 {object} server.Response
// @Failure 409 {object} server.Response
// @Failure 500 {object} server.Response
// @Router /api/clientes/{id} [delete]
func (h *CustomerHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.service.Deactivate(c.UserContext(), c.Params("id")); err != nil {
		return server.Fail(c, err)
	}

	return server.OK(c, http.StatusOK, nil, "Cliente desactivado exitosamente")
}
