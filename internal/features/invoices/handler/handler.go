package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"courier-billing/internal/core/server"
	"courier-billing/internal/features/invoices/ports"

	"github.com/gofiber/fiber/v2"
)

// InvoiceHandler serves invoice views and documents.
type InvoiceHandler struct {
	service ports.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(service ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// RegisterRoutes mounts the invoice routes on r (the /api/cobros group).
func (h *InvoiceHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/:id/pdf", h.PDF)
	r.Get("/:id/factura", h.View)
}

// PDF handles GET /api/cobros/:id/pdf.
// @Summary Download the invoice PDF
// @Tags Facturas
// @Produce application/pdf
// @Param id path string true "Charge ID"
// @Success 200 {file} binary
// @Failure 404 {object} server.Response
// @Failure 500 {object} server.Response
// @Router /api/cobros/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	doc, err := h.service.Render(c.UserContext(), c.Params("id"))
	if err != nil {
		return server.Fail(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, contentDisposition(doc.FileName))
	return c.Status(http.StatusOK).Send(doc.Content)
}

// View handles GET /api/cobros/:id/factura.
// @Summary Get the invoice view
// @Description Returns the display-ready invoice fields the PDF is printed from.
// @Tags Facturas
// @Produce json
// @Param id path string true "Charge ID"
// @Success 200 {object} server.Response{data=domain.View}
// @Failure 404 {object} server.Response
// @Failure 500 {object} server.Response
// @Router /api/cobros/{id}/factura [get]
func (h *InvoiceHandler) View(c *fiber.Ctx) error {
	view, err := h.service.Build(c.UserContext(), c.Params("id"))
	if err != nil {
		return server.Fail(c, err)
	}

	return server.OK(c, http.StatusOK, view, "")
}

// contentDisposition names the download with an ASCII fallback plus the
// UTF-8 form for clients that understand it.
func contentDisposition(name string) string {
	fallback := strings.Map(func(r rune) rune {
		if r > 0x7e || r < 0x20 || r == '"' {
			return '_'
		}
		return r
	}, name)
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, fallback, url.PathEscape(name))
}
