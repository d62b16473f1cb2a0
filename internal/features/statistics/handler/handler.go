package handler

import (
	"net/http"

	"courier-billing/internal/core/server"
	"courier-billing/internal/features/statistics/ports"

	"github.com/gofiber/fiber/v2"
)

// StatisticsHandler serves the dashboard statistics.
type StatisticsHandler struct {
	service ports.StatisticsService
}

// NewStatisticsHandler creates a new StatisticsHandler.
func NewStatisticsHandler(service ports.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{service: service}
}

// RegisterRoutes mounts the statistics routes on r (the /api/cobros group).
func (h *StatisticsHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/estadisticas/dashboard", h.Dashboard)
}

// Dashboard handles GET /api/cobros/estadisticas/dashboard.
// @Summary Dashboard statistics
// @Description Charge counts by status, paid revenue of the current month and totals per service type.
// @Tags Estadisticas
// @Produce json
// @Success 200 {object} server.Response{data=domain.Dashboard}
// @Failure 500 {object} server.Response
// @Router /api/cobros/estadisticas/dashboard [get]
func (h *StatisticsHandler) Dashboard(c *fiber.Ctx) error {
	dashboard, err := h.service.Dashboard(c.UserContext())
	if err != nil {
		return server.Fail(c, err)
	}

	return server.OK(c, http.StatusOK, dashboard, "")
}
