package server

import (
	"math"
	"net/http"

	"courier-billing/internal/core/apperr"
	"courier-billing/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Response is the envelope returned by every API endpoint.
type Response struct {
	// Success is false whenever Error is set.
	Success bool `json:"success"`
	// Data holds the payload of successful calls.
	Data any `json:"data,omitempty"`
	// Message is an optional human-readable confirmation.
	Message string `json:"message,omitempty"`
	// Error is the human-readable failure description.
	Error string `json:"error,omitempty"`
	// Count is set by list endpoints that return everything at once.
	Count *int `json:"count,omitempty"`
	// Pagination is set by paged list endpoints.
	Pagination *Pagination `json:"pagination,omitempty"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id,omitempty"`
}

// Pagination describes one page of a list result.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// NewPagination computes the page count for total items split by limit.
func NewPagination(total, page, limit int) *Pagination {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return &Pagination{Total: total, Page: page, Limit: limit, Pages: pages}
}

// RayID returns the request id assigned by the requestid middleware.
func RayID(c *fiber.Ctx) string {
	rayID, ok := c.Locals("requestid").(string)
	if !ok || rayID == "" {
		return "unknown"
	}
	return rayID
}

// OK writes a successful envelope.
func OK(c *fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// List writes a successful envelope with an item count.
func List(c *fiber.Ctx, data any, count int) error {
	return c.Status(http.StatusOK).JSON(Response{
		Success: true,
		Data:    data,
		Count:   &count,
	})
}

// Paged writes a successful envelope with pagination.
func Paged(c *fiber.Ctx, data any, p *Pagination) error {
	return c.Status(http.StatusOK).JSON(Response{
		Success:    true,
		Data:       data,
		Pagination: p,
	})
}

// Fail maps err to its HTTP status and writes an error envelope.
// Server-side failures are logged with the request id.
func Fail(c *fiber.Ctx, err error) error {
	rayID := RayID(c)
	status := apperr.HTTPStatus(err)

	if status >= http.StatusInternalServerError {
		logger.Get().Error("Request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
	} else {
		logger.Get().Debug("Request rejected",
			zap.String("path", c.Path()),
			zap.String("ray_id", rayID),
			zap.Int("status", status),
			zap.Error(err),
		)
	}

	return c.Status(status).JSON(Response{
		Success: false,
		Error:   apperr.Message(err),
		RayID:   rayID,
	})
}

// BadRequest writes a 400 envelope with msg.
func BadRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(Response{
		Success: false,
		Error:   msg,
		RayID:   RayID(c),
	})
}
