package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courier-billing/internal/core/apperr"
	"courier-billing/internal/core/logger"
	"courier-billing/internal/core/metrics"
	chargedomain "courier-billing/internal/features/charges/domain"
	"courier-billing/internal/features/invoices/domain"
	"courier-billing/internal/features/invoices/ports"

	"go.uber.org/zap"
)

// InvoiceServiceImpl implements ports.InvoiceService.
type InvoiceServiceImpl struct {
	charges   ports.ChargeReader
	customers ports.CustomerLookup
	renderer  ports.Renderer
	company   domain.Company
	page      domain.PageOptions
	loc       *time.Location
	logger    *zap.Logger
	// Now stamps the generation time printed on invoices.
	Now func() time.Time
}

// NewInvoiceService creates a new InvoiceServiceImpl.
func NewInvoiceService(
	charges ports.ChargeReader,
	customers ports.CustomerLookup,
	renderer ports.Renderer,
	company domain.Company,
	page domain.PageOptions,
	loc *time.Location,
) *InvoiceServiceImpl {
	if loc == nil {
		loc = time.UTC
	}
	return &InvoiceServiceImpl{
		charges:   charges,
		customers: customers,
		renderer:  renderer,
		company:   company,
		page:      page,
		loc:       loc,
		logger:    logger.Named("invoices"),
		Now:       time.Now,
	}
}

// Build projects a charge and its current customer into an invoice view.
func (s *InvoiceServiceImpl) Build(ctx context.Context, chargeID string) (*domain.View, error) {
	charge, err := s.charges.FindByID(ctx, chargeID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get charge: %w", err)
	}

	customer, err := s.customers.FindByID(ctx, charge.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get customer: %w", err)
	}

	view := domain.NewView(charge, customer, s.company, chargedomain.DefaultTariff, s.loc, s.Now())
	return &view, nil
}

// Render builds the invoice view and prints it to PDF.
func (s *InvoiceServiceImpl) Render(ctx context.Context, chargeID string) (*ports.Document, error) {
	view, err := s.Build(ctx, chargeID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	content, err := s.renderer.Render(ctx, *view, s.page)
	elapsed := metrics.DurationMillis(time.Since(start))

	if err != nil {
		metrics.InvoiceRenders.WithLabelValues("error").Inc()
		metrics.InvoiceRenderDuration.WithLabelValues("error").Observe(elapsed)
		s.logger.Error("Invoice render failed",
			zap.String("charge_id", chargeID),
			zap.Float64("duration_ms", elapsed),
			zap.Error(err),
		)
		if !errors.Is(err, apperr.ErrRender) {
			err = apperr.Render("Error al generar PDF", err)
		}
		return nil, err
	}

	metrics.InvoiceRenders.WithLabelValues("success").Inc()
	metrics.InvoiceRenderDuration.WithLabelValues("success").Observe(elapsed)
	s.logger.Info("Invoice rendered",
		zap.String("charge_id", chargeID),
		zap.Int("bytes", len(content)),
		zap.Float64("duration_ms", elapsed),
	)

	return &ports.Document{FileName: view.FileName, Content: content}, nil
}
