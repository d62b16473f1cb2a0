package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courier-billing/internal/core/apperr"
	"courier-billing/internal/core/logger"
	"courier-billing/internal/core/metrics"
	"courier-billing/internal/core/validation"
	"courier-billing/internal/features/charges/domain"
	"courier-billing/internal/features/charges/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChargeServiceImpl implements ports.ChargeService.
type ChargeServiceImpl struct {
	repo      ports.ChargeRepository
	customers ports.CustomerLookup
	builder   *Builder
	stats     ports.StatsInvalidator
	logger    *zap.Logger
	// Now is the clock used for default charge and payment dates.
	Now func() time.Time
}

// NewChargeService creates a new ChargeServiceImpl deriving billing periods in loc.
func NewChargeService(repo ports.ChargeRepository, customers ports.CustomerLookup, loc *time.Location) *ChargeServiceImpl {
	return &ChargeServiceImpl{
		repo:      repo,
		customers: customers,
		builder:   NewBuilder(loc),
		logger:    logger.Named("charges"),
		Now:       time.Now,
	}
}

// WithStats registers the dashboard cache to invalidate after every write.
func (s *ChargeServiceImpl) WithStats(stats ports.StatsInvalidator) *ChargeServiceImpl {
	s.stats = stats
	return s
}

// Create prices a draft and stores it as a pending charge.
// The customer's current name is copied onto the charge.
func (s *ChargeServiceImpl) Create(ctx context.Context, d domain.Draft) (*domain.Charge, error) {
	d.Normalize()
	now := s.Now()
	charge := &domain.Charge{
		ID:        uuid.NewString(),
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.builder.Apply(charge, d, now); err != nil {
		return nil, err
	}

	customer, err := s.customers.FindByID(ctx, d.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to resolve customer: %w", err)
	}
	charge.CustomerID = customer.ID
	charge.CustomerName = customer.Name

	if err := s.repo.Create(ctx, charge); err != nil {
		return nil, fmt.Errorf("service: failed to create charge: %w", err)
	}
	s.invalidateStats(ctx)

	metrics.ChargesCreated.WithLabelValues(string(charge.ServiceType)).Inc()
	s.logger.Info("Charge created",
		zap.String("charge_id", charge.ID),
		zap.String("customer_id", charge.CustomerID),
		zap.String("service_type", string(charge.ServiceType)),
		zap.Float64("total", charge.Total),
	)

	return charge, nil
}

// Get returns a charge with its live customer.
func (s *ChargeServiceImpl) Get(ctx context.Context, id string) (*ports.Detail, error) {
	charge, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get charge: %w", err)
	}

	customer, err := s.customers.FindByID(ctx, charge.CustomerID)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return nil, fmt.Errorf("service: failed to resolve customer: %w", err)
	}

	return &ports.Detail{Charge: charge, Customer: customer}, nil
}

// List returns one page of charges and the number of charges matching f.
func (s *ChargeServiceImpl) List(ctx context.Context, f domain.Filter, p domain.Page) ([]domain.Charge, int, error) {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Limit < 1 {
		p.Limit = domain.DefaultPageLimit
	}

	charges, err := s.repo.Find(ctx, f, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service: failed to list charges: %w", err)
	}

	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("service: failed to count charges: %w", err)
	}

	return charges, total, nil
}

// Update re-prices a charge from the patched fields and applies any status change.
// The customer name snapshot is kept as it was.
func (s *ChargeServiceImpl) Update(ctx context.Context, id string, p domain.Patch) (*domain.Charge, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get charge: %w", err)
	}

	now := s.Now()
	updated := *existing

	draft := existing.Draft()
	p.ApplyTo(&draft)
	if err := s.builder.Apply(&updated, draft, now); err != nil {
		return nil, err
	}

	if err := s.applyPayment(&updated, p, now); err != nil {
		return nil, err
	}

	updated.UpdatedAt = now
	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("service: failed to update charge: %w", err)
	}
	s.invalidateStats(ctx)

	s.logger.Info("Charge updated",
		zap.String("charge_id", updated.ID),
		zap.String("status", string(updated.Status)),
	)

	return &updated, nil
}

// MarkPaid settles a pending charge.
func (s *ChargeServiceImpl) MarkPaid(ctx context.Context, id string, p domain.Payment) (*domain.Charge, error) {
	if err := validation.Struct(p); err != nil {
		return nil, err
	}

	charge, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get charge: %w", err)
	}

	now := s.Now()
	paidAt := now
	if p.PaidAt != nil {
		paidAt = *p.PaidAt
	}
	if err := charge.Pay(p.Method, paidAt); err != nil {
		return nil, err
	}

	charge.UpdatedAt = now
	if err := s.repo.Update(ctx, charge); err != nil {
		return nil, fmt.Errorf("service: failed to update charge: %w", err)
	}
	s.invalidateStats(ctx)

	s.logger.Info("Charge paid",
		zap.String("charge_id", charge.ID),
		zap.String("payment_method", string(charge.PaymentMethod)),
	)

	return charge, nil
}

// Cancel voids a pending charge.
func (s *ChargeServiceImpl) Cancel(ctx context.Context, id string) (*domain.Charge, error) {
	charge, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get charge: %w", err)
	}

	if err := charge.Cancel(); err != nil {
		return nil, err
	}

	charge.UpdatedAt = s.Now()
	if err := s.repo.Update(ctx, charge); err != nil {
		return nil, fmt.Errorf("service: failed to update charge: %w", err)
	}
	s.invalidateStats(ctx)

	s.logger.Info("Charge cancelled", zap.String("charge_id", charge.ID))

	return charge, nil
}

// Delete removes a charge permanently.
func (s *ChargeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete charge: %w", err)
	}
	s.invalidateStats(ctx)

	s.logger.Info("Charge deleted", zap.String("charge_id", id))
	return nil
}

// applyPayment applies the status and payment fields of p onto c.
// Payment method and date are only kept on paid charges.
func (s *ChargeServiceImpl) applyPayment(c *domain.Charge, p domain.Patch, now time.Time) error {
	method := c.PaymentMethod
	if p.PaymentMethod != nil {
		method = *p.PaymentMethod
		if !method.Valid() {
			return apperr.Validationf("Método de pago no válido: %s", method)
		}
	}

	if p.Status != nil && *p.Status != c.Status {
		paidAt := now
		if p.PaidAt != nil {
			paidAt = *p.PaidAt
		}
		return c.Transition(*p.Status, method, paidAt)
	}

	if c.Status != domain.StatusPaid {
		return nil
	}

	// Corrections to an already paid charge.
	c.PaymentMethod = method
	if p.PaidAt != nil {
		c.PaidAt = p.PaidAt
	}
	return nil
}

func (s *ChargeServiceImpl) invalidateStats(ctx context.Context) {
	if s.stats != nil {
		s.stats.Invalidate(ctx)
	}
}
