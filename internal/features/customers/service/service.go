package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"courier-billing/internal/core/apperr"
	"courier-billing/internal/core/logger"
	"courier-billing/internal/core/validation"
	chargedomain "courier-billing/internal/features/charges/domain"
	"courier-billing/internal/features/customers/domain"
	"courier-billing/internal/features/customers/ports"

	"go.uber.org/zap"
)

// SearchLimit caps name searches.
const SearchLimit = 10

// CustomerServiceImpl implements ports.CustomerService.
type CustomerServiceImpl struct {
	repo    ports.CustomerRepository
	charges ports.ChargeLedger
	logger  *zap.Logger
	// Now is the clock used for registration timestamps.
	Now func() time.Time
}

// NewCustomerService creates a new CustomerServiceImpl.
func NewCustomerService(repo ports.CustomerRepository, charges ports.ChargeLedger) *CustomerServiceImpl {
	return &CustomerServiceImpl{
		repo:    repo,
		charges: charges,
		logger:  logger.Named("customers"),
		Now:     time.Now,
	}
}

// Register validates and stores a new customer.
// Unique attributes are pre-checked in order locker code, email, identity;
// the store's unique indexes settle concurrent registrations.
func (s *CustomerServiceImpl) Register(ctx context.Context, r domain.Registration) (*domain.Customer, error) {
	customer := domain.NewCustomer(r, s.Now())

	if err := validation.Struct(customer); err != nil {
		return nil, err
	}

	if err := s.checkUnique(ctx, customer, nil); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("service: failed to create customer: %w", err)
	}

	s.logger.Info("Customer registered",
		zap.String("customer_id", customer.ID),
		zap.String("locker_code", customer.LockerCode),
	)

	return customer, nil
}

// Get returns a customer with its most recent charges.
func (s *CustomerServiceImpl) Get(ctx context.Context, id string) (*domain.Detail, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get customer: %w", err)
	}

	recent, err := s.charges.Find(ctx,
		chargedomain.Filter{CustomerID: customer.ID},
		chargedomain.Page{Number: 1, Limit: domain.RecentChargesLimit},
	)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get recent charges: %w", err)
	}

	return &domain.Detail{Customer: customer, RecentCharges: recent}, nil
}

// List returns customers, newest registration first.
func (s *CustomerServiceImpl) List(ctx context.Context, f ports.ListFilter) ([]domain.Customer, error) {
	f.Search = strings.TrimSpace(f.Search)

	customers, err := s.repo.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list customers: %w", err)
	}
	return customers, nil
}

// SearchByName returns up to SearchLimit active customers whose name contains term.
func (s *CustomerServiceImpl) SearchByName(ctx context.Context, term string) ([]domain.Customer, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, apperr.Validation("El término de búsqueda es requerido")
	}

	active := true
	customers, err := s.repo.Find(ctx, ports.ListFilter{Active: &active, Name: term, Limit: SearchLimit})
	if err != nil {
		return nil, fmt.Errorf("service: failed to search customers: %w", err)
	}
	return customers, nil
}

// Update applies a patch. Uniqueness is re-checked only for attributes that change.
func (s *CustomerServiceImpl) Update(ctx context.Context, id string, p domain.Patch) (*domain.Customer, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get customer: %w", err)
	}

	updated := *current
	updated.Apply(p)
	updated.UpdatedAt = s.Now()

	if err := validation.Struct(&updated); err != nil {
		return nil, err
	}

	if err := s.checkUnique(ctx, &updated, current); err != nil {
		return nil, err
	}

	if current.Active && !updated.Active {
		if err := s.checkNoPending(ctx, current.ID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("service: failed to update customer: %w", err)
	}

	return &updated, nil
}

// Deactivate marks a customer inactive. Customers with pending charges are refused.
func (s *CustomerServiceImpl) Deactivate(ctx context.Context, id string) error {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service: failed to get customer: %w", err)
	}

	if err := s.checkNoPending(ctx, customer.ID); err != nil {
		return err
	}

	customer.Active = false
	customer.UpdatedAt = s.Now()

	if err := s.repo.Update(ctx, customer); err != nil {
		return fmt.Errorf("service: failed to deactivate customer: %w", err)
	}

	s.logger.Info("Customer deactivated", zap.String("customer_id", customer.ID))
	return nil
}

// checkNoPending refuses deactivation while the customer has pending charges.
func (s *CustomerServiceImpl) checkNoPending(ctx context.Context, customerID string) error {
	pending, err := s.charges.Count(ctx, chargedomain.Filter{
		CustomerID: customerID,
		Status:     chargedomain.StatusPending,
	})
	if err != nil {
		return fmt.Errorf("service: failed to count pending charges: %w", err)
	}

	if pending > 0 {
		return apperr.Conflictf("No se puede desactivar el cliente. Tiene %d cobros pendientes", pending)
	}
	return nil
}

// checkUnique rejects values already held by another customer. With a non-nil
// previous state only changed attributes are checked.
func (s *CustomerServiceImpl) checkUnique(ctx context.Context, c, previous *domain.Customer) error {
	for _, field := range domain.UniqueFields {
		value := field.Value(c)
		if previous != nil && value == field.Value(previous) {
			continue
		}

		exists, err := s.repo.Exists(ctx, field, value, c.ID)
		if err != nil {
			return fmt.Errorf("service: failed to check %s: %w", field, err)
		}
		if exists {
			return apperr.Validation(field.DuplicateMessage())
		}
	}
	return nil
}
