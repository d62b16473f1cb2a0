package adapters

import (
	"context"
	"fmt"
	"strings"

	"courier-billing/internal/core/apperr"
	"courier-billing/internal/core/database"
	"courier-billing/internal/features/charges/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const chargeColumns = `id::text, customer_id::text, customer_name, service_type, trackings, description,
       weight, volumetric_weight, billable_weight, applied_rate, shipping_cost, discount, total,
       status, payment_method, charged_at, paid_at, notes, exchange_rate, week, year,
       created_at, updated_at`

// PostgresChargeRepository implements ports.ChargeRepository on Postgres.
// It also serves the customer feature's charge ledger.
type PostgresChargeRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresChargeRepository creates a new PostgresChargeRepository.
func NewPostgresChargeRepository(pool *pgxpool.Pool) *PostgresChargeRepository {
	return &PostgresChargeRepository{pool: pool}
}

// FindByID loads a charge. Malformed ids are reported as not found.
func (r *PostgresChargeRepository) FindByID(ctx context.Context, id string) (*domain.Charge, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errNotFound()
	}

	const q = `SELECT ` + chargeColumns + ` FROM charges WHERE id = $1`

	c, err := scanCharge(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, errNotFound()
		}
		return nil, apperr.Repository("Error al obtener cobro", err)
	}
	return c, nil
}

// Find returns one page of charges, newest charge date first.
// A zero page limit returns every match.
func (r *PostgresChargeRepository) Find(ctx context.Context, f domain.Filter, p domain.Page) ([]domain.Charge, error) {
	charges := make([]domain.Charge, 0)

	where, args, ok := whereClause(f)
	if !ok {
		return charges, nil
	}

	q := `SELECT ` + chargeColumns + ` FROM charges` + where + ` ORDER BY charged_at DESC, created_at DESC`
	if p.Limit > 0 {
		args = append(args, p.Limit, p.Offset())
		q += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, apperr.Repository("Error al obtener cobros", err)
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanCharge(rows)
		if err != nil {
			return nil, apperr.Repository("Error al obtener cobros", err)
		}
		charges = append(charges, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Repository("Error al obtener cobros", err)
	}
	return charges, nil
}

// Count returns the number of charges matching f.
func (r *PostgresChargeRepository) Count(ctx context.Context, f domain.Filter) (int, error) {
	where, args, ok := whereClause(f)
	if !ok {
		return 0, nil
	}

	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM charges`+where, args...).Scan(&n); err != nil {
		return 0, apperr.Repository("Error al contar cobros", err)
	}
	return n, nil
}

// Create inserts a charge.
func (r *PostgresChargeRepository) Create(ctx context.Context, c *domain.Charge) error {
	const q = `
INSERT INTO charges (
    id, customer_id, customer_name, service_type, trackings, description,
    weight, volumetric_weight, billable_weight, applied_rate, shipping_cost, discount, total,
    status, payment_method, charged_at, paid_at, notes, exchange_rate, week, year,
    created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`

	_, err := r.pool.Exec(ctx, q,
		c.ID, c.CustomerID, c.CustomerName, string(c.ServiceType), c.Trackings, c.Description,
		c.Weight, c.VolumetricWeight, c.BillableWeight, c.AppliedRate, c.ShippingCost, c.Discount, c.Total,
		string(c.Status), nullablePaymentMethod(c.PaymentMethod), c.ChargedAt, c.PaidAt, c.Notes, c.ExchangeRate, c.Week, c.Year,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return apperr.Repository("Error al crear cobro", err)
	}
	return nil
}

// Update overwrites every mutable column of a charge. The customer columns are fixed at creation.
func (r *PostgresChargeRepository) Update(ctx context.Context, c *domain.Charge) error {
	const q = `
UPDATE charges SET
    service_type = $2, trackings = $3, description = $4,
    weight = $5, volumetric_weight = $6, billable_weight = $7, applied_rate = $8,
    shipping_cost = $9, discount = $10, total = $11,
    status = $12, payment_method = $13, charged_at = $14, paid_at = $15, notes = $16,
    exchange_rate = $17, week = $18, year = $19, updated_at = $20
WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q,
		c.ID, string(c.ServiceType), c.Trackings, c.Description,
		c.Weight, c.VolumetricWeight, c.BillableWeight, c.AppliedRate,
		c.ShippingCost, c.Discount, c.Total,
		string(c.Status), nullablePaymentMethod(c.PaymentMethod), c.ChargedAt, c.PaidAt, c.Notes,
		c.ExchangeRate, c.Week, c.Year, c.UpdatedAt,
	)
	if err != nil {
		return apperr.Repository("Error al actualizar cobro", err)
	}
	if tag.RowsAffected() == 0 {
		return errNotFound()
	}
	return nil
}

// Delete removes a charge.
func (r *PostgresChargeRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errNotFound()
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM charges WHERE id = $1`, id)
	if err != nil {
		return apperr.Repository("Error al eliminar cobro", err)
	}
	if tag.RowsAffected() == 0 {
		return errNotFound()
	}
	return nil
}

// whereClause renders f as a WHERE clause. ok is false when f cannot match any row.
func whereClause(f domain.Filter) (string, []any, bool) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Status != "" {
		conds = append(conds, "status = "+arg(string(f.Status)))
	}
	if f.CustomerID != "" {
		if _, err := uuid.Parse(f.CustomerID); err != nil {
			return "", nil, false
		}
		conds = append(conds, "customer_id = "+arg(f.CustomerID))
	}
	if f.ChargedFrom != nil {
		conds = append(conds, "charged_at >= "+arg(*f.ChargedFrom))
	}
	if f.ChargedBefore != nil {
		conds = append(conds, "charged_at < "+arg(*f.ChargedBefore))
	}

	if len(conds) == 0 {
		return "", nil, true
	}
	return ` WHERE ` + strings.Join(conds, " AND "), args, true
}

func scanCharge(row pgx.Row) (*domain.Charge, error) {
	var (
		c             domain.Charge
		serviceType   string
		status        string
		paymentMethod *string
	)
	err := row.Scan(
		&c.ID,
		&c.CustomerID,
		&c.CustomerName,
		&serviceType,
		&c.Trackings,
		&c.Description,
		&c.Weight,
		&c.VolumetricWeight,
		&c.BillableWeight,
		&c.AppliedRate,
		&c.ShippingCost,
		&c.Discount,
		&c.Total,
		&status,
		&paymentMethod,
		&c.ChargedAt,
		&c.PaidAt,
		&c.Notes,
		&c.ExchangeRate,
		&c.Week,
		&c.Year,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.ServiceType = domain.ServiceType(serviceType)
	c.Status = domain.Status(status)
	if paymentMethod != nil {
		c.PaymentMethod = domain.PaymentMethod(*paymentMethod)
	}
	return &c, nil
}

func nullablePaymentMethod(m domain.PaymentMethod) *string {
	if m == "" {
		return nil
	}
	s := string(m)
	return &s
}

func errNotFound() error {
	return apperr.NotFound("Cobro no encontrado")
}
