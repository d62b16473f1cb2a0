package adapters

import (
	"context"
	"fmt"
	"strings"

	"courier-billing/internal/core/apperr"
	"courier-billing/internal/core/database"
	"courier-billing/internal/features/customers/domain"
	"courier-billing/internal/features/customers/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const customerColumns = `id::text, locker_code, name, email, phone, identity, address,
       registered_at, active, outstanding_balance, created_at, updated_at`

var uniqueColumns = map[domain.UniqueField]string{
	domain.FieldLockerCode: "locker_code",
	domain.FieldEmail:      "email",
	domain.FieldIdentity:   "identity",
}

var uniqueConstraints = map[string]domain.UniqueField{
	"customers_locker_code_key": domain.FieldLockerCode,
	"customers_email_key":       domain.FieldEmail,
	"customers_identity_key":    domain.FieldIdentity,
}

// PostgresCustomerRepository implements ports.CustomerRepository on Postgres.
type PostgresCustomerRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCustomerRepository creates a new PostgresCustomerRepository.
func NewPostgresCustomerRepository(pool *pgxpool.Pool) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{pool: pool}
}

// FindByID loads a customer. Malformed ids are reported as not found.
func (r *PostgresCustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errNotFound()
	}

	const q = `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	c, err := scanCustomer(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, errNotFound()
		}
		return nil, apperr.Repository("Error al obtener cliente", err)
	}
	return c, nil
}

// Exists reports whether a customer other than excludeID holds value for field.
func (r *PostgresCustomerRepository) Exists(ctx context.Context, field domain.UniqueField, value, excludeID string) (bool, error) {
	column, ok := uniqueColumns[field]
	if !ok {
		return false, fmt.Errorf("unknown unique field %q", field)
	}

	q := `SELECT EXISTS (SELECT 1 FROM customers WHERE ` + column + ` = $1 AND id::text <> $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, q, value, excludeID).Scan(&exists); err != nil {
		return false, apperr.Repository("Error al verificar cliente", err)
	}
	return exists, nil
}

// Find lists customers, newest registration first.
func (r *PostgresCustomerRepository) Find(ctx context.Context, f ports.ListFilter) ([]domain.Customer, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Active != nil {
		where = append(where, "active = "+arg(*f.Active))
	}
	if f.Search != "" {
		p := arg(likePattern(f.Search))
		where = append(where, fmt.Sprintf(
			"(name ILIKE %[1]s OR locker_code ILIKE %[1]s OR email ILIKE %[1]s OR identity ILIKE %[1]s)", p))
	}
	if f.Name != "" {
		where = append(where, "name ILIKE "+arg(likePattern(f.Name)))
	}

	q := `SELECT ` + customerColumns + ` FROM customers`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY registered_at DESC`
	if f.Limit > 0 {
		q += ` LIMIT ` + arg(f.Limit)
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, apperr.Repository("Error al obtener clientes", err)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, apperr.Repository("Error al obtener clientes", err)
		}
		customers = append(customers, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Repository("Error al obtener clientes", err)
	}
	return customers, nil
}

// Create inserts a customer.
func (r *PostgresCustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	const q = `
INSERT INTO customers (
    id, locker_code, name, email, phone, identity, address,
    registered_at, active, outstanding_balance, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, q,
		c.ID, c.LockerCode, c.Name, c.Email, c.Phone, c.Identity, c.Address,
		c.RegisteredAt, c.Active, c.OutstandingBalance, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("Error al crear cliente", err)
	}
	return nil
}

// Update overwrites every mutable column of a customer.
func (r *PostgresCustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	const q = `
UPDATE customers SET
    locker_code = $2, name = $3, email = $4, phone = $5, identity = $6, address = $7,
    active = $8, outstanding_balance = $9, updated_at = $10
WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q,
		c.ID, c.LockerCode, c.Name, c.Email, c.Phone, c.Identity, c.Address,
		c.Active, c.OutstandingBalance, c.UpdatedAt,
	)
	if err != nil {
		return mapWriteError("Error al actualizar cliente", err)
	}
	if tag.RowsAffected() == 0 {
		return errNotFound()
	}
	return nil
}

// Ping checks connectivity for the health endpoint.
func (r *PostgresCustomerRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.ID,
		&c.LockerCode,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Identity,
		&c.Address,
		&c.RegisteredAt,
		&c.Active,
		&c.OutstandingBalance,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func mapWriteError(msg string, err error) error {
	if constraint, ok := database.UniqueViolation(err); ok {
		if field, known := uniqueConstraints[constraint]; known {
			return apperr.Validation(field.DuplicateMessage())
		}
		return apperr.Validation("Ya existe un cliente con esos datos")
	}
	return apperr.Repository(msg, err)
}

func errNotFound() error {
	return apperr.NotFound("Cliente no encontrado")
}

// likePattern escapes LIKE metacharacters and wraps s for a substring match.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
