package adapters

import (
	"context"
	"time"

	"courier-billing/internal/core/apperr"
	chargedomain "courier-billing/internal/features/charges/domain"
	"courier-billing/internal/features/statistics/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresChargeStats implements ports.ChargeStats over the charges table.
type PostgresChargeStats struct {
	pool *pgxpool.Pool
}

// NewPostgresChargeStats creates a new PostgresChargeStats.
func NewPostgresChargeStats(pool *pgxpool.Pool) *PostgresChargeStats {
	return &PostgresChargeStats{pool: pool}
}

// Counts returns the number of charges overall, pending and paid.
func (r *PostgresChargeStats) Counts(ctx context.Context) (domain.Counts, error) {
	const q = `
SELECT COUNT(*),
       COUNT(*) FILTER (WHERE status = $1),
       COUNT(*) FILTER (WHERE status = $2)
FROM charges`

	var c domain.Counts
	err := r.pool.QueryRow(ctx, q, string(chargedomain.StatusPending), string(chargedomain.StatusPaid)).
		Scan(&c.Total, &c.Pending, &c.Paid)
	if err != nil {
		return domain.Counts{}, apperr.Repository("Error al obtener estadísticas", err)
	}
	return c, nil
}

// PaidRevenue sums the totals of paid charges dated in [from, before).
func (r *PostgresChargeStats) PaidRevenue(ctx context.Context, from, before time.Time) (float64, error) {
	const q = `
SELECT COALESCE(SUM(total), 0)
FROM charges
WHERE status = $1 AND charged_at >= $2 AND charged_at < $3`

	var revenue float64
	if err := r.pool.QueryRow(ctx, q, string(chargedomain.StatusPaid), from, before).Scan(&revenue); err != nil {
		return 0, apperr.Repository("Error al obtener estadísticas", err)
	}
	return revenue, nil
}

// ByService groups every charge by service type.
func (r *PostgresChargeStats) ByService(ctx context.Context) ([]domain.ServiceBucket, error) {
	const q = `
SELECT service_type, COUNT(*), COALESCE(SUM(total), 0)
FROM charges
GROUP BY service_type
ORDER BY service_type`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, apperr.Repository("Error al obtener estadísticas", err)
	}
	defer rows.Close()

	buckets := make([]domain.ServiceBucket, 0, 4)
	for rows.Next() {
		var (
			b           domain.ServiceBucket
			serviceType string
		)
		if err := rows.Scan(&serviceType, &b.Count, &b.Total); err != nil {
			return nil, apperr.Repository("Error al obtener estadísticas", err)
		}
		b.ServiceType = chargedomain.ServiceType(serviceType)
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Repository("Error al obtener estadísticas", err)
	}
	return buckets, nil
}
