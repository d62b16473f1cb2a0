package ports

import (
	"context"
	"time"

	"courier-billing/internal/features/statistics/domain"
)

// StatisticsService defines the primary port for dashboard statistics.
type StatisticsService interface {
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
}

// ChargeStats defines the aggregate queries over stored charges.
type ChargeStats interface {
	Counts(ctx context.Context) (domain.Counts, error)
	// PaidRevenue sums the totals of paid charges dated in [from, before).
	PaidRevenue(ctx context.Context, from, before time.Time) (float64, error)
	ByService(ctx context.Context) ([]domain.ServiceBucket, error)
}
