package adapters

import (
	"context"
	"testing"
	"time"

	"courier-billing/internal/core/apperr"
	"courier-billing/internal/core/database/dbtest"
	"courier-billing/internal/features/charges/domain"
	customeradapters "courier-billing/internal/features/customers/adapters"
	customerdomain "courier-billing/internal/features/customers/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhereClause(t *testing.T) {
	from := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	before := from.AddDate(0, 1, 0)
	customerID := uuid.NewString()

	tests := []struct {
		name      string
		filter    domain.Filter
		wantWhere string
		wantArgs  []any
		wantOK    bool
	}{
		{"Empty", domain.Filter{}, "", nil, true},
		{"Status", domain.Filter{Status: domain.StatusPaid}, " WHERE status = $1", []any{"pagado"}, true},
		{
			"All",
			domain.Filter{Status: domain.StatusPending, CustomerID: customerID, ChargedFrom: &from, ChargedBefore: &before},
			" WHERE status = $1 AND customer_id = $2 AND charged_at >= $3 AND charged_at < $4",
			[]any{"pendiente", customerID, from, before},
			true,
		},
		{"Malformed customer", domain.Filter{CustomerID: "nope"}, "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args, ok := whereClause(tt.filter)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestNullablePaymentMethod(t *testing.T) {
	assert.Nil(t, nullablePaymentMethod(""))
	require.NotNil(t, nullablePaymentMethod(domain.PaymentCard))
	assert.Equal(t, "tarjeta", *nullablePaymentMethod(domain.PaymentCard))
}

func TestMalformedIDs(t *testing.T) {
	repo := NewPostgresChargeRepository(nil)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, "abc")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, "Cobro no encontrado", apperr.Message(err))

	assert.ErrorIs(t, repo.Delete(ctx, "abc"), apperr.ErrNotFound)

	list, err := repo.Find(ctx, domain.Filter{CustomerID: "abc"}, domain.Page{Number: 1, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, list)

	n, err := repo.Count(ctx, domain.Filter{CustomerID: "abc"})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func newCharge(customer *customerdomain.Customer, status domain.Status, at time.Time, total float64) *domain.Charge {
	week, year := domain.BillingPeriod(at, time.UTC)
	return &domain.Charge{
		ID:             uuid.NewString(),
		CustomerID:     customer.ID,
		CustomerName:   customer.Name,
		ServiceType:    domain.ServiceMaritime,
		Trackings:      []string{"1Z999", "1Z998"},
		Description:    "Zapatos",
		Weight:         3,
		BillableWeight: 3,
		AppliedRate:    350,
		ShippingCost:   total,
		Total:          total,
		Status:         status,
		ChargedAt:      at,
		ExchangeRate:   24.5,
		Week:           week,
		Year:           year,
		CreatedAt:      at,
		UpdatedAt:      at,
	}
}

func TestPostgresChargeRepository(t *testing.T) {
	pool := dbtest.Pool(t)
	ctx := context.Background()
	repo := NewPostgresChargeRepository(pool)

	base := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	customer := customerdomain.NewCustomer(customerdomain.Registration{
		LockerCode: "A1",
		Name:       "Ana López",
		Email:      "a@b.com",
		Phone:      "9999",
		Identity:   "0501",
		Address:    "SPS",
	}, base)
	require.NoError(t, customeradapters.NewPostgresCustomerRepository(pool).Create(ctx, customer))

	older := newCharge(customer, domain.StatusPending, base.Add(-48*time.Hour), 350)
	newer := newCharge(customer, domain.StatusPending, base, 500)
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	t.Run("FindByID round trip", func(t *testing.T) {
		got, err := repo.FindByID(ctx, older.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"1Z999", "1Z998"}, got.Trackings)
		assert.Equal(t, domain.StatusPending, got.Status)
		assert.Empty(t, got.PaymentMethod)
		assert.Nil(t, got.PaidAt)
		assert.Nil(t, got.VolumetricWeight)
		assert.True(t, older.ChargedAt.Equal(got.ChargedAt))
	})

	t.Run("Find newest first with paging", func(t *testing.T) {
		page, err := repo.Find(ctx, domain.Filter{CustomerID: customer.ID}, domain.Page{Number: 1, Limit: 1})
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, newer.ID, page[0].ID)

		page, err = repo.Find(ctx, domain.Filter{CustomerID: customer.ID}, domain.Page{Number: 2, Limit: 1})
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, older.ID, page[0].ID)
	})

	t.Run("Update payment", func(t *testing.T) {
		require.NoError(t, newer.Pay(domain.PaymentCash, base))
		require.NoError(t, repo.Update(ctx, newer))

		got, err := repo.FindByID(ctx, newer.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPaid, got.Status)
		assert.Equal(t, domain.PaymentCash, got.PaymentMethod)
		require.NotNil(t, got.PaidAt)

		n, err := repo.Count(ctx, domain.Filter{Status: domain.StatusPending})
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("Date window", func(t *testing.T) {
		from := base.Add(-time.Hour)
		n, err := repo.Count(ctx, domain.Filter{ChargedFrom: &from})
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, older.ID))
		assert.ErrorIs(t, repo.Delete(ctx, older.ID), apperr.ErrNotFound)

		_, err := repo.FindByID(ctx, older.ID)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("Update missing", func(t *testing.T) {
		ghost := newCharge(customer, domain.StatusPending, base, 1)
		assert.ErrorIs(t, repo.Update(ctx, ghost), apperr.ErrNotFound)
	})
}
