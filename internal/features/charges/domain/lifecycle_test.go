package domain

import (
	"testing"
	"time"

	"courier-billing/internal/core/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharge_Pay(t *testing.T) {
	at := time.Date(2024, time.March, 4, 15, 0, 0, 0, time.UTC)

	t.Run("Pending", func(t *testing.T) {
		c := &Charge{Status: StatusPending}
		require.NoError(t, c.Pay(PaymentTransfer, at))
		assert.Equal(t, StatusPaid, c.Status)
		assert.Equal(t, PaymentTransfer, c.PaymentMethod)
		require.NotNil(t, c.PaidAt)
		assert.True(t, at.Equal(*c.PaidAt))
	})

	t.Run("Already paid", func(t *testing.T) {
		c := &Charge{Status: StatusPaid}
		err := c.Pay(PaymentCash, at)
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("Cancelled", func(t *testing.T) {
		c := &Charge{Status: StatusCancelled}
		assert.ErrorIs(t, c.Pay(PaymentCash, at), apperr.ErrConflict)
		assert.Nil(t, c.PaidAt)
	})

	t.Run("Unknown method", func(t *testing.T) {
		c := &Charge{Status: StatusPending}
		assert.ErrorIs(t, c.Pay("cheque", at), apperr.ErrValidation)
		assert.Equal(t, StatusPending, c.Status)
	})
}

func TestCharge_Cancel(t *testing.T) {
	c := &Charge{Status: StatusPending}
	require.NoError(t, c.Cancel())
	assert.Equal(t, StatusCancelled, c.Status)

	assert.ErrorIs(t, c.Cancel(), apperr.ErrConflict)
}

func TestCharge_Transition(t *testing.T) {
	at := time.Now()

	tests := []struct {
		name    string
		from    Status
		to      Status
		method  PaymentMethod
		wantErr error
		want    Status
	}{
		{"Same status", StatusPaid, StatusPaid, "", nil, StatusPaid},
		{"Pending to paid", StatusPending, StatusPaid, PaymentCard, nil, StatusPaid},
		{"Pending to cancelled", StatusPending, StatusCancelled, "", nil, StatusCancelled},
		{"Paid back to pending", StatusPaid, StatusPending, "", apperr.ErrConflict, StatusPaid},
		{"Cancelled to paid", StatusCancelled, StatusPaid, PaymentCash, apperr.ErrConflict, StatusCancelled},
		{"Unknown status", StatusPending, "borrado", "", apperr.ErrValidation, StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Charge{Status: tt.from}
			err := c.Transition(tt.to, tt.method, at)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, c.Status)
		})
	}
}
