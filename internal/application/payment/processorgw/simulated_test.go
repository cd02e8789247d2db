package processorgw

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulated_CreatePayment(t *testing.T) {
	sim := NewSimulated("https://api.fampay.in/v1/", 0)

	resp, err := sim.CreatePayment(context.Background(), CreatePaymentRequest{
		PaymentID: "pay_abc",
		OrderID:   "ORD_1",
		Amount:    45000,
		Currency:  "INR",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://api.fampay.in/v1/payment/process/pay_abc", resp.PaymentURL)

	_, err = sim.CreatePayment(context.Background(), CreatePaymentRequest{})
	assert.ErrorContains(t, err, "payment ID is required")
}

func TestSimulated_QueryStatus(t *testing.T) {
	now := time.Now()
	clock := now
	sim := NewSimulated("https://api.fampay.in/v1", 2*time.Second,
		WithClock(func() time.Time { return clock }))

	_, err := sim.CreatePayment(context.Background(), CreatePaymentRequest{PaymentID: "pay_abc"})
	require.NoError(t, err)

	t.Run("unknown payment", func(t *testing.T) {
		_, err := sim.QueryStatus(context.Background(), "pay_nope")
		assert.ErrorContains(t, err, "unknown payment")
	})

	t.Run("pending before the settlement delay", func(t *testing.T) {
		clock = now.Add(time.Second)
		status, err := sim.QueryStatus(context.Background(), "pay_abc")
		require.NoError(t, err)
		assert.Equal(t, ExternalStatusPending, status.Status)
		assert.Empty(t, status.TransactionID)
	})

	t.Run("completed after the settlement delay", func(t *testing.T) {
		clock = now.Add(3 * time.Second)
		status, err := sim.QueryStatus(context.Background(), "pay_abc")
		require.NoError(t, err)
		assert.Equal(t, ExternalStatusCompleted, status.Status)
		assert.NotEmpty(t, status.TransactionID)
	})
}

func TestSimulated_WithOutcome(t *testing.T) {
	sim := NewSimulated("https://api.fampay.in/v1", 0, WithOutcome(ExternalStatusError))

	_, err := sim.CreatePayment(context.Background(), CreatePaymentRequest{PaymentID: "pay_err"})
	require.NoError(t, err)

	status, err := sim.QueryStatus(context.Background(), "pay_err")
	require.NoError(t, err)
	assert.Equal(t, ExternalStatusError, status.Status)
	assert.Empty(t, status.TransactionID)
}
