package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/famvest-inc/famvest/internal/domain/payment/valueobjects"
	"github.com/famvest-inc/famvest/internal/domain/purchase"
)

func TestIntentStore_RoundTrip(t *testing.T) {
	store := NewIntentStore(newTestKV(t))
	ctx := context.Background()

	intent, err := purchase.NewIntent("ZOMATO", "Zomato Ltd", 3, vo.NewMoney(15000, "INR"), "pay_is1", "STOCK_1")
	require.NoError(t, err)

	require.NoError(t, store.SavePending(ctx, intent))

	loaded, err := store.GetPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ZOMATO", loaded.Symbol())
	assert.Equal(t, int64(3), loaded.Quantity())
	assert.Equal(t, int64(45000), loaded.Total().AmountInPaise())
	assert.Equal(t, "pay_is1", loaded.PaymentID())
	assert.Equal(t, "STOCK_1", loaded.OrderID())
	assert.Equal(t, intent.CapturedAt().Unix(), loaded.CapturedAt().Unix())
}

func TestIntentStore_NoPending(t *testing.T) {
	store := NewIntentStore(newTestKV(t))

	_, err := store.GetPending(context.Background())
	assert.ErrorIs(t, err, purchase.ErrNoPendingIntent)
}

func TestIntentStore_SaveOverwritesAndClearRemoves(t *testing.T) {
	store := NewIntentStore(newTestKV(t))
	ctx := context.Background()

	first, err := purchase.NewIntent("ZOMATO", "Zomato Ltd", 1, vo.NewMoney(15000, "INR"), "pay_a", "STOCK_A")
	require.NoError(t, err)
	second, err := purchase.NewIntent("IRCTC", "IRCTC Ltd", 2, vo.NewMoney(84520, "INR"), "pay_b", "STOCK_B")
	require.NoError(t, err)

	require.NoError(t, store.SavePending(ctx, first))
	require.NoError(t, store.SavePending(ctx, second))

	loaded, err := store.GetPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, "IRCTC", loaded.Symbol())

	require.NoError(t, store.ClearPending(ctx))
	_, err = store.GetPending(ctx)
	assert.ErrorIs(t, err, purchase.ErrNoPendingIntent)
}
