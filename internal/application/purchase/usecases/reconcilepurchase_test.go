package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/famvest-inc/famvest/internal/domain/payment/valueobjects"
	"github.com/famvest-inc/famvest/internal/domain/purchase"
	"github.com/famvest-inc/famvest/internal/shared/apperrors"
)

func pendingIntent(t *testing.T) *purchase.Intent {
	t.Helper()
	intent, err := purchase.NewIntent("ZOMATO", "Zomato Ltd", 3, vo.NewMoney(15000, "INR"), "pay_rec1", "STOCK_TEST_1")
	require.NoError(t, err)
	return intent
}

func TestReconcilePurchase_NoPendingIntent(t *testing.T) {
	uc := NewReconcilePurchaseUseCase(&fakeGateway{}, &fakeIntentStore{}, testLogger())

	_, err := uc.Execute(context.Background())
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestReconcilePurchase_Settled(t *testing.T) {
	gw := &fakeGateway{}
	gw.verifyRecord = settledRecord(t, "pay_rec1", "STOCK_TEST_1", "TXN_REC", vo.PaymentStatusSuccess)
	intents := &fakeIntentStore{pending: pendingIntent(t)}
	uc := NewReconcilePurchaseUseCase(gw, intents, testLogger())

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Succeeded)
	assert.Equal(t, "investment confirmed", result.Message)
	assert.Equal(t, "TXN_REC", result.TransactionID)
	assert.InDelta(t, 450.0, result.Total, 0.0001)
	assert.Nil(t, intents.pending)
}

func TestReconcilePurchase_StillPending(t *testing.T) {
	gw := &fakeGateway{}
	gw.verifyRecord = settledRecord(t, "pay_rec1", "STOCK_TEST_1", "", vo.PaymentStatusPending)
	intents := &fakeIntentStore{pending: pendingIntent(t)}
	uc := NewReconcilePurchaseUseCase(gw, intents, testLogger())

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.False(t, result.Succeeded)
	assert.Equal(t, "payment pending", result.Message)
	// The draft survives for a later reconciliation attempt.
	assert.NotNil(t, intents.pending)
	assert.Zero(t, intents.clears)
}
