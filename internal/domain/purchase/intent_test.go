package purchase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/famvest-inc/famvest/internal/domain/payment/valueobjects"
)

func TestNewIntent(t *testing.T) {
	price := vo.NewMoney(15000, "INR")

	t.Run("computes total from quantity and unit price", func(t *testing.T) {
		intent, err := NewIntent("ZOMATO", "Zomato Ltd", 3, price, "pay_1", "STOCK_1")
		require.NoError(t, err)

		assert.Equal(t, int64(3), intent.Quantity())
		assert.Equal(t, int64(45000), intent.Total().AmountInPaise())
		assert.Equal(t, "pay_1", intent.PaymentID())
		assert.False(t, intent.CapturedAt().IsZero())
	})

	tests := []struct {
		name      string
		symbol    string
		quantity  int64
		unitPrice vo.Money
		paymentID string
		orderID   string
		wantErr   string
	}{
		{"empty symbol", "", 1, price, "pay_1", "ord_1", "instrument symbol is required"},
		{"zero quantity", "ZOMATO", 0, price, "pay_1", "ord_1", "quantity must be at least 1"},
		{"negative quantity", "ZOMATO", -2, price, "pay_1", "ord_1", "quantity must be at least 1"},
		{"zero price", "ZOMATO", 1, vo.NewMoney(0, "INR"), "pay_1", "ord_1", "unit price must be positive"},
		{"missing payment ID", "ZOMATO", 1, price, "", "ord_1", "payment ID is required"},
		{"missing order ID", "ZOMATO", 1, price, "pay_1", "", "order ID is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIntent(tt.symbol, "Zomato Ltd", tt.quantity, tt.unitPrice, tt.paymentID, tt.orderID)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
