package payment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/famvest-inc/famvest/internal/domain/payment/valueobjects"
)

func validRequest() Request {
	return Request{
		Amount:  vo.NewMoney(45000, "INR"),
		OrderID: "STOCK_1700000000000_ABCDEF123",
	}
}

func TestNewPayment(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr string
	}{
		{
			name:   "valid request",
			mutate: func(r *Request) {},
		},
		{
			name:    "missing order ID",
			mutate:  func(r *Request) { r.OrderID = "" },
			wantErr: "order ID is required",
		},
		{
			name:    "negative amount",
			mutate:  func(r *Request) { r.Amount = vo.NewMoney(-100, "INR") },
			wantErr: "amount must not be negative",
		},
		{
			name:   "zero amount is allowed",
			mutate: func(r *Request) { r.Amount = vo.NewMoney(0, "INR") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			p, err := NewPayment(req)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				assert.Nil(t, p)
				return
			}

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(p.PaymentID(), "pay_"))
			assert.Equal(t, req.OrderID, p.OrderID())
			assert.Equal(t, vo.PaymentStatusPending, p.Status())
			assert.Nil(t, p.TransactionID())
			assert.False(t, p.CreatedAt().IsZero())
		})
	}
}

func TestNewPayment_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		p, err := NewPayment(validRequest())
		require.NoError(t, err)
		assert.False(t, seen[p.PaymentID()], "duplicate payment ID %s", p.PaymentID())
		seen[p.PaymentID()] = true
	}
}

func TestPayment_MarkAsSucceeded(t *testing.T) {
	p, err := NewPayment(validRequest())
	require.NoError(t, err)

	require.NoError(t, p.MarkAsSucceeded("TXN_123"))
	assert.Equal(t, vo.PaymentStatusSuccess, p.Status())
	require.NotNil(t, p.TransactionID())
	assert.Equal(t, "TXN_123", *p.TransactionID())

	// Marking succeeded again is a no-op.
	require.NoError(t, p.MarkAsSucceeded("TXN_999"))
	assert.Equal(t, "TXN_123", *p.TransactionID())
}

func TestPayment_TerminalStatusNeverChanges(t *testing.T) {
	tests := []struct {
		name  string
		reach func(*Payment) error
		want  vo.PaymentStatus
	}{
		{"success", func(p *Payment) error { return p.MarkAsSucceeded("TXN_1") }, vo.PaymentStatusSuccess},
		{"failed", func(p *Payment) error { return p.MarkAsFailed() }, vo.PaymentStatusFailed},
		{"cancelled", func(p *Payment) error { return p.MarkAsCancelled() }, vo.PaymentStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPayment(validRequest())
			require.NoError(t, err)
			require.NoError(t, tt.reach(p))

			if tt.want != vo.PaymentStatusSuccess {
				assert.Error(t, p.MarkAsSucceeded("TXN_LATE"))
			}
			if tt.want != vo.PaymentStatusFailed {
				assert.Error(t, p.MarkAsFailed())
			}
			if tt.want != vo.PaymentStatusCancelled {
				assert.Error(t, p.MarkAsCancelled())
			}
			assert.Error(t, p.MarkAsProcessing())
			assert.Equal(t, tt.want, p.Status())
		})
	}
}

func TestPayment_Advance(t *testing.T) {
	t.Run("pending never regresses", func(t *testing.T) {
		p, err := NewPayment(validRequest())
		require.NoError(t, err)
		require.NoError(t, p.MarkAsProcessing())

		require.NoError(t, p.Advance(vo.PaymentStatusPending, ""))
		assert.Equal(t, vo.PaymentStatusProcessing, p.Status())
	})

	t.Run("advances through processing to success", func(t *testing.T) {
		p, err := NewPayment(validRequest())
		require.NoError(t, err)

		require.NoError(t, p.Advance(vo.PaymentStatusProcessing, ""))
		assert.Equal(t, vo.PaymentStatusProcessing, p.Status())

		require.NoError(t, p.Advance(vo.PaymentStatusSuccess, "TXN_42"))
		assert.Equal(t, vo.PaymentStatusSuccess, p.Status())
		require.NotNil(t, p.TransactionID())
		assert.Equal(t, "TXN_42", *p.TransactionID())
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		p, err := NewPayment(validRequest())
		require.NoError(t, err)
		assert.Error(t, p.Advance(vo.PaymentStatus("settling"), ""))
		assert.Equal(t, vo.PaymentStatusPending, p.Status())
	})
}

func TestReconstruct(t *testing.T) {
	txn := "TXN_7"
	p := Reconstruct(ReconstructParams{
		PaymentID:     "pay_abc123",
		OrderID:       "ORD_1",
		Status:        vo.PaymentStatusSuccess,
		Amount:        vo.NewMoney(15000, "INR"),
		TransactionID: &txn,
	})

	assert.Equal(t, "pay_abc123", p.PaymentID())
	assert.Equal(t, vo.PaymentStatusSuccess, p.Status())
	require.NotNil(t, p.TransactionID())
	assert.Equal(t, "TXN_7", *p.TransactionID())

	// Reconstructed terminal records keep the terminal guarantee.
	assert.Error(t, p.MarkAsFailed())
}
