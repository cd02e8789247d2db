// Package purchase holds the caller-side draft linking a desired trade to
// its in-flight payment. The intent exists from the moment a payment is
// initiated until the purchase is confirmed or abandoned.
package purchase

import (
	"fmt"
	"time"

	vo "github.com/famvest-inc/famvest/internal/domain/payment/valueobjects"
	"github.com/famvest-inc/famvest/internal/shared/biztime"
)

// Intent links a desired trade to its in-flight payment by payment ID.
// It is owned exclusively by the purchase flow and never shares mutable
// state with the payment record.
type Intent struct {
	symbol     string
	name       string
	quantity   int64
	unitPrice  vo.Money
	total      vo.Money
	paymentID  string
	orderID    string
	capturedAt time.Time
}

// NewIntent captures a purchase draft after payment initiation succeeded.
func NewIntent(symbol, name string, quantity int64, unitPrice vo.Money, paymentID, orderID string) (*Intent, error) {
	if symbol == "" {
		return nil, fmt.Errorf("instrument symbol is required")
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}
	if !unitPrice.IsPositive() {
		return nil, fmt.Errorf("unit price must be positive")
	}
	if paymentID == "" {
		return nil, fmt.Errorf("payment ID is required")
	}
	if orderID == "" {
		return nil, fmt.Errorf("order ID is required")
	}

	return &Intent{
		symbol:     symbol,
		name:       name,
		quantity:   quantity,
		unitPrice:  unitPrice,
		total:      unitPrice.MultiplyQuantity(quantity),
		paymentID:  paymentID,
		orderID:    orderID,
		capturedAt: biztime.NowUTC(),
	}, nil
}

func (i *Intent) Symbol() string {
	return i.symbol
}

func (i *Intent) Name() string {
	return i.name
}

func (i *Intent) Quantity() int64 {
	return i.quantity
}

func (i *Intent) UnitPrice() vo.Money {
	return i.unitPrice
}

func (i *Intent) Total() vo.Money {
	return i.total
}

func (i *Intent) PaymentID() string {
	return i.paymentID
}

func (i *Intent) OrderID() string {
	return i.orderID
}

func (i *Intent) CapturedAt() time.Time {
	return i.capturedAt
}

// ReconstructParams carries persisted state for rebuilding an Intent.
type ReconstructParams struct {
	Symbol     string
	Name       string
	Quantity   int64
	UnitPrice  vo.Money
	Total      vo.Money
	PaymentID  string
	OrderID    string
	CapturedAt time.Time
}

// Reconstruct rebuilds an Intent from its persisted state.
func Reconstruct(params ReconstructParams) *Intent {
	return &Intent{
		symbol:     params.Symbol,
		name:       params.Name,
		quantity:   params.Quantity,
		unitPrice:  params.UnitPrice,
		total:      params.Total,
		paymentID:  params.PaymentID,
		orderID:    params.OrderID,
		capturedAt: params.CapturedAt,
	}
}
