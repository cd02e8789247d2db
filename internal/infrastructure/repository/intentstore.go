package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	vo "github.com/famvest-inc/famvest/internal/domain/payment/valueobjects"
	"github.com/famvest-inc/famvest/internal/domain/purchase"
	"github.com/famvest-inc/famvest/internal/infrastructure/sessionstore"
)

// pendingIntentKey holds the single outstanding purchase draft. At most
// one purchase is in flight per session.
const pendingIntentKey = "purchase:pending"

type intentDoc struct {
	Symbol         string    `json:"symbol"`
	Name           string    `json:"name"`
	Quantity       int64     `json:"quantity"`
	UnitPricePaise int64     `json:"unit_price_paise"`
	TotalPaise     int64     `json:"total_paise"`
	Currency       string    `json:"currency"`
	PaymentID      string    `json:"payment_id"`
	OrderID        string    `json:"order_id"`
	CapturedAt     time.Time `json:"captured_at"`
}

// IntentStore persists the pending purchase draft in the session KV.
type IntentStore struct {
	kv sessionstore.KV
}

func NewIntentStore(kv sessionstore.KV) *IntentStore {
	return &IntentStore{kv: kv}
}

func (s *IntentStore) SavePending(ctx context.Context, intent *purchase.Intent) error {
	doc := intentDoc{
		Symbol:         intent.Symbol(),
		Name:           intent.Name(),
		Quantity:       intent.Quantity(),
		UnitPricePaise: intent.UnitPrice().AmountInPaise(),
		TotalPaise:     intent.Total().AmountInPaise(),
		Currency:       intent.Total().Currency(),
		PaymentID:      intent.PaymentID(),
		OrderID:        intent.OrderID(),
		CapturedAt:     intent.CapturedAt(),
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize purchase intent: %w", err)
	}

	return s.kv.Set(ctx, pendingIntentKey, data)
}

func (s *IntentStore) GetPending(ctx context.Context) (*purchase.Intent, error) {
	data, err := s.kv.Get(ctx, pendingIntentKey)
	if err != nil {
		if errors.Is(err, sessionstore.ErrKeyNotFound) {
			return nil, purchase.ErrNoPendingIntent
		}
		return nil, err
	}

	var doc intentDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: corrupted intent entry", purchase.ErrNoPendingIntent)
	}

	return purchase.Reconstruct(purchase.ReconstructParams{
		Symbol:     doc.Symbol,
		Name:       doc.Name,
		Quantity:   doc.Quantity,
		UnitPrice:  vo.NewMoney(doc.UnitPricePaise, doc.Currency),
		Total:      vo.NewMoney(doc.TotalPaise, doc.Currency),
		PaymentID:  doc.PaymentID,
		OrderID:    doc.OrderID,
		CapturedAt: doc.CapturedAt,
	}), nil
}

func (s *IntentStore) ClearPending(ctx context.Context) error {
	return s.kv.Delete(ctx, pendingIntentKey)
}
