package gateway

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/famvest-inc/famvest/internal/domain/payment/valueobjects"
	"github.com/famvest-inc/famvest/internal/shared/biztime"
)

// externalStatusMap is the fixed lookup from the processor's status
// vocabulary onto the internal one. Terminal states are only reached
// through values explicitly listed here; anything else fails closed to
// pending.
var externalStatusMap = map[string]vo.PaymentStatus{
	"pending":    vo.PaymentStatusPending,
	"processing": vo.PaymentStatusProcessing,
	"success":    vo.PaymentStatusSuccess,
	"completed":  vo.PaymentStatusSuccess,
	"failed":     vo.PaymentStatusFailed,
	"error":      vo.PaymentStatusFailed,
	"cancelled":  vo.PaymentStatusCancelled,
}

// MapExternalStatus maps an external status string onto the internal
// status enum. Unrecognized strings map to pending, never to a terminal
// state.
func MapExternalStatus(status string) vo.PaymentStatus {
	if mapped, ok := externalStatusMap[strings.ToLower(strings.TrimSpace(status))]; ok {
		return mapped
	}
	return vo.PaymentStatusPending
}

// CallbackPayload is a loosely-typed external status push. Field names
// vary between camelCase and snake_case depending on the sender.
type CallbackPayload map[string]any

// StatusView is the normalized result of a callback. It mirrors the
// payment record shape but is detached from the store; persisting it is
// the caller's decision.
type StatusView struct {
	PaymentID     string           `json:"payment_id"`
	OrderID       string           `json:"order_id"`
	Status        vo.PaymentStatus `json:"status"`
	Amount        float64          `json:"amount"`
	Currency      string           `json:"currency"`
	Timestamp     time.Time        `json:"timestamp"`
	TransactionID string           `json:"transaction_id,omitempty"`
}

// HandleCallback normalizes an external status push into the internal
// status vocabulary. It does not mutate the record store.
func (g *Gateway) HandleCallback(payload CallbackPayload) StatusView {
	view := StatusView{
		PaymentID:     payload.pickString("paymentId", "payment_id"),
		OrderID:       payload.pickString("orderId", "order_id"),
		Status:        MapExternalStatus(payload.pickString("status")),
		Amount:        payload.pickFloat("amount"),
		Currency:      payload.pickString("currency"),
		TransactionID: payload.pickString("transactionId", "transaction_id"),
		Timestamp:     biztime.NowUTC(),
	}
	if view.Currency == "" {
		view.Currency = vo.DefaultCurrency
	}

	g.logger.Infow("payment callback normalized",
		"payment_id", view.PaymentID,
		"order_id", view.OrderID,
		"status", view.Status)

	return view
}

func (p CallbackPayload) pickString(keys ...string) string {
	for _, key := range keys {
		if v, ok := p[key]; ok {
			switch s := v.(type) {
			case string:
				return s
			case fmt.Stringer:
				return s.String()
			}
		}
	}
	return ""
}

func (p CallbackPayload) pickFloat(keys ...string) float64 {
	for _, key := range keys {
		if v, ok := p[key]; ok {
			switch n := v.(type) {
			case float64:
				return n
			case int:
				return float64(n)
			case int64:
				return float64(n)
			}
		}
	}
	return 0
}
