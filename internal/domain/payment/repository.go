package payment

import (
	"context"
	"errors"
)

// ErrPaymentNotFound is returned when no record exists for a payment ID.
var ErrPaymentNotFound = errors.New("payment not found")

// ErrStoreUnavailable is returned when the backing medium cannot be
// reached. It is kept distinct from ErrPaymentNotFound so operators can
// tell a lost record from a lost store, but callers may treat both as
// "cannot proceed".
var ErrStoreUnavailable = errors.New("payment record store unavailable")

// RecordStore persists payment records keyed by payment ID for the
// lifetime of a session. Save is overwrite-or-create, last-writer-wins.
type RecordStore interface {
	Save(ctx context.Context, p *Payment) error
	Get(ctx context.Context, paymentID string) (*Payment, error)
}
