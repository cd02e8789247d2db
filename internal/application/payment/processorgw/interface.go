// Package processorgw abstracts the external payment processor behind a
// narrow contract so the gateway never depends on a concrete integration.
package processorgw

import (
	"context"
)

// Processor is the stable contract against the external payment processor.
// The production integration would speak HTTPS to FamPay; tests and local
// runs use the simulated implementation.
type Processor interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*CreatePaymentResponse, error)
	QueryStatus(ctx context.Context, paymentID string) (*StatusResponse, error)
}

type CreatePaymentRequest struct {
	PaymentID   string
	OrderID     string
	Amount      int64
	Currency    string
	Description string
	ReturnURL   string
}

type CreatePaymentResponse struct {
	PaymentURL string
}

type StatusResponse struct {
	PaymentID     string
	TransactionID string
	Status        string
}
