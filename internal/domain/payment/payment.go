package payment

import (
	"fmt"
	"time"

	vo "github.com/famvest-inc/famvest/internal/domain/payment/valueobjects"
	"github.com/famvest-inc/famvest/internal/shared/biztime"
	"github.com/famvest-inc/famvest/internal/shared/id"
)

// Request describes a payment attempt as submitted by the caller.
// It is immutable once handed to the gateway.
type Request struct {
	Amount        vo.Money
	OrderID       string
	Description   string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ReturnURL     string
	Metadata      map[string]any
}

// Payment is the durable record of a single payment attempt, keyed by a
// gateway-generated payment ID. It is the only entity with a lifecycle.
type Payment struct {
	paymentID     string
	orderID       string
	status        vo.PaymentStatus
	amount        vo.Money
	transactionID *string
	request       Request
	createdAt     time.Time
	updatedAt     time.Time
}

// NewPayment creates a pending record for the given request. The payment ID
// is generated here and is unique within the session.
func NewPayment(req Request) (*Payment, error) {
	if req.OrderID == "" {
		return nil, fmt.Errorf("order ID is required")
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("amount must not be negative")
	}

	now := biztime.NowUTC()
	return &Payment{
		paymentID: id.MustGenerateWithPrefix(id.PrefixPayment, id.DefaultLength),
		orderID:   req.OrderID,
		status:    vo.PaymentStatusPending,
		amount:    req.Amount,
		request:   req,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// MarkAsProcessing moves a pending record into processing.
func (p *Payment) MarkAsProcessing() error {
	if p.status == vo.PaymentStatusProcessing {
		return nil
	}
	if p.status.IsTerminal() {
		return fmt.Errorf("cannot mark payment as processing with terminal status %s", p.status)
	}

	p.status = vo.PaymentStatusProcessing
	p.updatedAt = biztime.NowUTC()
	return nil
}

// MarkAsSucceeded settles the record with the processor's transaction ID.
func (p *Payment) MarkAsSucceeded(transactionID string) error {
	if p.status == vo.PaymentStatusSuccess {
		return nil
	}
	if p.status.IsTerminal() {
		return fmt.Errorf("cannot mark payment as succeeded with terminal status %s", p.status)
	}

	p.status = vo.PaymentStatusSuccess
	if transactionID != "" {
		p.transactionID = &transactionID
	}
	p.updatedAt = biztime.NowUTC()
	return nil
}

func (p *Payment) MarkAsFailed() error {
	if p.status == vo.PaymentStatusFailed {
		return nil
	}
	if p.status.IsTerminal() {
		return fmt.Errorf("cannot mark payment as failed with terminal status %s", p.status)
	}

	p.status = vo.PaymentStatusFailed
	p.updatedAt = biztime.NowUTC()
	return nil
}

func (p *Payment) MarkAsCancelled() error {
	if p.status == vo.PaymentStatusCancelled {
		return nil
	}
	if p.status.IsTerminal() {
		return fmt.Errorf("cannot mark payment as cancelled with terminal status %s", p.status)
	}

	p.status = vo.PaymentStatusCancelled
	p.updatedAt = biztime.NowUTC()
	return nil
}

// Advance applies a mapped status to the record, dispatching to the marker
// that enforces the terminal-state invariant. Advancing to the current
// status is a no-op.
func (p *Payment) Advance(status vo.PaymentStatus, transactionID string) error {
	switch status {
	case vo.PaymentStatusPending:
		// Never regress an advanced record back to pending.
		return nil
	case vo.PaymentStatusProcessing:
		return p.MarkAsProcessing()
	case vo.PaymentStatusSuccess:
		return p.MarkAsSucceeded(transactionID)
	case vo.PaymentStatusFailed:
		return p.MarkAsFailed()
	case vo.PaymentStatusCancelled:
		return p.MarkAsCancelled()
	default:
		return fmt.Errorf("unknown payment status %q", status)
	}
}

func (p *Payment) PaymentID() string {
	return p.paymentID
}

func (p *Payment) OrderID() string {
	return p.orderID
}

func (p *Payment) Status() vo.PaymentStatus {
	return p.status
}

func (p *Payment) Amount() vo.Money {
	return p.amount
}

func (p *Payment) TransactionID() *string {
	return p.transactionID
}

func (p *Payment) Request() Request {
	return p.request
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Payment) UpdatedAt() time.Time {
	return p.updatedAt
}

// ReconstructParams carries persisted state for rebuilding a Payment.
type ReconstructParams struct {
	PaymentID     string
	OrderID       string
	Status        vo.PaymentStatus
	Amount        vo.Money
	TransactionID *string
	Request       Request
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Reconstruct rebuilds a Payment from its persisted state.
func Reconstruct(params ReconstructParams) *Payment {
	return &Payment{
		paymentID:     params.PaymentID,
		orderID:       params.OrderID,
		status:        params.Status,
		amount:        params.Amount,
		transactionID: params.TransactionID,
		request:       params.Request,
		createdAt:     params.CreatedAt,
		updatedAt:     params.UpdatedAt,
	}
}
