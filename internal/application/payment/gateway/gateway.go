// Package gateway presents a stable contract for initiating, verifying,
// and receiving callbacks about a payment, independent of which external
// processor ultimately executes it.
package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/famvest-inc/famvest/internal/application/payment/processorgw"
	"github.com/famvest-inc/famvest/internal/domain/payment"
	vo "github.com/famvest-inc/famvest/internal/domain/payment/valueobjects"
	"github.com/famvest-inc/famvest/internal/shared/biztime"
	"github.com/famvest-inc/famvest/internal/shared/id"
	"github.com/famvest-inc/famvest/internal/shared/logger"
)

// Config carries the processor credentials and mode. All fields are
// injected; there is no process-wide gateway instance.
type Config struct {
	APIKey   string
	BaseURL  string
	TestMode bool
}

// Gateway orchestrates initiate, verify, and callback handling against the
// record store. It owns payment records exclusively; callers only ever
// read them by payment ID.
type Gateway struct {
	cfg       Config
	store     payment.RecordStore
	processor processorgw.Processor
	logger    logger.Interface
}

func New(cfg Config, store payment.RecordStore, processor processorgw.Processor, log logger.Interface) *Gateway {
	return &Gateway{
		cfg:       cfg,
		store:     store,
		processor: processor,
		logger:    log.Named("payment-gateway"),
	}
}

// Response is the result of a payment initiation. Initiation never fails
// with an error; failures degrade to Success=false with a message.
type Response struct {
	Success    bool             `json:"success"`
	PaymentID  string           `json:"payment_id,omitempty"`
	OrderID    string           `json:"order_id"`
	Amount     float64          `json:"amount"`
	Currency   string           `json:"currency"`
	Status     vo.PaymentStatus `json:"status"`
	PaymentURL string           `json:"payment_url,omitempty"`
	Message    string           `json:"message,omitempty"`
}

// GenerateOrderID builds a session-unique order ID from a timestamp and a
// random suffix. Pure, no side effects; collision probability is
// negligible at session volumes.
func (g *Gateway) GenerateOrderID(prefix string) string {
	if prefix == "" {
		prefix = "ORD"
	}
	return fmt.Sprintf("%s_%d_%s", prefix, biztime.NowUTC().UnixMilli(), strings.ToUpper(id.MustGenerate(9)))
}

// InitiatePayment validates the request, creates a pending record, and
// asks the processor for a redirect URL. Internal failures are converted
// to a negative response; this call never returns an error.
func (g *Gateway) InitiatePayment(ctx context.Context, req payment.Request) Response {
	rec, err := payment.NewPayment(req)
	if err != nil {
		g.logger.Warnw("rejected payment request", "order_id", req.OrderID, "error", err)
		return g.failureResponse(req, err.Error())
	}

	created, err := g.processor.CreatePayment(ctx, processorgw.CreatePaymentRequest{
		PaymentID:   rec.PaymentID(),
		OrderID:     rec.OrderID(),
		Amount:      rec.Amount().AmountInPaise(),
		Currency:    rec.Amount().Currency(),
		Description: req.Description,
		ReturnURL:   req.ReturnURL,
	})
	if err != nil {
		g.logger.Errorw("processor rejected payment", "order_id", req.OrderID, "error", err)
		return g.failureResponse(req, "payment initiation failed")
	}

	if err := g.store.Save(ctx, rec); err != nil {
		g.logger.Errorw("failed to persist payment record",
			"payment_id", rec.PaymentID(), "order_id", rec.OrderID(), "error", err)
		return g.failureResponse(req, "payment initiation failed")
	}

	g.logger.Infow("payment initiated",
		"payment_id", rec.PaymentID(),
		"order_id", rec.OrderID(),
		"amount", rec.Amount().String())

	return Response{
		Success:    true,
		PaymentID:  rec.PaymentID(),
		OrderID:    rec.OrderID(),
		Amount:     rec.Amount().AmountInRupees(),
		Currency:   rec.Amount().Currency(),
		Status:     vo.PaymentStatusPending,
		PaymentURL: created.PaymentURL,
		Message:    "payment initiated successfully",
	}
}

// VerifyPayment looks up the record by payment ID and, for non-terminal
// records, reconciles against the processor. It is the one gateway
// operation that signals failure by returning an error: the caller cannot
// proceed without a definitive answer. Repeated calls without external
// advancement return identical statuses; terminal records are returned
// as-is and never re-queried.
func (g *Gateway) VerifyPayment(ctx context.Context, paymentID string) (*payment.Payment, error) {
	rec, err := g.store.Get(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("verify payment %s: %w", paymentID, err)
	}

	if rec.Status().IsTerminal() {
		return rec, nil
	}

	status, err := g.processor.QueryStatus(ctx, paymentID)
	if err != nil {
		// A processor hiccup is not a lost payment; report the record as
		// last persisted.
		g.logger.Warnw("processor status query failed", "payment_id", paymentID, "error", err)
		return rec, nil
	}

	mapped := MapExternalStatus(status.Status)
	prev := rec.Status()
	if mapped == prev {
		return rec, nil
	}

	if err := rec.Advance(mapped, status.TransactionID); err != nil {
		g.logger.Errorw("refused status transition",
			"payment_id", paymentID, "from", prev, "to", mapped, "error", err)
		return rec, nil
	}

	if err := g.store.Save(ctx, rec); err != nil {
		g.logger.Errorw("failed to persist advanced payment record",
			"payment_id", paymentID, "error", err)
		return nil, fmt.Errorf("verify payment %s: %w", paymentID, err)
	}

	g.logger.Infow("payment advanced", "payment_id", paymentID, "status", rec.Status())

	return rec, nil
}

func (g *Gateway) failureResponse(req payment.Request, message string) Response {
	return Response{
		Success:  false,
		OrderID:  req.OrderID,
		Amount:   req.Amount.AmountInRupees(),
		Currency: req.Amount.Currency(),
		Status:   vo.PaymentStatusFailed,
		Message:  message,
	}
}
