package processorgw

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

const (
	// ExternalStatusPending is reported before the settlement delay elapses.
	ExternalStatusPending = "pending"
	// ExternalStatusCompleted is the default settled outcome.
	ExternalStatusCompleted = "completed"
	// ExternalStatusError forces the failure path in tests.
	ExternalStatusError = "error"
)

// Simulated stands in for the external processor. A payment becomes
// verifiable only after the configured settlement delay; before that,
// status queries report pending. The delay is a placeholder for eventually
// consistent settlement, not a timing contract.
type Simulated struct {
	baseURL string
	delay   time.Duration
	outcome string
	now     func() time.Time

	mu     sync.Mutex
	issued map[string]time.Time
}

type SimulatedOption func(*Simulated)

// WithOutcome overrides the settled status the simulator reports
// (ExternalStatusCompleted by default).
func WithOutcome(outcome string) SimulatedOption {
	return func(s *Simulated) {
		s.outcome = outcome
	}
}

// WithClock injects a clock for tests.
func WithClock(now func() time.Time) SimulatedOption {
	return func(s *Simulated) {
		s.now = now
	}
}

func NewSimulated(baseURL string, settlementDelay time.Duration, opts ...SimulatedOption) *Simulated {
	s := &Simulated{
		baseURL: strings.TrimRight(baseURL, "/"),
		delay:   settlementDelay,
		outcome: ExternalStatusCompleted,
		now:     time.Now,
		issued:  make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulated) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*CreatePaymentResponse, error) {
	if req.PaymentID == "" {
		return nil, fmt.Errorf("payment ID is required")
	}

	s.mu.Lock()
	s.issued[req.PaymentID] = s.now()
	s.mu.Unlock()

	return &CreatePaymentResponse{
		PaymentURL: fmt.Sprintf("%s/payment/process/%s", s.baseURL, req.PaymentID),
	}, nil
}

func (s *Simulated) QueryStatus(ctx context.Context, paymentID string) (*StatusResponse, error) {
	s.mu.Lock()
	issuedAt, ok := s.issued[paymentID]
	s.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("unknown payment %q", paymentID)
	}

	if s.now().Sub(issuedAt) < s.delay {
		return &StatusResponse{
			PaymentID: paymentID,
			Status:    ExternalStatusPending,
		}, nil
	}

	resp := &StatusResponse{
		PaymentID: paymentID,
		Status:    s.outcome,
	}
	if s.outcome == ExternalStatusCompleted {
		resp.TransactionID = fmt.Sprintf("TXN_%d", issuedAt.UnixMilli())
	}
	return resp, nil
}
