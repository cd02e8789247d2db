// Package repository implements the domain store interfaces over the
// session-scoped KV medium.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/famvest-inc/famvest/internal/domain/payment"
	vo "github.com/famvest-inc/famvest/internal/domain/payment/valueobjects"
	"github.com/famvest-inc/famvest/internal/infrastructure/sessionstore"
)

const paymentKeyPrefix = "payment:"

// paymentDoc is the serialized form of a payment record plus the original
// request payload, one entry per payment ID.
type paymentDoc struct {
	PaymentID     string     `json:"payment_id"`
	OrderID       string     `json:"order_id"`
	Status        string     `json:"status"`
	AmountPaise   int64      `json:"amount_paise"`
	Currency      string     `json:"currency"`
	TransactionID *string    `json:"transaction_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	Request       requestDoc `json:"request"`
}

type requestDoc struct {
	AmountPaise   int64          `json:"amount_paise"`
	Currency      string         `json:"currency"`
	OrderID       string         `json:"order_id"`
	Description   string         `json:"description,omitempty"`
	CustomerID    string         `json:"customer_id,omitempty"`
	CustomerName  string         `json:"customer_name,omitempty"`
	CustomerEmail string         `json:"customer_email,omitempty"`
	CustomerPhone string         `json:"customer_phone,omitempty"`
	ReturnURL     string         `json:"return_url,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// PaymentRecordStore persists payment records in the session KV, keyed by
// payment ID.
type PaymentRecordStore struct {
	kv sessionstore.KV
}

func NewPaymentRecordStore(kv sessionstore.KV) *PaymentRecordStore {
	return &PaymentRecordStore{kv: kv}
}

func (s *PaymentRecordStore) Save(ctx context.Context, p *payment.Payment) error {
	doc := toPaymentDoc(p)
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize payment record: %w", err)
	}

	if err := s.kv.Set(ctx, paymentKeyPrefix+p.PaymentID(), data); err != nil {
		return mapKVError(err)
	}
	return nil
}

func (s *PaymentRecordStore) Get(ctx context.Context, paymentID string) (*payment.Payment, error) {
	data, err := s.kv.Get(ctx, paymentKeyPrefix+paymentID)
	if err != nil {
		return nil, mapKVError(err)
	}

	var doc paymentDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		// A corrupted entry is indistinguishable from a lost one for the
		// caller.
		return nil, fmt.Errorf("%w: corrupted record for %s", payment.ErrPaymentNotFound, paymentID)
	}

	return fromPaymentDoc(doc), nil
}

func toPaymentDoc(p *payment.Payment) paymentDoc {
	req := p.Request()
	return paymentDoc{
		PaymentID:     p.PaymentID(),
		OrderID:       p.OrderID(),
		Status:        p.Status().String(),
		AmountPaise:   p.Amount().AmountInPaise(),
		Currency:      p.Amount().Currency(),
		TransactionID: p.TransactionID(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
		Request: requestDoc{
			AmountPaise:   req.Amount.AmountInPaise(),
			Currency:      req.Amount.Currency(),
			OrderID:       req.OrderID,
			Description:   req.Description,
			CustomerID:    req.CustomerID,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			ReturnURL:     req.ReturnURL,
			Metadata:      req.Metadata,
		},
	}
}

func fromPaymentDoc(doc paymentDoc) *payment.Payment {
	return payment.Reconstruct(payment.ReconstructParams{
		PaymentID:     doc.PaymentID,
		OrderID:       doc.OrderID,
		Status:        vo.PaymentStatus(doc.Status),
		Amount:        vo.NewMoney(doc.AmountPaise, doc.Currency),
		TransactionID: doc.TransactionID,
		Request: payment.Request{
			Amount:        vo.NewMoney(doc.Request.AmountPaise, doc.Request.Currency),
			OrderID:       doc.Request.OrderID,
			Description:   doc.Request.Description,
			CustomerID:    doc.Request.CustomerID,
			CustomerName:  doc.Request.CustomerName,
			CustomerEmail: doc.Request.CustomerEmail,
			CustomerPhone: doc.Request.CustomerPhone,
			ReturnURL:     doc.Request.ReturnURL,
			Metadata:      doc.Request.Metadata,
		},
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	})
}

func mapKVError(err error) error {
	switch {
	case errors.Is(err, sessionstore.ErrKeyNotFound):
		return payment.ErrPaymentNotFound
	case errors.Is(err, sessionstore.ErrUnavailable):
		return fmt.Errorf("%w: %v", payment.ErrStoreUnavailable, err)
	default:
		return err
	}
}
