// Package usecases drives the stock purchase flow: translate a purchase
// intent into a payment request, drive the gateway, and reconcile the
// outcome into a user-visible result.
package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/famvest-inc/famvest/internal/application/payment/gateway"
	"github.com/famvest-inc/famvest/internal/domain/payment"
	"github.com/famvest-inc/famvest/internal/domain/purchase"
	"github.com/famvest-inc/famvest/internal/domain/stock"
	"github.com/famvest-inc/famvest/internal/shared/apperrors"
	"github.com/famvest-inc/famvest/internal/shared/logger"
)

// PaymentGateway is the gateway surface the purchase flow needs. Declared
// on the consumer side so an in-memory double can stand in for the real
// gateway in tests.
type PaymentGateway interface {
	GenerateOrderID(prefix string) string
	InitiatePayment(ctx context.Context, req payment.Request) gateway.Response
	VerifyPayment(ctx context.Context, paymentID string) (*payment.Payment, error)
}

// PurchaseStockCommand is a user-level purchase: an instrument and how
// many shares of it.
type PurchaseStockCommand struct {
	Symbol       string
	Quantity     int64
	CustomerName string
	ReturnURL    string
}

// Result is the reconciled outcome of a purchase attempt.
type Result struct {
	Succeeded     bool
	Message       string
	PaymentID     string
	OrderID       string
	TransactionID string
	Symbol        string
	Name          string
	Quantity      int64
	UnitPrice     float64
	Total         float64
	Currency      string
}

// Config tunes how long the flow waits for settlement before verifying.
type Config struct {
	// SettlementWait is how long to wait before the first verification.
	SettlementWait time.Duration
	// VerifyTimeout bounds the verification call so an unresponsive store
	// or processor surfaces as a failure instead of blocking forever.
	VerifyTimeout time.Duration
}

type PurchaseStockUseCase struct {
	catalog stock.Catalog
	gateway PaymentGateway
	intents purchase.IntentStore
	cfg     Config
	logger  logger.Interface
}

func NewPurchaseStockUseCase(
	catalog stock.Catalog,
	gw PaymentGateway,
	intents purchase.IntentStore,
	cfg Config,
	log logger.Interface,
) *PurchaseStockUseCase {
	if cfg.VerifyTimeout <= 0 {
		cfg.VerifyTimeout = 10 * time.Second
	}
	return &PurchaseStockUseCase{
		catalog: catalog,
		gateway: gw,
		intents: intents,
		cfg:     cfg,
		logger:  log.Named("purchase-stock"),
	}
}

// Execute runs the full purchase protocol. Validation failures are
// rejected locally before any gateway call; initiation failures are
// terminal for the attempt (a retry builds a fresh order ID); a
// non-success verification leaves the intent intact for inspection.
func (uc *PurchaseStockUseCase) Execute(ctx context.Context, cmd PurchaseStockCommand) (*Result, error) {
	if cmd.Quantity < 1 {
		return nil, apperrors.NewValidationError("quantity must be at least 1")
	}

	instrument, err := uc.catalog.Get(ctx, cmd.Symbol)
	if err != nil {
		return nil, apperrors.NewNotFoundError("instrument not found", cmd.Symbol)
	}
	if !instrument.UnitPrice.IsPositive() {
		return nil, apperrors.NewValidationError("instrument has no tradable price", cmd.Symbol)
	}

	total := instrument.UnitPrice.MultiplyQuantity(cmd.Quantity)
	orderID := uc.gateway.GenerateOrderID("STOCK")

	req := payment.Request{
		Amount:       total,
		OrderID:      orderID,
		Description:  fmt.Sprintf("Purchase %d shares of %s (%s)", cmd.Quantity, instrument.Name, instrument.Symbol),
		CustomerName: cmd.CustomerName,
		ReturnURL:    cmd.ReturnURL,
		Metadata: map[string]any{
			"stock_symbol":    instrument.Symbol,
			"stock_name":      instrument.Name,
			"quantity":        cmd.Quantity,
			"price_per_share": instrument.UnitPrice.AmountInRupees(),
			"type":            "stock_purchase",
		},
	}

	resp := uc.gateway.InitiatePayment(ctx, req)
	if !resp.Success {
		uc.logger.Warnw("payment initiation failed",
			"order_id", orderID, "symbol", instrument.Symbol, "message", resp.Message)
		return &Result{
			Succeeded: false,
			Message:   resp.Message,
			OrderID:   orderID,
			Symbol:    instrument.Symbol,
			Name:      instrument.Name,
			Quantity:  cmd.Quantity,
			UnitPrice: instrument.UnitPrice.AmountInRupees(),
			Total:     total.AmountInRupees(),
			Currency:  total.Currency(),
		}, nil
	}

	intent, err := purchase.NewIntent(instrument.Symbol, instrument.Name, cmd.Quantity, instrument.UnitPrice, resp.PaymentID, orderID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to capture purchase intent", err.Error())
	}
	if err := uc.intents.SavePending(ctx, intent); err != nil {
		uc.logger.Errorw("failed to persist purchase intent",
			"payment_id", resp.PaymentID, "error", err)
		return nil, apperrors.NewUnavailableError("failed to persist purchase intent")
	}

	if err := uc.awaitSettlement(ctx); err != nil {
		return nil, err
	}

	return uc.verifyAndReconcile(ctx, intent)
}

// awaitSettlement waits out the processor's settlement delay, honoring
// context cancellation.
func (uc *PurchaseStockUseCase) awaitSettlement(ctx context.Context) error {
	if uc.cfg.SettlementWait <= 0 {
		return nil
	}
	timer := time.NewTimer(uc.cfg.SettlementWait)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (uc *PurchaseStockUseCase) verifyAndReconcile(ctx context.Context, intent *purchase.Intent) (*Result, error) {
	verifyCtx, cancel := context.WithTimeout(ctx, uc.cfg.VerifyTimeout)
	defer cancel()

	rec, err := uc.gateway.VerifyPayment(verifyCtx, intent.PaymentID())
	if err != nil {
		return nil, mapVerifyError(err)
	}

	result := resultFromIntent(intent)
	result.PaymentID = rec.PaymentID()
	if rec.TransactionID() != nil {
		result.TransactionID = *rec.TransactionID()
	}

	if !rec.Status().IsSuccess() {
		// Intent stays behind so support or a manual retry can inspect it.
		uc.logger.Warnw("payment not settled as success",
			"payment_id", intent.PaymentID(), "status", rec.Status())
		result.Succeeded = false
		result.Message = fmt.Sprintf("payment %s", rec.Status())
		return result, nil
	}

	if err := uc.intents.ClearPending(ctx); err != nil {
		uc.logger.Warnw("failed to clear purchase intent after settlement",
			"payment_id", intent.PaymentID(), "error", err)
	}

	uc.logger.Infow("purchase settled",
		"payment_id", intent.PaymentID(),
		"order_id", intent.OrderID(),
		"symbol", intent.Symbol(),
		"total", intent.Total().String())

	result.Succeeded = true
	result.Message = "payment successful"
	return result, nil
}

func resultFromIntent(intent *purchase.Intent) *Result {
	return &Result{
		PaymentID: intent.PaymentID(),
		OrderID:   intent.OrderID(),
		Symbol:    intent.Symbol(),
		Name:      intent.Name(),
		Quantity:  intent.Quantity(),
		UnitPrice: intent.UnitPrice().AmountInRupees(),
		Total:     intent.Total().AmountInRupees(),
		Currency:  intent.Total().Currency(),
	}
}

func mapVerifyError(err error) error {
	switch {
	case apperrors.IsAppError(err):
		return err
	case isNotFound(err):
		return apperrors.NewNotFoundError("payment record not found", err.Error())
	case isUnavailable(err):
		return apperrors.NewUnavailableError("payment record store unavailable", err.Error())
	default:
		return apperrors.NewInternalError("payment verification failed", err.Error())
	}
}
