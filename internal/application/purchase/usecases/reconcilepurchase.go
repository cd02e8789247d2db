package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/famvest-inc/famvest/internal/domain/payment"
	"github.com/famvest-inc/famvest/internal/domain/purchase"
	"github.com/famvest-inc/famvest/internal/shared/apperrors"
	"github.com/famvest-inc/famvest/internal/shared/logger"
)

// ReconcilePurchaseUseCase backs the results screen: it loads the pending
// purchase draft, verifies its payment, and clears the draft once the
// payment settled as success.
type ReconcilePurchaseUseCase struct {
	gateway PaymentGateway
	intents purchase.IntentStore
	logger  logger.Interface
}

func NewReconcilePurchaseUseCase(
	gw PaymentGateway,
	intents purchase.IntentStore,
	log logger.Interface,
) *ReconcilePurchaseUseCase {
	return &ReconcilePurchaseUseCase{
		gateway: gw,
		intents: intents,
		logger:  log.Named("reconcile-purchase"),
	}
}

func (uc *ReconcilePurchaseUseCase) Execute(ctx context.Context) (*Result, error) {
	intent, err := uc.intents.GetPending(ctx)
	if err != nil {
		if errors.Is(err, purchase.ErrNoPendingIntent) {
			return nil, apperrors.NewNotFoundError("no pending purchase")
		}
		return nil, apperrors.NewUnavailableError("failed to load pending purchase", err.Error())
	}

	rec, err := uc.gateway.VerifyPayment(ctx, intent.PaymentID())
	if err != nil {
		return nil, mapVerifyError(err)
	}

	result := resultFromIntent(intent)
	if rec.TransactionID() != nil {
		result.TransactionID = *rec.TransactionID()
	}

	if !rec.Status().IsSuccess() {
		result.Succeeded = false
		result.Message = fmt.Sprintf("payment %s", rec.Status())
		return result, nil
	}

	if err := uc.intents.ClearPending(ctx); err != nil {
		uc.logger.Warnw("failed to clear reconciled purchase intent",
			"payment_id", intent.PaymentID(), "error", err)
	}

	uc.logger.Infow("purchase reconciled",
		"payment_id", intent.PaymentID(), "order_id", intent.OrderID())

	result.Succeeded = true
	result.Message = "investment confirmed"
	return result, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, payment.ErrPaymentNotFound)
}

func isUnavailable(err error) bool {
	return errors.Is(err, payment.ErrStoreUnavailable)
}
