package handlers

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/famvest-inc/famvest/internal/application/payment/gateway"
	"github.com/famvest-inc/famvest/internal/domain/payment"
	vo "github.com/famvest-inc/famvest/internal/domain/payment/valueobjects"
	"github.com/famvest-inc/famvest/internal/shared/apperrors"
	"github.com/famvest-inc/famvest/internal/shared/logger"
	"github.com/famvest-inc/famvest/internal/shared/utils"
)

type PaymentHandler struct {
	gateway *gateway.Gateway
	logger  logger.Interface
}

func NewPaymentHandler(gw *gateway.Gateway, log logger.Interface) *PaymentHandler {
	return &PaymentHandler{
		gateway: gw,
		logger:  log,
	}
}

type InitiatePaymentRequest struct {
	Amount        float64        `json:"amount" binding:"required,gte=0"`
	Currency      string         `json:"currency" binding:"omitempty,iso4217"`
	OrderID       string         `json:"order_id" binding:"required"`
	Description   string         `json:"description"`
	CustomerID    string         `json:"customer_id"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email" binding:"omitempty,email"`
	CustomerPhone string         `json:"customer_phone"`
	ReturnURL     string         `json:"return_url" binding:"omitempty,url"`
	Metadata      map[string]any `json:"metadata"`
}

type PaymentStatusResponse struct {
	PaymentID     string    `json:"payment_id"`
	OrderID       string    `json:"order_id"`
	Status        string    `json:"status"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Timestamp     time.Time `json:"timestamp"`
	TransactionID string    `json:"transaction_id,omitempty"`
}

// InitiatePayment creates a pending payment record and returns the
// redirect URL. Failures are reported in the response body, never as a
// transport error.
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	var req InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("rejected malformed payment request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	resp := h.gateway.InitiatePayment(c.Request.Context(), payment.Request{
		Amount:        vo.NewMoney(int64(math.Round(req.Amount*100)), req.Currency),
		OrderID:       req.OrderID,
		Description:   req.Description,
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		ReturnURL:     req.ReturnURL,
		Metadata:      req.Metadata,
	})

	utils.SuccessResponse(c, http.StatusOK, resp.Message, resp)
}

// VerifyPayment reports the current status of a payment record.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	paymentID := c.Param("id")

	rec, err := h.gateway.VerifyPayment(c.Request.Context(), paymentID)
	if err != nil {
		utils.ErrorResponseWithError(c, mapRecordError(err))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", statusResponseFromRecord(rec))
}

// HandleCallback normalizes an external status push. The normalized view
// is returned to the caller; persisting it is the purchase flow's call.
func (h *PaymentHandler) HandleCallback(c *gin.Context) {
	var payload gateway.CallbackPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warnw("rejected malformed payment callback", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid callback payload")
		return
	}

	view := h.gateway.HandleCallback(payload)
	utils.SuccessResponse(c, http.StatusOK, "callback processed", view)
}

func statusResponseFromRecord(rec *payment.Payment) PaymentStatusResponse {
	resp := PaymentStatusResponse{
		PaymentID: rec.PaymentID(),
		OrderID:   rec.OrderID(),
		Status:    rec.Status().String(),
		Amount:    rec.Amount().AmountInRupees(),
		Currency:  rec.Amount().Currency(),
		Timestamp: rec.CreatedAt(),
	}
	if rec.TransactionID() != nil {
		resp.TransactionID = *rec.TransactionID()
	}
	return resp
}

func mapRecordError(err error) error {
	switch {
	case errors.Is(err, payment.ErrPaymentNotFound):
		return apperrors.NewNotFoundError("payment not found")
	case errors.Is(err, payment.ErrStoreUnavailable):
		return apperrors.NewUnavailableError("payment record store unavailable")
	default:
		return err
	}
}
