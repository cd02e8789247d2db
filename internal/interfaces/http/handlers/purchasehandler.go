package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	purchaseUsecases "github.com/famvest-inc/famvest/internal/application/purchase/usecases"
	vo "github.com/famvest-inc/famvest/internal/domain/payment/valueobjects"
	"github.com/famvest-inc/famvest/internal/shared/currency"
	"github.com/famvest-inc/famvest/internal/shared/logger"
	"github.com/famvest-inc/famvest/internal/shared/utils"
)

type PurchaseHandler struct {
	purchaseUC  *purchaseUsecases.PurchaseStockUseCase
	reconcileUC *purchaseUsecases.ReconcilePurchaseUseCase
	logger      logger.Interface
}

func NewPurchaseHandler(
	purchaseUC *purchaseUsecases.PurchaseStockUseCase,
	reconcileUC *purchaseUsecases.ReconcilePurchaseUseCase,
	log logger.Interface,
) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUC:  purchaseUC,
		reconcileUC: reconcileUC,
		logger:      log,
	}
}

type PurchaseStockRequest struct {
	Symbol       string `json:"symbol" binding:"required,ticker"`
	Quantity     int64  `json:"quantity" binding:"required"`
	CustomerName string `json:"customer_name"`
	ReturnURL    string `json:"return_url" binding:"omitempty,url"`
}

type PurchaseResultResponse struct {
	Succeeded     bool    `json:"succeeded"`
	Message       string  `json:"message"`
	PaymentID     string  `json:"payment_id,omitempty"`
	OrderID       string  `json:"order_id"`
	TransactionID string  `json:"transaction_id,omitempty"`
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Quantity      int64   `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	Total         float64 `json:"total"`
	Currency      string  `json:"currency"`
	UnitPriceText string  `json:"unit_price_text"`
	TotalText     string  `json:"total_text"`
}

// PurchaseStock drives the full purchase flow: initiate, await
// settlement, verify, reconcile.
func (h *PurchaseHandler) PurchaseStock(c *gin.Context) {
	var req PurchaseStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("rejected malformed purchase request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.purchaseUC.Execute(c.Request.Context(), purchaseUsecases.PurchaseStockCommand{
		Symbol:       req.Symbol,
		Quantity:     req.Quantity,
		CustomerName: req.CustomerName,
		ReturnURL:    req.ReturnURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, resultResponse(result))
}

// PurchaseResult reconciles the pending purchase for the results screen.
func (h *PurchaseHandler) PurchaseResult(c *gin.Context) {
	result, err := h.reconcileUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, resultResponse(result))
}

func resultResponse(result *purchaseUsecases.Result) PurchaseResultResponse {
	unitPrice := vo.NewMoney(int64(result.UnitPrice*100+0.5), result.Currency)
	total := vo.NewMoney(int64(result.Total*100+0.5), result.Currency)

	return PurchaseResultResponse{
		Succeeded:     result.Succeeded,
		Message:       result.Message,
		PaymentID:     result.PaymentID,
		OrderID:       result.OrderID,
		TransactionID: result.TransactionID,
		Symbol:        result.Symbol,
		Name:          result.Name,
		Quantity:      result.Quantity,
		UnitPrice:     result.UnitPrice,
		Total:         result.Total,
		Currency:      result.Currency,
		UnitPriceText: currency.Format(unitPrice),
		TotalText:     currency.Format(total),
	}
}
