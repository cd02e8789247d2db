package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/famvest-inc/famvest/internal/domain/stock"
	"github.com/famvest-inc/famvest/internal/shared/apperrors"
	"github.com/famvest-inc/famvest/internal/shared/currency"
	"github.com/famvest-inc/famvest/internal/shared/logger"
	"github.com/famvest-inc/famvest/internal/shared/utils"
)

type StockHandler struct {
	catalog stock.Catalog
	logger  logger.Interface
}

func NewStockHandler(catalog stock.Catalog, log logger.Interface) *StockHandler {
	return &StockHandler{
		catalog: catalog,
		logger:  log,
	}
}

type InstrumentResponse struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	PriceText     string  `json:"price_text"`
	Currency      string  `json:"currency"`
	ChangePercent float64 `json:"change_percent"`
	MarketCap     string  `json:"market_cap"`
}

func (h *StockHandler) ListStocks(c *gin.Context) {
	instruments, err := h.catalog.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	out := make([]InstrumentResponse, 0, len(instruments))
	for _, instrument := range instruments {
		out = append(out, instrumentResponse(instrument))
	}
	utils.SuccessResponse(c, http.StatusOK, "", out)
}

func (h *StockHandler) GetStock(c *gin.Context) {
	instrument, err := h.catalog.Get(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		if errors.Is(err, stock.ErrInstrumentNotFound) {
			utils.ErrorResponseWithError(c, apperrors.NewNotFoundError("instrument not found"))
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", instrumentResponse(instrument))
}

func instrumentResponse(instrument *stock.Instrument) InstrumentResponse {
	return InstrumentResponse{
		Symbol:        instrument.Symbol,
		Name:          instrument.Name,
		Price:         instrument.UnitPrice.AmountInRupees(),
		PriceText:     currency.Format(instrument.UnitPrice),
		Currency:      instrument.UnitPrice.Currency(),
		ChangePercent: instrument.ChangePercent,
		MarketCap:     instrument.MarketCap,
	}
}
