// Package http wires the gin router: routes, middleware, and request
// validation rules.
package http

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/famvest-inc/famvest/internal/interfaces/http/handlers"
	"github.com/famvest-inc/famvest/internal/interfaces/http/middleware"
	"github.com/famvest-inc/famvest/internal/shared/logger"
)

var tickerPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]{0,11}$`)

// RegisterValidations installs custom binding rules. "ticker" accepts
// exchange-style stock symbols (uppercase alphanumeric, leading letter).
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("ticker", func(fl validator.FieldLevel) bool {
			return tickerPattern.MatchString(fl.Field().String())
		})
	}
}

// Handlers bundles everything the router serves.
type Handlers struct {
	Payment  *handlers.PaymentHandler
	Purchase *handlers.PurchaseHandler
	Stock    *handlers.StockHandler
}

func NewRouter(mode string, h Handlers, log logger.Interface) *gin.Engine {
	gin.SetMode(ginMode(mode))
	RegisterValidations()

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/stocks", h.Stock.ListStocks)
		api.GET("/stocks/:symbol", h.Stock.GetStock)

		api.POST("/purchases", h.Purchase.PurchaseStock)
		api.GET("/purchases/result", h.Purchase.PurchaseResult)

		api.POST("/payments", h.Payment.InitiatePayment)
		api.GET("/payments/:id", h.Payment.VerifyPayment)
		api.POST("/payments/callback", h.Payment.HandleCallback)
	}

	return router
}

func ginMode(mode string) string {
	switch mode {
	case "release", "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
