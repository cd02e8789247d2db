package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/famvest-inc/famvest/internal/shared/logger"
)

// RequestLogger logs one line per request with method, path, status, and
// latency. Client errors log at warn, server errors at error.
func RequestLogger(log logger.Interface) gin.HandlerFunc {
	log = log.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		}

		switch {
		case status >= 500:
			log.Errorw("request failed", fields...)
		case status >= 400:
			log.Warnw("request rejected", fields...)
		default:
			log.Infow("request served", fields...)
		}
	}
}
