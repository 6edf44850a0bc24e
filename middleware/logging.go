package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"zain-site-backend/logger"
)

// RequestLogger logs one structured line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		fields := logger.Fields{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"latency_ms": latency.Milliseconds(),
			"ip":         c.ClientIP(),
			"user_agent": c.Request.UserAgent(),
		}

		switch {
		case status >= 500:
			logger.Error(fields, "server error")
		case status >= 400:
			logger.Warn(fields, "client error")
		default:
			logger.Info(fields, "request completed")
		}
	}
}
