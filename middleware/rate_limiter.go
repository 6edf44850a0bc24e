package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"zain-site-backend/logger"
)

// RateLimiter applies a fixed-window per-client limit backed by Redis.
// When Redis is unreachable the limiter fails open: rate limiting is an
// operational nicety and must never block the chat path.
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRateLimiter(client *redis.Client, perMinute int) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  perMinute,
		window: time.Minute,
	}
}

func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.client == nil || rl.limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%d", c.ClientIP(), time.Now().Unix()/int64(rl.window.Seconds()))

		ctx := c.Request.Context()
		count, err := rl.client.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn(logger.Fields{"error": err.Error()}, "rate limiter unavailable, failing open")
			c.Next()
			return
		}
		if count == 1 {
			rl.client.Expire(ctx, key, rl.window)
		}

		if count > int64(rl.limit) {
			logger.Warn(logger.Fields{"ip": c.ClientIP()}, "too many requests")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			return
		}

		c.Next()
	}
}
