package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"jpep-http-service/config"
	"jpep-http-service/internal/error/code"
	"jpep-http-service/internal/error/response"
	"jpep-http-service/services"
)

// MessageRateLimiter caps how many messages one user may send per day.
// Counters live in Redis under one key per user with a 24h window. With
// no Redis service attached the limiter lets everything through.
func MessageRateLimiter(redisService services.InterfaceRedisService, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisService == nil || limit <= 0 {
			c.Next()
			return
		}

		userID := CurrentUserID(c)
		if userID == 0 {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		key := fmt.Sprintf("message_limit:%d", userID)
		count, err := redisService.IncrWithTTL(key, 24*time.Hour)
		if err != nil {
			// Redis down must not block messaging
			config.Warning("rate limiter unavailable: %v", err)
			c.Next()
			return
		}

		if count > int64(limit) {
			retryAfter, _ := redisService.TTL(key)
			response.FailWithMessage(c, code.ErrTooManyRequests,
				"daily message limit reached",
				gin.H{"retry_after_seconds": int64(retryAfter.Seconds())})
			c.Abort()
			return
		}

		c.Next()
	}
}
