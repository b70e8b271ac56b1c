package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/infrastructure/cache"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

// RateLimit enforces a fixed-window per-IP limit on the public endpoints.
// The window counter lives in Redis so the limit holds across instances;
// when the limiter backend is unavailable the request is allowed rather
// than blocking all public traffic.
func RateLimit(limiter cache.RateLimiter, limit int, window time.Duration, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		windowBucket := time.Now().Unix() / int64(window.Seconds())
		key := fmt.Sprintf("ip:%s:%d", c.ClientIP(), windowBucket)

		allowed, err := limiter.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
