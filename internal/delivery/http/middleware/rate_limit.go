package middleware

import (
	"net/http"
	"strconv"
	"time"

	"outreach-backend/internal/delivery/http/response"
	"outreach-backend/pkg/ratelimit"
	"outreach-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds configuration for one endpoint family.
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix, e.g. "rl:inquiry:"
	KeyPrefix string
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
}

// AcceptRateLimitConfig limits acceptance submissions per caller IP.
func AcceptRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{Limit: limit, Window: window, KeyPrefix: "rl:accept:"}
}

// DeclineRateLimitConfig limits decline submissions per caller IP.
func DeclineRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{Limit: limit, Window: window, KeyPrefix: "rl:decline:"}
}

// InquiryRateLimitConfig limits inquiry submissions per caller IP.
func InquiryRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{Limit: limit, Window: window, KeyPrefix: "rl:inquiry:"}
}

// RateLimitMiddleware gates an endpoint family with the shared limiter.
// A denied request gets 429 with Retry-After and no handler runs.
func RateLimitMiddleware(limiter *ratelimit.Limiter, config RateLimitConfig) gin.HandlerFunc {
	keyFunc := config.KeyFunc
	if keyFunc == nil {
		keyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}

	return func(c *gin.Context) {
		key := config.KeyPrefix + keyFunc(c)

		d := limiter.Allow(c.Request.Context(), key, config.Limit, config.Window)

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		c.Header("X-RateLimit-Reset", d.ResetAt.Format(time.RFC3339))

		if !d.Allowed {
			retryAfter := int(time.Until(d.ResetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			requestID, _ := c.Get("RequestID")
			reqIDStr, _ := requestID.(string)
			security.DefaultLogger().LogRateLimitTriggered(
				c.Request.Context(),
				c.ClientIP(),
				c.GetHeader("User-Agent"),
				reqIDStr,
				c.FullPath(),
			)

			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
