package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewRateLimitMiddleware creates a per-IP rate limiting middleware from a
// formatted rate such as "100-M" (100 requests per minute).
func NewRateLimitMiddleware(formatted string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formatted, err)
	}

	return newRateLimitMiddleware(rate), nil
}

// NewRateLimitMiddlewareWithConfig creates a rate limiting middleware with custom configuration
func NewRateLimitMiddlewareWithConfig(limit int64, period time.Duration) gin.HandlerFunc {
	return newRateLimitMiddleware(limiter.Rate{
		Period: period,
		Limit:  limit,
	})
}

func newRateLimitMiddleware(rate limiter.Rate) gin.HandlerFunc {
	// Create in-memory store
	store := memory.NewStore()

	instance := limiter.New(store, rate)

	return mgin.NewMiddleware(instance)
}
