package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimiter limits requests per IP. Applied to the public join form and
// the login endpoint.
func RateLimiter(limit int64) gin.HandlerFunc {
	store := memory.NewStore()
	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  limit,
	}

	// 🚦 Gin-compatible middleware
	instance := limiter.New(store, rate)
	return ginlimiter.NewMiddleware(instance)
}
