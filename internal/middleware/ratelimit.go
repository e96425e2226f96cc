package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"outreach-agent/pkg/response"
)

// UserIDHeader identifies the caller for rate limiting. Requests without it
// are limited per client IP.
const UserIDHeader = "X-User-ID"

const (
	defaultMaxTrackedUsers = 1000
	limiterTTL             = 5 * time.Minute
)

// rateLimiter keeps one token bucket per key; idle buckets expire.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, maxKeys int) *rateLimiter {
	if maxKeys <= 0 {
		maxKeys = defaultMaxTrackedUsers
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxKeys, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit rejects callers that exceed the configured requests per minute with 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		key := c.GetHeader(UserIDHeader)
		if key == "" {
			key = "ip:" + c.ClientIP()
		}

		if !m.limiter.allow(key) {
			m.l.Warn(c.Request.Context(), "rate limit exceeded", "key", key, "path", c.FullPath())
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
