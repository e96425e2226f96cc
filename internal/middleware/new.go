package middleware

import (
	"outreach-agent/config"
	"outreach-agent/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the shared middleware set. A disabled rate limit leaves limiter nil
// and RateLimit becomes a pass-through.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	m := Middleware{l: l}
	if cfg.Enabled && cfg.RequestsPerMin > 0 {
		m.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.MaxTrackedUsers)
	}
	return m
}
