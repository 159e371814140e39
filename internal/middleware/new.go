package middleware

import (
	"time"

	"productivity-assistant/pkg/log"
)

// Config holds the middleware settings.
type Config struct {
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RateLimitPerMin, limiterTTL),
	}
}

const (
	HeaderUserID    = "X-User-ID"
	HeaderRequestID = "X-Request-ID"

	scopeKey = "scope"

	maxTrackedUsers = 1000
	limiterTTL      = 5 * time.Minute
)
