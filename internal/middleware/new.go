package middleware

import (
	"task-assistant/pkg/log"
)

// Config tunes the middlewares.
type Config struct {
	// RateLimitPerMin is the number of chat requests a client may send per
	// minute. Zero disables rate limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	m := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		m.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return m
}
