package middleware

import (
	"daily-planner/pkg/log"
)

// Config holds the settings shared by the HTTP middlewares.
type Config struct {
	AllowedOrigins       []string
	ResetRateLimitPerMin int
}

type Middleware struct {
	l              log.Logger
	allowedOrigins []string
	resetLimiter   *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:              l,
		allowedOrigins: cfg.AllowedOrigins,
		resetLimiter:   newRateLimiter(cfg.ResetRateLimitPerMin),
	}
}
