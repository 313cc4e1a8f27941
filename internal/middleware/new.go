package middleware

import (
	"weekly-checklist/pkg/log"
)

// Config holds the limits applied to write endpoints.
type Config struct {
	MaxBodyBytes    int64 // 0 disables the body cap
	RateLimitPerMin int   // 0 disables rate limiting
}

type Middleware struct {
	l            log.Logger
	maxBodyBytes int64
	limiter      *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:            l,
		maxBodyBytes: cfg.MaxBodyBytes,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
