package ratelimit

import (
	"context"
	"time"
)

// Limiter throttles repeated attempts against a key (e.g. login attempts
// per email and client address).
type Limiter interface {
	// Allow reports whether another attempt under key is permitted within
	// the window, recording the attempt if so.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	// Reset clears the attempt history for a key (e.g. after a successful
	// login).
	Reset(ctx context.Context, key string) error
}

// NoopLimiter permits everything; used when rate limiting is disabled.
type NoopLimiter struct{}

func (NoopLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	return true, nil
}

func (NoopLimiter) Reset(ctx context.Context, key string) error {
	return nil
}
