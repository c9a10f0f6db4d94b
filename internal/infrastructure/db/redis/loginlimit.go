package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultAttempts = 10
	defaultWindow   = time.Minute
)

// LoginLimiter is a fixed-window counter backed by Redis, keyed per client.
// Key format: loginlimit:<client_key>. The first increment in a window sets
// the expiry; the window slides only when the key lapses.
type LoginLimiter struct {
	client   *redis.Client
	attempts int64
	window   time.Duration
}

// NewLoginLimiter creates a LoginLimiter allowing attempts per window.
// Non-positive arguments fall back to defaults.
func NewLoginLimiter(client *redis.Client, attempts int64, window time.Duration) *LoginLimiter {
	if attempts <= 0 {
		attempts = defaultAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginLimiter{client: client, attempts: attempts, window: window}
}

// Allow records one attempt for key and reports whether it stays within the
// window budget.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	rkey := fmt.Sprintf("loginlimit:%s", key)

	n, err := l.client.Incr(ctx, rkey).Result()
	if err != nil {
		return true, fmt.Errorf("login limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, rkey, l.window).Err(); err != nil {
			return true, fmt.Errorf("login limit expire: %w", err)
		}
	}
	return n <= l.attempts, nil
}
