package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultLimit  = 10
	defaultWindow = time.Minute
)

// LoginLimiter throttles login attempts per client address using a fixed
// window counter. Key format: login_attempts:<addr>
//
// This is a transport-edge guard only; the account service itself keeps no
// lockout state.
type LoginLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewLoginLimiter creates a LoginLimiter. Non-positive limit or window fall
// back to 10 attempts per minute.
func NewLoginLimiter(client *redis.Client, limit int, window time.Duration) *LoginLimiter {
	if limit <= 0 {
		limit = defaultLimit
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginLimiter{client: client, limit: limit, window: window}
}

// Allow records one attempt for addr and reports whether it is still within
// the window's budget.
func (l *LoginLimiter) Allow(ctx context.Context, addr string) (bool, error) {
	key := l.key(addr)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		// First attempt in this window starts the expiry clock.
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}

	return n <= int64(l.limit), nil
}

func (l *LoginLimiter) key(addr string) string {
	return "login_attempts:" + addr
}
