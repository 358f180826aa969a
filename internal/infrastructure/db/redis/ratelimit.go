package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const window = time.Minute

// RateLimiter implements a fixed-window request counter backed by Redis.
// Key format: ratelimit:<subject>:<window_number>
type RateLimiter struct {
	client *redis.Client
	limit  int64
}

// NewRateLimiter creates a RateLimiter allowing limit requests per minute
// per subject.
func NewRateLimiter(client *redis.Client, limit int) *RateLimiter {
	return &RateLimiter{client: client, limit: int64(limit)}
}

// Allow records one request for the subject and reports whether it stays
// within the per-minute budget.
func (l *RateLimiter) Allow(ctx context.Context, subject string) (bool, error) {
	key := l.key(subject, time.Now())

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		// First hit opens the window; expire it so idle subjects cost nothing.
		if err := l.client.Expire(ctx, key, window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= l.limit, nil
}

func (l *RateLimiter) key(subject string, now time.Time) string {
	return fmt.Sprintf("ratelimit:%s:%d", subject, now.Unix()/int64(window.Seconds()))
}
