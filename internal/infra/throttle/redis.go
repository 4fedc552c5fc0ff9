package throttle

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// LoginLimiter counts failed logins per key in a fixed window.
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
	prefix      string
}

func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &LoginLimiter{
		client:      client,
		maxAttempts: maxAttempts,
		window:      window,
		prefix:      "login:failures:",
	}
}

// Allow reports whether key is still under its failure limit.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	n, err := l.client.Get(ctx, l.prefix+key).Int()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return n < l.maxAttempts, nil
}

// Fail counts one failure; the window starts at the first one.
func (l *LoginLimiter) Fail(ctx context.Context, key string) error {
	k := l.prefix + key

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return err
	}
	if n == 1 {
		return l.client.Expire(ctx, k, l.window).Err()
	}
	return nil
}

func (l *LoginLimiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.prefix+key).Err()
}

func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}
