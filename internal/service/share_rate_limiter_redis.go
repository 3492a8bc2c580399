package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ShareRateLimiter acota los intentos de password sobre un share link.
type ShareRateLimiter interface {
	Allow(key string) bool
}

const redisShareAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

type redisShareRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

func NewRedisShareRateLimiter(client *redis.Client, window time.Duration, max int) ShareRateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisShareRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "share:rl:",
	}
}

func (l *redisShareRateLimiter) Allow(key string) bool {
	if l == nil || l.client == nil {
		return true
	}
	normalizedKey := strings.ToLower(strings.TrimSpace(key))
	if normalizedKey == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	redisKey := l.prefix + normalizedKey
	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}

	count, err := l.client.Eval(ctx, redisShareAllowScript, []string{redisKey}, seconds).Int64()
	if err != nil {
		// Ante un fallo de redis preferimos no bloquear el login del validador.
		return true
	}
	return count <= int64(l.max)
}
