package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeEvaler struct {
	counts map[string]int64
	err    error
}

func (f *fakeEvaler) Eval(ctx context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	cmd := redis.NewCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	if f.counts == nil {
		f.counts = make(map[string]int64)
	}
	f.counts[keys[0]]++
	cmd.SetVal(f.counts[keys[0]])
	return cmd
}

func TestShareRateLimiter_AllowsUpToMax(t *testing.T) {
	limiter := &redisShareRateLimiter{
		client: &fakeEvaler{},
		window: time.Minute,
		max:    2,
		prefix: "share:rl:",
	}

	if !limiter.Allow("token-1") || !limiter.Allow("token-1") {
		t.Fatalf("expected first two attempts allowed")
	}
	if limiter.Allow("token-1") {
		t.Fatalf("expected third attempt denied")
	}
	if !limiter.Allow("token-2") {
		t.Fatalf("expected independent budget per share token")
	}
}

func TestShareRateLimiter_EmptyKeyDenied(t *testing.T) {
	limiter := &redisShareRateLimiter{client: &fakeEvaler{}, window: time.Minute, max: 3, prefix: "share:rl:"}

	if limiter.Allow("   ") {
		t.Fatalf("expected empty key denied")
	}
}

func TestShareRateLimiter_RedisFailureFailsOpen(t *testing.T) {
	limiter := &redisShareRateLimiter{
		client: &fakeEvaler{err: errors.New("redis down")},
		window: time.Minute,
		max:    1,
		prefix: "share:rl:",
	}

	if !limiter.Allow("token-1") {
		t.Fatalf("expected fail-open when redis errors")
	}
}
