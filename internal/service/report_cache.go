package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"persona-lab/internal/domain"
)

// ReportCache guarda reportes derivados por sesión. Los reportes nunca son
// fuente de verdad: un miss solo implica recalcular.
type ReportCache interface {
	Get(ctx context.Context, sessionID string) (domain.ValidationReport, bool)
	Set(ctx context.Context, sessionID string, report domain.ValidationReport, ttl time.Duration)
	Invalidate(ctx context.Context, sessionID string)
}

type memoryReportCache struct {
	mu    sync.Mutex
	items map[string]memoryCachedReport
}

type memoryCachedReport struct {
	report    domain.ValidationReport
	expiresAt time.Time
}

func NewMemoryReportCache() ReportCache {
	return &memoryReportCache{items: make(map[string]memoryCachedReport)}
}

func (c *memoryReportCache) Get(_ context.Context, sessionID string) (domain.ValidationReport, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[sessionID]
	if !ok {
		return domain.ValidationReport{}, false
	}
	if time.Now().UTC().After(item.expiresAt) {
		delete(c.items, sessionID)
		return domain.ValidationReport{}, false
	}
	return item.report, true
}

func (c *memoryReportCache) Set(_ context.Context, sessionID string, report domain.ValidationReport, ttl time.Duration) {
	if ttl <= 0 {
		ttl = time.Minute
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[sessionID] = memoryCachedReport{
		report:    report,
		expiresAt: time.Now().UTC().Add(ttl),
	}
}

func (c *memoryReportCache) Invalidate(_ context.Context, sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, sessionID)
}

type redisReportCache struct {
	client *redis.Client
	prefix string
}

func NewRedisReportCache(client *redis.Client) ReportCache {
	if client == nil {
		return nil
	}
	return &redisReportCache{client: client, prefix: "report:"}
}

func (c *redisReportCache) Get(ctx context.Context, sessionID string) (domain.ValidationReport, bool) {
	payload, err := c.client.Get(ctx, c.prefix+sessionID).Bytes()
	if err != nil {
		return domain.ValidationReport{}, false
	}
	var report domain.ValidationReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return domain.ValidationReport{}, false
	}
	return report, true
}

func (c *redisReportCache) Set(ctx context.Context, sessionID string, report domain.ValidationReport, ttl time.Duration) {
	payload, err := json.Marshal(report)
	if err != nil {
		return
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	c.client.Set(ctx, c.prefix+sessionID, payload, ttl)
}

func (c *redisReportCache) Invalidate(ctx context.Context, sessionID string) {
	c.client.Del(ctx, c.prefix+sessionID)
}
