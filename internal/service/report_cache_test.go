package service

import (
	"context"
	"testing"
	"time"

	"persona-lab/internal/domain"
)

func TestMemoryReportCache_SetGetInvalidate(t *testing.T) {
	cache := NewMemoryReportCache()
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "s1"); ok {
		t.Fatalf("expected miss on empty cache")
	}

	report := domain.ValidationReport{SessionID: "s1", OverallScore: 80}
	cache.Set(ctx, "s1", report, time.Minute)

	got, ok := cache.Get(ctx, "s1")
	if !ok || got.OverallScore != 80 {
		t.Fatalf("expected cached report, got %+v ok=%v", got, ok)
	}

	cache.Invalidate(ctx, "s1")
	if _, ok := cache.Get(ctx, "s1"); ok {
		t.Fatalf("expected miss after invalidate")
	}
}

func TestMemoryReportCache_Expires(t *testing.T) {
	cache := NewMemoryReportCache().(*memoryReportCache)
	ctx := context.Background()

	cache.Set(ctx, "s1", domain.ValidationReport{SessionID: "s1"}, time.Minute)
	item := cache.items["s1"]
	item.expiresAt = time.Now().UTC().Add(-time.Second)
	cache.items["s1"] = item

	if _, ok := cache.Get(ctx, "s1"); ok {
		t.Fatalf("expected expired entry to miss")
	}
}
