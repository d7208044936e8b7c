package health

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go-health/internal/domain/model"
)

func countingCheck(calls *atomic.Int64) Check {
	return CheckFunc(func(_ context.Context) model.CheckResult {
		calls.Add(1)
		return model.UpResult(nil)
	})
}

func TestCachedCheck_ServesFreshResult(t *testing.T) {
	var calls atomic.Int64
	cached := NewCachedCheck(countingCheck(&calls), time.Minute)

	now := time.Unix(1000, 0)
	cached.now = func() time.Time { return now }

	ctx := context.Background()
	cached.Check(ctx)
	cached.Check(ctx)
	cached.Check(ctx)

	if got := calls.Load(); got != 1 {
		t.Errorf("underlying check ran %d times within TTL, want 1", got)
	}
}

func TestCachedCheck_ExpiresAfterTTL(t *testing.T) {
	var calls atomic.Int64
	cached := NewCachedCheck(countingCheck(&calls), time.Minute)

	now := time.Unix(1000, 0)
	cached.now = func() time.Time { return now }

	ctx := context.Background()
	cached.Check(ctx)

	now = now.Add(2 * time.Minute)
	cached.Check(ctx)

	if got := calls.Load(); got != 2 {
		t.Errorf("underlying check ran %d times across TTL expiry, want 2", got)
	}
}

func TestCachedCheck_RefreshBypassesTTL(t *testing.T) {
	var calls atomic.Int64
	cached := NewCachedCheck(countingCheck(&calls), time.Hour)

	ctx := context.Background()
	cached.Check(ctx)
	cached.Refresh(ctx)

	if got := calls.Load(); got != 2 {
		t.Errorf("underlying check ran %d times, want 2 (one forced)", got)
	}
}

func TestCachedCheck_ZeroTTLPassesThrough(t *testing.T) {
	var calls atomic.Int64
	cached := NewCachedCheck(countingCheck(&calls), 0)

	ctx := context.Background()
	cached.Check(ctx)
	cached.Check(ctx)

	if got := calls.Load(); got != 2 {
		t.Errorf("underlying check ran %d times with caching disabled, want 2", got)
	}
}
