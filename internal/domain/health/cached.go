package health

import (
	"context"
	"sync"
	"time"

	"go-health/internal/domain/model"
)

// CachedCheck layers a TTL cache over another check. Probe queries served
// within the TTL reuse the previous result instead of re-running the
// underlying evaluation, which keeps expensive dependency probes off the
// hot path of tight orchestrator polling intervals.
type CachedCheck struct {
	check Check
	ttl   time.Duration

	mu      sync.Mutex
	last    model.CheckResult
	fetched time.Time

	now func() time.Time
}

// NewCachedCheck wraps check with a result cache. A non-positive ttl
// disables caching and every call passes through.
func NewCachedCheck(check Check, ttl time.Duration) *CachedCheck {
	return &CachedCheck{
		check: check,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Check returns the cached result while it is fresh, re-evaluating the
// underlying check otherwise. Concurrent callers during a refresh
// serialize on the wrapper so the dependency sees one probe, not a
// stampede.
func (c *CachedCheck) Check(ctx context.Context) model.CheckResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ttl > 0 && !c.fetched.IsZero() && c.now().Sub(c.fetched) < c.ttl {
		return c.last
	}
	return c.refreshLocked(ctx)
}

// Refresh bypasses the TTL and re-evaluates the underlying check,
// storing the new result. Used by the background refresher.
func (c *CachedCheck) Refresh(ctx context.Context) model.CheckResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshLocked(ctx)
}

func (c *CachedCheck) refreshLocked(ctx context.Context) model.CheckResult {
	result := c.check.Check(ctx)
	c.last = result
	c.fetched = c.now()
	return result
}
