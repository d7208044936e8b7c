package check

import (
	"context"
	"time"

	"go-health/internal/domain/model"
	"go-health/pkg/log"
)

// WarmupCheck simulates a dependency that takes a while to initialize,
// such as a database warming its caches: it reports DOWN until the
// configured duration has elapsed since creation, then UP forever after.
// Useful for exercising readiness-gate behavior in demos and tests.
type WarmupCheck struct {
	created time.Time
	warmup  time.Duration
	now     func() time.Time
}

// NewWarmupCheck creates a check that becomes ready warmup after creation.
func NewWarmupCheck(warmup time.Duration) *WarmupCheck {
	return &WarmupCheck{
		created: time.Now(),
		warmup:  warmup,
		now:     time.Now,
	}
}

func (c *WarmupCheck) Check(_ context.Context) model.CheckResult {
	elapsed := c.now().Sub(c.created)
	ready := elapsed > c.warmup

	log.Debugf("warmup check: ready=%t elapsed=%s", ready, elapsed)

	details := map[string]any{
		"warmup":  c.warmup.String(),
		"elapsed": elapsed.Round(time.Millisecond).String(),
	}
	if !ready {
		return model.CheckResult{Status: model.StatusDown, Details: details}
	}
	return model.UpResult(details)
}
