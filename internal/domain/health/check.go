// Package health implements the grouped health-check engine: a registry of
// named checks, an evaluator that runs them with a hard timeout, and group
// resolution with per-group detail visibility.
//
// Checks are opaque units of evaluation logic. The engine makes no
// assumption about what a check does beyond the Check contract; database
// pings, queue attribute reads and warm-up simulations all plug in the
// same way.
package health

import (
	"context"

	"go-health/internal/domain/model"
)

// Check is a single unit of dependency or self-health evaluation logic.
// Implementations must honor ctx cancellation for anything that blocks,
// and report failures through the returned result rather than panicking.
type Check interface {
	Check(ctx context.Context) model.CheckResult
}

// CheckFunc adapts a plain function to the Check interface.
type CheckFunc func(ctx context.Context) model.CheckResult

func (f CheckFunc) Check(ctx context.Context) model.CheckResult {
	return f(ctx)
}
