package health

import (
	"context"
	"fmt"
	"time"

	"go-health/internal/domain/model"
	"go-health/pkg/log"
)

// DefaultCheckTimeout bounds a single check evaluation. It is deliberately
// larger than typical orchestrator polling intervals would suggest; a
// too-tight timeout makes slow-but-healthy dependencies flap.
const DefaultCheckTimeout = 3 * time.Second

// Evaluator runs a single check with a hard per-check timeout and converts
// every failure mode (error, panic, deadline) into a DOWN result. A check
// can never crash the evaluator or stall a group query past the deadline.
type Evaluator struct {
	timeout time.Duration
}

// NewEvaluator creates an Evaluator with the given per-check timeout.
// A non-positive timeout falls back to DefaultCheckTimeout.
func NewEvaluator(timeout time.Duration) *Evaluator {
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}
	return &Evaluator{timeout: timeout}
}

// Timeout returns the per-check timeout in effect.
func (e *Evaluator) Timeout() time.Duration {
	return e.timeout
}

// Evaluate runs the check and returns its result stamped with the check
// name, completion time and duration.
//
// The check runs in its own goroutine. If it does not finish within the
// timeout (or ctx is cancelled first), the result is DOWN with
// ErrEvaluationTimeout and the goroutine is abandoned; cancellation of the
// underlying work is cooperative via the context passed to the check.
func (e *Evaluator) Evaluate(ctx context.Context, name string, check Check) model.CheckResult {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	done := make(chan model.CheckResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("health check %s panicked: %v", name, r)
				done <- model.DownResult(fmt.Errorf("%w: %v", ErrCheckPanic, r), nil)
			}
		}()
		done <- check.Check(ctx)
	}()

	var result model.CheckResult
	select {
	case result = <-done:
	case <-ctx.Done():
		result = model.DownResult(fmt.Errorf("%w after %s: %v", ErrEvaluationTimeout, e.timeout, ctx.Err()), nil)
	}

	result.Name = name
	result.Timestamp = time.Now()
	result.Duration = time.Since(start)

	log.Debugf("health check %s evaluated: %s in %s", name, result.Status, result.Duration)
	return result
}
