package model

import "time"

// CheckResult captures the outcome of a single check evaluation.
// It is a value type and must not be mutated after creation.
type CheckResult struct {
	// Name is the registry name of the check that produced this result.
	Name string

	// Status is the health state reported by the check.
	Status Status

	// Details holds check-specific diagnostic values (addresses, pool
	// stats, timings). May be nil for checks that only report a status.
	Details map[string]any

	// Err holds the failure cause when the evaluation failed, timed out
	// or panicked. Always nil when Status is UP.
	Err error

	// Timestamp is when the evaluation finished.
	Timestamp time.Time

	// Duration is how long the evaluation took.
	Duration time.Duration
}

// UpResult builds a healthy result with optional details.
func UpResult(details map[string]any) CheckResult {
	return CheckResult{Status: StatusUp, Details: details}
}

// DownResult builds an unhealthy result carrying the failure cause.
func DownResult(err error, details map[string]any) CheckResult {
	return CheckResult{Status: StatusDown, Details: details, Err: err}
}

// OutOfServiceResult builds a result for an intentionally disabled
// dependency, distinct from an unreachable one.
func OutOfServiceResult(details map[string]any) CheckResult {
	return CheckResult{Status: StatusOutOfService, Details: details}
}
