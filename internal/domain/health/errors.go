package health

import "errors"

var (
	// ErrDuplicateCheck is returned when registering a check under a name
	// that is already taken.
	ErrDuplicateCheck = errors.New("check name already registered")

	// ErrCheckNotFound is returned when looking up a check name that is
	// not in the registry.
	ErrCheckNotFound = errors.New("check not found")

	// ErrGroupNotFound is returned when resolving a group name that was
	// never configured. It indicates a broken deployment rather than an
	// unhealthy dependency, so the boundary layer surfaces it as a 404
	// instead of folding it into a DOWN status.
	ErrGroupNotFound = errors.New("health group not found")

	// ErrEvaluationTimeout marks results of checks that did not complete
	// within the evaluator's per-check timeout.
	ErrEvaluationTimeout = errors.New("check evaluation timed out")

	// ErrCheckPanic marks results of checks whose evaluation panicked.
	ErrCheckPanic = errors.New("check evaluation panicked")
)
