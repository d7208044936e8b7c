package probe

import (
	"context"

	"go-health/internal/domain/model"
)

// UseCase answers probe queries: it resolves a group, evaluates its member
// checks, aggregates their statuses and shapes the response according to
// the group's visibility policy for the given caller.
type UseCase interface {
	// Query returns the HTTP status code and response body for a group.
	// The error is non-nil only for structural problems (unknown group,
	// group referencing an unregistered check); dependency failures are
	// folded into the response status instead.
	Query(ctx context.Context, groupName string, caller model.Caller) (int, model.HealthResponse, error)

	// Groups lists the configured group names.
	Groups() []string
}
