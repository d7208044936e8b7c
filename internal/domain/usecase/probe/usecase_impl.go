package probe

import (
	"context"
	"net/http"
	"sync"

	"go-health/internal/domain/health"
	"go-health/internal/domain/model"
	"go-health/pkg/log"
)

// StatusCodes maps aggregate statuses to HTTP response codes. UP maps to
// 200 and everything else to 503 by default, which is what hides a DOWN
// group from a load balancer. Deployments that want OUT_OF_SERVICE (or
// UNKNOWN) on a distinct code override the mapping in configuration.
type StatusCodes map[model.Status]int

// DefaultStatusCodes returns the default mapping.
func DefaultStatusCodes() StatusCodes {
	return StatusCodes{model.StatusUp: http.StatusOK}
}

// CodeFor resolves the HTTP code for a status, falling back to 200 for UP
// and 503 for everything else.
func (sc StatusCodes) CodeFor(status model.Status) int {
	if code, ok := sc[status]; ok {
		return code
	}
	if status == model.StatusUp {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

type probeUseCase struct {
	groups    *health.Groups
	evaluator *health.Evaluator
	codes     StatusCodes
}

// NewProbeUseCase wires the group table, evaluator and status-code
// mapping into a query interface.
func NewProbeUseCase(groups *health.Groups, evaluator *health.Evaluator, codes StatusCodes) UseCase {
	if codes == nil {
		codes = DefaultStatusCodes()
	}
	return &probeUseCase{
		groups:    groups,
		evaluator: evaluator,
		codes:     codes,
	}
}

func (useCase *probeUseCase) Groups() []string {
	return useCase.groups.Names()
}

func (useCase *probeUseCase) Query(ctx context.Context, groupName string, caller model.Caller) (int, model.HealthResponse, error) {
	group, err := useCase.groups.Get(groupName)
	if err != nil {
		return 0, model.HealthResponse{}, err
	}

	members, err := useCase.groups.Resolve(groupName)
	if err != nil {
		return 0, model.HealthResponse{}, err
	}

	results := useCase.evaluateAll(ctx, members)
	status := model.AggregateResults(results)

	response := model.HealthResponse{Status: status}
	if group.ShowDetails.Visible(caller) {
		components := make(map[string]model.ComponentHealth, len(results))
		for _, result := range results {
			components[result.Name] = model.ComponentFromResult(result)
		}
		response.Components = components
	}

	log.Debugf("health group %s aggregated to %s from %d checks", groupName, status, len(results))
	return useCase.codes.CodeFor(status), response, nil
}

// evaluateAll runs the member checks concurrently with a join barrier.
// Aggregation is order-independent, so each result just lands in its own
// slot and no further coordination is needed.
func (useCase *probeUseCase) evaluateAll(ctx context.Context, members []health.Member) []model.CheckResult {
	results := make([]model.CheckResult, len(members))

	var wg sync.WaitGroup
	for i, member := range members {
		wg.Add(1)
		go func(slot int, member health.Member) {
			defer wg.Done()
			results[slot] = useCase.evaluator.Evaluate(ctx, member.Name, member.Check)
		}(i, member)
	}
	wg.Wait()

	return results
}
