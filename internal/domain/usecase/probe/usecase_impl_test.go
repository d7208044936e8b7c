package probe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"go-health/internal/domain/health"
	"go-health/internal/domain/model"
)

// switchableCheck reports a status that tests can flip at runtime,
// standing in for a dependency that warms up or regresses.
type switchableCheck struct {
	mu     sync.Mutex
	status model.Status
}

func (s *switchableCheck) Check(_ context.Context) model.CheckResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CheckResult{Status: s.status}
}

func (s *switchableCheck) set(status model.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

func newUseCase(t *testing.T, registry *health.Registry, groups ...health.Group) UseCase {
	t.Helper()
	table, err := health.NewGroups(registry, groups...)
	if err != nil {
		t.Fatalf("NewGroups failed: %v", err)
	}
	return NewProbeUseCase(table, health.NewEvaluator(time.Second), nil)
}

func TestQuery_ReadinessFollowsDependencyWarmup(t *testing.T) {
	fake := &switchableCheck{status: model.StatusDown}
	registry := health.NewRegistry()
	if err := registry.Register("fake", fake); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	useCase := newUseCase(t, registry,
		health.Group{Name: "readiness", Members: []string{health.Wildcard}, ShowDetails: health.ShowDetailsAlways},
		health.Group{Name: "liveness", ShowDetails: health.ShowDetailsNever},
	)
	ctx := context.Background()

	// Before warm-up: readiness is DOWN with visible components.
	code, response, err := useCase.Query(ctx, "readiness", model.Caller{})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if code != http.StatusServiceUnavailable {
		t.Errorf("code = %d, want 503", code)
	}
	if response.Status != model.StatusDown {
		t.Errorf("status = %s, want DOWN", response.Status)
	}
	if response.Components["fake"].Status != model.StatusDown {
		t.Errorf("components.fake = %+v, want DOWN", response.Components["fake"])
	}

	// Liveness has no members and stays UP regardless, without components.
	code, response, err = useCase.Query(ctx, "liveness", model.Caller{})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if code != http.StatusOK || response.Status != model.StatusUp {
		t.Errorf("liveness = %d/%s, want 200/UP", code, response.Status)
	}
	if response.Components != nil {
		t.Errorf("liveness leaked components: %v", response.Components)
	}

	// After warm-up: readiness flips to UP.
	fake.set(model.StatusUp)
	code, response, err = useCase.Query(ctx, "readiness", model.Caller{})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if code != http.StatusOK || response.Status != model.StatusUp {
		t.Errorf("readiness after warmup = %d/%s, want 200/UP", code, response.Status)
	}
}

func TestQuery_UnknownGroup(t *testing.T) {
	useCase := newUseCase(t, health.NewRegistry(), health.Group{Name: "readiness"})

	_, _, err := useCase.Query(context.Background(), "bogus", model.Caller{})
	if !errors.Is(err, health.ErrGroupNotFound) {
		t.Errorf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestQuery_FaultingCheckFoldsToDown(t *testing.T) {
	registry := health.NewRegistry()
	registry.Register("ok", health.CheckFunc(func(_ context.Context) model.CheckResult {
		return model.UpResult(nil)
	}))
	registry.Register("broken", health.CheckFunc(func(_ context.Context) model.CheckResult {
		panic("unexpected nil pointer")
	}))

	useCase := newUseCase(t, registry,
		health.Group{Name: "readiness", Members: []string{health.Wildcard}, ShowDetails: health.ShowDetailsAlways})

	code, response, err := useCase.Query(context.Background(), "readiness", model.Caller{})
	if err != nil {
		t.Fatalf("query must not fail on a faulting check: %v", err)
	}
	if code != http.StatusServiceUnavailable || response.Status != model.StatusDown {
		t.Errorf("got %d/%s, want 503/DOWN", code, response.Status)
	}
	if response.Components["broken"].Error == "" {
		t.Error("faulting component should carry its error")
	}
	if response.Components["ok"].Status != model.StatusUp {
		t.Errorf("healthy component reported %s", response.Components["ok"].Status)
	}
}

func TestQuery_VisibilityWhenAuthorized(t *testing.T) {
	registry := health.NewRegistry()
	registry.Register("db", health.CheckFunc(func(_ context.Context) model.CheckResult {
		return model.UpResult(map[string]any{"addr": "localhost:5432"})
	}))

	useCase := newUseCase(t, registry,
		health.Group{Name: "internal", Members: []string{"db"}, ShowDetails: health.ShowDetailsWhenAuthorized})
	ctx := context.Background()

	_, response, err := useCase.Query(ctx, "internal", model.Caller{})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if response.Components != nil {
		t.Errorf("anonymous caller saw components: %v", response.Components)
	}

	_, response, err = useCase.Query(ctx, "internal", model.Caller{Authorized: true})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if response.Components["db"].Details["addr"] != "localhost:5432" {
		t.Errorf("authorized caller missing details: %+v", response.Components)
	}
}

func TestQuery_ConcurrentMembersAllEvaluated(t *testing.T) {
	registry := health.NewRegistry()
	for i := 0; i < 16; i++ {
		name := fmt.Sprintf("dep-%02d", i)
		registry.Register(name, health.CheckFunc(func(_ context.Context) model.CheckResult {
			time.Sleep(10 * time.Millisecond)
			return model.UpResult(nil)
		}))
	}

	useCase := newUseCase(t, registry,
		health.Group{Name: "readiness", Members: []string{health.Wildcard}, ShowDetails: health.ShowDetailsAlways})

	code, response, err := useCase.Query(context.Background(), "readiness", model.Caller{})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if code != http.StatusOK {
		t.Errorf("code = %d, want 200", code)
	}
	if len(response.Components) != 16 {
		t.Errorf("evaluated %d components, want 16", len(response.Components))
	}
}

func TestStatusCodes_CodeFor(t *testing.T) {
	codes := DefaultStatusCodes()
	if got := codes.CodeFor(model.StatusUp); got != http.StatusOK {
		t.Errorf("UP -> %d, want 200", got)
	}
	for _, status := range []model.Status{model.StatusDown, model.StatusUnknown, model.StatusOutOfService} {
		if got := codes.CodeFor(status); got != http.StatusServiceUnavailable {
			t.Errorf("%s -> %d, want 503", status, got)
		}
	}

	custom := StatusCodes{model.StatusOutOfService: http.StatusNotImplemented}
	if got := custom.CodeFor(model.StatusOutOfService); got != http.StatusNotImplemented {
		t.Errorf("override ignored: got %d", got)
	}
	if got := custom.CodeFor(model.StatusUp); got != http.StatusOK {
		t.Errorf("UP fallback = %d, want 200", got)
	}
}
