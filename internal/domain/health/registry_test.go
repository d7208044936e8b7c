package health

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go-health/internal/domain/model"
)

// staticCheck always returns the same result.
func staticCheck(status model.Status) Check {
	return CheckFunc(func(_ context.Context) model.CheckResult {
		return model.CheckResult{Status: status}
	})
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register("db", staticCheck(model.StatusUp)); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	check, err := registry.Get("db")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got := check.Check(context.Background()).Status; got != model.StatusUp {
		t.Errorf("check status = %s, want UP", got)
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register("db", staticCheck(model.StatusUp)); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	err := registry.Register("db", staticCheck(model.StatusDown))
	if !errors.Is(err, ErrDuplicateCheck) {
		t.Errorf("expected ErrDuplicateCheck, got %v", err)
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Get("missing")
	if !errors.Is(err, ErrCheckNotFound) {
		t.Errorf("expected ErrCheckNotFound, got %v", err)
	}
}

func TestRegistry_AllIsSnapshot(t *testing.T) {
	registry := NewRegistry()
	registry.Register("a", staticCheck(model.StatusUp))
	registry.Register("b", staticCheck(model.StatusUp))

	snapshot := registry.All()
	if len(snapshot) != 2 {
		t.Fatalf("snapshot size = %d, want 2", len(snapshot))
	}

	// Later registrations must not leak into an existing snapshot.
	registry.Register("c", staticCheck(model.StatusUp))
	if len(snapshot) != 2 {
		t.Errorf("snapshot mutated by later registration")
	}
}

func TestRegistry_Names(t *testing.T) {
	registry := NewRegistry()
	registry.Register("redis", staticCheck(model.StatusUp))
	registry.Register("db", staticCheck(model.StatusUp))
	registry.Register("queue", staticCheck(model.StatusUp))

	got := registry.Names()
	want := []string{"db", "queue", "redis"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRegistry_Unregister(t *testing.T) {
	registry := NewRegistry()
	registry.Register("db", staticCheck(model.StatusUp))
	registry.Unregister("db")

	if _, err := registry.Get("db"); !errors.Is(err, ErrCheckNotFound) {
		t.Errorf("expected check to be removed, got %v", err)
	}
}
