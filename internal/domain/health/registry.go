package health

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the set of named health checks. Registration normally
// happens once during process setup, but the registry is safe for
// concurrent use so queries never observe a partial view if a check is
// added while the server is running.
type Registry struct {
	mu     sync.RWMutex
	checks map[string]Check
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		checks: make(map[string]Check),
	}
}

// Register adds a check under the given name.
// Returns ErrDuplicateCheck if the name is already taken.
func (r *Registry) Register(name string, check Check) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.checks[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCheck, name)
	}
	r.checks[name] = check
	return nil
}

// Unregister removes a check by name. Removal is an administrative
// action; it is not part of the normal query path.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.checks, name)
}

// Get returns the check registered under name.
// Returns ErrCheckNotFound if the name is absent.
func (r *Registry) Get(name string) (Check, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	check, exists := r.checks[name]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrCheckNotFound, name)
	}
	return check, nil
}

// All returns a stable snapshot of the registered checks at call time.
func (r *Registry) All() map[string]Check {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]Check, len(r.checks))
	for name, check := range r.checks {
		snapshot[name] = check
	}
	return snapshot
}

// Names returns the registered check names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.checks))
	for name := range r.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
