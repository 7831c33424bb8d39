// Package testers implements the named tester registry of spec.md §4.F
// and its built-in testers, mirroring internal/filters' registry shape
// (itself grounded on go-dws's internal/interp/builtins.Registry) scaled
// down to testers' narrower contract: a predicate over an already
// evaluated value plus already evaluated arguments, never a render-time
// error.
package testers

import (
	"sync"

	"github.com/cwbudde/go-jinja/internal/evalerr"
	"github.com/cwbudde/go-jinja/internal/values"
)

// Tester evaluates a boolean predicate over base and its arguments, per
// spec.md §4.F ("is" expressions and the select/reject filters).
type Tester interface {
	Test(base values.InternalValue, args []values.InternalValue) bool
}

// TesterFunc adapts a plain function to the Tester interface.
type TesterFunc func(base values.InternalValue, args []values.InternalValue) bool

// Test implements Tester.
func (f TesterFunc) Test(base values.InternalValue, args []values.InternalValue) bool {
	return f(base, args)
}

// Registry is a concurrency-safe, name-keyed set of testers.
type Registry struct {
	mu      sync.RWMutex
	testers map[string]Tester
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{testers: make(map[string]Tester)}
}

// Register adds name to the registry, overwriting any prior tester.
func (r *Registry) Register(name string, t Tester) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.testers[name] = t
}

// CreateTester looks up name, returning an evalerr.UnknownTester-class
// error on a miss — a construction-time failure, per spec.md §7.
func (r *Registry) CreateTester(name string) (Tester, error) {
	r.mu.RLock()
	t, ok := r.testers[name]
	r.mu.RUnlock()
	if !ok {
		return nil, evalerr.UnknownTester(name)
	}
	return t, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.testers[name]
	return ok
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, populated once on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		registerBuiltinTesters(defaultRegistry)
	})
	return defaultRegistry
}
