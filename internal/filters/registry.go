// Package filters implements the named filter registry and the string
// filter suite of spec.md §4.E, grounded on go-dws's
// internal/interp/builtins package: a construct-on-first-use,
// concurrency-safe registry of named callables
// (internal/interp/builtins/registry.go), and the string-handling
// idiom of internal/interp/builtins/{strings,strings_advanced,
// strings_compare}.go, which lean on golang.org/x/text for
// locale-aware casing and normalization rather than hand-rolling
// Unicode tables.
package filters

import (
	"sync"

	"github.com/cwbudde/go-jinja/internal/evalerr"
	"github.com/cwbudde/go-jinja/internal/rendercontext"
	"github.com/cwbudde/go-jinja/internal/values"
)

// Filter is a constructed, ready-to-apply filter instance. Filter
// chains are linear: a FilteredExpression evaluates its parent filter
// (if any) and feeds that result in as base, per spec.md §4.E.
type Filter interface {
	Apply(base values.InternalValue, ctx *rendercontext.Context) values.InternalValue
}

// FilterFunc adapts a plain function to the Filter interface.
type FilterFunc func(base values.InternalValue, ctx *rendercontext.Context) values.InternalValue

// Apply implements Filter.
func (f FilterFunc) Apply(base values.InternalValue, ctx *rendercontext.Context) values.InternalValue {
	return f(base, ctx)
}

// Params is a filter call's already-evaluated argument list: filters
// are applied to a base value that's already been computed, so unlike
// CallParams (which carries unevaluated expressions for the binder),
// filter arguments are evaluated up front by the FilteredExpression
// node before CreateFilter is invoked.
type Params struct {
	Positional []values.InternalValue
	Keyword    map[string]values.InternalValue
}

// Pos returns the i-th positional argument, or def if absent.
func (p Params) Pos(i int, def values.InternalValue) values.InternalValue {
	if i < 0 || i >= len(p.Positional) {
		return def
	}
	return p.Positional[i]
}

// Named returns a keyword argument by name, or def if absent. Keyword
// arguments take precedence when both a positional and a keyword value
// would apply to the same logical parameter (mirrors how the call
// binder treats keywords as already-claimed slots).
func (p Params) Named(name string, def values.InternalValue) values.InternalValue {
	if p.Keyword == nil {
		return def
	}
	if v, ok := p.Keyword[name]; ok {
		return v
	}
	return def
}

// Factory builds a Filter from already-evaluated call parameters.
type Factory func(params Params) (Filter, error)

// Registry is a concurrency-safe, name-keyed set of filter factories.
// Per spec.md §9, "the filter/tester registries are process-wide
// immutable maps populated at startup... must be safe for concurrent
// read," matching go-dws's builtins.Registry shape.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds name to the registry, overwriting any prior factory.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// CreateFilter constructs a Filter for name using params, per
// spec.md §4.E's CreateFilter(name, params, pool) signature (pool is
// threaded through via the InternalValue arguments already carrying
// their own pool handles, so it isn't a separate parameter here).
// Returns an evalerr.UnknownFilter-class error on a registry miss —
// a construction-time failure surfaced to the template loader, never
// swallowed into an empty value.
func (r *Registry) CreateFilter(name string, params Params) (Filter, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, evalerr.UnknownFilter(name)
	}
	return factory(params)
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry populated with every
// built-in filter named in spec.md §6, constructed once on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		registerStringFilters(defaultRegistry)
		registerCollectionFilters(defaultRegistry)
		registerPprintFilter(defaultRegistry)
	})
	return defaultRegistry
}
