// Package binder implements the call-parameter binder of spec.md §4.D:
// reconciling a caller's mixed positional+keyword argument list against
// a callee's declared parameter schema.
//
// Nothing in go-dws needed this — DWScript calls are purely
// positional/by-name-is-the-same-as-by-position, with no Python-style
// keyword arguments or *args/**kwargs — so this package has no direct
// teacher file to adapt. It is grounded instead on the two idioms the
// teacher uses everywhere else a name must be reconciled against a
// schema: go-dws's internal/interp/types.FunctionRegistry (a
// construct-once, read-many registry keyed by declared name) supplies
// the registry shape used elsewhere in this module, and this file
// implements spec.md §4.D's own described algorithm literally,
// following the design note that the doubly-linked unbound chain is
// "two parallel index arrays over the schema, not a heap-allocated
// list."
package binder

import "github.com/cwbudde/go-jinja/internal/values"

// ArgumentInfo is the callee's declared parameter (spec.md §3).
type ArgumentInfo = values.ArgumentInfo

// Placeholder parameter names that participate in the schema but never
// consume a caller argument (spec.md §4.D).
const (
	PlaceholderArgs   = "*args"
	PlaceholderKwargs = "**kwargs"
)

// CallParams is the caller's argument bundle: an ordered list of
// positional expressions and an insertion-order map of keyword name to
// expression (spec.md §3). It is generic over the expression
// representation E so this package has no dependency on internal/eval.
type CallParams[E any] struct {
	Positional []E
	names      []string
	kw         map[string]E
}

// NewCallParams creates an empty argument bundle.
func NewCallParams[E any]() *CallParams[E] {
	return &CallParams[E]{kw: make(map[string]E)}
}

// AddPositional appends a positional argument expression.
func (c *CallParams[E]) AddPositional(e E) {
	c.Positional = append(c.Positional, e)
}

// AddKeyword adds (or overwrites) a keyword argument expression,
// recording first-seen insertion order.
func (c *CallParams[E]) AddKeyword(name string, e E) {
	if _, exists := c.kw[name]; !exists {
		c.names = append(c.names, name)
	}
	c.kw[name] = e
}

// Keyword looks up a keyword argument by name.
func (c *CallParams[E]) Keyword(name string) (E, bool) {
	e, ok := c.kw[name]
	return e, ok
}

// KeywordNames returns keyword argument names in insertion order.
func (c *CallParams[E]) KeywordNames() []string {
	return c.names
}

// ParsedArguments is the binder's output (spec.md §3).
type ParsedArguments[E any] struct {
	Args         map[string]E
	ExtraPos     []E
	ExtraKeyword map[string]E
}

// slotState tracks what happened to a declared schema slot during
// binding.
type slotState uint8

const (
	stateNotFound slotState = iota
	stateNotFoundMandatory
	stateIgnored
	stateBound
)

// Bind reconciles params against schema, in schema order, per the
// five-step algorithm of spec.md §4.D. wrapDefault converts a declared
// default InternalValue into a constant expression of type E, used
// when a slot goes unbound but has a default. The second return value
// is isSucceeded: false means a mandatory parameter has no binding —
// callers should surface evalerr.ArgMismatch and treat the call as
// empty, per spec.md §7.
func Bind[E any](params *CallParams[E], schema []ArgumentInfo, wrapDefault func(values.InternalValue) E) (*ParsedArguments[E], bool) {
	n := len(schema)
	state := make([]slotState, n)
	next := make([]int, n)
	for i := range next {
		next[i] = -1
	}

	out := &ParsedArguments[E]{Args: make(map[string]E, n)}

	// Pass 1 — keyword match, building the unbound chain as we go.
	firstUnbound, lastUnbound := -1, -1
	for i, p := range schema {
		switch {
		case p.Name == PlaceholderArgs || p.Name == PlaceholderKwargs:
			state[i] = stateIgnored
		default:
			if e, ok := params.Keyword(p.Name); ok {
				out.Args[p.Name] = e
				state[i] = stateBound
				continue
			}
			if p.Mandatory {
				state[i] = stateNotFoundMandatory
			} else {
				state[i] = stateNotFound
			}
		}

		if firstUnbound == -1 {
			firstUnbound = i
		} else {
			next[lastUnbound] = i
		}
		lastUnbound = i
	}

	var unboundChain []int
	for i := firstUnbound; i != -1; i = next[i] {
		unboundChain = append(unboundChain, i)
	}

	// Pass 2 — locate the positional scanning window. It starts at the
	// first mandatory unbound slot (slot 0 in the chain if none are
	// mandatory); slots before that point — necessarily optional — are
	// included only when there are enough positionals to reach every
	// slot in the chain without starving a mandatory one further down.
	windowStart := 0
	firstMandatoryPos := -1
	nonIgnoredCount := 0
	for pos, idx := range unboundChain {
		if state[idx] != stateIgnored {
			nonIgnoredCount++
		}
		if firstMandatoryPos == -1 && state[idx] == stateNotFoundMandatory {
			firstMandatoryPos = pos
		}
	}
	if firstMandatoryPos > 0 && len(params.Positional) < nonIgnoredCount {
		windowStart = firstMandatoryPos
	}

	// Pass 3 — walk positionals through the unbound chain from the
	// window start, skipping Ignored placeholder slots without
	// consuming a positional.
	posIdx, chainPos := 0, windowStart
	for posIdx < len(params.Positional) && chainPos < len(unboundChain) {
		slot := unboundChain[chainPos]
		if state[slot] == stateIgnored {
			chainPos++
			continue
		}
		out.Args[schema[slot].Name] = params.Positional[posIdx]
		state[slot] = stateBound
		posIdx++
		chainPos++
	}
	if posIdx < len(params.Positional) {
		out.ExtraPos = append(out.ExtraPos, params.Positional[posIdx:]...)
	}

	// Pass 4 — defaults and mandatory-failure detection.
	ok := true
	for i, p := range schema {
		if state[i] == stateBound || state[i] == stateIgnored {
			continue
		}
		if !p.DefaultValue.IsEmpty() {
			out.Args[p.Name] = wrapDefault(p.DefaultValue)
			continue
		}
		if state[i] == stateNotFoundMandatory {
			ok = false
		}
	}

	// Pass 5 — keyword arguments matching no declared name become extras.
	declared := make(map[string]bool, n)
	for _, p := range schema {
		declared[p.Name] = true
	}
	for _, name := range params.KeywordNames() {
		if declared[name] {
			continue
		}
		if out.ExtraKeyword == nil {
			out.ExtraKeyword = make(map[string]E)
		}
		e, _ := params.Keyword(name)
		out.ExtraKeyword[name] = e
	}

	return out, ok
}
