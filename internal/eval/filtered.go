package eval

import (
	"github.com/cwbudde/go-jinja/internal/evalerr"
	"github.com/cwbudde/go-jinja/internal/filters"
	"github.com/cwbudde/go-jinja/internal/rendercontext"
	"github.com/cwbudde/go-jinja/internal/values"
)

// FilteredExpression evaluates Inner and feeds the result through a
// named filter, per spec.md §4.C/§4.E. Filter chains are linear: a
// chain is a nesting of FilteredExpressions, each link holding the
// previous one as Inner, so the earlier filter is applied first and
// its result becomes this filter's base.
//
// The filter *name* is resolved once, at construction (NewFiltered
// checks the registry and returns evalerr.UnknownFilter on a miss —
// the one construction-time failure spec.md §7 names for this node).
// The filter's *arguments* are ordinary expressions re-evaluated on
// every render, since Jinja2 syntax only ever allows a literal
// identifier in filter position (`value | name(args)`), never a
// dynamic expression — so only the name, never the args, can be
// checked ahead of render time.
type FilteredExpression struct {
	Inner      Expression
	Name       string
	ArgExprs   []Expression
	KwExprs    map[string]Expression
	registry   *filters.Registry
}

// NewFiltered validates name against reg (or filters.Default() if reg
// is nil) and builds a FilteredExpression, or returns
// evalerr.UnknownFilter if name is not registered.
func NewFiltered(inner Expression, name string, argExprs []Expression, kwExprs map[string]Expression, reg *filters.Registry) (*FilteredExpression, error) {
	if reg == nil {
		reg = filters.Default()
	}
	if !reg.Has(name) {
		return nil, evalerr.UnknownFilter(name)
	}
	return &FilteredExpression{Inner: inner, Name: name, ArgExprs: argExprs, KwExprs: kwExprs, registry: reg}, nil
}

// Evaluate implements Expression.
func (f *FilteredExpression) Evaluate(ctx *rendercontext.Context) values.InternalValue {
	base := f.Inner.Evaluate(ctx)
	params := filters.Params{}
	if len(f.ArgExprs) > 0 {
		params.Positional = make([]values.InternalValue, len(f.ArgExprs))
		for i, e := range f.ArgExprs {
			params.Positional[i] = e.Evaluate(ctx)
		}
	}
	if len(f.KwExprs) > 0 {
		params.Keyword = make(map[string]values.InternalValue, len(f.KwExprs))
		for k, e := range f.KwExprs {
			params.Keyword[k] = e.Evaluate(ctx)
		}
	}
	filter, err := f.registry.CreateFilter(f.Name, params)
	if err != nil {
		// The name was validated at construction; a late failure here
		// means the registry changed underneath us, which shouldn't
		// happen for the process-wide default registry. Fail soft.
		return values.Empty()
	}
	return filter.Apply(base, ctx).SetTemporary(true)
}
