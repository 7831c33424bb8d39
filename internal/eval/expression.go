// Package eval implements the expression-node tree of spec.md §4.C: a
// composed tree of evaluators, each producing an InternalValue given a
// RenderContext. It is grounded on go-dws's
// internal/interp/evaluator/visitor_expressions_*.go family — a large
// switch-shaped Eval dispatch over concrete node types — condensed here
// into one Expression interface with a handful of concrete
// implementations, since this tree is far smaller than a full
// statement/OOP language's expression grammar.
package eval

import (
	"github.com/cwbudde/go-jinja/internal/rendercontext"
	"github.com/cwbudde/go-jinja/internal/values"
)

// Expression is any node in the tree. Evaluate never returns a Go
// error: per spec.md §7, every render-time condition a node can hit
//(unknown name, type mismatch, division by zero, out-of-range index)
// resolves to the empty value rather than aborting the render.
type Expression interface {
	Evaluate(ctx *rendercontext.Context) values.InternalValue
}

// Renderable is implemented by nodes that can stream their result
// directly to an output sink instead of going through Evaluate first —
// used so a bare statement-callable call can write incrementally
// rather than buffering into an InternalValue.
type Renderable interface {
	Render(sink values.OutStream, ctx *rendercontext.Context) error
}

// ConstantExpression wraps a literal value computed once (at parse
// time) and returned by every Evaluate call.
type ConstantExpression struct {
	Value values.InternalValue
}

// NewConstant builds a ConstantExpression.
func NewConstant(v values.InternalValue) *ConstantExpression {
	return &ConstantExpression{Value: v}
}

// Evaluate implements Expression. The stored value is returned as-is;
// it is non-temporary, since it backs shared, reusable literal storage
// rather than a freshly computed intermediate.
func (c *ConstantExpression) Evaluate(ctx *rendercontext.Context) values.InternalValue {
	return c.Value
}

// ValueRefExpression looks up a name in the context's scope stack.
type ValueRefExpression struct {
	Name string
}

// NewValueRef builds a ValueRefExpression.
func NewValueRef(name string) *ValueRefExpression {
	return &ValueRefExpression{Name: name}
}

// Evaluate implements Expression. A miss returns the empty value
// rather than raising — per spec.md §4.C, ValueRefExpression never
// raises.
func (v *ValueRefExpression) Evaluate(ctx *rendercontext.Context) values.InternalValue {
	val, _ := ctx.FindValue(v.Name)
	return val
}

// SubscriptExpression evaluates a base expression, then walks a chain
// of index expressions against it: map key lookup (string index) or
// list element access (int index, negative counted from the end).
type SubscriptExpression struct {
	Base    Expression
	Indices []Expression
}

// NewSubscript builds a SubscriptExpression.
func NewSubscript(base Expression, indices ...Expression) *SubscriptExpression {
	return &SubscriptExpression{Base: base, Indices: indices}
}

// Evaluate implements Expression.
func (s *SubscriptExpression) Evaluate(ctx *rendercontext.Context) values.InternalValue {
	current := s.Base.Evaluate(ctx)
	for _, idxExpr := range s.Indices {
		idx := idxExpr.Evaluate(ctx)
		next := subscriptOnce(current, idx)
		if current.ShouldExtendLifetime() {
			next = next.SetParentData(current)
		}
		current = next
	}
	return current
}

// subscriptOnce performs a single index step, per spec.md §4.C:
// string key on a map, int index (allowing negatives) on a list;
// a map miss or an out-of-range list index both yield the empty value.
func subscriptOnce(base values.InternalValue, idx values.InternalValue) values.InternalValue {
	if m, ok := base.AsMap(); ok {
		key, isStr := idx.RawString()
		if !isStr {
			return values.Empty()
		}
		return m.GetOrEmpty(key)
	}
	if l, ok := base.AsList(); ok {
		i, inRange := l.ResolveIndex(idx.ConvertToInt(0))
		if !inRange {
			return values.Empty()
		}
		return l.At(i)
	}
	return values.Empty()
}
