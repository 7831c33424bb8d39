package eval

import (
	"github.com/cwbudde/go-jinja/internal/rendercontext"
	"github.com/cwbudde/go-jinja/internal/values"
)

// IfExpression is a boolean guard paired with an alternate value,
// per spec.md §4.C (the `x if cond else y` conditional form).
type IfExpression struct {
	Test Expression
	Alt  Expression // may be nil, meaning "no else" -> empty
}

// NewIf builds an IfExpression.
func NewIf(test, alt Expression) *IfExpression {
	return &IfExpression{Test: test, Alt: alt}
}

// Evaluate implements Expression, returning the guard's truthiness.
func (i *IfExpression) Evaluate(ctx *rendercontext.Context) values.InternalValue {
	return values.Bool(i.Test.Evaluate(ctx).ConvertToBool()).SetTemporary(true)
}

// EvaluateAltValue returns the else branch's value, or empty if there
// is no else branch.
func (i *IfExpression) EvaluateAltValue(ctx *rendercontext.Context) values.InternalValue {
	if i.Alt == nil {
		return values.Empty()
	}
	return i.Alt.Evaluate(ctx)
}

// FullExpression composes a primary expression with an optional
// conditional guard, per spec.md §4.C: the top-level node the
// statement renderer invokes via Evaluate/Render.
type FullExpression struct {
	Primary Expression
	If      *IfExpression // nil when there is no guard
}

// NewFull builds a FullExpression.
func NewFull(primary Expression, ifExpr *IfExpression) *FullExpression {
	return &FullExpression{Primary: primary, If: ifExpr}
}

// Evaluate implements Expression: with no guard, returns Primary's
// value; with a guard, returns Primary's value when the guard is true
// and the alt value otherwise.
func (fe *FullExpression) Evaluate(ctx *rendercontext.Context) values.InternalValue {
	if fe.If == nil {
		return fe.Primary.Evaluate(ctx)
	}
	if fe.If.Evaluate(ctx).ConvertToBool() {
		return fe.Primary.Evaluate(ctx)
	}
	return fe.If.EvaluateAltValue(ctx)
}

// Render implements Renderable: with no guard, streams through
// Primary's own Render when Primary supports it (preserving streaming
// for callable statements); otherwise it falls back to
// evaluate-then-write, per spec.md §4.C.
func (fe *FullExpression) Render(sink values.OutStream, ctx *rendercontext.Context) error {
	if fe.If == nil {
		if r, ok := fe.Primary.(Renderable); ok {
			return r.Render(sink, ctx)
		}
		return sink.WriteValue(fe.Primary.Evaluate(ctx))
	}
	return sink.WriteValue(fe.Evaluate(ctx))
}
