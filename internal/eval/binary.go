package eval

import (
	"github.com/cwbudde/go-jinja/internal/rendercontext"
	"github.com/cwbudde/go-jinja/internal/testers"
	"github.com/cwbudde/go-jinja/internal/values"
)

// BinaryExpression dispatches on Op per spec.md §4.C: short-circuit
// logical and/or, comparison/arithmetic through BinaryMathOperation,
// `in` through the `in` tester, and string concatenation through the
// render context's width-coercion callback.
type BinaryExpression struct {
	Op    BinaryOp
	Left  Expression
	Right Expression
}

// NewBinary builds a BinaryExpression.
func NewBinary(op BinaryOp, left, right Expression) *BinaryExpression {
	return &BinaryExpression{Op: op, Left: left, Right: right}
}

// Evaluate implements Expression. The left operand is always fully
// evaluated before the right, except for the short-circuit logical
// operators, which may skip the right entirely (spec.md §5).
func (b *BinaryExpression) Evaluate(ctx *rendercontext.Context) values.InternalValue {
	left := b.Left.Evaluate(ctx)

	switch b.Op {
	case OpLogicalAnd:
		if !left.ConvertToBool() {
			return values.Bool(false).SetTemporary(true)
		}
		right := b.Right.Evaluate(ctx)
		return values.Bool(right.ConvertToBool()).SetTemporary(true)
	case OpLogicalOr:
		if left.ConvertToBool() {
			return values.Bool(true).SetTemporary(true)
		}
		right := b.Right.Evaluate(ctx)
		return values.Bool(right.ConvertToBool()).SetTemporary(true)
	case OpIn:
		right := b.Right.Evaluate(ctx)
		tester, err := testers.Default().CreateTester("in")
		if err != nil {
			return values.Empty()
		}
		return values.Bool(tester.Test(left, []values.InternalValue{right})).SetTemporary(true)
	case OpStringConcat:
		right := b.Right.Evaluate(ctx)
		return stringConcat(ctx, left, right)
	default:
		right := b.Right.Evaluate(ctx)
		// Go's GC makes the "reuse a temporary operand's storage"
		// optimization spec.md §3 describes moot here — there is no
		// pool slot to reclaim, only a struct copy.
		return applyBinaryMath(b.Op, left, right)
	}
}

// stringConcat coerces both operands to a common-width target string
// via the renderer callback, then concatenates, per spec.md §3's
// narrow/wide non-mixing invariant.
func stringConcat(ctx *rendercontext.Context, left, right values.InternalValue) values.InternalValue {
	cb := ctx.GetRendererCallback()
	wide := left.IsWide() || right.IsWide()
	ls := values.NewTargetString(left.ConvertToString(), left.IsWide())
	rs := values.NewTargetString(right.ConvertToString(), right.IsWide())
	ls = cb.CoerceWidth(ls, wide)
	rs = cb.CoerceWidth(rs, wide)
	return values.FromTargetString(values.NewTargetString(ls.String()+rs.String(), wide)).SetTemporary(true)
}
