package eval

import (
	"github.com/cwbudde/go-jinja/internal/binder"
	"github.com/cwbudde/go-jinja/internal/rendercontext"
	"github.com/cwbudde/go-jinja/internal/values"
)

// CallExpression evaluates ValueRef to obtain a callable (or a
// special-function id) and invokes it with Params, per spec.md §4.C.
type CallExpression struct {
	ValueRef Expression
	Params   *binder.CallParams[Expression]
}

// NewCall builds a CallExpression with an empty argument bundle ready
// for AddPositional/AddKeyword.
func NewCall(valueRef Expression) *CallExpression {
	return &CallExpression{ValueRef: valueRef, Params: binder.NewCallParams[Expression]()}
}

// Evaluate implements Expression.
func (c *CallExpression) Evaluate(ctx *rendercontext.Context) values.InternalValue {
	target := c.ValueRef.Evaluate(ctx)

	callable, ok := target.AsCallable()
	if !ok {
		// Fall back to a single `operator()` subscript attempt, per
		// spec.md §4.C, before giving up.
		fallback := subscriptOnce(target, values.String("operator()"))
		callable, ok = fallback.AsCallable()
		if !ok {
			return values.Empty()
		}
	}

	if callable.Kind == values.SpecialFn {
		return c.evalSpecial(callable, ctx)
	}

	if callable.ExprFn == nil {
		return values.Empty()
	}

	bound, succeeded := c.bind(callable, ctx)
	if !succeeded {
		return values.Empty()
	}

	if err := ctx.EnterCall(); err != nil {
		return values.Empty()
	}
	defer ctx.LeaveCall()

	result, err := callable.ExprFn(bound, ctx)
	if err != nil {
		return values.Empty()
	}
	return result
}

// bind runs the call-parameter binder against callable's declared
// schema and evaluates every bound expression to produce a BoundCall.
func (c *CallExpression) bind(callable *values.Callable, ctx *rendercontext.Context) (*values.BoundCall, bool) {
	wrapDefault := func(v values.InternalValue) Expression { return NewConstant(v) }
	parsed, ok := binder.Bind(c.Params, callable.Params, wrapDefault)
	if !ok {
		return nil, false
	}
	out := &values.BoundCall{Args: make(map[string]values.InternalValue, len(parsed.Args))}
	for name, expr := range parsed.Args {
		out.Args[name] = expr.Evaluate(ctx)
	}
	if len(parsed.ExtraPos) > 0 {
		out.ExtraPos = make([]values.InternalValue, len(parsed.ExtraPos))
		for i, expr := range parsed.ExtraPos {
			out.ExtraPos[i] = expr.Evaluate(ctx)
		}
	}
	if len(parsed.ExtraKeyword) > 0 {
		out.ExtraKeyword = make(map[string]values.InternalValue, len(parsed.ExtraKeyword))
		for name, expr := range parsed.ExtraKeyword {
			out.ExtraKeyword[name] = expr.Evaluate(ctx)
		}
	}
	return out, true
}

// evalSpecial dispatches built-in special functions that the core
// evaluator implements directly rather than through the binder, per
// spec.md §4.C.
func (c *CallExpression) evalSpecial(callable *values.Callable, ctx *rendercontext.Context) values.InternalValue {
	switch callable.SpecialID {
	case values.RangeFn:
		return evalRange(c.Params.Positional, ctx)
	case values.LoopCycleFn:
		return evalLoopCycle(c.Params.Positional, ctx)
	default:
		return values.Empty()
	}
}

// evalRange implements range(start?, stop, step?): step defaults to
// 1; step 0 returns empty; the produced list has length
// max(0, ceil_toward_zero((stop-start)/step)) so that, e.g.,
// range(1, 10, 2) yields five elements ([1,3,5,7,9]), matching
// spec.md §8 test #7 and property #6.
func evalRange(args []Expression, ctx *rendercontext.Context) values.InternalValue {
	var start, stop, step int64 = 0, 0, 1
	switch len(args) {
	case 0:
		return values.Empty()
	case 1:
		stop = args[0].Evaluate(ctx).ConvertToInt(0)
	case 2:
		start = args[0].Evaluate(ctx).ConvertToInt(0)
		stop = args[1].Evaluate(ctx).ConvertToInt(0)
	default:
		start = args[0].Evaluate(ctx).ConvertToInt(0)
		stop = args[1].Evaluate(ctx).ConvertToInt(0)
		step = args[2].Evaluate(ctx).ConvertToInt(1)
	}
	if step == 0 {
		return values.Empty()
	}

	var count int64
	switch {
	case step > 0 && stop > start:
		count = ceilDiv(stop-start, step)
	case step < 0 && stop < start:
		count = ceilDiv(start-stop, -step)
	default:
		count = 0
	}
	if count < 0 {
		count = 0
	}

	list := values.NewGeneratedList(int(count), func(i int) values.InternalValue {
		return values.Int(start + step*int64(i))
	})
	return values.FromList(list).SetTemporary(true)
}

// ceilDiv computes ceil(a/b) for positive a, b.
func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}

// evalLoopCycle implements loop.cycle(args...): reads loop.index0 from
// the current scope and returns the argument at that index modulo the
// argument count, evaluating only the selected expression.
func evalLoopCycle(args []Expression, ctx *rendercontext.Context) values.InternalValue {
	if len(args) == 0 {
		return values.Empty()
	}
	loopVal, found := ctx.FindValue("loop")
	if !found {
		return values.Empty()
	}
	loopMap, ok := loopVal.AsMap()
	if !ok {
		return values.Empty()
	}
	index0 := loopMap.GetOrEmpty("index0").ConvertToInt(0)
	n := int64(len(args))
	idx := index0 % n
	if idx < 0 {
		idx += n
	}
	return args[idx].Evaluate(ctx)
}
