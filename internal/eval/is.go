package eval

import (
	"github.com/cwbudde/go-jinja/internal/evalerr"
	"github.com/cwbudde/go-jinja/internal/rendercontext"
	"github.com/cwbudde/go-jinja/internal/testers"
	"github.com/cwbudde/go-jinja/internal/values"
)

// IsExpression invokes a registered tester against Inner, per
// spec.md §4.C/§4.F. Like FilteredExpression, only the tester *name*
// is checked at construction time; arguments are ordinary expressions
// re-evaluated per render.
type IsExpression struct {
	Inner    Expression
	Name     string
	ArgExprs []Expression
	registry *testers.Registry
}

// NewIs validates name against reg (or testers.Default() if reg is
// nil), returning evalerr.UnknownTester on a miss.
func NewIs(inner Expression, name string, argExprs []Expression, reg *testers.Registry) (*IsExpression, error) {
	if reg == nil {
		reg = testers.Default()
	}
	if !reg.Has(name) {
		return nil, evalerr.UnknownTester(name)
	}
	return &IsExpression{Inner: inner, Name: name, ArgExprs: argExprs, registry: reg}, nil
}

// Evaluate implements Expression, returning a boolean value.
func (is *IsExpression) Evaluate(ctx *rendercontext.Context) values.InternalValue {
	base := is.Inner.Evaluate(ctx)
	args := make([]values.InternalValue, len(is.ArgExprs))
	for i, e := range is.ArgExprs {
		args[i] = e.Evaluate(ctx)
	}
	tester, err := is.registry.CreateTester(is.Name)
	if err != nil {
		return values.Bool(false).SetTemporary(true)
	}
	return values.Bool(tester.Test(base, args)).SetTemporary(true)
}
