package eval

import (
	"github.com/cwbudde/go-jinja/internal/rendercontext"
	"github.com/cwbudde/go-jinja/internal/values"
)

// UnaryExpression applies the UnaryOperation visitor to its operand.
type UnaryExpression struct {
	Op    UnaryOp
	Inner Expression
}

// NewUnary builds a UnaryExpression.
func NewUnary(op UnaryOp, inner Expression) *UnaryExpression {
	return &UnaryExpression{Op: op, Inner: inner}
}

// Evaluate implements Expression. The result is always temporary.
func (u *UnaryExpression) Evaluate(ctx *rendercontext.Context) values.InternalValue {
	return applyUnary(u.Op, u.Inner.Evaluate(ctx))
}
