// Package rendercontext implements RenderContext, the per-render
// environment: a stack of scopes, a pool handle, and a renderer
// callback. It is adapted from go-dws's
// internal/interp/runtime.Environment, which links scopes through an
// `outer` pointer chain; spec.md §4.G instead calls for an explicit
// stack with paired EnterScope/LeaveScope, so the chain is flattened
// into a slice here while keeping Environment's case-preserving,
// miss-returns-false lookup contract.
package rendercontext

import (
	"fmt"

	"github.com/cwbudde/go-jinja/internal/values"
)

// Scope is one level of the variable stack: an ordinary map adapter,
// per spec.md §3 ("each a map adapter").
type Scope struct {
	vars *values.Map
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{vars: values.NewMap()}
}

// Set defines or overwrites name in this scope only.
func (s *Scope) Set(name string, v values.InternalValue) {
	s.vars.Set(name, v)
}

// Context is the RenderContext of spec.md §3/§4.G: a stack of scopes
// searched top-down, a pool handle, and a renderer callback.
type Context struct {
	scopes   []*Scope
	pool     *values.Pool
	callback values.RendererCallback
	depth    int // call-depth counter, see EnterCall/LeaveCall
}

// New creates a RenderContext with a single root scope, its own Pool,
// and the given renderer callback (use values.DefaultRendererCallback{}
// when the host has nothing more specific to offer).
func New(callback values.RendererCallback) *Context {
	if callback == nil {
		callback = values.DefaultRendererCallback{}
	}
	return &Context{
		scopes:   []*Scope{NewScope()},
		pool:     values.NewPool(),
		callback: callback,
	}
}

// GetPool returns the render's pool handle.
func (c *Context) GetPool() *values.Pool { return c.pool }

// GetRendererCallback returns the borrowed, read-only renderer
// callback.
func (c *Context) GetRendererCallback() values.RendererCallback { return c.callback }

// EnterScope pushes a new scope onto the stack. Pre-populates it with
// the entries of initial, if given (e.g. a macro's or loop's bound
// variables), matching spec.md's "EnterScope(map)" signature.
func (c *Context) EnterScope(initial *Scope) {
	if initial == nil {
		initial = NewScope()
	}
	c.scopes = append(c.scopes, initial)
}

// LeaveScope pops the innermost scope. Scope entry/exit must be
// strictly paired (spec.md §4.G); calling LeaveScope with no matching
// EnterScope beyond the root scope panics, surfacing the bug loudly
// rather than silently corrupting the stack.
func (c *Context) LeaveScope() {
	if len(c.scopes) <= 1 {
		panic("rendercontext: LeaveScope called without a matching EnterScope")
	}
	c.scopes = c.scopes[:len(c.scopes)-1]
}

// FindValue searches the scope stack top-down and returns the value
// bound to name along with a found flag. A miss returns
// (values.Empty(), false) rather than an error: per spec.md §4.C,
// ValueRefExpression never raises.
func (c *Context) FindValue(name string) (values.InternalValue, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if v, ok := c.scopes[i].vars.Get(name); ok {
			return v, true
		}
	}
	return values.Empty(), false
}

// DefineLocal defines name in the innermost scope (used by the global
// scope setup and by callables that bind loop/macro variables).
func (c *Context) DefineLocal(name string, v values.InternalValue) {
	c.scopes[len(c.scopes)-1].Set(name, v)
}

// RootScope returns the outermost scope, used to inject global names
// such as `range` at startup.
func (c *Context) RootScope() *Scope {
	return c.scopes[0]
}

// MaxCallDepth bounds recursion through user callables, per spec.md §5
// ("implementers should impose a call-depth cap").
const MaxCallDepth = 256

// ErrCallDepthExceeded is returned by EnterCall when MaxCallDepth would
// be exceeded.
var ErrCallDepthExceeded = fmt.Errorf("rendercontext: call depth exceeded (max %d)", MaxCallDepth)

// EnterCall increments the call-depth counter, returning
// ErrCallDepthExceeded instead of incrementing past MaxCallDepth.
// Callers must pair a successful EnterCall with a LeaveCall.
func (c *Context) EnterCall() error {
	if c.depth >= MaxCallDepth {
		return ErrCallDepthExceeded
	}
	c.depth++
	return nil
}

// LeaveCall decrements the call-depth counter.
func (c *Context) LeaveCall() {
	if c.depth > 0 {
		c.depth--
	}
}
