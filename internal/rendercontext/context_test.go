package rendercontext

import (
	"testing"

	"github.com/cwbudde/go-jinja/internal/values"
)

func TestFindValueSearchesScopesTopDown(t *testing.T) {
	ctx := New(nil)
	ctx.DefineLocal("name", values.String("root"))

	inner := NewScope()
	inner.Set("name", values.String("inner"))
	ctx.EnterScope(inner)

	got, ok := ctx.FindValue("name")
	if !ok || func() string { s, _ := got.RawString(); return s }() != "inner" {
		t.Error("FindValue should prefer the innermost scope's binding")
	}

	ctx.LeaveScope()
	got, ok = ctx.FindValue("name")
	if !ok {
		t.Fatal("root binding should still be visible after leaving the inner scope")
	}
	if s, _ := got.RawString(); s != "root" {
		t.Errorf("after LeaveScope: got %q, want %q", s, "root")
	}
}

func TestFindValueMissReturnsFalse(t *testing.T) {
	ctx := New(nil)
	v, ok := ctx.FindValue("nope")
	if ok {
		t.Error("a missing name should report ok=false")
	}
	if !v.IsEmpty() {
		t.Error("a missing name should resolve to the empty value")
	}
}

func TestLeaveScopeWithoutEnterPanics(t *testing.T) {
	ctx := New(nil)
	defer func() {
		if r := recover(); r == nil {
			t.Error("LeaveScope on the root scope should panic")
		}
	}()
	ctx.LeaveScope()
}

func TestScopePushPopBalance(t *testing.T) {
	ctx := New(nil)
	ctx.EnterScope(nil)
	ctx.EnterScope(nil)
	ctx.LeaveScope()
	ctx.LeaveScope()
	// A third LeaveScope beyond the root must panic.
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected a panic when popping past the root scope")
		}
	}()
	ctx.LeaveScope()
}

func TestEnterCallDepthCap(t *testing.T) {
	ctx := New(nil)
	for i := 0; i < MaxCallDepth; i++ {
		if err := ctx.EnterCall(); err != nil {
			t.Fatalf("EnterCall %d: unexpected error %v", i, err)
		}
	}
	if err := ctx.EnterCall(); err != ErrCallDepthExceeded {
		t.Errorf("EnterCall beyond the cap: got %v, want ErrCallDepthExceeded", err)
	}
	ctx.LeaveCall()
	if err := ctx.EnterCall(); err != nil {
		t.Errorf("EnterCall after a LeaveCall should succeed again: got %v", err)
	}
}

func TestGetPoolAndCallbackAreNotNil(t *testing.T) {
	ctx := New(nil)
	if ctx.GetPool() == nil {
		t.Error("New should assign a Pool even when not asked for one explicitly")
	}
	if ctx.GetRendererCallback() == nil {
		t.Error("New should fall back to DefaultRendererCallback when callback is nil")
	}
}
