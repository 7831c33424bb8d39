package binder

import (
	"testing"

	"github.com/cwbudde/go-jinja/internal/values"
)

// strExpr is a minimal expression representation for binder tests —
// the binder is generic over E, so tests don't need internal/eval.
type strExpr struct {
	label string
}

func constWrap(v values.InternalValue) strExpr {
	s, _ := v.RawString()
	if s == "" {
		s = v.ConvertToString()
	}
	return strExpr{label: "default:" + s}
}

// TestBindMixedPositionalKeyword reproduces spec.md §8 test #8:
// calling f(1, 2, x=3) where f declares (a, x, b='d') binds a=1, b=2,
// x=3 — the positional 2 skips over the already-keyword-bound x slot
// and lands on b.
func TestBindMixedPositionalKeyword(t *testing.T) {
	schema := []ArgumentInfo{
		{Name: "a", Mandatory: true},
		{Name: "x", Mandatory: true},
		{Name: "b", DefaultValue: values.String("d")},
	}
	params := NewCallParams[strExpr]()
	params.AddPositional(strExpr{label: "1"})
	params.AddPositional(strExpr{label: "2"})
	params.AddKeyword("x", strExpr{label: "3"})

	parsed, ok := Bind(params, schema, constWrap)
	if !ok {
		t.Fatal("expected bind to succeed")
	}
	if parsed.Args["a"].label != "1" {
		t.Errorf("a: got %q, want %q", parsed.Args["a"].label, "1")
	}
	if parsed.Args["b"].label != "2" {
		t.Errorf("b: got %q, want %q", parsed.Args["b"].label, "2")
	}
	if parsed.Args["x"].label != "3" {
		t.Errorf("x: got %q, want %q", parsed.Args["x"].label, "3")
	}
}

func TestBindDefaults(t *testing.T) {
	schema := []ArgumentInfo{
		{Name: "a", Mandatory: true},
		{Name: "b", DefaultValue: values.Int(42)},
	}
	params := NewCallParams[strExpr]()
	params.AddPositional(strExpr{label: "1"})

	parsed, ok := Bind(params, schema, constWrap)
	if !ok {
		t.Fatal("expected bind to succeed")
	}
	if parsed.Args["b"].label != "default:42" {
		t.Errorf("b default: got %q", parsed.Args["b"].label)
	}
}

func TestBindMandatoryMissingFails(t *testing.T) {
	schema := []ArgumentInfo{
		{Name: "a", Mandatory: true},
		{Name: "b", Mandatory: true},
	}
	params := NewCallParams[strExpr]()
	params.AddPositional(strExpr{label: "1"})

	_, ok := Bind(params, schema, constWrap)
	if ok {
		t.Fatal("expected bind to fail when a mandatory argument has no binding")
	}
}

func TestBindIgnoresVariadicPlaceholders(t *testing.T) {
	schema := []ArgumentInfo{
		{Name: "a", Mandatory: true},
		{Name: PlaceholderArgs},
		{Name: "b", Mandatory: true},
	}
	params := NewCallParams[strExpr]()
	params.AddPositional(strExpr{label: "1"})
	params.AddPositional(strExpr{label: "2"})

	parsed, ok := Bind(params, schema, constWrap)
	if !ok {
		t.Fatal("expected bind to succeed")
	}
	if parsed.Args["a"].label != "1" || parsed.Args["b"].label != "2" {
		t.Errorf("placeholder should be skipped without consuming a positional: a=%q b=%q",
			parsed.Args["a"].label, parsed.Args["b"].label)
	}
}

func TestBindExtras(t *testing.T) {
	schema := []ArgumentInfo{{Name: "a", Mandatory: true}}
	params := NewCallParams[strExpr]()
	params.AddPositional(strExpr{label: "1"})
	params.AddPositional(strExpr{label: "2"})
	params.AddKeyword("unexpected", strExpr{label: "3"})

	parsed, ok := Bind(params, schema, constWrap)
	if !ok {
		t.Fatal("expected bind to succeed")
	}
	if len(parsed.ExtraPos) != 1 || parsed.ExtraPos[0].label != "2" {
		t.Errorf("expected extra positional [2], got %+v", parsed.ExtraPos)
	}
	if parsed.ExtraKeyword["unexpected"].label != "3" {
		t.Errorf("expected extra keyword unexpected=3, got %+v", parsed.ExtraKeyword)
	}
}
