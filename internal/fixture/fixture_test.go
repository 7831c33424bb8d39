package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/go-jinja/internal/rendercontext"
)

func TestCompileBinaryConstantExpression(t *testing.T) {
	n := &Node{
		Type: "binary",
		Op:   "plus",
		Left: &Node{Type: "const", Value: 1, ValueType: "int"},
		Right: &Node{Type: "const", Value: 2, ValueType: "int"},
	}
	expr, err := Compile(n)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	ctx := rendercontext.New(nil)
	got := expr.Evaluate(ctx)
	if got.IntValue() != 3 {
		t.Errorf("1 + 2: got %d, want 3", got.IntValue())
	}
}

func TestCompileUnknownNodeTypeErrors(t *testing.T) {
	if _, err := Compile(&Node{Type: "nonsense"}); err == nil {
		t.Error("expected an error for an unrecognized node type")
	}
}

func TestCompileFilteredUnknownFilterErrors(t *testing.T) {
	n := &Node{
		Type:   "filtered",
		Filter: "no-such-filter",
		Inner:  &Node{Type: "const", Value: "x", ValueType: "string"},
	}
	if _, err := Compile(n); err == nil {
		t.Error("expected an error when the named filter is unregistered")
	}
}

func TestLoadParsesYAMLFixture(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "expr.yaml")
	doc := `
type: binary
op: plus
left:
  type: const
  value: 1
  value_type: int
right:
  type: const
  value: 2
  value_type: int
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	n, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	expr, err := Compile(n)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	ctx := rendercontext.New(nil)
	if got := expr.Evaluate(ctx).IntValue(); got != 3 {
		t.Errorf("loaded fixture 1 + 2: got %d, want 3", got)
	}
}
