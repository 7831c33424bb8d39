// Package fixture compiles a declarative YAML expression-tree
// document into an internal/eval.Expression, standing in for the
// statement-level parser spec.md §1 places out of scope. It exists so
// cmd/jinjaeval has something concrete to load and evaluate end to
// end; production use would replace this with a real Jinja2 template
// parser feeding the same eval.Expression tree.
package fixture

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/cwbudde/go-jinja/internal/eval"
	"github.com/cwbudde/go-jinja/internal/values"
)

// Node is the raw YAML shape of one expression-tree node. Exactly one
// of the type-specific fields is populated, selected by Type.
type Node struct {
	Type string `yaml:"type"`

	// const
	Value     any    `yaml:"value"`
	ValueType string `yaml:"value_type"`

	// ref
	Name string `yaml:"name"`

	// unary / binary
	Op    string `yaml:"op"`
	Inner *Node  `yaml:"inner"`
	Left  *Node  `yaml:"left"`
	Right *Node  `yaml:"right"`

	// subscript
	Base    *Node  `yaml:"base"`
	Indices []Node `yaml:"indices"`

	// filtered / is / call
	Filter string          `yaml:"filter"`
	Tester string          `yaml:"tester"`
	Callee *Node           `yaml:"callee"`
	Args   []Node          `yaml:"args"`
	Kwargs map[string]Node `yaml:"kwargs"`

	// if / full
	Test    *Node `yaml:"test"`
	Alt     *Node `yaml:"alt"`
	Primary *Node `yaml:"primary"`
	Guard   *Node `yaml:"guard"`

	// tuple / dict
	Elements []Node     `yaml:"elements"`
	Entries  []EntryDoc `yaml:"entries"`
}

// EntryDoc is one key/value pair of a dict node.
type EntryDoc struct {
	Key   Node `yaml:"key"`
	Value Node `yaml:"value"`
}

var binaryOps = map[string]eval.BinaryOp{
	"and": eval.OpLogicalAnd, "or": eval.OpLogicalOr,
	"eq": eval.OpEq, "ne": eval.OpNe, "gt": eval.OpGt, "lt": eval.OpLt, "ge": eval.OpGe, "le": eval.OpLe,
	"plus": eval.OpPlus, "minus": eval.OpMinus, "mul": eval.OpMul, "div": eval.OpDiv,
	"mod": eval.OpDivReminder, "intdiv": eval.OpDivInteger, "pow": eval.OpPow,
	"in": eval.OpIn, "concat": eval.OpStringConcat,
}

var unaryOps = map[string]eval.UnaryOp{
	"negate": eval.UnaryNegate, "not": eval.UnaryNot, "plus": eval.UnaryPlus,
}

// Load reads and parses a YAML fixture file from path into a Node tree.
func Load(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: reading %s: %w", path, err)
	}
	var n Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("fixture: parsing %s: %w", path, err)
	}
	return &n, nil
}

// Compile recursively builds an eval.Expression from n.
func Compile(n *Node) (eval.Expression, error) {
	if n == nil {
		return nil, fmt.Errorf("fixture: nil node")
	}
	switch n.Type {
	case "const":
		return eval.NewConstant(constValue(n)), nil
	case "ref":
		return eval.NewValueRef(n.Name), nil
	case "unary":
		op, ok := unaryOps[n.Op]
		if !ok {
			return nil, fmt.Errorf("fixture: unknown unary op %q", n.Op)
		}
		inner, err := Compile(n.Inner)
		if err != nil {
			return nil, err
		}
		return eval.NewUnary(op, inner), nil
	case "binary":
		op, ok := binaryOps[n.Op]
		if !ok {
			return nil, fmt.Errorf("fixture: unknown binary op %q", n.Op)
		}
		left, err := Compile(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := Compile(n.Right)
		if err != nil {
			return nil, err
		}
		return eval.NewBinary(op, left, right), nil
	case "subscript":
		base, err := Compile(n.Base)
		if err != nil {
			return nil, err
		}
		indices := make([]eval.Expression, len(n.Indices))
		for i := range n.Indices {
			idx, err := Compile(&n.Indices[i])
			if err != nil {
				return nil, err
			}
			indices[i] = idx
		}
		return eval.NewSubscript(base, indices...), nil
	case "filtered":
		inner, err := Compile(n.Inner)
		if err != nil {
			return nil, err
		}
		argExprs, err := compileList(n.Args)
		if err != nil {
			return nil, err
		}
		kwExprs, err := compileMap(n.Kwargs)
		if err != nil {
			return nil, err
		}
		return eval.NewFiltered(inner, n.Filter, argExprs, kwExprs, nil)
	case "is":
		inner, err := Compile(n.Inner)
		if err != nil {
			return nil, err
		}
		argExprs, err := compileList(n.Args)
		if err != nil {
			return nil, err
		}
		return eval.NewIs(inner, n.Tester, argExprs, nil)
	case "if":
		test, err := Compile(n.Test)
		if err != nil {
			return nil, err
		}
		var alt eval.Expression
		if n.Alt != nil {
			alt, err = Compile(n.Alt)
			if err != nil {
				return nil, err
			}
		}
		return eval.NewIf(test, alt), nil
	case "full":
		primary, err := Compile(n.Primary)
		if err != nil {
			return nil, err
		}
		var guard *eval.IfExpression
		if n.Guard != nil {
			g, err := Compile(n.Guard)
			if err != nil {
				return nil, err
			}
			asIf, ok := g.(*eval.IfExpression)
			if !ok {
				return nil, fmt.Errorf("fixture: full.guard must compile to an if node")
			}
			guard = asIf
		}
		return eval.NewFull(primary, guard), nil
	case "tuple":
		elems, err := compileList(n.Elements)
		if err != nil {
			return nil, err
		}
		return eval.NewTuple(elems...), nil
	case "dict":
		entries := make([]eval.DictEntry, len(n.Entries))
		for i, e := range n.Entries {
			key, err := Compile(&e.Key)
			if err != nil {
				return nil, err
			}
			val, err := Compile(&e.Value)
			if err != nil {
				return nil, err
			}
			entries[i] = eval.DictEntry{Key: key, Value: val}
		}
		return eval.NewDict(entries...), nil
	case "call":
		callee, err := Compile(n.Callee)
		if err != nil {
			return nil, err
		}
		call := eval.NewCall(callee)
		for i := range n.Args {
			argExpr, err := Compile(&n.Args[i])
			if err != nil {
				return nil, err
			}
			call.Params.AddPositional(argExpr)
		}
		for name, argNode := range n.Kwargs {
			argNode := argNode
			argExpr, err := Compile(&argNode)
			if err != nil {
				return nil, err
			}
			call.Params.AddKeyword(name, argExpr)
		}
		return call, nil
	default:
		return nil, fmt.Errorf("fixture: unknown node type %q", n.Type)
	}
}

func compileList(nodes []Node) ([]eval.Expression, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	out := make([]eval.Expression, len(nodes))
	for i := range nodes {
		e, err := Compile(&nodes[i])
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func compileMap(nodes map[string]Node) (map[string]eval.Expression, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	out := make(map[string]eval.Expression, len(nodes))
	for name, node := range nodes {
		node := node
		e, err := Compile(&node)
		if err != nil {
			return nil, err
		}
		out[name] = e
	}
	return out, nil
}

// constValue converts a YAML-decoded scalar into an InternalValue per
// ValueType (default: infer from the decoded Go type).
func constValue(n *Node) values.InternalValue {
	switch n.ValueType {
	case "string":
		return values.String(fmt.Sprintf("%v", n.Value))
	case "int":
		return values.Int(toInt(n.Value))
	case "float":
		return values.Double(toFloat(n.Value))
	case "bool":
		b, _ := n.Value.(bool)
		return values.Bool(b)
	}
	switch v := n.Value.(type) {
	case string:
		return values.String(v)
	case bool:
		return values.Bool(v)
	case int:
		return values.Int(int64(v))
	case int64:
		return values.Int(v)
	case float64:
		return values.Double(v)
	case nil:
		return values.Empty()
	default:
		return values.String(fmt.Sprintf("%v", v))
	}
}

func toInt(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	default:
		return 0
	}
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}
