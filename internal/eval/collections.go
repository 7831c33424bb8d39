package eval

import (
	"github.com/cwbudde/go-jinja/internal/rendercontext"
	"github.com/cwbudde/go-jinja/internal/values"
)

// TupleCreator evaluates each element expression and builds a
// materialized list adapter, per spec.md §4.C.
type TupleCreator struct {
	Elements []Expression
}

// NewTuple builds a TupleCreator.
func NewTuple(elements ...Expression) *TupleCreator {
	return &TupleCreator{Elements: elements}
}

// Evaluate implements Expression.
func (t *TupleCreator) Evaluate(ctx *rendercontext.Context) values.InternalValue {
	items := make([]values.InternalValue, len(t.Elements))
	for i, e := range t.Elements {
		items[i] = e.Evaluate(ctx)
	}
	return values.FromList(values.NewMaterializedList(items)).SetTemporary(true)
}

// DictEntry is one key/value pair of a DictCreator.
type DictEntry struct {
	Key   Expression
	Value Expression
}

// DictCreator evaluates each key/value pair and builds a map adapter,
// per spec.md §4.C.
type DictCreator struct {
	Entries []DictEntry
}

// NewDict builds a DictCreator.
func NewDict(entries ...DictEntry) *DictCreator {
	return &DictCreator{Entries: entries}
}

// Evaluate implements Expression. A non-string key converts via
// ConvertToString, since the map adapter is string-keyed (spec.md §3).
func (d *DictCreator) Evaluate(ctx *rendercontext.Context) values.InternalValue {
	m := values.NewMap()
	for _, entry := range d.Entries {
		key := entry.Key.Evaluate(ctx)
		keyStr, ok := key.RawString()
		if !ok {
			keyStr = key.ConvertToString()
		}
		m.Set(keyStr, entry.Value.Evaluate(ctx))
	}
	return values.FromMap(m).SetTemporary(true)
}
