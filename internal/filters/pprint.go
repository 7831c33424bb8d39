package filters

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-jinja/internal/rendercontext"
	"github.com/cwbudde/go-jinja/internal/values"
)

// registerPprintFilter wires the debug-only pprint filter: a
// Python-repr-style recursive rendering of scalars/lists/maps (None,
// True/False, quoted strings, [..] and {..}). Never used
// for templated output correctness, per spec.md §6 ("formatting
// only").
func registerPprintFilter(reg *Registry) {
	reg.Register("pprint", func(Params) (Filter, error) {
		return FilterFunc(func(base values.InternalValue, ctx *rendercontext.Context) values.InternalValue {
			return values.String(pprintValue(base)).SetTemporary(true)
		}), nil
	})
}

func pprintValue(v values.InternalValue) string {
	switch v.Kind() {
	case values.KindEmpty:
		return "None"
	case values.KindBool:
		if v.BoolValue() {
			return "True"
		}
		return "False"
	case values.KindInt:
		return fmt.Sprintf("%d", v.IntValue())
	case values.KindDouble:
		return fmt.Sprintf("%v", v.DoubleValue())
	case values.KindString, values.KindWideString, values.KindStringView, values.KindWideStringView:
		s, _ := v.RawString()
		return fmt.Sprintf("%q", s)
	case values.KindList:
		l, _ := v.AsList()
		parts := make([]string, l.Len())
		for i := 0; i < l.Len(); i++ {
			parts[i] = pprintValue(l.At(i))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case values.KindMap:
		m, _ := v.AsMap()
		keys := m.Keys()
		parts := make([]string, len(keys))
		for i, k := range keys {
			val, _ := m.Get(k)
			parts[i] = fmt.Sprintf("%q: %s", k, pprintValue(val))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case values.KindCallable:
		return "<callable>"
	default:
		return v.ConvertToString()
	}
}
