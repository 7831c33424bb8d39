package testers

import "github.com/cwbudde/go-jinja/internal/values"

// registerBuiltinTesters wires the minimum tester set named in spec.md
// §6: membership, definedness, parity, and the handful of kind-checks
// `is string`/`is number`/`is sequence`/`is mapping` rely on.
func registerBuiltinTesters(reg *Registry) {
	reg.Register("defined", TesterFunc(func(base values.InternalValue, _ []values.InternalValue) bool {
		return !base.IsEmpty()
	}))
	reg.Register("odd", TesterFunc(func(base values.InternalValue, _ []values.InternalValue) bool {
		return base.ConvertToInt(0)%2 != 0
	}))
	reg.Register("even", TesterFunc(func(base values.InternalValue, _ []values.InternalValue) bool {
		return base.ConvertToInt(0)%2 == 0
	}))
	reg.Register("string", TesterFunc(func(base values.InternalValue, _ []values.InternalValue) bool {
		_, ok := base.RawString()
		return ok
	}))
	reg.Register("number", TesterFunc(func(base values.InternalValue, _ []values.InternalValue) bool {
		return base.Kind() == values.KindInt || base.Kind() == values.KindDouble
	}))
	reg.Register("sequence", TesterFunc(func(base values.InternalValue, _ []values.InternalValue) bool {
		_, ok := base.AsList()
		return ok
	}))
	reg.Register("mapping", TesterFunc(func(base values.InternalValue, _ []values.InternalValue) bool {
		_, ok := base.AsMap()
		return ok
	}))
	reg.Register("equalto", TesterFunc(func(base values.InternalValue, args []values.InternalValue) bool {
		if len(args) == 0 {
			return false
		}
		return valuesEqual(base, args[0])
	}))
	reg.Register("in", TesterFunc(func(base values.InternalValue, args []values.InternalValue) bool {
		if len(args) == 0 {
			return false
		}
		container := args[0]
		if l, ok := container.AsList(); ok {
			for i := 0; i < l.Len(); i++ {
				if valuesEqual(l.At(i), base) {
					return true
				}
			}
			return false
		}
		if m, ok := container.AsMap(); ok {
			key, keyOK := base.RawString()
			if !keyOK {
				return false
			}
			return m.Contains(key)
		}
		if s, ok := container.RawString(); ok {
			needle, needleOK := base.RawString()
			if !needleOK {
				return false
			}
			return containsSubstring(s, needle)
		}
		return false
	}))
}

func containsSubstring(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}

// valuesEqual compares two values the way `==`/`is equalto` do: numeric
// kinds compare by numeric value (so Int(1) == Double(1.0)), string-like
// kinds compare by underlying text regardless of width tag, everything
// else falls back to kind+string-conversion equality.
func valuesEqual(a, b values.InternalValue) bool {
	aNum := a.Kind() == values.KindInt || a.Kind() == values.KindDouble
	bNum := b.Kind() == values.KindInt || b.Kind() == values.KindDouble
	if aNum && bNum {
		return a.ConvertToDouble(0) == b.ConvertToDouble(0)
	}
	as, aok := a.RawString()
	bs, bok := b.RawString()
	if aok && bok {
		return as == bs
	}
	if a.Kind() == values.KindBool && b.Kind() == values.KindBool {
		return a.BoolValue() == b.BoolValue()
	}
	if a.Kind() == values.KindEmpty && b.Kind() == values.KindEmpty {
		return true
	}
	return a.ConvertToString() == b.ConvertToString()
}
