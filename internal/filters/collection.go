package filters

import (
	"sort"

	"github.com/cwbudde/go-jinja/internal/rendercontext"
	"github.com/cwbudde/go-jinja/internal/testers"
	"github.com/cwbudde/go-jinja/internal/values"
)

// registerCollectionFilters wires the list/mapping filter suite
// described in SPEC_FULL.md §4: default/join/list/length/sort/map/
// select/reject, none of which spec.md's string-filter section
// details, so they're built from Jinja2's well-known semantics instead
// of a line-by-line port.
func registerCollectionFilters(reg *Registry) {
	reg.Register("default", func(p Params) (Filter, error) {
		def := p.Pos(0, values.Empty())
		boolean := p.Pos(1, values.Bool(false)).ConvertToBool()
		return FilterFunc(func(base values.InternalValue, ctx *rendercontext.Context) values.InternalValue {
			if base.IsEmpty() {
				return def
			}
			if boolean && !base.ConvertToBool() {
				return def
			}
			return base
		}), nil
	})

	reg.Register("join", func(p Params) (Filter, error) {
		sep := p.Pos(0, values.String("")).ConvertToString()
		return FilterFunc(func(base values.InternalValue, ctx *rendercontext.Context) values.InternalValue {
			l, ok := base.AsList()
			if !ok {
				return values.String(base.ConvertToString()).SetTemporary(true)
			}
			n := l.Len()
			out := ""
			for i := 0; i < n; i++ {
				if i > 0 {
					out += sep
				}
				out += l.At(i).ConvertToString()
			}
			return values.String(out).SetTemporary(true)
		}), nil
	})

	reg.Register("list", func(Params) (Filter, error) {
		return FilterFunc(func(base values.InternalValue, ctx *rendercontext.Context) values.InternalValue {
			l, ok := base.AsList()
			if !ok {
				return base
			}
			return values.FromList(l.Materialize()).SetTemporary(true)
		}), nil
	})

	reg.Register("length", func(Params) (Filter, error) {
		return FilterFunc(lengthFilter), nil
	})

	reg.Register("sort", func(p Params) (Filter, error) {
		reverse := p.Pos(0, values.Bool(false)).ConvertToBool()
		attribute, hasAttr := p.Pos(1, values.Empty()).RawString()
		hasAttr = hasAttr && attribute != ""
		return FilterFunc(func(base values.InternalValue, ctx *rendercontext.Context) values.InternalValue {
			l, ok := base.AsList()
			if !ok {
				return base
			}
			items := l.Slice()
			key := func(v values.InternalValue) values.InternalValue {
				if hasAttr {
					if m, ok := v.AsMap(); ok {
						return m.GetOrEmpty(attribute)
					}
				}
				return v
			}
			sort.SliceStable(items, func(i, j int) bool {
				if reverse {
					return lessValue(key(items[j]), key(items[i]))
				}
				return lessValue(key(items[i]), key(items[j]))
			})
			return values.FromList(values.NewMaterializedList(items)).SetTemporary(true)
		}), nil
	})

	reg.Register("map", func(p Params) (Filter, error) {
		filterName := p.Pos(0, values.Empty()).ConvertToString()
		extra := Params{}
		if len(p.Positional) > 1 {
			extra.Positional = p.Positional[1:]
		}
		extra.Keyword = p.Keyword
		inner, err := Default().CreateFilter(filterName, extra)
		if err != nil {
			return nil, err
		}
		return FilterFunc(func(base values.InternalValue, ctx *rendercontext.Context) values.InternalValue {
			l, ok := base.AsList()
			if !ok {
				return base
			}
			src := l
			gen := func(i int) values.InternalValue {
				return inner.Apply(src.At(i), ctx)
			}
			return values.FromList(values.NewGeneratedList(l.Len(), gen)).SetTemporary(true)
		}), nil
	})

	reg.Register("select", func(p Params) (Filter, error) {
		return selectRejectFilter(p, true)
	})
	reg.Register("reject", func(p Params) (Filter, error) {
		return selectRejectFilter(p, false)
	})
}

func selectRejectFilter(p Params, keepOnPass bool) (Filter, error) {
	testerName := p.Pos(0, values.Empty()).ConvertToString()
	tester, err := testers.Default().CreateTester(testerName)
	if err != nil {
		return nil, err
	}
	var testerArgs []values.InternalValue
	if len(p.Positional) > 1 {
		testerArgs = p.Positional[1:]
	}
	return FilterFunc(func(base values.InternalValue, ctx *rendercontext.Context) values.InternalValue {
		l, ok := base.AsList()
		if !ok {
			return base
		}
		var kept []values.InternalValue
		for i := 0; i < l.Len(); i++ {
			item := l.At(i)
			pass := tester.Test(item, testerArgs)
			if pass == keepOnPass {
				kept = append(kept, item)
			}
		}
		return values.FromList(values.NewMaterializedList(kept)).SetTemporary(true)
	}), nil
}

// lengthFilter returns the element/rune count of a list, map, or
// string, and 0 for anything else. It is registered as the `length`
// filter; no `length` global is defined.
func lengthFilter(base values.InternalValue, ctx *rendercontext.Context) values.InternalValue {
	if l, ok := base.AsList(); ok {
		return values.Int(int64(l.Len())).SetTemporary(true)
	}
	if m, ok := base.AsMap(); ok {
		return values.Int(int64(m.Len())).SetTemporary(true)
	}
	if s, ok := base.RawString(); ok {
		return values.Int(int64(len([]rune(s)))).SetTemporary(true)
	}
	return values.Int(0).SetTemporary(true)
}

// lessValue orders two values for `sort`: numeric kinds compare
// numerically, string-like kinds compare lexically, anything else
// falls back to comparing their string conversion.
func lessValue(a, b values.InternalValue) bool {
	aNum := a.Kind() == values.KindInt || a.Kind() == values.KindDouble
	bNum := b.Kind() == values.KindInt || b.Kind() == values.KindDouble
	if aNum && bNum {
		return a.ConvertToDouble(0) < b.ConvertToDouble(0)
	}
	as, aok := a.RawString()
	bs, bok := b.RawString()
	if aok && bok {
		return as < bs
	}
	return a.ConvertToString() < b.ConvertToString()
}
