// Package values implements the polymorphic InternalValue model: a closed
// tagged union over scalars, strings, sequences, mappings, and callables,
// each carrying temporary/parent-lifetime metadata and sourced from a
// per-render Pool arena.
package values

import (
	"strconv"
	"strings"
)

// Kind discriminates the variant held by an InternalValue. Dispatch on
// Kind replaces the C++ visitor-template hierarchy the original engine
// uses: a single switch over a small enum instead of double-dispatch.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindBool
	KindInt
	KindDouble
	KindString
	KindWideString
	KindStringView
	KindWideStringView
	KindList
	KindMap
	KindCallable
	KindTargetString
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindWideString:
		return "wstring"
	case KindStringView:
		return "string_view"
	case KindWideStringView:
		return "wstring_view"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindCallable:
		return "callable"
	case KindTargetString:
		return "target_string"
	default:
		return "unknown"
	}
}

// ID identifies a value within a Pool, used for parent-lifetime
// back-references. The zero value means "no id assigned".
type ID uint64

// InternalValue is the value type every expression node produces. It is
// a small by-value struct; string/list/map/callable payloads live behind
// pointers so the struct itself stays cheap to copy, matching the
// "keep the variant small and by-value" guidance for this model.
type InternalValue struct {
	kind Kind

	b  bool
	i  int64
	f  float64
	s  string // used for KindString, KindWideString, KindStringView, KindWideStringView
	ls *List
	ms *Map
	cs *Callable
	ts *TargetString

	id        ID
	temporary bool
	hasParent bool
	parent    ID
}

// Empty returns the empty InternalValue.
func Empty() InternalValue { return InternalValue{kind: KindEmpty} }

// Bool wraps a boolean.
func Bool(v bool) InternalValue { return InternalValue{kind: KindBool, b: v} }

// Int wraps a signed 64-bit integer.
func Int(v int64) InternalValue { return InternalValue{kind: KindInt, i: v} }

// Double wraps a float64.
func Double(v float64) InternalValue { return InternalValue{kind: KindDouble, f: v} }

// String wraps a narrow (single-byte-per-rune-assumed UTF-8) string.
func String(v string) InternalValue { return InternalValue{kind: KindString, s: v} }

// WideString wraps a wide string. The engine stores wide strings as Go
// strings too (Go strings are already a byte sequence of runes); the
// Kind tag alone tracks which width an operation must preserve, per
// spec.md's "narrow/wide never mix within a single operation" rule.
func WideString(v string) InternalValue { return InternalValue{kind: KindWideString, s: v} }

// StringView wraps a read-only view into another value's string data.
// Use SetParentData to record the owner so its lifetime is extended.
func StringView(v string) InternalValue { return InternalValue{kind: KindStringView, s: v} }

// WideStringView is the wide-width counterpart of StringView.
func WideStringView(v string) InternalValue {
	return InternalValue{kind: KindWideStringView, s: v}
}

// FromList wraps a list adapter.
func FromList(l *List) InternalValue { return InternalValue{kind: KindList, ls: l} }

// FromMap wraps a map adapter.
func FromMap(m *Map) InternalValue { return InternalValue{kind: KindMap, ms: m} }

// FromCallable wraps a callable.
func FromCallable(c *Callable) InternalValue { return InternalValue{kind: KindCallable, cs: c} }

// FromTargetString wraps an output target-string value.
func FromTargetString(t *TargetString) InternalValue {
	return InternalValue{kind: KindTargetString, ts: t}
}

// Kind returns the active variant tag.
func (v InternalValue) Kind() Kind { return v.kind }

// IsEmpty reports whether v holds the empty variant.
func (v InternalValue) IsEmpty() bool { return v.kind == KindEmpty }

// Temporary reports whether v was computed and owns no shared storage.
// Binary operators may reuse a temporary operand's storage as their
// result slot instead of allocating a fresh value.
func (v InternalValue) Temporary() bool { return v.temporary }

// SetTemporary marks v as temporary (or not) and returns the updated
// value; InternalValue is copied by value, so callers must use the
// return value.
func (v InternalValue) SetTemporary(flag bool) InternalValue {
	v.temporary = flag
	return v
}

// SetParentData records other's id as v's parent, so v's lifetime is
// understood to extend at least as long as other's. Used when v is a
// view into, or an element extracted from, another value (e.g. a
// subscript result).
func (v InternalValue) SetParentData(other InternalValue) InternalValue {
	if other.id != 0 {
		v.parent = other.id
		v.hasParent = true
	}
	return v
}

// ParentID returns the recorded parent id and whether one was set.
func (v InternalValue) ParentID() (ID, bool) { return v.parent, v.hasParent }

// ShouldExtendLifetime reports whether v references pooled/view data
// whose backing store must outlive v itself: true for views and for
// any value carrying a parent reference.
func (v InternalValue) ShouldExtendLifetime() bool {
	if v.hasParent {
		return true
	}
	switch v.kind {
	case KindStringView, KindWideStringView, KindList, KindMap, KindCallable:
		return true
	default:
		return false
	}
}

// RawString returns the underlying Go string for any string-like kind,
// and "" with ok=false otherwise.
func (v InternalValue) RawString() (string, bool) {
	switch v.kind {
	case KindString, KindWideString, KindStringView, KindWideStringView:
		return v.s, true
	case KindTargetString:
		return v.ts.String(), true
	default:
		return "", false
	}
}

// IsWide reports whether a string-like value carries the wide-string
// width tag.
func (v InternalValue) IsWide() bool {
	return v.kind == KindWideString || v.kind == KindWideStringView
}

// AsList returns the underlying list adapter, if any.
func (v InternalValue) AsList() (*List, bool) {
	if v.kind == KindList {
		return v.ls, true
	}
	return nil, false
}

// AsMap returns the underlying map adapter, if any.
func (v InternalValue) AsMap() (*Map, bool) {
	if v.kind == KindMap {
		return v.ms, true
	}
	return nil, false
}

// AsCallable returns the underlying callable, if any.
func (v InternalValue) AsCallable() (*Callable, bool) {
	if v.kind == KindCallable {
		return v.cs, true
	}
	return nil, false
}

// AsTargetString returns the underlying target-string, if any.
func (v InternalValue) AsTargetString() (*TargetString, bool) {
	if v.kind == KindTargetString {
		return v.ts, true
	}
	return nil, false
}

// BoolValue returns the wrapped boolean (undefined for other kinds).
func (v InternalValue) BoolValue() bool { return v.b }

// IntValue returns the wrapped integer (undefined for other kinds).
func (v InternalValue) IntValue() int64 { return v.i }

// DoubleValue returns the wrapped float (undefined for other kinds).
func (v InternalValue) DoubleValue() float64 { return v.f }

// ConvertToBool applies Jinja truthiness: empty is false; numbers are
// false only at zero; strings are false only when empty; containers are
// false only when empty; callables are always truthy.
func (v InternalValue) ConvertToBool() bool {
	switch v.kind {
	case KindEmpty:
		return false
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindDouble:
		return v.f != 0
	case KindString, KindWideString, KindStringView, KindWideStringView:
		return v.s != ""
	case KindList:
		return v.ls != nil && v.ls.Len() > 0
	case KindMap:
		return v.ms != nil && v.ms.Len() > 0
	case KindCallable:
		return true
	case KindTargetString:
		return v.ts != nil && v.ts.Len() > 0
	default:
		return false
	}
}

// ConvertToInt coerces v to an int64: empty yields def; bool yields 0/1;
// numbers truncate toward zero; strings parse as a (possibly signed,
// possibly floating) number or fall back to def; containers use
// non-empty truthiness (1/0), matching spec.md §4.A.
func (v InternalValue) ConvertToInt(def int64) int64 {
	switch v.kind {
	case KindEmpty:
		return def
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindInt:
		return v.i
	case KindDouble:
		return int64(v.f)
	case KindString, KindWideString, KindStringView, KindWideStringView:
		s := strings.TrimSpace(v.s)
		if s == "" {
			return def
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f)
		}
		return def
	case KindList, KindMap:
		if v.ConvertToBool() {
			return 1
		}
		return 0
	default:
		return def
	}
}

// ConvertToDouble coerces v to a float64, mirroring ConvertToInt's rules
// for the numeric/string cases.
func (v InternalValue) ConvertToDouble(def float64) float64 {
	switch v.kind {
	case KindEmpty:
		return def
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindInt:
		return float64(v.i)
	case KindDouble:
		return v.f
	case KindString, KindWideString, KindStringView, KindWideStringView:
		s := strings.TrimSpace(v.s)
		if s == "" {
			return def
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return def
	default:
		return def
	}
}

// ConvertToString renders v the way an output sink would stringify it
// (used by filters that accept any value, e.g. join, pprint).
func (v InternalValue) ConvertToString() string {
	switch v.kind {
	case KindEmpty:
		return ""
	case KindBool:
		if v.b {
			return "True"
		}
		return "False"
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindDouble:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString, KindWideString, KindStringView, KindWideStringView:
		return v.s
	case KindTargetString:
		if v.ts == nil {
			return ""
		}
		return v.ts.String()
	case KindList:
		if v.ls == nil {
			return "[]"
		}
		parts := make([]string, v.ls.Len())
		for i := 0; i < v.ls.Len(); i++ {
			parts[i] = v.ls.At(i).ConvertToString()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		if v.ms == nil {
			return "{}"
		}
		keys := v.ms.Keys()
		parts := make([]string, len(keys))
		for i, k := range keys {
			val, _ := v.ms.Get(k)
			parts[i] = k + ": " + val.ConvertToString()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case KindCallable:
		return "<callable>"
	default:
		return ""
	}
}
