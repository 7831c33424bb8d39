package values

// List is an ordered, read-only-once-constructed sequence of
// InternalValue. It may be materialized (backed by a slice) or
// generated (produced by an index-to-value closure with a known
// length, e.g. range()); both variants support the same operations so
// callers never need to know which one they hold.
type List struct {
	items []InternalValue  // nil when generated
	gen   func(i int) InternalValue
	n     int
}

// NewMaterializedList builds a List backed by a slice.
func NewMaterializedList(items []InternalValue) *List {
	return &List{items: items, n: len(items)}
}

// NewGeneratedList builds a List whose elements are produced lazily by
// gen, avoiding materializing large sequences (e.g. range(1000000)).
func NewGeneratedList(n int, gen func(i int) InternalValue) *List {
	if n < 0 {
		n = 0
	}
	return &List{gen: gen, n: n}
}

// Len returns the number of elements.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return l.n
}

// IsGenerated reports whether the list is a lazily generated sequence
// rather than a materialized slice.
func (l *List) IsGenerated() bool {
	return l != nil && l.gen != nil
}

// At returns the element at index i (0-based), or Empty() if i is out
// of range. Negative indices are not resolved here; callers translate
// negative subscripts to a 0-based index first (see Subscript).
func (l *List) At(i int) InternalValue {
	if l == nil || i < 0 || i >= l.n {
		return Empty()
	}
	if l.gen != nil {
		return l.gen(i)
	}
	return l.items[i]
}

// Materialize forces a generated list into a materialized slice copy,
// used by the `list` filter and anywhere random-access mutation-free
// iteration over concrete storage is required.
func (l *List) Materialize() *List {
	if l == nil {
		return NewMaterializedList(nil)
	}
	if !l.IsGenerated() {
		return l
	}
	items := make([]InternalValue, l.n)
	for i := 0; i < l.n; i++ {
		items[i] = l.gen(i)
	}
	return NewMaterializedList(items)
}

// Slice returns a materialized []InternalValue copy of every element,
// for callers (filters, testers) that want to iterate with plain Go
// slice semantics regardless of backing representation.
func (l *List) Slice() []InternalValue {
	if l == nil {
		return nil
	}
	out := make([]InternalValue, l.n)
	for i := 0; i < l.n; i++ {
		out[i] = l.At(i)
	}
	return out
}

// ResolveIndex translates a possibly-negative subscript (counted from
// the end, per spec.md §4.C) into a 0-based index, returning ok=false
// when the result would be out of range.
func (l *List) ResolveIndex(idx int64) (int, bool) {
	n := l.Len()
	i := int(idx)
	if idx < 0 {
		i = n + int(idx)
	}
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}
