package values

// Map is a mapping from string keys to InternalValue, with unique keys
// and no enumeration-order guarantee. Insertion order is tracked only
// so callers that do want a stable iteration order (e.g. the `pprint`
// filter) can have one; it is not part of the adapter's contract.
type Map struct {
	order []string
	data  map[string]InternalValue
}

// NewMap builds an empty map adapter.
func NewMap() *Map {
	return &Map{data: make(map[string]InternalValue)}
}

// NewMapFromPairs builds a map adapter from an ordered list of
// key/value pairs, as produced by a DictCreator expression node.
func NewMapFromPairs(keys []string, vals []InternalValue) *Map {
	m := NewMap()
	for i, k := range keys {
		if i < len(vals) {
			m.Set(k, vals[i])
		}
	}
	return m
}

// Set inserts or overwrites key.
func (m *Map) Set(key string, v InternalValue) {
	if _, exists := m.data[key]; !exists {
		m.order = append(m.order, key)
	}
	m.data[key] = v
}

// Contains reports whether key is present.
func (m *Map) Contains(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.data[key]
	return ok
}

// Get returns the value stored at key and whether it was present.
// Spec.md specifies a string-key map miss returns the empty value, so
// most callers use GetOrEmpty instead of checking ok themselves.
func (m *Map) Get(key string) (InternalValue, bool) {
	if m == nil {
		return Empty(), false
	}
	v, ok := m.data[key]
	return v, ok
}

// GetOrEmpty returns the stored value, or Empty() on a miss.
func (m *Map) GetOrEmpty(key string) InternalValue {
	v, ok := m.Get(key)
	if !ok {
		return Empty()
	}
	return v
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.data)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}
