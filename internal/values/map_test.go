package values

import "testing"

func TestMapKeysPreserveInsertionOrder(t *testing.T) {
	m := NewMap()
	m.Set("z", Int(1))
	m.Set("a", Int(2))
	m.Set("m", Int(3))

	keys := m.Keys()
	want := []string{"z", "a", "m"}
	if len(keys) != len(want) {
		t.Fatalf("Keys len: got %d, want %d", len(keys), len(want))
	}
	for i, w := range want {
		if keys[i] != w {
			t.Errorf("Keys[%d]: got %q, want %q", i, keys[i], w)
		}
	}
}

func TestMapSetOverwriteKeepsOriginalPosition(t *testing.T) {
	m := NewMap()
	m.Set("a", Int(1))
	m.Set("b", Int(2))
	m.Set("a", Int(99))

	keys := m.Keys()
	if keys[0] != "a" || keys[1] != "b" {
		t.Errorf("overwrite should not reorder keys: got %v", keys)
	}
	if m.GetOrEmpty("a").IntValue() != 99 {
		t.Errorf("overwrite should update the value: got %d", m.GetOrEmpty("a").IntValue())
	}
}

func TestMapGetOrEmptyOnMiss(t *testing.T) {
	m := NewMap()
	if !m.GetOrEmpty("missing").IsEmpty() {
		t.Error("GetOrEmpty on a missing key should return Empty")
	}
}

func TestMapFromPairs(t *testing.T) {
	m := NewMapFromPairs([]string{"x", "y"}, []InternalValue{Int(1), Int(2)})
	if m.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", m.Len())
	}
	if m.GetOrEmpty("x").IntValue() != 1 || m.GetOrEmpty("y").IntValue() != 2 {
		t.Error("NewMapFromPairs did not bind keys to the matching values")
	}
}
