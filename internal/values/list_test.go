package values

import "testing"

func TestMaterializedAndGeneratedListUniformity(t *testing.T) {
	mat := NewMaterializedList([]InternalValue{Int(10), Int(20), Int(30)})
	gen := NewGeneratedList(3, func(i int) InternalValue { return Int(int64((i + 1) * 10)) })

	if mat.IsGenerated() {
		t.Error("a materialized list should not report as generated")
	}
	if !gen.IsGenerated() {
		t.Error("a generated list should report as generated")
	}

	for i := 0; i < 3; i++ {
		if mat.At(i).IntValue() != gen.At(i).IntValue() {
			t.Errorf("index %d: materialized %d != generated %d", i, mat.At(i).IntValue(), gen.At(i).IntValue())
		}
	}
}

func TestListAtOutOfRangeIsEmpty(t *testing.T) {
	l := NewMaterializedList([]InternalValue{Int(1)})
	if !l.At(5).IsEmpty() {
		t.Error("out-of-range At should return Empty")
	}
	if !l.At(-1).IsEmpty() {
		t.Error("At does not resolve negative indices itself")
	}
}

func TestListMaterializeForcesGenerated(t *testing.T) {
	gen := NewGeneratedList(2, func(i int) InternalValue { return Int(int64(i)) })
	mat := gen.Materialize()
	if mat.IsGenerated() {
		t.Error("Materialize should produce a non-generated list")
	}
	if mat.Len() != 2 {
		t.Errorf("Materialize len: got %d, want 2", mat.Len())
	}
}

func TestListResolveIndexNegative(t *testing.T) {
	l := NewMaterializedList([]InternalValue{Int(10), Int(20), Int(30)})
	i, ok := l.ResolveIndex(-1)
	if !ok || i != 2 {
		t.Errorf("ResolveIndex(-1): got (%d, %v), want (2, true)", i, ok)
	}
	if _, ok := l.ResolveIndex(-10); ok {
		t.Error("ResolveIndex(-10) on a 3-element list should be out of range")
	}
}

func TestListSliceMaterializesGenerated(t *testing.T) {
	gen := NewGeneratedList(3, func(i int) InternalValue { return Int(int64(i)) })
	s := gen.Slice()
	if len(s) != 3 {
		t.Fatalf("Slice len: got %d, want 3", len(s))
	}
	for i, v := range s {
		if v.IntValue() != int64(i) {
			t.Errorf("Slice[%d]: got %d, want %d", i, v.IntValue(), i)
		}
	}
}
