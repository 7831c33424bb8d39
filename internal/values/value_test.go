package values

import "testing"

func TestConvertToBoolTruthiness(t *testing.T) {
	cases := []struct {
		name string
		v    InternalValue
		want bool
	}{
		{"empty", Empty(), false},
		{"zero int", Int(0), false},
		{"nonzero int", Int(1), true},
		{"empty string", String(""), false},
		{"nonempty string", String("x"), true},
		{"empty list", FromList(NewMaterializedList(nil)), false},
		{"nonempty list", FromList(NewMaterializedList([]InternalValue{Int(1)})), true},
		{"callable always true", FromCallable(&Callable{}), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.v.ConvertToBool(); got != c.want {
				t.Errorf("ConvertToBool(%s): got %v, want %v", c.name, got, c.want)
			}
		})
	}
}

func TestConvertToIntFromString(t *testing.T) {
	if got := String("42").ConvertToInt(-1); got != 42 {
		t.Errorf("ConvertToInt(\"42\"): got %d, want 42", got)
	}
	if got := String("3.7").ConvertToInt(-1); got != 3 {
		t.Errorf("ConvertToInt(\"3.7\"): got %d, want 3", got)
	}
	if got := String("not a number").ConvertToInt(-1); got != -1 {
		t.Errorf("ConvertToInt fallback: got %d, want -1", got)
	}
	if got := Empty().ConvertToInt(7); got != 7 {
		t.Errorf("ConvertToInt(empty) should return def: got %d", got)
	}
}

func TestConvertToStringRendersContainers(t *testing.T) {
	list := FromList(NewMaterializedList([]InternalValue{Int(1), Int(2)}))
	if got := list.ConvertToString(); got != "[1, 2]" {
		t.Errorf("list ConvertToString: got %q", got)
	}
	m := NewMap()
	m.Set("a", Int(1))
	if got := FromMap(m).ConvertToString(); got != "{a: 1}" {
		t.Errorf("map ConvertToString: got %q", got)
	}
}

func TestSetParentDataTracksLifetime(t *testing.T) {
	pool := NewPool()
	parent := pool.Create(String("owner"))
	child := StringView("view").SetParentData(parent)
	id, ok := child.ParentID()
	if !ok {
		t.Fatal("expected a parent id to be recorded")
	}
	if id == 0 {
		t.Error("parent id should not be zero once recorded")
	}
	if !child.ShouldExtendLifetime() {
		t.Error("a value with a recorded parent should extend lifetime")
	}
}

func TestShouldExtendLifetimeByKind(t *testing.T) {
	if String("plain").ShouldExtendLifetime() {
		t.Error("a plain owned string should not need lifetime extension")
	}
	if !StringView("view").ShouldExtendLifetime() {
		t.Error("a string view should need lifetime extension")
	}
	if !FromList(NewMaterializedList(nil)).ShouldExtendLifetime() {
		t.Error("a list should need lifetime extension")
	}
}
