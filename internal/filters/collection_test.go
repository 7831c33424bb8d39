package filters

import (
	"testing"

	"github.com/cwbudde/go-jinja/internal/rendercontext"
	"github.com/cwbudde/go-jinja/internal/values"
)

func intList(nums ...int64) values.InternalValue {
	items := make([]values.InternalValue, len(nums))
	for i, n := range nums {
		items[i] = values.Int(n)
	}
	return values.FromList(values.NewMaterializedList(items))
}

func TestDefaultFilter(t *testing.T) {
	got := applyByName(t, "default", values.Empty(), Params{Positional: []values.InternalValue{values.String("fallback")}})
	if s, _ := got.RawString(); s != "fallback" {
		t.Errorf("default: got %q", s)
	}

	got = applyByName(t, "default", values.String("present"), Params{Positional: []values.InternalValue{values.String("fallback")}})
	if s, _ := got.RawString(); s != "present" {
		t.Errorf("default should not override present value: got %q", s)
	}

	got = applyByName(t, "default", values.Bool(false), Params{Positional: []values.InternalValue{
		values.String("fallback"), values.Bool(true),
	}})
	if s, _ := got.RawString(); s != "fallback" {
		t.Errorf("default with boolean=true should treat false as missing: got %q", s)
	}
}

func TestJoinFilter(t *testing.T) {
	got := applyByName(t, "join", intList(1, 2, 3), Params{Positional: []values.InternalValue{values.String(", ")}})
	if s, _ := got.RawString(); s != "1, 2, 3" {
		t.Errorf("join: got %q", s)
	}
}

func TestLengthFilter(t *testing.T) {
	if got := applyByName(t, "length", intList(1, 2, 3), Params{}); got.IntValue() != 3 {
		t.Errorf("length(list): got %d", got.IntValue())
	}
	if got := applyByName(t, "length", values.String("hello"), Params{}); got.IntValue() != 5 {
		t.Errorf("length(string): got %d", got.IntValue())
	}
}

func TestSortFilter(t *testing.T) {
	got := applyByName(t, "sort", intList(3, 1, 2), Params{})
	l, _ := got.AsList()
	want := []int64{1, 2, 3}
	for i, w := range want {
		if l.At(i).IntValue() != w {
			t.Errorf("sort[%d]: got %d, want %d", i, l.At(i).IntValue(), w)
		}
	}

	gotRev := applyByName(t, "sort", intList(3, 1, 2), Params{Positional: []values.InternalValue{values.Bool(true)}})
	lr, _ := gotRev.AsList()
	wantRev := []int64{3, 2, 1}
	for i, w := range wantRev {
		if lr.At(i).IntValue() != w {
			t.Errorf("sort reverse[%d]: got %d, want %d", i, lr.At(i).IntValue(), w)
		}
	}
}

func TestListFilterMaterializesGenerated(t *testing.T) {
	gen := values.NewGeneratedList(3, func(i int) values.InternalValue { return values.Int(int64(i)) })
	base := values.FromList(gen)
	got := applyByName(t, "list", base, Params{})
	l, _ := got.AsList()
	if l.IsGenerated() {
		t.Error("list filter should materialize a generated list")
	}
	if l.Len() != 3 {
		t.Errorf("list filter: got len %d, want 3", l.Len())
	}
}

func TestMapFilter(t *testing.T) {
	base := intList(1, 2, 3)
	f, err := Default().CreateFilter("map", Params{Positional: []values.InternalValue{values.String("length")}})
	if err != nil {
		t.Fatalf("CreateFilter(map): %v", err)
	}
	ctx := rendercontext.New(nil)
	result := f.Apply(base, ctx)
	l, _ := result.AsList()
	if l.Len() != 3 {
		t.Fatalf("map: got len %d, want 3", l.Len())
	}
	// length(1) == 0 since an int has no length-filter meaning beyond
	// string/list/map; verifies map applies uniformly without panicking.
	_ = l.At(0)
}

func TestSelectReject(t *testing.T) {
	base := intList(1, 2, 3, 4, 5)
	sel := applyByName(t, "select", base, Params{Positional: []values.InternalValue{values.String("odd")}})
	l, _ := sel.AsList()
	if l.Len() != 3 {
		t.Errorf("select odd: got len %d, want 3", l.Len())
	}
	rej := applyByName(t, "reject", base, Params{Positional: []values.InternalValue{values.String("odd")}})
	lr, _ := rej.AsList()
	if lr.Len() != 2 {
		t.Errorf("reject odd: got len %d, want 2", lr.Len())
	}
}
