package filters

import (
	"testing"

	"github.com/cwbudde/go-jinja/internal/rendercontext"
	"github.com/cwbudde/go-jinja/internal/values"
)

func applyByName(t *testing.T, name string, base values.InternalValue, params Params) values.InternalValue {
	t.Helper()
	f, err := Default().CreateFilter(name, params)
	if err != nil {
		t.Fatalf("CreateFilter(%q): %v", name, err)
	}
	ctx := rendercontext.New(nil)
	return f.Apply(base, ctx)
}

func TestTrim(t *testing.T) {
	got := applyByName(t, "trim", values.String("  a   b  "), Params{})
	if s, _ := got.RawString(); s != "a b" {
		t.Errorf("trim: got %q, want %q", s, "a b")
	}
}

func TestTitle(t *testing.T) {
	got := applyByName(t, "title", values.String("hello world"), Params{})
	if s, _ := got.RawString(); s != "Hello World" {
		t.Errorf("title: got %q, want %q", s, "Hello World")
	}
}

func TestTitleIdempotent(t *testing.T) {
	once := applyByName(t, "title", values.String("hello world"), Params{})
	s, _ := once.RawString()
	twice := applyByName(t, "title", values.String(s), Params{})
	s2, _ := twice.RawString()
	if s != s2 {
		t.Errorf("title not idempotent: %q != %q", s, s2)
	}
}

func TestWordCount(t *testing.T) {
	got := applyByName(t, "wordcount", values.String("one two three four"), Params{})
	if got.IntValue() != 4 {
		t.Errorf("wordcount: got %d, want 4", got.IntValue())
	}
}

func TestUpperLower(t *testing.T) {
	up := applyByName(t, "upper", values.String("Hello"), Params{})
	if s, _ := up.RawString(); s != "HELLO" {
		t.Errorf("upper: got %q", s)
	}
	low := applyByName(t, "lower", values.String("Hello"), Params{})
	if s, _ := low.RawString(); s != "hello" {
		t.Errorf("lower: got %q", s)
	}
}

func TestReplace(t *testing.T) {
	cases := []struct {
		name  string
		count int64
		want  string
	}{
		{"replace-first", 1, "Xbcabc"},
		{"replace-all", 0, "XbcXbc"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			params := Params{Positional: []values.InternalValue{
				values.String("a"), values.String("X"), values.Int(c.count),
			}}
			got := applyByName(t, "replace", values.String("abcabc"), params)
			s, _ := got.RawString()
			if s != c.want {
				t.Errorf("replace: got %q, want %q", s, c.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	params := Params{Positional: []values.InternalValue{
		values.Int(9), values.Bool(false), values.String("..."), values.Int(2),
	}}
	got := applyByName(t, "truncate", values.String("The quick brown fox"), params)
	s, _ := got.RawString()
	if s != "The..." {
		t.Errorf("truncate: got %q, want %q", s, "The...")
	}
}

func TestTruncateShortSourceUnchanged(t *testing.T) {
	params := Params{Positional: []values.InternalValue{values.Int(255)}}
	got := applyByName(t, "truncate", values.String("short"), params)
	s, _ := got.RawString()
	if s != "short" {
		t.Errorf("truncate: got %q, want unchanged %q", s, "short")
	}
}

func TestTruncateKillwords(t *testing.T) {
	params := Params{Positional: []values.InternalValue{
		values.Int(9), values.Bool(true), values.String("..."), values.Int(0),
	}}
	got := applyByName(t, "truncate", values.String("The quick brown fox"), params)
	s, _ := got.RawString()
	if s != "The quick..." {
		t.Errorf("truncate killwords: got %q, want %q", s, "The quick...")
	}
}

func TestUrlEncode(t *testing.T) {
	got := applyByName(t, "urlencode", values.String("Hello, World!"), Params{})
	s, _ := got.RawString()
	if s != "Hello%2C+World%21" {
		t.Errorf("urlencode: got %q, want %q", s, "Hello%2C+World%21")
	}
}
