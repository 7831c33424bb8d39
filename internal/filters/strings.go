package filters

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/cwbudde/go-jinja/internal/rendercontext"
	"github.com/cwbudde/go-jinja/internal/values"
)

// registerStringFilters wires the string-transforming filter suite
// detailed in spec.md §4.E into reg. Casing is locale-aware via
// golang.org/x/text/cases the way go-dws's
// internal/interp/builtins/strings_compare.go leans on
// golang.org/x/text/collate for locale comparisons instead of
// hand-rolled ASCII tables.
func registerStringFilters(reg *Registry) {
	reg.Register("trim", func(Params) (Filter, error) {
		return stringFilter(trimFilter), nil
	})
	reg.Register("title", func(Params) (Filter, error) {
		return stringFilter(titleFilter), nil
	})
	reg.Register("wordcount", func(Params) (Filter, error) {
		return FilterFunc(wordCountFilter), nil
	})
	reg.Register("upper", func(Params) (Filter, error) {
		return stringFilter(caseFilter(cases.Upper(language.Und))), nil
	})
	reg.Register("lower", func(Params) (Filter, error) {
		return stringFilter(caseFilter(cases.Lower(language.Und))), nil
	})
	reg.Register("replace", func(p Params) (Filter, error) {
		old := p.Pos(0, values.Empty()).ConvertToString()
		newS := p.Pos(1, values.Empty()).ConvertToString()
		count := p.Pos(2, values.Int(0)).ConvertToInt(0)
		return stringFilter(func(s string) string { return replaceFilter(s, old, newS, int(count)) }), nil
	})
	reg.Register("truncate", func(p Params) (Filter, error) {
		length := int(p.Pos(0, values.Int(255)).ConvertToInt(255))
		killwords := p.Pos(1, values.Bool(false)).ConvertToBool()
		end := p.Pos(2, values.String("...")).ConvertToString()
		leeway := int(p.Pos(3, values.Int(5)).ConvertToInt(5))
		return stringFilter(func(s string) string { return truncateFilter(s, length, killwords, end, leeway) }), nil
	})
	reg.Register("urlencode", func(Params) (Filter, error) {
		return stringFilter(urlEncodeFilter), nil
	})
}

// stringFilter adapts a pure string->string transform into a Filter:
// the base value is coerced to its underlying string (preserving
// width per spec.md §4.E), transformed, and rewrapped at the same
// width as a target-string — matching what Jinja's string filters
// return (an output-ready string, not a plain scalar).
func stringFilter(fn func(string) string) Filter {
	return FilterFunc(func(base values.InternalValue, ctx *rendercontext.Context) values.InternalValue {
		s, ok := base.RawString()
		if !ok {
			s = base.ConvertToString()
		}
		out := fn(s)
		return values.FromTargetString(values.NewTargetString(out, base.IsWide())).SetTemporary(true)
	})
}

func caseFilter(c cases.Caser) func(string) string {
	return func(s string) string { return c.String(s) }
}

// trimFilter collapses internal whitespace runs to a single space and
// trims both ends.
func trimFilter(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

func isAlnumRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// titleFilter capitalizes the first alphabetic character after any
// non-alphanumeric run, via a single-bit streaming state machine
// (isDelim, initialized true) rather than word-splitting — matching
// spec.md §4.E's description exactly, which also makes it correct
// for strings with no delimiter-induced word breaks at all.
// Combining-mark sequences are normalized (NFC) first so a base letter
// followed by a combining accent is classified as a single alphabetic
// unit, the same precaution go-dws's strings_advanced.go takes before
// scanning characters.
func titleFilter(s string) string {
	s = norm.NFC.String(s)
	var b strings.Builder
	b.Grow(len(s))
	isDelim := true
	for _, r := range s {
		switch {
		case isDelim && unicode.IsLetter(r):
			b.WriteRune(unicode.ToUpper(r))
			isDelim = false
		default:
			b.WriteRune(r)
			isDelim = !isAlnumRune(r)
		}
	}
	return b.String()
}

// wordCountFilter counts transitions from a delimiter (non-alnum) run
// into an alnum run, i.e. the number of maximal alphanumeric runs.
func wordCountFilter(base values.InternalValue, ctx *rendercontext.Context) values.InternalValue {
	s, _ := base.RawString()
	s = norm.NFC.String(s)
	count := int64(0)
	inWord := false
	for _, r := range s {
		if isAlnumRune(r) {
			if !inWord {
				count++
				inWord = true
			}
		} else {
			inWord = false
		}
	}
	return values.Int(count).SetTemporary(true)
}

// replaceFilter replaces occurrences of old with newS: count==0 means
// replace all (Go's strings.Replace with n=-1); count>0 replaces the
// first count occurrences, left to right, non-overlapping.
func replaceFilter(s, old, newS string, count int) string {
	if old == "" {
		return s
	}
	n := count
	if n == 0 {
		n = -1
	}
	return strings.Replace(s, old, newS, n)
}

// truncateFilter implements Jinja-compatible truncation: leeway
// widens the "already short enough" check so a source that overruns
// length by only a few characters is left alone; past that, a
// word-boundary-aware cut is used so a trailing partial word is
// dropped rather than sliced through its middle; killwords skips the
// word-boundary step in favor of a hard cut exactly at length.
func truncateFilter(s string, length int, killwords bool, end string, leeway int) string {
	if length <= 0 {
		length = 255
	}
	if end == "" {
		end = "..."
	}
	if leeway < 0 {
		leeway = 0
	}
	runes := []rune(s)
	total := len(runes)
	if total <= length {
		return s
	}
	if total <= length+leeway {
		return s
	}
	if killwords {
		return string(runes[:length]) + end
	}

	endLen := utf8.RuneCountInString(end)
	cut := length - endLen
	if cut < 0 {
		cut = 0
	}
	if cut > total {
		cut = total
	}
	idx := cut
	for idx > 0 && isAlnumRune(runes[idx-1]) {
		idx--
	}
	kept := strings.TrimRight(string(runes[:idx]), " \t\n\r")
	return kept + end
}

// urlReserved is the fixed reserved character set spec.md §4.E names,
// percent-encoded like every byte above 0x7F.
var urlReserved = map[rune]bool{
	'+': true, '"': true, '%': true, '-': true, '!': true, '#': true,
	'$': true, '&': true, '\'': true, '(': true, ')': true, '*': true,
	',': true, '/': true, ':': true, ';': true, '=': true, '?': true,
	'@': true, '[': true, ']': true,
}

// urlEncodeFilter percent-encodes space as '+' and any reserved or
// non-ASCII character as uppercase %XX per UTF-8 byte.
func urlEncodeFilter(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == ' ':
			b.WriteByte('+')
		case r > 0x7F || urlReserved[r]:
			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], r)
			for _, byt := range buf[:n] {
				fmt.Fprintf(&b, "%%%02X", byt)
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseIntArg is a small helper collection filters share for coercing
// a filter argument that may arrive as an int or a numeric string.
func ParseIntArg(v values.InternalValue, def int64) int64 {
	if v.Kind() == values.KindInt {
		return v.IntValue()
	}
	if s, ok := v.RawString(); ok {
		if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return n
		}
	}
	return def
}
