package cmd

import (
	"github.com/cwbudde/go-jinja/internal/filters"
	"github.com/cwbudde/go-jinja/internal/rendercontext"
	"github.com/cwbudde/go-jinja/internal/values"
)

// quickFilter constructs and applies a named filter with no arguments,
// used by the --pprint debug flag.
func quickFilter(name string, base values.InternalValue, ctx *rendercontext.Context) (values.InternalValue, error) {
	f, err := filters.Default().CreateFilter(name, filters.Params{})
	if err != nil {
		return values.Empty(), err
	}
	return f.Apply(base, ctx), nil
}
