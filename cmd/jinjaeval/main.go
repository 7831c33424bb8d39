// Command jinjaeval is a small driver for the expression/filter core:
// it loads a declarative YAML expression-tree fixture (see
// internal/fixture), evaluates it against an optional variable-bindings
// document, and prints the result. It stands in for the out-of-scope
// statement renderer/parser, the way go-dws's cmd/dwscript exercises
// its interpreter package end to end.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-jinja/cmd/jinjaeval/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
