package cmd

import (
	"github.com/spf13/cobra"
)

// Version is set by build flags, mirroring go-dws's cmd/dwscript/cmd
// version-injection pattern.
var Version = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:     "jinjaeval",
	Short:   "Evaluate a declarative expression-tree fixture",
	Version: Version,
	Long: `jinjaeval loads a YAML expression-tree fixture (see internal/fixture
for the node schema) and evaluates it through the expression/filter
core, printing the resulting value.

It exists to exercise internal/eval, internal/filters, internal/testers,
and internal/binder end to end without a full template parser, which
is out of scope for this module.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")
}
