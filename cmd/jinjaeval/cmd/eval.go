package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/cwbudde/go-jinja/internal/filterconf"
	"github.com/cwbudde/go-jinja/internal/fixture"
	"github.com/cwbudde/go-jinja/internal/rendercontext"
	"github.com/cwbudde/go-jinja/internal/telemetry"
	"github.com/cwbudde/go-jinja/internal/values"
)

var (
	varsPath   string
	configPath string
	dumpPprint bool
)

var evalCmd = &cobra.Command{
	Use:   "eval [fixture.yaml]",
	Short: "Evaluate an expression-tree fixture and print the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringVar(&varsPath, "vars", "", "YAML file of variable bindings injected into the root scope")
	evalCmd.Flags().StringVar(&configPath, "config", "", "YAML filter configuration file (see internal/filterconf)")
	evalCmd.Flags().BoolVar(&dumpPprint, "pprint", false, "render the result through the pprint filter instead of plain string conversion")
}

func runEval(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := telemetry.New(os.Stderr, telemetry.WithLevel(level))

	if configPath != "" {
		cfg, err := filterconf.Load(configPath)
		if err != nil {
			return err
		}
		logger.Debug("loaded filter config", "locale", cfg.Locale, "case", cfg.Case)
	}

	node, err := fixture.Load(args[0])
	if err != nil {
		return err
	}
	expr, err := fixture.Compile(node)
	if err != nil {
		return err
	}

	ctx := rendercontext.New(values.DefaultRendererCallback{})
	if varsPath != "" {
		if err := loadVars(ctx, varsPath); err != nil {
			return err
		}
	}

	result := expr.Evaluate(ctx)
	logger.Debug("evaluated fixture", "kind", result.Kind().String())

	if dumpPprint {
		pp, err := quickFilter("pprint", result, ctx)
		if err != nil {
			return err
		}
		fmt.Println(pp.ConvertToString())
		return nil
	}
	fmt.Println(result.ConvertToString())
	return nil
}

// loadVars reads a flat YAML map of variable bindings into ctx's root
// scope.
func loadVars(ctx *rendercontext.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading vars file %s: %w", path, err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing vars file %s: %w", path, err)
	}
	for name, v := range raw {
		ctx.RootScope().Set(name, toInternalValue(v))
	}
	return nil
}

func toInternalValue(v any) values.InternalValue {
	switch val := v.(type) {
	case nil:
		return values.Empty()
	case bool:
		return values.Bool(val)
	case int:
		return values.Int(int64(val))
	case int64:
		return values.Int(val)
	case float64:
		if val == float64(int64(val)) {
			return values.Int(int64(val))
		}
		return values.Double(val)
	case string:
		return values.String(val)
	case []any:
		items := make([]values.InternalValue, len(val))
		for i, e := range val {
			items[i] = toInternalValue(e)
		}
		return values.FromList(values.NewMaterializedList(items))
	case map[string]any:
		m := values.NewMap()
		for k, e := range val {
			m.Set(k, toInternalValue(e))
		}
		return values.FromMap(m)
	default:
		return values.String(fmt.Sprintf("%v", val))
	}
}
