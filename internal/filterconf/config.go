// Package filterconf loads the optional YAML configuration governing
// default filter parameters (e.g. the default truncate length, or an
// ASCII-only casing mode), using goccy/go-yaml the way
// ardnew-aenv/lang/format.go reaches for it over the stdlib
// encoding/yaml-adjacent tooling (Go has none) to marshal structured
// configuration.
//
// The filters package does not read this configuration: casing always
// uses language.Und and truncate uses its own built-in defaults.
// cmd/jinjaeval loads a configuration file given with --config and
// only logs its locale and case mode.
package filterconf

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// CaseMode selects the locale strategy the casing filters use,
// resolving spec.md §9's open question about locale for upper/lower/
// title: "document that ASCII-only behavior may be selected by
// configuration."
type CaseMode string

const (
	// CaseModeLocale names locale-aware casing via
	// golang.org/x/text/cases.
	CaseModeLocale CaseMode = "locale"
	// CaseModeASCII names casing restricted to ASCII letters.
	CaseModeASCII CaseMode = "ascii"
)

// Config is the top-level filter configuration document.
type Config struct {
	// Locale is a BCP 47 language tag (e.g. "en", "de", "tr") used for
	// locale-aware casing; empty means golang.org/x/text/language.Und.
	Locale string `yaml:"locale"`

	// Case selects CaseModeLocale or CaseModeASCII.
	Case CaseMode `yaml:"case"`

	// TruncateDefaults holds values for the truncate filter's optional
	// parameters; Default() sets length=255, end="...", leeway=5.
	TruncateDefaults TruncateDefaults `yaml:"truncate_defaults"`
}

// TruncateDefaults mirrors the truncate filter's optional parameters.
type TruncateDefaults struct {
	Length  int    `yaml:"length"`
	End     string `yaml:"end"`
	Leeway  int    `yaml:"leeway"`
}

// Default returns the built-in configuration matching spec.md §4.E's
// stated defaults.
func Default() Config {
	return Config{
		Case:             CaseModeLocale,
		TruncateDefaults: TruncateDefaults{Length: 255, End: "...", Leeway: 5},
	}
}

// Load reads and parses a YAML configuration file at path, filling in
// any zero-valued field from Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("filterconf: reading %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("filterconf: parsing %s: %w", path, err)
	}
	if cfg.TruncateDefaults.Length == 0 {
		cfg.TruncateDefaults.Length = 255
	}
	if cfg.TruncateDefaults.End == "" {
		cfg.TruncateDefaults.End = "..."
	}
	if cfg.Case == "" {
		cfg.Case = CaseModeLocale
	}
	return cfg, nil
}
