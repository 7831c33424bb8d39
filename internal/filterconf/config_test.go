package filterconf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.Case != CaseModeLocale {
		t.Errorf("default Case: got %v, want %v", cfg.Case, CaseModeLocale)
	}
	if cfg.TruncateDefaults.Length != 255 {
		t.Errorf("default truncate length: got %d, want 255", cfg.TruncateDefaults.Length)
	}
}

func TestLoadFillsZeroFieldsFromDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "filters.yaml")
	if err := os.WriteFile(path, []byte("locale: de\ncase: ascii\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Locale != "de" {
		t.Errorf("Locale: got %q, want %q", cfg.Locale, "de")
	}
	if cfg.Case != CaseModeASCII {
		t.Errorf("Case: got %v, want %v", cfg.Case, CaseModeASCII)
	}
	if cfg.TruncateDefaults.Length != 255 {
		t.Errorf("unset truncate length should fall back to default: got %d", cfg.TruncateDefaults.Length)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a nonexistent config file")
	}
}
