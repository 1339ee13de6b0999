package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestSettingsFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.toml")
	if err := os.WriteFile(path, []byte("rows = 40\ncols = 60\nmillis_per_iteration = 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-config", path, "-cols", "90", "-motion"}); err != nil {
		t.Fatal(err)
	}
	settings, err := cfg.Settings(fs)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if settings.Rows != 40 || settings.MillisPerIteration != 30 {
		t.Fatalf("file values lost: %+v", settings)
	}
	if settings.Cols != 90 || !settings.HighlightMotion {
		t.Fatalf("flag values not applied: %+v", settings)
	}
}

func TestSettingsDefaultsWithoutFile(t *testing.T) {
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-config", filepath.Join(t.TempDir(), "none.toml"), "-seed", "9"}); err != nil {
		t.Fatal(err)
	}
	settings, err := cfg.Settings(fs)
	if err != nil {
		t.Fatal(err)
	}
	if settings.Seed != 9 || settings.Rows != 100 || settings.Cols != 150 {
		t.Fatalf("unexpected settings %+v", settings)
	}
}

func TestSettingsReportsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.toml")
	if err := os.WriteFile(path, []byte("rows = [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	cfg.ConfigPath = path
	if _, err := cfg.Settings(flag.NewFlagSet("life", flag.ContinueOnError)); err == nil {
		t.Fatal("expected an error for a malformed settings file")
	}
}
