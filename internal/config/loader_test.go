package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeConfigFile writes a config file into a temp directory and returns its path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

// TestLoadConfigFile tests YAML config loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("full config loads", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, `
concurrency: 4
partial: true
format: json
output: report.json
db_dir: /var/lib/seqqc
`)
		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("LoadConfigFile() unexpected error: %v", err)
		}
		if cf.Concurrency != 4 {
			t.Errorf("Concurrency = %d, expected 4", cf.Concurrency)
		}
		if !cf.Partial {
			t.Error("Partial = false, expected true")
		}
		if cf.Format != FormatJSON {
			t.Errorf("Format = %q, expected %q", cf.Format, FormatJSON)
		}
		if cf.Output != "report.json" {
			t.Errorf("Output = %q, expected report.json", cf.Output)
		}
		if cf.DBDir != "/var/lib/seqqc" {
			t.Errorf("DBDir = %q, expected /var/lib/seqqc", cf.DBDir)
		}
	})

	t.Run("empty config loads with zero values", func(t *testing.T) {
		t.Parallel()

		cf, err := LoadConfigFile(writeConfigFile(t, ""))
		if err != nil {
			t.Fatalf("LoadConfigFile() unexpected error: %v", err)
		}
		if cf.Concurrency != 0 || cf.Format != "" {
			t.Errorf("empty file produced non-zero values: %+v", cf)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid YAML returns error", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfigFile(writeConfigFile(t, "concurrency: [not an int")); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})

	t.Run("unknown format returns error", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfigFile(writeConfigFile(t, "format: xml")); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

// TestFileApply verifies file values merge into a config.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("file values override defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cf := &File{Concurrency: 2, Partial: true, Format: FormatMarkdown, Output: "out.md", DBDir: "/tmp/db"}
		cf.Apply(cfg)

		if cfg.Concurrency != 2 {
			t.Errorf("Concurrency = %d, expected 2", cfg.Concurrency)
		}
		if !cfg.Partial {
			t.Error("Partial = false, expected true")
		}
		if !cfg.MarkdownReport || cfg.JSONReport {
			t.Errorf("format flags = json:%v markdown:%v, expected markdown only", cfg.JSONReport, cfg.MarkdownReport)
		}
		if cfg.ReportFile != "out.md" {
			t.Errorf("ReportFile = %q, expected out.md", cfg.ReportFile)
		}
		if cfg.DBDir != "/tmp/db" || !cfg.SaveToDB {
			t.Errorf("DBDir = %q SaveToDB = %v, expected /tmp/db with saving enabled", cfg.DBDir, cfg.SaveToDB)
		}
	})

	t.Run("zero values leave defaults alone", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		(&File{}).Apply(cfg)

		if cfg.Concurrency != DefaultConcurrency {
			t.Errorf("Concurrency = %d, expected default %d", cfg.Concurrency, DefaultConcurrency)
		}
		if cfg.SaveToDB {
			t.Error("SaveToDB = true, expected false")
		}
	})
}

// TestFindConfigFile tests the config file search order.
func TestFindConfigFile(t *testing.T) {
	// Not parallel: subtests change the working directory.

	t.Run("explicit path is used when it exists", func(t *testing.T) {
		path := writeConfigFile(t, "concurrency: 4")
		if got := FindConfigFile(path); got != path {
			t.Errorf("FindConfigFile() = %q, expected %q", got, path)
		}
	})

	t.Run("explicit missing path returns empty", func(t *testing.T) {
		if got := FindConfigFile(filepath.Join(t.TempDir(), "nope.yaml")); got != "" {
			t.Errorf("FindConfigFile() = %q, expected empty", got)
		}
	})

	t.Run("current directory is searched", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, DefaultConfigFile)
		if err := os.WriteFile(path, []byte("concurrency: 4"), 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}
		t.Chdir(dir)

		got := FindConfigFile("")
		if filepath.Base(got) != DefaultConfigFile {
			t.Errorf("FindConfigFile() = %q, expected %s in current directory", got, DefaultConfigFile)
		}
	})
}
