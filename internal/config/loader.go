package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".seqqc.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Report format names accepted in the configuration file.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// File represents the YAML configuration file.
// All fields are optional; CLI flags take precedence over file values.
type File struct {
	// Concurrency is the number of reports parsed at the same time.
	Concurrency int `yaml:"concurrency,omitempty"`

	// Partial keeps going when individual reports in a batch fail.
	Partial bool `yaml:"partial,omitempty"`

	// Format is the default report format: "text", "json", or "markdown".
	Format string `yaml:"format,omitempty"`

	// Output is the default report output file path.
	Output string `yaml:"output,omitempty"`

	// DBDir is the directory for the run database. Saving is enabled
	// whenever this is set.
	DBDir string `yaml:"db_dir,omitempty"`
}

// LoadConfigFile loads configuration defaults from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	switch cf.Format {
	case "", FormatText, FormatJSON, FormatMarkdown:
	default:
		return nil, fmt.Errorf("unknown report format %q in %s", cf.Format, path)
	}

	return &cf, nil
}

// Apply merges the file values into the given config.
// File values only fill in settings the user did not set on the command
// line, so Apply must run before flag values are copied over.
func (f *File) Apply(cfg *Config) {
	if f.Concurrency > 0 {
		cfg.Concurrency = f.Concurrency
	}
	if f.Partial {
		cfg.Partial = true
	}
	switch f.Format {
	case FormatJSON:
		cfg.JSONReport = true
	case FormatMarkdown:
		cfg.MarkdownReport = true
	}
	if f.Output != "" {
		cfg.ReportFile = f.Output
	}
	if f.DBDir != "" {
		cfg.DBDir = f.DBDir
		cfg.SaveToDB = true
	}
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .seqqc.yaml in the current directory
// 3. Look for .seqqc.yaml in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
