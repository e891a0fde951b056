package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultConcurrency is the number of reports parsed at the same time
	// when processing a batch. Parsing is CPU- and disk-light, so a modest
	// level of parallelism captures most of the benefit; larger values give
	// diminishing returns and noisier failure ordering.
	DefaultConcurrency = 8

	// AppName is the application name used for XDG directory paths.
	AppName = "seqqc"
)

// Config holds all configuration options for seqqc.
// This struct is designed to be populated from CLI flags and the optional
// configuration file, then passed through the application via dependency
// injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., ParseConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
type Config struct {
	// Inputs is the list of report resources to parse. Each entry is either
	// a fastqc_data.txt path or a FastQC output archive (.zip).
	// Must contain at least one entry.
	Inputs []string

	// Concurrency is the number of reports parsed at the same time when
	// processing a batch. Must be positive.
	Concurrency int

	// Partial keeps going when individual reports in a batch fail to parse.
	// When false (default), the first failure aborts the whole batch.
	Partial bool

	// JSONReport enables JSON report output instead of human-readable format.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .seqqc.yaml in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// DBDir is the directory path for storing the SQLite database.
	// When set, parsed reports are saved to the database for later listing
	// and comparison. When empty, reports are not persisted.
	// Defaults to XDG data directory (~/.local/share/seqqc on Linux).
	DBDir string

	// SaveToDB indicates whether to save parsed reports to the database.
	// This is automatically set to true when DBDir is configured.
	SaveToDB bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool
}

// NewConfig creates a new Config with default values.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because some defaults are non-zero (e.g., concurrency).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Concurrency: DefaultConcurrency,
	}
}

// XDGDataDir returns the XDG data directory for seqqc.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/seqqc
// On macOS: ~/Library/Application Support/seqqc
// On Windows: %LOCALAPPDATA%\seqqc
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for seqqc.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any parsing begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// We must have at least one resource to parse
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}

	// Concurrency must be positive; zero would mean no parsing
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
