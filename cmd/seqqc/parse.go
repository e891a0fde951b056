package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/seqqc/seqqc/internal/batch"
	"github.com/seqqc/seqqc/internal/config"
	"github.com/seqqc/seqqc/internal/database"
	"github.com/seqqc/seqqc/internal/log"
	"github.com/seqqc/seqqc/internal/model"
	"github.com/seqqc/seqqc/internal/report"
	"github.com/spf13/cobra"
)

// NewParseCmd creates the parse command.
func NewParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <fastqc-output>...",
		Short: "Parse FastQC output into a validated report",
		Long: `Parse reads FastQC output and produces a typed, validated report.

Each argument is either a fastqc_data.txt path or a FastQC archive (.zip).
For archives, the summary.txt inside the archive is merged into the report;
for plain data files, a sibling summary.txt is used when present.

Examples:
  # Parse a single FastQC archive
  seqqc parse sample_fastqc.zip

  # Parse an unpacked data file
  seqqc parse sample_fastqc/fastqc_data.txt

  # Parse a batch, keeping going past broken reports
  seqqc parse --partial run1_fastqc.zip run2_fastqc.zip run3_fastqc.zip

  # Output a JSON report to a file
  seqqc parse --json -o report.json sample_fastqc.zip

  # Store the parsed run for later listing and comparison
  seqqc parse --save sample_fastqc.zip

Configuration file (.seqqc.yaml) example:
  concurrency: 4
  partial: true
  format: json
  db_dir: /var/lib/seqqc`,
		Args: cobra.ArbitraryArgs,
		RunE: runParseCmd,
	}

	// Batch behavior flags
	cmd.Flags().IntP("batch", "b", config.DefaultConcurrency,
		"Number of reports parsed concurrently")
	cmd.Flags().BoolP("partial", "p", false,
		"Keep parsing remaining reports when one fails")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .seqqc.yaml in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// Database flags
	cmd.Flags().BoolP("save", "s", false,
		"Save parsed runs to the run database")
	cmd.Flags().String("db", "",
		"Run database directory (implies --save; default: XDG data directory)")

	return cmd
}

// runParseCmd executes the parse command.
func runParseCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runParse(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the config file and cobra command flags.
// The config file fills in defaults first; flags the user set override it.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load defaults from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Flags the user set on the command line win over the config file.
	if cmd.Flags().Changed("batch") {
		if cfg.Concurrency, err = cmd.Flags().GetInt("batch"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("partial") {
		if cfg.Partial, err = cmd.Flags().GetBool("partial"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("json") {
		if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("markdown") {
		if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("output") {
		if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
			return nil, err
		}
	}

	save, err := cmd.Flags().GetBool("save")
	if err != nil {
		return nil, err
	}
	dbDir, err := cmd.Flags().GetString("db")
	if err != nil {
		return nil, err
	}
	if dbDir != "" {
		cfg.DBDir = dbDir
		cfg.SaveToDB = true
	} else if save {
		cfg.SaveToDB = true
	}
	if cfg.SaveToDB && cfg.DBDir == "" {
		cfg.DBDir = config.XDGDataDir()
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Positional arguments are the report resources
	cfg.Inputs = args

	return cfg, nil
}

// runParse executes the parse.
func runParse(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting parse",
		"inputs", len(cfg.Inputs),
		"concurrency", cfg.Concurrency,
		"partial", cfg.Partial,
		"saveToDB", cfg.SaveToDB,
	)

	// Open database connection if saving is enabled
	var qdb *database.QCDB
	if cfg.SaveToDB {
		var err error
		qdb, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer qdb.Close() //nolint:errcheck // Best effort cleanup
		logger.Info("database opened", "dir", cfg.DBDir)
	}

	processor := batch.New(
		batch.WithConcurrency(cfg.Concurrency),
		batch.WithLogger(logger),
	)

	var reports model.Collection
	if cfg.Partial {
		result, err := processor.ProcessPartial(ctx, cfg.Inputs)
		if err != nil {
			return err
		}
		for _, failure := range result.Failures {
			fmt.Fprintf(os.Stderr, "parse error for %s: %v\n", failure.Source, failure.Err)
		}
		if len(result.Reports) == 0 {
			return fmt.Errorf("all %d reports failed to parse", len(result.Failures))
		}
		reports = result.Reports
	} else {
		var err error
		reports, err = processor.Process(ctx, cfg.Inputs)
		if err != nil {
			return err
		}
	}

	if err := outputReports(cfg, reports); err != nil {
		return err
	}

	return saveReports(ctx, qdb, reports, logger)
}

// outputReports writes the parsed reports in the requested format.
func outputReports(cfg *config.Config, reports model.Collection) error {
	output, closeOutput, err := openOutput(cfg.ReportFile)
	if err != nil {
		return err
	}
	defer closeOutput()

	// JSON output collects all reports into one document
	if cfg.JSONReport {
		_, err := report.NewJSONWriter(output, report.WithPrettyPrint()).WriteCollection(reports)
		return err
	}

	var writer report.Writer
	if cfg.MarkdownReport {
		writer = report.NewMarkdownWriter(output)
	} else {
		writer = report.NewTextWriter(output)
	}
	for _, r := range reports {
		if _, err := writer.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// openOutput opens the report destination: the given file path, or stdout
// when the path is empty. The returned closeOutput is a no-op for stdout.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// saveReports saves the parsed reports to the database if enabled.
// If qdb is nil, this function is a no-op.
func saveReports(ctx context.Context, qdb *database.QCDB, reports model.Collection, logger *slog.Logger) error {
	if qdb == nil {
		return nil
	}

	for _, r := range reports {
		id, err := qdb.SaveReport(ctx, r)
		if err != nil {
			return fmt.Errorf("failed to save report for %s: %w", r.SourcePath, err)
		}
		logger.Info("report saved to database", "source", r.SourcePath, "id", id)
	}
	return nil
}
