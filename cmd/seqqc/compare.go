package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/seqqc/seqqc/internal/config"
	"github.com/seqqc/seqqc/internal/database"
	"github.com/seqqc/seqqc/internal/fastqc"
	"github.com/seqqc/seqqc/internal/model"
	"github.com/seqqc/seqqc/internal/source"
	"github.com/spf13/cobra"
)

// Constants for QC direction and summary messages.
const (
	qcDirectionWorsened  = "worsened"
	qcDirectionImproved  = "improved"
	qcDirectionUnchanged = "unchanged"
)

// NewCompareCmd creates the compare command.
// This command compares two QC runs: either two report resources given as
// arguments, or two stored runs from the database.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [previous] [current]",
		Short: "Compare two QC runs",
		Long: `Compare shows how QC status changed between two runs of a sample.

It reports modules whose PASS/WARN/FAIL status regressed or improved,
plus the change in headline metrics (total sequences, %GC, duplication).

The two runs are either report resources given as arguments, or stored
runs selected by database ID. Use 'seqqc parse --save' to store runs and
'seqqc list' to see their IDs.

Examples:
  # Compare two FastQC archives
  seqqc compare before_fastqc.zip after_fastqc.zip

  # Compare two stored runs by ID
  seqqc compare --ids 3,7

  # Output comparison in JSON format
  seqqc compare --json before_fastqc.zip after_fastqc.zip`,
		Args: cobra.MaximumNArgs(2),
		RunE: runCompareCmd,
	}

	// Comparison target flags
	cmd.Flags().Int64Slice("ids", nil,
		"Compare two stored runs by database ID (exactly two, previous first)")
	cmd.Flags().String("db", "",
		"Run database directory (default: XDG data directory)")

	// Output format flags
	cmd.Flags().BoolP("json", "j", false,
		"Output comparison result in JSON format")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output comparison result in Markdown format")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	ids, err := cmd.Flags().GetInt64Slice("ids")
	if err != nil {
		return err
	}

	var previous, current *model.Report
	switch {
	case len(ids) > 0:
		if len(ids) != 2 {
			return fmt.Errorf("--ids requires exactly two run IDs, got %d", len(ids))
		}
		if len(args) > 0 {
			return fmt.Errorf("--ids cannot be combined with report arguments")
		}
		previous, current, err = loadStoredRuns(cmd, ids[0], ids[1])
		if err != nil {
			return err
		}
	case len(args) == 2:
		if previous, err = parseResource(args[0]); err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}
		if current, err = parseResource(args[1]); err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[1], err)
		}
	default:
		return fmt.Errorf("compare requires two report resources or --ids with two run IDs")
	}

	comparison := compareReports(previous, current)

	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	markdownOutput, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputComparisonJSON(comparison)
	}
	if markdownOutput {
		return outputComparisonMarkdown(comparison)
	}
	return outputComparisonText(comparison)
}

// parseResource reads and parses a single report resource.
func parseResource(path string) (*model.Report, error) {
	src := source.For(path)
	lines, err := src.ReadLines()
	if err != nil {
		return nil, err
	}
	summary, err := source.LoadSummary(src)
	if err != nil {
		return nil, err
	}
	return fastqc.Parse(src.Path(), lines, summary)
}

// loadStoredRuns loads two runs from the database by ID.
func loadStoredRuns(cmd *cobra.Command, previousID, currentID int64) (*model.Report, *model.Report, error) {
	dbDir, err := cmd.Flags().GetString("db")
	if err != nil {
		return nil, nil, err
	}
	if dbDir == "" {
		dbDir = config.XDGDataDir()
	}

	qdb, err := database.Open(dbDir, database.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer qdb.Close() //nolint:errcheck // Best effort cleanup

	ctx := context.Background()
	previous, err := qdb.GetReport(ctx, previousID)
	if err != nil {
		return nil, nil, err
	}
	current, err := qdb.GetReport(ctx, currentID)
	if err != nil {
		return nil, nil, err
	}
	return previous, current, nil
}

// ComparisonResult holds the result of comparing two QC runs.
type ComparisonResult struct {
	// PreviousSource is the resource the previous run was parsed from.
	PreviousSource string `json:"previous_source"`

	// CurrentSource is the resource the current run was parsed from.
	CurrentSource string `json:"current_source"`

	// Previous contains headline metrics of the previous run.
	Previous RunMetadata `json:"previous"`

	// Current contains headline metrics of the current run.
	Current RunMetadata `json:"current"`

	// Regressions are modules whose status got worse.
	Regressions []StatusChange `json:"regressions,omitempty"`

	// Improvements are modules whose status got better.
	Improvements []StatusChange `json:"improvements,omitempty"`

	// UnchangedCount is the number of modules with the same status in both runs.
	UnchangedCount int `json:"unchanged_count"`

	// Direction is "improved", "worsened", or "unchanged".
	Direction string `json:"direction"`
}

// RunMetadata contains headline metrics of one run for comparison display.
type RunMetadata struct {
	// Filename is the sequencing file the run describes.
	Filename string `json:"filename"`

	// TotalSequences is the number of reads in the run.
	TotalSequences int64 `json:"total_sequences"`

	// PercentGC is the overall GC percentage.
	PercentGC float64 `json:"percent_gc"`

	// DeduplicatedPercentage is the post-deduplication percentage, if known.
	DeduplicatedPercentage *float64 `json:"deduplicated_percentage,omitempty"`

	// PassCount is the number of modules with PASS status.
	PassCount int `json:"pass_count"`

	// WarnCount is the number of modules with WARN status.
	WarnCount int `json:"warn_count"`

	// FailCount is the number of modules with FAIL status.
	FailCount int `json:"fail_count"`
}

// StatusChange describes one module whose status differs between runs.
type StatusChange struct {
	// Module is the module whose status changed.
	Module string `json:"module"`

	// Previous is the module status in the previous run.
	Previous model.Status `json:"previous"`

	// Current is the module status in the current run.
	Current model.Status `json:"current"`
}

// compareReports compares two runs and generates a comparison result.
func compareReports(previous, current *model.Report) *ComparisonResult {
	result := &ComparisonResult{
		PreviousSource: previous.SourcePath,
		CurrentSource:  current.SourcePath,
		Previous:       runMetadata(previous),
		Current:        runMetadata(current),
	}

	// Walk modules in the current summary's order so output is stable.
	// Modules present in only one run have nothing to compare against.
	for _, row := range current.Summary {
		previousStatus, ok := previous.Summary.StatusOf(row.Module)
		if !ok {
			continue
		}
		recordChange(result, row.Module, previousStatus, row.Status)
	}

	previousScore := result.Previous.FailCount*10 + result.Previous.WarnCount
	currentScore := result.Current.FailCount*10 + result.Current.WarnCount
	switch {
	case currentScore < previousScore:
		result.Direction = qcDirectionImproved
	case currentScore > previousScore:
		result.Direction = qcDirectionWorsened
	default:
		result.Direction = qcDirectionUnchanged
	}

	return result
}

// recordChange files one module's status pair into the comparison result.
func recordChange(result *ComparisonResult, module string, previous, current model.Status) {
	switch {
	case current > previous:
		result.Regressions = append(result.Regressions, StatusChange{Module: module, Previous: previous, Current: current})
	case current < previous:
		result.Improvements = append(result.Improvements, StatusChange{Module: module, Previous: previous, Current: current})
	default:
		result.UnchangedCount++
	}
}

// runMetadata extracts headline metrics from a report.
func runMetadata(r *model.Report) RunMetadata {
	return RunMetadata{
		Filename:               r.BasicStatistics.Filename,
		TotalSequences:         r.BasicStatistics.TotalSequences,
		PercentGC:              r.BasicStatistics.PercentGC,
		DeduplicatedPercentage: r.DeduplicatedPercentage,
		PassCount:              r.Summary.PassCount(),
		WarnCount:              r.Summary.WarnCount(),
		FailCount:              r.Summary.FailCount(),
	}
}

// outputComparisonJSON outputs the comparison result in JSON format.
func outputComparisonJSON(result *ComparisonResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// outputComparisonMarkdown outputs the comparison result in Markdown format.
func outputComparisonMarkdown(result *ComparisonResult) error {
	fmt.Printf("# QC Comparison: %s\n\n", result.Current.Filename)

	fmt.Println("## Summary")
	fmt.Printf("\n**QC Status:** %s\n\n", formatQCDirection(result.Direction))

	fmt.Println("| Metric | Previous | Current |")
	fmt.Println("|--------|----------|---------|")
	fmt.Printf("| Source | %s | %s |\n", result.PreviousSource, result.CurrentSource)
	fmt.Printf("| Total sequences | %d | %d |\n",
		result.Previous.TotalSequences, result.Current.TotalSequences)
	fmt.Printf("| %%GC | %.1f | %.1f |\n",
		result.Previous.PercentGC, result.Current.PercentGC)
	fmt.Printf("| Pass | %d | %d |\n", result.Previous.PassCount, result.Current.PassCount)
	fmt.Printf("| Warn | %d | %d |\n", result.Previous.WarnCount, result.Current.WarnCount)
	fmt.Printf("| Fail | %d | %d |\n", result.Previous.FailCount, result.Current.FailCount)

	if len(result.Regressions) > 0 {
		fmt.Printf("\n## Regressions (%d)\n\n", len(result.Regressions))
		for _, change := range result.Regressions {
			fmt.Printf("- **%s**: %s → %s\n", change.Module, change.Previous, change.Current)
		}
	}

	if len(result.Improvements) > 0 {
		fmt.Printf("\n## Improvements (%d)\n\n", len(result.Improvements))
		for _, change := range result.Improvements {
			fmt.Printf("- **%s**: %s → %s\n", change.Module, change.Previous, change.Current)
		}
	}

	if result.UnchangedCount > 0 {
		fmt.Printf("\n---\n\n*%d modules unchanged*\n", result.UnchangedCount)
	}

	return nil
}

// outputComparisonText outputs the comparison result in human-readable text format.
func outputComparisonText(result *ComparisonResult) error {
	fmt.Printf("QC Comparison: %s\n", result.Current.Filename)
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\nQC Status: %s\n", formatQCDirection(result.Direction))

	fmt.Printf("\nPrevious run: %s\n", result.PreviousSource)
	fmt.Printf("Current run:  %s\n", result.CurrentSource)

	fmt.Println("\nHeadline Metrics:")
	fmt.Printf("  %-18s  %-14s  %-14s\n", "Metric", "Previous", "Current")
	fmt.Println("  " + strings.Repeat("-", 48))
	fmt.Printf("  %-18s  %-14d  %-14d\n", "Total sequences",
		result.Previous.TotalSequences, result.Current.TotalSequences)
	fmt.Printf("  %-18s  %-14.1f  %-14.1f\n", "%GC",
		result.Previous.PercentGC, result.Current.PercentGC)
	fmt.Printf("  %-18s  %-14d  %-14d\n", "Pass",
		result.Previous.PassCount, result.Current.PassCount)
	fmt.Printf("  %-18s  %-14d  %-14d\n", "Warn",
		result.Previous.WarnCount, result.Current.WarnCount)
	fmt.Printf("  %-18s  %-14d  %-14d\n", "Fail",
		result.Previous.FailCount, result.Current.FailCount)

	if len(result.Regressions) > 0 {
		fmt.Printf("\nRegressions (%d):\n", len(result.Regressions))
		for _, change := range result.Regressions {
			fmt.Printf("  [-] %s: %s -> %s\n", change.Module, change.Previous, change.Current)
		}
	}

	if len(result.Improvements) > 0 {
		fmt.Printf("\nImprovements (%d):\n", len(result.Improvements))
		for _, change := range result.Improvements {
			fmt.Printf("  [+] %s: %s -> %s\n", change.Module, change.Previous, change.Current)
		}
	}

	if result.UnchangedCount > 0 {
		fmt.Printf("\nUnchanged: %d modules\n", result.UnchangedCount)
	}

	return nil
}

// formatQCDirection formats the QC change direction for display.
func formatQCDirection(direction string) string {
	switch direction {
	case qcDirectionImproved:
		return "IMPROVED (fewer warnings and failures)"
	case qcDirectionWorsened:
		return "WORSENED (more warnings and failures)"
	default:
		return "UNCHANGED"
	}
}
