package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/seqqc/seqqc/internal/config"
	"github.com/seqqc/seqqc/internal/database"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
// This command lists QC runs stored in the database.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored QC runs",
		Long: `List shows QC runs stored in the run database, most recent first.

Runs are stored by 'seqqc parse --save'. The listed IDs can be passed to
'seqqc compare --ids' to compare two stored runs.

Examples:
  # List all stored runs
  seqqc list

  # List runs from a specific database directory
  seqqc list --db /var/lib/seqqc`,
		Args: cobra.NoArgs,
		RunE: runListCmd,
	}

	cmd.Flags().String("db", "",
		"Run database directory (default: XDG data directory)")

	return cmd
}

// runListCmd executes the list command.
func runListCmd(cmd *cobra.Command, _ []string) error {
	dbDir, err := cmd.Flags().GetString("db")
	if err != nil {
		return err
	}
	if dbDir == "" {
		dbDir = config.XDGDataDir()
	}

	qdb, err := database.Open(dbDir, database.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer qdb.Close() //nolint:errcheck // Best effort cleanup

	runs, err := qdb.ListRuns(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No stored runs found in the database.")
		fmt.Println("\nUse 'seqqc parse --save <fastqc-output>' to store a run.")
		return nil
	}

	fmt.Printf("Stored runs (%d):\n\n", len(runs))
	fmt.Printf("  %-6s  %-20s  %-24s  %12s  %6s  %s\n",
		"ID", "Parsed", "File", "Reads", "%GC", "Summary")
	fmt.Println("  " + strings.Repeat("-", 84))

	for _, run := range runs {
		fmt.Printf("  %-6d  %-20s  %-24s  %12d  %6.1f  %s\n",
			run.ID,
			run.ParsedAt.Format("2006-01-02 15:04:05"),
			run.Filename,
			run.TotalSequences,
			run.PercentGC,
			formatRunSummary(run),
		)
	}

	fmt.Println("\nUse 'seqqc compare --ids <previous>,<current>' to compare two runs.")

	return nil
}

// formatRunSummary formats a run's PASS/WARN/FAIL counts for display.
func formatRunSummary(run database.Run) string {
	if run.PassCount == 0 && run.WarnCount == 0 && run.FailCount == 0 {
		return "no summary"
	}

	var parts []string
	if run.PassCount > 0 {
		parts = append(parts, fmt.Sprintf("P:%d", run.PassCount))
	}
	if run.WarnCount > 0 {
		parts = append(parts, fmt.Sprintf("W:%d", run.WarnCount))
	}
	if run.FailCount > 0 {
		parts = append(parts, fmt.Sprintf("F:%d", run.FailCount))
	}
	return strings.Join(parts, " ")
}
