// Package main provides the entry point for the seqqc CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for seqqc.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seqqc",
		Short: "Parse and inspect FastQC sequencing QC reports",
		Long: `seqqc parses FastQC output into typed, validated reports.

It reads fastqc_data.txt files or whole FastQC archives (.zip), merges the
PASS/WARN/FAIL module summary, and renders text, JSON, or Markdown reports.
Parsed runs can be stored in a local database for listing and comparison.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewParseCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
