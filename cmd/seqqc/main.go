// Package main provides the entry point for the seqqc CLI.
//
// seqqc parses FastQC output into typed, validated reports.
// It reads fastqc_data.txt files or whole FastQC archives, merges the
// PASS/WARN/FAIL summary, and renders text, JSON, or Markdown reports.
//
// Usage:
//
//	seqqc parse <fastqc-output>...
//	seqqc parse --partial sample1_fastqc.zip sample2_fastqc.zip
//
// See --help for all available options.
package main

// main is the entry point for seqqc.
func main() {
	Execute()
}
