// Package batch applies the single-report parsing pipeline across many
// FastQC resources.
//
// Member parses have no data dependency on each other, so the processor
// runs them concurrently with errgroup under a configurable limit. Results
// are always merged back in input order, never completion order, and a
// batch is never silently truncated: the default policy fails the whole
// run on the first bad resource, and partial mode reports every failure
// against its input index alongside the successful reports.
package batch
