// Package model defines the core data structures used throughout seqqc.
//
// This package contains the following main types:
//   - Report: The fully parsed representation of one FastQC data file
//   - Collection: An order-preserving sequence of Reports
//   - Summary: The PASS/WARN/FAIL classification table per module
//   - One typed table per FastQC module (BasicStatistics, BaseQualities, ...)
//
// Design decision: We separate models into their own package to avoid
// circular dependencies. Multiple packages (fastqc, report, database, batch)
// need these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model
