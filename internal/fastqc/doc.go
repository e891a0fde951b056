// Package fastqc parses FastQC data files into the typed model.
//
// A FastQC data file (fastqc_data.txt) is a tab-delimited, loosely versioned
// text format: a version line followed by named module sections delimited by
// ">>Name<TAB>status" start markers and ">>END_MODULE" end markers. Each
// section carries a tab-separated header line and data rows.
//
// The package splits the file into module sections, decodes each of the
// twelve required modules into its fixed typed table, and assembles the
// result into a model.Report together with the externally supplied
// PASS/WARN/FAIL summary. Parsing is a pure function of the input lines:
// the same bytes always produce a field-for-field identical Report, and a
// Report is never returned partially constructed.
//
// Design decision: Every structural violation is a typed, field-carrying
// error (MissingModuleError, MissingColumnError, CoercionError,
// MalformedSummaryError) so callers can both match with errors.As and show
// the user exactly which module, column, and row broke without re-reading
// the input.
package fastqc
