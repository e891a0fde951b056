package fastqc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInput is returned when the input has no lines at all, so not even
// the version line can be read.
var ErrEmptyInput = errors.New("empty input: missing FastQC version line")

// MissingModuleError reports that one or more of the twelve required
// modules are absent from the input. All missing modules are named so the
// user fixes the file in one round trip.
type MissingModuleError struct {
	// Source identifies the input resource.
	Source string

	// Modules lists the missing module names in canonical order.
	Modules []string
}

// Error implements the error interface.
func (e *MissingModuleError) Error() string {
	return fmt.Sprintf("%s: missing required module(s): %s",
		e.Source, strings.Join(e.Modules, ", "))
}

// MissingColumnError reports that a module's header lacks one or more of
// its required columns.
type MissingColumnError struct {
	// Source identifies the input resource.
	Source string

	// Module is the module whose header is incomplete.
	Module string

	// Columns lists the missing column names.
	Columns []string
}

// Error implements the error interface.
func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: module %s: missing required column(s): %s",
		e.Source, e.Module, strings.Join(e.Columns, ", "))
}

// CoercionError reports a cell value that could not be converted to its
// declared type. Row is the zero-based data row index (the header line is
// not counted), which together with module and column locates the offending
// line without re-parsing.
type CoercionError struct {
	// Source identifies the input resource.
	Source string

	// Module is the module containing the bad cell.
	Module string

	// Column is the column the cell belongs to.
	Column string

	// Row is the zero-based data row index.
	Row int

	// Value is the raw cell text that failed to parse.
	Value string
}

// Error implements the error interface.
func (e *CoercionError) Error() string {
	return fmt.Sprintf("%s: module %s: column %s, row %d: cannot parse %q",
		e.Source, e.Module, e.Column, e.Row, e.Value)
}

// MalformedSummaryError reports an externally supplied summary table that
// is inconsistent: an unparsable status token or a duplicate
// (module, filename) pair.
type MalformedSummaryError struct {
	// Source identifies the input resource the summary belongs to.
	Source string

	// Reason describes the inconsistency.
	Reason string
}

// Error implements the error interface.
func (e *MalformedSummaryError) Error() string {
	return fmt.Sprintf("%s: malformed summary: %s", e.Source, e.Reason)
}
