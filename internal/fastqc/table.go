package fastqc

import (
	"fmt"
	"strconv"
	"strings"
)

// normalizeName converts a raw header token into its canonical column name:
// surrounding whitespace trimmed and spaces replaced with underscores.
// Special characters such as '%', '/', and '-' are part of several canonical
// FastQC column names ("%GC", "Obs/Exp_Max", "N-Count") and are preserved.
func normalizeName(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), " ", "_")
}

// table is the rectangular intermediate form of one module body: the
// normalized header and the tab-split data rows. Decoders read cells
// through typed accessors that produce CoercionError on bad values.
type table struct {
	source  string
	module  string
	columns []string
	index   map[string]int
	rows    [][]string
}

// newTable builds a table from a module body. The first line is the header
// (an optional leading '#' is stripped, as FastQC prefixes its header lines
// with one); all remaining non-empty lines become data rows. An empty body
// yields a table with no columns, so a later require() names every missing
// column.
func newTable(source, module string, body []string) *table {
	t := &table{
		source: source,
		module: module,
		index:  make(map[string]int),
	}
	if len(body) == 0 {
		return t
	}
	header := strings.TrimPrefix(body[0], "#")
	for i, raw := range strings.Split(header, "\t") {
		name := normalizeName(raw)
		t.columns = append(t.columns, name)
		t.index[name] = i
	}

	for _, line := range body[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		t.rows = append(t.rows, strings.Split(line, "\t"))
	}
	return t
}

// require checks that every given column name appears in the header.
// All missing columns are reported in one MissingColumnError.
func (t *table) require(columns ...string) error {
	var missing []string
	for _, c := range columns {
		if _, ok := t.index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnError{Source: t.source, Module: t.module, Columns: missing}
	}
	return nil
}

// cell returns the raw text of the cell at the given data row and column.
// Ragged rows yield an empty string for cells past the row's end, which the
// typed accessors then reject with a CoercionError.
func (t *table) cell(row int, column string) string {
	i, ok := t.index[column]
	if !ok || i >= len(t.rows[row]) {
		return ""
	}
	return t.rows[row][i]
}

// str returns the cell as a trimmed string.
func (t *table) str(row int, column string) string {
	return strings.TrimSpace(t.cell(row, column))
}

// intAt returns the cell parsed as an integer.
func (t *table) intAt(row int, column string) (int64, error) {
	raw := t.str(row, column)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &CoercionError{
			Source: t.source, Module: t.module, Column: column, Row: row, Value: raw,
		}
	}
	return v, nil
}

// floatAt returns the cell parsed as a floating point number.
func (t *table) floatAt(row int, column string) (float64, error) {
	raw := t.str(row, column)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &CoercionError{
			Source: t.source, Module: t.module, Column: column, Row: row, Value: raw,
		}
	}
	return v, nil
}

// rangeAt returns the cell parsed as a "min-max" range token. A token
// without a hyphen is a single value, returned as both bounds
// ("35-151" -> (35, 151); "50" -> (50, 50)).
func (t *table) rangeAt(row int, column string) (lower, upper int64, err error) {
	raw := t.str(row, column)
	lower, upper, err = splitRange(raw)
	if err != nil {
		return 0, 0, &CoercionError{
			Source: t.source, Module: t.module, Column: column, Row: row, Value: raw,
		}
	}
	return lower, upper, nil
}

// splitRange splits a "min-max" token into its integer bounds.
func splitRange(token string) (lower, upper int64, err error) {
	lo, hi, found := strings.Cut(token, "-")
	lower, err = strconv.ParseInt(strings.TrimSpace(lo), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range token %q: %w", token, err)
	}
	if !found {
		return lower, lower, nil
	}
	upper, err = strconv.ParseInt(strings.TrimSpace(hi), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range token %q: %w", token, err)
	}
	return lower, upper, nil
}
