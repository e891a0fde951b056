package fastqc

import (
	"errors"
	"testing"
)

// TestNormalizeName tests header token normalization.
func TestNormalizeName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		raw      string
		expected string
	}{
		{"File type", "File_type"},
		{"Sequences flagged as poor quality", "Sequences_flagged_as_poor_quality"},
		{"%GC", "%GC"},
		{"Obs/Exp Max", "Obs/Exp_Max"},
		{"N-Count", "N-Count"},
		{"  Lower Quartile  ", "Lower_Quartile"},
		{"10th Percentile", "10th_Percentile"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if got := normalizeName(tc.raw); got != tc.expected {
				t.Errorf("normalizeName(%q) = %q, expected %q", tc.raw, got, tc.expected)
			}
		})
	}
}

// TestSplitRange tests min-max range token decoding.
func TestSplitRange(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		token   string
		lower   int64
		upper   int64
		wantErr bool
	}{
		{token: "35-151", lower: 35, upper: 151},
		{token: "50", lower: 50, upper: 50},
		{token: "1-1", lower: 1, upper: 1},
		{token: "banana", wantErr: true},
		{token: "35-x", wantErr: true},
		{token: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			t.Parallel()

			lower, upper, err := splitRange(tc.token)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("splitRange(%q) expected error, got (%d, %d)", tc.token, lower, upper)
				}
				return
			}
			if err != nil {
				t.Fatalf("splitRange(%q) unexpected error: %v", tc.token, err)
			}
			if lower != tc.lower || upper != tc.upper {
				t.Errorf("splitRange(%q) = (%d, %d), expected (%d, %d)",
					tc.token, lower, upper, tc.lower, tc.upper)
			}
		})
	}
}

// TestTableRequire tests required-column validation.
func TestTableRequire(t *testing.T) {
	t.Parallel()

	body := []string{
		"#Quality\tCount",
		"35\t1200",
	}
	tbl := newTable("sample.txt", "Per_sequence_quality_scores", body)

	if err := tbl.require("Quality", "Count"); err != nil {
		t.Errorf("require() unexpected error: %v", err)
	}

	err := tbl.require("Quality", "Mean", "Median")
	var colErr *MissingColumnError
	if !errors.As(err, &colErr) {
		t.Fatalf("expected MissingColumnError, got %v", err)
	}
	if len(colErr.Columns) != 2 {
		t.Errorf("missing columns = %v, expected [Mean Median]", colErr.Columns)
	}
}

// TestTableRaggedRow verifies that a data row shorter than the header
// surfaces as a coercion error rather than a panic.
func TestTableRaggedRow(t *testing.T) {
	t.Parallel()

	body := []string{
		"#Quality\tCount",
		"35",
	}
	tbl := newTable("sample.txt", "Per_sequence_quality_scores", body)

	_, err := tbl.intAt(0, "Count")
	var coerceErr *CoercionError
	if !errors.As(err, &coerceErr) {
		t.Fatalf("expected CoercionError, got %v", err)
	}
	if coerceErr.Value != "" {
		t.Errorf("value = %q, expected empty", coerceErr.Value)
	}
}

// TestTableBlankLinesSkipped verifies that blank lines inside a module do
// not become data rows.
func TestTableBlankLinesSkipped(t *testing.T) {
	t.Parallel()

	body := []string{
		"#Quality\tCount",
		"35\t1200",
		"",
		"36\t900",
	}
	tbl := newTable("sample.txt", "Per_sequence_quality_scores", body)
	if len(tbl.rows) != 2 {
		t.Errorf("rows = %d, expected 2", len(tbl.rows))
	}
}
