package model

import (
	"encoding/json"
	"testing"
)

// TestParseStatus tests summary token parsing.
func TestParseStatus(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		token   string
		want    Status
		wantErr bool
	}{
		{token: "PASS", want: StatusPass},
		{token: "WARN", want: StatusWarn},
		{token: "FAIL", want: StatusFail},
		{token: "pass", want: StatusPass},
		{token: "warn", want: StatusWarn},
		{token: "fail", want: StatusFail},
		{token: "Pass", wantErr: true},
		{token: "OK", wantErr: true},
		{token: "", wantErr: true},
	}

	for _, tc := range testCases {
		got, err := ParseStatus(tc.token)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseStatus(%q) expected error", tc.token)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStatus(%q) unexpected error: %v", tc.token, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseStatus(%q) = %v, expected %v", tc.token, got, tc.want)
		}
	}
}

// TestStatusString tests the display tokens.
func TestStatusString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		status Status
		want   string
	}{
		{StatusPass, "PASS"},
		{StatusWarn, "WARN"},
		{StatusFail, "FAIL"},
		{Status(42), "UNKNOWN"},
	}

	for _, tc := range testCases {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("Status(%d).String() = %q, expected %q", tc.status, got, tc.want)
		}
	}
}

// TestStatusOrdering verifies severity comparisons used for QC regression
// detection.
func TestStatusOrdering(t *testing.T) {
	t.Parallel()

	if !(StatusPass < StatusWarn && StatusWarn < StatusFail) {
		t.Error("expected PASS < WARN < FAIL severity ordering")
	}
}

// TestStatusJSONRoundTrip verifies lossless JSON serialization.
func TestStatusJSONRoundTrip(t *testing.T) {
	t.Parallel()

	row := SummaryRow{Module: ModuleAdapterContent, Status: StatusFail, Filename: "sample.fastq"}

	data, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}

	var decoded SummaryRow
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	if decoded != row {
		t.Errorf("round trip changed row: %+v -> %+v", row, decoded)
	}
}

// TestStatusUnmarshalInvalid verifies bad tokens are rejected.
func TestStatusUnmarshalInvalid(t *testing.T) {
	t.Parallel()

	var s Status
	if err := s.UnmarshalText([]byte("MAYBE")); err == nil {
		t.Error("expected error for invalid status token")
	}
}
