package model

import "fmt"

// Status represents the PASS/WARN/FAIL classification that FastQC assigns
// to each module of a report. The classification is produced by FastQC
// itself (the summary side-channel), never derived by this tool.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. ParseStatus and String convert
// to and from the literal tokens used in summary.txt.
type Status int

const (
	// StatusPass indicates the module's metrics are within normal ranges.
	StatusPass Status = iota

	// StatusWarn indicates the module's metrics are slightly abnormal.
	StatusWarn

	// StatusFail indicates the module's metrics are very abnormal.
	StatusFail
)

// String returns the literal token used in FastQC summary files.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusWarn:
		return "WARN"
	case StatusFail:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler so Status serializes as
// its token in JSON report output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so stored JSON reports
// round-trip losslessly.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStatus converts a summary token into a Status.
// It returns an error for anything other than PASS, WARN, or FAIL.
func ParseStatus(token string) (Status, error) {
	switch token {
	case "PASS", "pass":
		return StatusPass, nil
	case "WARN", "warn":
		return StatusWarn, nil
	case "FAIL", "fail":
		return StatusFail, nil
	default:
		return 0, fmt.Errorf("unknown status token %q", token)
	}
}
