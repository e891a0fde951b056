package model

// SummaryRow is one PASS/WARN/FAIL classification from the FastQC summary
// side-channel: one module of one analyzed file.
type SummaryRow struct {
	// Module is the normalized module name the classification applies to.
	Module string `json:"module"`

	// Status is the PASS/WARN/FAIL classification.
	Status Status `json:"status"`

	// Filename is the analyzed FASTQ file the classification belongs to.
	Filename string `json:"filename"`
}

// Summary is the externally supplied PASS/WARN/FAIL table for one report.
// It is validated (well-formed statuses, no duplicate module/filename pairs)
// by the report assembler before it is attached to a Report; an empty
// summary is valid because the side-channel is optional input.
type Summary []SummaryRow

// StatusOf returns the classification recorded for the given module name.
// The second return value is false when the summary has no row for it.
func (s Summary) StatusOf(module string) (Status, bool) {
	for _, row := range s {
		if row.Module == module {
			return row.Status, true
		}
	}
	return 0, false
}

// FailCount returns the number of FAIL classifications in the summary.
func (s Summary) FailCount() int {
	return s.countStatus(StatusFail)
}

// WarnCount returns the number of WARN classifications in the summary.
func (s Summary) WarnCount() int {
	return s.countStatus(StatusWarn)
}

// PassCount returns the number of PASS classifications in the summary.
func (s Summary) PassCount() int {
	return s.countStatus(StatusPass)
}

func (s Summary) countStatus(want Status) int {
	count := 0
	for _, row := range s {
		if row.Status == want {
			count++
		}
	}
	return count
}
