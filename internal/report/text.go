package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/seqqc/seqqc/internal/model"
)

// TextWriter outputs a compact human-readable report for terminal use.
// This is the default output format of the parse command.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report as plain text.
func (w *TextWriter) Write(report *model.Report) (int, error) {
	var b strings.Builder

	bs := report.BasicStatistics
	fmt.Fprintf(&b, "%s\n", report.SourcePath)
	fmt.Fprintf(&b, "  file:            %s (%s)\n", bs.Filename, bs.Encoding)
	fmt.Fprintf(&b, "  total sequences: %d (%d flagged poor quality)\n",
		bs.TotalSequences, bs.PoorQualitySequences)
	if bs.ShortestSequence == bs.LongestSequence {
		fmt.Fprintf(&b, "  sequence length: %d\n", bs.ShortestSequence)
	} else {
		fmt.Fprintf(&b, "  sequence length: %d-%d\n", bs.ShortestSequence, bs.LongestSequence)
	}
	fmt.Fprintf(&b, "  %%GC:             %.1f\n", bs.PercentGC)
	if report.DeduplicatedPercentage != nil {
		fmt.Fprintf(&b, "  deduplicated:    %.2f%%\n", *report.DeduplicatedPercentage)
	}

	if len(report.Summary) > 0 {
		fmt.Fprintf(&b, "  summary:         %d pass, %d warn, %d fail\n",
			report.Summary.PassCount(), report.Summary.WarnCount(), report.Summary.FailCount())
		for _, row := range report.Summary {
			if row.Status == model.StatusPass {
				continue
			}
			fmt.Fprintf(&b, "    %-4s %s\n", row.Status, row.Module)
		}
	}

	if n := len(report.OverrepresentedSequences); n > 0 {
		fmt.Fprintf(&b, "  overrepresented: %d sequence(s)\n", n)
	}

	return io.WriteString(w.output, b.String())
}
