package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/seqqc/seqqc/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeModuleSummary(md, report)
	w.writeOverrepresented(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with the headline numbers from
// Basic_Statistics.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("Sequence QC Report")
	md.PlainText("")

	bs := report.BasicStatistics

	lengths := fmt.Sprintf("%d-%d", bs.ShortestSequence, bs.LongestSequence)
	if bs.ShortestSequence == bs.LongestSequence {
		lengths = strconv.FormatInt(bs.ShortestSequence, 10)
	}

	dedup := "unknown"
	if report.DeduplicatedPercentage != nil {
		dedup = fmt.Sprintf("%.2f%%", *report.DeduplicatedPercentage)
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + report.SourcePath + "`"},
			{"Format", report.FormatVersion},
			{"Filename", "`" + bs.Filename + "`"},
			{"Encoding", bs.Encoding},
			{"Total Sequences", strconv.FormatInt(bs.TotalSequences, 10)},
			{"Poor Quality Sequences", strconv.FormatInt(bs.PoorQualitySequences, 10)},
			{"Sequence Length", lengths},
			{"%GC", fmt.Sprintf("%.1f", bs.PercentGC)},
			{"Deduplicated", dedup},
		},
	})
	md.PlainText("")
}

// writeModuleSummary writes one row per module with its PASS/WARN/FAIL
// classification and decoded row count.
func (w *MarkdownWriter) writeModuleSummary(md *markdown.Markdown, report *model.Report) {
	md.H2("Module Summary")
	md.PlainText("")

	rows := make([][]string, 0, len(model.RequiredModules()))
	for _, table := range report.Tables() {
		status := "-"
		if s, ok := report.Summary.StatusOf(table.ModuleName()); ok {
			status = statusBadge(s)
		}
		rows = append(rows, []string{
			table.ModuleName(),
			status,
			strconv.Itoa(table.RowCount()),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Module", "Status", "Rows"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writeAlert(md, report.Summary)
}

// statusBadge returns the status token with a colored marker.
func statusBadge(s model.Status) string {
	switch s {
	case model.StatusPass:
		return "🟢 PASS"
	case model.StatusWarn:
		return "🟡 WARN"
	case model.StatusFail:
		return "🔴 FAIL"
	default:
		return s.String()
	}
}

// writeAlert writes an appropriate alert based on the summary counts.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, summary model.Summary) {
	switch {
	case summary.FailCount() > 0:
		md.Warningf("%d module(s) failed QC. Inspect the library before using it downstream.",
			summary.FailCount())
	case summary.WarnCount() > 0:
		md.Importantf("%d module(s) raised QC warnings.", summary.WarnCount())
	case summary.PassCount() > 0:
		md.Tip("All classified modules passed QC.")
	default:
		md.Note("No summary classifications were supplied for this report.")
	}
	md.PlainText("")
}

// maxOverrepresentedRows caps the overrepresented-sequences table: a bad
// library can carry hundreds of entries and the long tail adds nothing.
const maxOverrepresentedRows = 10

// writeOverrepresented writes the top overrepresented sequences, if any.
func (w *MarkdownWriter) writeOverrepresented(md *markdown.Markdown, report *model.Report) {
	sequences := report.OverrepresentedSequences
	if len(sequences) == 0 {
		return
	}

	md.H2("Overrepresented Sequences")
	md.PlainText("")

	count := len(sequences)
	if count > maxOverrepresentedRows {
		count = maxOverrepresentedRows
	}

	rows := make([][]string, 0, count)
	for _, seq := range sequences[:count] {
		rows = append(rows, []string{
			"`" + truncateString(seq.Sequence, 32) + "`",
			strconv.FormatInt(seq.Count, 10),
			fmt.Sprintf("%.3f", seq.Percentage),
			truncateString(seq.PossibleSource, 40),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Sequence", "Count", "%", "Possible Source"},
		Rows:   rows,
	})
	if len(sequences) > count {
		md.PlainTextf("…and %d more.", len(sequences)-count)
	}
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by seqqc*")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
