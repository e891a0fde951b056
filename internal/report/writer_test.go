package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/seqqc/seqqc/internal/model"
)

// testReport builds a small but fully populated report.
func testReport() *model.Report {
	dedup := 91.25
	return &model.Report{
		SourcePath:             "sample_fastqc.zip",
		FormatVersion:          "##FastQC\t0.12.1",
		DeduplicatedPercentage: &dedup,
		Summary: model.Summary{
			{Module: model.ModuleBasicStatistics, Status: model.StatusPass, Filename: "sample.fastq"},
			{Module: model.ModulePerBaseSequenceContent, Status: model.StatusWarn, Filename: "sample.fastq"},
			{Module: model.ModuleAdapterContent, Status: model.StatusFail, Filename: "sample.fastq"},
		},
		BasicStatistics: model.BasicStatistics{
			Filename:         "sample.fastq",
			FileType:         "Conventional base calls",
			Encoding:         "Sanger / Illumina 1.9",
			TotalSequences:   250000,
			ShortestSequence: 35,
			LongestSequence:  151,
			PercentGC:        48.0,
		},
		PerBaseSequenceQuality: model.BaseQualities{
			{Base: "1", Mean: 32.5, Median: 33, LowerQuartile: 31, UpperQuartile: 34, Percentile10th: 30, Percentile90th: 36},
		},
		OverrepresentedSequences: model.OverrepresentedSequences{
			{
				Sequence:       "GATCGGAAGAGCACACGTCTGAACTCCAGTCACGATCGGAAGAGC",
				Count:          1200,
				Percentage:     0.48,
				PossibleSource: "TruSeq Adapter, Index 1 (95% over 23bp)",
			},
		},
		AdapterContent: model.AdapterContent{
			Adapters: []string{"Illumina_Universal_Adapter"},
			Rows:     []model.AdapterRow{{Position: "1", Percentages: []float64{0.01}}},
		},
	}
}

// TestJSONWriter tests JSON output and its indentation options.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("compact output round-trips", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewJSONWriter(&buf).Write(testReport())
		if err != nil {
			t.Fatalf("Write() unexpected error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
		}

		var decoded model.Report
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if decoded.SourcePath != "sample_fastqc.zip" {
			t.Errorf("source_path = %q", decoded.SourcePath)
		}
		if decoded.BasicStatistics.TotalSequences != 250000 {
			t.Errorf("total_sequences = %d", decoded.BasicStatistics.TotalSequences)
		}
	})

	t.Run("pretty print indents", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(testReport()); err != nil {
			t.Fatalf("Write() unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"source_path\"") {
			t.Error("pretty output is not indented")
		}
	})

	t.Run("collection is a JSON array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		reports := model.Collection{testReport(), testReport()}
		if _, err := NewJSONWriter(&buf).WriteCollection(reports); err != nil {
			t.Fatalf("WriteCollection() unexpected error: %v", err)
		}

		var decoded []model.Report
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not a valid JSON array: %v", err)
		}
		if len(decoded) != 2 {
			t.Errorf("decoded %d reports, expected 2", len(decoded))
		}
	})
}

// TestMarkdownWriter tests the Markdown rendering.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(testReport()); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	out := buf.String()

	expectations := []string{
		"# Sequence QC Report",
		"## Module Summary",
		"sample_fastqc.zip",
		"🟢 PASS",
		"🟡 WARN",
		"🔴 FAIL",
		"## Overrepresented Sequences",
		"TruSeq Adapter",
		"91.25%",
	}
	for _, want := range expectations {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}

	// One module failed, so the report must carry a warning alert.
	if !strings.Contains(out, "[!WARNING]") {
		t.Error("markdown output missing failure alert")
	}
}

// TestMarkdownWriterUnknownDedup verifies the absent-scalar rendering.
func TestMarkdownWriterUnknownDedup(t *testing.T) {
	t.Parallel()

	report := testReport()
	report.DeduplicatedPercentage = nil

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(report); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "unknown") {
		t.Error("absent deduplicated percentage should render as unknown")
	}
}

// TestTextWriter tests the terminal rendering.
func TestTextWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewTextWriter(&buf).Write(testReport()); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"sample_fastqc.zip",
		"total sequences: 250000",
		"sequence length: 35-151",
		"1 pass, 1 warn, 1 fail",
		"FAIL Adapter_Content",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q", want)
		}
	}
}

// TestMultiWriter verifies fan-out to several writers.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var text, jsonBuf bytes.Buffer
	mw := NewMultiWriter(NewTextWriter(&text), NewJSONWriter(&jsonBuf))

	if _, err := mw.Write(testReport()); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}
	if text.Len() == 0 || jsonBuf.Len() == 0 {
		t.Error("MultiWriter did not write to all destinations")
	}
}
