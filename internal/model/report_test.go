package model

import (
	"testing"
)

// TestSummaryCounts tests the PASS/WARN/FAIL counters.
func TestSummaryCounts(t *testing.T) {
	t.Parallel()

	summary := Summary{
		{Module: ModuleBasicStatistics, Status: StatusPass, Filename: "a.fastq"},
		{Module: ModulePerBaseSequenceQuality, Status: StatusPass, Filename: "a.fastq"},
		{Module: ModulePerBaseSequenceContent, Status: StatusWarn, Filename: "a.fastq"},
		{Module: ModuleAdapterContent, Status: StatusFail, Filename: "a.fastq"},
	}

	if got := summary.PassCount(); got != 2 {
		t.Errorf("PassCount() = %d, expected 2", got)
	}
	if got := summary.WarnCount(); got != 1 {
		t.Errorf("WarnCount() = %d, expected 1", got)
	}
	if got := summary.FailCount(); got != 1 {
		t.Errorf("FailCount() = %d, expected 1", got)
	}
}

// TestSummaryStatusOf tests the module status lookup.
func TestSummaryStatusOf(t *testing.T) {
	t.Parallel()

	summary := Summary{
		{Module: ModuleAdapterContent, Status: StatusFail, Filename: "a.fastq"},
	}

	if status, ok := summary.StatusOf(ModuleAdapterContent); !ok || status != StatusFail {
		t.Errorf("StatusOf(%s) = %v (ok=%v), expected FAIL", ModuleAdapterContent, status, ok)
	}
	if _, ok := summary.StatusOf(ModuleKmerContent); ok {
		t.Error("StatusOf() reported a module the summary does not contain")
	}
}

// TestReportModule tests the name-based module table lookup.
func TestReportModule(t *testing.T) {
	t.Parallel()

	report := &Report{
		BasicStatistics: BasicStatistics{Filename: "sample.fastq", TotalSequences: 1000},
		PerSequenceGCContent: GCCounts{
			{GCContent: 45, Count: 800},
		},
	}

	t.Run("known module", func(t *testing.T) {
		t.Parallel()

		table, ok := report.Module(ModulePerSequenceGCContent)
		if !ok {
			t.Fatal("Module() did not find a required module")
		}
		if table.ModuleName() != ModulePerSequenceGCContent {
			t.Errorf("ModuleName() = %q, expected %q", table.ModuleName(), ModulePerSequenceGCContent)
		}
		if table.RowCount() != 1 {
			t.Errorf("RowCount() = %d, expected 1", table.RowCount())
		}
	})

	t.Run("unknown module", func(t *testing.T) {
		t.Parallel()

		if _, ok := report.Module("Nonexistent_Module"); ok {
			t.Error("Module() found a table for an unknown name")
		}
	})

	t.Run("all required modules resolve", func(t *testing.T) {
		t.Parallel()

		tables := report.Tables()
		if len(tables) != len(RequiredModules()) {
			t.Fatalf("Tables() = %d entries, expected %d", len(tables), len(RequiredModules()))
		}
		for i, name := range RequiredModules() {
			if tables[i].ModuleName() != name {
				t.Errorf("tables[%d].ModuleName() = %q, expected %q", i, tables[i].ModuleName(), name)
			}
		}
	})
}

// TestCollection tests order-preserving collection helpers.
func TestCollection(t *testing.T) {
	t.Parallel()

	collection := Collection{
		{SourcePath: "a_fastqc.zip"},
		{SourcePath: "b_fastqc.zip"},
		{SourcePath: "a_fastqc.zip"},
	}

	t.Run("source paths keep input order", func(t *testing.T) {
		t.Parallel()

		paths := collection.SourcePaths()
		expected := []string{"a_fastqc.zip", "b_fastqc.zip", "a_fastqc.zip"}
		for i, path := range paths {
			if path != expected[i] {
				t.Errorf("paths[%d] = %q, expected %q", i, path, expected[i])
			}
		}
	})

	t.Run("find returns first match", func(t *testing.T) {
		t.Parallel()

		report, ok := collection.Find("a_fastqc.zip")
		if !ok {
			t.Fatal("Find() did not locate an existing report")
		}
		if report != collection[0] {
			t.Error("Find() did not return the first matching report")
		}
	})

	t.Run("find misses unknown path", func(t *testing.T) {
		t.Parallel()

		if _, ok := collection.Find("missing.zip"); ok {
			t.Error("Find() located a report that does not exist")
		}
	})
}
