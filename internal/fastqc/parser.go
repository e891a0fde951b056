package fastqc

import (
	"fmt"

	"github.com/seqqc/seqqc/internal/model"
)

// Parse turns the raw lines of one FastQC data file into a model.Report.
//
// source identifies the originating resource and appears in every error.
// summary is the externally supplied PASS/WARN/FAIL table (may be empty;
// the summary side-channel is optional input). Parse validates the summary
// against the known module set before attaching it.
//
// Parse is a pure function: no I/O, no retained references to lines, and
// the same input always yields a field-for-field identical Report. On any
// structural or type error the Report is not returned at all; there is no
// partial result.
func Parse(source string, lines []string, summary model.Summary) (*model.Report, error) {
	doc, err := split(source, lines)
	if err != nil {
		return nil, err
	}

	if err := validateSummary(source, summary); err != nil {
		return nil, err
	}

	report := &model.Report{
		SourcePath:    source,
		FormatVersion: doc.version,
		Summary:       summary,
	}

	if report.BasicStatistics, err = decodeBasicStatistics(source, doc.modules[model.ModuleBasicStatistics]); err != nil {
		return nil, err
	}
	if report.PerBaseSequenceQuality, err = decodeBaseQualities(source, doc.modules[model.ModulePerBaseSequenceQuality]); err != nil {
		return nil, err
	}
	if report.PerTileSequenceQuality, err = decodeTileQualities(source, doc.modules[model.ModulePerTileSequenceQuality]); err != nil {
		return nil, err
	}
	if report.PerSequenceQualityScores, err = decodeQualityCounts(source, doc.modules[model.ModulePerSequenceQualityScores]); err != nil {
		return nil, err
	}
	if report.PerBaseSequenceContent, err = decodeBaseContents(source, doc.modules[model.ModulePerBaseSequenceContent]); err != nil {
		return nil, err
	}
	if report.PerSequenceGCContent, err = decodeGCCounts(source, doc.modules[model.ModulePerSequenceGCContent]); err != nil {
		return nil, err
	}
	if report.PerBaseNContent, err = decodeNContents(source, doc.modules[model.ModulePerBaseNContent]); err != nil {
		return nil, err
	}
	if report.SequenceLengthDistribution, err = decodeLengthCounts(source, doc.modules[model.ModuleSequenceLengthDistribution]); err != nil {
		return nil, err
	}
	if report.SequenceDuplicationLevels, report.DeduplicatedPercentage, err = decodeDuplicationLevels(source, doc.modules[model.ModuleSequenceDuplicationLevels]); err != nil {
		return nil, err
	}
	if report.OverrepresentedSequences, err = decodeOverrepresentedSequences(source, doc.modules[model.ModuleOverrepresentedSequences]); err != nil {
		return nil, err
	}
	if report.AdapterContent, err = decodeAdapterContent(source, doc.modules[model.ModuleAdapterContent]); err != nil {
		return nil, err
	}
	if report.KmerContent, err = decodeKmerContents(source, doc.modules[model.ModuleKmerContent]); err != nil {
		return nil, err
	}

	return report, nil
}

// validateSummary checks the externally supplied summary table for
// consistency: each (module, filename) pair may appear at most once.
// Unknown module names are tolerated and passed through untouched so newer
// FastQC versions with extra categories still parse.
func validateSummary(source string, summary model.Summary) error {
	type key struct {
		module   string
		filename string
	}
	seen := make(map[key]bool, len(summary))
	for _, row := range summary {
		k := key{module: row.Module, filename: row.Filename}
		if seen[k] {
			return &MalformedSummaryError{
				Source: source,
				Reason: fmt.Sprintf("duplicate entry for module %s, file %s", row.Module, row.Filename),
			}
		}
		seen[k] = true
	}
	return nil
}
