package model

// Report is the fully parsed, validated representation of one FastQC data
// file. A Report only ever exists in a complete state: the parser either
// returns a Report with all twelve module tables decoded and typed, or an
// error and no Report. Nothing mutates a Report after construction.
//
// Design decision: We use one named, typed field per module rather than a
// generic name-indexed table map. Column-presence and type mistakes are
// caught once at the module boundary instead of scattering dynamic lookups
// across every downstream consumer.
type Report struct {
	// SourcePath identifies the resource the report was parsed from
	// (a plain fastqc_data.txt path or a FastQC zip archive).
	SourcePath string `json:"source_path"`

	// FormatVersion is the free-text version string from the report's
	// first line (e.g. "##FastQC\t0.11.9"), trailing whitespace stripped.
	FormatVersion string `json:"format_version"`

	// Summary is the externally supplied PASS/WARN/FAIL table.
	Summary Summary `json:"summary"`

	// DeduplicatedPercentage is the "Total Deduplicated Percentage" scalar
	// embedded in the Sequence_Duplication_Levels module. Older FastQC
	// versions omit the line, so absence is a valid state, not an error.
	DeduplicatedPercentage *float64 `json:"deduplicated_percentage,omitempty"`

	// === Module tables, one per required module ===

	BasicStatistics            BasicStatistics          `json:"basic_statistics"`
	PerBaseSequenceQuality     BaseQualities            `json:"per_base_sequence_quality"`
	PerTileSequenceQuality     TileQualities            `json:"per_tile_sequence_quality"`
	PerSequenceQualityScores   QualityCounts            `json:"per_sequence_quality_scores"`
	PerBaseSequenceContent     BaseContents             `json:"per_base_sequence_content"`
	PerSequenceGCContent       GCCounts                 `json:"per_sequence_gc_content"`
	PerBaseNContent            NContents                `json:"per_base_n_content"`
	SequenceLengthDistribution LengthCounts             `json:"sequence_length_distribution"`
	SequenceDuplicationLevels  DuplicationLevels        `json:"sequence_duplication_levels"`
	OverrepresentedSequences   OverrepresentedSequences `json:"overrepresented_sequences"`
	AdapterContent             AdapterContent           `json:"adapter_content"`
	KmerContent                KmerContents             `json:"kmer_content"`
}

// Module returns the decoded table for the given canonical module name.
// The second return value is false for unknown names.
func (r *Report) Module(name string) (Table, bool) {
	switch name {
	case ModuleBasicStatistics:
		return r.BasicStatistics, true
	case ModulePerBaseSequenceQuality:
		return r.PerBaseSequenceQuality, true
	case ModulePerTileSequenceQuality:
		return r.PerTileSequenceQuality, true
	case ModulePerSequenceQualityScores:
		return r.PerSequenceQualityScores, true
	case ModulePerBaseSequenceContent:
		return r.PerBaseSequenceContent, true
	case ModulePerSequenceGCContent:
		return r.PerSequenceGCContent, true
	case ModulePerBaseNContent:
		return r.PerBaseNContent, true
	case ModuleSequenceLengthDistribution:
		return r.SequenceLengthDistribution, true
	case ModuleSequenceDuplicationLevels:
		return r.SequenceDuplicationLevels, true
	case ModuleOverrepresentedSequences:
		return r.OverrepresentedSequences, true
	case ModuleAdapterContent:
		return r.AdapterContent, true
	case ModuleKmerContent:
		return r.KmerContent, true
	default:
		return nil, false
	}
}

// Tables returns all twelve module tables in canonical order.
func (r *Report) Tables() []Table {
	tables := make([]Table, 0, len(RequiredModules()))
	for _, name := range RequiredModules() {
		table, _ := r.Module(name)
		tables = append(tables, table)
	}
	return tables
}
