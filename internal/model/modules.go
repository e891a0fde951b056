package model

// Module names as they appear after marker normalization (spaces replaced
// with underscores). Every valid FastQC data file contains all twelve.
const (
	ModuleBasicStatistics            = "Basic_Statistics"
	ModulePerBaseSequenceQuality     = "Per_base_sequence_quality"
	ModulePerTileSequenceQuality     = "Per_tile_sequence_quality"
	ModulePerSequenceQualityScores   = "Per_sequence_quality_scores"
	ModulePerBaseSequenceContent     = "Per_base_sequence_content"
	ModulePerSequenceGCContent       = "Per_sequence_GC_content"
	ModulePerBaseNContent            = "Per_base_N_content"
	ModuleSequenceLengthDistribution = "Sequence_Length_Distribution"
	ModuleSequenceDuplicationLevels  = "Sequence_Duplication_Levels"
	ModuleOverrepresentedSequences   = "Overrepresented_sequences"
	ModuleAdapterContent             = "Adapter_Content"
	ModuleKmerContent                = "Kmer_Content"
)

// RequiredModules lists the twelve module names that must be present in
// every FastQC data file, in the order they conventionally appear.
// A missing member is a structural error, not a degraded parse.
func RequiredModules() []string {
	return []string{
		ModuleBasicStatistics,
		ModulePerBaseSequenceQuality,
		ModulePerTileSequenceQuality,
		ModulePerSequenceQualityScores,
		ModulePerBaseSequenceContent,
		ModulePerSequenceGCContent,
		ModulePerBaseNContent,
		ModuleSequenceLengthDistribution,
		ModuleSequenceDuplicationLevels,
		ModuleOverrepresentedSequences,
		ModuleAdapterContent,
		ModuleKmerContent,
	}
}

// IsKnownModule reports whether name is one of the twelve required modules.
func IsKnownModule(name string) bool {
	for _, m := range RequiredModules() {
		if m == name {
			return true
		}
	}
	return false
}

// Table is implemented by every decoded module table. It exposes the
// module's canonical name and its row count so callers can treat the
// twelve tables uniformly (e.g. for report rendering).
type Table interface {
	// ModuleName returns the canonical module name.
	ModuleName() string

	// RowCount returns the number of decoded data rows.
	RowCount() int
}

// BasicStatistics holds the headline numbers for one FASTQ file.
// FastQC emits exactly one row; we keep the single-row shape rather than
// a slice because downstream consumers always want "the" value.
//
// Design decision: The raw Sequence_length column is a range token
// ("35-151", or a bare "50" when all reads share one length). The decoder
// splits it into ShortestSequence/LongestSequence at parse time so no later
// consumer re-tokenizes it.
type BasicStatistics struct {
	// Filename is the FASTQ file FastQC analyzed.
	Filename string `json:"filename"`

	// FileType describes the file contents (e.g. "Conventional base calls").
	FileType string `json:"file_type"`

	// Encoding is the quality-score encoding (e.g. "Sanger / Illumina 1.9").
	Encoding string `json:"encoding"`

	// TotalSequences is the number of reads in the file.
	TotalSequences int64 `json:"total_sequences"`

	// PoorQualitySequences is the number of reads flagged as poor quality.
	PoorQualitySequences int64 `json:"sequences_flagged_as_poor_quality"`

	// ShortestSequence is the lower bound of the read-length range.
	ShortestSequence int64 `json:"shortest_sequence"`

	// LongestSequence is the upper bound of the read-length range.
	// Equal to ShortestSequence when all reads share one length.
	LongestSequence int64 `json:"longest_sequence"`

	// PercentGC is the overall %GC across all bases.
	PercentGC float64 `json:"percent_gc"`
}

// ModuleName implements Table.
func (BasicStatistics) ModuleName() string { return ModuleBasicStatistics }

// RowCount implements Table. Basic statistics always decodes to one row.
func (BasicStatistics) RowCount() int { return 1 }

// BaseQuality is one row of the Per_base_sequence_quality module.
type BaseQuality struct {
	// Base is the position label. It may be a single position ("1") or a
	// binned range ("10-14"), so it stays a string.
	Base string `json:"base"`

	Mean           float64 `json:"mean"`
	Median         float64 `json:"median"`
	LowerQuartile  float64 `json:"lower_quartile"`
	UpperQuartile  float64 `json:"upper_quartile"`
	Percentile10th float64 `json:"percentile_10th"`
	Percentile90th float64 `json:"percentile_90th"`
}

// BaseQualities is the decoded Per_base_sequence_quality table.
type BaseQualities []BaseQuality

// ModuleName implements Table.
func (BaseQualities) ModuleName() string { return ModulePerBaseSequenceQuality }

// RowCount implements Table.
func (t BaseQualities) RowCount() int { return len(t) }

// TileQuality is one row of the Per_tile_sequence_quality module.
type TileQuality struct {
	// Tile is the flowcell tile identifier, kept as a string label.
	Tile string `json:"tile"`

	// Base is the position label (possibly a binned range).
	Base string `json:"base"`

	// Mean is the deviation of the tile's mean quality from the average.
	Mean float64 `json:"mean"`
}

// TileQualities is the decoded Per_tile_sequence_quality table.
type TileQualities []TileQuality

// ModuleName implements Table.
func (TileQualities) ModuleName() string { return ModulePerTileSequenceQuality }

// RowCount implements Table.
func (t TileQualities) RowCount() int { return len(t) }

// QualityCount is one row of the Per_sequence_quality_scores module.
type QualityCount struct {
	// Quality is the mean quality score bucket.
	Quality int64 `json:"quality"`

	// Count is the number of reads whose mean quality falls in the bucket.
	Count int64 `json:"count"`
}

// QualityCounts is the decoded Per_sequence_quality_scores table.
type QualityCounts []QualityCount

// ModuleName implements Table.
func (QualityCounts) ModuleName() string { return ModulePerSequenceQualityScores }

// RowCount implements Table.
func (t QualityCounts) RowCount() int { return len(t) }

// BaseContent is one row of the Per_base_sequence_content module:
// the proportion of each base call at one read position.
type BaseContent struct {
	// Base is the position label (possibly a binned range).
	Base string `json:"base"`

	G float64 `json:"g"`
	A float64 `json:"a"`
	T float64 `json:"t"`
	C float64 `json:"c"`
}

// BaseContents is the decoded Per_base_sequence_content table.
type BaseContents []BaseContent

// ModuleName implements Table.
func (BaseContents) ModuleName() string { return ModulePerBaseSequenceContent }

// RowCount implements Table.
func (t BaseContents) RowCount() int { return len(t) }

// GCCount is one row of the Per_sequence_GC_content module.
type GCCount struct {
	// GCContent is the %GC bucket (0-100).
	GCContent int64 `json:"gc_content"`

	// Count is the number of reads in the bucket.
	Count int64 `json:"count"`
}

// GCCounts is the decoded Per_sequence_GC_content table.
type GCCounts []GCCount

// ModuleName implements Table.
func (GCCounts) ModuleName() string { return ModulePerSequenceGCContent }

// RowCount implements Table.
func (t GCCounts) RowCount() int { return len(t) }

// NContent is one row of the Per_base_N_content module.
type NContent struct {
	// Base is the position label (possibly a binned range).
	Base string `json:"base"`

	// NCount is the count of uncalled (N) bases at the position.
	NCount int64 `json:"n_count"`
}

// NContents is the decoded Per_base_N_content table.
type NContents []NContent

// ModuleName implements Table.
func (NContents) ModuleName() string { return ModulePerBaseNContent }

// RowCount implements Table.
func (t NContents) RowCount() int { return len(t) }

// LengthCount is one row of the Sequence_Length_Distribution module.
// The raw Length column is a range token split at decode time, identically
// to the Sequence_length field of Basic_Statistics.
type LengthCount struct {
	// LowerLength is the lower bound of the length bin.
	LowerLength int64 `json:"lower_length"`

	// UpperLength is the upper bound of the length bin.
	UpperLength int64 `json:"upper_length"`

	// Count is the number of reads in the bin.
	Count int64 `json:"count"`
}

// LengthCounts is the decoded Sequence_Length_Distribution table.
type LengthCounts []LengthCount

// ModuleName implements Table.
func (LengthCounts) ModuleName() string { return ModuleSequenceLengthDistribution }

// RowCount implements Table.
func (t LengthCounts) RowCount() int { return len(t) }

// DuplicationLevel is one row of the Sequence_Duplication_Levels module.
type DuplicationLevel struct {
	// Level is the duplication bucket label (e.g. "1", "2", ">10", ">10k").
	Level string `json:"duplication_level"`

	// PercentDeduplicated is the percentage relative to the deduplicated set.
	PercentDeduplicated float64 `json:"percentage_of_deduplicated"`

	// PercentTotal is the percentage relative to all reads.
	PercentTotal float64 `json:"percentage_of_total"`
}

// DuplicationLevels is the decoded Sequence_Duplication_Levels table.
// The module's embedded "Total Deduplicated Percentage" scalar is not part
// of this table; it lives on the Report.
type DuplicationLevels []DuplicationLevel

// ModuleName implements Table.
func (DuplicationLevels) ModuleName() string { return ModuleSequenceDuplicationLevels }

// RowCount implements Table.
func (t DuplicationLevels) RowCount() int { return len(t) }

// OverrepresentedSequence is one row of the Overrepresented_sequences module.
type OverrepresentedSequence struct {
	// Sequence is the overrepresented read prefix.
	Sequence string `json:"sequence"`

	// Count is the number of exact occurrences.
	Count int64 `json:"count"`

	// Percentage is the share of all reads this sequence represents.
	Percentage float64 `json:"percentage"`

	// PossibleSource is FastQC's best guess at the contaminant source,
	// or "No Hit".
	PossibleSource string `json:"possible_source"`
}

// OverrepresentedSequences is the decoded Overrepresented_sequences table.
// A clean library legitimately produces zero rows.
type OverrepresentedSequences []OverrepresentedSequence

// ModuleName implements Table.
func (OverrepresentedSequences) ModuleName() string { return ModuleOverrepresentedSequences }

// RowCount implements Table.
func (t OverrepresentedSequences) RowCount() int { return len(t) }

// AdapterContent is the decoded Adapter_Content module.
//
// Design decision: Unlike every other module, the column set is not fixed:
// each FastQC version ships its own adapter list, one percentage column per
// adapter. We keep the observed adapter names and a position-major matrix
// rather than inventing per-adapter fields.
type AdapterContent struct {
	// Adapters holds the non-Position column names in header order.
	Adapters []string `json:"adapters"`

	// Rows holds one entry per position, index-aligned with Adapters.
	Rows []AdapterRow `json:"rows"`
}

// AdapterRow is one position's adapter percentages.
type AdapterRow struct {
	// Position is the read-position label (possibly a binned range).
	Position string `json:"position"`

	// Percentages holds one value per adapter, in AdapterContent.Adapters order.
	Percentages []float64 `json:"percentages"`
}

// ModuleName implements Table.
func (AdapterContent) ModuleName() string { return ModuleAdapterContent }

// RowCount implements Table.
func (t AdapterContent) RowCount() int { return len(t.Rows) }

// KmerContent is one row of the Kmer_Content module.
type KmerContent struct {
	// Sequence is the enriched k-mer.
	Sequence string `json:"sequence"`

	// Count is the number of observations.
	Count int64 `json:"count"`

	// PValue is the binomial p-value of the enrichment.
	PValue float64 `json:"p_value"`

	// ObsExpMax is the maximum observed/expected ratio.
	ObsExpMax float64 `json:"obs_exp_max"`

	// MaxObsExpPosition is the position of the maximum ratio. It may be a
	// binned range label, so it stays a string.
	MaxObsExpPosition string `json:"max_obs_exp_position"`
}

// KmerContents is the decoded Kmer_Content table.
// Absent k-mer enrichment legitimately produces zero rows.
type KmerContents []KmerContent

// ModuleName implements Table.
func (KmerContents) ModuleName() string { return ModuleKmerContent }

// RowCount implements Table.
func (t KmerContents) RowCount() int { return len(t) }
