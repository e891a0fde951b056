package fastqc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/seqqc/seqqc/internal/model"
)

// Column names as they appear after header normalization. The names are
// authoritative: '%', '/', and '-' are literal parts of several of them.
const (
	colFilename       = "Filename"
	colFileType       = "File_type"
	colEncoding       = "Encoding"
	colTotalSequences = "Total_Sequences"
	colPoorQuality    = "Sequences_flagged_as_poor_quality"
	colSequenceLength = "Sequence_length"
	colPercentGC      = "%GC"

	colBase           = "Base"
	colMean           = "Mean"
	colMedian         = "Median"
	colLowerQuartile  = "Lower_Quartile"
	colUpperQuartile  = "Upper_Quartile"
	colPercentile10th = "10th_Percentile"
	colPercentile90th = "90th_Percentile"

	colTile    = "Tile"
	colQuality = "Quality"
	colCount   = "Count"

	colGCContent = "GC_Content"
	colNCount    = "N-Count"
	colLength    = "Length"

	colDuplicationLevel    = "Duplication_Level"
	colPctOfDeduplicated   = "Percentage_of_deduplicated"
	colPctOfTotal          = "Percentage_of_total"
	colSequence            = "Sequence"
	colPercentage          = "Percentage"
	colPossibleSource      = "Possible_Source"
	colPosition            = "Position"
	colPValue              = "PValue"
	colObsExpMax           = "Obs/Exp_Max"
	colMaxObsExpPosition   = "Max_Obs/Exp_Position"
	dedupPercentageLabel   = "Total Deduplicated Percentage"
	dedupPercentageColName = "Total_Deduplicated_Percentage"
)

// decodeBasicStatistics decodes the Basic_Statistics module. The module
// always carries exactly one data row; the Sequence_length range token is
// split into its integer bounds here.
func decodeBasicStatistics(source string, body []string) (model.BasicStatistics, error) {
	var bs model.BasicStatistics

	t := newTable(source, model.ModuleBasicStatistics, body)
	if err := t.require(
		colFilename, colFileType, colEncoding, colTotalSequences,
		colPoorQuality, colSequenceLength, colPercentGC,
	); err != nil {
		return bs, err
	}
	if len(t.rows) == 0 {
		return bs, fmt.Errorf("%s: module %s has no data row", source, model.ModuleBasicStatistics)
	}

	var err error
	bs.Filename = t.str(0, colFilename)
	bs.FileType = t.str(0, colFileType)
	bs.Encoding = t.str(0, colEncoding)
	if bs.TotalSequences, err = t.intAt(0, colTotalSequences); err != nil {
		return bs, err
	}
	if bs.PoorQualitySequences, err = t.intAt(0, colPoorQuality); err != nil {
		return bs, err
	}
	if bs.ShortestSequence, bs.LongestSequence, err = t.rangeAt(0, colSequenceLength); err != nil {
		return bs, err
	}
	if bs.PercentGC, err = t.floatAt(0, colPercentGC); err != nil {
		return bs, err
	}
	return bs, nil
}

// decodeBaseQualities decodes the Per_base_sequence_quality module.
func decodeBaseQualities(source string, body []string) (model.BaseQualities, error) {
	t := newTable(source, model.ModulePerBaseSequenceQuality, body)
	if err := t.require(
		colBase, colMean, colMedian, colLowerQuartile, colUpperQuartile,
		colPercentile10th, colPercentile90th,
	); err != nil {
		return nil, err
	}

	rows := make(model.BaseQualities, 0, len(t.rows))
	for i := range t.rows {
		var (
			row model.BaseQuality
			err error
		)
		row.Base = t.str(i, colBase)
		if row.Mean, err = t.floatAt(i, colMean); err != nil {
			return nil, err
		}
		if row.Median, err = t.floatAt(i, colMedian); err != nil {
			return nil, err
		}
		if row.LowerQuartile, err = t.floatAt(i, colLowerQuartile); err != nil {
			return nil, err
		}
		if row.UpperQuartile, err = t.floatAt(i, colUpperQuartile); err != nil {
			return nil, err
		}
		if row.Percentile10th, err = t.floatAt(i, colPercentile10th); err != nil {
			return nil, err
		}
		if row.Percentile90th, err = t.floatAt(i, colPercentile90th); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// decodeTileQualities decodes the Per_tile_sequence_quality module.
func decodeTileQualities(source string, body []string) (model.TileQualities, error) {
	t := newTable(source, model.ModulePerTileSequenceQuality, body)
	if err := t.require(colTile, colBase, colMean); err != nil {
		return nil, err
	}

	rows := make(model.TileQualities, 0, len(t.rows))
	for i := range t.rows {
		mean, err := t.floatAt(i, colMean)
		if err != nil {
			return nil, err
		}
		rows = append(rows, model.TileQuality{
			Tile: t.str(i, colTile),
			Base: t.str(i, colBase),
			Mean: mean,
		})
	}
	return rows, nil
}

// decodeQualityCounts decodes the Per_sequence_quality_scores module.
func decodeQualityCounts(source string, body []string) (model.QualityCounts, error) {
	t := newTable(source, model.ModulePerSequenceQualityScores, body)
	if err := t.require(colQuality, colCount); err != nil {
		return nil, err
	}

	rows := make(model.QualityCounts, 0, len(t.rows))
	for i := range t.rows {
		quality, err := t.intAt(i, colQuality)
		if err != nil {
			return nil, err
		}
		count, err := t.intAt(i, colCount)
		if err != nil {
			return nil, err
		}
		rows = append(rows, model.QualityCount{Quality: quality, Count: count})
	}
	return rows, nil
}

// decodeBaseContents decodes the Per_base_sequence_content module.
func decodeBaseContents(source string, body []string) (model.BaseContents, error) {
	t := newTable(source, model.ModulePerBaseSequenceContent, body)
	if err := t.require(colBase, "G", "A", "T", "C"); err != nil {
		return nil, err
	}

	rows := make(model.BaseContents, 0, len(t.rows))
	for i := range t.rows {
		var (
			row model.BaseContent
			err error
		)
		row.Base = t.str(i, colBase)
		if row.G, err = t.floatAt(i, "G"); err != nil {
			return nil, err
		}
		if row.A, err = t.floatAt(i, "A"); err != nil {
			return nil, err
		}
		if row.T, err = t.floatAt(i, "T"); err != nil {
			return nil, err
		}
		if row.C, err = t.floatAt(i, "C"); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// decodeGCCounts decodes the Per_sequence_GC_content module.
func decodeGCCounts(source string, body []string) (model.GCCounts, error) {
	t := newTable(source, model.ModulePerSequenceGCContent, body)
	if err := t.require(colGCContent, colCount); err != nil {
		return nil, err
	}

	rows := make(model.GCCounts, 0, len(t.rows))
	for i := range t.rows {
		gc, err := t.intAt(i, colGCContent)
		if err != nil {
			return nil, err
		}
		count, err := t.intAt(i, colCount)
		if err != nil {
			return nil, err
		}
		rows = append(rows, model.GCCount{GCContent: gc, Count: count})
	}
	return rows, nil
}

// decodeNContents decodes the Per_base_N_content module.
func decodeNContents(source string, body []string) (model.NContents, error) {
	t := newTable(source, model.ModulePerBaseNContent, body)
	if err := t.require(colBase, colNCount); err != nil {
		return nil, err
	}

	rows := make(model.NContents, 0, len(t.rows))
	for i := range t.rows {
		n, err := t.intAt(i, colNCount)
		if err != nil {
			return nil, err
		}
		rows = append(rows, model.NContent{Base: t.str(i, colBase), NCount: n})
	}
	return rows, nil
}

// decodeLengthCounts decodes the Sequence_Length_Distribution module.
// The Length column is a range token ("35-39", or a bare "50").
func decodeLengthCounts(source string, body []string) (model.LengthCounts, error) {
	t := newTable(source, model.ModuleSequenceLengthDistribution, body)
	if err := t.require(colLength, colCount); err != nil {
		return nil, err
	}

	rows := make(model.LengthCounts, 0, len(t.rows))
	for i := range t.rows {
		lower, upper, err := t.rangeAt(i, colLength)
		if err != nil {
			return nil, err
		}
		count, err := t.intAt(i, colCount)
		if err != nil {
			return nil, err
		}
		rows = append(rows, model.LengthCount{
			LowerLength: lower,
			UpperLength: upper,
			Count:       count,
		})
	}
	return rows, nil
}

// decodeDuplicationLevels decodes the Sequence_Duplication_Levels module.
//
// The module hides a scalar among its lines: a "Total Deduplicated
// Percentage" line that is not part of the table. It is extracted and
// removed before row parsing. Older FastQC versions omit the line, so the
// returned pointer is nil in that case rather than an error.
func decodeDuplicationLevels(source string, body []string) (model.DuplicationLevels, *float64, error) {
	var dedup *float64

	tableLines := make([]string, 0, len(body))
	for _, line := range body {
		label, value, found := strings.Cut(strings.TrimPrefix(line, "#"), "\t")
		if found && label == dedupPercentageLabel {
			v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil {
				return nil, nil, &CoercionError{
					Source: source,
					Module: model.ModuleSequenceDuplicationLevels,
					Column: dedupPercentageColName,
					Value:  strings.TrimSpace(value),
				}
			}
			dedup = &v
			continue
		}
		tableLines = append(tableLines, line)
	}

	t := newTable(source, model.ModuleSequenceDuplicationLevels, tableLines)
	if err := t.require(colDuplicationLevel, colPctOfDeduplicated, colPctOfTotal); err != nil {
		return nil, nil, err
	}

	rows := make(model.DuplicationLevels, 0, len(t.rows))
	for i := range t.rows {
		var (
			row model.DuplicationLevel
			err error
		)
		row.Level = t.str(i, colDuplicationLevel)
		if row.PercentDeduplicated, err = t.floatAt(i, colPctOfDeduplicated); err != nil {
			return nil, nil, err
		}
		if row.PercentTotal, err = t.floatAt(i, colPctOfTotal); err != nil {
			return nil, nil, err
		}
		rows = append(rows, row)
	}
	return rows, dedup, nil
}

// decodeOverrepresentedSequences decodes the Overrepresented_sequences
// module. A module with no lines at all (clean library) is a valid
// zero-row table.
func decodeOverrepresentedSequences(source string, body []string) (model.OverrepresentedSequences, error) {
	if len(body) == 0 {
		return model.OverrepresentedSequences{}, nil
	}

	t := newTable(source, model.ModuleOverrepresentedSequences, body)
	if err := t.require(colSequence, colCount, colPercentage, colPossibleSource); err != nil {
		return nil, err
	}

	rows := make(model.OverrepresentedSequences, 0, len(t.rows))
	for i := range t.rows {
		count, err := t.intAt(i, colCount)
		if err != nil {
			return nil, err
		}
		pct, err := t.floatAt(i, colPercentage)
		if err != nil {
			return nil, err
		}
		rows = append(rows, model.OverrepresentedSequence{
			Sequence:       t.str(i, colSequence),
			Count:          count,
			Percentage:     pct,
			PossibleSource: t.str(i, colPossibleSource),
		})
	}
	return rows, nil
}

// decodeAdapterContent decodes the Adapter_Content module.
//
// The column set is open-ended: every column other than Position is one
// adapter's percentage series, and the adapter list differs between FastQC
// versions. The decoder accepts any non-empty adapter set and coerces all
// of those columns to floating point.
func decodeAdapterContent(source string, body []string) (model.AdapterContent, error) {
	var ac model.AdapterContent
	if len(body) == 0 {
		return ac, nil
	}

	t := newTable(source, model.ModuleAdapterContent, body)
	if err := t.require(colPosition); err != nil {
		return ac, err
	}

	for _, c := range t.columns {
		if c != colPosition {
			ac.Adapters = append(ac.Adapters, c)
		}
	}
	if len(ac.Adapters) == 0 {
		return ac, &MissingColumnError{
			Source:  source,
			Module:  model.ModuleAdapterContent,
			Columns: []string{"at least one adapter column"},
		}
	}

	ac.Rows = make([]model.AdapterRow, 0, len(t.rows))
	for i := range t.rows {
		row := model.AdapterRow{
			Position:    t.str(i, colPosition),
			Percentages: make([]float64, 0, len(ac.Adapters)),
		}
		for _, adapter := range ac.Adapters {
			v, err := t.floatAt(i, adapter)
			if err != nil {
				return model.AdapterContent{}, err
			}
			row.Percentages = append(row.Percentages, v)
		}
		ac.Rows = append(ac.Rows, row)
	}
	return ac, nil
}

// decodeKmerContents decodes the Kmer_Content module. A module with no
// lines at all (no enriched k-mers) is a valid zero-row table.
func decodeKmerContents(source string, body []string) (model.KmerContents, error) {
	if len(body) == 0 {
		return model.KmerContents{}, nil
	}

	t := newTable(source, model.ModuleKmerContent, body)
	if err := t.require(colSequence, colCount, colPValue, colObsExpMax, colMaxObsExpPosition); err != nil {
		return nil, err
	}

	rows := make(model.KmerContents, 0, len(t.rows))
	for i := range t.rows {
		var (
			row model.KmerContent
			err error
		)
		row.Sequence = t.str(i, colSequence)
		if row.Count, err = t.intAt(i, colCount); err != nil {
			return nil, err
		}
		if row.PValue, err = t.floatAt(i, colPValue); err != nil {
			return nil, err
		}
		if row.ObsExpMax, err = t.floatAt(i, colObsExpMax); err != nil {
			return nil, err
		}
		row.MaxObsExpPosition = t.str(i, colMaxObsExpPosition)
		rows = append(rows, row)
	}
	return rows, nil
}
