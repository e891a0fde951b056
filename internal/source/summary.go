package source

import (
	"fmt"
	"strings"

	"github.com/seqqc/seqqc/internal/fastqc"
	"github.com/seqqc/seqqc/internal/model"
)

// ParseSummary decodes the lines of a FastQC summary.txt into a Summary
// table. Each line is "STATUS<TAB>Module Display Name<TAB>filename";
// module display names are normalized the same way as module markers.
// sourcePath only labels errors.
//
// An unparsable status token or a short line is a MalformedSummaryError:
// the side-channel is optional, but when present it must be well formed.
func ParseSummary(sourcePath string, lines []string) (model.Summary, error) {
	summary := make(model.Summary, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, &fastqc.MalformedSummaryError{
				Source: sourcePath,
				Reason: fmt.Sprintf("line %d: expected 3 tab-separated fields, got %d", i+1, len(fields)),
			}
		}

		status, err := model.ParseStatus(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, &fastqc.MalformedSummaryError{
				Source: sourcePath,
				Reason: fmt.Sprintf("line %d: %v", i+1, err),
			}
		}

		summary = append(summary, model.SummaryRow{
			Module:   strings.ReplaceAll(strings.TrimSpace(fields[1]), " ", "_"),
			Status:   status,
			Filename: strings.TrimSpace(fields[2]),
		})
	}
	return summary, nil
}

// LoadSummary reads and decodes the summary side-channel of a Source.
// Sources without one yield an empty Summary.
func LoadSummary(src Source) (model.Summary, error) {
	lines, err := src.ReadSummaryLines()
	if err != nil {
		return nil, err
	}
	if lines == nil {
		return model.Summary{}, nil
	}
	return ParseSummary(src.Path(), lines)
}
