package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DataFileName is the FastQC data file member name.
const DataFileName = "fastqc_data.txt"

// SummaryFileName is the FastQC summary side-channel member name.
const SummaryFileName = "summary.txt"

// maxLineSize bounds a single report line. Overrepresented-sequence rows
// carry full read prefixes but stay far below this.
const maxLineSize = 1024 * 1024

// Source yields the raw ordered text lines of one FastQC report,
// regardless of how the report is stored on disk.
type Source interface {
	// Path identifies the originating resource for error messages and
	// the Report's source field.
	Path() string

	// ReadLines returns the ordered lines of the fastqc_data.txt content.
	ReadLines() ([]string, error)

	// ReadSummaryLines returns the ordered lines of the summary.txt
	// side-channel, or (nil, nil) when the resource has none. The summary
	// is optional input, so absence is not an error.
	ReadSummaryLines() ([]string, error)
}

// For returns the appropriate Source for the given path: a ZipSource for
// FastQC zip archives, a FileSource otherwise.
func For(path string) Source {
	if IsArchive(path) {
		return NewZipSource(path)
	}
	return NewFileSource(path)
}

// FileSource reads a plain fastqc_data.txt file. The summary side-channel
// is looked up as summary.txt next to the data file, matching FastQC's
// unpacked output layout.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for the given fastqc_data.txt path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path implements Source.
func (s *FileSource) Path() string { return s.path }

// ReadLines implements Source.
func (s *FileSource) ReadLines() ([]string, error) {
	f, err := os.Open(s.path) //nolint:gosec // User-provided report path is intentional
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return lines, nil
}

// ReadSummaryLines implements Source. A missing sibling summary.txt yields
// (nil, nil).
func (s *FileSource) ReadSummaryLines() ([]string, error) {
	path := filepath.Join(filepath.Dir(s.path), SummaryFileName)
	f, err := os.Open(path) //nolint:gosec // Derived from user-provided path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open summary: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// readLines collects all text lines from r. A UTF-8 or UTF-16 byte order
// mark at the start of the stream is decoded away rather than leaking into
// the version line.
func readLines(r io.Reader) ([]string, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
