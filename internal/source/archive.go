package source

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// zipMagic is the local-file-header signature every zip archive starts with.
var zipMagic = []byte{'P', 'K', 0x03, 0x04}

// IsArchive reports whether the path names a readable zip archive.
// Both the extension and the file header are checked: FastQC archives
// always end in .zip, but a stray .zip text file must not be opened as one.
func IsArchive(path string) bool {
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false
	}

	f, err := os.Open(path) //nolint:gosec // User-provided report path is intentional
	if err != nil {
		return false
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	header := make([]byte, len(zipMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		return false
	}
	return bytes.Equal(header, zipMagic)
}

// ZipSource reads FastQC report members out of a *_fastqc.zip archive.
// Each read opens the archive independently, so concurrent batch parsing
// never shares a file descriptor between goroutines.
type ZipSource struct {
	path string
}

// NewZipSource creates a ZipSource for the given archive path.
func NewZipSource(path string) *ZipSource {
	return &ZipSource{path: path}
}

// Path implements Source.
func (s *ZipSource) Path() string { return s.path }

// ReadLines implements Source. It locates the fastqc_data.txt member
// (FastQC nests it inside a <sample>_fastqc/ directory) and returns its
// lines. A missing member is an error: an archive without the data file is
// not a FastQC archive.
func (s *ZipSource) ReadLines() ([]string, error) {
	lines, found, err := s.readMember(DataFileName)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%s: no %s member in archive", s.path, DataFileName)
	}
	return lines, nil
}

// ReadSummaryLines implements Source. A missing summary.txt member yields
// (nil, nil).
func (s *ZipSource) ReadSummaryLines() ([]string, error) {
	lines, _, err := s.readMember(SummaryFileName)
	return lines, err
}

// readMember reads the lines of the first archive member whose base name
// matches name. The bool result reports whether a member was found.
// The archive handle and member reader are released on every path.
func (s *ZipSource) readMember(name string) (lines []string, found bool, err error) {
	r, err := zip.OpenReader(s.path)
	if err != nil {
		return nil, false, fmt.Errorf("open archive %s: %w", s.path, err)
	}
	defer r.Close() //nolint:errcheck // Read-only handle

	for _, member := range r.File {
		if member.Name != name && !strings.HasSuffix(member.Name, "/"+name) {
			continue
		}

		rc, err := member.Open()
		if err != nil {
			return nil, false, fmt.Errorf("open member %s in %s: %w", member.Name, s.path, err)
		}
		lines, err = readLines(rc)
		closeErr := rc.Close()
		if err != nil {
			return nil, false, fmt.Errorf("read member %s in %s: %w", member.Name, s.path, err)
		}
		if closeErr != nil {
			return nil, false, fmt.Errorf("close member %s in %s: %w", member.Name, s.path, closeErr)
		}
		return lines, true, nil
	}
	return nil, false, nil
}
