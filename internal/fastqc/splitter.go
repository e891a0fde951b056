package fastqc

import (
	"strings"

	"github.com/seqqc/seqqc/internal/model"
)

const (
	// markerPrefix introduces a module start marker line:
	// ">>Module Display Name<TAB>status".
	markerPrefix = ">>"

	// endMarker terminates a module section. It shares the marker prefix,
	// so it must be filtered out before start markers are matched.
	endMarker = ">>END_MODULE"
)

// document is the result of splitting one FastQC data file: the version
// line and each module's body lines, keyed by normalized module name.
type document struct {
	// version is the free-text first line, trailing whitespace stripped.
	version string

	// modules maps normalized module names to their body lines, with the
	// start and end marker lines removed.
	modules map[string][]string
}

// split partitions the raw lines of a FastQC data file into module
// sections and verifies that all twelve required modules are present.
// Unknown module names are kept (forward compatibility with newer FastQC
// versions) but never required.
func split(source string, lines []string) (*document, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	doc := &document{
		version: strings.TrimRight(lines[0], "\t \r"),
		modules: make(map[string][]string),
	}

	current := ""
	for _, line := range lines[1:] {
		line = strings.TrimRight(line, "\r")
		if line == endMarker {
			current = ""
			continue
		}
		if strings.HasPrefix(line, markerPrefix) {
			current = moduleName(line)
			doc.modules[current] = []string{}
			continue
		}
		// Content before the first start marker belongs to no module
		// and is ignored.
		if current == "" {
			continue
		}
		doc.modules[current] = append(doc.modules[current], line)
	}

	var missing []string
	for _, name := range model.RequiredModules() {
		if _, ok := doc.modules[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingModuleError{Source: source, Modules: missing}
	}

	return doc, nil
}

// moduleName derives the normalized module name from a start marker line:
// the marker prefix is removed, only the text before the first tab counts
// (the rest is the status token), and spaces become underscores.
func moduleName(marker string) string {
	name := strings.TrimPrefix(marker, markerPrefix)
	name, _, _ = strings.Cut(name, "\t")
	return normalizeName(name)
}
