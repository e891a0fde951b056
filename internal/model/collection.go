package model

// Collection is an order-preserving sequence of Reports for a multi-file
// run. The order matches the input resource list, never completion order.
// It is a sequence, not a set: the same file parsed twice appears twice.
type Collection []*Report

// SourcePaths returns the source identifiers of all member reports,
// in collection order.
func (c Collection) SourcePaths() []string {
	paths := make([]string, len(c))
	for i, r := range c {
		paths[i] = r.SourcePath
	}
	return paths
}

// Find returns the first report parsed from the given source path.
// The second return value is false when no member matches.
func (c Collection) Find(sourcePath string) (*Report, bool) {
	for _, r := range c {
		if r.SourcePath == sourcePath {
			return r, true
		}
	}
	return nil, false
}
