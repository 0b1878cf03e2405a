package linkcheck

// Missing is one local link whose resolved target does not exist.
type Missing struct {
	// File is the markdown document containing the link, relative to the
	// scanned root (or as discovered).
	File string
	// Target is the raw link destination as written in the document,
	// including any #fragment suffix.
	Target string
}

// Result contains the outcome of one validation pass.
type Result struct {
	Missing      []Missing
	FilesScanned int
}

// OK returns true when every local link resolved.
func (r *Result) OK() bool {
	return len(r.Missing) == 0
}

// MissingCount returns the number of unresolved local links.
func (r *Result) MissingCount() int {
	return len(r.Missing)
}
