package combine

// FileRecord describes a file accepted by the walker.
type FileRecord struct {
	RelPath string // Path relative to the root, slash-separated.
	AbsPath string // Absolute path on disk.
	Ext     string // Lowercased extension without the dot.
	Size    int64  // Size in bytes at traversal time.
}

// FileBlock holds the content of a file after reading.
type FileBlock struct {
	Path    string // Relative path used in the header.
	Content string // Verbatim file content.
	Lines   int    // Number of lines in Content.
}

// Skip reasons reported in SkippedFile.
const (
	SkipBinary    = "binary"
	SkipReadError = "read error"
)

// SkippedFile is a file that was accepted by the walker but left out of the output.
type SkippedFile struct {
	Path   string
	Reason string
	Err    error
}

// RenderResult is the rendered output of a run.
type RenderResult struct {
	Project     string        // Project name printed in the header.
	IncludeTree bool          // Whether the project structure section is written.
	Blocks      []FileBlock   // Rendered files in walk order.
	Skipped     []SkippedFile // Files dropped while rendering.
	TotalLines  int           // Sum of Lines over all blocks.
}

// FileCount returns the number of files in the output.
func (r RenderResult) FileCount() int {
	return len(r.Blocks)
}

// Encountered returns the number of files the renderer looked at.
func (r RenderResult) Encountered() int {
	return len(r.Blocks) + len(r.Skipped)
}

// Paths returns the relative paths of the rendered files in order.
func (r RenderResult) Paths() []string {
	paths := make([]string, len(r.Blocks))
	for i, b := range r.Blocks {
		paths[i] = b.Path
	}
	return paths
}
