// File: pkg/combine/render.go
package combine

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-billy/v5"
	"go.uber.org/zap"
)

// Output layout markers.
const (
	projectPrefix  = "Project: "
	structureTitle = "PROJECT STRUCTURE:"
	filePrefix     = "FILE: "
)

var (
	sectionRule = strings.Repeat("=", 50)
	headerRule  = strings.Repeat("-", 20)
)

// Renderer reads accepted files and assembles the output text.
type Renderer struct {
	fs     billy.Filesystem
	config ScanConfig
	logger *zap.Logger
}

// NewRenderer creates a Renderer reading from fs, rooted at config.Root.
func NewRenderer(fs billy.Filesystem, config ScanConfig, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{fs: fs, config: config, logger: logger}
}

// Render reads every record in order. Unreadable and binary files are
// recorded in Skipped and logged; they never fail the run.
func (r *Renderer) Render(records []FileRecord) RenderResult {
	result := RenderResult{
		Project:     r.config.ProjectName,
		IncludeTree: r.config.IncludeTree,
	}

	for _, record := range records {
		block, err := ProcessSingleFile(r.fs, record, r.logger)
		switch {
		case errors.Is(err, errBinaryContent):
			r.logger.Debug("Skipping binary file", zap.String("path", record.RelPath))
			result.Skipped = append(result.Skipped, SkippedFile{Path: record.RelPath, Reason: SkipBinary, Err: err})
			continue
		case err != nil:
			r.logger.Warn("Skipping unreadable file", zap.String("path", record.RelPath), zap.Error(err))
			result.Skipped = append(result.Skipped, SkippedFile{Path: record.RelPath, Reason: SkipReadError, Err: err})
			continue
		}

		r.logger.Debug("Including file", zap.String("path", record.RelPath), zap.Int("lines", block.Lines))
		result.Blocks = append(result.Blocks, block)
		result.TotalLines += block.Lines
	}

	return result
}

// Text returns the complete output.
func (r RenderResult) Text() string {
	var b strings.Builder

	b.WriteString(projectPrefix + r.Project + "\n")
	b.WriteString(sectionRule + "\n")
	if r.IncludeTree {
		b.WriteString(structureTitle + "\n")
		if tree := GenerateTree(r.Paths()); tree != "" {
			b.WriteString(tree + "\n")
		}
		b.WriteString(sectionRule + "\n")
	}
	b.WriteString("\n")

	for _, block := range r.Blocks {
		b.WriteString(filePrefix + block.Path + "\n")
		b.WriteString(headerRule + "\n")
		b.WriteString(block.Content)
		if !strings.HasSuffix(block.Content, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n" + sectionRule + "\n\n")
	}

	fmt.Fprintf(&b, "Total: %d files, %d lines\n", r.FileCount(), r.TotalLines)
	return b.String()
}

// WriteTo writes the output text to w.
func (r RenderResult) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.Text())
	return int64(n), err
}
