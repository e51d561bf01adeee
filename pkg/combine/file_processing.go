package combine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.uber.org/zap"
)

// errBinaryContent marks a file whose content is not text.
var errBinaryContent = errors.New("binary content")

// ProcessSingleFile reads a record from fs and returns its block.
// Binary content yields an error wrapping errBinaryContent.
func ProcessSingleFile(fs billy.Filesystem, record FileRecord, logger *zap.Logger) (FileBlock, error) {
	logger.Debug("Reading file content", zap.String("path", record.RelPath))

	fileBytes, err := util.ReadFile(fs, fsPath(fs, record.RelPath))
	if err != nil {
		return FileBlock{}, fmt.Errorf("error reading file %s: %w", record.RelPath, err)
	}

	if isBinaryContent(fileBytes) {
		return FileBlock{}, fmt.Errorf("file %s: %w", record.RelPath, errBinaryContent)
	}

	content := string(fileBytes)
	return FileBlock{
		Path:    record.RelPath,
		Content: content,
		Lines:   countLines(content),
	}, nil
}

// countLines returns the number of lines in content. A trailing line without
// a newline still counts.
func countLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}

// fsPath converts a slash-separated path relative to the root into a path
// for fs. The root itself is "".
func fsPath(fs billy.Filesystem, relPath string) string {
	if relPath == "" {
		return ""
	}
	return fs.Join(strings.Split(relPath, "/")...)
}
