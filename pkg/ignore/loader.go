package ignore

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"go.uber.org/zap"
)

const (
	// GitIgnoreFileName is the name of the Git ignore file.
	GitIgnoreFileName = ".gitignore"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"

	defaultsSource = "<defaults>"
	selfSource     = "<self>"
)

// defaultPatterns are ignored unless a .gitignore or an explicit pattern
// re-includes them.
var defaultPatterns = [...]string{
	"node_modules",
	"vendor",
	"__pycache__",
	"venv",
	"dist",
	"build",
	"package-lock.json",
	"*.min.js",
	"*.min.css",
}

// DefaultRules returns the built-in rules that sit below every .gitignore.
func DefaultRules() RuleSet {
	return NewRuleSet("", defaultsSource, defaultPatterns[:]...)
}

// SelfIgnore returns the rules that are always applied and cannot be negated:
// the Git directory and, when it lives under the root, the output file.
// outputRelPath is slash-separated and relative to the root.
func SelfIgnore(outputRelPath string) RuleSet {
	lines := []string{GitDirectoryName}
	if outputRelPath = strings.Trim(outputRelPath, "/"); outputRelPath != "" {
		lines = append(lines, "/"+escapeGlob(outputRelPath))
	}
	return NewRuleSet("", selfSource, lines...)
}

// FromPatterns compiles user supplied patterns, applied from the root.
// Surrounding whitespace is trimmed and empty entries are dropped.
func FromPatterns(source string, patterns []string) RuleSet {
	return NewRuleSet("", source, patterns...)
}

// Loader reads .gitignore files from a filesystem rooted at the scan root.
type Loader struct {
	fs     billy.Filesystem
	logger *zap.Logger
}

// NewLoader initializes a Loader. A nil logger is replaced by a no-op logger.
func NewLoader(fs billy.Filesystem, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{fs: fs, logger: logger}
}

// LoadRules reads the .gitignore in dir, a slash-separated path relative to
// the root. A missing file yields an empty rule set.
func (l *Loader) LoadRules(dir string) (RuleSet, error) {
	dir = strings.Trim(dir, "/")
	source := path.Join(dir, GitIgnoreFileName)
	rs := RuleSet{Dir: dir, Source: source}

	file, err := l.fs.Open(l.fs.Join(append(SplitPath(dir), GitIgnoreFileName)...))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return rs, nil
		}
		return rs, fmt.Errorf("open %s: %w", source, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return rs, fmt.Errorf("read %s: %w", source, err)
	}

	rs.CompileLines(lines...)
	l.logger.Debug("Loaded ignore file",
		zap.String("file", source),
		zap.Int("lineCount", len(lines)),
		zap.Int("ruleCount", rs.Len()))
	return rs, nil
}

// escapeGlob makes a literal path safe to use as a pattern.
func escapeGlob(literal string) string {
	var b strings.Builder
	for _, r := range literal {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
