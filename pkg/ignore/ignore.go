// Package ignore evaluates gitignore-style patterns against paths relative to
// the scan root.
package ignore

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Verdict is the outcome of matching a path against a rule.
type Verdict int

const (
	// NoMatch means the rule says nothing about the path.
	NoMatch Verdict = iota
	// Exclude means the path is ignored by the rule.
	Exclude
	// Include means a negated rule re-includes the path.
	Include
)

// Rule encapsulates a compiled ignore pattern, its negation flag, and
// metadata about the pattern's origin.
type Rule struct {
	Line   string   // Pattern text as written, surrounding whitespace removed.
	Negate bool     // Indicates if the pattern is a negation (starts with '!').
	Domain []string // Directory the rule is scoped to, as path segments from the root.
	Source string   // Ignore file or origin label the rule was read from.
	LineNo int      // Line number in the source (1-based).

	pattern gitignore.Pattern
}

// ParseRule compiles a single ignore line scoped to domain. The second return
// value is false for empty lines and comments.
func ParseRule(line string, domain []string) (Rule, bool) {
	trimmedLine := strings.TrimSpace(line)

	// Ignore empty lines and comments.
	if trimmedLine == "" || strings.HasPrefix(trimmedLine, "#") {
		return Rule{}, false
	}
	if trimmedLine == "!" {
		return Rule{}, false
	}

	return Rule{
		Line:    trimmedLine,
		Negate:  strings.HasPrefix(trimmedLine, "!"),
		Domain:  append([]string(nil), domain...),
		pattern: gitignore.ParsePattern(trimmedLine, domain),
	}, true
}

// Match reports how the rule applies to path, given as segments relative to
// the scan root.
func (r Rule) Match(path []string, isDir bool) Verdict {
	if r.pattern == nil {
		return NoMatch
	}
	switch r.pattern.Match(path, isDir) {
	case gitignore.Exclude:
		return Exclude
	case gitignore.Include:
		return Include
	default:
		return NoMatch
	}
}

// String returns the pattern prefixed with its origin, e.g. "sub/.gitignore:3: *.log".
func (r Rule) String() string {
	if r.Source == "" {
		return r.Line
	}
	if r.LineNo == 0 {
		return r.Source + ": " + r.Line
	}
	return r.Source + ":" + strconv.Itoa(r.LineNo) + ": " + r.Line
}

// Matches reports whether pattern matches relativePath. Negated patterns
// match the paths they would re-include. A malformed pattern matches nothing.
func Matches(relativePath, pattern string, isDir bool) bool {
	rule, ok := ParseRule(pattern, nil)
	if !ok {
		return false
	}
	return rule.Match(SplitPath(relativePath), isDir) != NoMatch
}

// SplitPath converts a relative path into slash-free segments. The root
// itself ("" or ".") yields no segments.
func SplitPath(relativePath string) []string {
	normalized := strings.Trim(filepath.ToSlash(relativePath), "/")
	if normalized == "" || normalized == "." {
		return nil
	}
	return strings.Split(normalized, "/")
}
