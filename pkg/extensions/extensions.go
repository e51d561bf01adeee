// Package extensions decides which files are eligible for output based on
// their extension.
package extensions

import (
	"path/filepath"
	"sort"
	"strings"
)

// defaultExtensions is the built-in table of source, markup, config and doc
// extensions. A few entries are full lowercased file names that have no
// extension of their own.
var defaultExtensions = [...]string{
	// scripting and backend
	"py", "pyw", "pyi", "rb", "php", "pl", "pm", "lua", "ex", "exs",
	// web and frontend
	"js", "jsx", "mjs", "cjs", "ts", "tsx", "vue", "svelte", "html", "css", "scss", "less",
	// systems and compiled
	"c", "h", "cpp", "hpp", "cc", "cxx", "cs", "go", "mod", "rs", "java", "kt", "scala", "swift", "dart",
	// shell and automation
	"sh", "bash", "zsh", "fish", "ps1", "bat", "makefile", "cmake",
	// config and data
	"json", "yaml", "yml", "toml", "xml", "ini", "sql", "graphql", "prisma", "proto",
	// docs
	"md", "txt", "rst", "dockerfile",
}

// Defaults returns a copy of the built-in extension table.
func Defaults() []string {
	out := make([]string, len(defaultExtensions))
	copy(out, defaultExtensions[:])
	return out
}

// Normalize lowercases values and strips surrounding whitespace and leading
// dots. Empty values are dropped; order is preserved and duplicates removed.
func Normalize(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimLeft(strings.TrimSpace(v), "."))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Ext returns the lowercased extension of name without the dot, or "" when
// there is none.
func Ext(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// Filter accepts or rejects files by extension.
type Filter struct {
	active map[string]struct{}
	skip   map[string]struct{}
}

// New builds a Filter. include replaces defaults when it is non-empty; skip
// is subtracted from whichever set is active.
func New(defaults, include, skip []string) *Filter {
	base := defaults
	if normalized := Normalize(include); len(normalized) > 0 {
		base = normalized
	}
	return &Filter{
		active: toSet(Normalize(base)),
		skip:   toSet(Normalize(skip)),
	}
}

// Accepts reports whether ext (case-insensitive, with or without a dot)
// passes the filter. Files without an extension are rejected.
func (f *Filter) Accepts(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return false
	}
	if _, skipped := f.skip[ext]; skipped {
		return false
	}
	_, ok := f.active[ext]
	return ok
}

// AcceptsName reports whether a file called name passes the filter, matching
// either its extension or its whole lowercased name (e.g. "Makefile").
func (f *Filter) AcceptsName(name string) bool {
	if f.Accepts(Ext(name)) {
		return true
	}
	lower := strings.ToLower(name)
	if _, skipped := f.skip[lower]; skipped {
		return false
	}
	if _, skipped := f.skip[Ext(name)]; skipped {
		return false
	}
	_, ok := f.active[lower]
	return ok
}

// Active returns the accepted entries in sorted order.
func (f *Filter) Active() []string {
	out := make([]string, 0, len(f.active))
	for ext := range f.active {
		if _, skipped := f.skip[ext]; !skipped {
			out = append(out, ext)
		}
	}
	sort.Strings(out)
	return out
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
