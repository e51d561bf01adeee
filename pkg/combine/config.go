// File: pkg/combine/config.go
package combine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"src2file/pkg/extensions"
)

// DefaultMaxFileSizeKB is the size above which files are skipped.
const DefaultMaxFileSizeKB = 350

// Arguments holds the raw options for a run, as collected from flags and the
// config file.
type Arguments struct {
	Root            string   // Directory to scan.
	Output          string   // Destination path for the combined output file; empty means "<basename(root)>.txt".
	Extensions      []string // Replaces the default extension set when non-empty.
	Skip            []string // Extensions subtracted from the active set.
	IgnorePatterns  []string // Additional ignore patterns with the highest precedence.
	Verbose         bool     // Per-file diagnostics.
	MaxFileSizeKB   int      // Maximum size (in KB) of files to include; 0 disables the limit.
	Hidden          bool     // Include entries whose name starts with a dot.
	NoGitignore     bool     // Do not read .gitignore files.
	NoDefaultIgnore bool     // Do not apply the built-in ignore patterns.
	NoTree          bool     // Omit the project structure section.
	Force           bool     // Overwrite the output file without asking.
}

// ScanConfig is the validated configuration of a run. It is built once by
// NewScanConfig and treated as read-only afterwards.
type ScanConfig struct {
	Root                string   // Absolute, cleaned directory to scan.
	ProjectName         string   // Base name of Root.
	OutputPath          string   // Absolute output file path.
	OutputRelPath       string   // Output path relative to Root (slash-separated), or "" if outside Root.
	DefaultExtensions   []string // Extension table used when IncludeExtensions is empty.
	IncludeExtensions   []string
	SkipExtensions      []string
	ExtraIgnorePatterns []string
	Verbose             bool
	MaxFileSizeKB       int
	IncludeHidden       bool
	UseGitignore        bool
	UseDefaultIgnores   bool
	IncludeTree         bool
	Force               bool
}

// NewScanConfig validates args and resolves paths. Any problem is reported as
// an ErrConfiguration.
func NewScanConfig(args Arguments) (ScanConfig, error) {
	if strings.TrimSpace(args.Root) == "" {
		return ScanConfig{}, fmt.Errorf("%w: root directory is required", ErrConfiguration)
	}

	root, err := filepath.Abs(args.Root)
	if err != nil {
		return ScanConfig{}, fmt.Errorf("%w: resolve root %q: %v", ErrConfiguration, args.Root, err)
	}
	root = filepath.Clean(root)

	info, err := os.Stat(root)
	if err != nil {
		return ScanConfig{}, fmt.Errorf("%w: directory %q not found: %v", ErrConfiguration, args.Root, err)
	}
	if !info.IsDir() {
		return ScanConfig{}, fmt.Errorf("%w: %q is not a directory", ErrConfiguration, args.Root)
	}

	if args.MaxFileSizeKB < 0 {
		return ScanConfig{}, fmt.Errorf("%w: max file size must not be negative, got %d", ErrConfiguration, args.MaxFileSizeKB)
	}

	projectName := projectNameFor(root)

	output := args.Output
	if strings.TrimSpace(output) == "" {
		output = projectName + ".txt"
	}
	outputPath, err := filepath.Abs(output)
	if err != nil {
		return ScanConfig{}, fmt.Errorf("%w: resolve output %q: %v", ErrConfiguration, output, err)
	}
	if info, err := os.Stat(outputPath); err == nil && info.IsDir() {
		return ScanConfig{}, fmt.Errorf("%w: output %q is a directory", ErrConfiguration, output)
	}

	return ScanConfig{
		Root:                root,
		ProjectName:         projectName,
		OutputPath:          outputPath,
		OutputRelPath:       relativeInside(root, outputPath),
		DefaultExtensions:   extensions.Defaults(),
		IncludeExtensions:   extensions.Normalize(args.Extensions),
		SkipExtensions:      extensions.Normalize(args.Skip),
		ExtraIgnorePatterns: cleanPatterns(args.IgnorePatterns),
		Verbose:             args.Verbose,
		MaxFileSizeKB:       args.MaxFileSizeKB,
		IncludeHidden:       args.Hidden,
		UseGitignore:        !args.NoGitignore,
		UseDefaultIgnores:   !args.NoDefaultIgnore,
		IncludeTree:         !args.NoTree,
		Force:               args.Force,
	}, nil
}

// SplitList splits a comma-separated flag value, trimming each element and
// dropping empty ones.
func SplitList(values ...string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func projectNameFor(root string) string {
	name := filepath.Base(root)
	if name == string(filepath.Separator) || name == "." || name == "" {
		return "root"
	}
	return name
}

// relativeInside returns target relative to root in slash form, or "" when
// target is not below root.
func relativeInside(root, target string) string {
	rel, err := filepath.Rel(root, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	return filepath.ToSlash(rel)
}

func cleanPatterns(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
