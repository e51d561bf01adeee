// File: pkg/combine/traversal.go
package combine

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"src2file/pkg/extensions"
	"src2file/pkg/ignore"

	"github.com/go-git/go-billy/v5"
	"go.uber.org/zap"
)

// ExtraIgnoreSource labels rules that come from the command line.
const ExtraIgnoreSource = "--ignore"

// Walker traverses the scan root and selects files for output.
type Walker struct {
	fs     billy.Filesystem
	config ScanConfig
	filter *extensions.Filter
	loader *ignore.Loader
	self   ignore.Stack
	extra  ignore.RuleSet
	logger *zap.Logger
}

// NewWalker creates a Walker over fs, which must be rooted at config.Root.
func NewWalker(fs billy.Filesystem, config ScanConfig, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{
		fs:     fs,
		config: config,
		filter: extensions.New(config.DefaultExtensions, config.IncludeExtensions, config.SkipExtensions),
		loader: ignore.NewLoader(fs, logger),
		self:   ignore.Stack{}.Push(ignore.SelfIgnore(config.OutputRelPath)),
		extra:  ignore.FromPatterns(ExtraIgnoreSource, config.ExtraIgnorePatterns),
		logger: logger,
	}
}

// Walk returns the accepted files in depth-first order, entries of each
// directory visited in lexical order. Unreadable subdirectories are logged
// and skipped; only an unreadable root is an error.
func (w *Walker) Walk() ([]FileRecord, error) {
	w.logger.Debug("Starting file traversal",
		zap.String("root", w.config.Root),
		zap.Strings("extensions", w.filter.Active()),
		zap.Strings("ignorePatterns", w.config.ExtraIgnorePatterns))

	var base ignore.Stack
	if w.config.UseDefaultIgnores {
		base = base.Push(ignore.DefaultRules())
	}

	var records []FileRecord
	if err := w.walkDir("", base, &records); err != nil {
		return nil, err
	}

	w.logger.Debug("Completed file traversal", zap.Int("acceptedFiles", len(records)))
	return records, nil
}

// walkDir visits dir, a slash-separated path relative to the root. inherited
// holds the rules of all ancestor directories.
func (w *Walker) walkDir(dir string, inherited ignore.Stack, records *[]FileRecord) error {
	entries, err := w.fs.ReadDir(fsPath(w.fs, dir))
	if err != nil {
		if dir == "" {
			return fmt.Errorf("%w: read root directory: %v", ErrConfiguration, err)
		}
		w.logger.Warn("Skipping unreadable directory", zap.String("directory", dir), zap.Error(err))
		return nil
	}

	scoped := inherited
	if w.config.UseGitignore {
		rules, err := w.loader.LoadRules(dir)
		if err != nil {
			w.logger.Warn("Failed to load ignore file", zap.String("directory", dir), zap.Error(err))
		}
		scoped = inherited.Push(rules)
	}
	active := scoped.Push(w.extra)

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		name := entry.Name()
		relPath := path.Join(dir, name)

		if !w.config.IncludeHidden && strings.HasPrefix(name, ".") {
			w.logger.Debug("Skipping hidden entry", zap.String("path", relPath))
			continue
		}
		if entry.Mode()&os.ModeSymlink != 0 {
			w.logger.Debug("Skipping symlink", zap.String("path", relPath))
			continue
		}

		isDir := entry.IsDir()
		if w.isIgnored(relPath, isDir, active) {
			continue
		}

		if isDir {
			if err := w.walkDir(relPath, scoped, records); err != nil {
				return err
			}
			continue
		}

		if !entry.Mode().IsRegular() {
			w.logger.Debug("Skipping non-regular file", zap.String("path", relPath))
			continue
		}
		if !w.filter.AcceptsName(name) {
			w.logger.Debug("Skipping file with unlisted extension", zap.String("path", relPath))
			continue
		}
		if limit := int64(w.config.MaxFileSizeKB) * 1024; limit > 0 && entry.Size() > limit {
			w.logger.Debug("Skipping file due to size limit",
				zap.String("path", relPath),
				zap.Int64("sizeBytes", entry.Size()),
				zap.Int("maxSizeKB", w.config.MaxFileSizeKB))
			continue
		}

		*records = append(*records, FileRecord{
			RelPath: relPath,
			AbsPath: filepath.Join(w.config.Root, filepath.FromSlash(relPath)),
			Ext:     extensions.Ext(name),
			Size:    entry.Size(),
		})
	}
	return nil
}

// isIgnored checks the self-ignore rules, which no pattern can negate, and
// then the layered rules of the current directory.
func (w *Walker) isIgnored(relPath string, isDir bool, active ignore.Stack) bool {
	if ignored, rule := w.self.MatchesPathWithRule(relPath, isDir); ignored {
		w.logger.Debug("Skipping path matching built-in rule",
			zap.String("path", relPath), zap.Stringer("rule", rule))
		return true
	}
	ignored, rule := active.MatchesPathWithRule(relPath, isDir)
	if ignored {
		w.logger.Debug("Skipping path matching ignore pattern",
			zap.String("path", relPath), zap.Stringer("rule", rule))
	}
	return ignored
}
