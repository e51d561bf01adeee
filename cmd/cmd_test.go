package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"src2file/pkg/combine"
	"src2file/pkg/config"
	"src2file/pkg/version"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	stdinIsTerminal = func() bool { return false }
	os.Exit(m.Run())
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		full := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
}

func execute(t *testing.T, logger *zap.Logger, level zap.AtomicLevel, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd := NewRootCommand(logger, level)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	err := rootCmd.Execute()
	return out.String(), err
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRootCommandCombines(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"a.go":       "package a\n",
		"b.md":       "# b\n",
		"tests/x.go": "package x\n",
	})
	output := filepath.Join(t.TempDir(), "out.txt")

	_, err := execute(t, nil, zap.NewAtomicLevel(), root, "-o", output, "-e", "go,md", "-i", "tests/*")
	require.NoError(t, err)

	text := readOutput(t, output)
	assert.Contains(t, text, "FILE: a.go\n")
	assert.Contains(t, text, "FILE: b.md\n")
	assert.NotContains(t, text, "FILE: tests/x.go")
	assert.Less(t, strings.Index(text, "FILE: a.go"), strings.Index(text, "FILE: b.md"))
}

func TestRootCommandVerboseLogsSkippedBinary(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.go": "package a\n", "blob.txt": "\x00\x01\x02"})

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	core, logs := observer.New(level)
	_, err := execute(t, zap.New(core), level, root, "-v", "-o", filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)

	assert.Equal(t, zap.DebugLevel, level.Level())
	skipped := logs.FilterMessage("Skipping binary file").All()
	require.Len(t, skipped, 1)
	assert.Equal(t, "blob.txt", skipped[0].ContextMap()["path"])
}

func TestRootCommandErrors(t *testing.T) {
	_, err := execute(t, nil, zap.NewAtomicLevel())
	assert.Error(t, err)

	_, err = execute(t, nil, zap.NewAtomicLevel(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, combine.ErrConfiguration)

	_, err = execute(t, nil, zap.NewAtomicLevel(), t.TempDir(), "--max-size", "-1")
	assert.ErrorIs(t, err, combine.ErrConfiguration)

	output := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(output, []byte("keep me"), 0o644))
	_, err = execute(t, nil, zap.NewAtomicLevel(), t.TempDir(), "-o", output)
	assert.ErrorIs(t, err, combine.ErrConfiguration)
	assert.Equal(t, "keep me", readOutput(t, output))

	_, err = execute(t, nil, zap.NewAtomicLevel(), t.TempDir(), "-o", output, "--force")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(readOutput(t, output), "Project: "))
}

func TestRootCommandReadsSettingsFile(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		config.FileName: "extensions: [go, md]\nignore: [\"gen/\"]\ntree: false\n",
		"a.go":          "package a\n",
		"b.md":          "# b\n",
		"gen/g.go":      "package gen\n",
		"c.py":          "print()\n",
	})
	output := filepath.Join(t.TempDir(), "out.txt")

	_, err := execute(t, nil, zap.NewAtomicLevel(), root, "-o", output)
	require.NoError(t, err)
	text := readOutput(t, output)
	assert.NotContains(t, text, "PROJECT STRUCTURE:")
	assert.Contains(t, text, "FILE: a.go")
	assert.Contains(t, text, "FILE: b.md")
	assert.NotContains(t, text, "FILE: c.py")
	assert.NotContains(t, text, "FILE: gen/g.go")

	_, err = execute(t, nil, zap.NewAtomicLevel(), root, "-o", output, "-e", "py", "--no-tree=false")
	require.NoError(t, err)
	text = readOutput(t, output)
	assert.Contains(t, text, "PROJECT STRUCTURE:")
	assert.Contains(t, text, "FILE: c.py")
	assert.NotContains(t, text, "FILE: a.go")
}

func TestRootCommandBadSettingsFile(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{config.FileName: "extensions: [go\n", "a.go": "package a\n"})

	_, err := execute(t, nil, zap.NewAtomicLevel(), root, "-o", filepath.Join(t.TempDir(), "out.txt"))
	assert.ErrorIs(t, err, combine.ErrConfiguration)
	assert.ErrorIs(t, err, config.ErrInvalidFile)
}

func TestArgumentsMerge(t *testing.T) {
	maxSize := 10
	yes, no := true, false
	file := config.FileConfig{
		Extensions:    []string{"go,md"},
		Skip:          []string{"md"},
		Ignore:        []string{"a/", "b/"},
		MaxSizeKB:     &maxSize,
		Hidden:        &yes,
		Gitignore:     &no,
		DefaultIgnore: &no,
		Tree:          &no,
	}

	opts := &combineOptions{maxSizeKB: combine.DefaultMaxFileSizeKB, ignore: []string{"c/"}}
	args := opts.arguments("root", file, func(string) bool { return false })
	assert.Equal(t, combine.Arguments{
		Root:            "root",
		Extensions:      []string{"go", "md"},
		Skip:            []string{"md"},
		IgnorePatterns:  []string{"a/", "b/", "c/"},
		MaxFileSizeKB:   10,
		Hidden:          true,
		NoGitignore:     true,
		NoDefaultIgnore: true,
		NoTree:          true,
	}, args)

	opts = &combineOptions{extensions: []string{"py"}, maxSizeKB: 5}
	changed := map[string]bool{"extensions": true, "max-size": true, "hidden": true}
	args = opts.arguments("root", file, func(name string) bool { return changed[name] })
	assert.Equal(t, []string{"py"}, args.Extensions)
	assert.Equal(t, 5, args.MaxFileSizeKB)
	assert.False(t, args.Hidden)
	assert.True(t, args.NoTree)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, nil, zap.NewAtomicLevel(), "version")
	require.NoError(t, err)
	assert.Equal(t, version.Get().String()+"\n", out)

	out, err = execute(t, nil, zap.NewAtomicLevel(), "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", out)
}
