// Package config reads the optional per-project settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// FileName is the settings file looked up in the scan root.
const FileName = ".src2file.yaml"

// ErrInvalidFile reports a settings file that exists but cannot be used.
var ErrInvalidFile = errors.New("invalid config file")

// FileConfig holds the values of a settings file. Unset scalars are nil so
// callers can tell them apart from explicit false or zero values.
type FileConfig struct {
	Extensions    []string `mapstructure:"extensions"`
	Skip          []string `mapstructure:"skip"`
	Ignore        []string `mapstructure:"ignore"`
	MaxSizeKB     *int     `mapstructure:"max_size_kb"`
	Hidden        *bool    `mapstructure:"hidden"`
	Gitignore     *bool    `mapstructure:"gitignore"`
	DefaultIgnore *bool    `mapstructure:"default_ignore"`
	Tree          *bool    `mapstructure:"tree"`
}

// Load reads explicitPath when given, otherwise FileName inside root. A
// missing default file yields an empty FileConfig; a missing explicit file is
// an error. The returned path is the file that was read, or "" if none.
func Load(root, explicitPath string) (FileConfig, string, error) {
	path := explicitPath
	if path == "" {
		path = filepath.Join(root, FileName)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) && explicitPath == "" {
			return FileConfig{}, "", nil
		}
		return FileConfig{}, "", fmt.Errorf("%w: stat %s: %w", ErrInvalidFile, path, err)
	}
	if info.IsDir() {
		return FileConfig{}, "", fmt.Errorf("%w: %s is a directory", ErrInvalidFile, path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if explicitPath == "" {
		reader.SetConfigType("yaml")
	}
	if err := reader.ReadInConfig(); err != nil {
		return FileConfig{}, "", fmt.Errorf("%w: read %s: %w", ErrInvalidFile, path, err)
	}

	var cfg FileConfig
	if err := reader.Unmarshal(&cfg); err != nil {
		return FileConfig{}, "", fmt.Errorf("%w: decode %s: %w", ErrInvalidFile, path, err)
	}
	return cfg, path, nil
}
