// File: pkg/combine/execute.go
package combine

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// checkOverwrite decides whether the output file may be written. Previous
// output of this tool and missing files are always fine; anything else needs
// --force or a confirmation.
func checkOverwrite(config ScanConfig, prompt Prompter, logger *zap.Logger) error {
	if _, err := os.Stat(config.OutputPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: stat output %s: %v", ErrConfiguration, config.OutputPath, err)
	}
	if config.Force || isCombinedOutput(config.OutputPath) {
		return nil
	}

	logger.Debug("Output file exists and was not produced by this tool", zap.String("file", config.OutputPath))
	if prompt == nil {
		return fmt.Errorf("%w: %s already exists and does not look like a src2file output; use --force to overwrite",
			ErrConfiguration, config.OutputPath)
	}

	ok, err := prompt(fmt.Sprintf("File '%s' already exists and doesn't look like a src2file output.\nOverwrite? [y/N]: ",
		config.OutputPath))
	if err != nil {
		return fmt.Errorf("%w: read confirmation: %v", ErrConfiguration, err)
	}
	if !ok {
		return ErrAborted
	}
	return nil
}

// isCombinedOutput reports whether the file at path starts with the project
// header written by RenderResult.Text.
func isCombinedOutput(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	buffer := make([]byte, len(projectPrefix))
	if _, err := io.ReadFull(file, buffer); err != nil {
		return false
	}
	return string(buffer) == projectPrefix
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}
