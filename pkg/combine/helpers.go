// File: pkg/combine/helpers.go
package combine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Prompter asks the user a yes/no question and reports the answer.
type Prompter func(message string) (bool, error)

// NewPrompter returns a Prompter that writes questions to out and reads
// answers from in.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	reader := bufio.NewReader(in)
	return func(message string) (bool, error) {
		return promptUser(reader, out, message)
	}
}

// promptUser displays a message and waits for the user to enter 'y' or 'n'.
// Returns true if the user enters 'y' or 'yes' (case-insensitive), false otherwise.
func promptUser(reader *bufio.Reader, out io.Writer, message string) (bool, error) {
	if _, err := fmt.Fprint(out, message); err != nil {
		return false, err
	}
	response, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// WriteCombinedFile writes the rendered output to outputPath. The content
// goes to a temporary file next to the target, which replaces the target only
// after everything was written.
func WriteCombinedFile(outputPath string, result RenderResult, logger *zap.Logger) (err error) {
	logger.Debug("Writing combined content to output file", zap.String("combinedFile", outputPath))

	dir := filepath.Dir(outputPath)
	if err := ensureDirectory(dir, logger); err != nil {
		return fmt.Errorf("%w: create output directory: %w", ErrOutputWrite, err)
	}

	outFile, err := os.CreateTemp(dir, "."+filepath.Base(outputPath)+".*.tmp")
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("%w: create output file: %w", ErrOutputWrite, err)
	}
	tmpPath := outFile.Name()
	defer func() {
		if err != nil {
			if removeErr := os.Remove(tmpPath); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
				logger.Warn("Failed to remove temporary file", zap.String("file", tmpPath), zap.Error(removeErr))
			}
		}
	}()

	writer := bufio.NewWriter(outFile)
	_, writeErr := result.WriteTo(writer)
	if writeErr == nil {
		writeErr = writer.Flush()
	}
	if writeErr = multierr.Append(writeErr, outFile.Close()); writeErr != nil {
		logger.Error("Failed to write combined file", zap.String("file", outputPath), zap.Error(writeErr))
		return fmt.Errorf("%w: write %s: %w", ErrOutputWrite, outputPath, writeErr)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("%w: set permissions on %s: %w", ErrOutputWrite, outputPath, err)
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		logger.Error("Failed to move output into place", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("%w: replace %s: %w", ErrOutputWrite, outputPath, err)
	}
	return nil
}
