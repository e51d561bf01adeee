package combine

import (
	"fmt"
	"os"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"go.uber.org/zap"
)

// RunCombine orchestrates a run. It checks that the output may be written,
// walks the root, renders the accepted files and writes the output file.
// prompt may be nil when no user is available to confirm an overwrite.
func RunCombine(config ScanConfig, prompt Prompter, logger *zap.Logger) (RenderResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()
	logger.Debug("Starting combination process", zap.String("directory", config.Root))

	if err := checkOverwrite(config, prompt, logger); err != nil {
		return RenderResult{}, err
	}

	fs := osfs.New(config.Root)

	records, err := NewWalker(fs, config, logger).Walk()
	if err != nil {
		return RenderResult{}, fmt.Errorf("failed to collect files: %w", err)
	}

	result := NewRenderer(fs, config, logger).Render(records)
	if result.FileCount() == 0 {
		logger.Info("No files matched the selection criteria", zap.String("directory", config.Root))
	}

	if err := WriteCombinedFile(config.OutputPath, result, logger); err != nil {
		return result, err
	}

	var size int64
	if info, err := os.Stat(config.OutputPath); err == nil {
		size = info.Size()
	}
	logger.Info("Saved combined output",
		zap.String("outputFile", config.OutputPath),
		zap.Int64("bytes", size),
		zap.Int("files", result.FileCount()),
		zap.Int("lines", result.TotalLines),
		zap.Int("skipped", len(result.Skipped)),
		zap.Duration("elapsed", time.Since(startTime)))
	return result, nil
}
