package main

import (
	"fmt"
	"os"
	"strings"

	"src2file/cmd"
	"src2file/pkg/logging"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	logger, level, err := logging.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "src2file: cannot set up logging: %v\n", err)
		os.Exit(1)
	}

	if runErr := cmd.Execute(logger, level); runErr != nil {
		logger.Fatal("src2file failed", zap.Error(runErr))
	}
	flushLogs(logger)
}

// flushLogs syncs the logger when stderr supports it. Pipes and character
// devices reject fsync with "invalid argument", which is not worth reporting.
func flushLogs(logger *zap.Logger) {
	fd := int(os.Stderr.Fd())
	if !term.IsTerminal(fd) && !stderrIsRegularFile() {
		return
	}
	if err := logger.Sync(); err != nil && !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
		fmt.Fprintf(os.Stderr, "src2file: flushing logs: %v\n", err)
	}
}

func stderrIsRegularFile() bool {
	info, err := os.Stderr.Stat()
	return err == nil && info.Mode().IsRegular()
}
