package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCommand builds the src2file command. level is raised to Debug when
// --verbose is given.
func NewRootCommand(logger *zap.Logger, level zap.AtomicLevel) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := &combineOptions{}

	rootCmd := &cobra.Command{
		Use:   "src2file <root>",
		Short: "Combine the source files of a project into one text file",
		Long: `src2file walks a directory, selects source files by extension and ignore rules
(.gitignore files, built-in defaults and --ignore patterns) and concatenates them
with path headers into a single text file, ready to paste into a prompt.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runCombine(cmd, args[0], opts, logger, level)
		},
	}
	opts.register(rootCmd)
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

// Execute runs the command line with os.Args.
func Execute(logger *zap.Logger, level zap.AtomicLevel) error {
	return NewRootCommand(logger, level).Execute()
}
