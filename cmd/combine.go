package cmd

import (
	"errors"
	"fmt"
	"os"

	"src2file/pkg/combine"
	"src2file/pkg/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// stdinIsTerminal reports whether an overwrite can be confirmed interactively.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// combineOptions holds the flag values of the root command.
type combineOptions struct {
	output          string
	verbose         bool
	extensions      []string
	skip            []string
	ignore          []string
	maxSizeKB       int
	hidden          bool
	noGitignore     bool
	noDefaultIgnore bool
	noTree          bool
	force           bool
	configPath      string
}

func (o *combineOptions) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&o.output, "output", "o", "", `output file path (default "<root name>.txt")`)
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log every included and skipped file")
	flags.StringSliceVarP(&o.extensions, "extensions", "e", nil, "comma-separated extensions replacing the default set")
	flags.StringSliceVarP(&o.skip, "skip", "s", nil, "comma-separated extensions to leave out")
	flags.StringSliceVarP(&o.ignore, "ignore", "i", nil, "comma-separated gitignore-style patterns to exclude")
	flags.IntVar(&o.maxSizeKB, "max-size", combine.DefaultMaxFileSizeKB, "skip files larger than this many KB (0 disables the limit)")
	flags.BoolVar(&o.hidden, "hidden", false, "include files and directories whose name starts with a dot")
	flags.BoolVar(&o.noGitignore, "no-gitignore", false, "do not read .gitignore files")
	flags.BoolVar(&o.noDefaultIgnore, "no-default-ignore", false, "do not apply the built-in ignore patterns")
	flags.BoolVar(&o.noTree, "no-tree", false, "omit the project structure section")
	flags.BoolVarP(&o.force, "force", "f", false, "overwrite the output file without asking")
	flags.StringVar(&o.configPath, "config", "", "settings file (default <root>/"+config.FileName+")")
}

// arguments merges the settings file into the flag values. Flags set on the
// command line win; ignore patterns from the file come before those of -i.
func (o *combineOptions) arguments(root string, file config.FileConfig, changed func(name string) bool) combine.Arguments {
	args := combine.Arguments{
		Root:            root,
		Output:          o.output,
		Extensions:      o.extensions,
		Skip:            o.skip,
		IgnorePatterns:  append(combine.SplitList(file.Ignore...), o.ignore...),
		Verbose:         o.verbose,
		MaxFileSizeKB:   o.maxSizeKB,
		Hidden:          o.hidden,
		NoGitignore:     o.noGitignore,
		NoDefaultIgnore: o.noDefaultIgnore,
		NoTree:          o.noTree,
		Force:           o.force,
	}

	if !changed("extensions") && len(file.Extensions) > 0 {
		args.Extensions = combine.SplitList(file.Extensions...)
	}
	if !changed("skip") && len(file.Skip) > 0 {
		args.Skip = combine.SplitList(file.Skip...)
	}
	if !changed("max-size") && file.MaxSizeKB != nil {
		args.MaxFileSizeKB = *file.MaxSizeKB
	}
	if !changed("hidden") && file.Hidden != nil {
		args.Hidden = *file.Hidden
	}
	if !changed("no-gitignore") && file.Gitignore != nil {
		args.NoGitignore = !*file.Gitignore
	}
	if !changed("no-default-ignore") && file.DefaultIgnore != nil {
		args.NoDefaultIgnore = !*file.DefaultIgnore
	}
	if !changed("no-tree") && file.Tree != nil {
		args.NoTree = !*file.Tree
	}
	return args
}

func runCombine(cmd *cobra.Command, root string, opts *combineOptions, logger *zap.Logger, level zap.AtomicLevel) error {
	if opts.verbose {
		level.SetLevel(zap.DebugLevel)
	}

	fileConfig, configPath, err := config.Load(root, opts.configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", combine.ErrConfiguration, err)
	}
	if configPath != "" {
		logger.Debug("Loaded settings file", zap.String("file", configPath))
	}

	scanConfig, err := combine.NewScanConfig(opts.arguments(root, fileConfig, cmd.Flags().Changed))
	if err != nil {
		return err
	}

	var prompt combine.Prompter
	if stdinIsTerminal() {
		prompt = combine.NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
	}

	if _, err := combine.RunCombine(scanConfig, prompt, logger); err != nil {
		if errors.Is(err, combine.ErrAborted) {
			logger.Info("Output file left unchanged", zap.String("file", scanConfig.OutputPath))
			return nil
		}
		return err
	}
	return nil
}
