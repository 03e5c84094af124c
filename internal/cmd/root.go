package cmd

import (
	"context"
	"errors"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/dendrascience/extract/internal/extract"
	"github.com/dendrascience/extract/internal/sniff"
	"github.com/dendrascience/extract/version"
)

type rootFlags struct {
	Recursive  bool
	Verbose    bool
	Debug      bool
	ConfigPath string

	GunzipOpts     string
	Bunzip2Opts    string
	UnzipOpts      string
	UncompressOpts string
}

// Execute runs the root command and returns the process exit code: 0 when
// every reachable, supported, compressed file was decompressed, otherwise
// the count of files not decompressed. Usage errors exit with ExitUsage
// before any file is touched.
func Execute() int {
	code := ExitOK
	root := NewRootCmd(&code)
	if err := fang.Execute(context.Background(), root); err != nil {
		return ExitUsage
	}
	return code
}

// NewRootCmd creates the root cobra command. The run's exit code is written
// through exitCode; command errors (bad flags, no operands) surface as
// ordinary cobra errors and map to ExitUsage in Execute.
func NewRootCmd(exitCode *int) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "extract [flags] file [file...]",
		Short: "Decompress files in place by true content type",
		Long: `extract inspects each operand's content to determine its real compression
format, ignoring the filename extension, and decompresses it in place with
the matching tool (gunzip, bunzip2, unzip, uncompress). Directories are
skipped unless -r is given; files reachable through several operands are
only processed once.

The exit status is the number of files NOT decompressed: failures,
unsupported or already-plain-text files, and directories skipped without
-r. Zero means everything reachable was decompressed.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return errors.New("no files provided")
			}

			cfg, err := buildConfig(cmd.Flags().Changed, flags)
			if err != nil {
				return err
			}

			x := extract.New(cfg, sniff.FileCommand{}, cmd.OutOrStdout(), cmd.ErrOrStderr())
			report := x.Run(args)
			if exitCode != nil {
				*exitCode = report.ExitCode()
			}
			return nil
		},
	}

	root.Flags().BoolVarP(&flags.Recursive, "recursive", "r", false, "descend into directory operands")
	root.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "print a line for each file decompressed")
	root.Flags().BoolVarP(&flags.Debug, "debug", "x", false, "write a debug trace to stderr")
	root.Flags().StringVar(&flags.ConfigPath, "config", "", "YAML file with default flags and tool options")
	root.Flags().StringVar(&flags.GunzipOpts, "gunzip-opts", "", "extra options passed to gunzip")
	root.Flags().StringVar(&flags.Bunzip2Opts, "bunzip2-opts", "", "extra options passed to bunzip2")
	root.Flags().StringVar(&flags.UnzipOpts, "unzip-opts", "", "extra options passed to unzip")
	root.Flags().StringVar(&flags.UncompressOpts, "compress-opts", "", "extra options passed to uncompress")

	return root
}

// buildConfig merges the optional config file with the command-line flags.
// Flags given on the command line win over file values; changed reports
// whether a named flag was set explicitly.
func buildConfig(changed func(string) bool, flags *rootFlags) (extract.Config, error) {
	cfg := extract.Config{ToolOpts: map[string]string{}}

	if flags.ConfigPath != "" {
		fc, err := loadConfigFile(flags.ConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg.Recursive = fc.Recursive
		cfg.Verbose = fc.Verbose
		cfg.Debug = fc.Debug
		for method, opts := range fc.Options {
			cfg.ToolOpts[method] = opts
		}
	}

	if flags.Recursive {
		cfg.Recursive = true
	}
	if flags.Verbose {
		cfg.Verbose = true
	}
	if flags.Debug {
		cfg.Debug = true
	}

	override := map[string]string{
		"gunzip-opts":   "gunzip",
		"bunzip2-opts":  "bunzip2",
		"unzip-opts":    "unzip",
		"compress-opts": "uncompress",
	}
	values := map[string]string{
		"gunzip-opts":   flags.GunzipOpts,
		"bunzip2-opts":  flags.Bunzip2Opts,
		"unzip-opts":    flags.UnzipOpts,
		"compress-opts": flags.UncompressOpts,
	}
	for flagName, method := range override {
		if changed(flagName) {
			cfg.ToolOpts[method] = values[flagName]
		}
	}

	return cfg, nil
}
