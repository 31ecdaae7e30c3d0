// Command cxxref drives the extraction pipeline end to end: load a
// compilation database, run one Extractor per translation unit, merge the
// resulting Corpus, and render it to one of the documented output
// formats.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/corpusdoc/cxxref/internal/compiledb"
	"github.com/corpusdoc/cxxref/internal/config"
	"github.com/corpusdoc/cxxref/internal/corpuserr"
	"github.com/corpusdoc/cxxref/internal/frontend"
	"github.com/corpusdoc/cxxref/internal/pipeline"
	"github.com/corpusdoc/cxxref/internal/render"
)

// Exit codes: 0 success, non-zero on unrecoverable error. The core
// returns structured errors (corpuserr); this is where they are mapped
// to a process exit status.
const (
	exitOK                = 0
	exitConfigError       = 2
	exitInputError        = 3
	exitExtractionFailure = 4
)

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		return exitCodeFor(err)
	}
	return exitOK
}

func exitCodeFor(err error) int {
	var cfgErr *corpuserr.ConfigError
	var inputErr *corpuserr.InputError
	switch {
	case errors.As(err, &cfgErr):
		return exitConfigError
	case errors.As(err, &inputErr):
		return exitInputError
	default:
		return exitExtractionFailure
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cxxref",
		Short:         "Extract a language-neutral symbol corpus from a C++ compilation database",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(newExtractCommand())
	return cmd
}

func newExtractCommand() *cobra.Command {
	var (
		configPath string
		compileDB  string
		outputPath string
		format     string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract a Corpus from a compile_commands.json and render it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd.Context(), extractOptions{
				configPath: configPath,
				compileDB:  compileDB,
				outputPath: outputPath,
				format:     format,
				verbose:    verbose,
			})
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&compileDB, "compile-db", "compile_commands.json", "path to the compilation database")
	cmd.Flags().StringVar(&outputPath, "output", "-", "output file path, or \"-\" for stdout")
	cmd.Flags().StringVar(&format, "format", "xml", "output format: xml, tagfile, asciidoc, or html")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug-level logging")

	return cmd
}

type extractOptions struct {
	configPath string
	compileDB  string
	outputPath string
	format     string
	verbose    bool
}

func runExtract(ctx context.Context, opts extractOptions) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return &corpuserr.ConfigError{Msg: "constructing logger", Err: err}
	}
	defer logger.Sync() //nolint:errcheck

	cfg := config.Default()
	if opts.configPath != "" {
		loaded, loadErr := config.Load(opts.configPath)
		var unknown *config.UnknownKeyError
		if loadErr != nil && !errors.As(loadErr, &unknown) {
			return &corpuserr.ConfigError{Msg: "loading config", Err: loadErr}
		}
		if unknown != nil {
			logger.Warn("config has unrecognised keys", zap.Strings("keys", unknown.Keys))
		}
		cfg = loaded
	}

	backend, ok := render.Backends[opts.format]
	if !ok {
		return &corpuserr.ConfigError{Msg: fmt.Sprintf("unknown output format %q", opts.format)}
	}

	db := &compiledb.File{Path: opts.compileDB}

	adjust := compiledb.AdjustOptions{
		Defines:         cfg.Defines,
		Includes:        cfg.Includes,
		SilenceWarnings: true,
	}

	result, err := pipeline.Run(ctx, cfg, db, frontend.Stub{}, adjust, logger)
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		logger.Warn(w.Error())
	}

	out := os.Stdout
	if opts.outputPath != "-" {
		f, createErr := os.Create(opts.outputPath)
		if createErr != nil {
			return &corpuserr.InputError{Msg: "creating output file", Err: createErr}
		}
		defer f.Close()
		out = f
	}
	return backend.Render(out, result.Corpus)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}
