package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	ssg "github.com/alnah/go-ssg"
	"github.com/alnah/go-ssg/internal/config"
	"github.com/alnah/go-ssg/internal/hints"
)

// Sentinel errors for CLI argument validation.
var (
	ErrNoTarget           = errors.New("must specify either a directory or a file with -f")
	ErrConflictingTargets = errors.New("cannot specify both a directory and -f")
	ErrCleanSingleFile    = errors.New("--clean cannot be used with -f")
)

// run parses arguments, merges configuration and executes one
// generation, reporting results on the provided writers.
func run(args []string, svc *ssg.Service, stdout, stderr io.Writer) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Fprintf(stdout, "ssg %s\n", Version)
		return nil
	}

	cfg, err := buildConfig(flags, positional)
	if err != nil {
		return err
	}

	if flags.verbose {
		fmt.Fprintf(stderr, "Generating site from %s into %s\n", cfg.Target, outputLabel(cfg))
	}

	result, err := svc.Generate(context.Background(), cfg)
	if result != nil {
		printResult(result, flags, stdout, stderr)
	}
	if err != nil {
		return err
	}

	if !result.Usable() {
		if len(result.Failures) == 0 {
			return fmt.Errorf("%w: no markup files found in %s%s", ssg.ErrNoOutput, cfg.Target, hints.ForNoPages())
		}
		return fmt.Errorf("%w: every page failed", ssg.ErrNoOutput)
	}
	return nil
}

// buildConfig merges the config file and CLI flags into a run
// configuration. Flags win over file values.
func buildConfig(flags *runFlags, positional []string) (ssg.Config, error) {
	fileCfg := config.DefaultConfig()

	switch {
	case flags.config != "":
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return ssg.Config{}, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths()))
			}
			return ssg.Config{}, err
		}
		fileCfg = loaded
	default:
		if path := config.Discover(); path != "" {
			loaded, err := config.LoadConfig(path)
			if err != nil {
				return ssg.Config{}, err
			}
			fileCfg = loaded
		}
	}

	cfg := ssg.Config{
		Target:          fileCfg.Target,
		SingleFile:      fileCfg.File,
		OutputDir:       fileCfg.Output,
		Clean:           fileCfg.Clean,
		WebPrefix:       fileCfg.WebPrefix,
		BuiltinTemplate: fileCfg.Template,
		Minify:          fileCfg.Minify,
		Workers:         fileCfg.Workers,
	}

	// Target resolution: positional directory or -f file, never both.
	var dir string
	if len(positional) > 0 {
		dir = positional[0]
	}
	switch {
	case dir != "" && flags.file != "":
		return ssg.Config{}, fmt.Errorf("%w (specified %s and -f %s)", ErrConflictingTargets, dir, flags.file)
	case dir != "":
		cfg.Target = dir
		cfg.SingleFile = false
	case flags.file != "":
		cfg.Target = flags.file
		cfg.SingleFile = true
	}
	if cfg.Target == "" {
		return ssg.Config{}, ErrNoTarget
	}
	if cfg.SingleFile && flags.clean {
		return ssg.Config{}, ErrCleanSingleFile
	}

	if flags.output != "" {
		cfg.OutputDir = flags.output
	}
	if flags.webPrefix != "" {
		cfg.WebPrefix = flags.webPrefix
	}
	if flags.template != "" {
		cfg.BuiltinTemplate = flags.template
	}
	if flags.clean {
		cfg.Clean = true
	}
	if flags.minify {
		cfg.Minify = true
	}
	if flags.workers != 0 {
		cfg.Workers = flags.workers
	}
	return cfg, nil
}

// printResult reports the outcome of a run: failures and warnings on
// stderr, written files on stdout unless quiet.
func printResult(result *ssg.GenerationResult, flags *runFlags, stdout, stderr io.Writer) {
	for _, f := range result.Failures {
		fmt.Fprintf(stderr, "FAILED %s\n", f)
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(stderr, "WARNING %s\n", w)
	}

	if flags.quiet {
		return
	}

	for _, path := range result.Written {
		fmt.Fprintf(stdout, "Created %s\n", path)
	}
	if flags.verbose {
		for _, path := range result.CopiedAssets {
			fmt.Fprintf(stdout, "Copied %s\n", path)
		}
	}

	total := len(result.Written) + len(result.CopiedAssets)
	if total > 1 || len(result.Failures) > 0 {
		fmt.Fprintf(stdout, "\n%d written, %d copied, %d failed\n",
			len(result.Written), len(result.CopiedAssets), len(result.Failures))
	}
}

// outputLabel names the effective output root for verbose logging.
func outputLabel(cfg ssg.Config) string {
	if cfg.OutputDir != "" {
		return cfg.OutputDir
	}
	if cfg.SingleFile {
		return "."
	}
	return ssg.DefaultOutputDir
}
