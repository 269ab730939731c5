package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// runFlags holds all flags for a generation run.
type runFlags struct {
	file      string // single-file mode target
	output    string
	clean     bool
	webPrefix string
	template  string
	minify    bool
	workers   int
	config    string
	quiet     bool
	verbose   bool
	version   bool
}

// parseFlags parses CLI arguments and returns the flags plus the
// remaining positional arguments (the target directory, if any).
func parseFlags(args []string) (*runFlags, []string, error) {
	flags := &runFlags{}

	fs := flag.NewFlagSet("ssg", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // errors are reported by the caller

	fs.StringVarP(&flags.file, "file", "f", "", "process a single file instead of a directory")
	fs.StringVarP(&flags.output, "output", "o", "", "output path (defaults to ./output for directories)")
	fs.BoolVar(&flags.clean, "clean", false, "clean the output directory before generating")
	fs.StringVar(&flags.webPrefix, "web-prefix", "", "website prefix for generated links (defaults to ./)")
	fs.StringVarP(&flags.template, "template", "t", "", "built-in template overriding any directory template.html")
	fs.BoolVar(&flags.minify, "minify", false, "minify generated HTML")
	fs.IntVar(&flags.workers, "workers", 0, "number of parallel workers (0 = auto)")
	fs.StringVar(&flags.config, "config", "", "path to a YAML config file")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress per-file output")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return flags, fs.Args(), nil
}
