package ssg

import (
	"fmt"
	"path"
	"strings"
)

// MarkupKind identifies the lightweight markup syntax of a source file.
type MarkupKind string

// Recognized markup kinds.
const (
	KindMarkdown MarkupKind = "markdown"
	KindDjot     MarkupKind = "djot"
)

// markupExtensions maps recognized source extensions to markup kinds.
// Anything else found during traversal is treated as an asset and
// copied verbatim.
var markupExtensions = map[string]MarkupKind{
	".md":       KindMarkdown,
	".markdown": KindMarkdown,
	".dj":       KindDjot,
	".djot":     KindDjot,
}

// TemplateFileName is the per-directory template override file.
const TemplateFileName = "template.html"

// DefaultOutputDir is the output root used in directory mode when no
// explicit output path is configured.
const DefaultOutputDir = "output"

// DefaultWebPrefix is the link prefix used when none is configured.
// It keeps generated links purely relative and filesystem-mirroring.
const DefaultWebPrefix = "./"

// KindForPath returns the markup kind for a file path and whether the
// path has a recognized markup extension.
func KindForPath(p string) (MarkupKind, bool) {
	kind, ok := markupExtensions[strings.ToLower(path.Ext(p))]
	return kind, ok
}

// Page is one markup document discovered under the site root.
// SourcePath and OutputPath are relative to the site root and
// slash-separated. Fragment is empty until conversion succeeds.
type Page struct {
	SourcePath string
	OutputPath string
	Kind       MarkupKind
	Raw        string
	Title      string
	Fragment   string
}

// Asset is a non-markup file copied verbatim to the output tree.
type Asset struct {
	SourcePath string // relative to the site root, slash-separated
}

// Config holds process-scoped settings for one generation run.
// It is immutable for the duration of the run.
type Config struct {
	// Target is the site root directory, or a single markup file when
	// SingleFile is set.
	Target string

	// SingleFile processes one file instead of a directory tree.
	SingleFile bool

	// OutputDir is the output root. Empty means DefaultOutputDir under
	// the working directory (directory mode) or the working directory
	// itself (single-file mode).
	OutputDir string

	// Clean removes the output root before any write.
	Clean bool

	// WebPrefix is prepended to every generated internal link.
	// Empty means DefaultWebPrefix.
	WebPrefix string

	// BuiltinTemplate selects an embedded template by name, overriding
	// every directory-level template.html for the whole run.
	// Empty defers to directory templates.
	BuiltinTemplate string

	// Minify passes final HTML through an HTML minifier before writing.
	Minify bool

	// Workers bounds the conversion and rendering worker groups.
	// Zero selects an automatic size.
	Workers int
}

// Validate checks configuration invariants that do not require I/O.
func (c *Config) Validate() error {
	if c.Target == "" {
		return ErrNoTarget
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, c.Workers)
	}
	if c.Workers > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, c.Workers, MaxWorkers)
	}
	return nil
}

// webPrefix returns the effective link prefix.
func (c *Config) webPrefix() string {
	if c.WebPrefix == "" {
		return DefaultWebPrefix
	}
	return c.WebPrefix
}

// Stage names a pipeline stage for failure reporting.
type Stage string

// Pipeline stages that can record per-page failures.
const (
	StageScan    Stage = "scan"
	StageConvert Stage = "convert"
	StageRender  Stage = "render"
	StageWrite   Stage = "write"
)

// PageFailure records one page-scoped, non-fatal failure.
type PageFailure struct {
	Path  string // source path relative to the site root
	Stage Stage
	Err   error
}

func (f PageFailure) String() string {
	return fmt.Sprintf("%s [%s]: %v", f.Path, f.Stage, f.Err)
}

// GenerationResult is the aggregate outcome of one run.
type GenerationResult struct {
	// Written lists output-relative paths of generated HTML files.
	Written []string
	// CopiedAssets lists output-relative paths of verbatim copies.
	CopiedAssets []string
	// Failures lists page-scoped failures; the run continued past them.
	Failures []PageFailure
	// Warnings lists non-fatal diagnostics (missing index page,
	// links to files that do not exist under the site root).
	Warnings []string
}

// Usable reports whether the run produced at least one output file.
func (r *GenerationResult) Usable() bool {
	return len(r.Written) > 0 || len(r.CopiedAssets) > 0
}
