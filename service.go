package ssg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/alnah/go-ssg/internal/assets"
	"github.com/alnah/go-ssg/internal/markup"
)

// MaxWorkers caps the conversion and rendering worker groups.
const MaxWorkers = 32

// Minifier compacts a final HTML document before it is written.
type Minifier interface {
	Minify(doc []byte) ([]byte, error)
}

// Service orchestrates the site generation pipeline:
// scan -> convert -> table of contents -> render -> write.
type Service struct {
	markdown markup.Converter
	djot     markup.Converter
	minifier Minifier
	loader   assets.TemplateLoader
}

// Option configures a Service.
type Option func(*Service)

// WithMarkdownConverter replaces the Markdown converter (used by tests).
func WithMarkdownConverter(c markup.Converter) Option {
	return func(s *Service) { s.markdown = c }
}

// WithDjotConverter replaces the Djot converter (used by tests).
func WithDjotConverter(c markup.Converter) Option {
	return func(s *Service) { s.djot = c }
}

// WithTemplateLoader replaces the built-in template loader.
func WithTemplateLoader(l assets.TemplateLoader) Option {
	return func(s *Service) { s.loader = l }
}

// WithMinifier replaces the HTML minifier (used by tests).
func WithMinifier(m Minifier) Option {
	return func(s *Service) { s.minifier = m }
}

// New creates a Service with the default converters.
func New(opts ...Option) *Service {
	s := &Service{
		markdown: markup.NewMarkdownConverter(),
		djot:     markup.NewDjotConverter(),
		minifier: markup.NewMinifier(),
		loader:   assets.NewEmbeddedLoader(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate runs the full pipeline for one configuration and reports
// the aggregate outcome. Page-scoped failures are collected on the
// result; the returned error is reserved for run-fatal conditions
// (invalid configuration, unreadable target, failed output clean).
func (s *Service) Generate(ctx context.Context, cfg Config) (*GenerationResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// A selected built-in template overrides every directory-level
	// template.html unconditionally; resolve it before any work.
	var builtin string
	if cfg.BuiltinTemplate != "" {
		content, err := s.loader.LoadTemplate(cfg.BuiltinTemplate)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, cfg.BuiltinTemplate)
		}
		builtin = content
	}

	scan, err := scanTarget(cfg)
	if err != nil {
		return nil, err
	}

	result := &GenerationResult{
		Failures: scan.Failures,
		Warnings: scan.Warnings,
	}

	converted := s.convertPages(ctx, cfg, scan, result)

	// Barrier: the table of contents needs the complete, settled set of
	// converted pages, since every page's TOC macro expands to the same
	// fragment.
	toc := buildTOC(converted, cfg.webPrefix())

	docs := s.renderPages(ctx, cfg, scan, converted, builtin, toc, result)

	if err := writeSite(cfg, scan, docs, result); err != nil {
		return result, err
	}

	sort.Strings(result.Written)
	sort.Strings(result.CopiedAssets)
	return result, nil
}

// convertPages runs per-page markup conversion on a bounded worker
// group. Pages are independent until the TOC barrier, so conversion is
// embarrassingly parallel. Returns the successfully converted pages in
// deterministic (scan) order.
func (s *Service) convertPages(ctx context.Context, cfg Config, scan *siteScan, result *GenerationResult) []*Page {
	pages := scan.Pages
	if len(pages) == 0 {
		return nil
	}

	failures := make([]error, len(pages))

	jobs := make(chan int, len(pages))
	var wg sync.WaitGroup

	for w := 0; w < resolveWorkers(cfg.Workers, len(pages)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					failures[idx] = err
					continue
				}
				failures[idx] = s.convertPage(ctx, pages[idx])
			}
		}()
	}

	for i := range pages {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	converted := make([]*Page, 0, len(pages))
	for i, page := range pages {
		if failures[i] != nil {
			result.Failures = append(result.Failures, PageFailure{
				Path:  page.SourcePath,
				Stage: StageConvert,
				Err:   failures[i],
			})
			continue
		}
		converted = append(converted, page)
	}
	return converted
}

// convertPage attaches the converted fragment to a page. The page is
// mutated exactly once and is immutable afterwards.
func (s *Service) convertPage(ctx context.Context, page *Page) error {
	var conv markup.Converter
	switch page.Kind {
	case KindDjot:
		conv = s.djot
	default:
		conv = s.markdown
	}

	res, err := conv.Convert(ctx, page.Raw)
	if err != nil {
		return err
	}

	page.Fragment = res.HTML
	if res.Title != "" {
		// Frontmatter beats the heading and filename derivation.
		page.Title = res.Title
	}
	return nil
}

// renderPages resolves each converted page's template, expands macros,
// rewrites internal links against the web prefix and optionally
// minifies. Runs on a bounded worker group; the TOC fragment is shared
// read-only. Returns final documents keyed by output-relative path.
func (s *Service) renderPages(ctx context.Context, cfg Config, scan *siteScan, converted []*Page, builtin, toc string, result *GenerationResult) map[string][]byte {
	if len(converted) == 0 {
		return nil
	}

	exists := sourceExistsFunc(scan)
	prefix := cfg.webPrefix()

	type rendered struct {
		doc      []byte
		warnings []string
		err      error
	}
	outcomes := make([]rendered, len(converted))

	jobs := make(chan int, len(converted))
	var wg sync.WaitGroup

	for w := 0; w < resolveWorkers(cfg.Workers, len(converted)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					outcomes[idx] = rendered{err: err}
					continue
				}
				page := converted[idx]

				template := builtin
				if template == "" {
					template = resolveTemplate(dirOf(page.SourcePath), scan.Templates)
				}

				doc := expandMacros(template, page.Fragment, toc)

				doc, warnings, err := markup.RewriteLinks(doc, markup.RewriteOptions{
					Prefix:  prefix,
					PageDir: dirOf(page.SourcePath),
					Exists:  exists,
				})
				if err != nil {
					outcomes[idx] = rendered{err: err}
					continue
				}

				out := []byte(doc)
				if cfg.Minify {
					compact, minErr := s.minifier.Minify(out)
					if minErr != nil {
						// The unminified document is still valid output;
						// surface the fallback instead of hiding it.
						warnings = append(warnings, "minify "+page.OutputPath+": writing unminified: "+minErr.Error())
					} else {
						out = compact
					}
				}
				outcomes[idx] = rendered{doc: out, warnings: warnings}
			}
		}()
	}

	for i := range converted {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	docs := make(map[string][]byte, len(converted))
	for i, page := range converted {
		o := outcomes[i]
		if o.err != nil {
			result.Failures = append(result.Failures, PageFailure{
				Path:  page.SourcePath,
				Stage: StageRender,
				Err:   o.err,
			})
			continue
		}
		docs[page.OutputPath] = o.doc
		result.Warnings = append(result.Warnings, o.warnings...)
	}
	return docs
}

// sourceExistsFunc builds a broken-link probe over the scanned source
// set, falling back to the filesystem for files the scan skipped.
func sourceExistsFunc(scan *siteScan) func(string) bool {
	known := make(map[string]bool, len(scan.Pages)+len(scan.Assets))
	for _, p := range scan.Pages {
		known[p.SourcePath] = true
	}
	for _, a := range scan.Assets {
		known[a.SourcePath] = true
	}
	return func(rel string) bool {
		if known[rel] {
			return true
		}
		_, err := os.Stat(filepath.Join(scan.Root, filepath.FromSlash(rel)))
		return err == nil
	}
}

// resolveWorkers determines the worker group size.
// Priority: explicit configuration > GOMAXPROCS-based calculation,
// never more workers than jobs.
func resolveWorkers(configured, jobs int) int {
	n := configured
	if n <= 0 {
		n = runtime.GOMAXPROCS(0) / 2
		if n < 1 {
			n = 1
		}
		if n > 8 {
			n = 8
		}
	}
	if n > jobs {
		n = jobs
	}
	if n < 1 {
		n = 1
	}
	return n
}
