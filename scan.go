package ssg

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// siteScan is the immutable snapshot produced by traversal. Every later
// stage reads from it; nothing mutates it after scanTarget returns.
type siteScan struct {
	// Root is the absolute site root directory on disk.
	Root string
	// Pages are the discovered markup documents, in walk order.
	Pages []*Page
	// Assets are non-markup files to copy verbatim.
	Assets []Asset
	// Templates maps site-relative directories ("." for the root) to
	// the raw content of their template.html.
	Templates map[string]string
	Failures  []PageFailure
	Warnings  []string
}

// indexStems are the filenames (without extension) accepted as the
// default page of the site root.
const indexStem = "index"

// scanTarget enumerates the target and builds the page model.
// Unreadable files are recorded as failures and excluded; the scan
// continues for everything else.
func scanTarget(cfg Config) (*siteScan, error) {
	info, err := os.Stat(cfg.Target)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, cfg.Target)
	}

	if cfg.SingleFile {
		if info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrTargetIsDirectory, cfg.Target)
		}
		return scanSingleFile(cfg.Target)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrTargetIsFile, cfg.Target)
	}
	return scanDirectory(cfg.Target)
}

// scanDirectory walks the site root and classifies every file as a
// page, a directory template, or an asset.
func scanDirectory(root string) (*siteScan, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	scan := &siteScan{Root: absRoot, Templates: make(map[string]string)}

	walkErr := filepath.WalkDir(absRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Record and skip; a broken subtree must not abort the run.
			rel := relOrSelf(absRoot, p)
			scan.Failures = append(scan.Failures, PageFailure{Path: rel, Stage: StageScan, Err: err})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel := relOrSelf(absRoot, p)
		switch {
		case filepath.Base(p) == TemplateFileName:
			content, readErr := os.ReadFile(p) // #nosec G304 -- discovered path
			if readErr != nil {
				scan.Failures = append(scan.Failures, PageFailure{Path: rel, Stage: StageScan, Err: readErr})
				return nil
			}
			scan.Templates[dirOf(rel)] = string(content)
		default:
			if _, ok := KindForPath(rel); ok {
				page, readErr := loadPage(absRoot, rel)
				if readErr != nil {
					scan.Failures = append(scan.Failures, PageFailure{Path: rel, Stage: StageScan, Err: readErr})
					return nil
				}
				scan.Pages = append(scan.Pages, page)
			} else {
				scan.Assets = append(scan.Assets, Asset{SourcePath: rel})
			}
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	if !hasRootIndex(scan.Pages) {
		scan.Warnings = append(scan.Warnings,
			"index.{md|dj|djot} not found: consider creating one in the site root as the default page")
	}

	return scan, nil
}

// scanSingleFile builds a one-page site rooted at the file's directory.
// A template.html sitting next to the file still applies.
func scanSingleFile(target string) (*siteScan, error) {
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return nil, err
	}
	if _, ok := KindForPath(absTarget); !ok {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(absTarget))
	}

	root := filepath.Dir(absTarget)
	scan := &siteScan{Root: root, Templates: make(map[string]string)}

	rel := filepath.Base(absTarget)
	page, err := loadPage(root, rel)
	if err != nil {
		return nil, err
	}
	scan.Pages = append(scan.Pages, page)

	if content, readErr := os.ReadFile(filepath.Join(root, TemplateFileName)); readErr == nil {
		scan.Templates["."] = string(content)
	}

	return scan, nil
}

// loadPage reads one markup source and derives its page record.
func loadPage(root, rel string) (*Page, error) {
	raw, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel))) // #nosec G304 -- discovered path
	if err != nil {
		return nil, err
	}

	kind, _ := KindForPath(rel)
	return &Page{
		SourcePath: rel,
		OutputPath: htmlOutputPath(rel),
		Kind:       kind,
		Raw:        string(raw),
		Title:      deriveTitle(string(raw), rel),
	}, nil
}

// htmlOutputPath mirrors a source path with the markup extension
// replaced by .html.
func htmlOutputPath(rel string) string {
	ext := path.Ext(rel)
	return strings.TrimSuffix(rel, ext) + ".html"
}

// deriveTitle extracts the page title from raw markup: the first
// top-level heading, falling back to a title-cased filename stem.
func deriveTitle(raw, rel string) string {
	if h := firstHeading(raw); h != "" {
		return h
	}
	stem := strings.TrimSuffix(path.Base(rel), path.Ext(rel))
	return titleCase(stem)
}

// firstHeading returns the text of the first level-one heading, or "".
// A leading YAML frontmatter block is skipped.
func firstHeading(raw string) string {
	lines := strings.Split(raw, "\n")
	i := 0

	// Skip frontmatter delimited by --- lines.
	if len(lines) > 0 && strings.TrimSpace(lines[0]) == "---" {
		for i = 1; i < len(lines); i++ {
			if strings.TrimSpace(lines[i]) == "---" {
				i++
				break
			}
		}
	}

	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, "# ") {
			continue
		}
		title := strings.TrimSpace(strings.TrimPrefix(line, "# "))
		title = strings.TrimRight(title, "#")
		return strings.TrimSpace(title)
	}
	return ""
}

// titleCase converts a kebab-case or snake_case filename stem to
// Title Case: getting-started -> Getting Started.
func titleCase(s string) string {
	base := strings.ReplaceAll(s, "_", "-")
	parts := strings.Split(base, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// hasRootIndex reports whether any root-level page is named index.*.
func hasRootIndex(pages []*Page) bool {
	for _, p := range pages {
		if dirOf(p.SourcePath) != "." {
			continue
		}
		stem := strings.TrimSuffix(path.Base(p.SourcePath), path.Ext(p.SourcePath))
		if stem == indexStem {
			return true
		}
	}
	return false
}

// dirOf returns the slash-separated directory of a relative path,
// "." for the root.
func dirOf(rel string) string {
	return path.Dir(rel)
}

// relOrSelf converts an absolute path under root to a slash-separated
// relative path, or returns the input when it is not under root.
func relOrSelf(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return p
	}
	return filepath.ToSlash(rel)
}
