// Package ssg generates a static HTML website from a directory tree of
// Markdown and Djot documents.
//
// # Quick Start
//
// Create a service and run one generation:
//
//	svc := ssg.New()
//	result, err := svc.Generate(ctx, ssg.Config{
//	    Target:    "./site",
//	    OutputDir: "./public",
//	    Clean:     true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range result.Failures {
//	    log.Println("skipped:", f)
//	}
//
// The result lists written pages, copied assets, page-scoped failures
// and warnings. Page failures never abort the run; the returned error
// is reserved for run-fatal conditions such as a failed output clean.
//
// # Generation Pipeline
//
// A run proceeds in dependency order:
//
//  1. Traversal: discover pages, per-directory template.html files and
//     verbatim assets under the target.
//  2. Conversion: Markdown via Goldmark, Djot via godjot, in parallel.
//  3. Table of contents: built once from the full converted page set.
//  4. Rendering: per-page template resolution, macro expansion, link
//     rewriting against the web prefix, optional minification.
//  5. Output: optional clean of the output root, then writes.
//
// # Templates
//
// A template.html in a directory governs every page under it unless a
// closer directory supplies its own. Templates are plain HTML carrying
// the macros <!-- {CONTENT} --> and <!-- {TABLE_OF_CONTENTS} -->.
// A built-in template selected via Config.BuiltinTemplate overrides
// every directory template for the whole run.
package ssg
