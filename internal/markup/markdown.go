package markup

import (
	"bytes"
	"context"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// MarkdownConverter converts Markdown to HTML fragments using goldmark.
type MarkdownConverter struct {
	md goldmark.Markdown
}

// NewMarkdownConverter creates a converter with GFM extensions, syntax
// highlighting and YAML frontmatter support. Frontmatter is stripped
// from the output; its title field is surfaced on the Result.
func NewMarkdownConverter() *MarkdownConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			meta.Meta,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes instead of inline styles
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// Site sources are trusted local files; raw HTML blocks in
			// pages must survive conversion.
			html.WithUnsafe(),
		),
	)
	return &MarkdownConverter{md: md}
}

// Compile-time interface check.
var _ Converter = (*MarkdownConverter)(nil)

// Convert renders Markdown to an HTML fragment. Supports context
// cancellation via goroutine + select since goldmark doesn't natively
// take a context.
func (c *MarkdownConverter) Convert(ctx context.Context, src string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	type outcome struct {
		res Result
		err error
	}

	done := make(chan outcome, 1)

	go func() {
		pctx := parser.NewContext()
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(src), &buf, parser.WithContext(pctx)); err != nil {
			done <- outcome{err: &ParseError{Message: err.Error()}}
			return
		}
		res := Result{HTML: buf.String()}
		if data := meta.Get(pctx); data != nil {
			if title, ok := data["title"].(string); ok {
				res.Title = title
			}
		}
		done <- outcome{res: res}
	}()

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case o := <-done:
		return o.res, o.err
	}
}
