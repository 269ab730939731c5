package markup

import (
	"context"
	"fmt"

	"github.com/sivukhin/godjot/djot_parser"
	"github.com/sivukhin/godjot/html_writer"
)

// DjotConverter converts Djot to HTML fragments using godjot.
type DjotConverter struct{}

// NewDjotConverter creates a Djot converter.
func NewDjotConverter() *DjotConverter {
	return &DjotConverter{}
}

// Compile-time interface check.
var _ Converter = (*DjotConverter)(nil)

// Convert renders Djot to an HTML fragment. godjot signals malformed
// input by panicking, so failures are recovered into a ParseError and
// reported like any other page-scoped parse failure.
func (c *DjotConverter) Convert(ctx context.Context, src string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	type outcome struct {
		res Result
		err error
	}

	done := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: &ParseError{Message: fmt.Sprint(r)}}
			}
		}()

		ast := djot_parser.BuildDjotAst([]byte(src))
		content := djot_parser.NewConversionContext(
			"html",
			djot_parser.DefaultConversionRegistry,
		).ConvertDjotToHtml(&html_writer.HtmlWriter{}, ast...)
		done <- outcome{res: Result{HTML: content}}
	}()

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case o := <-done:
		return o.res, o.err
	}
}
