// Package markup converts lightweight markup sources to HTML fragments
// and post-processes those fragments for web output: internal link
// rewriting against a configurable prefix and optional minification.
package markup

import (
	"context"
	"fmt"
)

// Result is the outcome of one successful conversion.
type Result struct {
	// HTML is the converted fragment, without a document wrapper.
	HTML string
	// Title is the document title declared in frontmatter, empty when
	// the source carries none.
	Title string
}

// Converter turns raw markup text into an HTML fragment.
// Implementations are stateless and safe for concurrent use.
type Converter interface {
	Convert(ctx context.Context, src string) (Result, error)
}

// ParseError is a structured, page-scoped markup parse failure.
// Line and Col are 1-based; zero means the position is unknown.
type ParseError struct {
	Line    int
	Col     int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Col, e.Message)
	}
	return "parse error: " + e.Message
}
