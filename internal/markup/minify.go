package markup

import (
	"github.com/tdewolff/minify/v2"
	mhtml "github.com/tdewolff/minify/v2/html"
)

// Minifier compacts final HTML documents before they are written.
type Minifier struct {
	m *minify.M
}

// NewMinifier creates an HTML minifier.
func NewMinifier() *Minifier {
	m := minify.New()
	m.AddFunc("text/html", mhtml.Minify)
	return &Minifier{m: m}
}

// Minify returns a minified copy of the document.
func (mi *Minifier) Minify(doc []byte) ([]byte, error) {
	return mi.m.Bytes("text/html", doc)
}
