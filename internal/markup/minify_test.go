package markup

import (
	"bytes"
	"strings"
	"testing"
)

func TestMinify(t *testing.T) {
	t.Parallel()

	mi := NewMinifier()

	doc := []byte("<!DOCTYPE html>\n<html>\n  <body>\n    <p>  hello   world  </p>\n  </body>\n</html>\n")
	got, err := mi.Minify(doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) >= len(doc) {
		t.Errorf("minified output (%d bytes) not smaller than input (%d bytes)", len(got), len(doc))
	}
	if !strings.Contains(string(got), "hello world") {
		t.Errorf("text content lost: %s", got)
	}
}

func TestMinifyIsIdempotent(t *testing.T) {
	t.Parallel()

	mi := NewMinifier()

	once, err := mi.Minify([]byte("<html><body>  <p> x </p>  </body></html>"))
	if err != nil {
		t.Fatal(err)
	}
	twice, err := mi.Minify(once)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(once, twice) {
		t.Errorf("minifying twice changed output:\nonce:  %s\ntwice: %s", once, twice)
	}
}
