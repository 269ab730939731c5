package markup

import (
	"strings"
	"testing"
)

func TestJoinPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		path   string
		want   string
	}{
		{"default relative prefix", "./", "a/doc.html", "./a/doc.html"},
		{"prefix without trailing separator", "/site", "a/doc.html", "/site/a/doc.html"},
		{"prefix with trailing separator", "/site/", "a/doc.html", "/site/a/doc.html"},
		{"leading dot slash not duplicated", "./", "./a/doc.html", "./a/doc.html"},
		{"empty prefix", "", "a/doc.html", "a/doc.html"},
		{"empty path", "./", "", "./"},
		{"url prefix", "https://example.com/docs/", "a.html", "https://example.com/docs/a.html"},
		// A path that already starts with the prefix text is never
		// prefixed again, even when the match is coincidental; joining
		// must stay idempotent.
		{"path starting with the prefix text", "site/", "site/page.html", "site/page.html"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := JoinPrefix(tt.prefix, tt.path)
			if got != tt.want {
				t.Errorf("JoinPrefix(%q, %q) = %q, want %q", tt.prefix, tt.path, got, tt.want)
			}
		})
	}
}

func TestJoinPrefixIsIdempotent(t *testing.T) {
	t.Parallel()

	prefixes := []string{"./", "/site", "/site/", "site/", "https://example.com/docs/"}
	paths := []string{"a/doc.html", "./a/doc.html", "doc.html", "site/page.html"}

	for _, prefix := range prefixes {
		for _, p := range paths {
			once := JoinPrefix(prefix, p)
			twice := JoinPrefix(prefix, once)
			if once != twice {
				t.Errorf("JoinPrefix(%q, %q): once=%q twice=%q", prefix, p, once, twice)
			}
		}
	}
}

func TestRewriteLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		html         string
		opts         RewriteOptions
		wantContains []string
	}{
		{
			name:         "markdown link retargeted to html output",
			html:         `<a href="other.md">other</a>`,
			opts:         RewriteOptions{Prefix: "./", PageDir: "."},
			wantContains: []string{`href="./other.html"`},
		},
		{
			name:         "djot link retargeted",
			html:         `<a href="nested/hey.dj">hey</a>`,
			opts:         RewriteOptions{Prefix: "./", PageDir: "."},
			wantContains: []string{`href="./nested/hey.html"`},
		},
		{
			name:         "relative asset gets the prefix",
			html:         `<img src="images/logo.png">`,
			opts:         RewriteOptions{Prefix: "/site/", PageDir: "."},
			wantContains: []string{`src="/site/images/logo.png"`},
		},
		{
			name:         "http url unchanged",
			html:         `<a href="https://example.com/page.md">x</a>`,
			opts:         RewriteOptions{Prefix: "./", PageDir: "."},
			wantContains: []string{`href="https://example.com/page.md"`},
		},
		{
			name:         "anchor unchanged",
			html:         `<a href="#section">x</a>`,
			opts:         RewriteOptions{Prefix: "./", PageDir: "."},
			wantContains: []string{`href="#section"`},
		},
		{
			name:         "absolute path unchanged",
			html:         `<a href="/abs/page.html">x</a>`,
			opts:         RewriteOptions{Prefix: "./", PageDir: "."},
			wantContains: []string{`href="/abs/page.html"`},
		},
		{
			name:         "mailto unchanged",
			html:         `<a href="mailto:a@b.c">x</a>`,
			opts:         RewriteOptions{Prefix: "./", PageDir: "."},
			wantContains: []string{`href="mailto:a@b.c"`},
		},
		{
			name:         "protocol relative unchanged",
			html:         `<img src="//cdn.example.com/x.png">`,
			opts:         RewriteOptions{Prefix: "./", PageDir: "."},
			wantContains: []string{`src="//cdn.example.com/x.png"`},
		},
		{
			name:         "full document supported",
			html:         `<!DOCTYPE html><html><head></head><body><a href="doc.md">d</a></body></html>`,
			opts:         RewriteOptions{Prefix: "./", PageDir: "."},
			wantContains: []string{`href="./doc.html"`, "<!DOCTYPE html>"},
		},
		{
			name:         "parent directory reference keeps its shape",
			html:         `<a href="../index.md">up</a>`,
			opts:         RewriteOptions{Prefix: "", PageDir: "nested"},
			wantContains: []string{`href="../index.html"`},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, _, err := RewriteLinks(tt.html, tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\ngot: %s", want, got)
				}
			}
		})
	}
}

func TestRewriteLinksIsIdempotent(t *testing.T) {
	t.Parallel()

	opts := RewriteOptions{Prefix: "./", PageDir: "."}
	input := `<a href="guide/setup.md">setup</a> <img src="logo.png">`

	once, _, err := RewriteLinks(input, opts)
	if err != nil {
		t.Fatal(err)
	}
	twice, _, err := RewriteLinks(once, opts)
	if err != nil {
		t.Fatal(err)
	}
	if once != twice {
		t.Errorf("rewriting twice changed output:\nonce:  %s\ntwice: %s", once, twice)
	}
}

func TestRewriteLinksWarnsOnMissingTarget(t *testing.T) {
	t.Parallel()

	exists := func(rel string) bool { return rel == "guide/real.md" }

	tests := []struct {
		name      string
		html      string
		pageDir   string
		wantWarns int
	}{
		{
			name:      "existing target no warning",
			html:      `<a href="real.md">ok</a>`,
			pageDir:   "guide",
			wantWarns: 0,
		},
		{
			name:      "missing target warns",
			html:      `<a href="ghost.md">gone</a>`,
			pageDir:   "guide",
			wantWarns: 1,
		},
		{
			name:      "parent reference resolved against page dir",
			html:      `<a href="../real.md">ok</a>`,
			pageDir:   "guide/sub",
			wantWarns: 0,
		},
		{
			name:      "asset links are not target checked",
			html:      `<img src="missing.png">`,
			pageDir:   "guide",
			wantWarns: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, warnings, err := RewriteLinks(tt.html, RewriteOptions{
				Prefix:  "./",
				PageDir: tt.pageDir,
				Exists:  exists,
			})
			if err != nil {
				t.Fatal(err)
			}
			if len(warnings) != tt.wantWarns {
				t.Errorf("got %d warnings %v, want %d", len(warnings), warnings, tt.wantWarns)
			}
		})
	}
}
