package ssg

import (
	"strings"
	"testing"
)

func page(src, title string) *Page {
	return &Page{
		SourcePath: src,
		OutputPath: htmlOutputPath(src),
		Title:      title,
	}
}

func TestBuildTOC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		pages        []*Page
		prefix       string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:   "single page",
			pages:  []*Page{page("index.md", "Home")},
			prefix: "./",
			wantContains: []string{
				`<ul><li><a href="./index.html">Home</a></li></ul>`,
			},
		},
		{
			name: "nested directories become nested lists",
			pages: []*Page{
				page("index.md", "Home"),
				page("guide/setup.md", "Setup"),
			},
			prefix: "./",
			wantContains: []string{
				`<li><b><u>guide:</u></b><ul><li><a href="./guide/setup.html">Setup</a></li></ul></li>`,
				`<li><a href="./index.html">Home</a></li>`,
			},
		},
		{
			name: "custom prefix joins with exactly one separator",
			pages: []*Page{
				page("doc.md", "Doc"),
			},
			prefix: "/site",
			wantContains: []string{
				`<a href="/site/doc.html">Doc</a>`,
			},
		},
		{
			name: "grouping node is not a link",
			pages: []*Page{
				page("a/b/deep.dj", "Deep"),
			},
			prefix: "./",
			wantContains: []string{
				`<li><b><u>a:</u></b><ul><li><b><u>b:</u></b><ul><li><a href="./a/b/deep.html">Deep</a></li></ul></li></ul></li>`,
			},
			wantExcludes: []string{
				`<a href="./a"`,
				`<a href="./a/b"`,
			},
		},
		{
			name: "titles are escaped",
			pages: []*Page{
				page("x.md", `Tools <& Tips>`),
			},
			prefix: "./",
			wantContains: []string{
				`Tools &lt;&amp; Tips&gt;`,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := buildTOC(tt.pages, tt.prefix)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("TOC missing %q\ngot: %s", want, got)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("TOC should not contain %q\ngot: %s", exclude, got)
				}
			}
		})
	}
}

func TestBuildTOCOrderingIsLexicographic(t *testing.T) {
	t.Parallel()

	// Files and directories interleave under one lexicographic rule.
	pages := []*Page{
		page("zebra.md", "Zebra"),
		page("alpha.md", "Alpha"),
		page("middle/inner.md", "Inner"),
	}

	got := buildTOC(pages, "./")

	alpha := strings.Index(got, "Alpha")
	middle := strings.Index(got, "middle:")
	zebra := strings.Index(got, "Zebra")
	if alpha == -1 || middle == -1 || zebra == -1 {
		t.Fatalf("TOC missing entries: %s", got)
	}
	if !(alpha < middle && middle < zebra) {
		t.Errorf("sibling order not lexicographic: alpha=%d middle=%d zebra=%d\n%s",
			alpha, middle, zebra, got)
	}
}

func TestBuildTOCOneEntryPerPage(t *testing.T) {
	t.Parallel()

	pages := []*Page{
		page("a.md", "A"),
		page("b.md", "B"),
		page("sub/c.md", "C"),
	}

	got := buildTOC(pages, "./")
	if n := strings.Count(got, "<a href="); n != len(pages) {
		t.Errorf("TOC has %d links, want %d:\n%s", n, len(pages), got)
	}
}

func TestBuildTOCEmpty(t *testing.T) {
	t.Parallel()

	if got := buildTOC(nil, "./"); got != "<ul></ul>" {
		t.Errorf("empty TOC = %q, want %q", got, "<ul></ul>")
	}
}
