package ssg

import (
	"html"
	"sort"
	"strings"

	"github.com/alnah/go-ssg/internal/markup"
)

// tocNode is one node of the navigation tree. Leaves correspond
// exactly to converted pages; interior nodes are directories that hold
// at least one descendant page.
type tocNode struct {
	name     string // path segment
	page     *Page  // non-nil for leaves
	children map[string]*tocNode
}

// buildTOCTree arranges pages into a tree mirroring the source
// directory hierarchy. Directories appear only on the path of some
// page, so directories without descendant pages are omitted by
// construction.
func buildTOCTree(pages []*Page) *tocNode {
	root := &tocNode{name: ".", children: make(map[string]*tocNode)}
	for _, page := range pages {
		segments := strings.Split(page.OutputPath, "/")
		node := root
		for _, seg := range segments[:len(segments)-1] {
			child, ok := node.children[seg]
			if !ok {
				child = &tocNode{name: seg, children: make(map[string]*tocNode)}
				node.children[seg] = child
			}
			node = child
		}
		leaf := segments[len(segments)-1]
		node.children[leaf] = &tocNode{name: leaf, page: page}
	}
	return root
}

// renderTOC renders the tree to a nested bulleted HTML fragment.
// The fragment is built once per run and is identical for every page.
//
// Sibling ordering is pure lexicographic by path segment, files and
// directories interleaved; one stable rule, no special casing.
func renderTOC(root *tocNode, prefix string) string {
	var b strings.Builder
	renderTOCChildren(&b, root, prefix)
	return b.String()
}

func renderTOCChildren(b *strings.Builder, node *tocNode, prefix string) {
	names := make([]string, 0, len(node.children))
	for name := range node.children {
		names = append(names, name)
	}
	sort.Strings(names)

	b.WriteString("<ul>")
	for _, name := range names {
		child := node.children[name]
		if child.page != nil {
			href := markup.JoinPrefix(prefix, child.page.OutputPath)
			b.WriteString(`<li><a href="` + html.EscapeString(href) + `">`)
			b.WriteString(html.EscapeString(child.page.Title))
			b.WriteString("</a></li>")
			continue
		}
		b.WriteString("<li><b><u>" + html.EscapeString(child.name) + ":</u></b>")
		renderTOCChildren(b, child, prefix)
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
}

// buildTOC builds and renders the table of contents for the full set
// of successfully converted pages.
func buildTOC(pages []*Page, prefix string) string {
	return renderTOC(buildTOCTree(pages), prefix)
}
