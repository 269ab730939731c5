package markup

import (
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// markupExts are source extensions whose links are retargeted to the
// generated .html file.
var markupExts = map[string]bool{
	".md":       true,
	".markdown": true,
	".dj":       true,
	".djot":     true,
}

// RewriteOptions configures internal link rewriting for one page.
type RewriteOptions struct {
	// Prefix is the configured web prefix joined onto every rewritten
	// reference.
	Prefix string
	// PageDir is the site-relative directory of the page being
	// rewritten ("." for the root); used to resolve link targets for
	// existence checks.
	PageDir string
	// Exists reports whether a site-relative source path exists.
	// Nil disables broken-link detection.
	Exists func(rel string) bool
}

// RewriteLinks rewrites internal references in a converted fragment:
// a[href] and img[src] values that are relative paths are joined to the
// web prefix, and references to markup sources are retargeted to their
// .html output. URLs, anchors and absolute paths pass through.
//
// Returns the rewritten fragment and a warning per markup reference
// whose source file does not exist under the site root.
func RewriteLinks(fragment string, opts RewriteOptions) (string, []string, error) {
	doc, isFragment, err := parseHTML(fragment)
	if err != nil {
		return "", nil, err
	}

	var warnings []string
	rewriteNode(doc, opts, &warnings)

	out, err := renderHTML(doc, isFragment)
	if err != nil {
		return "", nil, err
	}
	return out, warnings, nil
}

// parseHTML parses HTML content, handling both full documents and
// fragments. Returns the parsed node and whether it was a fragment.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	// Full document: starts with <!DOCTYPE or <html
	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// renderHTML renders the document back to a string. Fragments render
// children only, avoiding an added <html><body> wrapper.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rewriteNode walks the DOM and rewrites link-bearing attributes.
func rewriteNode(n *html.Node, opts RewriteOptions, warnings *[]string) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "a":
			rewriteAttr(n, "href", opts, warnings)
		case "img":
			rewriteAttr(n, "src", opts, warnings)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, opts, warnings)
	}
}

// rewriteAttr rewrites a single attribute when it holds a relative
// internal reference.
func rewriteAttr(n *html.Node, attrName string, opts RewriteOptions, warnings *[]string) {
	for i, attr := range n.Attr {
		if attr.Key != attrName {
			continue
		}
		if !isRewritable(attr.Val) {
			continue
		}

		val := attr.Val
		if markupExts[strings.ToLower(path.Ext(val))] {
			if opts.Exists != nil {
				target := path.Join(opts.PageDir, val)
				if !opts.Exists(target) {
					*warnings = append(*warnings, "referenced file "+target+" does not exist")
				}
			}
			val = strings.TrimSuffix(val, path.Ext(val)) + ".html"
		}

		n.Attr[i].Val = JoinPrefix(opts.Prefix, val)
	}
}

// isRewritable returns true for relative internal references.
// URLs, protocol-relative paths, data URIs, anchors, mailto links and
// absolute paths are left untouched.
func isRewritable(ref string) bool {
	if ref == "" {
		return false
	}
	if strings.Contains(ref, "://") ||
		strings.HasPrefix(ref, "//") ||
		strings.HasPrefix(ref, "data:") ||
		strings.HasPrefix(ref, "mailto:") {
		return false
	}
	if strings.HasPrefix(ref, "#") {
		return false
	}
	if strings.HasPrefix(ref, "/") {
		return false
	}
	return true
}

// JoinPrefix composes a web prefix and an output-relative path with
// exactly one separator between them: no duplication when the prefix
// already ends in a separator, no loss when it doesn't.
//
// Joining is idempotent: a path already carrying the prefix is
// returned unchanged. The check is textual, so a source path that
// merely begins with the prefix text (prefix "site/", source link
// "site/page.md") is also left alone rather than prefixed again.
// Idempotence and distinguishing that coincidence are mutually
// exclusive for plain string prefixes; idempotence wins.
func JoinPrefix(prefix, p string) string {
	if prefix == "" {
		return p
	}
	if p == "" {
		return prefix
	}
	if strings.HasPrefix(p, prefix) {
		return p
	}

	rest := strings.TrimPrefix(p, "./")
	rest = strings.TrimPrefix(rest, "/")
	if strings.HasSuffix(prefix, "/") {
		return prefix + rest
	}
	return prefix + "/" + rest
}
