package ssg

import "path"

// fallbackTemplate is the resolution floor: a bare HTML document
// wrapping just the content macro. It guarantees that template
// resolution is total.
const fallbackTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
</head>
<body>
<!-- {CONTENT} -->
</body>
</html>
`

// resolveTemplate picks the template content governing a page in the
// given site-relative directory ("." for the root).
//
// Walks upward from the page's own directory toward the site root; the
// nearest directory holding a template.html wins. When no ancestor has
// one, the fallback template applies. The walk always terminates at
// "." and always yields a defined result.
//
// A globally selected built-in template bypasses this walk entirely;
// see Service.Generate.
func resolveTemplate(pageDir string, templates map[string]string) string {
	for dir := pageDir; ; dir = path.Dir(dir) {
		if content, ok := templates[dir]; ok {
			return content
		}
		if dir == "." || dir == "/" {
			break
		}
	}
	return fallbackTemplate
}
