package ssg

import "regexp"

// Recognized template macros, case-sensitive, wrapped in HTML comment
// markers. Whitespace inside the comment is tolerated. Any other
// comment content passes through unchanged: it might be an intentional
// style comment, not a typo worth failing over.
var (
	contentMacro = regexp.MustCompile(`<!--\s*\{CONTENT\}\s*-->`)
	tocMacro     = regexp.MustCompile(`<!--\s*\{TABLE_OF_CONTENTS\}\s*-->`)
)

// expandMacros substitutes every recognized macro in a resolved
// template. Substitution is total: each recognized token resolves,
// everything else is literal template text. A template without the
// content macro is an authoring choice, not an error.
func expandMacros(template, content, toc string) string {
	out := contentMacro.ReplaceAllLiteralString(template, content)
	out = tocMacro.ReplaceAllLiteralString(out, toc)
	return out
}
