// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in ~/.config/go-ssg/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-ssg") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForNoPages returns a hint when a target holds no markup files.
func ForNoPages() string {
	return format("markup sources need a .md, .markdown, .dj or .djot extension")
}

// ForMissingIndex returns a hint for the missing-index warning.
func ForMissingIndex() string {
	return format("browsers serve index.html as the directory default page")
}

// format renders a single hint line.
func format(hint string) string {
	return "\n  hint: " + hint
}
