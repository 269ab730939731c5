// Package assets provides the built-in page templates shipped with the
// tool. A built-in template, once selected, overrides every
// directory-level template.html for the whole run.
package assets

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for asset loading.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
)

// TemplateLoader defines the contract for loading built-in templates.
// Implementations may load from embedded assets, the filesystem, etc.
type TemplateLoader interface {
	// LoadTemplate loads an HTML template by name (without the .html
	// extension). Returns ErrTemplateNotFound if the name is unknown.
	LoadTemplate(name string) (string, error)
}

// ValidateAssetName rejects names that could escape the asset
// directory or smuggle extensions.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\\x00") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
