package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadTemplateKnownNames(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	names := loader.TemplateNames()
	if len(names) == 0 {
		t.Fatal("no built-in templates embedded")
	}

	for _, name := range names {
		content, err := loader.LoadTemplate(name)
		if err != nil {
			t.Fatalf("LoadTemplate(%q): %v", name, err)
		}
		if !strings.Contains(content, "{CONTENT}") {
			t.Errorf("template %q lacks the content macro", name)
		}
		if !strings.Contains(content, "<!DOCTYPE html>") {
			t.Errorf("template %q is not a full document", name)
		}
	}
}

func TestLoadTemplateUnknownName(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()
	_, err := loader.LoadTemplate("does-not-exist")
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("got %v, want ErrTemplateNotFound", err)
	}
}

func TestTemplateNamesAreSorted(t *testing.T) {
	t.Parallel()

	names := NewEmbeddedLoader().TemplateNames()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "basic", false},
		{"hyphenated", "two-column", false},
		{"empty", "", true},
		{"path traversal", "../secrets", true},
		{"forward slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"null byte", "a\x00b", true},
		{"dot dot inside", "a..b", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("ValidateAssetName(%q) = %v, want ErrInvalidAssetName", tt.input, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateAssetName(%q) = %v, want nil", tt.input, err)
			}
		})
	}
}
