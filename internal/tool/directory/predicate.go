package directory

import (
	"path/filepath"
	"strings"
)

// ExtensionPredicate marks files as binary-comparison-only by extension.
// Matching ignores case and a leading dot in the configured extensions.
type ExtensionPredicate struct {
	extensions map[string]struct{}
}

// NewExtensionPredicate creates an ExtensionPredicate for the given extensions.
func NewExtensionPredicate(extensions []string) *ExtensionPredicate {
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			set[ext] = struct{}{}
		}
	}
	return &ExtensionPredicate{extensions: set}
}

// BinaryComparisonOnly reports whether path has one of the configured extensions.
func (p *ExtensionPredicate) BinaryComparisonOnly(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return false
	}
	_, ok := p.extensions[ext]
	return ok
}
