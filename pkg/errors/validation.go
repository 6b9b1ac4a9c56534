package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// MaxTitleLength bounds exhibit titles; longer titles overflow the rendered header.
const MaxTitleLength = 120

// ValidateItemID validates an item or exhibit identifier.
//
// Identifiers are used as map keys, DOM-style element ids in SVG output and
// cache key components, so the rules are conservative:
//   - No empty ids
//   - Maximum length of 128 characters
//   - No whitespace or control characters
func ValidateItemID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "item id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidInput, "item id too long (max 128 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "item id %q contains whitespace or control characters", id)
		}
	}
	return nil
}

// ValidateTitle validates a user supplied exhibit title.
// An empty title is valid: renderers fall back to the kind's default title.
func ValidateTitle(title string) error {
	if len([]rune(title)) > MaxTitleLength {
		return New(ErrCodeInvalidInput, "title too long (max %d characters)", MaxTitleLength)
	}
	for _, r := range title {
		if r == '\x00' || (unicode.IsControl(r) && r != '\t') {
			return New(ErrCodeInvalidInput, "title contains invalid control characters")
		}
	}
	return nil
}

// ValidateOutputPath validates a path an artifact will be written to.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes
//   - The parent must not be a path traversal sequence escaping the working tree
//     when the path is relative
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "output path contains null bytes")
	}
	if !filepath.IsAbs(path) {
		clean := filepath.ToSlash(filepath.Clean(path))
		if clean == ".." || strings.HasPrefix(clean, "../") {
			return New(ErrCodeInvalidPath, "relative output path cannot escape the working directory")
		}
	}
	return nil
}
