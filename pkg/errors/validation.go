package errors

import (
	"strings"
	"unicode"
)

// ValidateFieldName validates an output field name used for fixture
// expectations and per-field tolerances. Field names are the json tags of
// the output schema: lowercase snake_case identifiers.
func ValidateFieldName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidFixture, "field name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidFixture, "field name too long (max 64 characters)")
	}
	for _, r := range name {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' {
			continue
		}
		return New(ErrCodeInvalidFixture, "field name contains invalid character %q", r)
	}
	return nil
}

// ValidatePath validates a user-supplied file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
