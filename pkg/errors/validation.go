package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxCategoryLength bounds category names accepted from the command line.
const maxCategoryLength = 256

// ValidateCategoryName validates a category name typed by a user.
//
// The rules only apply to names entering through an interactive surface;
// names read from an existing file are taken as they are.
//   - No empty or whitespace-only names
//   - Valid UTF-8, no control characters
//   - No leading "#" (reserved for category labels)
//   - Maximum length of 256 bytes
func ValidateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidCategory, "category name cannot be empty")
	}

	if len(name) > maxCategoryLength {
		return New(ErrCodeInvalidCategory, "category name too long (max %d characters)", maxCategoryLength)
	}

	if !utf8.ValidString(name) {
		return New(ErrCodeInvalidCategory, "category name is not valid UTF-8: %q", name)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidCategory, "category name contains invalid control characters")
		}
	}

	if strings.HasPrefix(name, "#") {
		return New(ErrCodeInvalidCategory, "category name cannot start with #: %q", name)
	}

	return nil
}

// ValidateEnglish validates the English key of a new vocabulary entry.
// A leading "#" is reserved for category labels.
func ValidateEnglish(english string) error {
	if strings.TrimSpace(english) == "" {
		return New(ErrCodeInvalidInput, "english cannot be empty")
	}
	if strings.HasPrefix(english, "#") {
		return New(ErrCodeInvalidInput, "only category labels can start with #")
	}
	return nil
}

// ValidatePath validates a vocabulary file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
