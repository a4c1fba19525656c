package errors

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxBaseTextLength bounds the text a single base may display.
const maxBaseTextLength = 64

// ValidateBaseText validates the display text of a base.
//
// Rules:
//   - Cannot be empty or whitespace only
//   - No control characters
//   - Maximum length of 64 characters
func ValidateBaseText(text string) error {
	if strings.TrimSpace(text) == "" {
		return New(ErrCodeInvalidInput, "base text cannot be empty")
	}

	if utf8.RuneCountInString(text) > maxBaseTextLength {
		return New(ErrCodeInvalidInput, "base text too long (max %d characters)", maxBaseTextLength)
	}

	for _, r := range text {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "base text contains invalid control characters")
		}
	}

	return nil
}

// attributeNameRegex matches XML attribute names, optionally prefixed
// (e.g. "stroke-width", "xlink:href").
var attributeNameRegex = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9._-]*:)?[A-Za-z_][A-Za-z0-9._-]*$`)

// ValidateAttributeName validates an attribute name read from configuration.
// Attribute values are never validated.
func ValidateAttributeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "attribute name cannot be empty")
	}

	if !attributeNameRegex.MatchString(name) {
		return New(ErrCodeInvalidConfig, "invalid attribute name: %q", name)
	}

	return nil
}

// ValidatePath validates a document path given on the command line.
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
