package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateOutlineName validates an outline name used to locate files on disk.
// It rejects names that could be used for path traversal or injection attacks.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateOutlineName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "outline name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "outline name too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "outline name contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "outline name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidatePath validates an output path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// hexColorRegex matches 3- or 6-digit hex color values.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// namedColorRegex matches CSS named colors (letters only, e.g. "tomato").
var namedColorRegex = regexp.MustCompile(`^[a-zA-Z]+$`)

// ValidateColor validates a CSS color value as used in outline branches.
// Accepted forms are hex colors (#rgb, #rrggbb) and named colors.
// An empty string is valid: it means "assign from the theme palette".
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}

	if hexColorRegex.MatchString(color) || namedColorRegex.MatchString(color) {
		return nil
	}

	return New(ErrCodeInvalidColor, "invalid color value: %q", color)
}
