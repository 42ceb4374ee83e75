package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// chartNameRegex matches chart names usable as config keys and cache
// key scopes.
var chartNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._ -]*$`)

// ValidateChartName validates a chart name from a config file.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
//   - Alphanumeric start, then letters, digits, dots, dashes,
//     underscores and spaces
func ValidateChartName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "chart name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "chart name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "chart name contains invalid control characters")
		}
	}

	if !chartNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid chart name: %q", name)
	}

	return nil
}

// ValidateDataPath validates a data file path referenced by a chart
// config. It prevents path traversal out of the config's directory and
// ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative to the config)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateDataPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "data path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "data path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "data path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "data path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "data path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "data path cannot contain backslashes")
	}

	return nil
}
