package errors

import (
	"unicode"
)

// maxPathLength bounds paths accepted from the command line or config.
const maxPathLength = 4096

// ValidatePath validates a local file or directory path supplied by the user.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 bytes
//   - No null bytes or control characters
//
// Absolute and relative paths are both accepted; "-" is left to the caller
// to interpret as stdin.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

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
