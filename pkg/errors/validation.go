package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidatePattern validates a package name pattern before it is matched
// against dependency names.
//
// The pattern never touches the filesystem, so only two things are
// rejected: the empty pattern and control characters. Any other pattern that
// matches nothing is reported as not found by the caller.
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return New(ErrCodeInvalidInput, "package pattern cannot be empty")
	}

	for _, r := range pattern {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "package pattern contains invalid control characters")
		}
	}

	return nil
}

// ValidateManifestPath validates the path handed to cargo via --manifest-path.
// Cargo performs the real checks; this only rejects values that can never
// name a file.
func ValidateManifestPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidManifest, "manifest path cannot be empty")
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidManifest, "manifest path contains a null byte")
	}

	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return New(ErrCodeInvalidManifest, "manifest path must name a file: %q", path)
	}

	return nil
}
