// Package engine holds helpers shared by the exec-based conversion
// adapters.
package engine

import (
	"errors"
	"strings"
)

var (
	ErrEmptyPath   = errors.New("path is empty")
	ErrInvalidPath = errors.New("path contains invalid characters")
)

// ValidatePath rejects paths that cannot be passed safely to an external
// renderer.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	return nil
}

// StderrTail returns the last n lines of renderer output, which is where
// soffice and ImageMagick put the actual reason for a failure.
func StderrTail(stderr string, n int) string {
	s := strings.TrimSpace(stderr)
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
