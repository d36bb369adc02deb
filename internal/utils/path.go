package utils

import (
	"path/filepath"
	"strings"
)

// NormalizePath normalizes a file path for Windows compatibility
func NormalizePath(str string) string {
	return strings.ReplaceAll(str, "\\", "/")
}

// ExpandHome replaces a leading "~" path element with home.
// Paths that do not start with "~" are returned unchanged.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// IsHomeRelative reports whether path needs ExpandHome
func IsHomeRelative(path string) bool {
	return path == "~" || strings.HasPrefix(path, "~/")
}
