package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandUser replaces a leading "~" with the current user's home
// directory. Paths without the prefix come back unchanged.
func ExpandUser(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}

// NormalizePath cleans a path and converts separators to forward slashes,
// the form ssh config files use on every platform.
func NormalizePath(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}
