// internal/config/dataroot.go

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DataRootMarker is the file whose presence marks a directory as the
	// tool's data root.
	DataRootMarker = "SSH_CONFIG_DATA_ROOT"

	// dataRootToken is the placeholder expanded inside config values.
	dataRootToken = "%{DATA_ROOT}"
)

func hasMarker(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, DataRootMarker))
	return err == nil && info.Mode().IsRegular()
}

// FindDataRoot locates the data root by walking up from the working
// directory (and finally the home directory), checking each candidate and
// its immediate subdirectories for the marker file.
func FindDataRoot() (string, error) {
	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		dir := cwd
		for {
			candidates = append(candidates, dir)
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, home)
	}

	for _, dir := range candidates {
		if hasMarker(dir) {
			return dir, nil
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			sub := filepath.Join(dir, entry.Name())
			if hasMarker(sub) {
				return sub, nil
			}
		}
	}
	return "", fmt.Errorf("unable to locate data root using %s", DataRootMarker)
}

// ExpandDataRoot replaces the %{DATA_ROOT} placeholder in a config value.
func ExpandDataRoot(root, value string) string {
	if !strings.Contains(value, dataRootToken) {
		return value
	}
	return strings.ReplaceAll(value, dataRootToken, root)
}
