// Package paths provides path resolution utilities.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// ProjectConfigFile is the per-project config, relative to the working directory.
const ProjectConfigFile = ".measured/config.yaml"

// UserConfigDir returns ~/.config/measured.
// Returns empty string if home directory cannot be determined.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "measured")
}

// UserConfigFile returns ~/.config/measured/config.yaml, or empty string if
// home directory cannot be determined.
func UserConfigFile() string {
	dir := UserConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Expand resolves a leading "~" against the home directory and cleans the
// result. Other paths are only cleaned.
//
//   - "~/units"   -> "/home/me/units"
//   - "~"         -> "/home/me"
//   - "./a/../b"  -> "b"
//   - "~other/x"  -> "~other/x" (unchanged)
func Expand(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Clean(path)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Clean(path)
}
