package git

import (
	"os"
	"path/filepath"
)

// bareMarkers must all exist for a directory to look like a bare repository.
var bareMarkers = []string{"HEAD", "config", "objects"}

// IsGitRepo reports whether dir holds a working tree (.git directory, or a
// .git file as left by worktrees and submodules) or is itself a bare repository.
func IsGitRepo(dir string) bool {
	if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		return info.IsDir() || info.Mode().IsRegular()
	}
	return isBare(dir)
}

func isBare(dir string) bool {
	for _, name := range bareMarkers {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			return false
		}
		if name == "objects" && !info.IsDir() {
			return false
		}
	}
	return true
}
