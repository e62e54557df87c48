package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListOptions configures which subdirectories ListDirs reports
type ListOptions struct {
	// SkipHidden drops directories whose name starts with "."
	SkipHidden bool
	// ExcludeDirs is a list of directory names to drop (e.g., "target", "node_modules")
	ExcludeDirs []string
}

// ListDirs returns the names of the immediate subdirectories of dir, sorted
// lexicographically. Non-directory entries are ignored.
//
// Unlike a tolerant walk, any read error is returned immediately and no
// partial listing is produced.
func ListDirs(dir string, opts ListOptions) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	excludeMap := make(map[string]bool, len(opts.ExcludeDirs))
	for _, name := range opts.ExcludeDirs {
		excludeMap[name] = true
	}

	dirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if excludeMap[name] {
			continue
		}
		if opts.SkipHidden && strings.HasPrefix(name, ".") {
			continue
		}

		isDir, err := isDirEntry(dir, entry)
		if err != nil {
			return nil, err
		}
		if isDir {
			dirs = append(dirs, name)
		}
	}

	// os.ReadDir already sorts by name; keep the guarantee explicit
	sort.Strings(dirs)

	return dirs, nil
}

// isDirEntry reports whether entry is a directory, following symlinks.
// A dangling symlink is not a directory.
func isDirEntry(dir string, entry os.DirEntry) (bool, error) {
	if entry.IsDir() {
		return true, nil
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false, nil
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to resolve symlink %s: %w", entry.Name(), err)
	}
	return info.IsDir(), nil
}
