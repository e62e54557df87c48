package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindProjectDir returns the directory holding the catalog configuration.
// Search order, starting at start and walking up to the filesystem root:
//  1. CATALOG_HOME environment variable (if set)
//  2. First directory containing .catalog.yaml
//  3. start itself (fallback, defaults apply)
func FindProjectDir(start string) (string, error) {
	if home := os.Getenv("CATALOG_HOME"); home != "" {
		return home, nil
	}

	current, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	origin := current

	for {
		if _, err := os.Stat(filepath.Join(current, DefaultConfigFile)); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached filesystem root
			break
		}
		current = parent
	}

	return origin, nil
}

// ResolveRelative rebases every relative path of the config onto base.
// Absolute paths are left alone; base "." or "" is a no-op.
func (c *Config) ResolveRelative(base string) {
	if base == "" || base == "." {
		return
	}
	rebase := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	c.Root = rebase(c.Root)
	c.OutputDir = rebase(c.OutputDir)
	c.ListingPath = rebase(c.ListingPath)
	c.LockFile = rebase(c.LockFile)
}
