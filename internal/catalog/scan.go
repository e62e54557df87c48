package catalog

import (
	"path/filepath"

	"github.com/harrison/catalog/internal/fileutil"
	"github.com/harrison/catalog/internal/models"
)

// ScanOptions configures which directories Scan treats as categories and examples
type ScanOptions struct {
	// SkipHidden ignores directories starting with "." at both levels
	SkipHidden bool
	// Exclude lists directory names ignored at both levels
	Exclude []string
}

// ScanResult contains the results of a catalog scan
type ScanResult struct {
	// Examples in scan order: categories sorted, examples sorted within each
	Examples []models.Example
	// Categories holds every category directory found, sorted, including empty ones
	Categories []string
	// EmptyCategories lists category directories without any example directory
	EmptyCategories []string
}

// Scan lists root/<category>/<example>/ directories.
// Any filesystem error aborts the scan and is returned as *models.ScanError;
// no partial result is returned.
func Scan(root string, opts ScanOptions) (*ScanResult, error) {
	listOpts := fileutil.ListOptions{
		SkipHidden:  opts.SkipHidden,
		ExcludeDirs: opts.Exclude,
	}

	categories, err := fileutil.ListDirs(root, listOpts)
	if err != nil {
		return nil, &models.ScanError{Path: root, Err: err}
	}

	result := &ScanResult{
		Examples:   make([]models.Example, 0),
		Categories: categories,
	}

	for _, category := range categories {
		categoryDir := filepath.Join(root, category)
		names, err := fileutil.ListDirs(categoryDir, listOpts)
		if err != nil {
			return nil, &models.ScanError{Path: categoryDir, Err: err}
		}

		if len(names) == 0 {
			result.EmptyCategories = append(result.EmptyCategories, category)
			continue
		}

		for _, name := range names {
			result.Examples = append(result.Examples, models.NewExample(root, category, name))
		}
	}

	return result, nil
}
