package models

import (
	"fmt"
	"path"
	"strings"
)

// Example represents one discovered example directory (root/category/name)
type Example struct {
	Path     string // Slash-separated path including the scan root
	Category string // Name of the parent (category) directory
	Name     string // Leaf directory name
}

// NewExample creates an Example below root. The root is kept as given so a
// relative root yields a relative Path.
func NewExample(root, category, name string) Example {
	return Example{
		Path:     path.Join(filepathToSlash(root), category, name),
		Category: category,
		Name:     name,
	}
}

// ParseExample splits a slash-separated path into category and name, the
// last two segments. Anything before them is the root, which may be absent
// when the path is relative to the root itself.
func ParseExample(p string) (Example, error) {
	clean := path.Clean(filepathToSlash(p))
	parts := strings.Split(clean, "/")
	if len(parts) < 2 || !isSegment(parts[len(parts)-2]) || !isSegment(parts[len(parts)-1]) {
		return Example{}, fmt.Errorf("example path %q must look like [<root>/]<category>/<name>", p)
	}
	return Example{
		Path:     clean,
		Category: parts[len(parts)-2],
		Name:     parts[len(parts)-1],
	}, nil
}

// Key returns the "category/name" identity of the example
func (e Example) Key() string {
	return e.Category + "/" + e.Name
}

func (e Example) String() string {
	return e.Path
}

func isSegment(s string) bool {
	return s != "" && s != "." && s != ".."
}

func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
