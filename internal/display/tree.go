package display

import (
	"fmt"
	"io"

	"github.com/ddddddO/gtree"

	"github.com/harrison/catalog/internal/models"
)

// RenderTree prints the catalog as a tree rooted at root:
//
//	src
//	├── behavioral
//	│   ├── command
//	│   └── strategy
//	└── creational
//	    └── factory_method
func RenderTree(w io.Writer, root string, c *models.Catalog) error {
	tree := gtree.NewRoot(root)
	for _, category := range c.Categories() {
		node := tree.Add(category)
		for _, e := range c.Examples(category) {
			node.Add(e.Name)
		}
	}

	if err := gtree.OutputProgrammably(w, tree); err != nil {
		return fmt.Errorf("failed to render tree: %w", err)
	}
	return nil
}
