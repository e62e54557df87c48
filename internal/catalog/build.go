package catalog

import "github.com/harrison/catalog/internal/models"

// Build groups examples by category, keeping their relative input order
// within each category. Duplicates are retained; see Validate.
func Build(examples []models.Example) *models.Catalog {
	c := models.NewCatalog()
	for _, e := range examples {
		c.Add(e)
	}
	return c
}

// Validate rejects a catalog holding the same (category, name) pair twice.
// Both entries would render the same declaration line and listing link.
func Validate(c *models.Catalog) error {
	if dups := c.Duplicates(); len(dups) > 0 {
		return &models.DuplicateError{Duplicates: dups}
	}
	return nil
}
