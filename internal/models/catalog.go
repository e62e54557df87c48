package models

import "sort"

// Catalog groups examples by category.
// Within a category, examples keep the order they were added in.
type Catalog struct {
	groups map[string][]Example
}

// NewCatalog creates an empty Catalog
func NewCatalog() *Catalog {
	return &Catalog{groups: make(map[string][]Example)}
}

// Add appends an example to its category's sequence
func (c *Catalog) Add(e Example) {
	c.groups[e.Category] = append(c.groups[e.Category], e)
}

// Categories returns the category keys sorted lexicographically
func (c *Catalog) Categories() []string {
	keys := make([]string, 0, len(c.groups))
	for k := range c.groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Examples returns the examples of a category in insertion order.
// The returned slice is a copy.
func (c *Catalog) Examples(category string) []Example {
	src := c.groups[category]
	out := make([]Example, len(src))
	copy(out, src)
	return out
}

// All returns every example, categories sorted, insertion order within each
func (c *Catalog) All() []Example {
	var all []Example
	for _, category := range c.Categories() {
		all = append(all, c.groups[category]...)
	}
	return all
}

// Len returns the total number of examples
func (c *Catalog) Len() int {
	n := 0
	for _, examples := range c.groups {
		n += len(examples)
	}
	return n
}

// IsEmpty reports whether the catalog has no categories
func (c *Catalog) IsEmpty() bool {
	return len(c.groups) == 0
}

// Duplicates returns every example whose (category, name) pair was already
// seen earlier in its category
func (c *Catalog) Duplicates() []Example {
	var dups []Example
	for _, category := range c.Categories() {
		seen := make(map[string]bool)
		for _, e := range c.groups[category] {
			if seen[e.Name] {
				dups = append(dups, e)
				continue
			}
			seen[e.Name] = true
		}
	}
	return dups
}
