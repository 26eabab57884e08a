package catalog

import (
	"slices"
	"strings"
)

// SignRecord is a single road sign. Records are immutable once loaded and
// their IDs are the persistence key for learner progress, so an ID is never
// reused or renumbered after a catalog is published.
type SignRecord struct {
	ID            int
	CanonicalName string
	LocalizedName string
	Category      Category
	Description   string
	ImageRef      string
}

// Catalog is the read-only sign set for one domain (country).
type Catalog struct {
	Domain        string
	Name          string
	LocalizedName string
	Flag          string

	signs []SignRecord
	byID  map[int]int
}

// New builds a catalog from records. The slice is copied.
func New(domain, name string, signs []SignRecord) *Catalog {
	c := &Catalog{
		Domain: strings.ToLower(domain),
		Name:   name,
		signs:  slices.Clone(signs),
		byID:   make(map[int]int, len(signs)),
	}
	for i, s := range c.signs {
		c.byID[s.ID] = i
	}
	return c
}

// Len returns the number of signs in the catalog.
func (c *Catalog) Len() int {
	return len(c.signs)
}

// All returns a copy of every sign in catalog order.
func (c *Catalog) All() []SignRecord {
	return slices.Clone(c.signs)
}

// IDs returns the sign ids in catalog order.
func (c *Catalog) IDs() []int {
	ids := make([]int, len(c.signs))
	for i, s := range c.signs {
		ids[i] = s.ID
	}
	return ids
}

// Get returns the sign with the given ID.
func (c *Catalog) Get(id int) (SignRecord, bool) {
	i, ok := c.byID[id]
	if !ok {
		return SignRecord{}, false
	}
	return c.signs[i], true
}

// ByCategory returns the signs of one category in catalog order.
// CategoryAll returns every sign.
func (c *Catalog) ByCategory(cat Category) []SignRecord {
	if cat == CategoryAll || cat == "" {
		return c.All()
	}
	var out []SignRecord
	for _, s := range c.signs {
		if s.Category == cat {
			out = append(out, s)
		}
	}
	return out
}

// Categories returns the categories present in the catalog, in display order.
func (c *Catalog) Categories() []Category {
	seen := make(map[Category]bool)
	for _, s := range c.signs {
		seen[s.Category] = true
	}
	var out []Category
	for _, cat := range AllCategories() {
		if seen[cat] {
			out = append(out, cat)
		}
	}
	return out
}

// Search returns signs whose canonical name, localized name or description
// contains query (case-insensitive), restricted to cat unless cat is
// CategoryAll or empty.
func (c *Catalog) Search(query string, cat Category) []SignRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []SignRecord
	for _, s := range c.ByCategory(cat) {
		if q == "" ||
			strings.Contains(strings.ToLower(s.CanonicalName), q) ||
			strings.Contains(strings.ToLower(s.LocalizedName), q) ||
			strings.Contains(strings.ToLower(s.Description), q) {
			out = append(out, s)
		}
	}
	return out
}
