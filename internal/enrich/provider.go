// Package enrich looks up descriptive text and an image for a sign name from
// an online encyclopedia.
package enrich

import "context"

// Page is an encyclopedia article about a sign.
type Page struct {
	Title     string
	PageID    int
	Extract   string
	Thumbnail *Thumbnail
	URL       string
}

// Thumbnail is the lead image of a page.
type Thumbnail struct {
	Source string
	Width  int
	Height int
}

// Source resolves a free-text sign name to a page. Implementations return
// ErrNotFound when nothing matches.
type Source interface {
	Lookup(ctx context.Context, name string) (*Page, error)
}
