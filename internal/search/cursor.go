package search

import (
	"context"
	"sync"
)

// Cursor walks the pages of one search term, accumulating the items it has
// fetched so far.
type Cursor struct {
	searcher Searcher
	term     string
	pageSize int

	mu      sync.Mutex
	items   []Item
	page    int
	total   int
	hasMore bool
}

// NewCursor creates a cursor for term. Nothing is fetched until Next.
func NewCursor(s Searcher, term string, pageSize int) *Cursor {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Cursor{
		searcher: s,
		term:     term,
		pageSize: pageSize,
		hasMore:  true,
	}
}

// Next fetches the following page and appends it. It returns the number of
// new items; zero once the results are exhausted.
func (c *Cursor) Next(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasMore {
		return 0, nil
	}

	page, err := c.searcher.Search(ctx, c.term, c.page+1, c.pageSize)
	if err != nil {
		return 0, err
	}

	c.page++
	c.total = page.Total
	c.items = append(c.items, page.Data...)
	c.hasMore = page.HasMore && len(page.Data) > 0
	return len(page.Data), nil
}

// Items returns a copy of everything fetched so far.
func (c *Cursor) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Item(nil), c.items...)
}

// HasMore reports whether Next may return more items.
func (c *Cursor) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasMore
}

// Total returns the match count reported by the last fetched page.
func (c *Cursor) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}
