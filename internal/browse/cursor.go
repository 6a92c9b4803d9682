package browse

// Cursor counts the page-fulls of the current MatchSet materialized into
// the view. It is 1-based and is reset whenever the MatchSet changes.
type Cursor struct {
	pages int
}

// NewCursor returns a cursor positioned on the first page
func NewCursor() Cursor { return Cursor{pages: 1} }

// Pages returns the number of pages rendered
func (c Cursor) Pages() int {
	if c.pages < 1 {
		return 1
	}
	return c.pages
}

// Reset moves the cursor back to the first page
func (c *Cursor) Reset() { c.pages = 1 }

// Advance moves to the next page when items remain beyond the current one.
// It returns false, leaving the cursor unchanged, when nothing is left.
func (c *Cursor) Advance(total, pageSize int) bool {
	if Remaining(total, c.Pages(), pageSize) == 0 {
		return false
	}
	c.pages = c.Pages() + 1
	return true
}

// SliceForPage returns matches[(cursor-1)*pageSize : cursor*pageSize],
// clipped to the slice length. Out-of-range pages give an empty slice.
func SliceForPage[T any](matches []T, cursor, pageSize int) []T {
	if cursor < 1 || pageSize < 1 {
		return nil
	}
	start := (cursor - 1) * pageSize
	if start >= len(matches) {
		return nil
	}
	end := min(cursor*pageSize, len(matches))
	return matches[start:end]
}

// Remaining returns how many matches lie beyond the rendered pages
func Remaining(total, cursor, pageSize int) int {
	return max(0, total-cursor*pageSize)
}
