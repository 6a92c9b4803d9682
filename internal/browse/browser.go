package browse

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/bookshelf/internal/domain"
)

// DefaultPageSize is the number of books rendered per page
const DefaultPageSize = 36

// Catalog is the read-only record source the browser works against
type Catalog interface {
	Books() []*domain.Book
	Book(id string) (*domain.Book, bool)
	AuthorName(id string) string
}

// Batch describes one change to the rendered list. Reset batches replace
// the list; other batches append to it.
type Batch struct {
	Reset bool
	Items []domain.Preview
}

// Browser owns the MatchSet, Cursor and rendered list and keeps them
// consistent across searches and show-more actions. It is not safe for
// concurrent use; callers drive it from a single event loop.
type Browser struct {
	catalog  Catalog
	books    []*domain.Book
	pageSize int
	logger   *slog.Logger

	matches MatchSet
	cursor  Cursor
	view    ListView
}

// New creates a browser showing the first page of the whole catalog
func New(catalog Catalog, pageSize int, logger *slog.Logger) *Browser {
	if logger == nil {
		logger = slog.Default()
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	b := &Browser{
		catalog:  catalog,
		books:    catalog.Books(),
		pageSize: pageSize,
		logger:   logger,
	}
	b.replace(Unfiltered(b.books))
	return b
}

// Submit applies a new filter: the MatchSet is recomputed, the cursor goes
// back to page one and the list is rebuilt from the first page.
func (b *Browser) Submit(spec domain.FilterSpec) Batch {
	batch := b.replace(ComputeMatches(b.books, spec))

	b.logger.Debug("filter submitted",
		"title", spec.TitleQuery,
		"genre", spec.GenreID,
		"author", spec.AuthorID,
		"matches", b.matches.Len(),
	)
	return batch
}

// Clear drops any active filter and shows the whole catalog again
func (b *Browser) Clear() Batch {
	return b.replace(Unfiltered(b.books))
}

func (b *Browser) replace(matches MatchSet) Batch {
	b.matches = matches
	b.cursor.Reset()

	items := Render(SliceForPage(b.matches.Books(), b.cursor.Pages(), b.pageSize), b.catalog)
	b.view.Reset()
	b.view.Append(items)

	return Batch{Reset: true, Items: items}
}

// ShowMore exposes the next page and returns only the new items. When
// nothing remains the cursor stays put and the batch is empty.
func (b *Browser) ShowMore() Batch {
	if !b.cursor.Advance(b.matches.Len(), b.pageSize) {
		return Batch{}
	}

	items := Render(SliceForPage(b.matches.Books(), b.cursor.Pages(), b.pageSize), b.catalog)
	b.view.Append(items)

	b.logger.Debug("show more", "page", b.cursor.Pages(), "appended", len(items), "remaining", b.Remaining())
	return Batch{Items: items}
}

// Resolve returns the record behind a rendered preview id
func (b *Browser) Resolve(id string) (*domain.Book, bool) {
	return Resolve(id, b.catalog)
}

// Remaining returns how many matches are not yet rendered
func (b *Browser) Remaining() int {
	return Remaining(b.matches.Len(), b.cursor.Pages(), b.pageSize)
}

// CanShowMore reports whether the show-more control is enabled
func (b *Browser) CanShowMore() bool { return b.Remaining() > 0 }

// ShowMoreLabel is the text of the show-more control
func (b *Browser) ShowMoreLabel() string {
	return fmt.Sprintf("Show more (%d)", b.Remaining())
}

// EmptyState reports whether the "no results" indicator should show
func (b *Browser) EmptyState() bool { return b.matches.Empty() }

// Items returns the rendered previews in display order
func (b *Browser) Items() []domain.Preview { return b.view.Items() }

// Item returns the rendered preview at index i
func (b *Browser) Item(i int) (domain.Preview, bool) { return b.view.At(i) }

// Len returns the number of rendered previews
func (b *Browser) Len() int { return b.view.Len() }

// Filter returns the active filter
func (b *Browser) Filter() domain.FilterSpec { return b.matches.Spec() }

// Filtered reports whether a submitted filter is active
func (b *Browser) Filtered() bool { return b.matches.Applied() }

// MatchCount returns the size of the current MatchSet
func (b *Browser) MatchCount() int { return b.matches.Len() }

// Pages returns the pagination cursor
func (b *Browser) Pages() int { return b.cursor.Pages() }

// PageSize returns the configured page size
func (b *Browser) PageSize() int { return b.pageSize }
