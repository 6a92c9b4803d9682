package browse

import "github.com/mmcdole/bookshelf/internal/domain"

// AuthorNamer resolves author ids to display names
type AuthorNamer interface {
	AuthorName(id string) string
}

// Render projects books into preview items, one per book, in order
func Render(books []*domain.Book, authors AuthorNamer) []domain.Preview {
	previews := make([]domain.Preview, 0, len(books))
	for _, b := range books {
		previews = append(previews, domain.Preview{
			ID:     b.ID,
			Title:  b.Title,
			Author: authors.AuthorName(b.AuthorID),
			Image:  b.Image,
		})
	}
	return previews
}

// ListView is the rendered list. Pages are appended without touching the
// items already present; only Reset removes items.
type ListView struct {
	items []domain.Preview
}

// Reset clears the list ahead of a new MatchSet
func (v *ListView) Reset() {
	v.items = nil
}

// Append adds previews after the existing items. An empty batch is a no-op.
func (v *ListView) Append(previews []domain.Preview) {
	if len(previews) == 0 {
		return
	}
	v.items = append(v.items, previews...)
}

// Items returns a copy of the rendered previews in display order
func (v *ListView) Items() []domain.Preview {
	out := make([]domain.Preview, len(v.items))
	copy(out, v.items)
	return out
}

func (v *ListView) Len() int { return len(v.items) }

// At returns the preview at index i
func (v *ListView) At(i int) (domain.Preview, bool) {
	if i < 0 || i >= len(v.items) {
		return domain.Preview{}, false
	}
	return v.items[i], true
}
