package browse

import "github.com/mmcdole/bookshelf/internal/domain"

// BookFinder looks up catalog records by id
type BookFinder interface {
	Book(id string) (*domain.Book, bool)
}

// Resolve maps a preview identifier back to its record. The lookup goes
// against the whole catalog, so items rendered under an earlier filter stay
// resolvable. Unknown ids, including "", resolve to (nil, false).
func Resolve(id string, catalog BookFinder) (*domain.Book, bool) {
	if id == "" {
		return nil, false
	}
	return catalog.Book(id)
}
