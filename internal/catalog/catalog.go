// Package catalog holds the immutable, preloaded collection of books and
// the author and genre name tables that go with it.
package catalog

import "github.com/mmcdole/bookshelf/internal/domain"

// Store is the read-only catalog. It is built once at startup and never
// mutated afterwards, so it is safe to share between goroutines.
type Store struct {
	books   []*domain.Book
	byID    map[string]*domain.Book
	authors domain.NameTable
	genres  domain.NameTable
}

// New builds a Store. Books keep the order given; the first book wins when
// ids repeat (the loader rejects duplicates before this point).
func New(books []*domain.Book, authors, genres domain.NameTable) *Store {
	s := &Store{
		books:   make([]*domain.Book, len(books)),
		byID:    make(map[string]*domain.Book, len(books)),
		authors: authors,
		genres:  genres,
	}
	copy(s.books, books)
	for _, b := range books {
		if _, ok := s.byID[b.ID]; !ok {
			s.byID[b.ID] = b
		}
	}
	return s
}

// FromSnapshot rebuilds a Store from its cached form
func FromSnapshot(snap domain.CatalogSnapshot) *Store {
	return New(snap.Books, domain.NewNameTable(snap.Authors), domain.NewNameTable(snap.Genres))
}

// Snapshot returns the serializable form of the store
func (s *Store) Snapshot() domain.CatalogSnapshot {
	return domain.CatalogSnapshot{
		Books:   s.Books(),
		Authors: s.authors.Entries(),
		Genres:  s.genres.Entries(),
	}
}

// Books returns all books in catalog order. The slice is a copy; the
// records themselves are shared and must not be modified.
func (s *Store) Books() []*domain.Book {
	out := make([]*domain.Book, len(s.books))
	copy(out, s.books)
	return out
}

// Book looks a record up by exact id
func (s *Store) Book(id string) (*domain.Book, bool) {
	b, ok := s.byID[id]
	return b, ok
}

func (s *Store) Len() int { return len(s.books) }

func (s *Store) Authors() domain.NameTable { return s.authors }
func (s *Store) Genres() domain.NameTable  { return s.genres }

// AuthorName returns the display name for an author id ("" if unknown)
func (s *Store) AuthorName(id string) string {
	name, _ := s.authors.Name(id)
	return name
}

// GenreName returns the display name for a genre id ("" if unknown)
func (s *Store) GenreName(id string) string {
	name, _ := s.genres.Name(id)
	return name
}
