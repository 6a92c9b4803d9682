package browse

import "github.com/mmcdole/bookshelf/internal/domain"

// MatchSet is the ordered subset of the catalog satisfying a filter. It is
// recomputed wholesale on every filter change, never patched.
type MatchSet struct {
	books   []*domain.Book
	spec    domain.FilterSpec
	applied bool
}

// Unfiltered wraps the full catalog as the initial set shown before any
// search has been submitted
func Unfiltered(books []*domain.Book) MatchSet {
	return MatchSet{books: books, spec: domain.MatchAll()}
}

// ComputeMatches rescans books in order and keeps those matching spec.
// The result is always marked as applied, even when empty.
func ComputeMatches(books []*domain.Book, spec domain.FilterSpec) MatchSet {
	pred := Compile(spec)
	out := make([]*domain.Book, 0, len(books))
	for _, b := range books {
		if pred.Match(b) {
			out = append(out, b)
		}
	}
	return MatchSet{books: out, spec: spec, applied: true}
}

// Books returns the matched records in catalog order
func (m MatchSet) Books() []*domain.Book { return m.books }

func (m MatchSet) Len() int { return len(m.books) }

// Spec returns the filter this set was computed from
func (m MatchSet) Spec() domain.FilterSpec { return m.spec }

// Applied reports whether the set came from a submitted filter
func (m MatchSet) Applied() bool { return m.applied }

// Empty reports whether a submitted filter matched nothing. An unfiltered
// set over an empty catalog is not considered empty in this sense.
func (m MatchSet) Empty() bool { return m.applied && len(m.books) < 1 }
