// Package browse implements the filtering, pagination and list
// synchronization engine behind the catalog view.
package browse

import (
	"strings"

	"github.com/mmcdole/bookshelf/internal/domain"
	"golang.org/x/text/cases"
)

// Predicate is a compiled FilterSpec. The title query is case-folded once
// so matching a whole catalog does not refold it per record.
type Predicate struct {
	spec       domain.FilterSpec
	foldedText string
	anyTitle   bool
}

// Compile prepares spec for repeated matching
func Compile(spec domain.FilterSpec) Predicate {
	p := Predicate{spec: spec}
	if strings.TrimSpace(spec.TitleQuery) == "" {
		p.anyTitle = true
	} else {
		p.foldedText = cases.Fold().String(spec.TitleQuery)
	}
	return p
}

// Spec returns the FilterSpec the predicate was compiled from
func (p Predicate) Spec() domain.FilterSpec { return p.spec }

// Match reports whether b satisfies genre AND title AND author
func (p Predicate) Match(b *domain.Book) bool {
	genreMatch := p.spec.GenreID == domain.Any || b.HasGenre(p.spec.GenreID)
	titleMatch := p.anyTitle || strings.Contains(cases.Fold().String(b.Title), p.foldedText)
	authorMatch := p.spec.AuthorID == domain.Any || b.AuthorID == p.spec.AuthorID

	return genreMatch && titleMatch && authorMatch
}

// Matches decides whether a single book satisfies spec
func Matches(b *domain.Book, spec domain.FilterSpec) bool {
	return Compile(spec).Match(b)
}
