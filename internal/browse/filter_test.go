package browse

import (
	"fmt"
	"testing"

	"github.com/mmcdole/bookshelf/internal/catalog"
	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/stretchr/testify/assert"
)

func book(id, title, author string, genres ...string) *domain.Book {
	return &domain.Book{ID: id, Title: title, AuthorID: author, GenreIDs: genres}
}

// newCatalog builds n books cycling through three authors and two genres
func newCatalog(n int) *catalog.Store {
	authors := domain.NewNameTable([]domain.NameEntry{
		{ID: "a1", Name: "Ann Author"},
		{ID: "a2", Name: "Bob Writer"},
		{ID: "a3", Name: "Cy Scribe"},
	})
	genres := domain.NewNameTable([]domain.NameEntry{
		{ID: "g1", Name: "Fantasy"},
		{ID: "g2", Name: "Mystery"},
	})

	books := make([]*domain.Book, n)
	for i := range books {
		books[i] = book(
			fmt.Sprintf("id-%02d", i),
			fmt.Sprintf("Volume %02d", i),
			fmt.Sprintf("a%d", i%3+1),
			fmt.Sprintf("g%d", i%2+1),
		)
	}
	return catalog.New(books, authors, genres)
}

func TestMatches(t *testing.T) {
	dune := book("1", "Dune Messiah", "herbert", "scifi", "classic")

	tests := []struct {
		name string
		spec domain.FilterSpec
		want bool
	}{
		{"all any", domain.MatchAll(), true},
		{"genre member", domain.NewFilterSpec("", "classic", "any"), true},
		{"genre not member", domain.NewFilterSpec("", "romance", "any"), false},
		{"title case-insensitive", domain.NewFilterSpec("MESSIAH", "any", "any"), true},
		{"title substring", domain.NewFilterSpec("une mes", "any", "any"), true},
		{"title miss", domain.NewFilterSpec("foundation", "any", "any"), false},
		{"title whitespace only", domain.NewFilterSpec("   ", "any", "any"), true},
		{"author exact", domain.NewFilterSpec("", "any", "herbert"), true},
		{"author case-sensitive", domain.NewFilterSpec("", "any", "Herbert"), false},
		{"author other", domain.NewFilterSpec("", "any", "asimov"), false},
		{"all three", domain.NewFilterSpec("dune", "scifi", "herbert"), true},
		{"two of three", domain.NewFilterSpec("dune", "scifi", "asimov"), false},
		{"empty genre and author normalized", domain.NewFilterSpec("dune", "", ""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(dune, tt.spec))
		})
	}
}

func TestMatches_IsConjunctionOfSubconditions(t *testing.T) {
	books := []*domain.Book{
		book("1", "Dune", "herbert", "scifi"),
		book("2", "Emma", "austen", "classic", "romance"),
		book("3", "The Hobbit", "tolkien", "fantasy", "classic"),
		book("4", "", "nobody"),
	}
	specs := []domain.FilterSpec{
		domain.MatchAll(),
		domain.NewFilterSpec("e", "classic", "any"),
		domain.NewFilterSpec("", "any", "austen"),
		domain.NewFilterSpec("HOB", "fantasy", "tolkien"),
		domain.NewFilterSpec("x", "scifi", "herbert"),
	}

	for _, b := range books {
		for _, spec := range specs {
			genre := spec.GenreID == domain.Any || b.HasGenre(spec.GenreID)
			title := Compile(domain.NewFilterSpec(spec.TitleQuery, "any", "any")).Match(b)
			author := spec.AuthorID == domain.Any || spec.AuthorID == b.AuthorID
			assert.Equal(t, genre && title && author, Matches(b, spec), "book %s spec %+v", b.ID, spec)
		}
	}
}

func TestMatches_UnicodeFolding(t *testing.T) {
	b := book("1", "Straße der Ölmühle", "a1")
	assert.True(t, Matches(b, domain.NewFilterSpec("STRASSE", "any", "any")))
	assert.True(t, Matches(b, domain.NewFilterSpec("ölmühle", "any", "any")))
}

func TestCompile_Spec(t *testing.T) {
	spec := domain.NewFilterSpec("dune", "g1", "a1")
	assert.Equal(t, spec, Compile(spec).Spec())
}

func catalogOf(books []*domain.Book) *catalog.Store {
	base := newCatalog(0)
	return catalog.New(books, base.Authors(), base.Genres())
}
