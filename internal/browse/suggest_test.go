package browse

import (
	"testing"

	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSuggestTitles(t *testing.T) {
	books := []*domain.Book{
		book("1", "Frankenstein", "shelley"),
		book("2", "Foundation", "asimov"),
		book("3", "The Last Man", "shelley"),
	}

	assert.Equal(t, []string{"Frankenstein"}, SuggestTitles("frnkstn", books, 5))
	assert.Empty(t, SuggestTitles("qqq", books, 5))
}

func TestSuggestTitles_RespectsLimitAndOrder(t *testing.T) {
	books := []*domain.Book{
		book("1", "Dune Messiah", "a"),
		book("2", "Dune", "a"),
		book("3", "Children of Dune", "a"),
	}

	got := SuggestTitles("dn", books, 2)

	// "Dune" is the closest; ties fall back to catalog order
	assert.Equal(t, []string{"Dune", "Dune Messiah"}, got)
}

func TestBrowser_SuggestionsOnlyForEmptyTitleSearch(t *testing.T) {
	books := []*domain.Book{
		book("1", "Frankenstein", "a1", "g1"),
		book("2", "Foundation", "a2", "g2"),
	}
	b := New(catalogOf(books), 10, nil)

	assert.Nil(t, b.Suggestions(3), "no filter applied yet")

	b.Submit(domain.NewFilterSpec("frnkstn", "any", "any"))
	assert.Equal(t, []string{"Frankenstein"}, b.Suggestions(3))

	b.Submit(domain.NewFilterSpec("found", "any", "any"))
	assert.Nil(t, b.Suggestions(3), "search has results")

	b.Submit(domain.NewFilterSpec("", "g1", "a2"))
	assert.Nil(t, b.Suggestions(3), "no title query")
}
