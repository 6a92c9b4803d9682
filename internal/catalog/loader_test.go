package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/mmcdole/bookshelf/internal/log"
	"github.com/mmcdole/bookshelf/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallCatalog = `
authors:
  zed: Zed Zimmer
  amy: Amy Adams
genres:
  poetry: Poetry
  essays: Essays
books:
  - id: one
    title: First Light
    author: zed
    genres: [poetry]
    published: 2001-02-03T00:00:00Z
  - id: two
    title: Second Thoughts
    author: amy
    genres: [essays, poetry]
    image: https://example.org/two.png
`

func newTestLoader(t *testing.T) *Loader {
	t.Helper()
	s, err := store.NewSnapshotStore("")
	require.NoError(t, err)
	return NewLoader(s, log.NullLogger())
}

func TestLoad_SampleCatalog(t *testing.T) {
	cat, err := newTestLoader(t).Load("")
	require.NoError(t, err)

	require.Equal(t, 40, cat.Len())
	books := cat.Books()
	assert.Equal(t, "b01", books[0].ID)
	assert.Equal(t, "Dune", books[0].Title)
	assert.Equal(t, 1965, books[0].Year())
	assert.Equal(t, "b40", books[39].ID)

	assert.Equal(t, 15, cat.Authors().Len())
	assert.Equal(t, 8, cat.Genres().Len())
	assert.Equal(t, "Frank Herbert", cat.AuthorName("herbert"))
	assert.Equal(t, "Science Fiction", cat.GenreName("scifi"))
}

func TestParse_PreservesDocumentOrder(t *testing.T) {
	cat, err := newTestLoader(t).Parse([]byte(smallCatalog))
	require.NoError(t, err)

	authors := cat.Authors().Entries()
	require.Len(t, authors, 2)
	assert.Equal(t, "zed", authors[0].ID)
	assert.Equal(t, "amy", authors[1].ID)

	books := cat.Books()
	require.Len(t, books, 2)
	assert.Equal(t, "one", books[0].ID)
	assert.Equal(t, []string{"essays", "poetry"}, books[1].GenreIDs)
	assert.Equal(t, 0, books[1].Year())
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{
			name: "missing title",
			yaml: `
authors: {a: A}
books:
  - id: x
    author: a
`,
			wantMsg: "Title is required",
		},
		{
			name: "bad image url",
			yaml: `
authors: {a: A}
books:
  - id: x
    title: X
    author: a
    image: not a url
`,
			wantMsg: "Image must be a valid URL",
		},
		{
			name: "unknown author",
			yaml: `
authors: {a: A}
books:
  - id: x
    title: X
    author: b
`,
			wantMsg: `unknown author "b"`,
		},
		{
			name: "unknown genre",
			yaml: `
authors: {a: A}
genres: {g: G}
books:
  - id: x
    title: X
    author: a
    genres: [g, h]
`,
			wantMsg: `unknown genre "h"`,
		},
		{
			name: "duplicate id",
			yaml: `
authors: {a: A}
books:
  - {id: x, title: X, author: a}
  - {id: x, title: Y, author: a}
`,
			wantMsg: `id "x" already used by books[0]`,
		},
		{
			name:    "reserved author id",
			yaml:    "authors: {any: Everyone}\n",
			wantMsg: `authors id "any"`,
		},
		{
			name:    "genres not a mapping",
			yaml:    "genres: [a, b]\n",
			wantMsg: "genres must be a mapping",
		},
		{
			name:    "unknown field",
			yaml:    "shelves: {}\n",
			wantMsg: "shelves",
		},
	}

	l := newTestLoader(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := newTestLoader(t).Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, domain.ErrCatalogNotFound)
}

func TestLoad_UsesFreshSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallCatalog), 0644))
	stamp := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(path, stamp, stamp))

	l := newTestLoader(t)
	first, err := l.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, first.Len())

	// Same mtime: the broken file is never parsed
	require.NoError(t, os.WriteFile(path, []byte("books: [oops"), 0644))
	require.NoError(t, os.Chtimes(path, stamp, stamp))

	cached, err := l.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cached.Len())
	assert.Equal(t, "Amy Adams", cached.AuthorName("amy"))

	// Newer mtime: the file is parsed again
	newer := stamp.Add(time.Minute)
	require.NoError(t, os.Chtimes(path, newer, newer))
	_, err = l.Load(path)
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
}

func TestStore_LookupAndCopies(t *testing.T) {
	cat, err := newTestLoader(t).Parse([]byte(smallCatalog))
	require.NoError(t, err)

	b, ok := cat.Book("two")
	require.True(t, ok)
	assert.Equal(t, "Second Thoughts", b.Title)

	_, ok = cat.Book("three")
	assert.False(t, ok)
	assert.Equal(t, "", cat.AuthorName("nobody"))

	books := cat.Books()
	books[0] = nil
	assert.NotNil(t, cat.Books()[0])
}

func TestFromSnapshot_RoundTrip(t *testing.T) {
	cat, err := newTestLoader(t).Parse([]byte(smallCatalog))
	require.NoError(t, err)

	again := FromSnapshot(cat.Snapshot())

	assert.Equal(t, cat.Books(), again.Books())
	assert.Equal(t, cat.Authors().Entries(), again.Authors().Entries())
	assert.Equal(t, cat.Genres().Entries(), again.Genres().Entries())
}
