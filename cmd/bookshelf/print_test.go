package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mmcdole/bookshelf/internal/browse"
	"github.com/mmcdole/bookshelf/internal/catalog"
	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/mmcdole/bookshelf/internal/log"
	"github.com/mmcdole/bookshelf/internal/tui/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBrowser(t *testing.T, pageSize int) *browse.Browser {
	t.Helper()
	cat, err := catalog.NewLoader(nil, log.NullLogger()).Load("")
	require.NoError(t, err)
	return browse.New(cat, pageSize, log.NullLogger())
}

func TestPrintBrowse_Pages(t *testing.T) {
	b := sampleBrowser(t, 15)
	var buf bytes.Buffer

	require.NoError(t, printBrowse(&buf, b, 2))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 31)
	assert.Equal(t, "b01    Dune · Frank Herbert", lines[0])
	assert.Equal(t, "Show more (10) [more available]", lines[30])
}

func TestPrintBrowse_AllPages(t *testing.T) {
	b := sampleBrowser(t, 15)
	var buf bytes.Buffer

	require.NoError(t, printBrowse(&buf, b, 10))

	assert.True(t, strings.HasSuffix(buf.String(), "Show more (0) [end of list]\n"))
	assert.Equal(t, 40, b.Len())
}

func TestPrintBrowse_NoResults(t *testing.T) {
	b := sampleBrowser(t, 15)
	b.Submit(domain.NewFilterSpec("zzz", "any", "any"))
	var buf bytes.Buffer

	require.NoError(t, printBrowse(&buf, b, 1))

	assert.Equal(t, components.EmptyMessage+"\n", buf.String())
}
