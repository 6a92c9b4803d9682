package main

import (
	"fmt"
	"io"

	"github.com/mmcdole/bookshelf/internal/browse"
	"github.com/mmcdole/bookshelf/internal/tui/components"
)

// printBrowse writes the first pages of the browser's list, then the
// show-more line or the no-results message
func printBrowse(w io.Writer, b *browse.Browser, pages int) error {
	for i := 1; i < pages && b.CanShowMore(); i++ {
		b.ShowMore()
	}

	if b.EmptyState() {
		if _, err := fmt.Fprintln(w, components.EmptyMessage); err != nil {
			return err
		}
		for _, s := range b.Suggestions(3) {
			if _, err := fmt.Fprintf(w, "  did you mean: %s\n", s); err != nil {
				return err
			}
		}
		return nil
	}

	for _, p := range b.Items() {
		line := p.Title
		if p.Author != "" {
			line += " · " + p.Author
		}
		if _, err := fmt.Fprintf(w, "%-6s %s\n", p.ID, line); err != nil {
			return err
		}
	}

	status := "more available"
	if !b.CanShowMore() {
		status = "end of list"
	}
	_, err := fmt.Fprintf(w, "%s [%s]\n", b.ShowMoreLabel(), status)
	return err
}
