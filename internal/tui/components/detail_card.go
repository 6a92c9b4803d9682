package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/mmcdole/bookshelf/internal/tui/styles"
)

// DetailCard is the overlay showing one resolved book
type DetailCard struct {
	visible bool
	book    *domain.Book
	author  string
	genres  []string
	width   int
	height  int
}

// NewDetailCard creates a hidden detail card
func NewDetailCard() DetailCard {
	return DetailCard{}
}

// Show opens the card for book. author and genres are display names.
func (d *DetailCard) Show(book *domain.Book, author string, genres []string) {
	d.visible = true
	d.book = book
	d.author = author
	d.genres = genres
}

// Hide dismisses the card
func (d *DetailCard) Hide() {
	d.visible = false
	d.book = nil
}

// IsVisible returns whether the card is shown
func (d DetailCard) IsVisible() bool { return d.visible }

// Book returns the book on display
func (d DetailCard) Book() *domain.Book { return d.book }

// SetSize updates the card dimensions from the terminal size
func (d *DetailCard) SetSize(width, height int) {
	d.width = min(max(width*2/3, 40), 90)
	d.height = height
}

// Subtitle is "Author (Year)", or just the author when the year is unknown
func Subtitle(author string, year int) string {
	if year == 0 {
		return author
	}
	return fmt.Sprintf("%s (%d)", author, year)
}

// View renders the card
func (d DetailCard) View() string {
	if !d.visible || d.book == nil {
		return ""
	}

	width := d.width
	if width == 0 {
		width = 60
	}
	inner := width - 6

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(styles.Truncate(d.book.Title, inner)))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(Subtitle(d.author, d.book.Year())))
	b.WriteString("\n")

	if len(d.genres) > 0 {
		b.WriteString("\n")
		badges := make([]string, 0, len(d.genres))
		for _, g := range d.genres {
			badges = append(badges, styles.DimBadgeStyle.Render(g))
		}
		b.WriteString(strings.Join(badges, " "))
		b.WriteString("\n")
	}

	if d.book.Image != "" {
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render("Cover: "))
		b.WriteString(styles.AccentStyle.Render(styles.Truncate(d.book.Image, inner-7)))
		b.WriteString("\n")
	}

	if d.book.Description != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(styles.Current.Text).
			Width(inner).
			Render(d.book.Description))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHelp([][2]string{{"esc", "close"}}))

	return styles.ModalStyle.Render(b.String())
}
