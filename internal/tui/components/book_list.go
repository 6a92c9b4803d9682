package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/mmcdole/bookshelf/internal/tui/styles"
)

// Layout constants for the book list
const (
	// Border adds 1 char on each side
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2

	// Title line and the pinned show-more row
	ChromeLines = 2
)

// EmptyMessage is shown when a submitted filter matches nothing
const EmptyMessage = "No results found. Your filters might be too narrow."

// ListAction is what a key press on the list asks the app to do
type ListAction int

const (
	ActionNone ListAction = iota
	ActionOpen
	ActionShowMore
)

// BookList is a scrollable list of previews followed by a show-more row.
// The show-more row sits at index len(items) and is always present. Only
// the previews scroll; the show-more row stays pinned below them.
type BookList struct {
	items []domain.Preview

	cursor     int
	offset     int
	maxVisible int

	width  int
	height int

	title       string
	footer      string
	canMore     bool
	empty       bool
	suggestions []string
}

// NewBookList creates an empty book list
func NewBookList(title string) *BookList {
	return &BookList{title: title, footer: "Show more (0)"}
}

// Reset replaces every item and scrolls to the top
func (l *BookList) Reset(items []domain.Preview) {
	l.items = append([]domain.Preview(nil), items...)
	l.cursor = 0
	l.offset = 0
}

// Append adds items after the existing ones. The cursor stays where it is,
// so a cursor on the show-more row lands on the first new item.
func (l *BookList) Append(items []domain.Preview) {
	l.items = append(l.items, items...)
	l.ensureVisible()
}

// SetFooter updates the show-more row
func (l *BookList) SetFooter(label string, enabled bool) {
	l.footer = label
	l.canMore = enabled
}

// SetEmpty toggles the no-results message and its suggestions
func (l *BookList) SetEmpty(empty bool, suggestions []string) {
	l.empty = empty
	l.suggestions = suggestions
}

func (l *BookList) SetTitle(title string) { l.title = title }

func (l *BookList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.recalcMaxVisible()
	l.ensureVisible()
}

// Items returns a copy of the previews in display order
func (l *BookList) Items() []domain.Preview {
	return append([]domain.Preview(nil), l.items...)
}

// Len returns the number of previews (the show-more row excluded)
func (l *BookList) Len() int { return len(l.items) }

// Cursor returns the cursor row
func (l *BookList) Cursor() int { return l.cursor }

// OnFooter reports whether the cursor is on the show-more row
func (l *BookList) OnFooter() bool { return l.cursor == len(l.items) }

// Selected returns the preview under the cursor
func (l *BookList) Selected() (domain.Preview, bool) {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return domain.Preview{}, false
	}
	return l.items[l.cursor], true
}

// HandleKey moves the cursor or reports the action a key asks for
func (l *BookList) HandleKey(msg tea.KeyMsg) ListAction {
	rows := len(l.items) + 1
	half := max(l.maxVisible/2, 1)

	switch {
	case key.Matches(msg, BookListKeys.Down):
		if l.cursor < rows-1 {
			l.cursor++
		}
	case key.Matches(msg, BookListKeys.Up):
		if l.cursor > 0 {
			l.cursor--
		}
	case key.Matches(msg, BookListKeys.Home):
		l.cursor = 0
	case key.Matches(msg, BookListKeys.End):
		l.cursor = rows - 1
	case key.Matches(msg, BookListKeys.HalfDown):
		l.cursor = min(l.cursor+half, rows-1)
	case key.Matches(msg, BookListKeys.HalfUp):
		l.cursor = max(l.cursor-half, 0)
	case key.Matches(msg, BookListKeys.ShowMore):
		return l.showMore()
	case key.Matches(msg, BookListKeys.Open, BookListKeys.Press):
		if l.OnFooter() {
			return l.showMore()
		}
		if key.Matches(msg, BookListKeys.Open) {
			return ActionOpen
		}
	}
	l.ensureVisible()
	return ActionNone
}

func (l *BookList) showMore() ListAction {
	if !l.canMore {
		return ActionNone
	}
	return ActionShowMore
}

// View renders the list inside a border sized to the component
func (l *BookList) View() string {
	style := styles.ActiveBorder
	frameW, frameH := style.GetFrameSize()
	inner := max(l.width-frameW, 10)

	var b strings.Builder
	b.WriteString(styles.AccentStyle.Render(styles.Truncate(l.title, inner)))
	b.WriteString("\n")

	if l.empty {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(styles.Truncate(EmptyMessage, inner)))
		b.WriteString("\n")
		if len(l.suggestions) > 0 {
			b.WriteString("\n")
			b.WriteString(styles.DimStyle.Render("Did you mean:"))
			b.WriteString("\n")
			for _, s := range l.suggestions {
				b.WriteString(styles.SubtitleStyle.Render("  " + styles.Truncate(s, inner-2)))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
		b.WriteString(l.renderFooterRow(inner))
		return style.Width(inner).Height(max(l.height-frameH, 1)).Render(b.String())
	}

	end := min(l.offset+l.maxVisible, len(l.items))
	if l.maxVisible <= 0 {
		end = len(l.items)
	}

	up := " "
	if l.offset > 0 {
		up = styles.DimStyle.Render("↑ more")
	}
	b.WriteString(up)
	b.WriteString("\n")

	for i := l.offset; i < end; i++ {
		b.WriteString(l.renderItem(l.items[i], i == l.cursor, inner))
		b.WriteString("\n")
	}

	down := " "
	if end < len(l.items) {
		down = styles.DimStyle.Render("↓ more")
	}
	b.WriteString(down)
	b.WriteString("\n")
	b.WriteString(l.renderFooterRow(inner))

	return style.Width(inner).Height(max(l.height-frameH, 1)).Render(b.String())
}

func (l *BookList) renderItem(p domain.Preview, selected bool, width int) string {
	title := p.Title
	author := ""
	if p.Author != "" {
		author = " · " + p.Author
	}
	// Author is cut before the title
	room := width - 2
	if len([]rune(title))+len([]rune(author)) > room {
		author = styles.Truncate(author, max(room-len([]rune(title)), 0))
		title = styles.Truncate(title, room-len([]rune(author)))
	}

	muted := styles.Current.Muted
	parts := []styles.RowPart{{Text: title}}
	if author != "" {
		parts = append(parts, styles.RowPart{Text: author, Foreground: &muted})
	}
	return styles.RenderListRow(parts, selected, width)
}

func (l *BookList) renderFooterRow(width int) string {
	label := fmt.Sprintf("[ %s ]", l.footer)
	selected := l.OnFooter()
	if !l.canMore {
		muted := styles.Current.Muted
		return styles.RenderListRow([]styles.RowPart{{Text: label, Foreground: &muted}}, selected, width)
	}
	accent := styles.Current.Accent
	return styles.RenderListRow([]styles.RowPart{{Text: label, Foreground: &accent}}, selected, width)
}

func (l *BookList) recalcMaxVisible() {
	// Interior height minus the title, the show-more row and both indicators
	l.maxVisible = l.height - BorderHeight - ScrollIndicatorLines - ChromeLines
	if l.maxVisible < 1 {
		l.maxVisible = 1
	}
}

func (l *BookList) ensureVisible() {
	if l.maxVisible <= 0 {
		return
	}
	// The show-more row is always drawn; scroll to the last preview for it
	row := min(l.cursor, len(l.items)-1)
	if row < 0 {
		l.offset = 0
		return
	}
	if row < l.offset {
		l.offset = row
	}
	if row >= l.offset+l.maxVisible {
		l.offset = row - l.maxVisible + 1
	}
}
