package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/mmcdole/bookshelf/internal/tui/styles"
)

// Labels of the "no constraint" picker options
const (
	AllGenresLabel  = "All Genres"
	AllAuthorsLabel = "All Authors"
)

// SearchField identifies the focused field of the search modal
type SearchField int

const (
	FieldTitle SearchField = iota
	FieldGenre
	FieldAuthor
	fieldCount
)

// SearchModal is the search form: a title input plus genre and author
// pickers. Submitting yields a fresh FilterSpec.
type SearchModal struct {
	visible bool
	focus   SearchField
	width   int

	title  textinput.Model
	genre  OptionPicker
	author OptionPicker
}

// NewSearchModal creates the modal with pickers over the given tables
func NewSearchModal(genres, authors domain.NameTable) SearchModal {
	ti := textinput.New()
	ti.Placeholder = "Title contains..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "Title: "

	return SearchModal{
		title:  ti,
		genre:  NewOptionPicker("Genre", OptionsFromTable(AllGenresLabel, genres)),
		author: NewOptionPicker("Author", OptionsFromTable(AllAuthorsLabel, authors)),
	}
}

// Show opens the modal prefilled with the active filter
func (s *SearchModal) Show(current domain.FilterSpec) tea.Cmd {
	s.visible = true
	s.title.SetValue(current.TitleQuery)
	s.title.CursorEnd()
	s.genre.Select(current.GenreID)
	s.author.Select(current.AuthorID)
	return s.setFocus(FieldTitle)
}

// Hide dismisses the modal
func (s *SearchModal) Hide() {
	s.visible = false
	s.title.Blur()
	s.genre.Blur()
	s.author.Blur()
}

// IsVisible returns whether the modal is shown
func (s SearchModal) IsVisible() bool { return s.visible }

// Focused returns the focused field
func (s SearchModal) Focused() SearchField { return s.focus }

// SetSize updates the modal width from the terminal size
func (s *SearchModal) SetSize(width, _ int) {
	s.width = min(max(width*2/3, 40), 80)
	s.title.Width = s.width - 14
}

// Spec builds the filter the form currently describes
func (s SearchModal) Spec() domain.FilterSpec {
	return domain.NewFilterSpec(s.title.Value(), s.genre.Value(), s.author.Value())
}

func (s *SearchModal) setFocus(f SearchField) tea.Cmd {
	s.focus = f
	s.title.Blur()
	s.genre.Blur()
	s.author.Blur()

	switch f {
	case FieldGenre:
		s.genre.Focus()
	case FieldAuthor:
		s.author.Focus()
	default:
		return s.title.Focus()
	}
	return nil
}

// Update handles messages, returns (modal, cmd, submitted)
func (s SearchModal) Update(msg tea.Msg) (SearchModal, tea.Cmd, bool) {
	if !s.visible {
		return s, nil, false
	}

	var cmd tea.Cmd
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, SearchKeys.Escape):
			s.Hide()
			return s, nil, false

		case key.Matches(keyMsg, SearchKeys.Submit):
			return s, nil, true

		case key.Matches(keyMsg, SearchKeys.Next):
			return s, s.setFocus((s.focus + 1) % fieldCount), false

		case key.Matches(keyMsg, SearchKeys.Previous):
			return s, s.setFocus((s.focus + fieldCount - 1) % fieldCount), false
		}

		switch s.focus {
		case FieldGenre:
			s.genre = s.genre.Update(keyMsg)
			return s, nil, false
		case FieldAuthor:
			s.author = s.author.Update(keyMsg)
			return s, nil, false
		}
	}

	s.title, cmd = s.title.Update(msg)
	return s, cmd, false
}

// View renders the modal
func (s SearchModal) View() string {
	if !s.visible {
		return ""
	}

	width := s.width
	if width == 0 {
		width = 40
	}
	s.title.PromptStyle = styles.DimStyle
	if s.focus == FieldTitle {
		s.title.PromptStyle = styles.FilterPromptStyle
	}
	s.title.TextStyle = styles.FilterStyle
	s.title.PlaceholderStyle = styles.DimStyle

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Search"))
	b.WriteString("\n")
	b.WriteString(s.title.View())
	b.WriteString("\n\n")
	b.WriteString(s.genre.View(width - 6))
	b.WriteString("\n\n")
	b.WriteString(s.author.View(width - 6))
	b.WriteString("\n\n")
	b.WriteString(renderHelp([][2]string{
		{"tab", "next field"},
		{"↑/↓", "choose"},
		{"enter", "search"},
		{"esc", "cancel"},
	}))

	content := lipgloss.NewStyle().
		Width(width - 6).
		Render(b.String())

	return styles.ModalStyle.Render(content)
}

// renderHelp renders key/description pairs on one line
func renderHelp(pairs [][2]string) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, styles.HelpKeyStyle.Render(p[0])+" "+styles.HelpDescStyle.Render(p[1]))
	}
	return strings.Join(parts, "  ")
}
