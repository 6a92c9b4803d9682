package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/mmcdole/bookshelf/internal/tui/styles"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// RenderSpinner renders one frame of the loading spinner
func RenderSpinner(frame int) string {
	return styles.AccentStyle.Render(spinnerFrames[frame%len(spinnerFrames)])
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	switch m.State {
	case StateLoading:
		return lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			RenderSpinner(m.SpinnerFrame)+" "+styles.DimStyle.Render("Loading catalog..."))
	case StateFailed:
		return lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			styles.ModalStyle.Render(
				styles.ErrorStyle.Width(min(m.Width-8, 70)).Render(m.StatusMsg)+
					"\n\n"+styles.DimStyle.Render("Press q to quit")))
	case StateHelp:
		return m.renderHelp()
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.List.View(),
		m.renderFooter(),
	)

	// Overlays replace the list while open
	switch {
	case m.Search.IsVisible():
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.Search.View())
	case m.Detail.IsVisible():
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.Detail.View())
	case m.Settings.IsVisible():
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.Settings.View())
	}

	return view
}

// listTitle describes what the list shows: counts plus the active filter
func (m Model) listTitle() string {
	if m.Browser == nil {
		return "Books"
	}
	title := fmt.Sprintf("Books · %d of %d", m.Browser.Len(), m.Browser.MatchCount())
	if desc := m.describeFilter(m.Browser.Filter()); desc != "" {
		title += " · " + desc
	}
	return title
}

// describeFilter renders the non-neutral parts of a filter
func (m Model) describeFilter(spec domain.FilterSpec) string {
	var parts []string
	if strings.TrimSpace(spec.TitleQuery) != "" {
		parts = append(parts, fmt.Sprintf("%q", spec.TitleQuery))
	}
	if spec.GenreID != domain.Any && spec.GenreID != "" {
		parts = append(parts, m.Catalog.GenreName(spec.GenreID))
	}
	if spec.AuthorID != domain.Any && spec.AuthorID != "" {
		parts = append(parts, m.Catalog.AuthorName(spec.AuthorID))
	}
	return strings.Join(parts, " · ")
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	}

	right := styles.HelpKeyStyle.Render("/") + styles.HelpDescStyle.Render(" search  ") +
		styles.HelpKeyStyle.Render("m") + styles.HelpDescStyle.Render(" more  ") +
		styles.HelpKeyStyle.Render("?") + styles.HelpDescStyle.Render(" help")

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
NAVIGATION                      SEARCH
  j/k        Up/down               /      Search title, genre, author
  g/Home     First item            Tab    Next search field
  G/End      Last item             c      Clear filters
  Ctrl+u/d   Scroll half page
  Enter      Details / show more  OTHER
  m          Show more             t      Theme
                                   q      Quit
                                   Esc    Close

Press any key to return...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}
