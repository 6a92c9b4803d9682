package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/bookshelf/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Handle state-specific keys
	switch m.State {
	case StateHelp:
		m.State = StateBrowsing
		return m, nil

	case StateLoading, StateFailed:
		if key.Matches(msg, Keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	// Route to active modal if any
	if handled, newModel, cmd := m.routeToModal(msg); handled {
		return newModel, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Search):
		m.Search.SetSize(m.Width, m.Height)
		return m, m.Search.Show(m.Browser.Filter())

	case key.Matches(msg, Keys.Settings):
		m.Settings.Show(m.Theme)
		return m, nil

	case key.Matches(msg, Keys.Clear):
		if !m.Browser.Filtered() {
			return m, nil
		}
		m.applyBatch(m.Browser.Clear())
		m.StatusMsg = "Filters cleared"
		m.StatusIsErr = false
		return m, ClearStatusCmd(2 * time.Second)
	}

	switch m.List.HandleKey(msg) {
	case components.ActionOpen:
		m.openDetail()
	case components.ActionShowMore:
		m.applyBatch(m.Browser.ShowMore())
	}
	return m, nil
}

// routeToModal sends keys to the visible overlay. Overlays consume every key.
func (m Model) routeToModal(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	if m.Search.IsVisible() {
		var cmd tea.Cmd
		var submitted bool
		m.Search, cmd, submitted = m.Search.Update(msg)
		if submitted {
			spec := m.Search.Spec()
			m.Search.Hide()
			m.submit(spec)
		}
		return true, m, cmd
	}

	if m.Detail.IsVisible() {
		if key.Matches(msg, Keys.Escape, Keys.Quit, components.BookListKeys.Open) {
			m.Detail.Hide()
		}
		return true, m, nil
	}

	if m.Settings.IsVisible() {
		handled, theme := m.Settings.HandleKey(msg.String())
		if theme != "" {
			return true, m, m.setTheme(theme)
		}
		return handled, m, nil
	}

	return false, m, nil
}
