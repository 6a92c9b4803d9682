package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Command factories for async operations

// LoadCatalogCmd loads the catalog at path (the built-in sample when empty)
func LoadCatalogCmd(loader CatalogLoader, path string) tea.Cmd {
	return func() tea.Msg {
		cat, err := loader.Load(path)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading catalog"}
		}
		return CatalogLoadedMsg{Catalog: cat}
	}
}

// SaveThemeCmd persists the theme choice
func SaveThemeCmd(save ThemeSaver, theme string) tea.Cmd {
	if save == nil {
		return nil
	}
	return func() tea.Msg {
		if err := save(theme); err != nil {
			return ErrMsg{Err: err, Context: "saving theme"}
		}
		return ThemeSavedMsg{Theme: theme}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
