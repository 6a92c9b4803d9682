package tui

import "github.com/mmcdole/bookshelf/internal/catalog"

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// CatalogLoadedMsg signals that the catalog is ready to browse
type CatalogLoadedMsg struct {
	Catalog *catalog.Store
}

// ThemeSavedMsg signals that the theme choice was written to config
type ThemeSavedMsg struct {
	Theme string
}

// TickMsg drives the loading spinner
type TickMsg struct{}

// ClearStatusMsg clears the status line
type ClearStatusMsg struct{}
