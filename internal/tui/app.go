package tui

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/bookshelf/internal/browse"
	"github.com/mmcdole/bookshelf/internal/catalog"
	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/mmcdole/bookshelf/internal/tui/components"
	"github.com/mmcdole/bookshelf/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateLoading ApplicationState = iota
	StateBrowsing
	StateHelp
	StateFailed
)

// Layout
const (
	// Vertical layout: single footer line
	ChromeHeight = 1

	// Suggestions offered under the no-results message
	SuggestionLimit = 3
)

// CatalogLoader loads the catalog the app browses
type CatalogLoader interface {
	Load(path string) (*catalog.Store, error)
}

// ThemeSaver persists a theme choice
type ThemeSaver func(theme string) error

// Options configures a Model
type Options struct {
	Loader         CatalogLoader
	CatalogPath    string
	PageSize       int
	Theme          string // configured theme: auto, day or night
	DarkBackground bool   // terminal background, used when Theme is auto
	SaveTheme      ThemeSaver
	Logger         *slog.Logger
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	Loader      CatalogLoader
	CatalogPath string
	Catalog     *catalog.Store
	Browser     *browse.Browser

	// UI Components
	List     *components.BookList
	Search   components.SearchModal
	Detail   components.DetailCard
	Settings components.SettingsModal

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg    string
	StatusIsErr  bool
	SpinnerFrame int
	Theme        string // active palette name

	pageSize       int
	darkBackground bool
	saveTheme      ThemeSaver
	logger         *slog.Logger
}

// NewModel creates a new application model and applies the initial theme
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	styles.Apply(styles.ForTheme(opts.Theme, opts.DarkBackground))

	return Model{
		State:          StateLoading,
		Loader:         opts.Loader,
		CatalogPath:    opts.CatalogPath,
		List:           components.NewBookList("Books"),
		Detail:         components.NewDetailCard(),
		Settings:       components.NewSettingsModal(),
		Theme:          styles.Current.Name,
		pageSize:       opts.PageSize,
		darkBackground: opts.DarkBackground,
		saveTheme:      opts.SaveTheme,
		logger:         logger,
	}
}

// Init starts loading the catalog
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadCatalogCmd(m.Loader, m.CatalogPath),
		TickCmd(100*time.Millisecond),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		if m.State != StateLoading {
			return m, nil
		}
		m.SpinnerFrame++
		return m, TickCmd(100 * time.Millisecond)

	case CatalogLoadedMsg:
		m.startBrowsing(msg.Catalog)
		return m, nil

	case ThemeSavedMsg:
		m.StatusMsg = fmt.Sprintf("Theme set to %s", msg.Theme)
		m.StatusIsErr = false
		return m, ClearStatusCmd(3 * time.Second)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil

	case ErrMsg:
		m.logger.Error("tui error", "context", msg.Context, "error", msg.Err)
		m.StatusMsg = msg.Error()
		m.StatusIsErr = true
		if m.State == StateLoading {
			m.State = StateFailed
			return m, nil
		}
		return m, ClearStatusCmd(5 * time.Second)
	}

	// Cursor blink and similar messages go to the search input
	if m.Search.IsVisible() {
		var cmd tea.Cmd
		m.Search, cmd, _ = m.Search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// startBrowsing wires a freshly loaded catalog into the browser and list
func (m *Model) startBrowsing(cat *catalog.Store) {
	m.Catalog = cat
	m.Browser = browse.New(cat, m.pageSize, m.logger)
	m.Search = components.NewSearchModal(cat.Genres(), cat.Authors())
	m.State = StateBrowsing
	m.applyBatch(browse.Batch{Reset: true, Items: m.Browser.Items()})
	m.updateLayout()
}

// applyBatch syncs the list component with a browser change
func (m *Model) applyBatch(batch browse.Batch) {
	if batch.Reset {
		m.List.Reset(batch.Items)
	} else {
		m.List.Append(batch.Items)
	}
	m.List.SetFooter(m.Browser.ShowMoreLabel(), m.Browser.CanShowMore())
	m.List.SetEmpty(m.Browser.EmptyState(), m.Browser.Suggestions(SuggestionLimit))
	m.List.SetTitle(m.listTitle())
}

// submit applies a filter from the search modal
func (m *Model) submit(spec domain.FilterSpec) {
	m.applyBatch(m.Browser.Submit(spec))
}

// openDetail resolves the selected preview and shows its record
func (m *Model) openDetail() {
	p, ok := m.List.Selected()
	if !ok {
		return
	}
	book, ok := m.Browser.Resolve(p.ID)
	if !ok {
		// Stale handle: nothing to show
		m.logger.Warn("selected book not in catalog", "id", p.ID)
		return
	}

	genres := make([]string, 0, len(book.GenreIDs))
	for _, g := range book.GenreIDs {
		if name := m.Catalog.GenreName(g); name != "" {
			genres = append(genres, name)
		}
	}
	m.Detail.Show(book, m.Catalog.AuthorName(book.AuthorID), genres)
	m.Detail.SetSize(m.Width, m.Height)
}

// setTheme applies a theme now and persists it in the background
func (m *Model) setTheme(theme string) tea.Cmd {
	styles.Apply(styles.ForTheme(theme, m.darkBackground))
	m.Theme = styles.Current.Name
	m.logger.Info("theme changed", "theme", m.Theme)
	return SaveThemeCmd(m.saveTheme, m.Theme)
}
