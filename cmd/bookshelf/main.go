package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/bookshelf/internal/browse"
	"github.com/mmcdole/bookshelf/internal/catalog"
	"github.com/mmcdole/bookshelf/internal/config"
	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/mmcdole/bookshelf/internal/log"
	"github.com/mmcdole/bookshelf/internal/store"
	"github.com/mmcdole/bookshelf/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

// flags holds the command line options
type flags struct {
	catalogPath string
	print       bool
	title       string
	genre       string
	author      string
	pages       int
	refresh     bool
	clearCache  bool
}

func main() {
	var (
		showVersion bool
		f           flags
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&f.catalogPath, "catalog", "", "catalog YAML file (overrides config)")
	flag.BoolVar(&f.print, "print", false, "print matching books instead of starting the TUI")
	flag.StringVar(&f.title, "title", "", "title filter for -print")
	flag.StringVar(&f.genre, "genre", domain.Any, "genre id filter for -print")
	flag.StringVar(&f.author, "author", domain.Any, "author id filter for -print")
	flag.IntVar(&f.pages, "pages", 1, "pages to print with -print")
	flag.BoolVar(&f.refresh, "refresh", false, "reparse the catalog, ignoring the cached snapshot")
	flag.BoolVar(&f.clearCache, "clear-cache", false, "drop every cached catalog snapshot")
	flag.Parse()

	if showVersion {
		fmt.Printf("bookshelf %s\n", Version)
		return
	}

	if err := run(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(f flags) error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if f.catalogPath != "" {
		cfg.Catalog.Path = f.catalogPath
	}

	headless := f.print || !term.IsTerminal(int(os.Stdout.Fd()))

	// Headless runs own the terminal; warnings also go to stderr there
	var console io.Writer
	if headless {
		console = os.Stderr
	}

	var logger *slog.Logger
	fileLogger, err := log.SetupLogger(&cfg.Logging, console)
	switch {
	case err == nil:
		defer fileLogger.Close()
		logger = fileLogger.Logger
	case headless:
		logger = log.ConsoleLogger(os.Stderr)
	default:
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting bookshelf", "version", Version)

	snapshots, err := store.NewSnapshotStore(cfg.Cache.Dir)
	if err != nil {
		// The cache is an optimization; browse without it
		logger.Warn("snapshot cache unavailable", "error", err)
		snapshots, _ = store.NewSnapshotStore("")
	}
	defer snapshots.Close()

	if f.clearCache {
		snapshots.InvalidateAll()
		logger.Info("snapshot cache cleared")
	}
	if f.refresh && cfg.Catalog.Path != "" {
		if abs, err := filepath.Abs(cfg.Catalog.Path); err == nil {
			snapshots.Invalidate(abs)
		}
	}

	loader := catalog.NewLoader(snapshots, logger)

	if headless {
		return runHeadless(loader, cfg, f, logger)
	}

	model := tui.NewModel(tui.Options{
		Loader:         loader,
		CatalogPath:    cfg.Catalog.Path,
		PageSize:       cfg.UI.PageSize,
		Theme:          cfg.UI.Theme,
		DarkBackground: lipgloss.HasDarkBackground(),
		SaveTheme:      config.SaveTheme,
		Logger:         logger,
	})

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runHeadless prints the filtered list to stdout
func runHeadless(loader *catalog.Loader, cfg *config.Config, f flags, logger *slog.Logger) error {
	cat, err := loader.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	b := browse.New(cat, cfg.UI.PageSize, logger)
	b.Submit(domain.NewFilterSpec(f.title, f.genre, f.author))
	return printBrowse(os.Stdout, b, f.pages)
}
