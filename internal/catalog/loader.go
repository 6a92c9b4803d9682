package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/mmcdole/bookshelf/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sampleCatalog []byte

// catalogFile is the on-disk YAML layout. The name tables are captured as
// raw nodes so their key order survives decoding.
type catalogFile struct {
	Authors yaml.Node      `yaml:"authors"`
	Genres  yaml.Node      `yaml:"genres"`
	Books   []*domain.Book `yaml:"books"`
}

// Loader reads catalogs from YAML files, consulting the snapshot store
// before parsing.
type Loader struct {
	store    domain.SnapshotStore
	validate *validator.Validate
	logger   *slog.Logger
}

// NewLoader creates a loader. store may be nil to disable caching.
func NewLoader(store domain.SnapshotStore, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// Load returns the catalog at path, or the built-in sample when path is empty
func (l *Loader) Load(path string) (*Store, error) {
	if path == "" {
		l.logger.Debug("loading sample catalog")
		return l.Parse(sampleCatalog)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, abs)
		}
		return nil, fmt.Errorf("stat catalog: %w", err)
	}
	modTime := info.ModTime().UnixNano()

	if l.store != nil && l.store.IsValid(abs, modTime) {
		if snap, ok := l.store.GetCatalog(abs); ok {
			l.logger.Debug("catalog cache fresh", "path", abs, "books", len(snap.Books))
			return FromSnapshot(snap), nil
		}
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	cat, err := l.Parse(data)
	if err != nil {
		return nil, err
	}

	if l.store != nil {
		if err := l.store.SaveCatalog(abs, cat.Snapshot(), modTime); err != nil {
			l.logger.Error("failed to save catalog snapshot", "error", err, "path", abs)
		}
	}

	l.logger.Info("catalog loaded", "path", abs, "books", cat.Len(),
		"authors", cat.Authors().Len(), "genres", cat.Genres().Len())
	return cat, nil
}

// Parse decodes and validates a YAML catalog
func (l *Loader) Parse(data []byte) (*Store, error) {
	var file catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	authors, err := decodeNameTable(&file.Authors, "authors")
	if err != nil {
		return nil, err
	}
	genres, err := decodeNameTable(&file.Genres, "genres")
	if err != nil {
		return nil, err
	}

	if err := l.check(file.Books, authors, genres); err != nil {
		return nil, err
	}

	return New(file.Books, authors, genres), nil
}

// decodeNameTable walks a YAML mapping node in document order
func decodeNameTable(node *yaml.Node, field string) (domain.NameTable, error) {
	if node.Kind == 0 {
		return domain.NewNameTable(nil), nil
	}
	if node.Kind != yaml.MappingNode {
		return domain.NameTable{}, fmt.Errorf("%w: %s must be a mapping of id to name (line %d)",
			domain.ErrInvalidCatalog, field, node.Line)
	}

	entries := make([]domain.NameEntry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return domain.NameTable{}, fmt.Errorf("%w: %s entry at line %d must be a scalar",
				domain.ErrInvalidCatalog, field, key.Line)
		}
		if key.Value == "" || key.Value == domain.Any {
			return domain.NameTable{}, fmt.Errorf("%w: %s id %q at line %d is reserved",
				domain.ErrInvalidCatalog, field, key.Value, key.Line)
		}
		entries = append(entries, domain.NameEntry{ID: key.Value, Name: value.Value})
	}
	return domain.NewNameTable(entries), nil
}

// check validates every record and its references into the name tables
func (l *Loader) check(books []*domain.Book, authors, genres domain.NameTable) error {
	var errs []error
	seen := make(map[string]int, len(books))

	for i, b := range books {
		if b == nil {
			errs = append(errs, fmt.Errorf("books[%d]: empty record", i))
			continue
		}
		if err := l.validate.Struct(b); err != nil {
			errs = append(errs, describeValidation(i, b, err))
			continue
		}
		if first, dup := seen[b.ID]; dup {
			errs = append(errs, fmt.Errorf("books[%d]: id %q already used by books[%d]", i, b.ID, first))
			continue
		}
		seen[b.ID] = i

		if !authors.Has(b.AuthorID) {
			errs = append(errs, fmt.Errorf("books[%d] (%s): unknown author %q", i, b.ID, b.AuthorID))
		}
		for _, g := range b.GenreIDs {
			if !genres.Has(g) {
				errs = append(errs, fmt.Errorf("books[%d] (%s): unknown genre %q", i, b.ID, g))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, errors.Join(errs...))
	}
	return nil
}

func describeValidation(i int, b *domain.Book, err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("books[%d]: %w", i, err)
	}

	var fieldErrs []error
	for _, e := range validationErrs {
		fieldErrs = append(fieldErrs, fmt.Errorf("books[%d] (%s): %s %s", i, b.ID, e.Field(), friendlyMessage(e)))
	}
	return errors.Join(fieldErrs...)
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %s validation", e.Tag())
	}
}
