package domain

// CatalogSnapshot is the serializable form of a parsed catalog
type CatalogSnapshot struct {
	Books   []*Book     `json:"books"`
	Authors []NameEntry `json:"authors"`
	Genres  []NameEntry `json:"genres"`
}

// SnapshotStore handles the local catalog cache (BoltDB + memory).
// Entries are keyed by catalog source and stamped with the source's
// modification time for freshness checks.
type SnapshotStore interface {
	GetCatalog(source string) (CatalogSnapshot, bool)
	SaveCatalog(source string, snap CatalogSnapshot, modTime int64) error

	// IsValid checks if stored timestamp >= modTime
	IsValid(source string, modTime int64) bool

	Invalidate(source string)
	InvalidateAll()

	Close() error
}
