package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrCatalogNotFound indicates the catalog source could not be opened
	ErrCatalogNotFound = errors.New("catalog not found")

	// ErrInvalidCatalog indicates the catalog source failed validation
	ErrInvalidCatalog = errors.New("invalid catalog")
)
