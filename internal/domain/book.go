package domain

import (
	"strings"
	"time"
)

// Book is a single catalog record. Books are immutable once loaded; the
// catalog hands out pointers that callers must treat as read-only.
type Book struct {
	ID          string    `json:"id" yaml:"id" validate:"required"`
	Title       string    `json:"title" yaml:"title" validate:"required"`
	AuthorID    string    `json:"author" yaml:"author" validate:"required"`
	GenreIDs    []string  `json:"genres" yaml:"genres" validate:"dive,required"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Image       string    `json:"image,omitempty" yaml:"image,omitempty" validate:"omitempty,url"`
	Published   time.Time `json:"published" yaml:"published"`
}

// HasGenre reports whether genreID is one of the book's genres
func (b *Book) HasGenre(genreID string) bool {
	for _, g := range b.GenreIDs {
		if g == genreID {
			return true
		}
	}
	return false
}

// Year returns the publication year (0 if unknown)
func (b *Book) Year() int {
	if b.Published.IsZero() {
		return 0
	}
	return b.Published.Year()
}

// Preview is the minimal renderable projection of a Book used by list views.
// ID is the stable handle a click or selection is resolved through.
type Preview struct {
	ID     string
	Title  string
	Author string
	Image  string
}

// Any is the neutral value for the genre and author constraints
const Any = "any"

// FilterSpec describes the active title/genre/author constraints.
// It is a value type: every search submission produces a fresh one.
type FilterSpec struct {
	TitleQuery string
	GenreID    string
	AuthorID   string
}

// NewFilterSpec builds a FilterSpec from raw form values. Missing genre or
// author values mean "no constraint" and are normalized to Any.
func NewFilterSpec(title, genreID, authorID string) FilterSpec {
	if strings.TrimSpace(genreID) == "" {
		genreID = Any
	}
	if strings.TrimSpace(authorID) == "" {
		authorID = Any
	}
	return FilterSpec{
		TitleQuery: title,
		GenreID:    genreID,
		AuthorID:   authorID,
	}
}

// MatchAll returns the spec that every book satisfies
func MatchAll() FilterSpec {
	return NewFilterSpec("", Any, Any)
}

// IsZero reports whether the spec places no constraint at all
func (f FilterSpec) IsZero() bool {
	return strings.TrimSpace(f.TitleQuery) == "" &&
		(f.GenreID == Any || f.GenreID == "") &&
		(f.AuthorID == Any || f.AuthorID == "")
}
