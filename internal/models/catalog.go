package models

import (
	"github.com/amaumene/gomovies/internal/errors"
)

// SortCriterion is the closed enumeration of remote listing orders.
type SortCriterion string

const (
	SortPopular  SortCriterion = "popular"
	SortTopRated SortCriterion = "top_rated"
)

// ParseSortCriterion rejects any value outside the closed enumeration at
// the boundary.
func ParseSortCriterion(s string) (SortCriterion, error) {
	switch SortCriterion(s) {
	case SortPopular:
		return SortPopular, nil
	case SortTopRated:
		return SortTopRated, nil
	default:
		return "", errors.ErrInvalidSortCriterion
	}
}

// Path returns the TMDB endpoint path segment for the criterion.
func (c SortCriterion) Path() string {
	return string(c)
}

// CatalogSource selects where a displayed listing comes from. Exactly one
// source is active at a time.
type CatalogSource string

const (
	SourcePopular   CatalogSource = "popular"
	SourceTopRated  CatalogSource = "top_rated"
	SourceFavorites CatalogSource = "favorites"
)

// ParseCatalogSource rejects unknown sources at the boundary.
func ParseCatalogSource(s string) (CatalogSource, error) {
	switch CatalogSource(s) {
	case SourcePopular, SourceTopRated, SourceFavorites:
		return CatalogSource(s), nil
	default:
		return "", errors.ErrInvalidCatalogSource
	}
}

// ListState classifies a loaded catalog for display purposes. An empty
// result is a state, not an error.
type ListState string

const (
	StateLoaded ListState = "loaded"
	StateEmpty  ListState = "empty"
	StateError  ListState = "error"
)

// CatalogView is the unified list representation handed to clients,
// whatever the active source.
type CatalogView struct {
	Source    CatalogSource `json:"source"`
	State     ListState     `json:"state"`
	Message   string        `json:"message,omitempty"`
	Retryable bool          `json:"retryable,omitempty"`
	Movies    []Movie       `json:"movies"`
}

// FavoriteState is the two-state machine driven by the favorites façade.
type FavoriteState string

const (
	Favorited    FavoriteState = "favorited"
	NotFavorited FavoriteState = "not_favorited"
)
