package services

import (
	"context"

	"github.com/amaumene/gomovies/internal/database"
	apperrors "github.com/amaumene/gomovies/internal/errors"
	"github.com/amaumene/gomovies/internal/models"
	"github.com/amaumene/gomovies/internal/prefs"
	"github.com/amaumene/gomovies/pkg/logger"
)

// prefKeyCatalogSource is where the last selected source is persisted.
const prefKeyCatalogSource = "catalog_source"

// Catalog merges remote listings and local favorites into one unified list
// representation. Exactly one source is active at a time; selecting a new
// source replaces the displayed list wholesale. Only the first remote page
// is aggregated.
type Catalog struct {
	tmdb   TMDBService
	db     database.Database
	prefs  prefs.Store
	logger logger.Logger
}

// NewCatalog creates a listing aggregator over the given gateway, store
// and settings.
func NewCatalog(tmdb TMDBService, db database.Database, settings prefs.Store) *Catalog {
	return &Catalog{
		tmdb:   tmdb,
		db:     db,
		prefs:  settings,
		logger: logger.New(),
	}
}

// Source returns the last selected source, defaulting to popular when none
// was ever recorded.
func (c *Catalog) Source() models.CatalogSource {
	if c.prefs == nil {
		return models.SourcePopular
	}

	stored, err := c.prefs.Get(prefKeyCatalogSource)
	if err != nil {
		c.logger.Warnf("[Catalog] failed to read stored source: %v", err)
		return models.SourcePopular
	}

	source, err := models.ParseCatalogSource(stored)
	if err != nil {
		return models.SourcePopular
	}
	return source
}

// Select makes source the active one, persists the selection, and loads
// its listing.
func (c *Catalog) Select(ctx context.Context, source models.CatalogSource) *models.CatalogView {
	if c.prefs != nil {
		if err := c.prefs.Put(prefKeyCatalogSource, string(source)); err != nil {
			c.logger.Warnf("[Catalog] failed to persist source %s: %v", source, err)
		}
	}
	return c.load(ctx, source)
}

// Load loads the listing for the current source.
func (c *Catalog) Load(ctx context.Context) *models.CatalogView {
	return c.load(ctx, c.Source())
}

func (c *Catalog) load(ctx context.Context, source models.CatalogSource) *models.CatalogView {
	var (
		movies []models.Movie
		err    error
	)

	switch source {
	case models.SourceFavorites:
		movies, err = c.db.All()
	case models.SourceTopRated:
		movies, err = c.listRemote(ctx, models.SortTopRated)
	default:
		movies, err = c.listRemote(ctx, models.SortPopular)
	}

	if err != nil {
		c.logger.Errorf("[Catalog] failed to load %s: %v", source, err)
		return errorView(source, err)
	}

	if len(movies) == 0 {
		return &models.CatalogView{
			Source:  source,
			State:   models.StateEmpty,
			Message: emptyMessage(source),
			Movies:  []models.Movie{},
		}
	}

	c.logger.Infof("[Catalog] loaded %d movies from %s", len(movies), source)
	return &models.CatalogView{
		Source: source,
		State:  models.StateLoaded,
		Movies: movies,
	}
}

func (c *Catalog) listRemote(ctx context.Context, criterion models.SortCriterion) ([]models.Movie, error) {
	listing, err := c.tmdb.ListMovies(ctx, criterion, 1)
	if err != nil {
		return nil, err
	}
	return listing.Results, nil
}

// errorView classifies a failure for display. Network-classified failures
// are marked retryable so the client can offer a retry affordance bound to
// the same operation.
func errorView(source models.CatalogSource, err error) *models.CatalogView {
	view := &models.CatalogView{
		Source:  source,
		State:   models.StateError,
		Message: err.Error(),
		Movies:  []models.Movie{},
	}
	if fe := apperrors.AsRemoteFetchError(err); fe != nil {
		view.Retryable = fe.Retryable()
	}
	return view
}

func emptyMessage(source models.CatalogSource) string {
	switch source {
	case models.SourceFavorites:
		return "no favorite movies saved"
	case models.SourceTopRated:
		return "no top rated movies available"
	default:
		return "no popular movies available"
	}
}
