// Package services provides the movie gateway, favorites façade, listing
// aggregator and their dependency injection container.
package services

import (
	"context"

	"github.com/amaumene/gomovies/internal/cache"
	"github.com/amaumene/gomovies/internal/database"
	"github.com/amaumene/gomovies/internal/models"
	"github.com/amaumene/gomovies/internal/prefs"
	"github.com/amaumene/gomovies/pkg/logger"
)

// Container holds all application services for dependency injection.
type Container struct {
	TMDB      TMDBService
	Favorites *Favorites
	Catalog   *Catalog
	Cache     *cache.LRUCache
	DB        database.Database
	Prefs     prefs.Store
	Logger    logger.Logger
}

// TMDBService defines the interface for remote metadata API operations.
type TMDBService interface {
	ListMovies(ctx context.Context, criterion models.SortCriterion, page int) (*models.MovieListing, error)
	ListReviews(ctx context.Context, movieID int64, page int) (*models.ReviewListing, error)
	ListVideos(ctx context.Context, movieID int64) (*models.VideoListing, error)
	GetMovieDetails(ctx context.Context, movieID int64) (*models.MovieDetails, error)
}
