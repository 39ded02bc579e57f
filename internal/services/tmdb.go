package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/webtor-io/lazymap"

	"github.com/amaumene/gomovies/internal/cache"
	"github.com/amaumene/gomovies/internal/constants"
	apperrors "github.com/amaumene/gomovies/internal/errors"
	"github.com/amaumene/gomovies/internal/models"
	"github.com/amaumene/gomovies/pkg/httputil"
	"github.com/amaumene/gomovies/pkg/logger"
	"github.com/amaumene/gomovies/pkg/ratelimiter"
)

// TMDB is the remote data gateway. Every operation issues a single HTTP GET
// against the TMDB API with the configured key appended as a query
// parameter, and surfaces failures immediately without retrying.
//
// Listing calls are multicast: concurrent callers for the same parameters
// share one in-flight fetch, and callers arriving after completion receive
// the cached terminal value until it expires. Details additionally pass
// through the memory cache.
type TMDB struct {
	apiKey      string
	baseURL     string
	cache       *cache.LRUCache
	rateLimiter *ratelimiter.TokenBucket
	httpClient  *http.Client
	logger      logger.Logger

	listings *lazymap.LazyMap[*models.MovieListing]
	reviews  *lazymap.LazyMap[*models.ReviewListing]
	videos   *lazymap.LazyMap[*models.VideoListing]
	details  *lazymap.LazyMap[*models.MovieDetails]
}

// NewTMDB creates a TMDB gateway using the given API key and memory cache.
// Every request is bounded by timeout.
func NewTMDB(apiKey string, memCache *cache.LRUCache, timeout time.Duration) *TMDB {
	return &TMDB{
		apiKey:      apiKey,
		baseURL:     constants.TMDBBaseURL,
		cache:       memCache,
		rateLimiter: ratelimiter.NewTokenBucket(constants.TMDBRateLimit, constants.TMDBRateBurst),
		httpClient:  httputil.NewHTTPClient(timeout),
		logger:      logger.New(),
		listings: lazymap.New[*models.MovieListing](&lazymap.Config{
			Expire:      constants.ListingCacheTTL,
			ErrorExpire: constants.ListingErrorCacheTTL,
		}),
		reviews: lazymap.New[*models.ReviewListing](&lazymap.Config{
			Expire:      constants.ListingCacheTTL,
			ErrorExpire: constants.ListingErrorCacheTTL,
		}),
		videos: lazymap.New[*models.VideoListing](&lazymap.Config{
			Expire:      constants.ListingCacheTTL,
			ErrorExpire: constants.ListingErrorCacheTTL,
		}),
		details: lazymap.New[*models.MovieDetails](&lazymap.Config{
			Expire:      constants.DetailsCacheTTL,
			ErrorExpire: constants.ListingErrorCacheTTL,
		}),
	}
}

// SetBaseURL overrides the API endpoint. Used by tests to point the
// gateway at a stub server.
func (t *TMDB) SetBaseURL(baseURL string) {
	t.baseURL = baseURL
}

// ListMovies fetches one page of movies ordered by the given criterion.
// Any value outside the closed {popular, top_rated} enumeration is
// rejected before a request is made.
func (t *TMDB) ListMovies(ctx context.Context, criterion models.SortCriterion, page int) (*models.MovieListing, error) {
	switch criterion {
	case models.SortPopular, models.SortTopRated:
	default:
		return nil, apperrors.ErrInvalidSortCriterion
	}
	if page < 1 {
		page = 1
	}

	key := fmt.Sprintf("movies:%s:%d", criterion, page)
	return t.listings.Get(key, func() (*models.MovieListing, error) {
		t.logger.Debugf("[TMDB] fetching %s movies, page %d", criterion, page)

		var listing models.MovieListing
		path := fmt.Sprintf("/movie/%s", criterion.Path())
		if err := t.fetch(ctx, path, map[string]string{"page": fmt.Sprintf("%d", page)}, &listing); err != nil {
			return nil, err
		}
		return &listing, nil
	})
}

// ListReviews fetches one page of reviews for the given movie.
func (t *TMDB) ListReviews(ctx context.Context, movieID int64, page int) (*models.ReviewListing, error) {
	if movieID < 0 {
		return nil, apperrors.ErrInvalidMovieID
	}
	if page < 1 {
		page = 1
	}

	key := fmt.Sprintf("reviews:%d:%d", movieID, page)
	return t.reviews.Get(key, func() (*models.ReviewListing, error) {
		t.logger.Debugf("[TMDB] fetching reviews for movie %d, page %d", movieID, page)

		var listing models.ReviewListing
		path := fmt.Sprintf("/movie/%d/reviews", movieID)
		if err := t.fetch(ctx, path, map[string]string{"page": fmt.Sprintf("%d", page)}, &listing); err != nil {
			return nil, err
		}
		return &listing, nil
	})
}

// ListVideos fetches the videos attached to the given movie. The result is
// unordered; callers wanting trailers only use VideoListing.Trailers.
func (t *TMDB) ListVideos(ctx context.Context, movieID int64) (*models.VideoListing, error) {
	if movieID < 0 {
		return nil, apperrors.ErrInvalidMovieID
	}

	key := fmt.Sprintf("videos:%d", movieID)
	return t.videos.Get(key, func() (*models.VideoListing, error) {
		t.logger.Debugf("[TMDB] fetching videos for movie %d", movieID)

		var listing models.VideoListing
		path := fmt.Sprintf("/movie/%d/videos", movieID)
		if err := t.fetch(ctx, path, nil, &listing); err != nil {
			return nil, err
		}
		return &listing, nil
	})
}

// GetMovieDetails fetches the supplementary fields not present in the
// listing response. Like the listing calls, concurrent callers for the
// same movie share one in-flight fetch; completed results are held in the
// memory cache.
func (t *TMDB) GetMovieDetails(ctx context.Context, movieID int64) (*models.MovieDetails, error) {
	if movieID < 0 {
		return nil, apperrors.ErrInvalidMovieID
	}

	cacheKey := fmt.Sprintf("details:%d", movieID)
	return t.details.Get(cacheKey, func() (*models.MovieDetails, error) {
		if t.cache != nil {
			if data, found := t.cache.Get(cacheKey); found {
				return data.(*models.MovieDetails), nil
			}
		}

		t.logger.Debugf("[TMDB] fetching details for movie %d", movieID)

		var details models.MovieDetails
		path := fmt.Sprintf("/movie/%d", movieID)
		if err := t.fetch(ctx, path, nil, &details); err != nil {
			return nil, err
		}

		if t.cache != nil {
			t.cache.Set(cacheKey, &details)
		}
		return &details, nil
	})
}
