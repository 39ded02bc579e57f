package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaumene/gomovies/internal/cache"
	apperrors "github.com/amaumene/gomovies/internal/errors"
	"github.com/amaumene/gomovies/internal/models"
)

func newTestTMDB(t *testing.T, handler http.Handler) (*TMDB, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tmdb := NewTMDB("test-key", cache.New(10, time.Minute), time.Second)
	tmdb.SetBaseURL(server.URL)
	return tmdb, server
}

func TestListMoviesPopular(t *testing.T) {
	tmdb, _ := newTestTMDB(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/popular", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"page":1,"results":[{"id":1,"original_title":"A","overview":"","poster_path":"/p.jpg","vote_average":7.5,"release_date":"2020-01-01"}],"total_results":1,"total_pages":1}`))
	}))

	listing, err := tmdb.ListMovies(context.Background(), models.SortPopular, 1)
	require.NoError(t, err)

	require.Len(t, listing.Results, 1)
	assert.Equal(t, int64(1), listing.Results[0].ID)
	assert.Equal(t, "A", listing.Results[0].OriginalTitle)
	assert.Equal(t, 7.5, listing.Results[0].VoteAverage)

	// Pagination metadata must be internally consistent with the page
	assert.Equal(t, 1, listing.Page)
	assert.Equal(t, 1, listing.TotalPages)
	assert.Equal(t, 1, listing.TotalResults)
	assert.LessOrEqual(t, len(listing.Results), listing.TotalResults)
}

func TestListMoviesRejectsUnknownCriterion(t *testing.T) {
	var calls int64
	tmdb, _ := newTestTMDB(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))

	_, err := tmdb.ListMovies(context.Background(), models.SortCriterion("release_date"), 1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSortCriterion)

	// Rejection happens at the boundary, before any request is issued.
	assert.Zero(t, atomic.LoadInt64(&calls))
}

func TestListMoviesServerError(t *testing.T) {
	tmdb, _ := newTestTMDB(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))

	_, err := tmdb.ListMovies(context.Background(), models.SortPopular, 1)
	require.Error(t, err)

	fe := apperrors.AsRemoteFetchError(err)
	require.NotNil(t, fe)
	assert.Equal(t, http.StatusInternalServerError, fe.StatusCode)
	assert.Contains(t, fe.Payload, "upstream exploded")
	assert.False(t, fe.Retryable())
}

func TestListMoviesMalformedBody(t *testing.T) {
	tmdb, _ := newTestTMDB(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"page":`))
	}))

	_, err := tmdb.ListMovies(context.Background(), models.SortPopular, 1)
	require.Error(t, err)

	fe := apperrors.AsRemoteFetchError(err)
	require.NotNil(t, fe)
	assert.Equal(t, apperrors.ErrorTypeMalformedBody, fe.Type)
}

func TestListMoviesNetworkFailureIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // connection refused from here on

	tmdb := NewTMDB("test-key", cache.New(10, time.Minute), time.Second)
	tmdb.SetBaseURL(server.URL)

	_, err := tmdb.ListMovies(context.Background(), models.SortPopular, 1)
	require.Error(t, err)

	fe := apperrors.AsRemoteFetchError(err)
	require.NotNil(t, fe)
	assert.True(t, fe.Retryable())
	assert.Zero(t, fe.StatusCode)
}

func TestListMoviesMulticast(t *testing.T) {
	var calls int64
	tmdb, _ := newTestTMDB(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.Write([]byte(`{"page":1,"results":[{"id":42,"original_title":"Once"}],"total_results":1,"total_pages":1}`))
	}))

	first, err := tmdb.ListMovies(context.Background(), models.SortPopular, 1)
	require.NoError(t, err)

	// A subscriber arriving after completion gets the replayed result
	// without a second network call.
	second, err := tmdb.ListMovies(context.Background(), models.SortPopular, 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))

	// A different criterion is a different call.
	_, err = tmdb.ListMovies(context.Background(), models.SortTopRated, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestListReviews(t *testing.T) {
	tmdb, _ := newTestTMDB(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603/reviews", r.URL.Path)
		w.Write([]byte(`{"id":603,"page":1,"results":[{"id":"r1","author":"neo","content":"whoa"}],"total_results":1,"total_pages":1}`))
	}))

	listing, err := tmdb.ListReviews(context.Background(), 603, 1)
	require.NoError(t, err)

	require.Len(t, listing.Results, 1)
	assert.Equal(t, "r1", listing.Results[0].ID)
	assert.Equal(t, "neo", listing.Results[0].Author)
	assert.Equal(t, "whoa", listing.Results[0].Content)
}

func TestListReviewsRejectsNegativeID(t *testing.T) {
	tmdb, _ := newTestTMDB(t, http.NotFoundHandler())

	_, err := tmdb.ListReviews(context.Background(), -1, 1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidMovieID)
}

func TestListVideosTrailerFilter(t *testing.T) {
	tmdb, _ := newTestTMDB(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603/videos", r.URL.Path)
		w.Write([]byte(`{"id":603,"results":[
			{"id":"v1","name":"Official Trailer","key":"k1","type":"Trailer"},
			{"id":"v2","name":"Teaser","key":"k2","type":"Teaser"},
			{"id":"v3","name":"Trailer 2","key":"k3","type":"Trailer"}]}`))
	}))

	listing, err := tmdb.ListVideos(context.Background(), 603)
	require.NoError(t, err)
	require.Len(t, listing.Results, 3)

	trailers := listing.Trailers()
	require.Len(t, trailers, 2)
	assert.Equal(t, "v1", trailers[0].ID)
	assert.Equal(t, "v3", trailers[1].ID)
}

func TestGetMovieDetailsUsesMemoryCache(t *testing.T) {
	var calls int64
	tmdb, _ := newTestTMDB(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		assert.Equal(t, "/movie/603", r.URL.Path)
		w.Write([]byte(`{"id":603,"original_title":"The Matrix","backdrop_path":"/b.jpg","runtime":136,"tagline":"Free your mind"}`))
	}))

	details, err := tmdb.GetMovieDetails(context.Background(), 603)
	require.NoError(t, err)
	assert.Equal(t, "/b.jpg", details.BackdropPath)
	assert.Equal(t, 136, details.Runtime)

	again, err := tmdb.GetMovieDetails(context.Background(), 603)
	require.NoError(t, err)
	assert.Equal(t, details, again)
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestGetMovieDetailsConcurrentCallersShareOneFetch(t *testing.T) {
	var calls int64
	tmdb, _ := newTestTMDB(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"id":603,"original_title":"The Matrix","runtime":136}`))
	}))

	var wg sync.WaitGroup
	results := make([]*models.MovieDetails, 2)
	errs := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = tmdb.GetMovieDetails(context.Background(), 603)
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	// Both callers attach to the same in-flight fetch.
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
	assert.Equal(t, results[0], results[1])
}

func TestNewTMDBUsesConfiguredTimeout(t *testing.T) {
	tmdb := NewTMDB("test-key", cache.New(10, time.Minute), 3*time.Second)
	assert.Equal(t, 3*time.Second, tmdb.httpClient.Timeout)
}

func TestFetchWithoutAPIKey(t *testing.T) {
	tmdb := NewTMDB("", cache.New(10, time.Minute), time.Second)

	_, err := tmdb.ListMovies(context.Background(), models.SortPopular, 1)
	assert.ErrorIs(t, err, apperrors.ErrAPIKeyMissing)
}
