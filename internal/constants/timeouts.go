// Package constants defines timeout values used throughout the application.
package constants

import "time"

const (
	// TMDBRequestTimeout bounds a single TMDB API call. The upstream
	// contract defines no timeout, so we impose one here.
	TMDBRequestTimeout = 10 * time.Second

	// ListingCacheTTL is how long a completed listing fetch keeps
	// serving late subscribers before a new call is made.
	ListingCacheTTL = 1 * time.Minute

	// ListingErrorCacheTTL is how long a failed fetch is replayed
	// before the call is retried.
	ListingErrorCacheTTL = 10 * time.Second

	// DetailsCacheTTL is how long per-movie detail responses stay in
	// the memory cache.
	DetailsCacheTTL = 30 * time.Minute
)
