// Package constants defines application-wide constants and default values.
package constants

const (
	// Service metadata
	ServiceName    = "GoMovies"
	ServiceVersion = "1.0.0"

	// TMDB API
	TMDBBaseURL = "https://api.themoviedb.org/3"

	// Image URL construction
	ImageBaseURL = "https://image.tmdb.org/t/p/"

	// YouTubeWatchBaseURL prefixes a video key to form a playable link.
	YouTubeWatchBaseURL = "https://www.youtube.com/watch?v="

	// Default configuration values
	DefaultPort = "5000"

	// Cache settings
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 24 // hours

	// Rate limiting
	TMDBRateLimit = 20 // requests per second
	TMDBRateBurst = 5  // burst capacity
)

// ImageSizes lists the width buckets accepted by the TMDB image CDN.
// "original" returns the image at its uploaded resolution.
var ImageSizes = []string{
	"w92",
	"w154",
	"w185",
	"w342",
	"w500",
	"w780",
	"original",
}

const (
	// DefaultPosterSize is the width bucket used when none is requested.
	DefaultPosterSize = "w185"

	// DefaultBackdropSize is the width bucket used for backdrop images.
	DefaultBackdropSize = "w780"
)

// VideoTypeTrailer is the only video classification surfaced to clients.
const VideoTypeTrailer = "Trailer"
