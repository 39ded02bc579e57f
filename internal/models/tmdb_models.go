// Package models defines data structures for TMDB API responses and the
// domain value objects derived from them.
package models

import (
	"github.com/amaumene/gomovies/internal/constants"
)

// Movie is the value object for one movie as returned in a TMDB listing.
// ID is assigned by the remote service and is the only field guaranteed to
// be present; the rest may be empty strings in a well-formed response.
// Movies are never mutated after construction.
type Movie struct {
	ID            int64   `json:"id"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	PosterPath    string  `json:"poster_path"`
	VoteAverage   float64 `json:"vote_average"`
	ReleaseDate   string  `json:"release_date"`
}

// PosterURL builds the full CDN URL for the movie poster at the given size
// bucket. An unknown size falls back to the default poster width. Returns
// an empty string when the movie has no poster.
func (m Movie) PosterURL(size string) string {
	return ImageURL(size, m.PosterPath)
}

// MovieListing is one page of movies plus the pagination metadata returned
// in the same payload.
type MovieListing struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// MovieDetails carries the supplementary fields the details endpoint adds
// on top of the listing representation.
type MovieDetails struct {
	Movie
	BackdropPath string `json:"backdrop_path"`
	Runtime      int    `json:"runtime"`
	Tagline      string `json:"tagline"`
}

// BackdropURL builds the full CDN URL for the backdrop image.
func (d MovieDetails) BackdropURL(size string) string {
	if size == "" {
		size = constants.DefaultBackdropSize
	}
	return ImageURL(size, d.BackdropPath)
}

// Review is one user review for a movie. Reviews are fetched per movie,
// read-only, and discarded after display.
type Review struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

// ReviewListing is one page of reviews plus pagination metadata.
type ReviewListing struct {
	ID           int64    `json:"id"`
	Page         int      `json:"page"`
	Results      []Review `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// Video is one video resource attached to a movie. Key identifies the
// video on the hosting platform; Type classifies it ("Trailer", "Teaser",
// "Clip", ...).
type Video struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Key  string `json:"key"`
	Type string `json:"type"`
}

// WatchURL builds a playable YouTube link from the video key. A video
// without a key yields an empty string.
func (v Video) WatchURL() string {
	if v.Key == "" {
		return ""
	}
	return constants.YouTubeWatchBaseURL + v.Key
}

// VideoListing is the unordered set of videos for one movie.
type VideoListing struct {
	ID      int64   `json:"id"`
	Results []Video `json:"results"`
}

// Trailers returns only the "Trailer"-typed videos, preserving their
// relative order. Only trailers are surfaced to clients.
func (l VideoListing) Trailers() []Video {
	trailers := make([]Video, 0, len(l.Results))
	for _, v := range l.Results {
		if v.Type == constants.VideoTypeTrailer {
			trailers = append(trailers, v)
		}
	}
	return trailers
}

// ImageURL concatenates the image CDN base, a size bucket and an image
// path fragment as returned by the API. An unknown size falls back to the
// default poster width; an empty path yields an empty URL.
func ImageURL(size, path string) string {
	if path == "" {
		return ""
	}
	if !validImageSize(size) {
		size = constants.DefaultPosterSize
	}
	return constants.ImageBaseURL + size + path
}

func validImageSize(size string) bool {
	for _, s := range constants.ImageSizes {
		if s == size {
			return true
		}
	}
	return false
}
