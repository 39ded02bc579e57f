// Package errors defines custom error types for better error handling and debugging.
// RemoteFetchError classifies upstream API failures; ConstraintViolation
// classifies duplicate writes to the favorites store.
package errors

import (
	"errors"
	"fmt"
)

// Error type constants
const (
	ErrorTypeNetworkFailure  = "NETWORK_FAILURE"
	ErrorTypeBadStatus       = "BAD_STATUS"
	ErrorTypeMalformedBody   = "MALFORMED_BODY"
	ErrorTypeAPIKeyMissing   = "API_KEY_MISSING"
	ErrorTypeInvalidCriteria = "INVALID_SORT_CRITERION"
	ErrorTypeInvalidID       = "INVALID_ID"
	ErrorTypeInvalidSource   = "INVALID_CATALOG_SOURCE"
)

// RemoteFetchError represents a failed call to the remote metadata API.
// StatusCode is zero when the request never produced an HTTP response
// (connection failure, timeout). Payload holds a snippet of the offending
// response body, if any.
type RemoteFetchError struct {
	Type       string
	StatusCode int
	Payload    string
	Cause      error
}

func (e *RemoteFetchError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Cause != nil:
		return fmt.Sprintf("%s: status %d (caused by: %v)", e.Type, e.StatusCode, e.Cause)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d", e.Type, e.StatusCode)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Type, e.Cause)
	default:
		return e.Type
	}
}

func (e *RemoteFetchError) Unwrap() error {
	return e.Cause
}

// Retryable reports whether the failure is network-classified, meaning the
// same call with the same parameters may succeed if simply reissued.
func (e *RemoteFetchError) Retryable() bool {
	return e.Type == ErrorTypeNetworkFailure
}

// NewNetworkError creates a RemoteFetchError for a request that never
// reached the remote service.
func NewNetworkError(cause error) *RemoteFetchError {
	return &RemoteFetchError{Type: ErrorTypeNetworkFailure, Cause: cause}
}

// NewStatusError creates a RemoteFetchError for a non-2xx response.
func NewStatusError(statusCode int, payload string) *RemoteFetchError {
	return &RemoteFetchError{Type: ErrorTypeBadStatus, StatusCode: statusCode, Payload: payload}
}

// NewDecodeError creates a RemoteFetchError for an un-parseable body.
func NewDecodeError(statusCode int, cause error) *RemoteFetchError {
	return &RemoteFetchError{Type: ErrorTypeMalformedBody, StatusCode: statusCode, Cause: cause}
}

// AsRemoteFetchError unwraps err into a RemoteFetchError, or returns nil.
func AsRemoteFetchError(err error) *RemoteFetchError {
	var fe *RemoteFetchError
	if errors.As(err, &fe) {
		return fe
	}
	return nil
}

// ConstraintViolation represents an insert that collided with the unique
// movie ID constraint of the favorites store.
type ConstraintViolation struct {
	MovieID int64
}

func (e *ConstraintViolation) Error() string {
	return fmt.Sprintf("favorite already exists for movie %d", e.MovieID)
}

// IsConstraintViolation reports whether err is a duplicate-favorite insert.
func IsConstraintViolation(err error) bool {
	var cv *ConstraintViolation
	return errors.As(err, &cv)
}

// ErrInvalidSortCriterion is returned when a listing is requested with a
// value outside the closed {popular, top_rated} enumeration.
var ErrInvalidSortCriterion = errors.New(ErrorTypeInvalidCriteria)

// ErrInvalidMovieID is returned for negative movie identifiers.
var ErrInvalidMovieID = errors.New(ErrorTypeInvalidID)

// ErrInvalidCatalogSource is returned when a catalog selection names an
// unknown source.
var ErrInvalidCatalogSource = errors.New(ErrorTypeInvalidSource)

// ErrAPIKeyMissing is returned when no TMDB API key is configured.
var ErrAPIKeyMissing = errors.New(ErrorTypeAPIKeyMissing)
