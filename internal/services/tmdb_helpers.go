package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	apperrors "github.com/amaumene/gomovies/internal/errors"
)

// maxErrorPayload bounds how much of an offending response body is carried
// inside a RemoteFetchError.
const maxErrorPayload = 512

// fetch issues one GET against the API, appending the access key and any
// extra query parameters, and decodes the JSON body into result. Failures
// come back as RemoteFetchError; no retries happen here.
func (t *TMDB) fetch(ctx context.Context, path string, query map[string]string, result interface{}) error {
	if t.apiKey == "" {
		return apperrors.ErrAPIKeyMissing
	}

	t.rateLimiter.Wait()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+path, nil)
	if err != nil {
		return apperrors.NewNetworkError(err)
	}

	q := url.Values{}
	q.Set("api_key", t.apiKey)
	for k, v := range query {
		q.Set(k, v)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.logger.Errorf("[TMDB] request failed: %v", err)
		return apperrors.NewNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorPayload))
		t.logger.Errorf("[TMDB] API error: status %d for %s", resp.StatusCode, path)
		return apperrors.NewStatusError(resp.StatusCode, string(payload))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		t.logger.Errorf("[TMDB] failed to decode response for %s: %v", path, err)
		return apperrors.NewDecodeError(resp.StatusCode, err)
	}

	return nil
}
