package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/amaumene/gomovies/internal/errors"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.json")
	t.Setenv("TMDB_API_KEY", "env-key")
	t.Setenv("DATABASE_PATH", "/tmp/fav.db")
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.TMDBAPIKey)
	assert.Equal(t, "/tmp/fav.db", cfg.DatabasePath)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadRequestTimeoutFromEnv(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.json")
	t.Setenv("TMDB_API_KEY", "env-key")
	t.Setenv("REQUEST_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.json")
	t.Setenv("TMDB_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAPIKeyMissing)
}

func TestValidateFillsDefaults(t *testing.T) {
	cfg := &Config{TMDBAPIKey: "key"}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1000, cfg.CacheSize)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
