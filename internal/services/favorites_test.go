package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaumene/gomovies/internal/database"
	"github.com/amaumene/gomovies/internal/models"
)

func newTestFavorites(t *testing.T) (*Favorites, *database.DB) {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "favorites.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewFavorites(db), db
}

func testMovie() models.Movie {
	return models.Movie{
		ID:            603,
		OriginalTitle: "The Matrix",
		PosterPath:    "/matrix.jpg",
		VoteAverage:   8.7,
		ReleaseDate:   "1999-03-30",
	}
}

func TestToggleFlipsState(t *testing.T) {
	favorites, db := newTestFavorites(t)

	state, err := favorites.Status(603)
	require.NoError(t, err)
	assert.Equal(t, models.NotFavorited, state)

	// First toggle: one store row, favorited.
	state, err = favorites.Toggle(testMovie())
	require.NoError(t, err)
	assert.Equal(t, models.Favorited, state)

	movies, err := db.All()
	require.NoError(t, err)
	assert.Len(t, movies, 1)

	// Second toggle: zero store rows, not favorited.
	state, err = favorites.Toggle(testMovie())
	require.NoError(t, err)
	assert.Equal(t, models.NotFavorited, state)

	movies, err = db.All()
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestToggleTreatsDuplicateInsertAsFavorited(t *testing.T) {
	_, db := newTestFavorites(t)

	// A row appearing between the status check and the insert (the
	// double-tap race) must resolve to favorited, not an error.
	require.NoError(t, db.Insert(testMovie()))

	raced := &racingStore{DB: db}
	racedFavorites := NewFavorites(raced)

	state, err := racedFavorites.Toggle(testMovie())
	require.NoError(t, err)
	assert.Equal(t, models.Favorited, state)
}

// racingStore reports the movie as absent so the façade attempts an insert
// that collides with the existing row.
type racingStore struct {
	*database.DB
}

func (s *racingStore) Exists(movieID int64) (bool, error) {
	return false, nil
}
