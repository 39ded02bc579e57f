package services

import (
	"github.com/amaumene/gomovies/internal/database"
	apperrors "github.com/amaumene/gomovies/internal/errors"
	"github.com/amaumene/gomovies/internal/models"
	"github.com/amaumene/gomovies/pkg/logger"
)

// Favorites keeps the displayed favorite state of a movie consistent with
// the local store. Each movie is in one of two states, favorited or not,
// computed from whether a store row exists for its ID.
//
// Toggles are not guarded against concurrent invocation for the same
// movie; a double-tap race resolves to whichever operation lands last.
type Favorites struct {
	db     database.Database
	logger logger.Logger
}

// NewFavorites creates a favorites façade over the given store.
func NewFavorites(db database.Database) *Favorites {
	return &Favorites{
		db:     db,
		logger: logger.New(),
	}
}

// Status returns the current favorite state for the movie ID.
func (f *Favorites) Status(movieID int64) (models.FavoriteState, error) {
	exists, err := f.db.Exists(movieID)
	if err != nil {
		return "", err
	}
	if exists {
		return models.Favorited, nil
	}
	return models.NotFavorited, nil
}

// Toggle flips the favorite state of the movie and returns the new state.
// Inserting an already-stored movie is treated as already-favorited rather
// than a failure, so the toggle is idempotent under races.
func (f *Favorites) Toggle(movie models.Movie) (models.FavoriteState, error) {
	state, err := f.Status(movie.ID)
	if err != nil {
		return "", err
	}

	if state == models.NotFavorited {
		if err := f.db.Insert(movie); err != nil {
			if apperrors.IsConstraintViolation(err) {
				f.logger.Debugf("[Favorites] movie %d already favorited", movie.ID)
				return models.Favorited, nil
			}
			return "", err
		}
		f.logger.Infof("[Favorites] favorited movie %d", movie.ID)
		return models.Favorited, nil
	}

	if _, err := f.db.Delete(movie.ID); err != nil {
		return "", err
	}
	f.logger.Infof("[Favorites] unfavorited movie %d", movie.ID)
	return models.NotFavorited, nil
}
