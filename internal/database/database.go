// Package database provides local persistence for favorite movies.
package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	apperrors "github.com/amaumene/gomovies/internal/errors"
	"github.com/amaumene/gomovies/internal/models"
)

const (
	dbDirMode = 0755

	defaultDBFile = "favorites.db"
)

// FavoriteMovie is one stored favorite: a snapshot of the movie fields at
// the time the user favorited it. It is never updated in place and is not
// reconciled with upstream metadata changes.
type FavoriteMovie struct {
	ID          uint    `gorm:"primaryKey"`
	TMDBID      int64   `gorm:"uniqueIndex;not null"`
	Title       string
	PosterPath  string
	Overview    string
	VoteAverage float64
	ReleaseDate string
	CreatedAt   time.Time
}

func newFavoriteRow(m models.Movie) FavoriteMovie {
	return FavoriteMovie{
		TMDBID:      m.ID,
		Title:       m.OriginalTitle,
		PosterPath:  m.PosterPath,
		Overview:    m.Overview,
		VoteAverage: m.VoteAverage,
		ReleaseDate: m.ReleaseDate,
	}
}

func (r FavoriteMovie) toMovie() models.Movie {
	return models.Movie{
		ID:            r.TMDBID,
		OriginalTitle: r.Title,
		Overview:      r.Overview,
		PosterPath:    r.PosterPath,
		VoteAverage:   r.VoteAverage,
		ReleaseDate:   r.ReleaseDate,
	}
}

// Database defines the interface for favorites persistence operations.
type Database interface {
	// Insert stores one favorite keyed by the remote movie ID
	Insert(movie models.Movie) error
	// Delete removes the favorite with that movie ID, returning the
	// number of rows removed (0 or 1)
	Delete(movieID int64) (int64, error)
	// Exists reports whether a favorite with that movie ID is stored
	Exists(movieID int64) (bool, error)
	// All returns every stored favorite as movie value objects, in
	// unspecified order
	All() ([]models.Movie, error)
	// Observe registers a change listener; the returned func removes it
	Observe() (<-chan struct{}, func())
	// Close closes the database connection
	Close() error
}

// DB implements the Database interface on an embedded SQLite database.
type DB struct {
	conn *gorm.DB

	mu        sync.Mutex
	observers map[int]chan struct{}
	nextObsID int
}

// New opens (creating if needed) the favorites database at dbPath.
// If dbPath is empty, uses the default database file in the current
// directory. The schema is created on first use; there is a single schema
// version and upgrades are a no-op.
func New(dbPath string) (*DB, error) {
	if dbPath == "" {
		dbPath = filepath.Join(".", defaultDBFile)
	}

	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, dbDirMode); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	conn, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.AutoMigrate(&FavoriteMovie{}); err != nil {
		return nil, fmt.Errorf("failed to migrate favorites table: %w", err)
	}

	return &DB{
		conn:      conn,
		observers: make(map[int]chan struct{}),
	}, nil
}

// Close closes the database connection and drops all observers.
func (db *DB) Close() error {
	db.mu.Lock()
	for id, ch := range db.observers {
		close(ch)
		delete(db.observers, id)
	}
	db.mu.Unlock()

	sqlDB, err := db.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Insert stores one favorite. Returns a ConstraintViolation when a row
// with the same movie ID already exists. Observers are notified on
// success only.
func (db *DB) Insert(movie models.Movie) error {
	row := newFavoriteRow(movie)
	if err := db.conn.Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &apperrors.ConstraintViolation{MovieID: movie.ID}
		}
		return fmt.Errorf("failed to insert favorite %d: %w", movie.ID, err)
	}

	db.notify()
	return nil
}

// Delete removes the favorite with the given movie ID, if present.
// Deleting an absent ID is not an error; it returns a zero count and does
// not notify observers.
func (db *DB) Delete(movieID int64) (int64, error) {
	res := db.conn.Where("tmdb_id = ?", movieID).Delete(&FavoriteMovie{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete favorite %d: %w", movieID, res.Error)
	}

	if res.RowsAffected > 0 {
		db.notify()
	}
	return res.RowsAffected, nil
}

// Exists reports whether a favorite with the given movie ID is stored.
func (db *DB) Exists(movieID int64) (bool, error) {
	var count int64
	err := db.conn.Model(&FavoriteMovie{}).Where("tmdb_id = ?", movieID).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to query favorite %d: %w", movieID, err)
	}
	return count > 0, nil
}

// All returns every stored favorite as movie value objects. Order is
// unspecified; callers may re-sort.
func (db *DB) All() ([]models.Movie, error) {
	var rows []FavoriteMovie
	if err := db.conn.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	movies := make([]models.Movie, 0, len(rows))
	for _, row := range rows {
		movies = append(movies, row.toMovie())
	}
	return movies, nil
}

// Observe registers a change listener. The channel receives a coalesced
// signal after every successful insert and every delete that removed a
// row. The returned func unregisters the listener and closes the channel.
func (db *DB) Observe() (<-chan struct{}, func()) {
	db.mu.Lock()
	defer db.mu.Unlock()

	id := db.nextObsID
	db.nextObsID++

	ch := make(chan struct{}, 1)
	db.observers[id] = ch

	cancel := func() {
		db.mu.Lock()
		defer db.mu.Unlock()
		if ch, ok := db.observers[id]; ok {
			close(ch)
			delete(db.observers, id)
		}
	}
	return ch, cancel
}

// notify signals every observer without blocking. A listener that has not
// drained its channel keeps a single pending signal.
func (db *DB) notify() {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, ch := range db.observers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
