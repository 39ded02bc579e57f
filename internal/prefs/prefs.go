// Package prefs provides a small persisted key-value settings store backed
// by BoltDB. It replaces ambient global lookups with an injectable store.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"
)

const (
	dbFileMode = 0600
	dbDirMode  = 0755

	defaultPrefsFile = "prefs.db"
)

var bucketName = []byte("prefs")

// Store defines the persisted-settings interface injected into consumers.
type Store interface {
	// Get returns the stored value for key, or "" when absent.
	Get(key string) (string, error)
	// Put stores value under key, overwriting any previous value.
	Put(key, value string) error
	// Close closes the underlying database.
	Close() error
}

// BoltStore implements Store using BoltDB.
type BoltStore struct {
	db *bolt.DB
}

// NewBolt opens (creating if needed) the preferences database at path.
// If path is empty, uses the default file in the current directory.
func NewBolt(path string) (*BoltStore, error) {
	if path == "" {
		path = filepath.Join(".", defaultPrefsFile)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dbDirMode); err != nil {
		return nil, fmt.Errorf("failed to create prefs directory: %w", err)
	}

	db, err := bolt.Open(path, dbFileMode, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open prefs database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create prefs bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Get returns the stored value for key, or "" when the key was never set.
func (s *BoltStore) Get(key string) (string, error) {
	var value string
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get([]byte(key)); v != nil {
			value = string(v)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to read pref %s: %w", key, err)
	}
	return value, nil
}

// Put stores value under key.
func (s *BoltStore) Put(key, value string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to write pref %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
