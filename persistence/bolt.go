package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

const embeddingsBucket = "embeddings"

// BoltStore implements Store using BoltDB
type BoltStore struct {
	db   *bbolt.DB
	path string
}

// NewBoltStore creates a new BoltDB-backed store
func NewBoltStore(dbPath string) (*BoltStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open BoltDB at %s: %w", dbPath, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(embeddingsBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return &BoltStore{
		db:   db,
		path: dbPath,
	}, nil
}

// Get returns the value stored for key
func (b *BoltStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(embeddingsBucket))
		data := bucket.Get([]byte(key))
		if data == nil {
			return ErrKeyNotFound
		}
		// Copy out of the transaction's mmap
		value = make([]byte, len(data))
		copy(value, data)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Set stores value under key
func (b *BoltStore) Set(ctx context.Context, key string, value []byte) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(embeddingsBucket))
		return bucket.Put([]byte(key), value)
	})
}

// Close releases store resources
func (b *BoltStore) Close() error {
	return b.db.Close()
}
