package persistence

import (
	"context"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStore implements Store using BadgerDB
type BadgerStore struct {
	db   *badger.DB
	path string
}

// NewBadgerStore creates a new BadgerDB-backed store
func NewBadgerStore(dbPath string) (*BadgerStore, error) {
	// Ensure directory exists
	if err := os.MkdirAll(dbPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dbPath, err)
	}

	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Disable logging for cleaner output

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open BadgerDB at %s: %w", dbPath, err)
	}

	return &BadgerStore{
		db:   db,
		path: dbPath,
	}, nil
}

// Get returns the value stored for key
func (b *BadgerStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return ErrKeyNotFound
			}
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Set stores value under key
func (b *BadgerStore) Set(ctx context.Context, key string, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// Close releases store resources
func (b *BadgerStore) Close() error {
	return b.db.Close()
}
