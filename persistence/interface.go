package persistence

import (
	"context"
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned by Get when the key has no value.
var ErrKeyNotFound = errors.New("key not found")

// Store is a minimal key-value store used to cache query embeddings
// between searches. Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value for key, or ErrKeyNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Close releases store resources
	Close() error
}

// StoreType represents supported store backends
type StoreType string

const (
	StoreMemory StoreType = "memory"
	StoreBolt   StoreType = "bolt"
	StoreBadger StoreType = "badger"
)

// Config holds store configuration
type Config struct {
	Type StoreType `yaml:"type" json:"type"`
	Path string    `yaml:"path" json:"path"`
}

// ValidateConfig checks store configuration
func ValidateConfig(config Config) error {
	switch config.Type {
	case StoreMemory:
		return nil
	case StoreBolt, StoreBadger:
		if config.Path == "" {
			return fmt.Errorf("%s store requires a path", config.Type)
		}
		return nil
	default:
		return fmt.Errorf("unsupported store type: %s", config.Type)
	}
}
