package persistence

import "fmt"

// CreateStore creates a store instance based on configuration
func CreateStore(config Config) (Store, error) {
	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid store configuration: %w", err)
	}

	switch config.Type {
	case StoreMemory:
		return NewMemoryStore(), nil
	case StoreBolt:
		return NewBoltStore(config.Path)
	case StoreBadger:
		return NewBadgerStore(config.Path)
	default:
		return nil, fmt.Errorf("unsupported store type: %s", config.Type)
	}
}
