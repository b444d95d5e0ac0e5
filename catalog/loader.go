package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// EmbeddingSet maps document IDs to their precomputed vectors.
type EmbeddingSet map[string][]float32

// LoadPhotos reads a photo catalog from a JSON array file.
func LoadPhotos(path string) ([]Photo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read photo catalog: %w", err)
	}

	var photos []Photo
	if err := json.Unmarshal(data, &photos); err != nil {
		return nil, fmt.Errorf("failed to parse photo catalog %s: %w", path, err)
	}

	return photos, nil
}

// LoadProjects reads a project catalog from a JSON array file.
func LoadProjects(path string) ([]Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project catalog: %w", err)
	}

	var projects []Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to parse project catalog %s: %w", path, err)
	}

	return projects, nil
}

// LoadEmbeddings reads a precomputed embedding file keyed by document
// ID. A missing path is not an error: search degrades to lexical-only
// for documents without vectors.
func LoadEmbeddings(path string) (EmbeddingSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return EmbeddingSet{}, nil
		}
		return nil, fmt.Errorf("failed to read embeddings: %w", err)
	}

	var set EmbeddingSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse embeddings %s: %w", path, err)
	}

	return set, nil
}
