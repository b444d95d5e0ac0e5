package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/Searchlight/core/ai"
	"github.com/dshills/Searchlight/persistence"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ai.ModelTypeOllama, cfg.Embedding.Type)
	assert.Equal(t, persistence.StoreMemory, cfg.Cache.Type)
	assert.Equal(t, 0.6, cfg.Search.Photo.FallbackThreshold)
	assert.Equal(t, 5, cfg.Search.Photo.FallbackLimit)
	assert.Equal(t, 0.5, cfg.Search.Project.FallbackThreshold)
	assert.Equal(t, 10, cfg.Search.Project.FallbackLimit)
	assert.Equal(t, 1.5, cfg.Search.BM25.K1)
	assert.Equal(t, 0.75, cfg.Search.BM25.B)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "searchlight.yml")
	content := `
server:
  port: 9090
embedding:
  type: openai
  model: text-embedding-3-small
  openai_api_key: sk-test
search:
  photo:
    fallback_threshold: 0.7
    fallback_limit: 3
catalog:
  photos_path: /srv/photos.json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, ai.ModelTypeOpenAI, cfg.Embedding.Type)
	assert.Equal(t, 0.7, cfg.Search.Photo.FallbackThreshold)
	assert.Equal(t, 3, cfg.Search.Photo.FallbackLimit)
	assert.Equal(t, "/srv/photos.json", cfg.Catalog.PhotosPath)
	// Untouched sections keep their defaults
	assert.Equal(t, 0.5, cfg.Search.Project.FallbackThreshold)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("SEARCHLIGHT_PORT", "7070")
	t.Setenv("SEARCHLIGHT_EMBEDDING_ENGINE", "onnx")
	t.Setenv("SEARCHLIGHT_CACHE_TYPE", "bolt")
	t.Setenv("SEARCHLIGHT_CACHE_PATH", "/tmp/cache.db")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, ai.ModelTypeONNX, cfg.Embedding.Type)
	assert.Equal(t, persistence.StoreBolt, cfg.Cache.Type)
	assert.Equal(t, "/tmp/cache.db", cfg.Cache.Path)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"missing ollama endpoint", func(c *Config) { c.Embedding.OllamaEndpoint = "" }},
		{"threshold out of range", func(c *Config) { c.Search.Photo.FallbackThreshold = 1.5 }},
		{"negative fallback limit", func(c *Config) { c.Search.Project.FallbackLimit = -1 }},
		{"negative k1", func(c *Config) { c.Search.BM25.K1 = -0.1 }},
		{"b above one", func(c *Config) { c.Search.BM25.B = 1.2 }},
		{"bolt cache without path", func(c *Config) {
			c.Cache = persistence.Config{Type: persistence.StoreBolt}
		}},
		{"no catalogs", func(c *Config) {
			c.Catalog.PhotosPath = ""
			c.Catalog.ProjectsPath = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
