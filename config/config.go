package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dshills/Searchlight/core/ai"
	"github.com/dshills/Searchlight/persistence"
)

// Config represents the complete Searchlight configuration
type Config struct {
	// Server configuration
	Server ServerConfig `yaml:"server" json:"server"`

	// Embedding engine configuration
	Embedding ai.ModelConfig `yaml:"embedding" json:"embedding"`

	// Query embedding cache configuration
	Cache persistence.Config `yaml:"cache" json:"cache"`

	// Search tuning
	Search SearchConfig `yaml:"search" json:"search"`

	// Catalog data files
	Catalog CatalogConfig `yaml:"catalog" json:"catalog"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Host            string        `yaml:"host" json:"host"`
	Port            int           `yaml:"port" json:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" json:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout"`
}

// DomainSearchConfig tunes the semantic fallback for one catalog.
type DomainSearchConfig struct {
	FallbackThreshold float64 `yaml:"fallback_threshold" json:"fallback_threshold"`
	FallbackLimit     int     `yaml:"fallback_limit" json:"fallback_limit"`
}

// BM25Config holds lexical ranking parameters.
type BM25Config struct {
	K1 float64 `yaml:"k1" json:"k1"`
	B  float64 `yaml:"b" json:"b"`
}

// SearchConfig contains search tuning configuration
type SearchConfig struct {
	Photo   DomainSearchConfig `yaml:"photo" json:"photo"`
	Project DomainSearchConfig `yaml:"project" json:"project"`
	BM25    BM25Config         `yaml:"bm25" json:"bm25"`
	RRFK    float64            `yaml:"rrf_k" json:"rrf_k"`
}

// CatalogConfig points at the catalog and embedding data files.
type CatalogConfig struct {
	PhotosPath            string `yaml:"photos_path" json:"photos_path"`
	ProjectsPath          string `yaml:"projects_path" json:"projects_path"`
	PhotoEmbeddingsPath   string `yaml:"photo_embeddings_path" json:"photo_embeddings_path"`
	ProjectEmbeddingsPath string `yaml:"project_embeddings_path" json:"project_embeddings_path"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	// Level: "debug", "info", "warn", "error"
	Level string `yaml:"level" json:"level"`
}

// LoadConfig loads configuration with the following precedence:
// 1. Environment variables
// 2. Configuration file (~/.searchlight.yml or specified path)
// 3. Default values
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	// If no config path specified, try default location
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			configPath = filepath.Join(homeDir, ".searchlight.yml")
		}
	}

	// Load from file if it exists
	if configPath != "" {
		if err := loadConfigFromFile(configPath, config); err != nil {
			// Only return error if file exists but can't be read
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
			}
		}
	}

	// Override with environment variables
	loadConfigFromEnv(config)

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadConfigFromFile loads configuration from a YAML file
func loadConfigFromFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, config)
}

// loadConfigFromEnv loads configuration from environment variables
func loadConfigFromEnv(config *Config) {
	if host := os.Getenv("SEARCHLIGHT_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("SEARCHLIGHT_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if engine := os.Getenv("SEARCHLIGHT_EMBEDDING_ENGINE"); engine != "" {
		config.Embedding.Type = engine
	}
	if model := os.Getenv("SEARCHLIGHT_EMBEDDING_MODEL"); model != "" {
		config.Embedding.Model = model
	}
	if endpoint := os.Getenv("SEARCHLIGHT_OLLAMA_ENDPOINT"); endpoint != "" {
		config.Embedding.OllamaEndpoint = endpoint
	}
	if key := os.Getenv("SEARCHLIGHT_OPENAI_API_KEY"); key != "" {
		config.Embedding.OpenAIAPIKey = key
	}

	if cacheType := os.Getenv("SEARCHLIGHT_CACHE_TYPE"); cacheType != "" {
		config.Cache.Type = persistence.StoreType(cacheType)
	}
	if cachePath := os.Getenv("SEARCHLIGHT_CACHE_PATH"); cachePath != "" {
		config.Cache.Path = cachePath
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Embedding: ai.ModelConfig{
			Type:           ai.ModelTypeOllama,
			Model:          "nomic-embed-text",
			OllamaEndpoint: "http://localhost:11434",
			MaxTokens:      512,
		},
		Cache: persistence.Config{
			Type: persistence.StoreMemory,
			Path: "data/embedcache",
		},
		Search: SearchConfig{
			Photo: DomainSearchConfig{
				FallbackThreshold: 0.6,
				FallbackLimit:     5,
			},
			Project: DomainSearchConfig{
				FallbackThreshold: 0.5,
				FallbackLimit:     10,
			},
			BM25: BM25Config{
				K1: 1.5,
				B:  0.75,
			},
			RRFK: 60,
		},
		Catalog: CatalogConfig{
			PhotosPath:            "data/photos.json",
			ProjectsPath:          "data/projects.json",
			PhotoEmbeddingsPath:   "data/photo-embeddings.json",
			ProjectEmbeddingsPath: "data/project-embeddings.json",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Server.Port)
	}

	if c.Embedding.Type == ai.ModelTypeOllama && c.Embedding.OllamaEndpoint == "" {
		return fmt.Errorf("ollama endpoint is required when using ollama engine")
	}

	if err := persistence.ValidateConfig(c.Cache); err != nil {
		return fmt.Errorf("cache config validation failed: %w", err)
	}

	for name, domain := range map[string]DomainSearchConfig{
		"photo":   c.Search.Photo,
		"project": c.Search.Project,
	} {
		if domain.FallbackThreshold < -1 || domain.FallbackThreshold > 1 {
			return fmt.Errorf("%s fallback threshold must be within [-1, 1]: %f", name, domain.FallbackThreshold)
		}
		if domain.FallbackLimit < 0 {
			return fmt.Errorf("%s fallback limit must not be negative: %d", name, domain.FallbackLimit)
		}
	}

	if c.Search.BM25.K1 < 0 {
		return fmt.Errorf("bm25 k1 must not be negative: %f", c.Search.BM25.K1)
	}
	if c.Search.BM25.B < 0 || c.Search.BM25.B > 1 {
		return fmt.Errorf("bm25 b must be within [0, 1]: %f", c.Search.BM25.B)
	}
	if c.Search.RRFK < 0 {
		return fmt.Errorf("rrf k must not be negative: %f", c.Search.RRFK)
	}

	if c.Catalog.PhotosPath == "" && c.Catalog.ProjectsPath == "" {
		return fmt.Errorf("at least one catalog path must be configured")
	}

	return nil
}
