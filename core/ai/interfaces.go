package ai

import "context"

// Engine types supported by the embedding factory.
const (
	ModelTypeONNX   = "onnx"
	ModelTypeOllama = "ollama"
	ModelTypeOpenAI = "openai"
)

// EmbeddingEngine produces fixed-dimension embedding vectors for text.
// Engines are expected to return unit-normalized vectors (mean pooling,
// L2 normalize) so cosine similarity behaves as expected downstream.
type EmbeddingEngine interface {
	// Embed generates embeddings for a list of content strings
	Embed(ctx context.Context, content []string) ([][]float32, error)

	// GetModelInfo returns metadata about the loaded model
	GetModelInfo() ModelInfo

	// Close releases model resources
	Close() error
}

// ModelInfo contains metadata about embedding models
type ModelInfo struct {
	Name      string `json:"name"`
	Dimension int    `json:"dimension"`
}

// ModelConfig describes the embedding model to load
type ModelConfig struct {
	// Type selects the engine: onnx, ollama, openai
	Type string `json:"type" yaml:"type"`

	// Model is the model name (Ollama/OpenAI) or display name (ONNX)
	Model string `json:"model" yaml:"model"`

	// Dimension is the expected output dimension (e.g. 384)
	Dimension int `json:"dimension" yaml:"dimension"`

	// OllamaEndpoint is the Ollama API base URL
	OllamaEndpoint string `json:"ollama_endpoint" yaml:"ollama_endpoint"`

	// OpenAIAPIKey and OpenAIBaseURL configure OpenAI-compatible APIs
	OpenAIAPIKey  string `json:"openai_api_key" yaml:"openai_api_key"`
	OpenAIBaseURL string `json:"openai_base_url" yaml:"openai_base_url"`

	// ModelPath and VocabPath locate the ONNX model and its
	// WordPiece vocabulary on disk
	ModelPath string `json:"model_path" yaml:"model_path"`
	VocabPath string `json:"vocab_path" yaml:"vocab_path"`

	// MaxTokens caps tokenized input length for local inference
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`
}
