package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dshills/Searchlight/core/ai"
)

// OllamaEngine implements ai.EmbeddingEngine using Ollama's HTTP API.
type OllamaEngine struct {
	config     ai.ModelConfig
	httpClient *http.Client
	modelInfo  ai.ModelInfo
}

// OllamaEmbedRequest represents the request payload for Ollama's embed API
type OllamaEmbedRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

// OllamaEmbedResponse represents the response from Ollama's embed API
type OllamaEmbedResponse struct {
	Embedding []float32 `json:"embedding"`
}

// NewOllamaEngine creates an Ollama-backed embedding engine.
func NewOllamaEngine(config ai.ModelConfig) (*OllamaEngine, error) {
	if config.Model == "" {
		return nil, NewEmbeddingError("NewOllamaEngine", "", ErrInvalidInput, "model name is required", false)
	}
	if config.OllamaEndpoint == "" {
		config.OllamaEndpoint = "http://localhost:11434"
	}

	return &OllamaEngine{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		modelInfo: ai.ModelInfo{
			Name:      config.Model,
			Dimension: config.Dimension,
		},
	}, nil
}

// Embed generates embeddings for the given content
func (e *OllamaEngine) Embed(ctx context.Context, content []string) ([][]float32, error) {
	if len(content) == 0 {
		return [][]float32{}, nil
	}

	embeddings := make([][]float32, len(content))
	for i, text := range content {
		embedding, err := e.embedSingle(ctx, text)
		if err != nil {
			return nil, err
		}
		embeddings[i] = embedding
	}

	return embeddings, nil
}

// GetModelInfo returns metadata about the loaded model
func (e *OllamaEngine) GetModelInfo() ai.ModelInfo {
	return e.modelInfo
}

// Close releases model resources
func (e *OllamaEngine) Close() error {
	e.httpClient.CloseIdleConnections()
	return nil
}

func (e *OllamaEngine) embedSingle(ctx context.Context, text string) ([]float32, error) {
	payload, err := json.Marshal(OllamaEmbedRequest{
		Model:  e.config.Model,
		Prompt: text,
	})
	if err != nil {
		return nil, NewEmbeddingError("embedSingle", e.config.Model, err, "failed to marshal request", false)
	}

	url := e.config.OllamaEndpoint + "/api/embeddings"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, NewEmbeddingError("embedSingle", e.config.Model, err, "failed to create request", false)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, NewEmbeddingError("embedSingle", e.config.Model, ErrInferenceFailed, err.Error(), true)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewEmbeddingError("embedSingle", e.config.Model, err, "failed to read response", true)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, NewEmbeddingError("embedSingle", e.config.Model, ErrInferenceFailed,
			fmt.Sprintf("status %d: %s", resp.StatusCode, string(body)), resp.StatusCode >= 500)
	}

	var embedResp OllamaEmbedResponse
	if err := json.Unmarshal(body, &embedResp); err != nil {
		return nil, NewEmbeddingError("embedSingle", e.config.Model, err, "failed to parse response", false)
	}

	if len(embedResp.Embedding) == 0 {
		return nil, NewEmbeddingError("embedSingle", e.config.Model, ErrInferenceFailed, "empty embedding in response", false)
	}
	if e.config.Dimension > 0 && len(embedResp.Embedding) != e.config.Dimension {
		return nil, NewEmbeddingError("embedSingle", e.config.Model, ErrDimensionMismatch,
			fmt.Sprintf("got %d, want %d", len(embedResp.Embedding), e.config.Dimension), false)
	}

	return embedResp.Embedding, nil
}
