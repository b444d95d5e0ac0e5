package embedding

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/dshills/Searchlight/core/ai"
)

// OpenAIEngine implements ai.EmbeddingEngine against the OpenAI
// embeddings API or any compatible endpoint (set OpenAIBaseURL for
// self-hosted gateways).
type OpenAIEngine struct {
	config    ai.ModelConfig
	client    *openai.Client
	modelInfo ai.ModelInfo
}

// NewOpenAIEngine creates an OpenAI-compatible embedding engine.
func NewOpenAIEngine(config ai.ModelConfig) (*OpenAIEngine, error) {
	if config.Model == "" {
		return nil, NewEmbeddingError("NewOpenAIEngine", "", ErrInvalidInput, "model name is required", false)
	}
	if config.OpenAIAPIKey == "" {
		return nil, NewEmbeddingError("NewOpenAIEngine", config.Model, ErrInvalidInput, "API key is required", false)
	}

	clientConfig := openai.DefaultConfig(config.OpenAIAPIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}

	return &OpenAIEngine{
		config: config,
		client: openai.NewClientWithConfig(clientConfig),
		modelInfo: ai.ModelInfo{
			Name:      config.Model,
			Dimension: config.Dimension,
		},
	}, nil
}

// Embed generates embeddings for the given content
func (e *OpenAIEngine) Embed(ctx context.Context, content []string) ([][]float32, error) {
	if len(content) == 0 {
		return [][]float32{}, nil
	}

	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: content,
		Model: openai.EmbeddingModel(e.config.Model),
	})
	if err != nil {
		return nil, NewEmbeddingError("Embed", e.config.Model, ErrInferenceFailed, err.Error(), true)
	}

	if len(resp.Data) != len(content) {
		return nil, NewEmbeddingError("Embed", e.config.Model, ErrInferenceFailed,
			fmt.Sprintf("expected %d embeddings, got %d", len(content), len(resp.Data)), false)
	}

	embeddings := make([][]float32, len(resp.Data))
	for i, item := range resp.Data {
		if e.config.Dimension > 0 && len(item.Embedding) != e.config.Dimension {
			return nil, NewEmbeddingError("Embed", e.config.Model, ErrDimensionMismatch,
				fmt.Sprintf("got %d, want %d", len(item.Embedding), e.config.Dimension), false)
		}
		embeddings[i] = item.Embedding
	}

	return embeddings, nil
}

// GetModelInfo returns metadata about the loaded model
func (e *OpenAIEngine) GetModelInfo() ai.ModelInfo {
	return e.modelInfo
}

// Close releases model resources
func (e *OpenAIEngine) Close() error {
	return nil
}
