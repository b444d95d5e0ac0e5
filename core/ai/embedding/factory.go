package embedding

import (
	"fmt"

	"github.com/dshills/Searchlight/core/ai"
)

// CreateEngine creates an embedding engine based on the model configuration
func CreateEngine(config ai.ModelConfig) (ai.EmbeddingEngine, error) {
	switch config.Type {
	case ai.ModelTypeONNX:
		return NewONNXEngine(config)
	case ai.ModelTypeOllama:
		return NewOllamaEngine(config)
	case ai.ModelTypeOpenAI:
		return NewOpenAIEngine(config)
	default:
		return nil, fmt.Errorf("unsupported embedding engine type: %q", config.Type)
	}
}

// SupportedEngineTypes returns the list of supported embedding engine types
func SupportedEngineTypes() []string {
	return []string{ai.ModelTypeONNX, ai.ModelTypeOllama, ai.ModelTypeOpenAI}
}

// ValidateConfig validates the model configuration for the specified engine type
func ValidateConfig(config ai.ModelConfig) error {
	switch config.Type {
	case ai.ModelTypeONNX:
		if config.ModelPath == "" {
			return fmt.Errorf("ONNX engine requires model_path")
		}
		if config.VocabPath == "" {
			return fmt.Errorf("ONNX engine requires vocab_path")
		}
	case ai.ModelTypeOllama:
		if config.Model == "" {
			return fmt.Errorf("Ollama engine requires a model name")
		}
	case ai.ModelTypeOpenAI:
		if config.Model == "" {
			return fmt.Errorf("OpenAI engine requires a model name")
		}
		if config.OpenAIAPIKey == "" {
			return fmt.Errorf("OpenAI engine requires an API key")
		}
	default:
		return fmt.Errorf("unsupported engine type: %q", config.Type)
	}
	return nil
}
