package embedding

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/dshills/Searchlight/core/ai"
)

var onnxInitOnce sync.Once

// ONNXEngine runs a local sentence-transformer ONNX model (e.g.
// all-MiniLM-L6-v2 or multilingual-e5-small exports) with mean pooling
// and L2 normalization, matching the pooling=mean, normalize=true
// semantics the precomputed corpus embeddings were generated with.
type ONNXEngine struct {
	config    ai.ModelConfig
	tokenizer *WordPieceTokenizer
	session   *ort.DynamicAdvancedSession
	modelInfo ai.ModelInfo

	inputNames []string
	mu         sync.Mutex
}

// NewONNXEngine loads the model and vocabulary from disk.
func NewONNXEngine(config ai.ModelConfig) (*ONNXEngine, error) {
	if config.ModelPath == "" {
		return nil, NewEmbeddingError("NewONNXEngine", config.Model, ErrInvalidInput, "model path is required", false)
	}
	if _, err := os.Stat(config.ModelPath); err != nil {
		return nil, NewEmbeddingError("NewONNXEngine", config.Model, ErrModelInitFailed, err.Error(), false)
	}

	tokenizer, err := NewWordPieceTokenizer(config.VocabPath)
	if err != nil {
		return nil, NewEmbeddingError("NewONNXEngine", config.Model, ErrModelInitFailed, err.Error(), false)
	}

	var initErr error
	onnxInitOnce.Do(func() {
		if !ort.IsInitialized() {
			initErr = ort.InitializeEnvironment()
		}
	})
	if initErr != nil {
		return nil, NewEmbeddingError("NewONNXEngine", config.Model, ErrModelInitFailed, initErr.Error(), false)
	}

	inputs, _, err := ort.GetInputOutputInfo(config.ModelPath)
	if err != nil {
		return nil, NewEmbeddingError("NewONNXEngine", config.Model, ErrModelInitFailed, err.Error(), false)
	}

	inputNames := make([]string, len(inputs))
	for i, info := range inputs {
		inputNames[i] = info.Name
	}

	session, err := ort.NewDynamicAdvancedSession(config.ModelPath, inputNames, []string{"last_hidden_state"}, nil)
	if err != nil {
		return nil, NewEmbeddingError("NewONNXEngine", config.Model, ErrModelInitFailed, err.Error(), false)
	}

	return &ONNXEngine{
		config:     config,
		tokenizer:  tokenizer,
		session:    session,
		inputNames: inputNames,
		modelInfo: ai.ModelInfo{
			Name:      config.Model,
			Dimension: config.Dimension,
		},
	}, nil
}

// Embed generates embeddings for the given content
func (e *ONNXEngine) Embed(ctx context.Context, content []string) ([][]float32, error) {
	if len(content) == 0 {
		return [][]float32{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	encoded := e.tokenizer.EncodeBatch(content, e.config.MaxTokens)
	shape := ort.NewShape(int64(encoded.BatchSize), int64(encoded.SeqLength))

	inputs := make([]ort.Value, 0, len(e.inputNames))
	destroyAll := func(values []ort.Value) {
		for _, v := range values {
			if v != nil {
				v.Destroy()
			}
		}
	}

	for _, name := range e.inputNames {
		var data []int64
		switch {
		case strings.Contains(name, "input_ids"):
			data = encoded.InputIDs
		case strings.Contains(name, "attention_mask"):
			data = encoded.AttentionMask
		case strings.Contains(name, "token_type"):
			data = encoded.TokenTypeIDs
		default:
			destroyAll(inputs)
			return nil, NewEmbeddingError("Embed", e.config.Model, ErrUnsupportedModel,
				fmt.Sprintf("unrecognized model input %q", name), false)
		}

		tensor, err := ort.NewTensor(shape, data)
		if err != nil {
			destroyAll(inputs)
			return nil, NewEmbeddingError("Embed", e.config.Model, ErrInferenceFailed, err.Error(), false)
		}
		inputs = append(inputs, tensor)
	}
	defer destroyAll(inputs)

	// The session allocates the output tensor for us.
	outputs := []ort.Value{nil}

	// onnxruntime sessions are not safe for concurrent Run calls.
	e.mu.Lock()
	err := e.session.Run(inputs, outputs)
	e.mu.Unlock()
	if err != nil {
		return nil, NewEmbeddingError("Embed", e.config.Model, ErrInferenceFailed, err.Error(), true)
	}
	defer destroyAll(outputs)

	hidden, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, NewEmbeddingError("Embed", e.config.Model, ErrInferenceFailed, "unexpected output tensor type", false)
	}

	return e.poolAndNormalize(hidden, encoded)
}

// GetModelInfo returns metadata about the loaded model
func (e *ONNXEngine) GetModelInfo() ai.ModelInfo {
	return e.modelInfo
}

// Close releases model resources
func (e *ONNXEngine) Close() error {
	if e.session != nil {
		err := e.session.Destroy()
		e.session = nil
		return err
	}
	return nil
}

// poolAndNormalize turns [batch, seq, hidden] token states into one
// unit-length vector per input via attention-masked mean pooling.
func (e *ONNXEngine) poolAndNormalize(hidden *ort.Tensor[float32], encoded EncodedInput) ([][]float32, error) {
	dims := hidden.GetShape()
	if len(dims) != 3 {
		return nil, NewEmbeddingError("Embed", e.config.Model, ErrInferenceFailed,
			fmt.Sprintf("expected 3D hidden state, got shape %v", dims), false)
	}

	batch, seqLen, hiddenDim := int(dims[0]), int(dims[1]), int(dims[2])
	if batch != encoded.BatchSize || seqLen != encoded.SeqLength {
		return nil, NewEmbeddingError("Embed", e.config.Model, ErrInferenceFailed,
			fmt.Sprintf("output shape %v does not match input batch", dims), false)
	}
	if e.config.Dimension > 0 && hiddenDim != e.config.Dimension {
		return nil, NewEmbeddingError("Embed", e.config.Model, ErrDimensionMismatch,
			fmt.Sprintf("got %d, want %d", hiddenDim, e.config.Dimension), false)
	}

	data := hidden.GetData()
	embeddings := make([][]float32, batch)

	for b := 0; b < batch; b++ {
		vec := make([]float32, hiddenDim)
		var tokenCount float32

		for s := 0; s < seqLen; s++ {
			if encoded.AttentionMask[b*seqLen+s] == 0 {
				continue
			}
			tokenCount++
			base := (b*seqLen + s) * hiddenDim
			for h := 0; h < hiddenDim; h++ {
				vec[h] += data[base+h]
			}
		}

		if tokenCount > 0 {
			for h := range vec {
				vec[h] /= tokenCount
			}
		}

		normalize(vec)
		embeddings[b] = vec
	}

	return embeddings, nil
}

// normalize scales vec to unit length in place. Zero vectors are left
// untouched.
func normalize(vec []float32) {
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		return
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}
}
