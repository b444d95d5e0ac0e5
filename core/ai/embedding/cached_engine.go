package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dshills/Searchlight/core/ai"
	"github.com/dshills/Searchlight/persistence"
)

// CachedEngine wraps an EmbeddingEngine with a key-value cache so
// repeated queries skip inference. Cache keys are derived from the
// model name and the input text, so different models never share
// entries.
type CachedEngine struct {
	inner  ai.EmbeddingEngine
	store  persistence.Store
	logger *zap.Logger

	// hits/misses are optional; nil disables metrics
	hits   prometheus.Counter
	misses prometheus.Counter
}

// NewCachedEngine wraps inner with a cache backed by store. A nil
// logger is replaced with a no-op logger.
func NewCachedEngine(inner ai.EmbeddingEngine, store persistence.Store, logger *zap.Logger) *CachedEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedEngine{
		inner:  inner,
		store:  store,
		logger: logger,
	}
}

// WithMetrics attaches hit/miss counters and returns the engine for
// chaining.
func (c *CachedEngine) WithMetrics(hits, misses prometheus.Counter) *CachedEngine {
	c.hits = hits
	c.misses = misses
	return c
}

// Embed returns cached embeddings where available and delegates the
// remaining texts to the wrapped engine, caching fresh results.
func (c *CachedEngine) Embed(ctx context.Context, content []string) ([][]float32, error) {
	if len(content) == 0 {
		return [][]float32{}, nil
	}

	results := make([][]float32, len(content))
	var missing []string
	var missingIdx []int

	for i, text := range content {
		vec, err := c.lookup(ctx, text)
		if err == nil {
			results[i] = vec
			continue
		}
		if !errors.Is(err, persistence.ErrKeyNotFound) {
			c.logger.Warn("embedding cache lookup failed",
				zap.Error(err))
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
	}

	if c.hits != nil {
		c.hits.Add(float64(len(content) - len(missing)))
	}
	if c.misses != nil {
		c.misses.Add(float64(len(missing)))
	}

	if len(missing) == 0 {
		return results, nil
	}

	fresh, err := c.inner.Embed(ctx, missing)
	if err != nil {
		return nil, err
	}
	if len(fresh) != len(missing) {
		return nil, NewEmbeddingError("Embed", c.inner.GetModelInfo().Name, ErrInferenceFailed,
			fmt.Sprintf("expected %d embeddings, got %d", len(missing), len(fresh)), false)
	}

	for j, vec := range fresh {
		results[missingIdx[j]] = vec
		if err := c.store.Set(ctx, c.cacheKey(missing[j]), vectorToBytes(vec)); err != nil {
			// A failed write only costs a future cache hit.
			c.logger.Warn("embedding cache write failed", zap.Error(err))
		}
	}

	return results, nil
}

// GetModelInfo returns metadata about the wrapped model
func (c *CachedEngine) GetModelInfo() ai.ModelInfo {
	return c.inner.GetModelInfo()
}

// Close releases the wrapped engine. The store is owned by the caller
// and stays open.
func (c *CachedEngine) Close() error {
	return c.inner.Close()
}

func (c *CachedEngine) lookup(ctx context.Context, text string) ([]float32, error) {
	data, err := c.store.Get(ctx, c.cacheKey(text))
	if err != nil {
		return nil, err
	}
	vec, err := bytesToVector(data)
	if err != nil {
		return nil, err
	}
	return vec, nil
}

// cacheKey hashes the model name and text so entries are scoped per
// model.
func (c *CachedEngine) cacheKey(text string) string {
	sum := sha256.Sum256([]byte(c.inner.GetModelInfo().Name + "\x00" + text))
	return "emb:" + hex.EncodeToString(sum[:])
}

// vectorToBytes encodes a vector as little-endian float32 values.
func vectorToBytes(vec []float32) []byte {
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// bytesToVector decodes a little-endian float32 vector.
func bytesToVector(data []byte) ([]float32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("corrupt cached vector: %d bytes", len(data))
	}
	vec := make([]float32, len(data)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return vec, nil
}
